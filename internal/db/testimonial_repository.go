package db

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"careconnect-backend-go/internal/models"
)

const testimonialsCollection = "testimonials"

type firestoreTestimonialRepository struct {
	client *firestore.Client
}

// NewFirestoreTestimonialRepository creates a Firestore-backed
// TestimonialRepository.
func NewFirestoreTestimonialRepository(client *firestore.Client) TestimonialRepository {
	return &firestoreTestimonialRepository{client: client}
}

func (r *firestoreTestimonialRepository) GetByID(ctx context.Context, testimonialID string) (*models.Testimonial, error) {
	if testimonialID == "" {
		return nil, errors.New("testimonialID cannot be empty")
	}
	snap, err := r.client.Collection(testimonialsCollection).Doc(testimonialID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("testimonial %q: %w", testimonialID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get testimonial %q: %w", testimonialID, err)
	}

	var t models.Testimonial
	if err := snap.DataTo(&t); err != nil {
		return nil, fmt.Errorf("failed to decode testimonial %q: %w", testimonialID, err)
	}
	t.ID = snap.Ref.ID
	return &t, nil
}

func (r *firestoreTestimonialRepository) Create(ctx context.Context, t *models.Testimonial) (string, error) {
	ref := r.client.Collection(testimonialsCollection).NewDoc()
	t.ID = ref.ID
	if _, err := ref.Create(ctx, t); err != nil {
		return "", fmt.Errorf("failed to create testimonial: %w", err)
	}
	return ref.ID, nil
}

func (r *firestoreTestimonialRepository) Update(ctx context.Context, t *models.Testimonial) error {
	if t.ID == "" {
		return errors.New("testimonial ID cannot be empty")
	}
	_, err := r.client.Collection(testimonialsCollection).Doc(t.ID).Set(ctx, t, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update testimonial %q: %w", t.ID, err)
	}
	return nil
}

func (r *firestoreTestimonialRepository) Delete(ctx context.Context, testimonialID string) error {
	if testimonialID == "" {
		return errors.New("testimonialID cannot be empty")
	}
	_, err := r.client.Collection(testimonialsCollection).Doc(testimonialID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete testimonial %q: %w", testimonialID, err)
	}
	return nil
}

func (r *firestoreTestimonialRepository) List(ctx context.Context) ([]*models.Testimonial, error) {
	return r.collect(r.client.Collection(testimonialsCollection).Documents(ctx))
}

// ListVisible returns testimonials with isVisible == true in store
// insertion order; no secondary ordering is guaranteed.
func (r *firestoreTestimonialRepository) ListVisible(ctx context.Context) ([]*models.Testimonial, error) {
	query := r.client.Collection(testimonialsCollection).Where("isVisible", "==", true)
	return r.collect(query.Documents(ctx))
}

func (r *firestoreTestimonialRepository) collect(iter *firestore.DocumentIterator) ([]*models.Testimonial, error) {
	defer iter.Stop()

	var testimonials []*models.Testimonial
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate testimonials: %w", err)
		}
		var t models.Testimonial
		if err := doc.DataTo(&t); err != nil {
			return nil, fmt.Errorf("failed to decode testimonial %q: %w", doc.Ref.ID, err)
		}
		t.ID = doc.Ref.ID
		testimonials = append(testimonials, &t)
	}
	return testimonials, nil
}
