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

const (
	contentCollection = "content"
	slidesCollection  = "slides"

	// Singleton content blocks live under fixed document IDs.
	aboutDocID  = "about"
	footerDocID = "footer"
)

type firestoreContentRepository struct {
	client *firestore.Client
}

// NewFirestoreContentRepository creates a Firestore-backed ContentRepository.
func NewFirestoreContentRepository(client *firestore.Client) ContentRepository {
	return &firestoreContentRepository{client: client}
}

func (r *firestoreContentRepository) GetAbout(ctx context.Context) (*models.AboutContent, error) {
	snap, err := r.client.Collection(contentCollection).Doc(aboutDocID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("about content: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get about content: %w", err)
	}
	var about models.AboutContent
	if err := snap.DataTo(&about); err != nil {
		return nil, fmt.Errorf("failed to decode about content: %w", err)
	}
	return &about, nil
}

func (r *firestoreContentRepository) SetAbout(ctx context.Context, about *models.AboutContent) error {
	if _, err := r.client.Collection(contentCollection).Doc(aboutDocID).Set(ctx, about); err != nil {
		return fmt.Errorf("failed to set about content: %w", err)
	}
	return nil
}

func (r *firestoreContentRepository) GetFooter(ctx context.Context) (*models.FooterContent, error) {
	snap, err := r.client.Collection(contentCollection).Doc(footerDocID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("footer content: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get footer content: %w", err)
	}
	var footer models.FooterContent
	if err := snap.DataTo(&footer); err != nil {
		return nil, fmt.Errorf("failed to decode footer content: %w", err)
	}
	return &footer, nil
}

func (r *firestoreContentRepository) SetFooter(ctx context.Context, footer *models.FooterContent) error {
	if _, err := r.client.Collection(contentCollection).Doc(footerDocID).Set(ctx, footer); err != nil {
		return fmt.Errorf("failed to set footer content: %w", err)
	}
	return nil
}

// ListSlides returns slides ordered by the explicit order field ascending;
// ties fall back to Firestore's stable document ordering.
func (r *firestoreContentRepository) ListSlides(ctx context.Context) ([]*models.Slide, error) {
	iter := r.client.Collection(slidesCollection).OrderBy("order", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var slides []*models.Slide
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate slides: %w", err)
		}
		var slide models.Slide
		if err := doc.DataTo(&slide); err != nil {
			return nil, fmt.Errorf("failed to decode slide %q: %w", doc.Ref.ID, err)
		}
		slide.ID = doc.Ref.ID
		slides = append(slides, &slide)
	}
	return slides, nil
}

func (r *firestoreContentRepository) GetSlide(ctx context.Context, slideID string) (*models.Slide, error) {
	if slideID == "" {
		return nil, errors.New("slideID cannot be empty")
	}
	snap, err := r.client.Collection(slidesCollection).Doc(slideID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("slide %q: %w", slideID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get slide %q: %w", slideID, err)
	}
	var slide models.Slide
	if err := snap.DataTo(&slide); err != nil {
		return nil, fmt.Errorf("failed to decode slide %q: %w", slideID, err)
	}
	slide.ID = snap.Ref.ID
	return &slide, nil
}

func (r *firestoreContentRepository) CreateSlide(ctx context.Context, slide *models.Slide) (string, error) {
	ref := r.client.Collection(slidesCollection).NewDoc()
	slide.ID = ref.ID
	if _, err := ref.Create(ctx, slide); err != nil {
		return "", fmt.Errorf("failed to create slide: %w", err)
	}
	return ref.ID, nil
}

func (r *firestoreContentRepository) UpdateSlide(ctx context.Context, slide *models.Slide) error {
	if slide.ID == "" {
		return errors.New("slide ID cannot be empty")
	}
	_, err := r.client.Collection(slidesCollection).Doc(slide.ID).Set(ctx, slide, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update slide %q: %w", slide.ID, err)
	}
	return nil
}

func (r *firestoreContentRepository) DeleteSlide(ctx context.Context, slideID string) error {
	if slideID == "" {
		return errors.New("slideID cannot be empty")
	}
	_, err := r.client.Collection(slidesCollection).Doc(slideID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete slide %q: %w", slideID, err)
	}
	return nil
}
