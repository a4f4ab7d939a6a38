package core

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careconnect-backend-go/internal/db"
	"careconnect-backend-go/internal/models"
)

type memTestimonialRepo struct {
	testimonials map[string]*models.Testimonial
	nextID       int
}

func newMemTestimonialRepo(testimonials ...*models.Testimonial) *memTestimonialRepo {
	r := &memTestimonialRepo{testimonials: map[string]*models.Testimonial{}}
	for _, t := range testimonials {
		r.testimonials[t.ID] = t
	}
	return r
}

func (r *memTestimonialRepo) GetByID(_ context.Context, id string) (*models.Testimonial, error) {
	if t, ok := r.testimonials[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, fmt.Errorf("testimonial %q: %w", id, db.ErrNotFound)
}

func (r *memTestimonialRepo) Create(_ context.Context, t *models.Testimonial) (string, error) {
	r.nextID++
	t.ID = fmt.Sprintf("tm-%d", r.nextID)
	r.testimonials[t.ID] = t
	return t.ID, nil
}

func (r *memTestimonialRepo) Update(_ context.Context, t *models.Testimonial) error {
	r.testimonials[t.ID] = t
	return nil
}

func (r *memTestimonialRepo) Delete(_ context.Context, id string) error {
	delete(r.testimonials, id)
	return nil
}

func (r *memTestimonialRepo) List(_ context.Context) ([]*models.Testimonial, error) {
	var out []*models.Testimonial
	for _, t := range r.testimonials {
		out = append(out, t)
	}
	return out, nil
}

func (r *memTestimonialRepo) ListVisible(_ context.Context) ([]*models.Testimonial, error) {
	var out []*models.Testimonial
	for _, t := range r.testimonials {
		if t.IsVisible {
			out = append(out, t)
		}
	}
	return out, nil
}

func TestTestimonialPublicList_ExcludesHidden(t *testing.T) {
	repo := newMemTestimonialRepo(
		&models.Testimonial{ID: "tm-1", Name: "A", IsVisible: true},
		&models.Testimonial{ID: "tm-2", Name: "B", IsVisible: false},
	)
	svc := NewTestimonialService(repo)

	public, err := svc.PublicList(context.Background())
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "tm-1", public[0].ID)

	all, err := svc.AdminList(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestTestimonialCreate_DefaultsToVisible(t *testing.T) {
	svc := NewTestimonialService(newMemTestimonialRepo())

	created, err := svc.Create(context.Background(), models.CreateTestimonialRequest{
		Name: "Mara", Quote: "Wonderful care", Rating: 5,
	})

	require.NoError(t, err)
	assert.True(t, created.IsVisible)
	assert.NotEmpty(t, created.ID)
}

func TestTestimonialUpdate_ToggleVisibility(t *testing.T) {
	repo := newMemTestimonialRepo(&models.Testimonial{ID: "tm-1", Name: "A", IsVisible: true})
	svc := NewTestimonialService(repo)

	hidden := false
	updated, err := svc.Update(context.Background(), "tm-1",
		models.UpdateTestimonialRequest{IsVisible: &hidden})

	require.NoError(t, err)
	assert.False(t, updated.IsVisible)
	assert.False(t, repo.testimonials["tm-1"].IsVisible)
}

func TestTestimonialDelete_UnknownIDIsNotFound(t *testing.T) {
	svc := NewTestimonialService(newMemTestimonialRepo())

	err := svc.Delete(context.Background(), "ghost")

	assert.ErrorIs(t, err, db.ErrNotFound)
}
