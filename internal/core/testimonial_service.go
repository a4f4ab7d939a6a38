package core

import (
	"context"
	"time"

	"careconnect-backend-go/internal/db"
	"careconnect-backend-go/internal/models"
)

type testimonialService struct {
	testimonialRepo db.TestimonialRepository
}

// NewTestimonialService creates a TestimonialService over the given
// repository.
func NewTestimonialService(testimonialRepo db.TestimonialRepository) TestimonialService {
	return &testimonialService{testimonialRepo: testimonialRepo}
}

// PublicList returns visible testimonials only, in store insertion order.
func (s *testimonialService) PublicList(ctx context.Context) ([]*models.Testimonial, error) {
	return s.testimonialRepo.ListVisible(ctx)
}

func (s *testimonialService) AdminList(ctx context.Context) ([]*models.Testimonial, error) {
	return s.testimonialRepo.List(ctx)
}

func (s *testimonialService) Create(ctx context.Context, req models.CreateTestimonialRequest) (*models.Testimonial, error) {
	visible := true
	if req.IsVisible != nil {
		visible = *req.IsVisible
	}
	t := &models.Testimonial{
		Name:      req.Name,
		Location:  req.Location,
		Quote:     req.Quote,
		Rating:    req.Rating,
		IsVisible: visible,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.testimonialRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *testimonialService) Update(ctx context.Context, testimonialID string, req models.UpdateTestimonialRequest) (*models.Testimonial, error) {
	if testimonialID == "" {
		return nil, NewFieldError("id", "testimonial id is required")
	}
	t, err := s.testimonialRepo.GetByID(ctx, testimonialID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Location != nil {
		t.Location = *req.Location
	}
	if req.Quote != nil {
		t.Quote = *req.Quote
	}
	if req.Rating != nil {
		t.Rating = *req.Rating
	}
	if req.IsVisible != nil {
		t.IsVisible = *req.IsVisible
	}

	if err := s.testimonialRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *testimonialService) Delete(ctx context.Context, testimonialID string) error {
	if testimonialID == "" {
		return NewFieldError("id", "testimonial id is required")
	}
	if _, err := s.testimonialRepo.GetByID(ctx, testimonialID); err != nil {
		return err
	}
	return s.testimonialRepo.Delete(ctx, testimonialID)
}
