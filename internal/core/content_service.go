package core

import (
	"context"
	"time"

	"careconnect-backend-go/internal/db"
	"careconnect-backend-go/internal/models"
)

type contentService struct {
	contentRepo db.ContentRepository
}

// NewContentService creates a ContentService over the given repository.
func NewContentService(contentRepo db.ContentRepository) ContentService {
	return &contentService{contentRepo: contentRepo}
}

func (s *contentService) GetAbout(ctx context.Context) (*models.AboutContent, error) {
	return s.contentRepo.GetAbout(ctx)
}

func (s *contentService) UpdateAbout(ctx context.Context, req models.UpdateAboutRequest) (*models.AboutContent, error) {
	about := &models.AboutContent{
		Heading:      req.Heading,
		Body:         req.Body,
		ImageURL:     req.ImageURL,
		YearsActive:  req.YearsActive,
		ClientsCount: req.ClientsCount,
		UpdatedAt:    time.Now().UTC(),
	}
	if err := s.contentRepo.SetAbout(ctx, about); err != nil {
		return nil, err
	}
	return about, nil
}

func (s *contentService) GetFooter(ctx context.Context) (*models.FooterContent, error) {
	return s.contentRepo.GetFooter(ctx)
}

func (s *contentService) UpdateFooter(ctx context.Context, req models.UpdateFooterRequest) (*models.FooterContent, error) {
	footer := &models.FooterContent{
		Tagline:   req.Tagline,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Links:     req.Links,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.contentRepo.SetFooter(ctx, footer); err != nil {
		return nil, err
	}
	return footer, nil
}

func (s *contentService) ListSlides(ctx context.Context) ([]*models.Slide, error) {
	return s.contentRepo.ListSlides(ctx)
}

func (s *contentService) CreateSlide(ctx context.Context, req models.CreateSlideRequest) (*models.Slide, error) {
	slide := &models.Slide{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		ImageURL: req.ImageURL,
		Order:    req.Order,
	}
	if _, err := s.contentRepo.CreateSlide(ctx, slide); err != nil {
		return nil, err
	}
	return slide, nil
}

func (s *contentService) UpdateSlide(ctx context.Context, slideID string, req models.UpdateSlideRequest) (*models.Slide, error) {
	if slideID == "" {
		return nil, NewFieldError("id", "slide id is required")
	}
	slide, err := s.contentRepo.GetSlide(ctx, slideID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		slide.Title = *req.Title
	}
	if req.Subtitle != nil {
		slide.Subtitle = *req.Subtitle
	}
	if req.ImageURL != nil {
		slide.ImageURL = *req.ImageURL
	}
	if req.Order != nil {
		slide.Order = *req.Order
	}

	if err := s.contentRepo.UpdateSlide(ctx, slide); err != nil {
		return nil, err
	}
	return slide, nil
}

func (s *contentService) DeleteSlide(ctx context.Context, slideID string) error {
	if slideID == "" {
		return NewFieldError("id", "slide id is required")
	}
	if _, err := s.contentRepo.GetSlide(ctx, slideID); err != nil {
		return err
	}
	return s.contentRepo.DeleteSlide(ctx, slideID)
}
