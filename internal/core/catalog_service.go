package core

import (
	"context"
	"time"

	"careconnect-backend-go/internal/db"
	"careconnect-backend-go/internal/models"
)

type catalogService struct {
	serviceRepo db.ServiceRepository
}

// NewCatalogService creates a CatalogService over the given repository.
func NewCatalogService(serviceRepo db.ServiceRepository) CatalogService {
	return &catalogService{serviceRepo: serviceRepo}
}

// PublicList returns active services only.
func (s *catalogService) PublicList(ctx context.Context) ([]*models.Service, error) {
	return s.serviceRepo.ListActive(ctx)
}

// PublicGet returns the service if it exists and is active. Inactive
// services are reported as not found so the public surface never reveals
// their existence.
func (s *catalogService) PublicGet(ctx context.Context, serviceID string) (*models.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if !svc.IsActive {
		return nil, db.ErrNotFound
	}
	return svc, nil
}

// AdminList returns every service, active or not.
func (s *catalogService) AdminList(ctx context.Context) ([]*models.Service, error) {
	return s.serviceRepo.List(ctx)
}

func (s *catalogService) Create(ctx context.Context, req models.CreateServiceRequest) (*models.Service, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	svc := &models.Service{
		Title:       req.Title,
		Description: req.Description,
		PricePerHr:  req.PricePerHr,
		ImageURL:    req.ImageURL,
		Features:    req.Features,
		IsActive:    isActive,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	if _, err := s.serviceRepo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *catalogService) Update(ctx context.Context, serviceID string, req models.UpdateServiceRequest) (*models.Service, error) {
	if serviceID == "" {
		return nil, NewFieldError("id", "service id is required")
	}
	svc, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		svc.Title = *req.Title
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.PricePerHr != nil {
		if *req.PricePerHr <= 0 {
			return nil, NewFieldError("pricePerHr", "must be a positive number")
		}
		svc.PricePerHr = *req.PricePerHr
	}
	if req.ImageURL != nil {
		svc.ImageURL = *req.ImageURL
	}
	if req.Features != nil {
		svc.Features = *req.Features
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}
	svc.UpdatedAt = time.Now().UTC()

	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// Delete requires the identifier up front; a missing id is a validation
// failure rather than a not-found.
func (s *catalogService) Delete(ctx context.Context, serviceID string) error {
	if serviceID == "" {
		return NewFieldError("id", "service id is required")
	}
	if _, err := s.serviceRepo.GetByID(ctx, serviceID); err != nil {
		return err
	}
	return s.serviceRepo.Delete(ctx, serviceID)
}
