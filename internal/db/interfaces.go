package db

import (
	"context"

	"careconnect-backend-go/internal/models"
)

// UserRepository defines user profile storage operations.
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]*models.User, error)
	Delete(ctx context.Context, userID string) error
}

// ServiceRepository defines catalog service storage operations.
type ServiceRepository interface {
	GetByID(ctx context.Context, serviceID string) (*models.Service, error)
	Create(ctx context.Context, svc *models.Service) (string, error)
	Update(ctx context.Context, svc *models.Service) error
	Delete(ctx context.Context, serviceID string) error
	// List returns all services; ListActive only those with isActive == true.
	List(ctx context.Context) ([]*models.Service, error)
	ListActive(ctx context.Context) ([]*models.Service, error)
}

// BookingRepository defines booking storage operations. Listings are
// ordered newest-first by creation timestamp.
type BookingRepository interface {
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) (string, error)
	UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus) error
	Delete(ctx context.Context, bookingID string) error
	List(ctx context.Context) ([]*models.Booking, error)
	ListByUserID(ctx context.Context, userID string) ([]*models.Booking, error)
}

// TestimonialRepository defines testimonial storage operations.
type TestimonialRepository interface {
	GetByID(ctx context.Context, testimonialID string) (*models.Testimonial, error)
	Create(ctx context.Context, t *models.Testimonial) (string, error)
	Update(ctx context.Context, t *models.Testimonial) error
	Delete(ctx context.Context, testimonialID string) error
	List(ctx context.Context) ([]*models.Testimonial, error)
	ListVisible(ctx context.Context) ([]*models.Testimonial, error)
}

// ContentRepository defines storage for singleton content blocks and the
// ordered slider collection.
type ContentRepository interface {
	GetAbout(ctx context.Context) (*models.AboutContent, error)
	SetAbout(ctx context.Context, about *models.AboutContent) error
	GetFooter(ctx context.Context) (*models.FooterContent, error)
	SetFooter(ctx context.Context, footer *models.FooterContent) error
	ListSlides(ctx context.Context) ([]*models.Slide, error)
	GetSlide(ctx context.Context, slideID string) (*models.Slide, error)
	CreateSlide(ctx context.Context, slide *models.Slide) (string, error)
	UpdateSlide(ctx context.Context, slide *models.Slide) error
	DeleteSlide(ctx context.Context, slideID string) error
}

// ActivityLogRepository defines append-only audit log storage. Entries are
// never updated or deleted.
type ActivityLogRepository interface {
	Create(ctx context.Context, entry *models.ActivityLog) error
	List(ctx context.Context, limit int) ([]*models.ActivityLog, error)
}
