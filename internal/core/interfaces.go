package core

import (
	"context"

	"careconnect-backend-go/internal/models"
)

// UserService manages user profiles and the admin-side user operations.
type UserService interface {
	// InitializeProfile gets or creates the profile for a freshly
	// authenticated caller. New profiles get the "user" role. The second
	// return value reports whether a profile was created.
	InitializeProfile(ctx context.Context, uid, email, displayName string) (*models.User, bool, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
	UpdateOwnProfile(ctx context.Context, caller models.Identity, req models.UpdateProfileRequest) (*models.User, error)
	AdminList(ctx context.Context) ([]*models.User, error)
	AdminUpdate(ctx context.Context, caller models.Identity, targetID string, req models.AdminUpdateUserRequest) (*models.User, error)
	AdminDelete(ctx context.Context, caller models.Identity, targetID string) error
}

// CatalogService manages the public and admin views of the service catalog.
type CatalogService interface {
	PublicList(ctx context.Context) ([]*models.Service, error)
	PublicGet(ctx context.Context, serviceID string) (*models.Service, error)
	AdminList(ctx context.Context) ([]*models.Service, error)
	Create(ctx context.Context, req models.CreateServiceRequest) (*models.Service, error)
	Update(ctx context.Context, serviceID string, req models.UpdateServiceRequest) (*models.Service, error)
	Delete(ctx context.Context, serviceID string) error
}

// BookingService manages bookings and their status transitions.
type BookingService interface {
	Create(ctx context.Context, caller models.Identity, req models.CreateBookingRequest) (*models.Booking, error)
	ListMine(ctx context.Context, caller models.Identity) ([]*models.Booking, error)
	AdminList(ctx context.Context) ([]*models.Booking, error)
	UpdateStatus(ctx context.Context, caller models.Identity, bookingID string, status models.BookingStatus) (*models.Booking, error)
	Delete(ctx context.Context, bookingID string) error
}

// ContentService manages the singleton content blocks and the slider.
type ContentService interface {
	GetAbout(ctx context.Context) (*models.AboutContent, error)
	UpdateAbout(ctx context.Context, req models.UpdateAboutRequest) (*models.AboutContent, error)
	GetFooter(ctx context.Context) (*models.FooterContent, error)
	UpdateFooter(ctx context.Context, req models.UpdateFooterRequest) (*models.FooterContent, error)
	ListSlides(ctx context.Context) ([]*models.Slide, error)
	CreateSlide(ctx context.Context, req models.CreateSlideRequest) (*models.Slide, error)
	UpdateSlide(ctx context.Context, slideID string, req models.UpdateSlideRequest) (*models.Slide, error)
	DeleteSlide(ctx context.Context, slideID string) error
}

// TestimonialService manages testimonials.
type TestimonialService interface {
	PublicList(ctx context.Context) ([]*models.Testimonial, error)
	AdminList(ctx context.Context) ([]*models.Testimonial, error)
	Create(ctx context.Context, req models.CreateTestimonialRequest) (*models.Testimonial, error)
	Update(ctx context.Context, testimonialID string, req models.UpdateTestimonialRequest) (*models.Testimonial, error)
	Delete(ctx context.Context, testimonialID string) error
}

// ActivityService records and lists audit log entries.
type ActivityService interface {
	// Record appends one entry. Failures are surfaced to the caller; most
	// call sites treat them as best-effort and only log them.
	Record(ctx context.Context, actor models.Identity, action, details string, typ models.ActivityType) error
	List(ctx context.Context, limit int) ([]*models.ActivityLog, error)
}

// PaymentService is the bridge to the hosted payment processor.
type PaymentService interface {
	CreateIntent(ctx context.Context, caller models.Identity, amount float64) (*PaymentIntent, error)
}

// PaymentIntent is the processor's handle for an in-progress charge.
type PaymentIntent struct {
	IntentID     string `json:"intentId"`
	ClientSecret string `json:"clientSecret"`
}

// PaymentClient is the narrow contract against the hosted processor,
// substitutable with a fake in tests.
type PaymentClient interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (*PaymentIntent, error)
}
