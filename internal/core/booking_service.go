package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"careconnect-backend-go/internal/db"
	"careconnect-backend-go/internal/models"
)

type bookingService struct {
	bookingRepo db.BookingRepository
	serviceRepo db.ServiceRepository
	userRepo    db.UserRepository
	activity    ActivityService
	logger      *zap.Logger
}

// NewBookingService creates a BookingService. The activity service records
// status changes; failures there are best-effort and never fail the
// booking operation.
func NewBookingService(
	bookingRepo db.BookingRepository,
	serviceRepo db.ServiceRepository,
	userRepo db.UserRepository,
	activity ActivityService,
	logger *zap.Logger,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		userRepo:    userRepo,
		activity:    activity,
		logger:      logger,
	}
}

// Create places a booking for the caller. The service title is snapshotted
// and the total cost computed from the current hourly price, so later
// catalog edits do not rewrite booking history.
func (s *bookingService) Create(ctx context.Context, caller models.Identity, req models.CreateBookingRequest) (*models.Booking, error) {
	svc, err := s.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, NewFieldError("serviceId", "service does not exist")
		}
		return nil, err
	}
	if !svc.IsActive {
		return nil, NewFieldError("serviceId", "service is not available for booking")
	}

	booking := &models.Booking{
		UserID:      caller.ID,
		ServiceID:   svc.ID,
		ServiceName: svc.Title,
		Date:        req.Date,
		TimeSlot:    req.TimeSlot,
		Hours:       req.Hours,
		Address:     req.Address,
		TotalCost:   float64(req.Hours) * svc.PricePerHr,
		Status:      models.BookingPending,
		Notes:       req.Notes,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListMine(ctx context.Context, caller models.Identity) ([]*models.Booking, error) {
	return s.bookingRepo.ListByUserID(ctx, caller.ID)
}

// AdminList returns all bookings newest first, enriched with each owner's
// display name and email.
func (s *bookingService) AdminList(ctx context.Context) ([]*models.Booking, error) {
	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	owners := make(map[string]*models.User)
	for _, b := range bookings {
		if _, seen := owners[b.UserID]; seen {
			continue
		}
		user, err := s.userRepo.GetByID(ctx, b.UserID)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				owners[b.UserID] = nil
				continue
			}
			return nil, err
		}
		owners[b.UserID] = user
	}

	return EnrichBookings(bookings, owners), nil
}

// EnrichBookings attaches owner display names and emails to bookings.
// Missing owners fall back to "Unknown User"/"No Email". Pure function so
// the join is testable without a store.
func EnrichBookings(bookings []*models.Booking, owners map[string]*models.User) []*models.Booking {
	for _, b := range bookings {
		owner := owners[b.UserID]
		if owner == nil {
			b.UserName = "Unknown User"
			b.UserEmail = "No Email"
			continue
		}
		b.UserName = owner.DisplayName
		if b.UserName == "" {
			b.UserName = owner.Email
		}
		b.UserEmail = owner.Email
		if b.UserEmail == "" {
			b.UserEmail = "No Email"
		}
	}
	return bookings
}

// UpdateStatus moves a booking to a new status and appends one activity
// log entry of type "order". A rejected status never touches the store or
// the log.
func (s *bookingService) UpdateStatus(ctx context.Context, caller models.Identity, bookingID string, status models.BookingStatus) (*models.Booking, error) {
	if bookingID == "" {
		return nil, NewFieldError("id", "booking id is required")
	}
	if !status.IsValid() {
		return nil, NewFieldError("status", "must be one of pending, confirmed, in_progress, completed, cancelled")
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}
	booking.Status = status

	// Best-effort: the status change has already been committed, so a log
	// failure is recorded server-side and swallowed.
	if s.activity != nil {
		details := fmt.Sprintf("booking %s status changed to %s", bookingID, status)
		if err := s.activity.Record(ctx, caller, "booking_status_updated", details, models.ActivityOrder); err != nil && s.logger != nil {
			s.logger.Error("failed to record booking activity",
				zap.String("bookingId", bookingID), zap.Error(err))
		}
	}

	return booking, nil
}

func (s *bookingService) Delete(ctx context.Context, bookingID string) error {
	if bookingID == "" {
		return NewFieldError("id", "booking id is required")
	}
	if _, err := s.bookingRepo.GetByID(ctx, bookingID); err != nil {
		return err
	}
	return s.bookingRepo.Delete(ctx, bookingID)
}
