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

const bookingsCollection = "bookings"

type firestoreBookingRepository struct {
	client *firestore.Client
}

// NewFirestoreBookingRepository creates a Firestore-backed BookingRepository.
func NewFirestoreBookingRepository(client *firestore.Client) BookingRepository {
	return &firestoreBookingRepository{client: client}
}

func (r *firestoreBookingRepository) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	if bookingID == "" {
		return nil, errors.New("bookingID cannot be empty")
	}
	snap, err := r.client.Collection(bookingsCollection).Doc(bookingID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("booking %q: %w", bookingID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get booking %q: %w", bookingID, err)
	}

	var booking models.Booking
	if err := snap.DataTo(&booking); err != nil {
		return nil, fmt.Errorf("failed to decode booking %q: %w", bookingID, err)
	}
	booking.ID = snap.Ref.ID
	return &booking, nil
}

func (r *firestoreBookingRepository) Create(ctx context.Context, booking *models.Booking) (string, error) {
	ref := r.client.Collection(bookingsCollection).NewDoc()
	booking.ID = ref.ID
	if _, err := ref.Create(ctx, booking); err != nil {
		return "", fmt.Errorf("failed to create booking: %w", err)
	}
	return ref.ID, nil
}

func (r *firestoreBookingRepository) UpdateStatus(ctx context.Context, bookingID string, bstatus models.BookingStatus) error {
	if bookingID == "" {
		return errors.New("bookingID cannot be empty")
	}
	_, err := r.client.Collection(bookingsCollection).Doc(bookingID).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(bstatus)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("booking %q: %w", bookingID, ErrNotFound)
		}
		return fmt.Errorf("failed to update booking %q status: %w", bookingID, err)
	}
	return nil
}

func (r *firestoreBookingRepository) Delete(ctx context.Context, bookingID string) error {
	if bookingID == "" {
		return errors.New("bookingID cannot be empty")
	}
	_, err := r.client.Collection(bookingsCollection).Doc(bookingID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete booking %q: %w", bookingID, err)
	}
	return nil
}

func (r *firestoreBookingRepository) List(ctx context.Context) ([]*models.Booking, error) {
	query := r.client.Collection(bookingsCollection).OrderBy("createdAt", firestore.Desc)
	return r.collect(query.Documents(ctx))
}

func (r *firestoreBookingRepository) ListByUserID(ctx context.Context, userID string) ([]*models.Booking, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty")
	}
	query := r.client.Collection(bookingsCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)
	return r.collect(query.Documents(ctx))
}

func (r *firestoreBookingRepository) collect(iter *firestore.DocumentIterator) ([]*models.Booking, error) {
	defer iter.Stop()

	var bookings []*models.Booking
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate bookings: %w", err)
		}
		var booking models.Booking
		if err := doc.DataTo(&booking); err != nil {
			return nil, fmt.Errorf("failed to decode booking %q: %w", doc.Ref.ID, err)
		}
		booking.ID = doc.Ref.ID
		bookings = append(bookings, &booking)
	}
	return bookings, nil
}
