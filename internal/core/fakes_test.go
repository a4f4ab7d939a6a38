package core

import (
	"context"
	"fmt"

	"careconnect-backend-go/internal/db"
	"careconnect-backend-go/internal/models"
)

// In-memory fakes for the repository and activity interfaces, shared by
// the service tests in this package.

type memUserRepo struct {
	users map[string]*models.User
	err   error
}

func newMemUserRepo(users ...*models.User) *memUserRepo {
	r := &memUserRepo{users: map[string]*models.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, fmt.Errorf("user %q: %w", id, db.ErrNotFound)
}

func (r *memUserRepo) Create(_ context.Context, u *models.User) error {
	if r.err != nil {
		return r.err
	}
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) Update(_ context.Context, u *models.User) error {
	if r.err != nil {
		return r.err
	}
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) List(_ context.Context) ([]*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*models.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.users[id]; !ok {
		return db.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type memServiceRepo struct {
	services map[string]*models.Service
	nextID   int
}

func newMemServiceRepo(services ...*models.Service) *memServiceRepo {
	r := &memServiceRepo{services: map[string]*models.Service{}}
	for _, s := range services {
		r.services[s.ID] = s
	}
	return r
}

func (r *memServiceRepo) GetByID(_ context.Context, id string) (*models.Service, error) {
	if s, ok := r.services[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, fmt.Errorf("service %q: %w", id, db.ErrNotFound)
}

func (r *memServiceRepo) Create(_ context.Context, s *models.Service) (string, error) {
	r.nextID++
	s.ID = fmt.Sprintf("svc-%d", r.nextID)
	r.services[s.ID] = s
	return s.ID, nil
}

func (r *memServiceRepo) Update(_ context.Context, s *models.Service) error {
	r.services[s.ID] = s
	return nil
}

func (r *memServiceRepo) Delete(_ context.Context, id string) error {
	delete(r.services, id)
	return nil
}

func (r *memServiceRepo) List(_ context.Context) ([]*models.Service, error) {
	var out []*models.Service
	for _, s := range r.services {
		out = append(out, s)
	}
	return out, nil
}

func (r *memServiceRepo) ListActive(_ context.Context) ([]*models.Service, error) {
	var out []*models.Service
	for _, s := range r.services {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

type memBookingRepo struct {
	bookings      map[string]*models.Booking
	nextID        int
	statusUpdates []string
}

func newMemBookingRepo(bookings ...*models.Booking) *memBookingRepo {
	r := &memBookingRepo{bookings: map[string]*models.Booking{}}
	for _, b := range bookings {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *memBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	if b, ok := r.bookings[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, fmt.Errorf("booking %q: %w", id, db.ErrNotFound)
}

func (r *memBookingRepo) Create(_ context.Context, b *models.Booking) (string, error) {
	r.nextID++
	b.ID = fmt.Sprintf("bk-%d", r.nextID)
	r.bookings[b.ID] = b
	return b.ID, nil
}

func (r *memBookingRepo) UpdateStatus(_ context.Context, id string, status models.BookingStatus) error {
	b, ok := r.bookings[id]
	if !ok {
		return db.ErrNotFound
	}
	b.Status = status
	r.statusUpdates = append(r.statusUpdates, id)
	return nil
}

func (r *memBookingRepo) Delete(_ context.Context, id string) error {
	delete(r.bookings, id)
	return nil
}

func (r *memBookingRepo) List(_ context.Context) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range r.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (r *memBookingRepo) ListByUserID(_ context.Context, userID string) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

// recordingActivity captures Record calls; err, when set, makes every
// append fail.
type recordingActivity struct {
	entries []models.ActivityLog
	err     error
}

func (a *recordingActivity) Record(_ context.Context, actor models.Identity, action, details string, typ models.ActivityType) error {
	if a.err != nil {
		return a.err
	}
	a.entries = append(a.entries, models.ActivityLog{
		UserID:  actor.ID,
		Action:  action,
		Details: details,
		Type:    typ,
	})
	return nil
}

func (a *recordingActivity) List(_ context.Context, _ int) ([]*models.ActivityLog, error) {
	var out []*models.ActivityLog
	for i := range a.entries {
		out = append(out, &a.entries[i])
	}
	return out, nil
}

// fakePaymentClient records the last intent request.
type fakePaymentClient struct {
	lastAmount   int64
	lastCurrency string
	lastMetadata map[string]string
	calls        int
	err          error
}

func (c *fakePaymentClient) CreateIntent(_ context.Context, amountMinor int64, currency string, metadata map[string]string) (*PaymentIntent, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	c.lastAmount = amountMinor
	c.lastCurrency = currency
	c.lastMetadata = metadata
	return &PaymentIntent{IntentID: "pi_test", ClientSecret: "pi_test_secret"}, nil
}
