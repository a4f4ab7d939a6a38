package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

// IsValid reports whether s is a known booking status.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingInProgress, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Booking is an order for a service placed by a user. ServiceName is a
// snapshot taken at creation time so renaming a service does not rewrite
// booking history. UserName and UserEmail are joined at read time and
// never stored.
type Booking struct {
	ID          string        `json:"id" firestore:"-"`
	UserID      string        `json:"userId" firestore:"userId"`
	ServiceID   string        `json:"serviceId" firestore:"serviceId"`
	ServiceName string        `json:"serviceName" firestore:"serviceName"`
	Date        string        `json:"date" firestore:"date"`
	TimeSlot    string        `json:"timeSlot" firestore:"timeSlot"`
	Hours       int           `json:"hours" firestore:"hours"`
	Address     string        `json:"address" firestore:"address"`
	TotalCost   float64       `json:"totalCost" firestore:"totalCost"`
	Status      BookingStatus `json:"status" firestore:"status"`
	Notes       string        `json:"notes,omitempty" firestore:"notes,omitempty"`
	CreatedAt   time.Time     `json:"createdAt" firestore:"createdAt,serverTimestamp"`

	UserName  string `json:"userName,omitempty" firestore:"-"`
	UserEmail string `json:"userEmail,omitempty" firestore:"-"`
}
