package models

import "time"

// Testimonial is a customer quote. Only visible testimonials are exposed
// on the public endpoint; the admin surface sees all of them.
type Testimonial struct {
	ID        string    `json:"id" firestore:"-"`
	Name      string    `json:"name" firestore:"name"`
	Location  string    `json:"location,omitempty" firestore:"location,omitempty"`
	Quote     string    `json:"quote" firestore:"quote"`
	Rating    int       `json:"rating,omitempty" firestore:"rating,omitempty"`
	IsVisible bool      `json:"isVisible" firestore:"isVisible"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
