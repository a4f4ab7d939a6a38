package models

import "time"

// Service is a bookable care service in the public catalog.
// Inactive services stay in the store but are excluded from public reads.
type Service struct {
	ID          string    `json:"id" firestore:"-"`
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	PricePerHr  float64   `json:"pricePerHr" firestore:"pricePerHr"`
	ImageURL    string    `json:"imageUrl,omitempty" firestore:"imageUrl,omitempty"`
	Features    []string  `json:"features,omitempty" firestore:"features,omitempty"`
	IsActive    bool      `json:"isActive" firestore:"isActive"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
