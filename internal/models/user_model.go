package models

import "time"

// User represents a customer or admin profile. The Firebase Auth UID is
// used as the Firestore document ID.
type User struct {
	ID          string    `json:"id" firestore:"-"`
	Email       string    `json:"email" firestore:"email"`
	DisplayName string    `json:"displayName,omitempty" firestore:"displayName,omitempty"`
	Phone       string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	Address     string    `json:"address,omitempty" firestore:"address,omitempty"`
	Role        Role      `json:"role" firestore:"role"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// Identity is the verified caller attached to a request after token
// verification and profile lookup.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
