package models

import "time"

// ActivityType categorises an activity log entry.
type ActivityType string

const (
	ActivityOrder  ActivityType = "order"
	ActivityUser   ActivityType = "user"
	ActivitySystem ActivityType = "system"
)

// ActivityLog is one append-only audit record. Entries are listed newest
// first and never updated or deleted.
type ActivityLog struct {
	ID        string       `json:"id" firestore:"-"`
	UserID    string       `json:"userId" firestore:"userId"`
	UserName  string       `json:"userName,omitempty" firestore:"userName,omitempty"`
	Action    string       `json:"action" firestore:"action"`
	Details   string       `json:"details,omitempty" firestore:"details,omitempty"`
	Type      ActivityType `json:"type" firestore:"type"`
	Timestamp time.Time    `json:"timestamp" firestore:"timestamp"`
}
