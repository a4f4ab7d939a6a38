package db

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"careconnect-backend-go/internal/models"
)

const activityLogsCollection = "activity_logs"

type firestoreActivityLogRepository struct {
	client *firestore.Client
}

// NewFirestoreActivityLogRepository creates a Firestore-backed
// ActivityLogRepository.
func NewFirestoreActivityLogRepository(client *firestore.Client) ActivityLogRepository {
	return &firestoreActivityLogRepository{client: client}
}

func (r *firestoreActivityLogRepository) Create(ctx context.Context, entry *models.ActivityLog) error {
	if entry.ID == "" {
		return errors.New("activity log ID cannot be empty")
	}
	if _, err := r.client.Collection(activityLogsCollection).Doc(entry.ID).Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to create activity log entry: %w", err)
	}
	return nil
}

// List returns entries newest first. A limit <= 0 returns all entries.
func (r *firestoreActivityLogRepository) List(ctx context.Context, limit int) ([]*models.ActivityLog, error) {
	query := r.client.Collection(activityLogsCollection).OrderBy("timestamp", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var entries []*models.ActivityLog
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate activity logs: %w", err)
		}
		var entry models.ActivityLog
		if err := doc.DataTo(&entry); err != nil {
			return nil, fmt.Errorf("failed to decode activity log %q: %w", doc.Ref.ID, err)
		}
		entry.ID = doc.Ref.ID
		entries = append(entries, &entry)
	}
	return entries, nil
}
