package core

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"careconnect-backend-go/internal/db"
	"careconnect-backend-go/internal/models"
)

type activityService struct {
	activityRepo db.ActivityLogRepository
}

// NewActivityService creates an ActivityService over the given repository.
func NewActivityService(activityRepo db.ActivityLogRepository) ActivityService {
	return &activityService{activityRepo: activityRepo}
}

// Record appends one immutable entry with a server-observed timestamp.
func (s *activityService) Record(ctx context.Context, actor models.Identity, action, details string, typ models.ActivityType) error {
	entry := &models.ActivityLog{
		ID:        uuid.NewString(),
		UserID:    actor.ID,
		UserName:  actor.Email,
		Action:    action,
		Details:   details,
		Type:      typ,
		Timestamp: time.Now().UTC(),
	}
	if err := s.activityRepo.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to append activity log: %w", err)
	}
	return nil
}

func (s *activityService) List(ctx context.Context, limit int) ([]*models.ActivityLog, error) {
	return s.activityRepo.List(ctx, limit)
}
