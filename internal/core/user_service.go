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

type userService struct {
	userRepo db.UserRepository
	activity ActivityService
	logger   *zap.Logger
}

// NewUserService creates a UserService over the given repository. The
// activity service records admin-side user mutations and may be nil in
// tests that do not assert on logging.
func NewUserService(userRepo db.UserRepository, activity ActivityService, logger *zap.Logger) UserService {
	return &userService{userRepo: userRepo, activity: activity, logger: logger}
}

func (s *userService) InitializeProfile(ctx context.Context, uid, email, displayName string) (*models.User, bool, error) {
	user, err := s.userRepo.GetByID(ctx, uid)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up profile %q: %w", uid, err)
	}

	newUser := &models.User{
		ID:          uid,
		Email:       email,
		DisplayName: displayName,
		Role:        models.RoleUser,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return nil, false, fmt.Errorf("failed to create profile %q: %w", uid, err)
	}
	return newUser, true, nil
}

func (s *userService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) UpdateOwnProfile(ctx context.Context, caller models.Identity, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, caller.ID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) AdminList(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.List(ctx)
}

// AdminUpdate applies an admin-panel edit to another user's profile,
// enforcing the role-escalation rules:
//   - a caller never modifies its own role field;
//   - granting super_admin requires the caller to hold super_admin;
//   - touching a stored super_admin profile requires super_admin.
func (s *userService) AdminUpdate(ctx context.Context, caller models.Identity, targetID string, req models.AdminUpdateUserRequest) (*models.User, error) {
	if targetID == "" {
		return nil, NewFieldError("id", "user id is required")
	}

	// Self-role changes are rejected before anything else, regardless of
	// the requested value.
	if req.Role != nil && targetID == caller.ID {
		return nil, fmt.Errorf("%w: you cannot change your own role", ErrForbidden)
	}
	if req.Role != nil && *req.Role == models.RoleSuperAdmin && caller.Role != models.RoleSuperAdmin {
		return nil, fmt.Errorf("%w: only a super admin can grant the super_admin role", ErrForbidden)
	}
	if req.Role != nil && !req.Role.IsValid() {
		return nil, NewFieldError("role", "must be one of user, admin, super_admin")
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target.Role == models.RoleSuperAdmin && caller.Role != models.RoleSuperAdmin {
		return nil, fmt.Errorf("%w: only a super admin can modify a super admin account", ErrForbidden)
	}

	if req.DisplayName != nil {
		target.DisplayName = *req.DisplayName
	}
	if req.Phone != nil {
		target.Phone = *req.Phone
	}
	if req.Address != nil {
		target.Address = *req.Address
	}
	if req.Role != nil {
		target.Role = *req.Role
	}
	target.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, caller, "user_updated",
		fmt.Sprintf("updated user %s", targetID))
	return target, nil
}

// AdminDelete removes a user account. Self-deletion is always rejected;
// deleting a super_admin requires the caller to be one.
func (s *userService) AdminDelete(ctx context.Context, caller models.Identity, targetID string) error {
	if targetID == "" {
		return NewFieldError("id", "user id is required")
	}
	if targetID == caller.ID {
		return fmt.Errorf("%w: you cannot delete your own account", ErrForbidden)
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target.Role == models.RoleSuperAdmin && caller.Role != models.RoleSuperAdmin {
		return fmt.Errorf("%w: only a super admin can delete a super admin account", ErrForbidden)
	}

	if err := s.userRepo.Delete(ctx, targetID); err != nil {
		return err
	}

	s.recordActivity(ctx, caller, "user_deleted",
		fmt.Sprintf("deleted user %s (%s)", targetID, target.Email))
	return nil
}

// recordActivity is best-effort: a failed append must not mask the
// primary operation's success.
func (s *userService) recordActivity(ctx context.Context, actor models.Identity, action, details string) {
	if s.activity == nil {
		return
	}
	if err := s.activity.Record(ctx, actor, action, details, models.ActivityUser); err != nil && s.logger != nil {
		s.logger.Error("failed to record user activity",
			zap.String("action", action), zap.Error(err))
	}
}
