package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"careconnect-backend-go/internal/db"
	"careconnect-backend-go/internal/models"
)

func rolePtr(r models.Role) *models.Role { return &r }

func TestInitializeProfile_CreatesWithUserRole(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo, nil, zap.NewNop())

	user, created, err := svc.InitializeProfile(context.Background(), "u1", "a@b.com", "Alice")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Equal(t, "a@b.com", user.Email)

	// Second call finds the existing profile.
	again, created, err := svc.InitializeProfile(context.Background(), "u1", "a@b.com", "Alice")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, user.ID, again.ID)
}

func TestAdminUpdate_SelfRoleChangeForbidden(t *testing.T) {
	caller := models.Identity{ID: "admin-1", Role: models.RoleSuperAdmin}
	repo := newMemUserRepo(&models.User{ID: "admin-1", Role: models.RoleSuperAdmin})
	svc := NewUserService(repo, nil, zap.NewNop())

	// Even a super admin lowering its own role is rejected.
	_, err := svc.AdminUpdate(context.Background(), caller, "admin-1",
		models.AdminUpdateUserRequest{Role: rolePtr(models.RoleUser)})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAdminUpdate_GrantSuperAdminRequiresSuperAdmin(t *testing.T) {
	target := &models.User{ID: "u2", Role: models.RoleUser}

	adminCaller := models.Identity{ID: "admin-1", Role: models.RoleAdmin}
	svc := NewUserService(newMemUserRepo(target), nil, zap.NewNop())
	_, err := svc.AdminUpdate(context.Background(), adminCaller, "u2",
		models.AdminUpdateUserRequest{Role: rolePtr(models.RoleSuperAdmin)})
	assert.ErrorIs(t, err, ErrForbidden)

	superCaller := models.Identity{ID: "root-1", Role: models.RoleSuperAdmin}
	repo := newMemUserRepo(&models.User{ID: "u2", Role: models.RoleUser})
	svc = NewUserService(repo, nil, zap.NewNop())
	updated, err := svc.AdminUpdate(context.Background(), superCaller, "u2",
		models.AdminUpdateUserRequest{Role: rolePtr(models.RoleSuperAdmin)})
	require.NoError(t, err)
	assert.Equal(t, models.RoleSuperAdmin, updated.Role)
}

func TestAdminUpdate_SuperAdminTargetProtected(t *testing.T) {
	repo := newMemUserRepo(&models.User{ID: "root-2", Role: models.RoleSuperAdmin})
	svc := NewUserService(repo, nil, zap.NewNop())

	name := "New Name"
	_, err := svc.AdminUpdate(context.Background(),
		models.Identity{ID: "admin-1", Role: models.RoleAdmin}, "root-2",
		models.AdminUpdateUserRequest{DisplayName: &name})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAdminUpdate_TargetNotFound(t *testing.T) {
	svc := NewUserService(newMemUserRepo(), nil, zap.NewNop())

	name := "X"
	_, err := svc.AdminUpdate(context.Background(),
		models.Identity{ID: "admin-1", Role: models.RoleAdmin}, "ghost",
		models.AdminUpdateUserRequest{DisplayName: &name})

	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestAdminDelete_SelfDeletionForbidden(t *testing.T) {
	repo := newMemUserRepo(&models.User{ID: "admin-1", Role: models.RoleAdmin})
	svc := NewUserService(repo, nil, zap.NewNop())

	err := svc.AdminDelete(context.Background(),
		models.Identity{ID: "admin-1", Role: models.RoleAdmin}, "admin-1")

	assert.ErrorIs(t, err, ErrForbidden)
	_, stillThere := repo.users["admin-1"]
	assert.True(t, stillThere)
}

func TestAdminDelete_SuperAdminTarget(t *testing.T) {
	// An admin cannot delete a super admin.
	repo := newMemUserRepo(&models.User{ID: "root-1", Role: models.RoleSuperAdmin})
	svc := NewUserService(repo, nil, zap.NewNop())
	err := svc.AdminDelete(context.Background(),
		models.Identity{ID: "admin-1", Role: models.RoleAdmin}, "root-1")
	assert.ErrorIs(t, err, ErrForbidden)

	// A super admin can.
	repo = newMemUserRepo(&models.User{ID: "root-1", Role: models.RoleSuperAdmin})
	svc = NewUserService(repo, nil, zap.NewNop())
	err = svc.AdminDelete(context.Background(),
		models.Identity{ID: "root-2", Role: models.RoleSuperAdmin}, "root-1")
	require.NoError(t, err)
	_, stillThere := repo.users["root-1"]
	assert.False(t, stillThere)
}

func TestAdminDelete_RecordsActivity(t *testing.T) {
	repo := newMemUserRepo(&models.User{ID: "u2", Email: "u2@x.com", Role: models.RoleUser})
	activity := &recordingActivity{}
	svc := NewUserService(repo, activity, zap.NewNop())

	err := svc.AdminDelete(context.Background(),
		models.Identity{ID: "admin-1", Role: models.RoleAdmin}, "u2")
	require.NoError(t, err)

	require.Len(t, activity.entries, 1)
	assert.Equal(t, models.ActivityUser, activity.entries[0].Type)
	assert.Equal(t, "user_deleted", activity.entries[0].Action)
}

func TestAdminDelete_LoggingFailureDoesNotMaskSuccess(t *testing.T) {
	repo := newMemUserRepo(&models.User{ID: "u2", Role: models.RoleUser})
	activity := &recordingActivity{err: errors.New("log store down")}
	svc := NewUserService(repo, activity, zap.NewNop())

	err := svc.AdminDelete(context.Background(),
		models.Identity{ID: "admin-1", Role: models.RoleAdmin}, "u2")

	assert.NoError(t, err)
}

func TestUpdateOwnProfile_DoesNotTouchRole(t *testing.T) {
	repo := newMemUserRepo(&models.User{ID: "u1", Role: models.RoleAdmin, DisplayName: "Old"})
	svc := NewUserService(repo, nil, zap.NewNop())

	name := "New"
	updated, err := svc.UpdateOwnProfile(context.Background(),
		models.Identity{ID: "u1", Role: models.RoleAdmin},
		models.UpdateProfileRequest{DisplayName: &name})

	require.NoError(t, err)
	assert.Equal(t, "New", updated.DisplayName)
	assert.Equal(t, models.RoleAdmin, updated.Role)
}
