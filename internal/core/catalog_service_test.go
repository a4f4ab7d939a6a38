package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careconnect-backend-go/internal/db"
	"careconnect-backend-go/internal/models"
)

func TestPublicList_ExcludesInactive(t *testing.T) {
	repo := newMemServiceRepo(
		&models.Service{ID: "svc-1", Title: "Active", IsActive: true},
		&models.Service{ID: "svc-2", Title: "Hidden", IsActive: false},
	)
	svc := NewCatalogService(repo)

	public, err := svc.PublicList(context.Background())
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "svc-1", public[0].ID)

	all, err := svc.AdminList(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPublicGet_InactiveReportsNotFound(t *testing.T) {
	repo := newMemServiceRepo(&models.Service{ID: "svc-2", IsActive: false})
	svc := NewCatalogService(repo)

	_, err := svc.PublicGet(context.Background(), "svc-2")

	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestCatalogCreate_DefaultsToActive(t *testing.T) {
	repo := newMemServiceRepo()
	svc := NewCatalogService(repo)

	created, err := svc.Create(context.Background(), models.CreateServiceRequest{
		Title: "Elder Care", PricePerHr: 30,
	})

	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.NotEmpty(t, created.ID)
}

func TestCatalogUpdate_RejectsNonPositivePrice(t *testing.T) {
	repo := newMemServiceRepo(&models.Service{ID: "svc-1", PricePerHr: 20, IsActive: true})
	svc := NewCatalogService(repo)

	bad := -5.0
	_, err := svc.Update(context.Background(), "svc-1", models.UpdateServiceRequest{PricePerHr: &bad})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "pricePerHr")
	// No partial write.
	assert.Equal(t, 20.0, repo.services["svc-1"].PricePerHr)
}

func TestCatalogDelete_MissingIDIsValidationFailure(t *testing.T) {
	svc := NewCatalogService(newMemServiceRepo())

	err := svc.Delete(context.Background(), "")

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestCatalogDelete_UnknownIDIsNotFound(t *testing.T) {
	svc := NewCatalogService(newMemServiceRepo())

	err := svc.Delete(context.Background(), "ghost")

	assert.ErrorIs(t, err, db.ErrNotFound)
}
