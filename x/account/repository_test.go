package account

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sipradi/pvbu/core"
	"github.com/sipradi/pvbu/internal/testutil"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	db := testutil.CreateSQLite(t)
	repo := NewRepository(db, nil)

	owner := core.Owner{Principal: testutil.NewPrincipal("owner@example.com", nil)}
	owner.PasswordHash = "hash"
	assert.NoError(t, db.Create(&owner).Error)

	drivers := []core.Driver{
		{Principal: testutil.NewPrincipal("d1@example.com", nil), CreatedBy: owner.ID},
		{Principal: testutil.NewPrincipal("d2@example.com", nil), CreatedBy: owner.ID},
		{Principal: testutil.NewPrincipal("d3@example.com", nil), CreatedBy: "someone-else"},
	}
	assert.NoError(t, db.Create(&drivers).Error)

	user, err := repo.Get(ctx, core.RoleOwner, owner.ID)
	assert.NoError(t, err)
	assert.Equal(t, core.RoleOwner, user.Role)
	assert.Equal(t, "owner@example.com", user.Email)

	user, err = repo.GetByEmail(ctx, core.RoleOwner, "owner@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "hash", user.PasswordHash)

	// accounts are separated by role
	_, err = repo.Get(ctx, core.RolePassenger, owner.ID)
	assert.ErrorIs(t, err, core.ErrorNotFound{})

	user, err = repo.Get(ctx, core.RoleDriver, drivers[0].ID)
	assert.NoError(t, err)
	assert.Equal(t, owner.ID, user.CreatedBy)

	listed, err := repo.List(ctx, core.RoleDriver, core.Filter{"createdBy": owner.ID})
	assert.NoError(t, err)
	assert.Len(t, listed, 2)

	listed, err = repo.List(ctx, core.RoleDriver, nil)
	assert.NoError(t, err)
	assert.Len(t, listed, 3)

	_, err = repo.List(ctx, core.RoleAdmin, nil)
	assert.ErrorAs(t, err, &core.ErrorBadRequest{})

	policy := core.AccessPolicy{Title: "Driver"}
	assert.NoError(t, db.Create(&policy).Error)

	assert.NoError(t, repo.SetPolicy(ctx, core.RoleDriver, drivers[1].ID, policy.ID))
	user, err = repo.Get(ctx, core.RoleDriver, drivers[1].ID)
	assert.NoError(t, err)
	if assert.NotNil(t, user.PolicyID) {
		assert.Equal(t, policy.ID, *user.PolicyID)
	}

	err = repo.SetPolicy(ctx, core.RoleOwner, "missing", policy.ID)
	assert.ErrorIs(t, err, core.ErrorNotFound{})
}

func TestRepositoryCache(t *testing.T) {
	if os.Getenv("PVBU_DOCKER_TEST") == "" {
		t.Skip("PVBU_DOCKER_TEST is not set")
	}

	ctx := context.Background()
	db := testutil.CreateSQLite(t)

	mc, cleanup := testutil.CreateMC()
	defer cleanup()

	repo := NewRepository(db, mc)

	passenger := core.Passenger{Principal: testutil.NewPrincipal("p@example.com", nil)}
	assert.NoError(t, db.Create(&passenger).Error)

	_, err := repo.Get(ctx, core.RolePassenger, passenger.ID)
	assert.NoError(t, err)

	// a direct write is hidden by the cache until SetPolicy drops it
	assert.NoError(t, db.Model(&core.Passenger{}).Where("id = ?", passenger.ID).Update("display_name", "renamed").Error)
	cached, err := repo.Get(ctx, core.RolePassenger, passenger.ID)
	assert.NoError(t, err)
	assert.Equal(t, "p@example.com", cached.DisplayName)

	assert.NoError(t, repo.SetPolicy(ctx, core.RolePassenger, passenger.ID, 1))
	fresh, err := repo.Get(ctx, core.RolePassenger, passenger.ID)
	assert.NoError(t, err)
	assert.Equal(t, "renamed", fresh.DisplayName)
}
