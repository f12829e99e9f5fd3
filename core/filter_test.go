package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sipradi/pvbu/core"
	"github.com/sipradi/pvbu/internal/testutil"
)

func TestFilterQuery(t *testing.T) {
	filter := core.Filter{
		"ownerId": "o1",
		"vehicle": map[string]any{
			"id": map[string]any{"in": []any{"v1", "v2"}},
		},
		"missing": nil,
	}

	query := filter.Query()
	assert.Equal(t, "o1", query.Get("ownerId"))
	assert.Equal(t, []string{"v1", "v2"}, query["vehicle.id.in"])
	assert.False(t, query.Has("missing"))
}

func TestScopeFilter(t *testing.T) {
	db := testutil.CreateSQLite(t)

	drivers := []core.Driver{
		{Principal: testutil.NewPrincipal("a@example.com", nil), CreatedBy: "owner1"},
		{Principal: testutil.NewPrincipal("b@example.com", nil), CreatedBy: "owner1"},
		{Principal: testutil.NewPrincipal("c@example.com", nil), CreatedBy: "owner2"},
	}
	assert.NoError(t, db.Create(&drivers).Error)

	var rows []core.Driver
	err := db.Scopes(core.ScopeFilter(core.Filter{"createdBy": "owner1"})).Find(&rows).Error
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	rows = nil
	err = db.Scopes(core.ScopeFilter(core.Filter{
		"id": map[string]any{"in": []string{drivers[0].ID, drivers[2].ID}},
	})).Find(&rows).Error
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	// nil values do not narrow the query
	rows = nil
	err = db.Scopes(core.ScopeFilter(core.Filter{"createdBy": nil})).Find(&rows).Error
	assert.NoError(t, err)
	assert.Len(t, rows, 3)

	rows = nil
	err = db.Scopes(core.ScopeFilter(core.Filter{
		"vehicle": map[string]any{"ownerId": "owner1"},
	})).Find(&rows).Error
	assert.Error(t, err)
}

func TestSetupConfig(t *testing.T) {
	config := core.SetupConfig(core.ConfigInput{
		JWTSecret:      "secret",
		PolicyCacheTTL: "5m",
	})
	assert.Equal(t, "secret", config.JWTSecret)
	assert.Equal(t, "24h0m0s", config.TokenTTL.String())
	assert.Equal(t, "5m0s", config.PolicyCacheTTL.String())
	assert.Equal(t, "admin", config.Admin.ID)

	assert.Panics(t, func() {
		core.SetupConfig(core.ConfigInput{PolicyCacheTTL: "soon"})
	})
}

func TestParseAction(t *testing.T) {
	action, err := core.ParseAction("updateSelf")
	assert.NoError(t, err)
	assert.Equal(t, core.ActionUpdateSelf, action)

	_, err = core.ParseAction("fly")
	assert.ErrorAs(t, err, &core.ErrorBadRequest{})
}
