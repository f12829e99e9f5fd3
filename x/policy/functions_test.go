package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sipradi/pvbu/core"
)

func TestResolveCondition(t *testing.T) {
	ctx := map[string]any{
		"id":       "u1",
		"ownerIds": []any{"o1", "o2"},
		"vehicle":  map[string]any{"ownerId": 42},
	}

	t.Run("scalar placeholder", func(t *testing.T) {
		filter := ResolveCondition(map[string]any{"ownerId": "${resourceContext.vehicle.ownerId}"}, ctx)
		assert.Equal(t, core.Filter{"ownerId": 42}, filter)
	})

	t.Run("list becomes in", func(t *testing.T) {
		filter := ResolveCondition(map[string]any{"ownerId": "${resourceContext.ownerIds}"}, ctx)
		assert.Equal(t, core.Filter{"ownerId": map[string]any{"in": []any{"o1", "o2"}}}, filter)
	})

	t.Run("literal list becomes in", func(t *testing.T) {
		filter := ResolveCondition(map[string]any{"status": []any{"open", "closed"}}, ctx)
		assert.Equal(t, core.Filter{"status": map[string]any{"in": []any{"open", "closed"}}}, filter)
	})

	t.Run("dotted key nests", func(t *testing.T) {
		filter := ResolveCondition(map[string]any{"vehicle.ownerId": "${resourceContext.id}"}, ctx)
		assert.Equal(t, core.Filter{"vehicle": map[string]any{"ownerId": "u1"}}, filter)
	})

	t.Run("missing segment resolves to nil", func(t *testing.T) {
		filter := ResolveCondition(map[string]any{"ownerId": "${resourceContext.company.id}"}, ctx)
		value, ok := filter["ownerId"]
		assert.True(t, ok)
		assert.Nil(t, value)
	})

	t.Run("literal passes through", func(t *testing.T) {
		filter := ResolveCondition(map[string]any{"active": true, "name": "${not closed"}, ctx)
		assert.Equal(t, core.Filter{"active": true, "name": "${not closed"}, filter)
	})

	t.Run("scalar intermediate is replaced", func(t *testing.T) {
		filter := ResolveCondition(map[string]any{
			"vehicle":    "x",
			"vehicle.id": "${resourceContext.id}",
		}, ctx)
		assert.Equal(t, core.Filter{"vehicle": map[string]any{"id": "u1"}}, filter)
	})
}

func TestResolveConditionOnActingUser(t *testing.T) {
	policyID := uint(3)
	user := core.ActingUser{
		Principal: core.Principal{
			ID:           "d1",
			Email:        "driver@example.com",
			PasswordHash: "hash",
			PolicyID:     &policyID,
		},
		Role:      core.RoleDriver,
		CreatedBy: "o9",
	}

	filter := ResolveCondition(map[string]any{
		"ownerId":  "${resourceContext.createdBy}",
		"driverId": "${resourceContext.id}",
		"policy":   "${resourceContext.policyId}",
		"secret":   "${resourceContext.PasswordHash}",
	}, structToMap(user))

	assert.Equal(t, "o9", filter["ownerId"])
	assert.Equal(t, "d1", filter["driverId"])
	assert.Equal(t, uint(3), filter["policy"])
	assert.Nil(t, filter["secret"])
}

func TestStructToMap(t *testing.T) {
	user := core.ActingUser{
		Principal: core.Principal{ID: "p1", PasswordHash: "hash"},
		Role:      core.RolePassenger,
	}

	m := structToMap(&user)
	assert.Equal(t, "p1", m["id"])
	assert.Equal(t, core.RolePassenger, m["role"])
	assert.Nil(t, m["policyId"])
	_, hasHash := m["passwordHash"]
	assert.False(t, hasHash)
}

type Stamp struct {
	At string `json:"at"`
}

type audit struct {
	Note string `json:"note"`
}

type auditedUser struct {
	*Stamp
	audit
	ID string `json:"id"`
}

func TestStructToMapEmbedded(t *testing.T) {
	m := structToMap(auditedUser{ID: "a1", audit: audit{Note: "hidden"}})
	assert.Equal(t, map[string]any{"id": "a1"}, m)

	m = structToMap(auditedUser{Stamp: &Stamp{At: "today"}, ID: "a1"})
	assert.Equal(t, map[string]any{"at": "today", "id": "a1"}, m)
}
