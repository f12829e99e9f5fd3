package policy

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sipradi/pvbu/core"
	"github.com/sipradi/pvbu/internal/testutil"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	db := testutil.CreateSQLite(t)
	repo := NewRepository(db, nil)

	created, err := repo.Create(ctx, core.AccessPolicy{Title: "Driver", Description: "drivers"})
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)

	updated, err := repo.Update(ctx, core.AccessPolicy{ID: created.ID, Title: "Driver v2"})
	assert.NoError(t, err)
	assert.Equal(t, "Driver v2", updated.Title)
	assert.Equal(t, "drivers", updated.Description)

	_, err = repo.Get(ctx, created.ID+100)
	assert.ErrorIs(t, err, core.ErrorNotFound{})

	resource := core.Resource{Name: "trips", Actions: []core.ResourceAction{{Name: "read"}, {Name: "delete"}}}
	assert.NoError(t, db.Create(&resource).Error)
	read, remove := resource.Actions[0], resource.Actions[1]

	condition := core.ActionCondition{
		Label:            "Driver trips",
		Condition:        map[string]any{"driverId": "${resourceContext.id}"},
		ResourceActionID: read.ID,
	}
	assert.NoError(t, db.Create(&condition).Error)

	rules := []core.AccessRule{
		{PolicyID: created.ID, ResourceActionID: read.ID, ActionConditionID: &condition.ID, Resource: "trips", Effect: core.EffectAllow, RuleIdentifier: "a"},
		{PolicyID: created.ID, ResourceActionID: remove.ID, Resource: "trips", Effect: core.EffectDeny, RuleIdentifier: "b"},
	}
	assert.NoError(t, db.Create(&rules).Error)

	loaded, err := repo.ListRules(ctx, created.ID)
	assert.NoError(t, err)
	if assert.Len(t, loaded, 2) {
		assert.Equal(t, "read", loaded[0].ResourceAction.Name)
		assert.Equal(t, "Driver trips", loaded[0].ActionCondition.Label)
		assert.Nil(t, loaded[1].ActionCondition)
	}

	service := NewService(repo, core.Config{})
	compiled, err := service.Compile(ctx, created.ID)
	assert.NoError(t, err)
	block := compiled.Allow["trips"].Actions["read"]
	if assert.NotNil(t, block.ActionCondition) {
		assert.Equal(t, "${resourceContext.id}", block.ActionCondition.Condition["driverId"])
	}
	assert.Contains(t, compiled.Deny["trips"].Actions, "delete")

	// without redis the compiled cache is always empty
	_, err = repo.GetCompiled(ctx, created.ID)
	assert.ErrorIs(t, err, core.ErrorNotFound{})
	version, err := repo.CompiledVersion(ctx, created.ID)
	assert.NoError(t, err)
	assert.Zero(t, version)
	assert.NoError(t, repo.SetCompiled(ctx, created.ID, version, compiled, time.Minute))

	count, err := repo.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRepositoryCompiledCache(t *testing.T) {
	if os.Getenv("PVBU_DOCKER_TEST") == "" {
		t.Skip("PVBU_DOCKER_TEST is not set")
	}

	ctx := context.Background()

	rdb, cleanup := testutil.CreateRDB()
	defer cleanup()

	repo := NewRepository(testutil.CreateSQLite(t), rdb)

	compiled := core.NewCompiledPolicy()
	compiled.Allow["vehicle"] = core.ResourceActions{Actions: map[string]core.ActionBlock{"read": {}}}

	version, err := repo.CompiledVersion(ctx, 1)
	assert.NoError(t, err)
	assert.NoError(t, repo.SetCompiled(ctx, 1, version, compiled, time.Minute))

	cached, err := repo.GetCompiled(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, compiled, cached)

	assert.NoError(t, repo.InvalidateCompiled(ctx, 1))
	_, err = repo.GetCompiled(ctx, 1)
	assert.ErrorIs(t, err, core.ErrorNotFound{})

	// the version read before the invalidation no longer writes
	assert.NoError(t, repo.SetCompiled(ctx, 1, version, compiled, time.Minute))
	_, err = repo.GetCompiled(ctx, 1)
	assert.ErrorIs(t, err, core.ErrorNotFound{})
}

// syncDuringListRules commits a rule change right after the rules were read,
// the way a Sync running concurrently with a compilation would.
type syncDuringListRules struct {
	Repository
	sync func()
}

func (r *syncDuringListRules) ListRules(ctx context.Context, policyID uint) ([]core.AccessRule, error) {
	rules, err := r.Repository.ListRules(ctx, policyID)
	if r.sync != nil {
		r.sync()
		r.sync = nil
	}
	return rules, err
}

func TestCompileDoesNotCacheRulesOlderThanInvalidation(t *testing.T) {
	ctx := context.Background()

	db := testutil.CreateSQLite(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	repo := NewRepository(db, rdb)

	policy, err := repo.Create(ctx, core.AccessPolicy{Title: "Owner"})
	require.NoError(t, err)

	resource := core.Resource{Name: "vehicle", Actions: []core.ResourceAction{{Name: "read"}}}
	require.NoError(t, db.Create(&resource).Error)
	read := resource.Actions[0]

	require.NoError(t, db.Create(&core.AccessRule{
		PolicyID: policy.ID, ResourceActionID: read.ID, Resource: "vehicle", Effect: core.EffectAllow, RuleIdentifier: "allow",
	}).Error)

	var service core.PolicyService
	racing := &syncDuringListRules{Repository: repo}
	racing.sync = func() {
		require.NoError(t, db.Create(&core.AccessRule{
			PolicyID: policy.ID, ResourceActionID: read.ID, Resource: "vehicle", Effect: core.EffectDeny, RuleIdentifier: "deny",
		}).Error)
		require.NoError(t, service.Invalidate(ctx, policy.ID))
	}
	service = NewService(racing, core.Config{PolicyCacheTTL: time.Minute})

	owner := core.ActingUser{Principal: core.Principal{ID: "o1", PolicyID: &policy.ID}, Role: core.RoleOwner}

	// this evaluation read the rules before the deny was committed
	decision, err := service.Evaluate(ctx, owner, core.ResourceVehicle, core.ActionRead)
	assert.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.False(t, mr.Exists(compiledKey(policy.ID)))

	decision, err = service.Evaluate(ctx, owner, core.ResourceVehicle, core.ActionRead)
	assert.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.True(t, mr.Exists(compiledKey(policy.ID)))

	decision, err = service.Evaluate(ctx, owner, core.ResourceVehicle, core.ActionRead)
	assert.NoError(t, err)
	assert.False(t, decision.Allowed)
}
