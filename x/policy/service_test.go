package policy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"

	"github.com/sipradi/pvbu/core"
	"github.com/sipradi/pvbu/internal/testutil"
	"github.com/sipradi/pvbu/x/policy/mock"
)

func ptr[T any](v T) *T {
	return &v
}

func action(resource, name string) *core.ResourceAction {
	return &core.ResourceAction{Name: name, Resource: &core.Resource{Name: resource}}
}

func allowRule(resource, name string) core.AccessRule {
	return core.AccessRule{Resource: resource, Effect: core.EffectAllow, ResourceAction: action(resource, name)}
}

func denyRule(resource, name string) core.AccessRule {
	return core.AccessRule{Resource: resource, Effect: core.EffectDeny, ResourceAction: action(resource, name)}
}

func conditionalRule(resource, name, label string, condition map[string]any) core.AccessRule {
	rule := allowRule(resource, name)
	rule.ActionCondition = &core.ActionCondition{Label: label, Condition: datatypes.JSONMap(condition)}
	return rule
}

func setupService(t *testing.T, rules []core.AccessRule) core.PolicyService {
	ctrl := gomock.NewController(t)
	repo := mock_policy.NewMockRepository(ctrl)
	repo.EXPECT().Get(gomock.Any(), uint(1)).Return(core.AccessPolicy{ID: 1, Title: "test"}, nil).AnyTimes()
	repo.EXPECT().ListRules(gomock.Any(), uint(1)).Return(rules, nil).AnyTimes()
	return NewService(repo, core.Config{})
}

func user(role core.Role) core.ActingUser {
	return core.ActingUser{
		Principal: core.Principal{ID: "u1", PolicyID: ptr(uint(1))},
		Role:      role,
	}
}

func TestEvaluateDenyWins(t *testing.T) {
	ctx := context.Background()

	service := setupService(t, []core.AccessRule{
		allowRule("vehicle", "*"),
		denyRule("vehicle", "delete"),
	})

	decision, err := service.Evaluate(ctx, user(core.RoleOwner), core.ResourceVehicle, core.ActionRead)
	assert.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Nil(t, decision.Filter)

	decision, err = service.Evaluate(ctx, user(core.RoleOwner), core.ResourceVehicle, core.ActionDelete)
	assert.NoError(t, err)
	assert.False(t, decision.Allowed)
}

func TestEvaluateWildcardDeny(t *testing.T) {
	ctx := context.Background()

	service := setupService(t, []core.AccessRule{
		allowRule("*", "*"),
		denyRule("*", "*"),
	})

	for _, resource := range []core.ResourceName{core.ResourceVehicle, core.ResourceWallet, core.ResourceAccessManagement} {
		decision, err := service.Evaluate(ctx, user(core.RoleAdmin), resource, core.ActionRead)
		assert.NoError(t, err)
		assert.False(t, decision.Allowed)
	}
}

func TestEvaluateWildcardDenyOnResource(t *testing.T) {
	ctx := context.Background()

	service := setupService(t, []core.AccessRule{
		allowRule("*", "*"),
		denyRule("wallet", "*"),
	})

	decision, err := service.Evaluate(ctx, user(core.RoleAdmin), core.ResourceWallet, core.ActionRead)
	assert.NoError(t, err)
	assert.False(t, decision.Allowed)

	decision, err = service.Evaluate(ctx, user(core.RoleAdmin), core.ResourceTrips, core.ActionRead)
	assert.NoError(t, err)
	assert.True(t, decision.Allowed)
}

func TestEvaluateWildcardResourceDenyOnAction(t *testing.T) {
	ctx := context.Background()

	service := setupService(t, []core.AccessRule{
		allowRule("vehicle", "read"),
		allowRule("vehicle", "update"),
		denyRule("*", "read"),
	})

	for _, resource := range []core.ResourceName{core.ResourceVehicle, core.ResourceWallet} {
		decision, err := service.Evaluate(ctx, user(core.RoleOwner), resource, core.ActionRead)
		assert.NoError(t, err)
		assert.False(t, decision.Allowed)
	}

	decision, err := service.Evaluate(ctx, user(core.RoleOwner), core.ResourceVehicle, core.ActionUpdate)
	assert.NoError(t, err)
	assert.True(t, decision.Allowed)
}

func TestEvaluateSpecificOverridesWildcard(t *testing.T) {
	ctx := context.Background()

	service := setupService(t, []core.AccessRule{
		allowRule("*", "read"),
		conditionalRule("vehicle", "read", "Owner vehicles", map[string]any{"ownerId": "${resourceContext.id}"}),
	})

	decision, err := service.Evaluate(ctx, user(core.RoleOwner), core.ResourceVehicle, core.ActionRead)
	assert.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, core.Filter{"ownerId": "u1"}, decision.Filter)

	decision, err = service.Evaluate(ctx, user(core.RoleOwner), core.ResourceRoutes, core.ActionRead)
	assert.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Nil(t, decision.Filter)
}

func TestEvaluateDriverTrips(t *testing.T) {
	checker := testutil.SetupMockTraceProvider()

	ctx, span := tracer.Start(context.Background(), "testRoot")
	defer span.End()
	traceID := span.SpanContext().TraceID().String()

	service := setupService(t, []core.AccessRule{
		conditionalRule("trips", "read", "Driver trips", map[string]any{"driverId": "${resourceContext.id}"}),
	})

	driver := user(core.RoleDriver)
	driver.ID = "7"

	decision, err := service.Evaluate(ctx, driver, core.ResourceTrips, core.ActionRead)
	assert.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, core.Filter{"driverId": "7"}, decision.Filter)

	decision, err = service.Evaluate(ctx, driver, core.ResourceTrips, core.ActionDelete)
	assert.NoError(t, err)
	assert.False(t, decision.Allowed)

	names := testutil.SpanNames(checker.GetSpans(), traceID)
	assert.Contains(t, names, "Policy.Service.Evaluate")
	assert.Contains(t, names, "Policy.Service.Compile")
}

func TestEvaluateWithoutPolicy(t *testing.T) {
	ctx := context.Background()
	service := setupService(t, nil)

	_, err := service.Evaluate(ctx, core.ActingUser{Role: core.RoleOwner}, core.ResourceVehicle, core.ActionRead)
	assert.ErrorIs(t, err, core.ErrorPermissionDenied{})
}

func TestEvaluateUnknownPolicy(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	repo := mock_policy.NewMockRepository(ctrl)
	repo.EXPECT().Get(gomock.Any(), uint(1)).Return(core.AccessPolicy{}, core.NewErrorNotFound())
	service := NewService(repo, core.Config{})

	_, err := service.Evaluate(ctx, user(core.RoleOwner), core.ResourceVehicle, core.ActionRead)
	assert.ErrorIs(t, err, core.ErrorNotFound{})
	assert.Contains(t, err.Error(), "Role with id 1 not found")
}

func TestCompileLastRuleWins(t *testing.T) {
	ctx := context.Background()

	service := setupService(t, []core.AccessRule{
		conditionalRule("vehicle", "read", "first", map[string]any{"a": 1}),
		conditionalRule("vehicle", "read", "second", map[string]any{"b": 2}),
	})

	compiled, err := service.Compile(ctx, 1)
	assert.NoError(t, err)

	block := compiled.Allow["vehicle"].Actions["read"]
	if assert.NotNil(t, block.ActionCondition) {
		assert.Equal(t, "second", block.ActionCondition.Label)
	}
	assert.Empty(t, compiled.Deny)
}

func TestCompileUsesCache(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	repo := mock_policy.NewMockRepository(ctrl)

	cached := core.NewCompiledPolicy()
	cached.Allow["*"] = core.ResourceActions{Actions: map[string]core.ActionBlock{"*": {}}}

	config := core.Config{PolicyCacheTTL: time.Minute}

	repo.EXPECT().GetCompiled(gomock.Any(), uint(1)).Return(cached, nil)
	service := NewService(repo, config)

	compiled, err := service.Compile(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, cached, compiled)

	// a miss compiles from rules and fills the cache
	repo.EXPECT().GetCompiled(gomock.Any(), uint(2)).Return(core.CompiledPolicy{}, core.NewErrorNotFound())
	repo.EXPECT().Get(gomock.Any(), uint(2)).Return(core.AccessPolicy{ID: 2}, nil)
	repo.EXPECT().CompiledVersion(gomock.Any(), uint(2)).Return(int64(0), nil)
	repo.EXPECT().ListRules(gomock.Any(), uint(2)).Return([]core.AccessRule{allowRule("wallet", "read")}, nil)
	repo.EXPECT().SetCompiled(gomock.Any(), uint(2), int64(0), gomock.Any(), time.Minute).Return(nil)

	compiled, err = service.Compile(ctx, 2)
	assert.NoError(t, err)
	assert.Contains(t, compiled.Allow, "wallet")

	// a broken cache does not fail compilation
	repo.EXPECT().GetCompiled(gomock.Any(), uint(3)).Return(core.CompiledPolicy{}, errors.New("connection refused"))
	repo.EXPECT().Get(gomock.Any(), uint(3)).Return(core.AccessPolicy{ID: 3}, nil)
	repo.EXPECT().CompiledVersion(gomock.Any(), uint(3)).Return(int64(0), errors.New("connection refused"))
	repo.EXPECT().ListRules(gomock.Any(), uint(3)).Return(nil, nil)

	_, err = service.Compile(ctx, 3)
	assert.NoError(t, err)

	repo.EXPECT().InvalidateCompiled(gomock.Any(), uint(2)).Return(nil)
	assert.NoError(t, service.Invalidate(ctx, 2))
}

func TestCompileCachesWithVersionReadBeforeRules(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	repo := mock_policy.NewMockRepository(ctrl)
	service := NewService(repo, core.Config{PolicyCacheTTL: time.Minute})

	gomock.InOrder(
		repo.EXPECT().GetCompiled(gomock.Any(), uint(1)).Return(core.CompiledPolicy{}, core.NewErrorNotFound()),
		repo.EXPECT().Get(gomock.Any(), uint(1)).Return(core.AccessPolicy{ID: 1}, nil),
		repo.EXPECT().CompiledVersion(gomock.Any(), uint(1)).Return(int64(4), nil),
		repo.EXPECT().ListRules(gomock.Any(), uint(1)).DoAndReturn(
			func(ctx context.Context, id uint) ([]core.AccessRule, error) {
				// a sync commits and invalidates while the rules are in flight
				assert.NoError(t, service.Invalidate(ctx, id))
				return []core.AccessRule{allowRule("vehicle", "read")}, nil
			},
		),
		repo.EXPECT().SetCompiled(gomock.Any(), uint(1), int64(4), gomock.Any(), time.Minute).Return(nil),
	)
	repo.EXPECT().InvalidateCompiled(gomock.Any(), uint(1)).Return(nil)

	_, err := service.Compile(ctx, 1)
	assert.NoError(t, err)
}

func TestCreateRequiresTitle(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	repo := mock_policy.NewMockRepository(ctrl)
	service := NewService(repo, core.Config{})

	_, err := service.Create(ctx, core.AccessPolicy{Description: "no title"})
	assert.ErrorAs(t, err, &core.ErrorBadRequest{})

	repo.EXPECT().Create(gomock.Any(), core.AccessPolicy{Title: "Driver", Description: "drivers"}).
		Return(core.AccessPolicy{ID: 5, Title: "Driver", Description: "drivers"}, nil)

	created, err := service.Create(ctx, core.AccessPolicy{ID: 99, Title: "Driver", Description: "drivers"})
	assert.NoError(t, err)
	assert.Equal(t, uint(5), created.ID)
}
