package rule_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/sipradi/pvbu/core"
	"github.com/sipradi/pvbu/core/mock"
	"github.com/sipradi/pvbu/internal/testutil"
	"github.com/sipradi/pvbu/x/policy"
	"github.com/sipradi/pvbu/x/rule"
	"github.com/sipradi/pvbu/x/rule/mock"
)

func ptr[T any](v T) *T {
	return &v
}

func TestSyncReportsEveryInvalidLink(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	repo := mock_rule.NewMockRepository(ctrl)
	policyService := mock_core.NewMockPolicyService(ctrl)

	policyService.EXPECT().Get(gomock.Any(), uint(1)).Return(core.AccessPolicy{ID: 1}, nil)
	repo.EXPECT().FindResourceActions(gomock.Any(), gomock.Any()).Return([]core.ResourceAction{
		{ID: 1, Name: "read"},
		{ID: 2, Name: "update"},
	}, nil)
	repo.EXPECT().FindActionConditions(gomock.Any(), gomock.Any()).Return([]core.ActionCondition{
		{ID: 5, ResourceActionID: 2},
	}, nil)

	service := rule.NewService(repo, policyService)
	_, err := service.Sync(ctx, 1,
		[]core.RuleEntry{
			{ResourceActionID: 1, ActionConditionID: ptr(uint(5))},
			{ResourceActionID: 1, ActionConditionID: ptr(uint(8))},
		},
		[]core.RuleEntry{
			{ResourceActionID: 1, ActionConditionID: ptr(uint(5))},
		},
	)

	var badRequest core.ErrorBadRequest
	if assert.ErrorAs(t, err, &badRequest) {
		assert.Equal(t, "Invalid action-condition links", badRequest.Message)
		assert.Equal(t, []string{
			"Condition 5 does not belong to Action 1",
			"Condition 8 not found",
		}, badRequest.Details)
	}
}

func TestSyncRejectsUnknownActions(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	repo := mock_rule.NewMockRepository(ctrl)
	policyService := mock_core.NewMockPolicyService(ctrl)

	policyService.EXPECT().Get(gomock.Any(), uint(1)).Return(core.AccessPolicy{ID: 1}, nil)
	repo.EXPECT().FindResourceActions(gomock.Any(), gomock.Any()).Return([]core.ResourceAction{{ID: 1}}, nil)

	service := rule.NewService(repo, policyService)
	_, err := service.Sync(ctx, 1,
		[]core.RuleEntry{{ResourceActionID: 9}, {ResourceActionID: 1}},
		[]core.RuleEntry{{ResourceActionID: 3}},
	)

	var badRequest core.ErrorBadRequest
	if assert.ErrorAs(t, err, &badRequest) {
		assert.Equal(t, "Invalid resourceActionId(s): 3, 9", badRequest.Message)
	}
}

func TestSyncUnknownPolicy(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	repo := mock_rule.NewMockRepository(ctrl)
	policyService := mock_core.NewMockPolicyService(ctrl)
	policyService.EXPECT().Get(gomock.Any(), uint(7)).Return(core.AccessPolicy{}, core.NewErrorNotFound())

	service := rule.NewService(repo, policyService)
	_, err := service.Sync(ctx, 7, nil, nil)
	assert.ErrorIs(t, err, core.ErrorNotFound{})
}

func TestCreateRequiresAllow(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	service := rule.NewService(mock_rule.NewMockRepository(ctrl), mock_core.NewMockPolicyService(ctrl))

	_, err := service.Create(ctx, 1, nil, []core.RuleEntry{{ResourceActionID: 1}})
	assert.ErrorAs(t, err, &core.ErrorBadRequest{})
}

func TestCreateDenyReplacesAllowForSameIdentity(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	repo := mock_rule.NewMockRepository(ctrl)
	policyService := mock_core.NewMockPolicyService(ctrl)

	policyService.EXPECT().Get(gomock.Any(), uint(1)).Return(core.AccessPolicy{ID: 1}, nil)
	policyService.EXPECT().Invalidate(gomock.Any(), uint(1)).Return(nil)
	repo.EXPECT().FindResourceActions(gomock.Any(), gomock.Any()).Return([]core.ResourceAction{
		{ID: 1, Name: "read", Resource: &core.Resource{Name: "wallet"}},
		{ID: 2, Name: "update", Resource: &core.Resource{Name: "wallet"}},
	}, nil)
	repo.EXPECT().CreateMany(gomock.Any(), []core.AccessRule{
		{PolicyID: 1, ResourceActionID: 1, Resource: "wallet", Effect: core.EffectDeny, RuleIdentifier: "1-1-null"},
		{PolicyID: 1, ResourceActionID: 2, Resource: "wallet", Effect: core.EffectAllow, RuleIdentifier: "1-2-null"},
	}).Return(int64(2), nil)

	service := rule.NewService(repo, policyService)
	created, err := service.Create(ctx, 1,
		[]core.RuleEntry{{ResourceActionID: 1}, {ResourceActionID: 2}},
		[]core.RuleEntry{{ResourceActionID: 1}},
	)
	assert.NoError(t, err)
	assert.Equal(t, core.CreatedRules{Message: "Access rules created", Count: 2}, created)
}

// TestSyncRoundTrip runs create and sync against a real database and compiles the result
func TestSyncRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := testutil.CreateSQLite(t)

	policyService := policy.NewService(policy.NewRepository(db, nil), core.Config{})
	service := rule.NewService(rule.NewRepository(db), policyService)

	owner, err := policyService.Create(ctx, core.AccessPolicy{Title: "Owner"})
	assert.NoError(t, err)

	vehicle := core.Resource{Name: "vehicle", Actions: []core.ResourceAction{{Name: "read"}, {Name: "update"}, {Name: "delete"}}}
	assert.NoError(t, db.Create(&vehicle).Error)
	read, update, remove := vehicle.Actions[0].ID, vehicle.Actions[1].ID, vehicle.Actions[2].ID

	condition := core.ActionCondition{
		Label:            "Owner vehicles",
		Condition:        map[string]any{"ownerId": "${resourceContext.id}"},
		ResourceActionID: read,
	}
	assert.NoError(t, db.Create(&condition).Error)

	created, err := service.Create(ctx, owner.ID,
		[]core.RuleEntry{{ResourceActionID: read, ActionConditionID: &condition.ID}, {ResourceActionID: update}},
		[]core.RuleEntry{{ResourceActionID: remove}},
	)
	assert.NoError(t, err)
	assert.Equal(t, core.CreatedRules{Message: "Access rules created", Count: 3}, created)

	// creating the same rules again inserts nothing
	created, err = service.Create(ctx, owner.ID, []core.RuleEntry{{ResourceActionID: update}}, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), created.Count)

	user := core.ActingUser{Principal: core.Principal{ID: "o1", PolicyID: &owner.ID}, Role: core.RoleOwner}

	decision, err := policyService.Evaluate(ctx, user, core.ResourceVehicle, core.ActionRead)
	assert.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, core.Filter{"ownerId": "o1"}, decision.Filter)

	decision, err = policyService.Evaluate(ctx, user, core.ResourceVehicle, core.ActionDelete)
	assert.NoError(t, err)
	assert.False(t, decision.Allowed)

	// same lists again: nothing changes
	result, err := service.Sync(ctx, owner.ID,
		[]core.RuleEntry{{ResourceActionID: read, ActionConditionID: &condition.ID}, {ResourceActionID: update}},
		[]core.RuleEntry{{ResourceActionID: remove}},
	)
	assert.NoError(t, err)
	assert.Equal(t, core.SyncResult{}, result)

	// flip update to deny and drop the rest
	result, err = service.Sync(ctx, owner.ID, nil, []core.RuleEntry{{ResourceActionID: update}})
	assert.NoError(t, err)
	assert.Equal(t, core.SyncResult{Added: 0, Updated: 1, Removed: 2}, result)

	decision, err = policyService.Evaluate(ctx, user, core.ResourceVehicle, core.ActionRead)
	assert.NoError(t, err)
	assert.False(t, decision.Allowed)

	result, err = service.Sync(ctx, owner.ID, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Removed)

	count, err := service.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
