package resource

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/sipradi/pvbu/core"
	"github.com/sipradi/pvbu/internal/testutil"
	"github.com/sipradi/pvbu/x/resource/mock"
)

func catalogSize() (actions, conditions int64) {
	for _, entry := range Catalog {
		for _, action := range entry.Actions {
			actions++
			conditions += int64(len(action.Conditions))
		}
	}
	return
}

func countConditions(t *testing.T, service core.ResourceService) int64 {
	ctx := context.Background()
	views, err := service.ListResourceActions(ctx)
	assert.NoError(t, err)

	var count int64
	for _, view := range views {
		count += int64(len(view.ActionConditions))
	}
	return count
}

func TestGenerateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := testutil.CreateSQLite(t)
	service := NewService(NewRepository(db), core.Config{})

	actions, conditions := catalogSize()

	assert.NoError(t, service.Generate(ctx, nil))
	assert.NoError(t, service.Generate(ctx, nil))

	count, err := service.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, actions, count)
	assert.Equal(t, conditions, countConditions(t, service))

	resources, err := service.ListResources(ctx)
	assert.NoError(t, err)
	assert.Len(t, resources, len(Catalog))
	assert.Equal(t, "*", resources[0].Name)
}

func TestGenerateLegacyDuplicatesConditions(t *testing.T) {
	ctx := context.Background()
	db := testutil.CreateSQLite(t)
	service := NewService(NewRepository(db), core.Config{LegacySeedDuplicates: true})

	actions, conditions := catalogSize()

	assert.NoError(t, service.Generate(ctx, nil))
	assert.NoError(t, service.Generate(ctx, nil))

	count, err := service.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, actions, count)
	assert.Equal(t, 2*conditions, countConditions(t, service))
}

func TestCreateResourceAndActions(t *testing.T) {
	ctx := context.Background()
	db := testutil.CreateSQLite(t)
	service := NewService(NewRepository(db), core.Config{})

	created, err := service.CreateResource(ctx, "invoices", []string{"read", "create", "read"})
	assert.NoError(t, err)
	assert.Len(t, created.Actions, 2)

	_, err = service.CreateResource(ctx, "invoices", nil)
	assert.ErrorIs(t, err, core.ErrorAlreadyExists{})

	_, err = service.CreateResource(ctx, "refunds", []string{"read", "fly", "swim"})
	var badRequest core.ErrorBadRequest
	if assert.ErrorAs(t, err, &badRequest) {
		assert.Equal(t, []string{"fly", "swim"}, badRequest.Details)
	}

	added, err := service.AddActions(ctx, created.ID, []string{"read", "delete"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), added)

	_, err = service.AddActions(ctx, created.ID+100, []string{"read"})
	assert.ErrorIs(t, err, core.ErrorNotFound{})

	actions, err := service.ListActionsByResource(ctx, created.ID)
	assert.NoError(t, err)
	assert.Len(t, actions, 3)

	condition, err := service.AddCondition(ctx, actions[0].ID, "Own invoices", map[string]any{"ownerId": "${resourceContext.id}"})
	assert.NoError(t, err)
	assert.NotZero(t, condition.ID)

	_, err = service.AddCondition(ctx, actions[0].ID, "", map[string]any{"a": 1})
	assert.ErrorAs(t, err, &core.ErrorBadRequest{})

	conditions, err := service.ListConditionsByAction(ctx, actions[0].ID)
	assert.NoError(t, err)
	if assert.Len(t, conditions, 1) {
		assert.Equal(t, "${resourceContext.id}", conditions[0].Condition["ownerId"])
	}

	views, err := service.ListResourceActions(ctx)
	assert.NoError(t, err)
	if assert.Len(t, views, 3) {
		assert.Equal(t, "invoices", views[0].Resource)
		assert.Equal(t, []core.ActionConditionView{{ID: condition.ID, Label: "Own invoices"}}, views[0].ActionConditions)
		assert.Empty(t, views[1].ActionConditions)
	}
}

func TestGenerateStopsOnRepositoryError(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	repo := mock_resource.NewMockRepository(ctrl)
	repo.EXPECT().UpsertResource(gomock.Any(), "wallet").Return(core.Resource{}, assert.AnError)

	service := NewService(repo, core.Config{})
	err := service.Generate(ctx, []core.CatalogEntry{{Resource: core.ResourceWallet}})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestCatalogActionsAreKnown(t *testing.T) {
	seen := map[core.ResourceName]bool{}
	for _, entry := range Catalog {
		assert.False(t, seen[entry.Resource], "duplicate resource %s", entry.Resource)
		seen[entry.Resource] = true
		for _, action := range entry.Actions {
			_, err := core.ParseAction(string(action.Name))
			assert.NoError(t, err)
		}
	}
	assert.Len(t, seen, 13)
}
