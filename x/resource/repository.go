//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package resource

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sipradi/pvbu/core"
)

type Repository interface {
	UpsertResource(ctx context.Context, name string) (core.Resource, error)
	UpsertResourceAction(ctx context.Context, resourceID uint, name string) (core.ResourceAction, error)
	CreateResource(ctx context.Context, resource core.Resource) (core.Resource, error)
	AddActions(ctx context.Context, actions []core.ResourceAction) (int64, error)
	CreateCondition(ctx context.Context, condition core.ActionCondition) (core.ActionCondition, error)
	HasCondition(ctx context.Context, actionID uint, label string) (bool, error)
	GetResource(ctx context.Context, id uint) (core.Resource, error)
	GetResourceByName(ctx context.Context, name string) (core.Resource, error)
	GetResourceAction(ctx context.Context, id uint) (core.ResourceAction, error)
	ListResources(ctx context.Context) ([]core.Resource, error)
	ListResourceActions(ctx context.Context) ([]core.ResourceAction, error)
	ListActionsByResource(ctx context.Context, resourceID uint) ([]core.ResourceAction, error)
	ListConditionsByAction(ctx context.Context, actionID uint) ([]core.ActionCondition, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) UpsertResource(ctx context.Context, name string) (core.Resource, error) {
	ctx, span := tracer.Start(ctx, "Resource.Repository.UpsertResource")
	defer span.End()

	var resource core.Resource
	err := r.db.WithContext(ctx).Where(core.Resource{Name: name}).FirstOrCreate(&resource).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return core.Resource{}, err
	}

	return resource, nil
}

func (r *repository) UpsertResourceAction(ctx context.Context, resourceID uint, name string) (core.ResourceAction, error) {
	ctx, span := tracer.Start(ctx, "Resource.Repository.UpsertResourceAction")
	defer span.End()

	var action core.ResourceAction
	err := r.db.WithContext(ctx).Where(core.ResourceAction{Name: name, ResourceID: resourceID}).FirstOrCreate(&action).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return core.ResourceAction{}, err
	}

	return action, nil
}

// CreateResource inserts a resource together with its actions
func (r *repository) CreateResource(ctx context.Context, resource core.Resource) (core.Resource, error) {
	ctx, span := tracer.Start(ctx, "Resource.Repository.CreateResource")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&resource).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return core.Resource{}, err
	}

	return resource, nil
}

// AddActions inserts resource actions, skipping (name, resource) pairs that already exist
func (r *repository) AddActions(ctx context.Context, actions []core.ResourceAction) (int64, error) {
	ctx, span := tracer.Start(ctx, "Resource.Repository.AddActions")
	defer span.End()

	if len(actions) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&actions)
	if result.Error != nil {
		span.SetStatus(codes.Error, result.Error.Error())
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (r *repository) CreateCondition(ctx context.Context, condition core.ActionCondition) (core.ActionCondition, error) {
	ctx, span := tracer.Start(ctx, "Resource.Repository.CreateCondition")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&condition).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return core.ActionCondition{}, err
	}

	return condition, nil
}

func (r *repository) HasCondition(ctx context.Context, actionID uint, label string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Resource.Repository.HasCondition")
	defer span.End()

	var count int64
	err := r.db.WithContext(ctx).
		Model(&core.ActionCondition{}).
		Where("resource_action_id = ? AND label = ?", actionID, label).
		Count(&count).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return false, err
	}

	return count > 0, nil
}

func (r *repository) GetResource(ctx context.Context, id uint) (core.Resource, error) {
	ctx, span := tracer.Start(ctx, "Resource.Repository.GetResource")
	defer span.End()

	var resource core.Resource
	err := r.db.WithContext(ctx).First(&resource, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Resource{}, core.NewErrorNotFound()
		}
		span.SetStatus(codes.Error, err.Error())
		return core.Resource{}, err
	}

	return resource, nil
}

func (r *repository) GetResourceByName(ctx context.Context, name string) (core.Resource, error) {
	ctx, span := tracer.Start(ctx, "Resource.Repository.GetResourceByName")
	defer span.End()

	var resource core.Resource
	err := r.db.WithContext(ctx).First(&resource, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Resource{}, core.NewErrorNotFound()
		}
		span.SetStatus(codes.Error, err.Error())
		return core.Resource{}, err
	}

	return resource, nil
}

func (r *repository) GetResourceAction(ctx context.Context, id uint) (core.ResourceAction, error) {
	ctx, span := tracer.Start(ctx, "Resource.Repository.GetResourceAction")
	defer span.End()

	var action core.ResourceAction
	err := r.db.WithContext(ctx).First(&action, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.ResourceAction{}, core.NewErrorNotFound()
		}
		span.SetStatus(codes.Error, err.Error())
		return core.ResourceAction{}, err
	}

	return action, nil
}

func (r *repository) ListResources(ctx context.Context) ([]core.Resource, error) {
	ctx, span := tracer.Start(ctx, "Resource.Repository.ListResources")
	defer span.End()

	var resources []core.Resource
	err := r.db.WithContext(ctx).Order("id").Find(&resources).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return resources, nil
}

// ListResourceActions returns every resource action with its resource and conditions
func (r *repository) ListResourceActions(ctx context.Context) ([]core.ResourceAction, error) {
	ctx, span := tracer.Start(ctx, "Resource.Repository.ListResourceActions")
	defer span.End()

	var actions []core.ResourceAction
	err := r.db.WithContext(ctx).
		Preload("Resource").
		Preload("ActionConditions", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		}).
		Order("id").
		Find(&actions).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return actions, nil
}

func (r *repository) ListActionsByResource(ctx context.Context, resourceID uint) ([]core.ResourceAction, error) {
	ctx, span := tracer.Start(ctx, "Resource.Repository.ListActionsByResource")
	defer span.End()

	var actions []core.ResourceAction
	err := r.db.WithContext(ctx).Where("resource_id = ?", resourceID).Order("id").Find(&actions).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return actions, nil
}

func (r *repository) ListConditionsByAction(ctx context.Context, actionID uint) ([]core.ActionCondition, error) {
	ctx, span := tracer.Start(ctx, "Resource.Repository.ListConditionsByAction")
	defer span.End()

	var conditions []core.ActionCondition
	err := r.db.WithContext(ctx).Where("resource_action_id = ?", actionID).Order("id").Find(&conditions).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return conditions, nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Resource.Repository.Count")
	defer span.End()

	var count int64
	err := r.db.WithContext(ctx).Model(&core.ResourceAction{}).Count(&count).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	return count, nil
}
