//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package rule

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sipradi/pvbu/core"
)

type Repository interface {
	ListByPolicy(ctx context.Context, policyID uint) ([]core.AccessRule, error)
	FindResourceActions(ctx context.Context, ids []uint) ([]core.ResourceAction, error)
	FindActionConditions(ctx context.Context, ids []uint) ([]core.ActionCondition, error)
	CreateMany(ctx context.Context, rules []core.AccessRule) (int64, error)
	ApplyDiff(ctx context.Context, policyID uint, diff Diff) error
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) ListByPolicy(ctx context.Context, policyID uint) ([]core.AccessRule, error) {
	ctx, span := tracer.Start(ctx, "Rule.Repository.ListByPolicy")
	defer span.End()

	var rules []core.AccessRule
	err := r.db.WithContext(ctx).Where("policy_id = ?", policyID).Order("id").Find(&rules).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return rules, nil
}

// FindResourceActions returns the resource actions among ids that exist, with their resource
func (r *repository) FindResourceActions(ctx context.Context, ids []uint) ([]core.ResourceAction, error) {
	ctx, span := tracer.Start(ctx, "Rule.Repository.FindResourceActions")
	defer span.End()

	var actions []core.ResourceAction
	if len(ids) == 0 {
		return actions, nil
	}

	err := r.db.WithContext(ctx).Preload("Resource").Where("id IN ?", ids).Find(&actions).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return actions, nil
}

// FindActionConditions returns the action conditions among ids that exist
func (r *repository) FindActionConditions(ctx context.Context, ids []uint) ([]core.ActionCondition, error) {
	ctx, span := tracer.Start(ctx, "Rule.Repository.FindActionConditions")
	defer span.End()

	var conditions []core.ActionCondition
	if len(ids) == 0 {
		return conditions, nil
	}

	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&conditions).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return conditions, nil
}

// CreateMany inserts rules, skipping ones whose identifier already exists
func (r *repository) CreateMany(ctx context.Context, rules []core.AccessRule) (int64, error) {
	ctx, span := tracer.Start(ctx, "Rule.Repository.CreateMany")
	defer span.End()

	if len(rules) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rules)
	if result.Error != nil {
		span.SetStatus(codes.Error, result.Error.Error())
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// ApplyDiff writes all changes of diff in a single transaction
func (r *repository) ApplyDiff(ctx context.Context, policyID uint, diff Diff) error {
	ctx, span := tracer.Start(ctx, "Rule.Repository.ApplyDiff")
	defer span.End()

	tx := r.db.WithContext(ctx).Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if len(diff.Add) > 0 {
		err := tx.Create(&diff.Add).Error
		if err != nil {
			tx.Rollback()
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}

	for _, rule := range diff.Update {
		err := tx.Model(&core.AccessRule{}).
			Where("policy_id = ? AND rule_identifier = ?", policyID, rule.RuleIdentifier).
			Update("effect", rule.Effect).Error
		if err != nil {
			tx.Rollback()
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}

	if len(diff.Remove) > 0 {
		identifiers := make([]string, 0, len(diff.Remove))
		for _, rule := range diff.Remove {
			identifiers = append(identifiers, rule.RuleIdentifier)
		}
		err := tx.Where("policy_id = ? AND rule_identifier IN ?", policyID, identifiers).Delete(&core.AccessRule{}).Error
		if err != nil {
			tx.Rollback()
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}

	err := tx.Commit().Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Rule.Repository.Count")
	defer span.End()

	var count int64
	err := r.db.WithContext(ctx).Model(&core.AccessRule{}).Count(&count).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	return count, nil
}
