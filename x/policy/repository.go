//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package policy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	"github.com/sipradi/pvbu/core"
)

type Repository interface {
	Create(ctx context.Context, policy core.AccessPolicy) (core.AccessPolicy, error)
	Update(ctx context.Context, policy core.AccessPolicy) (core.AccessPolicy, error)
	Get(ctx context.Context, id uint) (core.AccessPolicy, error)
	List(ctx context.Context) ([]core.AccessPolicy, error)
	ListRules(ctx context.Context, policyID uint) ([]core.AccessRule, error)
	GetCompiled(ctx context.Context, id uint) (core.CompiledPolicy, error)
	CompiledVersion(ctx context.Context, id uint) (int64, error)
	SetCompiled(ctx context.Context, id uint, version int64, compiled core.CompiledPolicy, ttl time.Duration) error
	InvalidateCompiled(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewRepository(db *gorm.DB, rdb *redis.Client) Repository {
	return &repository{db, rdb}
}

var errStaleVersion = errors.New("compiled policy version changed")

func compiledKey(id uint) string {
	return fmt.Sprintf("access:compiled:%d", id)
}

func versionKey(id uint) string {
	return fmt.Sprintf("access:compiled:%d:version", id)
}

func (r *repository) Create(ctx context.Context, policy core.AccessPolicy) (core.AccessPolicy, error) {
	ctx, span := tracer.Start(ctx, "Policy.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&policy).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return core.AccessPolicy{}, err
	}

	return policy, nil
}

// Update writes the non-zero fields of policy
func (r *repository) Update(ctx context.Context, policy core.AccessPolicy) (core.AccessPolicy, error) {
	ctx, span := tracer.Start(ctx, "Policy.Repository.Update")
	defer span.End()

	result := r.db.WithContext(ctx).Model(&core.AccessPolicy{ID: policy.ID}).Updates(core.AccessPolicy{
		Title:       policy.Title,
		Description: policy.Description,
	})
	if result.Error != nil {
		span.SetStatus(codes.Error, result.Error.Error())
		return core.AccessPolicy{}, result.Error
	}

	return r.Get(ctx, policy.ID)
}

func (r *repository) Get(ctx context.Context, id uint) (core.AccessPolicy, error) {
	ctx, span := tracer.Start(ctx, "Policy.Repository.Get")
	defer span.End()

	var policy core.AccessPolicy
	err := r.db.WithContext(ctx).First(&policy, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.AccessPolicy{}, core.NewErrorNotFound()
		}
		span.SetStatus(codes.Error, err.Error())
		return core.AccessPolicy{}, err
	}

	return policy, nil
}

func (r *repository) List(ctx context.Context) ([]core.AccessPolicy, error) {
	ctx, span := tracer.Start(ctx, "Policy.Repository.List")
	defer span.End()

	var policies []core.AccessPolicy
	err := r.db.WithContext(ctx).Select("id", "title", "description").Order("id").Find(&policies).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return policies, nil
}

// ListRules returns the rules of a policy in insertion order, joined with
// their resource action and action condition.
func (r *repository) ListRules(ctx context.Context, policyID uint) ([]core.AccessRule, error) {
	ctx, span := tracer.Start(ctx, "Policy.Repository.ListRules")
	defer span.End()

	var rules []core.AccessRule
	err := r.db.WithContext(ctx).
		Preload("ResourceAction").
		Preload("ActionCondition").
		Where("policy_id = ?", policyID).
		Order("id").
		Find(&rules).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return rules, nil
}

func (r *repository) GetCompiled(ctx context.Context, id uint) (core.CompiledPolicy, error) {
	ctx, span := tracer.Start(ctx, "Policy.Repository.GetCompiled")
	defer span.End()

	if r.rdb == nil {
		return core.CompiledPolicy{}, core.NewErrorNotFound()
	}

	val, err := r.rdb.Get(ctx, compiledKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return core.CompiledPolicy{}, core.NewErrorNotFound()
		}
		span.SetStatus(codes.Error, err.Error())
		return core.CompiledPolicy{}, err
	}

	var compiled core.CompiledPolicy
	err = json.Unmarshal([]byte(val), &compiled)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return core.CompiledPolicy{}, err
	}

	return compiled, nil
}

// CompiledVersion returns the invalidation counter of a policy. Read it before
// loading rules and hand it to SetCompiled.
func (r *repository) CompiledVersion(ctx context.Context, id uint) (int64, error) {
	ctx, span := tracer.Start(ctx, "Policy.Repository.CompiledVersion")
	defer span.End()

	if r.rdb == nil {
		return 0, nil
	}

	version, err := r.rdb.Get(ctx, versionKey(id)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	return version, nil
}

// SetCompiled caches compiled only while the invalidation counter still equals
// version. A write that lost the race against InvalidateCompiled is dropped.
func (r *repository) SetCompiled(ctx context.Context, id uint, version int64, compiled core.CompiledPolicy, ttl time.Duration) error {
	ctx, span := tracer.Start(ctx, "Policy.Repository.SetCompiled")
	defer span.End()

	if r.rdb == nil {
		return nil
	}

	jsonStr, err := json.Marshal(compiled)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	err = r.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, versionKey(id)).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return errStaleVersion
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, compiledKey(id), jsonStr, ttl)
			return nil
		})
		return err
	}, versionKey(id))
	if errors.Is(err, errStaleVersion) || errors.Is(err, redis.TxFailedErr) {
		span.AddEvent("stale compiled policy dropped")
		return nil
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

func (r *repository) InvalidateCompiled(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "Policy.Repository.InvalidateCompiled")
	defer span.End()

	if r.rdb == nil {
		return nil
	}

	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey(id))
		pipe.Del(ctx, compiledKey(id))
		return nil
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Policy.Repository.Count")
	defer span.End()

	var count int64
	err := r.db.WithContext(ctx).Model(&core.AccessPolicy{}).Count(&count).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	return count, nil
}
