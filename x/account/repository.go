//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bradfitz/gomemcache/memcache"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	"github.com/sipradi/pvbu/core"
)

type Repository interface {
	Get(ctx context.Context, role core.Role, id string) (core.ActingUser, error)
	GetByEmail(ctx context.Context, role core.Role, email string) (core.ActingUser, error)
	List(ctx context.Context, role core.Role, filter core.Filter) ([]core.ActingUser, error)
	SetPolicy(ctx context.Context, role core.Role, id string, policyID uint) error
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {
	return &repository{db, mc}
}

func cacheKey(role core.Role, id string) string {
	return fmt.Sprintf("principal:%s:%s", role, id)
}

func fromOwner(owner core.Owner) core.ActingUser {
	return core.ActingUser{Principal: owner.Principal, Role: core.RoleOwner}
}

func fromDriver(driver core.Driver) core.ActingUser {
	return core.ActingUser{Principal: driver.Principal, Role: core.RoleDriver, CreatedBy: driver.CreatedBy}
}

func fromPassenger(passenger core.Passenger) core.ActingUser {
	return core.ActingUser{Principal: passenger.Principal, Role: core.RolePassenger}
}

func first[T any](db *gorm.DB, query string, arg any) (T, error) {
	var row T
	err := db.Where(query, arg).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return row, core.NewErrorNotFound()
	}
	return row, err
}

func find[T any](db *gorm.DB, filter core.Filter) ([]T, error) {
	var rows []T
	err := db.Scopes(core.ScopeFilter(filter)).Order("c_date").Find(&rows).Error
	return rows, err
}

func convert[T any](rows []T, fn func(T) core.ActingUser) []core.ActingUser {
	users := make([]core.ActingUser, 0, len(rows))
	for _, row := range rows {
		users = append(users, fn(row))
	}
	return users
}

func unknownRole(role core.Role) error {
	return core.NewErrorBadRequest(fmt.Sprintf("role %s has no account table", role))
}

// lookup selects the account table of role and loads one principal from it
func (r *repository) lookup(ctx context.Context, role core.Role, query string, arg any) (core.ActingUser, error) {
	db := r.db.WithContext(ctx)
	switch role {
	case core.RoleOwner:
		owner, err := first[core.Owner](db, query, arg)
		return fromOwner(owner), err
	case core.RoleDriver:
		driver, err := first[core.Driver](db, query, arg)
		return fromDriver(driver), err
	case core.RolePassenger:
		passenger, err := first[core.Passenger](db, query, arg)
		return fromPassenger(passenger), err
	default:
		return core.ActingUser{}, unknownRole(role)
	}
}

func (r *repository) Get(ctx context.Context, role core.Role, id string) (core.ActingUser, error) {
	ctx, span := tracer.Start(ctx, "Account.Repository.Get")
	defer span.End()

	if r.mc != nil {
		item, err := r.mc.Get(cacheKey(role, id))
		if err == nil {
			var user core.ActingUser
			if err := json.Unmarshal(item.Value, &user); err == nil {
				return user, nil
			}
		}
	}

	user, err := r.lookup(ctx, role, "id = ?", id)
	if err != nil {
		if !errors.Is(err, core.ErrorNotFound{}) {
			span.SetStatus(codes.Error, err.Error())
		}
		return core.ActingUser{}, err
	}

	if r.mc != nil {
		value, err := json.Marshal(user)
		if err == nil {
			err = r.mc.Set(&memcache.Item{Key: cacheKey(role, id), Value: value, Expiration: 600})
		}
		if err != nil {
			slog.WarnContext(
				ctx, "failed to cache principal",
				slog.String("error", err.Error()),
				slog.String("module", "account"),
			)
		}
	}

	return user, nil
}

// GetByEmail loads a principal including its password hash. It never reads the cache.
func (r *repository) GetByEmail(ctx context.Context, role core.Role, email string) (core.ActingUser, error) {
	ctx, span := tracer.Start(ctx, "Account.Repository.GetByEmail")
	defer span.End()

	user, err := r.lookup(ctx, role, "email = ?", email)
	if err != nil {
		if !errors.Is(err, core.ErrorNotFound{}) {
			span.SetStatus(codes.Error, err.Error())
		}
		return core.ActingUser{}, err
	}

	return user, nil
}

func (r *repository) List(ctx context.Context, role core.Role, filter core.Filter) ([]core.ActingUser, error) {
	ctx, span := tracer.Start(ctx, "Account.Repository.List")
	defer span.End()

	db := r.db.WithContext(ctx)

	var users []core.ActingUser
	var err error
	switch role {
	case core.RoleOwner:
		var rows []core.Owner
		rows, err = find[core.Owner](db, filter)
		users = convert(rows, fromOwner)
	case core.RoleDriver:
		var rows []core.Driver
		rows, err = find[core.Driver](db, filter)
		users = convert(rows, fromDriver)
	case core.RolePassenger:
		var rows []core.Passenger
		rows, err = find[core.Passenger](db, filter)
		users = convert(rows, fromPassenger)
	default:
		return nil, unknownRole(role)
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return users, nil
}

func (r *repository) SetPolicy(ctx context.Context, role core.Role, id string, policyID uint) error {
	ctx, span := tracer.Start(ctx, "Account.Repository.SetPolicy")
	defer span.End()

	var model any
	switch role {
	case core.RoleOwner:
		model = &core.Owner{}
	case core.RoleDriver:
		model = &core.Driver{}
	case core.RolePassenger:
		model = &core.Passenger{}
	default:
		return unknownRole(role)
	}

	result := r.db.WithContext(ctx).Model(model).Where("id = ?", id).Update("policy_id", policyID)
	if result.Error != nil {
		span.SetStatus(codes.Error, result.Error.Error())
		return result.Error
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound()
	}

	if r.mc != nil {
		err := r.mc.Delete(cacheKey(role, id))
		if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
			slog.WarnContext(
				ctx, "failed to drop cached principal",
				slog.String("error", err.Error()),
				slog.String("module", "account"),
			)
		}
	}

	return nil
}
