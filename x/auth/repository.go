//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Repository keeps the ids of revoked tokens until they expire.
// Without redis nothing is ever revoked.
type Repository interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
	Revoke(ctx context.Context, jti string, exp time.Time) error
}

type repository struct {
	rdb *redis.Client
}

func NewRepository(rdb *redis.Client) Repository {
	return &repository{rdb}
}

func (r *repository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Auth.Repository.IsRevoked")
	defer span.End()

	if r.rdb == nil {
		return false, nil
	}

	exists, err := r.rdb.Exists(ctx, jtiPrefix+jti).Result()
	if err != nil {
		span.RecordError(err)
		return false, err
	}

	return exists > 0, nil
}

func (r *repository) Revoke(ctx context.Context, jti string, exp time.Time) error {
	ctx, span := tracer.Start(ctx, "Auth.Repository.Revoke")
	defer span.End()

	if r.rdb == nil {
		return errors.New("token revocation requires redis")
	}

	expiration := time.Until(exp)
	if expiration <= 0 {
		return nil
	}

	err := r.rdb.Set(ctx, jtiPrefix+jti, "1", expiration).Err()
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}
