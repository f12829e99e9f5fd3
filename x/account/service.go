package account

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/sipradi/pvbu/core"
)

var tracer = otel.Tracer("account")

type service struct {
	repository Repository
	policy     core.PolicyService
	config     core.Config
}

func NewService(repository Repository, policy core.PolicyService, config core.Config) core.AccountService {
	return &service{repository, policy, config}
}

// admin is the configured administrator. It is not stored in any account table.
func (s *service) admin() core.ActingUser {
	var policyID *uint
	if s.config.Admin.PolicyID != 0 {
		id := s.config.Admin.PolicyID
		policyID = &id
	}
	return core.ActingUser{
		Principal: core.Principal{
			ID:           s.config.Admin.ID,
			Email:        s.config.Admin.Email,
			DisplayName:  "Administrator",
			PasswordHash: s.config.Admin.PasswordHash,
			PolicyID:     policyID,
		},
		Role: core.RoleAdmin,
	}
}

func (s *service) Get(ctx context.Context, role core.Role, id string) (core.ActingUser, error) {
	ctx, span := tracer.Start(ctx, "Account.Service.Get")
	defer span.End()

	if role == core.RoleAdmin {
		if id != s.config.Admin.ID {
			return core.ActingUser{}, core.NewErrorNotFound()
		}
		admin := s.admin()
		admin.PasswordHash = ""
		return admin, nil
	}

	user, err := s.repository.Get(ctx, role, id)
	if err != nil {
		span.RecordError(err)
		return core.ActingUser{}, errors.Wrapf(err, "%s %s", role, id)
	}

	return user, nil
}

func (s *service) GetByEmail(ctx context.Context, role core.Role, email string) (core.ActingUser, error) {
	ctx, span := tracer.Start(ctx, "Account.Service.GetByEmail")
	defer span.End()

	if role == core.RoleAdmin {
		if email == "" || email != s.config.Admin.Email {
			return core.ActingUser{}, core.NewErrorNotFound()
		}
		return s.admin(), nil
	}

	return s.repository.GetByEmail(ctx, role, email)
}

// List returns the principals of role that match filter
func (s *service) List(ctx context.Context, role core.Role, filter core.Filter) ([]core.ActingUser, error) {
	ctx, span := tracer.Start(ctx, "Account.Service.List")
	defer span.End()

	users, err := s.repository.List(ctx, role, filter)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return users, nil
}

// AssignPolicy attaches an existing policy to a principal
func (s *service) AssignPolicy(ctx context.Context, role core.Role, id string, policyID uint) (core.ActingUser, error) {
	ctx, span := tracer.Start(ctx, "Account.Service.AssignPolicy")
	defer span.End()

	if role == core.RoleAdmin {
		return core.ActingUser{}, core.NewErrorBadRequest("the administrator policy is set in the configuration")
	}

	_, err := s.policy.Get(ctx, policyID)
	if err != nil {
		span.RecordError(err)
		return core.ActingUser{}, err
	}

	err = s.repository.SetPolicy(ctx, role, id, policyID)
	if err != nil {
		span.RecordError(err)
		return core.ActingUser{}, errors.Wrapf(err, "%s %s", role, id)
	}

	return s.repository.Get(ctx, role, id)
}
