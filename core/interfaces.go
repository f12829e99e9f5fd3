//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock/services.go
package core

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
)

type PolicyService interface {
	Create(ctx context.Context, policy AccessPolicy) (AccessPolicy, error)
	Update(ctx context.Context, id uint, policy AccessPolicy) (AccessPolicy, error)
	Get(ctx context.Context, id uint) (AccessPolicy, error)
	List(ctx context.Context) ([]AccessPolicy, error)
	Compile(ctx context.Context, id uint) (CompiledPolicy, error)
	Evaluate(ctx context.Context, user ActingUser, resource ResourceName, action Action) (Decision, error)
	Invalidate(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type RuleService interface {
	Create(ctx context.Context, policyID uint, allow, deny []RuleEntry) (CreatedRules, error)
	Sync(ctx context.Context, policyID uint, allow, deny []RuleEntry) (SyncResult, error)
	Count(ctx context.Context) (int64, error)
}

type ResourceService interface {
	CreateResource(ctx context.Context, name string, actions []string) (Resource, error)
	Generate(ctx context.Context, entries []CatalogEntry) error
	AddActions(ctx context.Context, resourceID uint, actions []string) (int64, error)
	AddCondition(ctx context.Context, actionID uint, label string, condition map[string]any) (ActionCondition, error)
	ListResources(ctx context.Context) ([]Resource, error)
	ListResourceActions(ctx context.Context) ([]ResourceActionView, error)
	ListActionsByResource(ctx context.Context, resourceID uint) ([]ResourceAction, error)
	ListConditionsByAction(ctx context.Context, actionID uint) ([]ActionCondition, error)
	Count(ctx context.Context) (int64, error)
}

type AccountService interface {
	Get(ctx context.Context, role Role, id string) (ActingUser, error)
	GetByEmail(ctx context.Context, role Role, email string) (ActingUser, error)
	List(ctx context.Context, role Role, filter Filter) ([]ActingUser, error)
	AssignPolicy(ctx context.Context, role Role, id string, policyID uint) (ActingUser, error)
}

type AuthService interface {
	IdentifyIdentity(next echo.HandlerFunc) echo.HandlerFunc
	Guard(resource ResourceName, action Action) echo.MiddlewareFunc
	IssueToken(user ActingUser) (string, error)
	Login(ctx context.Context, role Role, email, password string) (LoginResponse, error)
	Revoke(ctx context.Context, jti string, exp time.Time) error
}
