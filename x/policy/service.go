package policy

import (
	"context"
	"errors"
	"log/slog"

	pkgerrors "github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/sipradi/pvbu/core"
)

var tracer = otel.Tracer("policy")

type service struct {
	repository Repository
	config     core.Config
}

func NewService(repository Repository, config core.Config) core.PolicyService {
	return &service{repository, config}
}

func wrapNotFound(err error, id uint) error {
	if errors.Is(err, core.ErrorNotFound{}) {
		return pkgerrors.Wrapf(err, "Role with id %d not found", id)
	}
	return err
}

func (s *service) Create(ctx context.Context, policy core.AccessPolicy) (core.AccessPolicy, error) {
	ctx, span := tracer.Start(ctx, "Policy.Service.Create")
	defer span.End()

	if policy.Title == "" {
		return core.AccessPolicy{}, core.NewErrorBadRequest("title is required")
	}

	return s.repository.Create(ctx, core.AccessPolicy{
		Title:       policy.Title,
		Description: policy.Description,
	})
}

func (s *service) Update(ctx context.Context, id uint, policy core.AccessPolicy) (core.AccessPolicy, error) {
	ctx, span := tracer.Start(ctx, "Policy.Service.Update")
	defer span.End()

	_, err := s.repository.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		return core.AccessPolicy{}, wrapNotFound(err, id)
	}

	policy.ID = id
	return s.repository.Update(ctx, policy)
}

func (s *service) Get(ctx context.Context, id uint) (core.AccessPolicy, error) {
	ctx, span := tracer.Start(ctx, "Policy.Service.Get")
	defer span.End()

	policy, err := s.repository.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		return core.AccessPolicy{}, wrapNotFound(err, id)
	}

	return policy, nil
}

func (s *service) List(ctx context.Context) ([]core.AccessPolicy, error) {
	ctx, span := tracer.Start(ctx, "Policy.Service.List")
	defer span.End()

	return s.repository.List(ctx)
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Policy.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}

// Compile loads the rules of a policy and groups them by effect, resource and action.
func (s *service) Compile(ctx context.Context, id uint) (core.CompiledPolicy, error) {
	ctx, span := tracer.Start(ctx, "Policy.Service.Compile")
	defer span.End()

	span.SetAttributes(attribute.Int("policyID", int(id)))

	if s.config.PolicyCacheTTL > 0 {
		cached, err := s.repository.GetCompiled(ctx, id)
		if err == nil {
			span.AddEvent("cache hit")
			return cached, nil
		}
		if !errors.Is(err, core.ErrorNotFound{}) {
			slog.WarnContext(
				ctx, "failed to read compiled policy cache",
				slog.String("error", err.Error()),
				slog.String("module", "policy"),
			)
		}
	}

	_, err := s.repository.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		return core.CompiledPolicy{}, wrapNotFound(err, id)
	}

	cacheable := s.config.PolicyCacheTTL > 0
	var version int64
	if cacheable {
		version, err = s.repository.CompiledVersion(ctx, id)
		if err != nil {
			cacheable = false
			slog.WarnContext(
				ctx, "failed to read compiled policy version",
				slog.String("error", err.Error()),
				slog.String("module", "policy"),
			)
		}
	}

	rules, err := s.repository.ListRules(ctx, id)
	if err != nil {
		span.RecordError(err)
		return core.CompiledPolicy{}, err
	}

	compiled := compileRules(rules)

	if cacheable {
		err = s.repository.SetCompiled(ctx, id, version, compiled, s.config.PolicyCacheTTL)
		if err != nil {
			slog.WarnContext(
				ctx, "failed to cache compiled policy",
				slog.String("error", err.Error()),
				slog.String("module", "policy"),
			)
		}
	}

	return compiled, nil
}

// Invalidate drops the cached compiled form of a policy and bumps its version so
// that compilations started before the call cannot write their result back.
func (s *service) Invalidate(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "Policy.Service.Invalidate")
	defer span.End()

	if s.config.PolicyCacheTTL <= 0 {
		return nil
	}

	err := s.repository.InvalidateCompiled(ctx, id)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

// Evaluate decides whether user may perform action on resource.
// Deny rules are checked first and win over any allow.
func (s *service) Evaluate(ctx context.Context, user core.ActingUser, resource core.ResourceName, action core.Action) (core.Decision, error) {
	ctx, span := tracer.Start(ctx, "Policy.Service.Evaluate")
	defer span.End()

	span.SetAttributes(
		attribute.String("resource", string(resource)),
		attribute.String("action", string(action)),
	)

	if user.PolicyID == nil {
		err := pkgerrors.Wrap(core.NewErrorPermissionDenied(), "User does not have access permissions")
		span.RecordError(err)
		return core.Decision{}, err
	}

	compiled, err := s.Compile(ctx, *user.PolicyID)
	if err != nil {
		span.RecordError(err)
		return core.Decision{}, err
	}

	block, allowed := decide(compiled, string(resource), string(action))
	if !allowed {
		DecisionMetrics.WithLabelValues(string(resource), string(action), "deny").Inc()
		return core.Decision{Allowed: false}, nil
	}

	DecisionMetrics.WithLabelValues(string(resource), string(action), "allow").Inc()

	if block.ActionCondition == nil {
		return core.Decision{Allowed: true}, nil
	}

	filter := ResolveCondition(block.ActionCondition.Condition, structToMap(user))
	for key, value := range filter {
		if value == nil {
			slog.DebugContext(
				ctx, "condition placeholder resolved to nil",
				slog.String("key", key),
				slog.String("condition", block.ActionCondition.Label),
				slog.String("module", "policy"),
			)
		}
	}

	return core.Decision{Allowed: true, Filter: filter}, nil
}
