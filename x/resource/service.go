package resource

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	pkgerrors "github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/sipradi/pvbu/core"
)

var tracer = otel.Tracer("resource")

type service struct {
	repository Repository
	config     core.Config
}

func NewService(repository Repository, config core.Config) core.ResourceService {
	return &service{repository, config}
}

func parseActions(names []string) ([]core.Action, error) {
	var invalid []string
	parsed := make([]core.Action, 0, len(names))
	for _, name := range names {
		action, err := core.ParseAction(name)
		if err != nil {
			invalid = append(invalid, name)
			continue
		}
		parsed = append(parsed, action)
	}
	if len(invalid) > 0 {
		return nil, core.NewErrorBadRequest("Invalid action(s)", invalid...)
	}
	return parsed, nil
}

// CreateResource creates a resource with an initial set of actions
func (s *service) CreateResource(ctx context.Context, name string, actions []string) (core.Resource, error) {
	ctx, span := tracer.Start(ctx, "Resource.Service.CreateResource")
	defer span.End()

	if name == "" {
		return core.Resource{}, core.NewErrorBadRequest("name is required")
	}

	parsed, err := parseActions(actions)
	if err != nil {
		return core.Resource{}, err
	}

	_, err = s.repository.GetResourceByName(ctx, name)
	if err == nil {
		return core.Resource{}, pkgerrors.Wrapf(core.NewErrorAlreadyExists(), "resource %s", name)
	}
	if !errors.Is(err, core.ErrorNotFound{}) {
		span.RecordError(err)
		return core.Resource{}, err
	}

	resource := core.Resource{Name: name}
	seen := map[core.Action]bool{}
	for _, action := range parsed {
		if seen[action] {
			continue
		}
		seen[action] = true
		resource.Actions = append(resource.Actions, core.ResourceAction{Name: string(action)})
	}

	created, err := s.repository.CreateResource(ctx, resource)
	if err != nil {
		span.RecordError(err)
		return core.Resource{}, err
	}

	return created, nil
}

// Generate seeds resources, resource actions and their conditions.
// An empty entries list seeds the built-in catalog.
func (s *service) Generate(ctx context.Context, entries []core.CatalogEntry) error {
	ctx, span := tracer.Start(ctx, "Resource.Service.Generate")
	defer span.End()

	if len(entries) == 0 {
		entries = Catalog
	}

	var conditions int
	for _, entry := range entries {
		resource, err := s.repository.UpsertResource(ctx, string(entry.Resource))
		if err != nil {
			span.RecordError(err)
			return pkgerrors.Wrapf(err, "failed to upsert resource %s", entry.Resource)
		}

		for _, catalogAction := range entry.Actions {
			if _, err := core.ParseAction(string(catalogAction.Name)); err != nil {
				return err
			}

			action, err := s.repository.UpsertResourceAction(ctx, resource.ID, string(catalogAction.Name))
			if err != nil {
				span.RecordError(err)
				return pkgerrors.Wrapf(err, "failed to upsert action %s of %s", catalogAction.Name, entry.Resource)
			}

			for _, condition := range catalogAction.Conditions {
				if !s.config.LegacySeedDuplicates {
					exists, err := s.repository.HasCondition(ctx, action.ID, condition.Label)
					if err != nil {
						span.RecordError(err)
						return err
					}
					if exists {
						continue
					}
				}

				_, err := s.repository.CreateCondition(ctx, core.ActionCondition{
					Label:            condition.Label,
					Condition:        condition.Condition,
					ResourceActionID: action.ID,
				})
				if err != nil {
					span.RecordError(err)
					return pkgerrors.Wrapf(err, "failed to create condition %q", condition.Label)
				}
				conditions++
			}
		}
	}

	slog.InfoContext(
		ctx, fmt.Sprintf("seeded %d resources, %d new conditions", len(entries), conditions),
		slog.String("module", "resource"),
	)

	return nil
}

// AddActions adds actions to an existing resource and returns how many were new
func (s *service) AddActions(ctx context.Context, resourceID uint, actions []string) (int64, error) {
	ctx, span := tracer.Start(ctx, "Resource.Service.AddActions")
	defer span.End()

	parsed, err := parseActions(actions)
	if err != nil {
		return 0, err
	}

	_, err = s.repository.GetResource(ctx, resourceID)
	if err != nil {
		span.RecordError(err)
		return 0, pkgerrors.Wrapf(err, "resource %d", resourceID)
	}

	rows := make([]core.ResourceAction, 0, len(parsed))
	for _, action := range parsed {
		rows = append(rows, core.ResourceAction{Name: string(action), ResourceID: resourceID})
	}

	return s.repository.AddActions(ctx, rows)
}

// AddCondition attaches a new condition to a resource action
func (s *service) AddCondition(ctx context.Context, actionID uint, label string, condition map[string]any) (core.ActionCondition, error) {
	ctx, span := tracer.Start(ctx, "Resource.Service.AddCondition")
	defer span.End()

	if label == "" || len(condition) == 0 {
		return core.ActionCondition{}, core.NewErrorBadRequest("label and condition are required")
	}

	_, err := s.repository.GetResourceAction(ctx, actionID)
	if err != nil {
		span.RecordError(err)
		return core.ActionCondition{}, pkgerrors.Wrapf(err, "action %d", actionID)
	}

	return s.repository.CreateCondition(ctx, core.ActionCondition{
		Label:            label,
		Condition:        condition,
		ResourceActionID: actionID,
	})
}

func (s *service) ListResources(ctx context.Context) ([]core.Resource, error) {
	ctx, span := tracer.Start(ctx, "Resource.Service.ListResources")
	defer span.End()

	return s.repository.ListResources(ctx)
}

// ListResourceActions lists every resource action with its resource name and condition labels
func (s *service) ListResourceActions(ctx context.Context) ([]core.ResourceActionView, error) {
	ctx, span := tracer.Start(ctx, "Resource.Service.ListResourceActions")
	defer span.End()

	actions, err := s.repository.ListResourceActions(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	views := make([]core.ResourceActionView, 0, len(actions))
	for _, action := range actions {
		view := core.ResourceActionView{
			ID:               action.ID,
			Name:             action.Name,
			ResourceID:       action.ResourceID,
			ActionConditions: []core.ActionConditionView{},
		}
		if action.Resource != nil {
			view.Resource = action.Resource.Name
		}
		for _, condition := range action.ActionConditions {
			view.ActionConditions = append(view.ActionConditions, core.ActionConditionView{
				ID:    condition.ID,
				Label: condition.Label,
			})
		}
		views = append(views, view)
	}

	return views, nil
}

func (s *service) ListActionsByResource(ctx context.Context, resourceID uint) ([]core.ResourceAction, error) {
	ctx, span := tracer.Start(ctx, "Resource.Service.ListActionsByResource")
	defer span.End()

	return s.repository.ListActionsByResource(ctx, resourceID)
}

func (s *service) ListConditionsByAction(ctx context.Context, actionID uint) ([]core.ActionCondition, error) {
	ctx, span := tracer.Start(ctx, "Resource.Service.ListConditionsByAction")
	defer span.End()

	return s.repository.ListConditionsByAction(ctx, actionID)
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Resource.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}
