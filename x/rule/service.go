package rule

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/sipradi/pvbu/core"
)

var tracer = otel.Tracer("rule")

// SyncMetrics counts rules changed by sync, by kind of change
var SyncMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "pvbu_rule_sync_changes_total",
		Help: "rules added, updated and removed by policy sync",
	},
	[]string{"kind"},
)

type service struct {
	repository Repository
	policy     core.PolicyService
}

func NewService(repository Repository, policy core.PolicyService) core.RuleService {
	return &service{repository, policy}
}

// validate checks that every referenced resource action exists and that every
// condition exists and belongs to the resource action it is paired with.
// It returns the referenced resource actions by id.
func (s *service) validate(ctx context.Context, entries []core.RuleEntry) (map[uint]core.ResourceAction, error) {
	actionIDs := map[uint]struct{}{}
	conditionIDs := map[uint]struct{}{}
	for _, entry := range entries {
		actionIDs[entry.ResourceActionID] = struct{}{}
		if entry.ActionConditionID != nil {
			conditionIDs[*entry.ActionConditionID] = struct{}{}
		}
	}

	if len(actionIDs) == 0 {
		return map[uint]core.ResourceAction{}, nil
	}

	found, err := s.repository.FindResourceActions(ctx, maps.Keys(actionIDs))
	if err != nil {
		return nil, err
	}

	actions := make(map[uint]core.ResourceAction, len(found))
	for _, action := range found {
		actions[action.ID] = action
	}

	var invalid []uint
	for id := range actionIDs {
		if _, ok := actions[id]; !ok {
			invalid = append(invalid, id)
		}
	}
	if len(invalid) > 0 {
		slices.Sort(invalid)
		ids := make([]string, len(invalid))
		for i, id := range invalid {
			ids[i] = fmt.Sprint(id)
		}
		return nil, core.NewErrorBadRequest(fmt.Sprintf("Invalid resourceActionId(s): %s", strings.Join(ids, ", ")))
	}

	if len(conditionIDs) == 0 {
		return actions, nil
	}

	foundConditions, err := s.repository.FindActionConditions(ctx, maps.Keys(conditionIDs))
	if err != nil {
		return nil, err
	}

	conditions := make(map[uint]core.ActionCondition, len(foundConditions))
	for _, condition := range foundConditions {
		conditions[condition.ID] = condition
	}

	var problems []string
	reported := map[string]bool{}
	for _, entry := range entries {
		if entry.ActionConditionID == nil {
			continue
		}

		var problem string
		condition, ok := conditions[*entry.ActionConditionID]
		if !ok {
			problem = fmt.Sprintf("Condition %d not found", *entry.ActionConditionID)
		} else if condition.ResourceActionID != entry.ResourceActionID {
			problem = fmt.Sprintf("Condition %d does not belong to Action %d", *entry.ActionConditionID, entry.ResourceActionID)
		} else {
			continue
		}

		if !reported[problem] {
			reported[problem] = true
			problems = append(problems, problem)
		}
	}
	if len(problems) > 0 {
		return nil, core.NewErrorBadRequest("Invalid action-condition links", problems...)
	}

	return actions, nil
}

// Create inserts the given rules into a policy, skipping ones that already exist
func (s *service) Create(ctx context.Context, policyID uint, allow, deny []core.RuleEntry) (core.CreatedRules, error) {
	ctx, span := tracer.Start(ctx, "Rule.Service.Create")
	defer span.End()

	if len(allow) == 0 {
		return core.CreatedRules{}, core.NewErrorBadRequest("allowActions should not be empty")
	}

	_, err := s.policy.Get(ctx, policyID)
	if err != nil {
		span.RecordError(err)
		return core.CreatedRules{}, err
	}

	actions, err := s.validate(ctx, append(append([]core.RuleEntry{}, allow...), deny...))
	if err != nil {
		span.RecordError(err)
		return core.CreatedRules{}, err
	}

	order, desired := desiredRules(allow, deny)
	rules := make([]core.AccessRule, 0, len(order))
	for _, key := range order {
		want := desired[key]
		rules = append(rules, newRule(policyID, want.entry, want.effect, actions))
	}

	count, err := s.repository.CreateMany(ctx, rules)
	if err != nil {
		span.RecordError(err)
		return core.CreatedRules{}, errors.Wrap(err, "failed to create access rules")
	}

	err = s.policy.Invalidate(ctx, policyID)
	if err != nil {
		slog.ErrorContext(
			ctx, "failed to invalidate compiled policy",
			slog.String("error", err.Error()),
			slog.String("module", "rule"),
		)
	}

	return core.CreatedRules{Message: "Access rules created", Count: count}, nil
}

// Sync replaces the rules of a policy with the desired allow and deny lists
func (s *service) Sync(ctx context.Context, policyID uint, allow, deny []core.RuleEntry) (core.SyncResult, error) {
	ctx, span := tracer.Start(ctx, "Rule.Service.Sync")
	defer span.End()

	span.SetAttributes(attribute.Int("policyID", int(policyID)))

	_, err := s.policy.Get(ctx, policyID)
	if err != nil {
		span.RecordError(err)
		return core.SyncResult{}, err
	}

	actions, err := s.validate(ctx, append(append([]core.RuleEntry{}, allow...), deny...))
	if err != nil {
		span.RecordError(err)
		return core.SyncResult{}, err
	}

	existing, err := s.repository.ListByPolicy(ctx, policyID)
	if err != nil {
		span.RecordError(err)
		return core.SyncResult{}, err
	}

	diff := computeDiff(policyID, existing, allow, deny, actions)
	result := core.SyncResult{
		Added:   len(diff.Add),
		Updated: len(diff.Update),
		Removed: len(diff.Remove),
	}
	if diff.Empty() {
		return result, nil
	}

	err = s.repository.ApplyDiff(ctx, policyID, diff)
	if err != nil {
		span.RecordError(err)
		return core.SyncResult{}, errors.Wrap(err, "failed to apply rule changes")
	}

	SyncMetrics.WithLabelValues("added").Add(float64(result.Added))
	SyncMetrics.WithLabelValues("updated").Add(float64(result.Updated))
	SyncMetrics.WithLabelValues("removed").Add(float64(result.Removed))

	err = s.policy.Invalidate(ctx, policyID)
	if err != nil {
		slog.ErrorContext(
			ctx, "failed to invalidate compiled policy",
			slog.String("error", err.Error()),
			slog.String("module", "rule"),
		)
	}

	slog.InfoContext(
		ctx, fmt.Sprintf("policy %d synced: +%d ~%d -%d", policyID, result.Added, result.Updated, result.Removed),
		slog.String("module", "rule"),
	)

	return result, nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Rule.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}
