package policy

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sipradi/pvbu/core"
)

// DecisionMetrics counts authorization decisions by outcome
var DecisionMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "pvbu_access_decisions_total",
		Help: "access control decisions",
	},
	[]string{"resource", "action", "result"},
)

// compileRules groups rules as effect -> resource -> action.
// Rules are expected in insertion order; a later rule for the same bucket replaces the earlier one.
func compileRules(rules []core.AccessRule) core.CompiledPolicy {
	compiled := core.NewCompiledPolicy()

	for _, rule := range rules {
		if rule.ResourceAction == nil {
			continue
		}

		effects := compiled.Effects(rule.Effect)
		group, ok := effects[rule.Resource]
		if !ok {
			group = core.ResourceActions{Actions: map[string]core.ActionBlock{}}
			effects[rule.Resource] = group
		}

		block := core.ActionBlock{}
		if rule.ActionCondition != nil {
			block.ActionCondition = &core.ActionConditionBlock{
				Label:     rule.ActionCondition.Label,
				Condition: map[string]any(rule.ActionCondition.Condition),
			}
		}

		group.Actions[rule.ResourceAction.Name] = block
	}

	return compiled
}

func mergeActions(effects map[string]core.ResourceActions, resource string) map[string]core.ActionBlock {
	merged := map[string]core.ActionBlock{}
	for name, block := range effects[string(core.ResourceAll)].Actions {
		merged[name] = block
	}
	for name, block := range effects[resource].Actions {
		merged[name] = block
	}
	return merged
}

// decide returns the allow block that grants action on resource, if any
func decide(compiled core.CompiledPolicy, resource, action string) (core.ActionBlock, bool) {
	denied := mergeActions(compiled.Deny, resource)
	if _, ok := denied[action]; ok {
		return core.ActionBlock{}, false
	}
	if _, ok := denied[string(core.ActionAll)]; ok {
		return core.ActionBlock{}, false
	}

	allowed := mergeActions(compiled.Allow, resource)
	if block, ok := allowed[action]; ok {
		return block, true
	}
	if block, ok := allowed[string(core.ActionAll)]; ok {
		return block, true
	}

	return core.ActionBlock{}, false
}
