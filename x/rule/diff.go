package rule

import (
	"fmt"

	"github.com/sipradi/pvbu/core"
)

// Diff is the change set that turns the stored rules of a policy into the desired ones
type Diff struct {
	Add    []core.AccessRule
	Update []core.AccessRule
	Remove []core.AccessRule
}

// Empty reports whether the diff changes nothing
func (d Diff) Empty() bool {
	return len(d.Add) == 0 && len(d.Update) == 0 && len(d.Remove) == 0
}

func conditionString(actionConditionID *uint) string {
	if actionConditionID == nil {
		return "null"
	}
	return fmt.Sprint(*actionConditionID)
}

// ruleKey identifies a rule within a policy
func ruleKey(resourceActionID uint, actionConditionID *uint) string {
	return fmt.Sprintf("%d:%s", resourceActionID, conditionString(actionConditionID))
}

// RuleIdentifier is the globally unique identifier of a rule
func RuleIdentifier(policyID, resourceActionID uint, actionConditionID *uint) string {
	return fmt.Sprintf("%d-%d-%s", policyID, resourceActionID, conditionString(actionConditionID))
}

type desiredRule struct {
	entry  core.RuleEntry
	effect core.Effect
}

// desiredRules merges allow and deny entries by identity. Deny replaces allow for the same identity.
func desiredRules(allow, deny []core.RuleEntry) ([]string, map[string]desiredRule) {
	order := []string{}
	desired := map[string]desiredRule{}

	add := func(entries []core.RuleEntry, effect core.Effect) {
		for _, entry := range entries {
			key := ruleKey(entry.ResourceActionID, entry.ActionConditionID)
			if _, ok := desired[key]; !ok {
				order = append(order, key)
			}
			desired[key] = desiredRule{entry, effect}
		}
	}
	add(allow, core.EffectAllow)
	add(deny, core.EffectDeny)

	return order, desired
}

func newRule(policyID uint, entry core.RuleEntry, effect core.Effect, actions map[uint]core.ResourceAction) core.AccessRule {
	resource := ""
	if action, ok := actions[entry.ResourceActionID]; ok && action.Resource != nil {
		resource = action.Resource.Name
	}

	return core.AccessRule{
		PolicyID:          policyID,
		ResourceActionID:  entry.ResourceActionID,
		ActionConditionID: entry.ActionConditionID,
		Resource:          resource,
		Effect:            effect,
		RuleIdentifier:    RuleIdentifier(policyID, entry.ResourceActionID, entry.ActionConditionID),
	}
}

// computeDiff compares the stored rules of a policy with the desired allow and deny lists.
// actions must contain every resource action referenced by the desired lists.
func computeDiff(policyID uint, existing []core.AccessRule, allow, deny []core.RuleEntry, actions map[uint]core.ResourceAction) Diff {
	order, desired := desiredRules(allow, deny)

	current := map[string]core.AccessRule{}
	for _, rule := range existing {
		current[ruleKey(rule.ResourceActionID, rule.ActionConditionID)] = rule
	}

	diff := Diff{}
	for _, key := range order {
		want := desired[key]
		have, ok := current[key]
		if !ok {
			diff.Add = append(diff.Add, newRule(policyID, want.entry, want.effect, actions))
			continue
		}
		if have.Effect != want.effect {
			have.Effect = want.effect
			diff.Update = append(diff.Update, have)
		}
	}

	for _, rule := range existing {
		if _, ok := desired[ruleKey(rule.ResourceActionID, rule.ActionConditionID)]; !ok {
			diff.Remove = append(diff.Remove, rule)
		}
	}

	return diff
}
