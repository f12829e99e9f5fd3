package core

// ActionConditionBlock is the condition carried by a compiled action
type ActionConditionBlock struct {
	Label     string         `json:"label"`
	Condition map[string]any `json:"condition"`
}

// ActionBlock is the compiled form of one rule. A nil ActionCondition means unconditional.
type ActionBlock struct {
	ActionCondition *ActionConditionBlock `json:"actionCondition,omitempty"`
}

// ResourceActions holds the compiled actions of one resource under one effect
type ResourceActions struct {
	Actions map[string]ActionBlock `json:"actions"`
}

// CompiledPolicy is the evaluation-ready projection of a policy's rules
type CompiledPolicy struct {
	Allow map[string]ResourceActions `json:"allow"`
	Deny  map[string]ResourceActions `json:"deny"`
}

// NewCompiledPolicy returns an empty compiled policy
func NewCompiledPolicy() CompiledPolicy {
	return CompiledPolicy{
		Allow: map[string]ResourceActions{},
		Deny:  map[string]ResourceActions{},
	}
}

// Effects returns the resource map for the given effect
func (p CompiledPolicy) Effects(effect Effect) map[string]ResourceActions {
	if effect == EffectDeny {
		return p.Deny
	}
	return p.Allow
}

// Filter is a nested row-level filter derived from an action condition.
// Arrays are wrapped as {"in": [...]}; unresolved placeholders are nil.
type Filter map[string]any

// Decision is the outcome of an authorization check
type Decision struct {
	Allowed bool   `json:"allowed"`
	Filter  Filter `json:"filter,omitempty"`
}

// ActingUser is the authenticated principal of a request
type ActingUser struct {
	Principal
	Role      Role   `json:"role"`
	CreatedBy string `json:"createdBy,omitempty"`
}

// RuleEntry is one desired rule of a create or sync request
type RuleEntry struct {
	ResourceActionID  uint  `json:"resourceActionId"`
	ActionConditionID *uint `json:"actionConditionId,omitempty"`
}

// SyncResult reports what a sync changed
type SyncResult struct {
	Added   int `json:"added"`
	Updated int `json:"updated"`
	Removed int `json:"removed"`
}

// CatalogCondition is a built-in condition of a catalog action
type CatalogCondition struct {
	Label     string         `json:"label"`
	Condition map[string]any `json:"condition"`
}

// CatalogAction is an action of a catalog resource
type CatalogAction struct {
	Name       Action             `json:"name"`
	Conditions []CatalogCondition `json:"actionCondition,omitempty"`
}

// CatalogEntry is a resource together with its permitted actions
type CatalogEntry struct {
	Resource ResourceName    `json:"resource"`
	Actions  []CatalogAction `json:"actions"`
}

// ResourceActionView is a resource action listed with its resource name and conditions
type ResourceActionView struct {
	ID               uint                  `json:"id"`
	Name             string                `json:"name"`
	ResourceID       uint                  `json:"resourceId"`
	Resource         string                `json:"resource"`
	ActionConditions []ActionConditionView `json:"actionConditions"`
}

// ActionConditionView is the listing projection of an action condition
type ActionConditionView struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
}
