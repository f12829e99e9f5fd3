package core

import "fmt"

const (
	RequesterCtxKey     = "pvbu-requester"
	RequesterRoleCtxKey = "pvbu-requesterRole"
	RequestFilterCtxKey = "pvbu-requestFilter"
)

// Effect is the outcome attached to a rule
type Effect string

const (
	EffectAllow Effect = "allow"
	EffectDeny  Effect = "deny"
)

// Action is the closed set of verbs a rule can target
type Action string

const (
	ActionAll        Action = "*"
	ActionRead       Action = "read"
	ActionCreate     Action = "create"
	ActionDelete     Action = "delete"
	ActionUpdate     Action = "update"
	ActionAssign     Action = "assign"
	ActionUpdateSelf Action = "updateSelf"
)

var actions = []Action{
	ActionAll,
	ActionRead,
	ActionCreate,
	ActionDelete,
	ActionUpdate,
	ActionAssign,
	ActionUpdateSelf,
}

// ParseAction validates an action name
func ParseAction(name string) (Action, error) {
	for _, a := range actions {
		if string(a) == name {
			return a, nil
		}
	}
	return "", NewErrorBadRequest(fmt.Sprintf("unknown action: %s", name))
}

// ResourceName names a protectable resource
type ResourceName string

const (
	ResourceAll              ResourceName = "*"
	ResourceAccessManagement ResourceName = "accessManagement"
	ResourceRoutes           ResourceName = "routes"
	ResourceVehicle          ResourceName = "vehicle"
	ResourceOwner            ResourceName = "owner"
	ResourceDriver           ResourceName = "driver"
	ResourceTransactions     ResourceName = "transactions"
	ResourcePassenger        ResourceName = "passenger"
	ResourceWallet           ResourceName = "wallet"
	ResourceTrips            ResourceName = "trips"
	ResourceFeedback         ResourceName = "feedback"
	ResourceEmergencyAlerts  ResourceName = "emergencyAlerts"
	ResourceKycUpload        ResourceName = "kycUpload"
)

// Role selects which account table a principal lives in
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleOwner     Role = "owner"
	RoleDriver    Role = "driver"
	RolePassenger Role = "passenger"
)

// ParseRole validates a role name
func ParseRole(name string) (Role, error) {
	switch Role(name) {
	case RoleAdmin, RoleOwner, RoleDriver, RolePassenger:
		return Role(name), nil
	default:
		return "", NewErrorBadRequest(fmt.Sprintf("unknown role: %s", name))
	}
}
