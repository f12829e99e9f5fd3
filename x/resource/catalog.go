package resource

import "github.com/sipradi/pvbu/core"

const selfPlaceholder = "${resourceContext.id}"

func matchSelf(label, field string) core.CatalogCondition {
	return core.CatalogCondition{
		Label:     label,
		Condition: map[string]any{field: selfPlaceholder},
	}
}

func action(name core.Action, conditions ...core.CatalogCondition) core.CatalogAction {
	return core.CatalogAction{Name: name, Conditions: conditions}
}

// Catalog is the built-in set of resources, their permitted actions and the
// conditions offered for each action.
var Catalog = []core.CatalogEntry{
	{
		Resource: core.ResourceAll,
		Actions: []core.CatalogAction{
			action(core.ActionAll),
			action(core.ActionRead),
			action(core.ActionCreate),
			action(core.ActionUpdate),
		},
	},
	{
		Resource: core.ResourceAccessManagement,
		Actions: []core.CatalogAction{
			action(core.ActionAll),
			action(core.ActionRead),
			action(core.ActionCreate),
			action(core.ActionUpdate),
		},
	},
	{
		Resource: core.ResourceRoutes,
		Actions: []core.CatalogAction{
			action(core.ActionAll),
			action(core.ActionRead),
			action(core.ActionCreate),
			action(core.ActionUpdate),
			action(core.ActionAssign),
		},
	},
	{
		Resource: core.ResourceVehicle,
		Actions: []core.CatalogAction{
			action(core.ActionAll),
			action(core.ActionRead,
				matchSelf("User matches the resource owner", "ownerId"),
				matchSelf("User matches the resource driver", "driverId"),
			),
			action(core.ActionCreate),
			action(core.ActionUpdate,
				matchSelf("User matches the resource owner", "ownerId"),
			),
			action(core.ActionAssign),
		},
	},
	{
		Resource: core.ResourceOwner,
		Actions: []core.CatalogAction{
			action(core.ActionAll),
			action(core.ActionRead),
			action(core.ActionCreate),
			action(core.ActionUpdate),
			action(core.ActionUpdateSelf),
		},
	},
	{
		Resource: core.ResourceDriver,
		Actions: []core.CatalogAction{
			action(core.ActionAll),
			action(core.ActionRead,
				matchSelf("User matches the driver owner", "createdBy"),
			),
			action(core.ActionCreate),
			action(core.ActionUpdate,
				matchSelf("User matches the driver owner", "createdBy"),
			),
			action(core.ActionUpdateSelf),
			action(core.ActionAssign,
				matchSelf("User matches the driver owner", "createdBy"),
			),
		},
	},
	{
		Resource: core.ResourceTransactions,
		Actions: []core.CatalogAction{
			action(core.ActionAll),
			action(core.ActionRead,
				matchSelf("User matches self", "customerId"),
			),
			action(core.ActionCreate),
			action(core.ActionUpdate),
		},
	},
	{
		Resource: core.ResourceWallet,
		Actions: []core.CatalogAction{
			action(core.ActionAll),
			action(core.ActionRead,
				matchSelf("User matches self", "customerId"),
			),
			action(core.ActionCreate),
			action(core.ActionUpdate),
		},
	},
	{
		Resource: core.ResourcePassenger,
		Actions: []core.CatalogAction{
			action(core.ActionAll),
			action(core.ActionRead),
			action(core.ActionCreate),
			action(core.ActionUpdate),
			action(core.ActionUpdateSelf),
		},
	},
	{
		Resource: core.ResourceTrips,
		Actions: []core.CatalogAction{
			action(core.ActionAll),
			action(core.ActionRead,
				matchSelf("User matches trip passenger", "passengerId"),
				matchSelf("User owns the vehicle", "vehicle.ownerId"),
				matchSelf("User drives the vehicle", "vehicle.driverId"),
			),
			action(core.ActionCreate),
			action(core.ActionUpdate),
		},
	},
	{
		Resource: core.ResourceFeedback,
		Actions: []core.CatalogAction{
			action(core.ActionAll),
			action(core.ActionRead,
				matchSelf("User matches the feedback passenger", "passengerId"),
				matchSelf("User matches the feedback driver", "driverId"),
			),
			action(core.ActionCreate),
			action(core.ActionUpdate),
			action(core.ActionDelete),
		},
	},
	{
		Resource: core.ResourceEmergencyAlerts,
		Actions: []core.CatalogAction{
			action(core.ActionAll),
			action(core.ActionRead,
				matchSelf("User matches the emergency alert passenger", "passengerId"),
				matchSelf("User matches the emergency alert vehicle driver", "vehicle.driverId"),
				matchSelf("User matches the emergency alert vehicle owner", "vehicle.ownerId"),
			),
			action(core.ActionCreate),
			action(core.ActionUpdate),
			action(core.ActionDelete),
		},
	},
	{
		Resource: core.ResourceKycUpload,
		Actions: []core.CatalogAction{
			action(core.ActionAll),
			action(core.ActionRead,
				matchSelf("User matches the kyc passenger", "passengerId"),
			),
			action(core.ActionCreate),
			action(core.ActionUpdate,
				matchSelf("User matches the kyc passenger", "passengerId"),
			),
			action(core.ActionDelete),
		},
	},
}
