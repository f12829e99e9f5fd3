package core

import (
	"time"

	"gorm.io/datatypes"
)

// Resource is a protectable noun such as "vehicle" or "*"
type Resource struct {
	ID      uint             `json:"id" gorm:"primaryKey;auto_increment"`
	Name    string           `json:"name" gorm:"type:text;uniqueIndex"`
	Actions []ResourceAction `json:"actions,omitempty" gorm:"foreignKey:ResourceID"`
	CDate   time.Time        `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
	MDate   time.Time        `json:"mdate" gorm:"autoUpdateTime"`
}

// ResourceAction is an action that is permissible in principle on a resource
type ResourceAction struct {
	ID               uint              `json:"id" gorm:"primaryKey;auto_increment"`
	Name             string            `json:"name" gorm:"type:text;uniqueIndex:uniq_resource_action"`
	ResourceID       uint              `json:"resourceId" gorm:"uniqueIndex:uniq_resource_action"`
	Resource         *Resource         `json:"resource,omitempty" gorm:"foreignKey:ResourceID"`
	ActionConditions []ActionCondition `json:"actionConditions,omitempty" gorm:"foreignKey:ResourceActionID"`
	CDate            time.Time         `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
}

// ActionCondition is a named row-level filter template attached to a resource action
type ActionCondition struct {
	ID               uint              `json:"id" gorm:"primaryKey;auto_increment"`
	Label            string            `json:"label" gorm:"type:text"`
	Condition        datatypes.JSONMap `json:"condition"`
	ResourceActionID uint              `json:"resourceActionId" gorm:"index"`
	CDate            time.Time         `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
}

// AccessPolicy is a named bundle of rules
type AccessPolicy struct {
	ID          uint         `json:"id" gorm:"primaryKey;auto_increment"`
	Title       string       `json:"title" gorm:"type:text"`
	Description string       `json:"description" gorm:"type:text"`
	Rules       []AccessRule `json:"rules,omitempty" gorm:"foreignKey:PolicyID"`
	CDate       time.Time    `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
	MDate       time.Time    `json:"mdate" gorm:"autoUpdateTime"`
}

// AccessRule grants or denies one resource action, optionally under a condition.
// RuleIdentifier is unique across the table: "<policyId>-<resourceActionId>-<actionConditionId|null>"
type AccessRule struct {
	ID                uint             `json:"id" gorm:"primaryKey;auto_increment"`
	PolicyID          uint             `json:"policyId" gorm:"index"`
	ResourceActionID  uint             `json:"resourceActionId"`
	ResourceAction    *ResourceAction  `json:"resourceAction,omitempty" gorm:"foreignKey:ResourceActionID"`
	ActionConditionID *uint            `json:"actionConditionId"`
	ActionCondition   *ActionCondition `json:"actionCondition,omitempty" gorm:"foreignKey:ActionConditionID"`
	Resource          string           `json:"resource" gorm:"type:text"`
	Effect            Effect           `json:"effect" gorm:"type:text"`
	RuleIdentifier    string           `json:"ruleIdentifier" gorm:"type:text;uniqueIndex"`
	CDate             time.Time        `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
	MDate             time.Time        `json:"mdate" gorm:"autoUpdateTime"`
}

// Principal is the common part of every account table
type Principal struct {
	ID           string    `json:"id" gorm:"primaryKey;type:text"`
	Email        string    `json:"email" gorm:"type:text;uniqueIndex"`
	DisplayName  string    `json:"displayName" gorm:"type:text"`
	Phone        string    `json:"phone" gorm:"type:text"`
	PasswordHash string    `json:"-" gorm:"type:text"`
	PolicyID     *uint     `json:"policyId"`
	CDate        time.Time `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
	MDate        time.Time `json:"mdate" gorm:"autoUpdateTime"`
}

// Owner is a vehicle owner account
type Owner struct {
	Principal
}

// Driver is a driver account, registered by an owner
type Driver struct {
	Principal
	CreatedBy string `json:"createdBy" gorm:"type:text;index"`
}

// Passenger is a passenger account
type Passenger struct {
	Principal
}
