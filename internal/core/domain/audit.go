package domain

import "time"

// ActionType classifies a moderation audit entry.
type ActionType string

const (
	ActionDeleteUser  ActionType = "DELETE_USER"
	ActionChangeRole  ActionType = "CHANGE_ROLE"
	ActionMakeAdmin   ActionType = "MAKE_ADMIN"
	ActionRemoveAdmin ActionType = "REMOVE_ADMIN"
)

// AuditLogEntry is an immutable record of a privileged mutation.
//
// ActionOnName is a snapshot of the target's username taken at action time.
// ActionOn may stop resolving once the target is deleted; the snapshot does not.
type AuditLogEntry struct {
	ID           string
	ActionBy     string
	ActionOn     string
	ActionOnName string
	ActionType   ActionType
	Message      string
	CreatedAt    time.Time
}

// AuditLogView is an entry with its user references expanded for display.
// A nil ActionBy/ActionOn means the referenced user no longer exists.
type AuditLogView struct {
	ID           string       `json:"_id"`
	ActionBy     *UserSummary `json:"actionBy"`
	ActionOn     *UserSummary `json:"actionOn"`
	ActionOnName string       `json:"actionOnName"`
	ActionType   ActionType   `json:"actionType"`
	Message      string       `json:"message"`
	CreatedAt    time.Time    `json:"createdAt"`
}
