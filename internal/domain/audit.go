package domain

import "time"

// AuditAction classifies an audit trail entry.
type AuditAction string

const (
	AuditCreate AuditAction = "create"
	AuditUpdate AuditAction = "update"
	AuditDelete AuditAction = "delete"
	AuditSystem AuditAction = "system"
)

// SystemActor is the recorded actor for sweeper-initiated entries.
const SystemActor = "system"

// FieldChange is one entry of a structured audit diff.
type FieldChange struct {
	Old interface{} `json:"old"`
	New interface{} `json:"new"`
}

// AuditLogEntry is one immutable line of the audit trail. Entries are only
// ever inserted; nothing in the application updates or deletes them.
type AuditLogEntry struct {
	ID         int64
	Action     AuditAction
	UserID     string // acting member VID, or SystemActor
	BookingID  *int64
	PositionID *string
	Details    string                 // human-readable summary
	Changes    map[string]FieldChange // structured field diff, nil when not applicable
	Timestamp  time.Time
}
