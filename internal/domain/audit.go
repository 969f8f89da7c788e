package domain

import (
	"encoding/json"
	"time"
)

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}

// AuditLog is an immutable record of one time-entry mutation.
// TimeEntryID is a plain reference: logs outlive deleted entries.
// PreviousValue is nil for create, NewValue is nil for delete.
type AuditLog struct {
	ID            int64
	TimeEntryID   int64
	UserID        int64
	Action        AuditAction
	PreviousValue json.RawMessage
	NewValue      json.RawMessage
	Timestamp     time.Time
}
