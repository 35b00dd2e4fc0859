package records

import (
	"time"

	"github.com/google/uuid"
)

// Entry priorities.
const (
	PriorityLow    = "Low"
	PriorityNormal = "Normal"
	PriorityHigh   = "High"
)

// Entry maps to the record_entries table. Each row is one note in a
// patient's medical record.
type Entry struct {
	ID          uuid.UUID `db:"id" json:"id"`
	PatientID   uuid.UUID `db:"patient_id" json:"patient_id"`
	Type        string    `db:"type" json:"type"`
	Description string    `db:"description" json:"description"`
	Priority    string    `db:"priority" json:"priority"`
	EntryDate   time.Time `db:"entry_date" json:"entry_date"`
	OwnerID     uuid.UUID `db:"owner_id" json:"owner_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// EntryPatch carries a partial update. Nil fields are left untouched.
type EntryPatch struct {
	PatientID   *uuid.UUID `json:"patient_id,omitempty"`
	Type        *string    `json:"type,omitempty"`
	Description *string    `json:"description,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	EntryDate   *time.Time `json:"entry_date,omitempty"`
}
