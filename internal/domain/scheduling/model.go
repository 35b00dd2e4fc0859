package scheduling

import (
	"time"

	"github.com/google/uuid"
)

// Appointment types.
const (
	TypeConsultation = "Consultation"
	TypeFollowUp     = "Follow-up"
	TypeExam         = "Exam"
)

// Appointment statuses.
const (
	StatusConfirmed = "Confirmed"
	StatusWaiting   = "Waiting"
	StatusCancelled = "Cancelled"
)

// Teleconsultation statuses.
const (
	TeleStatusScheduled  = "Scheduled"
	TeleStatusInProgress = "InProgress"
	TeleStatusDone       = "Done"
)

// Appointment maps to the appointments table.
type Appointment struct {
	ID             uuid.UUID `db:"id" json:"id"`
	PatientID      uuid.UUID `db:"patient_id" json:"patient_id"`
	ProfessionalID uuid.UUID `db:"professional_id" json:"professional_id"`
	DateTime       time.Time `db:"date_time" json:"date_time"`
	Type           string    `db:"type" json:"type"`
	Status         string    `db:"status" json:"status"`
	Notes          *string   `db:"notes" json:"notes,omitempty"`
	OwnerID        uuid.UUID `db:"owner_id" json:"owner_id"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// AppointmentPatch carries a partial update. Nil fields are left untouched.
type AppointmentPatch struct {
	PatientID      *uuid.UUID `json:"patient_id,omitempty"`
	ProfessionalID *uuid.UUID `json:"professional_id,omitempty"`
	DateTime       *time.Time `json:"date_time,omitempty"`
	Type           *string    `json:"type,omitempty"`
	Status         *string    `json:"status,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
}

// Teleconsultation maps to the teleconsultations table.
type Teleconsultation struct {
	ID             uuid.UUID `db:"id" json:"id"`
	PatientID      uuid.UUID `db:"patient_id" json:"patient_id"`
	ProfessionalID uuid.UUID `db:"professional_id" json:"professional_id"`
	DateTime       time.Time `db:"date_time" json:"date_time"`
	Status         string    `db:"status" json:"status"`
	RoomURL        *string   `db:"room_url" json:"room_url,omitempty"`
	OwnerID        uuid.UUID `db:"owner_id" json:"owner_id"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// TeleconsultationPatch carries a partial update. Nil fields are left untouched.
type TeleconsultationPatch struct {
	PatientID      *uuid.UUID `json:"patient_id,omitempty"`
	ProfessionalID *uuid.UUID `json:"professional_id,omitempty"`
	DateTime       *time.Time `json:"date_time,omitempty"`
	Status         *string    `json:"status,omitempty"`
	RoomURL        *string    `json:"room_url,omitempty"`
}
