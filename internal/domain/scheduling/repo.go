package scheduling

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when the targeted row does not exist or belongs to
// a different owner. Deleting an already-deleted row reports it rather than
// succeeding silently.
var ErrNotFound = errors.New("not found")

// Rows are scoped by the owner column set at creation; a row owned by
// someone else behaves as if it did not exist.
type AppointmentRepository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, owner, id uuid.UUID) (*Appointment, error)
	Update(ctx context.Context, owner, id uuid.UUID, patch AppointmentPatch) (*Appointment, error)
	Delete(ctx context.Context, owner, id uuid.UUID) error
	// List returns the owner's appointments in chronological order.
	List(ctx context.Context, owner uuid.UUID) ([]*Appointment, error)
}

type TeleconsultationRepository interface {
	Create(ctx context.Context, tc *Teleconsultation) error
	GetByID(ctx context.Context, owner, id uuid.UUID) (*Teleconsultation, error)
	Update(ctx context.Context, owner, id uuid.UUID, patch TeleconsultationPatch) (*Teleconsultation, error)
	Delete(ctx context.Context, owner, id uuid.UUID) error
	// List returns the owner's teleconsultations in chronological order.
	List(ctx context.Context, owner uuid.UUID) ([]*Teleconsultation, error)
}
