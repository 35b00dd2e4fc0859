package records

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when the targeted row does not exist. Every
// lookup is owner-scoped, so a row owned by someone else behaves as if
// it did not exist.
var ErrNotFound = errors.New("not found")

type EntryRepository interface {
	Create(ctx context.Context, e *Entry) error
	GetByID(ctx context.Context, owner, id uuid.UUID) (*Entry, error)
	Update(ctx context.Context, owner, id uuid.UUID, patch EntryPatch) (*Entry, error)
	Delete(ctx context.Context, owner, id uuid.UUID) error
	// List returns the owner's record entries, most recent entry date first.
	List(ctx context.Context, owner uuid.UUID) ([]*Entry, error)
	// ListByPatient returns one patient's entries, most recent first.
	ListByPatient(ctx context.Context, owner, patientID uuid.UUID) ([]*Entry, error)
}
