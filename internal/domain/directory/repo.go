package directory

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when the targeted row does not exist or belongs to
// a different owner. Deleting an already-deleted row reports it rather than
// succeeding silently.
var ErrNotFound = errors.New("not found")

// Every row carries an owner column set at creation. Reads and mutations are
// scoped by it: a row owned by someone else behaves as if it did not exist.
type PatientRepository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, owner, id uuid.UUID) (*Patient, error)
	Update(ctx context.Context, owner, id uuid.UUID, patch PatientPatch) (*Patient, error)
	Delete(ctx context.Context, owner, id uuid.UUID) error
	// List returns the owner's patients, most recently registered first.
	List(ctx context.Context, owner uuid.UUID) ([]*Patient, error)
}

type ProfessionalRepository interface {
	Create(ctx context.Context, p *Professional) error
	GetByID(ctx context.Context, owner, id uuid.UUID) (*Professional, error)
	Update(ctx context.Context, owner, id uuid.UUID, patch ProfessionalPatch) (*Professional, error)
	Delete(ctx context.Context, owner, id uuid.UUID) error
	// List returns the owner's professionals, most recently registered first.
	List(ctx context.Context, owner uuid.UUID) ([]*Professional, error)
}
