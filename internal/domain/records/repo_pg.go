package records

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type entryRepoPG struct{ pool *pgxpool.Pool }

func NewEntryRepoPG(pool *pgxpool.Pool) EntryRepository { return &entryRepoPG{pool: pool} }

const entryCols = `id, patient_id, type, description, priority, entry_date, owner_id, created_at, updated_at`

func (r *entryRepoPG) scanEntry(row pgx.Row) (*Entry, error) {
	var e Entry
	err := row.Scan(&e.ID, &e.PatientID, &e.Type, &e.Description, &e.Priority,
		&e.EntryDate, &e.OwnerID, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &e, err
}

func (r *entryRepoPG) Create(ctx context.Context, e *Entry) error {
	e.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO record_entries (id, patient_id, type, description, priority, entry_date, owner_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at, updated_at`,
		e.ID, e.PatientID, e.Type, e.Description, e.Priority, e.EntryDate, e.OwnerID,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
}

func (r *entryRepoPG) GetByID(ctx context.Context, owner, id uuid.UUID) (*Entry, error) {
	return r.scanEntry(r.pool.QueryRow(ctx,
		`SELECT `+entryCols+` FROM record_entries WHERE owner_id = $1 AND id = $2`, owner, id))
}

func (r *entryRepoPG) Update(ctx context.Context, owner, id uuid.UUID, patch EntryPatch) (*Entry, error) {
	var sets []string
	var args []interface{}
	n := 1

	set := func(col string, v interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, n))
		args = append(args, v)
		n++
	}

	if patch.PatientID != nil {
		set("patient_id", *patch.PatientID)
	}
	if patch.Type != nil {
		set("type", *patch.Type)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Priority != nil {
		set("priority", *patch.Priority)
	}
	if patch.EntryDate != nil {
		set("entry_date", *patch.EntryDate)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, owner, id)
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, owner, id)
	query := fmt.Sprintf(`UPDATE record_entries SET %s WHERE owner_id = $%d AND id = $%d RETURNING `+entryCols,
		strings.Join(sets, ", "), n, n+1)

	return r.scanEntry(r.pool.QueryRow(ctx, query, args...))
}

func (r *entryRepoPG) Delete(ctx context.Context, owner, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM record_entries WHERE owner_id = $1 AND id = $2`, owner, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *entryRepoPG) List(ctx context.Context, owner uuid.UUID) ([]*Entry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+entryCols+` FROM record_entries WHERE owner_id = $1 ORDER BY entry_date DESC`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *entryRepoPG) ListByPatient(ctx context.Context, owner, patientID uuid.UUID) ([]*Entry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+entryCols+` FROM record_entries WHERE owner_id = $1 AND patient_id = $2 ORDER BY entry_date DESC`, owner, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *entryRepoPG) collect(rows pgx.Rows) ([]*Entry, error) {
	var entries []*Entry
	for rows.Next() {
		e, err := r.scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
