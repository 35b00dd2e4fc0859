package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// =========== Patient Repository ===========

type patientRepoPG struct{ pool *pgxpool.Pool }

func NewPatientRepoPG(pool *pgxpool.Pool) PatientRepository { return &patientRepoPG{pool: pool} }

const patientCols = `id, name, cpf, email, phone, birth_date, address, owner_id, created_at, updated_at`

func (r *patientRepoPG) scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Name, &p.CPF, &p.Email, &p.Phone, &p.BirthDate,
		&p.Address, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &p, err
}

func (r *patientRepoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO patients (id, name, cpf, email, phone, birth_date, address, owner_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at, updated_at`,
		p.ID, p.Name, p.CPF, p.Email, p.Phone, p.BirthDate, p.Address, p.OwnerID,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *patientRepoPG) GetByID(ctx context.Context, owner, id uuid.UUID) (*Patient, error) {
	return r.scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE owner_id = $1 AND id = $2`, owner, id))
}

func (r *patientRepoPG) Update(ctx context.Context, owner, id uuid.UUID, patch PatientPatch) (*Patient, error) {
	var sets []string
	var args []interface{}
	n := 1

	set := func(col string, v interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, n))
		args = append(args, v)
		n++
	}

	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.CPF != nil {
		set("cpf", *patch.CPF)
	}
	if patch.Email != nil {
		set("email", *patch.Email)
	}
	if patch.Phone != nil {
		set("phone", *patch.Phone)
	}
	if patch.BirthDate != nil {
		set("birth_date", *patch.BirthDate)
	}
	if patch.Address != nil {
		set("address", *patch.Address)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, owner, id)
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, owner, id)
	query := fmt.Sprintf(`UPDATE patients SET %s WHERE owner_id = $%d AND id = $%d RETURNING `+patientCols,
		strings.Join(sets, ", "), n, n+1)

	return r.scanPatient(r.pool.QueryRow(ctx, query, args...))
}

func (r *patientRepoPG) Delete(ctx context.Context, owner, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM patients WHERE owner_id = $1 AND id = $2`, owner, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *patientRepoPG) List(ctx context.Context, owner uuid.UUID) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+patientCols+` FROM patients WHERE owner_id = $1 ORDER BY created_at DESC`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var patients []*Patient
	for rows.Next() {
		p, err := r.scanPatient(rows)
		if err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	return patients, rows.Err()
}

// =========== Professional Repository ===========

type professionalRepoPG struct{ pool *pgxpool.Pool }

func NewProfessionalRepoPG(pool *pgxpool.Pool) ProfessionalRepository {
	return &professionalRepoPG{pool: pool}
}

const professionalCols = `id, name, specialty, crm, email, phone, owner_id, created_at, updated_at`

func (r *professionalRepoPG) scanProfessional(row pgx.Row) (*Professional, error) {
	var p Professional
	err := row.Scan(&p.ID, &p.Name, &p.Specialty, &p.CRM, &p.Email, &p.Phone,
		&p.OwnerID, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &p, err
}

func (r *professionalRepoPG) Create(ctx context.Context, p *Professional) error {
	p.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO professionals (id, name, specialty, crm, email, phone, owner_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at, updated_at`,
		p.ID, p.Name, p.Specialty, p.CRM, p.Email, p.Phone, p.OwnerID,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *professionalRepoPG) GetByID(ctx context.Context, owner, id uuid.UUID) (*Professional, error) {
	return r.scanProfessional(r.pool.QueryRow(ctx,
		`SELECT `+professionalCols+` FROM professionals WHERE owner_id = $1 AND id = $2`, owner, id))
}

func (r *professionalRepoPG) Update(ctx context.Context, owner, id uuid.UUID, patch ProfessionalPatch) (*Professional, error) {
	var sets []string
	var args []interface{}
	n := 1

	set := func(col string, v interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, n))
		args = append(args, v)
		n++
	}

	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Specialty != nil {
		set("specialty", *patch.Specialty)
	}
	if patch.CRM != nil {
		set("crm", *patch.CRM)
	}
	if patch.Email != nil {
		set("email", *patch.Email)
	}
	if patch.Phone != nil {
		set("phone", *patch.Phone)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, owner, id)
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, owner, id)
	query := fmt.Sprintf(`UPDATE professionals SET %s WHERE owner_id = $%d AND id = $%d RETURNING `+professionalCols,
		strings.Join(sets, ", "), n, n+1)

	return r.scanProfessional(r.pool.QueryRow(ctx, query, args...))
}

func (r *professionalRepoPG) Delete(ctx context.Context, owner, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM professionals WHERE owner_id = $1 AND id = $2`, owner, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *professionalRepoPG) List(ctx context.Context, owner uuid.UUID) ([]*Professional, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+professionalCols+` FROM professionals WHERE owner_id = $1 ORDER BY created_at DESC`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var professionals []*Professional
	for rows.Next() {
		p, err := r.scanProfessional(rows)
		if err != nil {
			return nil, err
		}
		professionals = append(professionals, p)
	}
	return professionals, rows.Err()
}
