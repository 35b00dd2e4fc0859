package scheduling

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// =========== Appointment Repository ===========

type appointmentRepoPG struct{ pool *pgxpool.Pool }

func NewAppointmentRepoPG(pool *pgxpool.Pool) AppointmentRepository {
	return &appointmentRepoPG{pool: pool}
}

const appointmentCols = `id, patient_id, professional_id, date_time, type, status, notes, owner_id, created_at, updated_at`

func (r *appointmentRepoPG) scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.PatientID, &a.ProfessionalID, &a.DateTime, &a.Type,
		&a.Status, &a.Notes, &a.OwnerID, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &a, err
}

func (r *appointmentRepoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO appointments (id, patient_id, professional_id, date_time, type, status, notes, owner_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at, updated_at`,
		a.ID, a.PatientID, a.ProfessionalID, a.DateTime, a.Type, a.Status, a.Notes, a.OwnerID,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
}

func (r *appointmentRepoPG) GetByID(ctx context.Context, owner, id uuid.UUID) (*Appointment, error) {
	return r.scanAppointment(r.pool.QueryRow(ctx,
		`SELECT `+appointmentCols+` FROM appointments WHERE owner_id = $1 AND id = $2`, owner, id))
}

func (r *appointmentRepoPG) Update(ctx context.Context, owner, id uuid.UUID, patch AppointmentPatch) (*Appointment, error) {
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
	if patch.ProfessionalID != nil {
		set("professional_id", *patch.ProfessionalID)
	}
	if patch.DateTime != nil {
		set("date_time", *patch.DateTime)
	}
	if patch.Type != nil {
		set("type", *patch.Type)
	}
	if patch.Status != nil {
		set("status", *patch.Status)
	}
	if patch.Notes != nil {
		set("notes", *patch.Notes)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, owner, id)
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, owner, id)
	query := fmt.Sprintf(`UPDATE appointments SET %s WHERE owner_id = $%d AND id = $%d RETURNING `+appointmentCols,
		strings.Join(sets, ", "), n, n+1)

	return r.scanAppointment(r.pool.QueryRow(ctx, query, args...))
}

func (r *appointmentRepoPG) Delete(ctx context.Context, owner, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE owner_id = $1 AND id = $2`, owner, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *appointmentRepoPG) List(ctx context.Context, owner uuid.UUID) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+appointmentCols+` FROM appointments WHERE owner_id = $1 ORDER BY date_time ASC`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appointments []*Appointment
	for rows.Next() {
		a, err := r.scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}

// =========== Teleconsultation Repository ===========

type teleconsultationRepoPG struct{ pool *pgxpool.Pool }

func NewTeleconsultationRepoPG(pool *pgxpool.Pool) TeleconsultationRepository {
	return &teleconsultationRepoPG{pool: pool}
}

const teleconsultationCols = `id, patient_id, professional_id, date_time, status, room_url, owner_id, created_at, updated_at`

func (r *teleconsultationRepoPG) scanTeleconsultation(row pgx.Row) (*Teleconsultation, error) {
	var tc Teleconsultation
	err := row.Scan(&tc.ID, &tc.PatientID, &tc.ProfessionalID, &tc.DateTime,
		&tc.Status, &tc.RoomURL, &tc.OwnerID, &tc.CreatedAt, &tc.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &tc, err
}

func (r *teleconsultationRepoPG) Create(ctx context.Context, tc *Teleconsultation) error {
	tc.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO teleconsultations (id, patient_id, professional_id, date_time, status, room_url, owner_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at, updated_at`,
		tc.ID, tc.PatientID, tc.ProfessionalID, tc.DateTime, tc.Status, tc.RoomURL, tc.OwnerID,
	).Scan(&tc.CreatedAt, &tc.UpdatedAt)
}

func (r *teleconsultationRepoPG) GetByID(ctx context.Context, owner, id uuid.UUID) (*Teleconsultation, error) {
	return r.scanTeleconsultation(r.pool.QueryRow(ctx,
		`SELECT `+teleconsultationCols+` FROM teleconsultations WHERE owner_id = $1 AND id = $2`, owner, id))
}

func (r *teleconsultationRepoPG) Update(ctx context.Context, owner, id uuid.UUID, patch TeleconsultationPatch) (*Teleconsultation, error) {
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
	if patch.ProfessionalID != nil {
		set("professional_id", *patch.ProfessionalID)
	}
	if patch.DateTime != nil {
		set("date_time", *patch.DateTime)
	}
	if patch.Status != nil {
		set("status", *patch.Status)
	}
	if patch.RoomURL != nil {
		set("room_url", *patch.RoomURL)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, owner, id)
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, owner, id)
	query := fmt.Sprintf(`UPDATE teleconsultations SET %s WHERE owner_id = $%d AND id = $%d RETURNING `+teleconsultationCols,
		strings.Join(sets, ", "), n, n+1)

	return r.scanTeleconsultation(r.pool.QueryRow(ctx, query, args...))
}

func (r *teleconsultationRepoPG) Delete(ctx context.Context, owner, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM teleconsultations WHERE owner_id = $1 AND id = $2`, owner, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *teleconsultationRepoPG) List(ctx context.Context, owner uuid.UUID) ([]*Teleconsultation, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+teleconsultationCols+` FROM teleconsultations WHERE owner_id = $1 ORDER BY date_time ASC`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teleconsultations []*Teleconsultation
	for rows.Next() {
		tc, err := r.scanTeleconsultation(rows)
		if err != nil {
			return nil, err
		}
		teleconsultations = append(teleconsultations, tc)
	}
	return teleconsultations, rows.Err()
}
