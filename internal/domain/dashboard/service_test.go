package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/vidaplus/clinic/internal/domain/directory"
	"github.com/vidaplus/clinic/internal/domain/records"
	"github.com/vidaplus/clinic/internal/domain/scheduling"
)

type stubDirectory struct {
	patients      []*directory.Patient
	professionals []*directory.Professional
}

func (s *stubDirectory) ListPatients(ctx context.Context) ([]*directory.Patient, error) {
	return s.patients, nil
}

func (s *stubDirectory) ListProfessionals(ctx context.Context) ([]*directory.Professional, error) {
	return s.professionals, nil
}

type stubScheduling struct {
	appointments      []*scheduling.Appointment
	teleconsultations []*scheduling.Teleconsultation
}

func (s *stubScheduling) ListAppointments(ctx context.Context) ([]*scheduling.Appointment, error) {
	return s.appointments, nil
}

func (s *stubScheduling) ListTeleconsultations(ctx context.Context) ([]*scheduling.Teleconsultation, error) {
	return s.teleconsultations, nil
}

type stubRecords struct {
	entries []*records.Entry
}

func (s *stubRecords) ListEntries(ctx context.Context) ([]*records.Entry, error) {
	return s.entries, nil
}

func TestOverview_ResolvesNames(t *testing.T) {
	patient := &directory.Patient{ID: uuid.New(), Name: "Ana Lima"}
	professional := &directory.Professional{ID: uuid.New(), Name: "Dr. Souza"}

	svc := NewService(
		&stubDirectory{
			patients:      []*directory.Patient{patient},
			professionals: []*directory.Professional{professional},
		},
		&stubScheduling{
			appointments: []*scheduling.Appointment{{
				ID:             uuid.New(),
				PatientID:      patient.ID,
				ProfessionalID: professional.ID,
				DateTime:       time.Now().Add(time.Hour),
				Type:           scheduling.TypeConsultation,
				Status:         scheduling.StatusWaiting,
			}},
		},
		&stubRecords{},
	)

	ov, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}
	if ov.PatientCount != 1 || ov.ProfessionalCount != 1 {
		t.Errorf("counts = %d/%d, want 1/1", ov.PatientCount, ov.ProfessionalCount)
	}
	if len(ov.Appointments) != 1 {
		t.Fatalf("len(Appointments) = %d, want 1", len(ov.Appointments))
	}
	if got := ov.Appointments[0].PatientName; got != "Ana Lima" {
		t.Errorf("PatientName = %q, want %q", got, "Ana Lima")
	}
	if got := ov.Appointments[0].ProfessionalName; got != "Dr. Souza" {
		t.Errorf("ProfessionalName = %q, want %q", got, "Dr. Souza")
	}
}

func TestOverview_DanglingReferenceGetsPlaceholder(t *testing.T) {
	svc := NewService(
		&stubDirectory{},
		&stubScheduling{
			appointments: []*scheduling.Appointment{{
				ID:             uuid.New(),
				PatientID:      uuid.New(),
				ProfessionalID: uuid.New(),
				DateTime:       time.Now(),
				Type:           scheduling.TypeExam,
				Status:         scheduling.StatusConfirmed,
			}},
			teleconsultations: []*scheduling.Teleconsultation{{
				ID:             uuid.New(),
				PatientID:      uuid.New(),
				ProfessionalID: uuid.New(),
				DateTime:       time.Now(),
				Status:         scheduling.TeleStatusScheduled,
			}},
		},
		&stubRecords{},
	)

	ov, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}
	if got := ov.Appointments[0].PatientName; got != PlaceholderName {
		t.Errorf("dangling patient name = %q, want %q", got, PlaceholderName)
	}
	if got := ov.Teleconsultations[0].ProfessionalName; got != PlaceholderName {
		t.Errorf("dangling professional name = %q, want %q", got, PlaceholderName)
	}
}

func TestSummary_CountsByStatusAndPriority(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	svc := NewService(
		&stubDirectory{
			patients: []*directory.Patient{{ID: uuid.New()}, {ID: uuid.New()}},
		},
		&stubScheduling{
			appointments: []*scheduling.Appointment{
				{ID: uuid.New(), Status: scheduling.StatusWaiting, DateTime: base.Add(3 * time.Hour)},
				{ID: uuid.New(), Status: scheduling.StatusWaiting, DateTime: base.Add(48 * time.Hour)},
				{ID: uuid.New(), Status: scheduling.StatusCancelled, DateTime: base.Add(5 * time.Hour)},
			},
			teleconsultations: []*scheduling.Teleconsultation{
				{ID: uuid.New(), Status: scheduling.TeleStatusDone},
			},
		},
		&stubRecords{
			entries: []*records.Entry{
				{ID: uuid.New(), Priority: records.PriorityHigh},
				{ID: uuid.New(), Priority: records.PriorityNormal},
			},
		},
	)
	svc.now = func() time.Time { return base }

	sum, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if sum.Patients != 2 {
		t.Errorf("Patients = %d, want 2", sum.Patients)
	}
	if sum.AppointmentsToday != 2 {
		t.Errorf("AppointmentsToday = %d, want 2", sum.AppointmentsToday)
	}
	if sum.AppointmentsByStatus[scheduling.StatusWaiting] != 2 {
		t.Errorf("waiting appointments = %d, want 2", sum.AppointmentsByStatus[scheduling.StatusWaiting])
	}
	if sum.AppointmentsByStatus[scheduling.StatusCancelled] != 1 {
		t.Errorf("cancelled appointments = %d, want 1", sum.AppointmentsByStatus[scheduling.StatusCancelled])
	}
	if sum.EntriesByPriority[records.PriorityHigh] != 1 {
		t.Errorf("high priority entries = %d, want 1", sum.EntriesByPriority[records.PriorityHigh])
	}
	if sum.TeleconsultsByStatus[scheduling.TeleStatusDone] != 1 {
		t.Errorf("done teleconsultations = %d, want 1", sum.TeleconsultsByStatus[scheduling.TeleStatusDone])
	}
}

func TestDashboardHandler_Overview(t *testing.T) {
	svc := NewService(&stubDirectory{}, &stubScheduling{}, &stubRecords{})
	h := NewHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.overview(c); err != nil {
		t.Fatalf("overview() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var ov Overview
	if err := json.Unmarshal(rec.Body.Bytes(), &ov); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if ov.Appointments == nil || ov.Teleconsultations == nil {
		t.Error("expected empty slices, not null")
	}
}
