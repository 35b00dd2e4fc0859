// Package dashboard composes read views over the other domains. It never
// touches the database directly: it reads through the domain services so the
// composed views see exactly what the caches serve.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vidaplus/clinic/internal/domain/directory"
	"github.com/vidaplus/clinic/internal/domain/records"
	"github.com/vidaplus/clinic/internal/domain/scheduling"
)

// PlaceholderName is shown when a referenced patient or professional no
// longer exists. A dangling reference must not break the composed view.
const PlaceholderName = "Not found"

type DirectoryReader interface {
	ListPatients(ctx context.Context) ([]*directory.Patient, error)
	ListProfessionals(ctx context.Context) ([]*directory.Professional, error)
}

type SchedulingReader interface {
	ListAppointments(ctx context.Context) ([]*scheduling.Appointment, error)
	ListTeleconsultations(ctx context.Context) ([]*scheduling.Teleconsultation, error)
}

type RecordsReader interface {
	ListEntries(ctx context.Context) ([]*records.Entry, error)
}

// AppointmentView is an appointment enriched with display names.
type AppointmentView struct {
	*scheduling.Appointment
	PatientName      string `json:"patient_name"`
	ProfessionalName string `json:"professional_name"`
}

// TeleconsultationView is a teleconsultation enriched with display names.
type TeleconsultationView struct {
	*scheduling.Teleconsultation
	PatientName      string `json:"patient_name"`
	ProfessionalName string `json:"professional_name"`
}

// Overview is the composed dashboard payload.
type Overview struct {
	PatientCount          int                    `json:"patient_count"`
	ProfessionalCount     int                    `json:"professional_count"`
	AppointmentCount      int                    `json:"appointment_count"`
	TeleconsultationCount int                    `json:"teleconsultation_count"`
	Appointments          []AppointmentView      `json:"appointments"`
	Teleconsultations     []TeleconsultationView `json:"teleconsultations"`
}

// Summary is the aggregate payload for the reporting endpoint.
type Summary struct {
	Patients              int            `json:"patients"`
	Professionals         int            `json:"professionals"`
	Appointments          int            `json:"appointments"`
	Teleconsultations     int            `json:"teleconsultations"`
	RecordEntries         int            `json:"record_entries"`
	AppointmentsToday     int            `json:"appointments_today"`
	AppointmentsByStatus  map[string]int `json:"appointments_by_status"`
	EntriesByPriority     map[string]int `json:"entries_by_priority"`
	TeleconsultsByStatus  map[string]int `json:"teleconsultations_by_status"`
}

type Service struct {
	directory  DirectoryReader
	scheduling SchedulingReader
	records    RecordsReader

	now func() time.Time
}

func NewService(dir DirectoryReader, sched SchedulingReader, rec RecordsReader) *Service {
	return &Service{directory: dir, scheduling: sched, records: rec, now: time.Now}
}

// Overview builds the composed dashboard view. Names are resolved through
// maps keyed by id so the composition stays linear in the collection sizes.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	patients, err := s.directory.ListPatients(ctx)
	if err != nil {
		return nil, err
	}
	professionals, err := s.directory.ListProfessionals(ctx)
	if err != nil {
		return nil, err
	}
	appointments, err := s.scheduling.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}
	teleconsultations, err := s.scheduling.ListTeleconsultations(ctx)
	if err != nil {
		return nil, err
	}

	patientNames := make(map[uuid.UUID]string, len(patients))
	for _, p := range patients {
		patientNames[p.ID] = p.Name
	}
	professionalNames := make(map[uuid.UUID]string, len(professionals))
	for _, p := range professionals {
		professionalNames[p.ID] = p.Name
	}

	ov := &Overview{
		PatientCount:          len(patients),
		ProfessionalCount:     len(professionals),
		AppointmentCount:      len(appointments),
		TeleconsultationCount: len(teleconsultations),
		Appointments:          make([]AppointmentView, 0, len(appointments)),
		Teleconsultations:     make([]TeleconsultationView, 0, len(teleconsultations)),
	}

	for _, a := range appointments {
		ov.Appointments = append(ov.Appointments, AppointmentView{
			Appointment:      a,
			PatientName:      nameOr(patientNames, a.PatientID),
			ProfessionalName: nameOr(professionalNames, a.ProfessionalID),
		})
	}
	for _, tc := range teleconsultations {
		ov.Teleconsultations = append(ov.Teleconsultations, TeleconsultationView{
			Teleconsultation: tc,
			PatientName:      nameOr(patientNames, tc.PatientID),
			ProfessionalName: nameOr(professionalNames, tc.ProfessionalID),
		})
	}

	return ov, nil
}

// Summary builds the aggregate counts for reporting.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	patients, err := s.directory.ListPatients(ctx)
	if err != nil {
		return nil, err
	}
	professionals, err := s.directory.ListProfessionals(ctx)
	if err != nil {
		return nil, err
	}
	appointments, err := s.scheduling.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}
	teleconsultations, err := s.scheduling.ListTeleconsultations(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.records.ListEntries(ctx)
	if err != nil {
		return nil, err
	}

	sum := &Summary{
		Patients:             len(patients),
		Professionals:        len(professionals),
		Appointments:         len(appointments),
		Teleconsultations:    len(teleconsultations),
		RecordEntries:        len(entries),
		AppointmentsByStatus: make(map[string]int),
		EntriesByPriority:    make(map[string]int),
		TeleconsultsByStatus: make(map[string]int),
	}
	today := s.now()
	for _, a := range appointments {
		sum.AppointmentsByStatus[a.Status]++
		if sameDay(a.DateTime, today) {
			sum.AppointmentsToday++
		}
	}
	for _, e := range entries {
		sum.EntriesByPriority[e.Priority]++
	}
	for _, tc := range teleconsultations {
		sum.TeleconsultsByStatus[tc.Status]++
	}

	return sum, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

func nameOr(names map[uuid.UUID]string, id uuid.UUID) string {
	if name, ok := names[id]; ok {
		return name
	}
	return PlaceholderName
}
