package scheduling

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vidaplus/clinic/internal/platform/auth"
	"github.com/vidaplus/clinic/internal/platform/cache"
	"github.com/vidaplus/clinic/internal/platform/feedback"
)

// Cache keys for the scheduling collections. Reads are cached per owner
// under "<collection>:<owner>"; mutations invalidate the collection prefix.
const (
	AppointmentsCacheKey      = "appointments"
	TeleconsultationsCacheKey = "teleconsultations"
)

var validAppointmentTypes = map[string]bool{
	TypeConsultation: true, TypeFollowUp: true, TypeExam: true,
}

var validAppointmentStatuses = map[string]bool{
	StatusConfirmed: true, StatusWaiting: true, StatusCancelled: true,
}

var validTeleconsultationStatuses = map[string]bool{
	TeleStatusScheduled: true, TeleStatusInProgress: true, TeleStatusDone: true,
}

type Service struct {
	appointments      AppointmentRepository
	teleconsultations TeleconsultationRepository
	cache             *cache.Cache
	notices           *feedback.Channel
}

func NewService(appointments AppointmentRepository, teleconsultations TeleconsultationRepository, c *cache.Cache, notices *feedback.Channel) *Service {
	return &Service{appointments: appointments, teleconsultations: teleconsultations, cache: c, notices: notices}
}

// -- Appointments --

func (s *Service) ListAppointments(ctx context.Context) ([]*Appointment, error) {
	owner, err := auth.UserID(ctx)
	if err != nil {
		return nil, err
	}
	out := []*Appointment{}
	_, err = s.cache.GetOrLoad(ctx, cache.Key(AppointmentsCacheKey, owner.String()), &out, func(ctx context.Context) (interface{}, error) {
		return s.appointments.List(ctx, owner)
	})
	return out, err
}

func (s *Service) GetAppointment(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	owner, err := auth.UserID(ctx)
	if err != nil {
		return nil, err
	}
	return s.appointments.GetByID(ctx, owner, id)
}

func (s *Service) CreateAppointment(ctx context.Context, a *Appointment) error {
	owner, err := auth.UserID(ctx)
	if err != nil {
		s.notices.Error("Error scheduling appointment", err.Error())
		return err
	}
	if err := s.validateAppointment(a); err != nil {
		s.notices.Error("Error scheduling appointment", err.Error())
		return err
	}

	a.OwnerID = owner
	if err := s.appointments.Create(ctx, a); err != nil {
		s.notices.Error("Error scheduling appointment", err.Error())
		return err
	}

	s.cache.Invalidate(ctx, AppointmentsCacheKey)
	s.notices.Success("Appointment scheduled successfully", "")
	return nil
}

func (s *Service) validateAppointment(a *Appointment) error {
	if a.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if a.ProfessionalID == uuid.Nil {
		return fmt.Errorf("professional_id is required")
	}
	if a.DateTime.IsZero() {
		return fmt.Errorf("date_time is required")
	}
	if !validAppointmentTypes[a.Type] {
		return fmt.Errorf("invalid appointment type: %s", a.Type)
	}
	if a.Status == "" {
		a.Status = StatusWaiting
	}
	if !validAppointmentStatuses[a.Status] {
		return fmt.Errorf("invalid appointment status: %s", a.Status)
	}
	return nil
}

func (s *Service) UpdateAppointment(ctx context.Context, id uuid.UUID, patch AppointmentPatch) (*Appointment, error) {
	owner, err := auth.UserID(ctx)
	if err != nil {
		s.notices.Error("Error updating appointment", err.Error())
		return nil, err
	}
	if patch.Type != nil && !validAppointmentTypes[*patch.Type] {
		err := fmt.Errorf("invalid appointment type: %s", *patch.Type)
		s.notices.Error("Error updating appointment", err.Error())
		return nil, err
	}
	if patch.Status != nil && !validAppointmentStatuses[*patch.Status] {
		err := fmt.Errorf("invalid appointment status: %s", *patch.Status)
		s.notices.Error("Error updating appointment", err.Error())
		return nil, err
	}

	a, err := s.appointments.Update(ctx, owner, id, patch)
	if err != nil {
		s.notices.Error("Error updating appointment", err.Error())
		return nil, err
	}

	s.cache.Invalidate(ctx, AppointmentsCacheKey)
	s.notices.Success("Appointment updated successfully", "")
	return a, nil
}

// CancelAppointment marks an appointment Cancelled without removing the row,
// so the visit history stays intact.
func (s *Service) CancelAppointment(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	owner, err := auth.UserID(ctx)
	if err != nil {
		s.notices.Error("Error cancelling appointment", err.Error())
		return nil, err
	}

	status := StatusCancelled
	a, err := s.appointments.Update(ctx, owner, id, AppointmentPatch{Status: &status})
	if err != nil {
		s.notices.Error("Error cancelling appointment", err.Error())
		return nil, err
	}

	s.cache.Invalidate(ctx, AppointmentsCacheKey)
	s.notices.Success("Appointment cancelled", "")
	return a, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	owner, err := auth.UserID(ctx)
	if err != nil {
		s.notices.Error("Error removing appointment", err.Error())
		return err
	}

	if err := s.appointments.Delete(ctx, owner, id); err != nil {
		s.notices.Error("Error removing appointment", err.Error())
		return err
	}

	s.cache.Invalidate(ctx, AppointmentsCacheKey)
	s.notices.Success("Appointment removed successfully", "")
	return nil
}

// -- Teleconsultations --

func (s *Service) ListTeleconsultations(ctx context.Context) ([]*Teleconsultation, error) {
	owner, err := auth.UserID(ctx)
	if err != nil {
		return nil, err
	}
	out := []*Teleconsultation{}
	_, err = s.cache.GetOrLoad(ctx, cache.Key(TeleconsultationsCacheKey, owner.String()), &out, func(ctx context.Context) (interface{}, error) {
		return s.teleconsultations.List(ctx, owner)
	})
	return out, err
}

func (s *Service) GetTeleconsultation(ctx context.Context, id uuid.UUID) (*Teleconsultation, error) {
	owner, err := auth.UserID(ctx)
	if err != nil {
		return nil, err
	}
	return s.teleconsultations.GetByID(ctx, owner, id)
}

func (s *Service) CreateTeleconsultation(ctx context.Context, tc *Teleconsultation) error {
	owner, err := auth.UserID(ctx)
	if err != nil {
		s.notices.Error("Error scheduling teleconsultation", err.Error())
		return err
	}
	if tc.PatientID == uuid.Nil {
		err := fmt.Errorf("patient_id is required")
		s.notices.Error("Error scheduling teleconsultation", err.Error())
		return err
	}
	if tc.ProfessionalID == uuid.Nil {
		err := fmt.Errorf("professional_id is required")
		s.notices.Error("Error scheduling teleconsultation", err.Error())
		return err
	}
	if tc.DateTime.IsZero() {
		err := fmt.Errorf("date_time is required")
		s.notices.Error("Error scheduling teleconsultation", err.Error())
		return err
	}
	if tc.Status == "" {
		tc.Status = TeleStatusScheduled
	}
	if !validTeleconsultationStatuses[tc.Status] {
		err := fmt.Errorf("invalid teleconsultation status: %s", tc.Status)
		s.notices.Error("Error scheduling teleconsultation", err.Error())
		return err
	}

	tc.OwnerID = owner
	if err := s.teleconsultations.Create(ctx, tc); err != nil {
		s.notices.Error("Error scheduling teleconsultation", err.Error())
		return err
	}

	s.cache.Invalidate(ctx, TeleconsultationsCacheKey)
	s.notices.Success("Teleconsultation scheduled successfully", "")
	return nil
}

func (s *Service) UpdateTeleconsultation(ctx context.Context, id uuid.UUID, patch TeleconsultationPatch) (*Teleconsultation, error) {
	owner, err := auth.UserID(ctx)
	if err != nil {
		s.notices.Error("Error updating teleconsultation", err.Error())
		return nil, err
	}
	if patch.Status != nil && !validTeleconsultationStatuses[*patch.Status] {
		err := fmt.Errorf("invalid teleconsultation status: %s", *patch.Status)
		s.notices.Error("Error updating teleconsultation", err.Error())
		return nil, err
	}

	tc, err := s.teleconsultations.Update(ctx, owner, id, patch)
	if err != nil {
		s.notices.Error("Error updating teleconsultation", err.Error())
		return nil, err
	}

	s.cache.Invalidate(ctx, TeleconsultationsCacheKey)
	s.notices.Success("Teleconsultation updated successfully", "")
	return tc, nil
}

func (s *Service) DeleteTeleconsultation(ctx context.Context, id uuid.UUID) error {
	owner, err := auth.UserID(ctx)
	if err != nil {
		s.notices.Error("Error removing teleconsultation", err.Error())
		return err
	}

	if err := s.teleconsultations.Delete(ctx, owner, id); err != nil {
		s.notices.Error("Error removing teleconsultation", err.Error())
		return err
	}

	s.cache.Invalidate(ctx, TeleconsultationsCacheKey)
	s.notices.Success("Teleconsultation removed successfully", "")
	return nil
}
