package directory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vidaplus/clinic/internal/platform/auth"
	"github.com/vidaplus/clinic/internal/platform/cache"
	"github.com/vidaplus/clinic/internal/platform/feedback"
)

// Cache keys for the directory collections. Reads are cached per owner under
// "<collection>:<owner>"; mutations invalidate the collection prefix so every
// owner variant reloads from the database.
const (
	PatientsCacheKey      = "patients"
	ProfessionalsCacheKey = "professionals"
)

type Service struct {
	patients      PatientRepository
	professionals ProfessionalRepository
	cache         *cache.Cache
	notices       *feedback.Channel
}

func NewService(patients PatientRepository, professionals ProfessionalRepository, c *cache.Cache, notices *feedback.Channel) *Service {
	return &Service{patients: patients, professionals: professionals, cache: c, notices: notices}
}

// -- Patients --

func (s *Service) ListPatients(ctx context.Context) ([]*Patient, error) {
	owner, err := auth.UserID(ctx)
	if err != nil {
		return nil, err
	}
	out := []*Patient{}
	_, err = s.cache.GetOrLoad(ctx, cache.Key(PatientsCacheKey, owner.String()), &out, func(ctx context.Context) (interface{}, error) {
		return s.patients.List(ctx, owner)
	})
	return out, err
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	owner, err := auth.UserID(ctx)
	if err != nil {
		return nil, err
	}
	return s.patients.GetByID(ctx, owner, id)
}

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	owner, err := auth.UserID(ctx)
	if err != nil {
		s.notices.Error("Error creating patient", err.Error())
		return err
	}
	if p.Name == "" {
		err := fmt.Errorf("name is required")
		s.notices.Error("Error creating patient", err.Error())
		return err
	}
	if p.CPF == "" {
		err := fmt.Errorf("cpf is required")
		s.notices.Error("Error creating patient", err.Error())
		return err
	}

	p.OwnerID = owner
	if err := s.patients.Create(ctx, p); err != nil {
		s.notices.Error("Error creating patient", err.Error())
		return err
	}

	s.cache.Invalidate(ctx, PatientsCacheKey)
	s.notices.Success("Patient registered successfully", "")
	return nil
}

func (s *Service) UpdatePatient(ctx context.Context, id uuid.UUID, patch PatientPatch) (*Patient, error) {
	owner, err := auth.UserID(ctx)
	if err != nil {
		s.notices.Error("Error updating patient", err.Error())
		return nil, err
	}

	p, err := s.patients.Update(ctx, owner, id, patch)
	if err != nil {
		s.notices.Error("Error updating patient", err.Error())
		return nil, err
	}

	s.cache.Invalidate(ctx, PatientsCacheKey)
	s.notices.Success("Patient updated successfully", "")
	return p, nil
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	owner, err := auth.UserID(ctx)
	if err != nil {
		s.notices.Error("Error removing patient", err.Error())
		return err
	}

	if err := s.patients.Delete(ctx, owner, id); err != nil {
		s.notices.Error("Error removing patient", err.Error())
		return err
	}

	s.cache.Invalidate(ctx, PatientsCacheKey)
	s.notices.Success("Patient removed successfully", "")
	return nil
}

// -- Professionals --

func (s *Service) ListProfessionals(ctx context.Context) ([]*Professional, error) {
	owner, err := auth.UserID(ctx)
	if err != nil {
		return nil, err
	}
	out := []*Professional{}
	_, err = s.cache.GetOrLoad(ctx, cache.Key(ProfessionalsCacheKey, owner.String()), &out, func(ctx context.Context) (interface{}, error) {
		return s.professionals.List(ctx, owner)
	})
	return out, err
}

func (s *Service) GetProfessional(ctx context.Context, id uuid.UUID) (*Professional, error) {
	owner, err := auth.UserID(ctx)
	if err != nil {
		return nil, err
	}
	return s.professionals.GetByID(ctx, owner, id)
}

func (s *Service) CreateProfessional(ctx context.Context, p *Professional) error {
	owner, err := auth.UserID(ctx)
	if err != nil {
		s.notices.Error("Error creating professional", err.Error())
		return err
	}
	if p.Name == "" {
		err := fmt.Errorf("name is required")
		s.notices.Error("Error creating professional", err.Error())
		return err
	}
	if p.Specialty == "" {
		err := fmt.Errorf("specialty is required")
		s.notices.Error("Error creating professional", err.Error())
		return err
	}
	if p.CRM == "" {
		err := fmt.Errorf("crm is required")
		s.notices.Error("Error creating professional", err.Error())
		return err
	}

	p.OwnerID = owner
	if err := s.professionals.Create(ctx, p); err != nil {
		s.notices.Error("Error creating professional", err.Error())
		return err
	}

	s.cache.Invalidate(ctx, ProfessionalsCacheKey)
	s.notices.Success("Professional registered successfully", "")
	return nil
}

func (s *Service) UpdateProfessional(ctx context.Context, id uuid.UUID, patch ProfessionalPatch) (*Professional, error) {
	owner, err := auth.UserID(ctx)
	if err != nil {
		s.notices.Error("Error updating professional", err.Error())
		return nil, err
	}

	p, err := s.professionals.Update(ctx, owner, id, patch)
	if err != nil {
		s.notices.Error("Error updating professional", err.Error())
		return nil, err
	}

	s.cache.Invalidate(ctx, ProfessionalsCacheKey)
	s.notices.Success("Professional updated successfully", "")
	return p, nil
}

func (s *Service) DeleteProfessional(ctx context.Context, id uuid.UUID) error {
	owner, err := auth.UserID(ctx)
	if err != nil {
		s.notices.Error("Error removing professional", err.Error())
		return err
	}

	if err := s.professionals.Delete(ctx, owner, id); err != nil {
		s.notices.Error("Error removing professional", err.Error())
		return err
	}

	s.cache.Invalidate(ctx, ProfessionalsCacheKey)
	s.notices.Success("Professional removed successfully", "")
	return nil
}
