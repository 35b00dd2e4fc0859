package records

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vidaplus/clinic/internal/platform/auth"
	"github.com/vidaplus/clinic/internal/platform/cache"
	"github.com/vidaplus/clinic/internal/platform/feedback"
)

// RecordsCacheKey is the cache key for the record entry collection.
// Per-owner and per-patient listings are scoped variants under the same
// prefix, so one invalidation drops them all.
const RecordsCacheKey = "records"

var validPriorities = map[string]bool{
	PriorityLow: true, PriorityNormal: true, PriorityHigh: true,
}

type Service struct {
	entries EntryRepository
	cache   *cache.Cache
	notices *feedback.Channel
}

func NewService(entries EntryRepository, c *cache.Cache, notices *feedback.Channel) *Service {
	return &Service{entries: entries, cache: c, notices: notices}
}

func (s *Service) ListEntries(ctx context.Context) ([]*Entry, error) {
	owner, err := auth.UserID(ctx)
	if err != nil {
		return nil, err
	}
	out := []*Entry{}
	_, err = s.cache.GetOrLoad(ctx, cache.Key(RecordsCacheKey, owner.String()), &out, func(ctx context.Context) (interface{}, error) {
		return s.entries.List(ctx, owner)
	})
	return out, err
}

func (s *Service) ListEntriesByPatient(ctx context.Context, patientID uuid.UUID) ([]*Entry, error) {
	owner, err := auth.UserID(ctx)
	if err != nil {
		return nil, err
	}
	out := []*Entry{}
	key := cache.Key(RecordsCacheKey, owner.String(), patientID.String())
	_, err = s.cache.GetOrLoad(ctx, key, &out, func(ctx context.Context) (interface{}, error) {
		return s.entries.ListByPatient(ctx, owner, patientID)
	})
	return out, err
}

func (s *Service) GetEntry(ctx context.Context, id uuid.UUID) (*Entry, error) {
	owner, err := auth.UserID(ctx)
	if err != nil {
		return nil, err
	}
	return s.entries.GetByID(ctx, owner, id)
}

func (s *Service) CreateEntry(ctx context.Context, e *Entry) error {
	owner, err := auth.UserID(ctx)
	if err != nil {
		s.notices.Error("Error creating record entry", err.Error())
		return err
	}
	if e.PatientID == uuid.Nil {
		err := fmt.Errorf("patient_id is required")
		s.notices.Error("Error creating record entry", err.Error())
		return err
	}
	if e.Type == "" {
		err := fmt.Errorf("type is required")
		s.notices.Error("Error creating record entry", err.Error())
		return err
	}
	if e.Description == "" {
		err := fmt.Errorf("description is required")
		s.notices.Error("Error creating record entry", err.Error())
		return err
	}
	if e.Priority == "" {
		e.Priority = PriorityNormal
	}
	if !validPriorities[e.Priority] {
		err := fmt.Errorf("invalid priority: %s", e.Priority)
		s.notices.Error("Error creating record entry", err.Error())
		return err
	}
	if e.EntryDate.IsZero() {
		e.EntryDate = time.Now()
	}

	e.OwnerID = owner
	if err := s.entries.Create(ctx, e); err != nil {
		s.notices.Error("Error creating record entry", err.Error())
		return err
	}

	s.cache.Invalidate(ctx, RecordsCacheKey)
	s.notices.Success("Record entry created successfully", "")
	return nil
}

func (s *Service) UpdateEntry(ctx context.Context, id uuid.UUID, patch EntryPatch) (*Entry, error) {
	owner, err := auth.UserID(ctx)
	if err != nil {
		s.notices.Error("Error updating record entry", err.Error())
		return nil, err
	}
	if patch.Priority != nil && !validPriorities[*patch.Priority] {
		err := fmt.Errorf("invalid priority: %s", *patch.Priority)
		s.notices.Error("Error updating record entry", err.Error())
		return nil, err
	}

	e, err := s.entries.Update(ctx, owner, id, patch)
	if err != nil {
		s.notices.Error("Error updating record entry", err.Error())
		return nil, err
	}

	s.cache.Invalidate(ctx, RecordsCacheKey)
	s.notices.Success("Record entry updated successfully", "")
	return e, nil
}

func (s *Service) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	owner, err := auth.UserID(ctx)
	if err != nil {
		s.notices.Error("Error removing record entry", err.Error())
		return err
	}

	if err := s.entries.Delete(ctx, owner, id); err != nil {
		s.notices.Error("Error removing record entry", err.Error())
		return err
	}

	s.cache.Invalidate(ctx, RecordsCacheKey)
	s.notices.Success("Record entry removed successfully", "")
	return nil
}
