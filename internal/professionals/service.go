package professionals

import (
	"context"
	"strings"
)

// ConsultationCounter reports how many consultations reference a
// professional. Satisfied by the consultations repository.
type ConsultationCounter interface {
	CountByProfessional(ctx context.Context, professionalID int64) (int, error)
}

// Service contains business logic for professionals.
type Service struct {
	Repo          Repo
	Consultations ConsultationCounter
}

// List returns all professionals ordered by name.
func (s *Service) List(ctx context.Context) ([]Professional, error) {
	return s.Repo.List(ctx)
}

// Get fetches one professional by id.
func (s *Service) Get(ctx context.Context, id int64) (Professional, error) {
	return s.Repo.GetByID(ctx, id)
}

// Create validates and persists a new professional.
func (s *Service) Create(ctx context.Context, p Professional) (int64, error) {
	if err := validate(p); err != nil {
		return 0, err
	}
	return s.Repo.Create(ctx, p)
}

// Update validates and applies the full field set to an existing record.
func (s *Service) Update(ctx context.Context, p Professional) error {
	if err := validate(p); err != nil {
		return err
	}
	return s.Repo.Update(ctx, p)
}

// Delete removes a professional. Deletion is blocked while consultations
// still reference the record.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return err
	}
	n, err := s.Consultations.CountByProfessional(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrHasConsultations
	}
	return s.Repo.Delete(ctx, id)
}

func validate(p Professional) error {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Specialty) == "" {
		return ErrInvalidInput
	}
	return nil
}
