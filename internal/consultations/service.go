package consultations

import (
	"context"
	"errors"
	"strings"

	"github.com/edalcin/medlog/internal/attachments"
	"github.com/edalcin/medlog/internal/professionals"
)

// Service contains business logic for consultations. It composes the
// professionals repository for referential checks and name lookup, and
// the attachments service for owned-file lifecycle.
type Service struct {
	Repo          Repo
	Professionals professionals.Repo
	Files         *attachments.Service
}

// List returns all consultations for the main view, most recent date
// first, with professional names and file counts attached.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	cons, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	profs, err := s.Professionals.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(profs))
	for _, p := range profs {
		names[p.ID] = p.Name
	}

	out := make([]Summary, 0, len(cons))
	for _, c := range cons {
		count, err := s.Files.CountByConsultation(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, Summary{
			Consultation:     c,
			ProfessionalName: names[c.ProfessionalID],
			FileCount:        count,
		})
	}
	return out, nil
}

// Get fetches a consultation with its professional's name and owned files.
func (s *Service) Get(ctx context.Context, id int64) (Detail, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	detail := Detail{Consultation: c}

	prof, err := s.Professionals.GetByID(ctx, c.ProfessionalID)
	if err == nil {
		detail.ProfessionalName = prof.Name
	} else if !errors.Is(err, professionals.ErrNotFound) {
		return Detail{}, err
	}

	files, err := s.Files.ListByConsultation(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	detail.Files = files
	return detail, nil
}

// Create validates and persists a new consultation, returning its id.
func (s *Service) Create(ctx context.Context, c Consultation) (int64, error) {
	if err := s.validate(ctx, c); err != nil {
		return 0, err
	}
	return s.Repo.Create(ctx, c)
}

// Update validates and applies the full field set to an existing record.
func (s *Service) Update(ctx context.Context, c Consultation) error {
	if _, err := s.Repo.GetByID(ctx, c.ID); err != nil {
		return err
	}
	if err := s.validate(ctx, c); err != nil {
		return err
	}
	return s.Repo.Update(ctx, c)
}

// Delete removes a consultation together with its files: bytes on disk
// first, then the records.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.Files.DeleteByConsultation(ctx, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}

func (s *Service) validate(ctx context.Context, c Consultation) error {
	if c.Date.IsZero() || strings.TrimSpace(c.Specialty) == "" {
		return ErrInvalidInput
	}
	if c.ProfessionalID <= 0 {
		return ErrProfessionalNotFound
	}
	if _, err := s.Professionals.GetByID(ctx, c.ProfessionalID); err != nil {
		if errors.Is(err, professionals.ErrNotFound) {
			return ErrProfessionalNotFound
		}
		return err
	}
	return nil
}
