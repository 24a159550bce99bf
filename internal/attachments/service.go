package attachments

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/edalcin/medlog/internal/shared/storage/object"
	"github.com/edalcin/medlog/internal/shared/telemetry"
	"github.com/edalcin/medlog/internal/shared/util"
)

// Service contains business logic for consultation file attachments.
// Bytes live in the object store under a generated storage key; the
// metadata row references that key.
type Service struct {
	Repo              Repo
	Store             object.ObjectStore
	AllowedExtensions map[string]struct{}
}

// SaveBatch stores the accepted files of one upload batch for a
// consultation, bytes first, then the record. Files with an empty name or
// a disallowed extension are skipped without error. Returns how many files
// were stored.
func (s *Service) SaveBatch(ctx context.Context, consultationID int64, files []*multipart.FileHeader) (int, error) {
	saved := 0
	for _, fh := range files {
		if fh == nil || fh.Filename == "" || !s.allowed(fh.Filename) {
			if fh != nil && fh.Filename != "" {
				telemetry.Info("attachment.skipped", map[string]any{
					"consultation_id": consultationID,
					"filename":        fh.Filename,
				})
			}
			continue
		}
		if err := s.saveOne(ctx, consultationID, fh); err != nil {
			// Already-stored files of this batch stay committed.
			return saved, err
		}
		saved++
	}
	return saved, nil
}

func (s *Service) saveOne(ctx context.Context, consultationID int64, fh *multipart.FileHeader) error {
	sanitized, err := util.SanitizeFileName(fh.Filename)
	if err != nil {
		return fmt.Errorf("sanitize file name: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	storageKey := fmt.Sprintf("%d_%s_%s", consultationID, uuid.NewString(), sanitized)
	if _, err := s.Store.Save(ctx, storageKey, src); err != nil {
		return fmt.Errorf("store upload: %w", err)
	}

	_, err = s.Repo.Create(ctx, File{
		ConsultationID:   consultationID,
		Filename:         storageKey,
		OriginalFilename: sanitized,
		FileType:         fh.Header.Get("Content-Type"),
	})
	if err != nil {
		return fmt.Errorf("record upload: %w", err)
	}
	return nil
}

// Delete removes one file's bytes and its record, returning the deleted
// record. Missing bytes on disk are tolerated.
func (s *Service) Delete(ctx context.Context, id int64) (File, error) {
	f, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return File{}, err
	}
	if err := s.Store.Delete(ctx, f.Filename); err != nil {
		return File{}, err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return File{}, err
	}
	return f, nil
}

// DeleteByConsultation removes the bytes and records of every file owned
// by a consultation.
func (s *Service) DeleteByConsultation(ctx context.Context, consultationID int64) error {
	files, err := s.Repo.ListByConsultation(ctx, consultationID)
	if err != nil {
		return err
	}
	for _, f := range files {
		if err := s.Store.Delete(ctx, f.Filename); err != nil {
			return err
		}
	}
	return s.Repo.DeleteByConsultation(ctx, consultationID)
}

// UpdateDescription replaces a file's description, returning the record.
func (s *Service) UpdateDescription(ctx context.Context, id int64, description string) (File, error) {
	f, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return File{}, err
	}
	if err := s.Repo.UpdateDescription(ctx, id, strings.TrimSpace(description)); err != nil {
		return File{}, err
	}
	f.Description = strings.TrimSpace(description)
	return f, nil
}

// ListByConsultation returns a consultation's files in insertion order.
func (s *Service) ListByConsultation(ctx context.Context, consultationID int64) ([]File, error) {
	return s.Repo.ListByConsultation(ctx, consultationID)
}

// CountByConsultation returns the number of files owned by a consultation.
func (s *Service) CountByConsultation(ctx context.Context, consultationID int64) (int, error) {
	return s.Repo.CountByConsultation(ctx, consultationID)
}

func (s *Service) allowed(name string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		return false
	}
	_, ok := s.AllowedExtensions[ext]
	return ok
}
