package attachments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockRepo(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return &PGRepo{DB: db}, mock
}

func TestPGRepoCreateReturnsID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO consultation_files").
		WithArgs(int64(3), "3_key_a.pdf", "a.pdf", "application/pdf", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	id, err := repo.Create(context.Background(), File{
		ConsultationID:   3,
		Filename:         "3_key_a.pdf",
		OriginalFilename: "a.pdf",
		FileType:         "application/pdf",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != 11 {
		t.Fatalf("expected id 11, got %d", id)
	}
}

func TestPGRepoListByConsultation(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM consultation_files").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "consultation_id", "filename", "original_filename", "file_type", "description", "uploaded_at"}).
			AddRow(int64(1), int64(3), "3_k1_a.pdf", "a.pdf", "application/pdf", "", now).
			AddRow(int64(2), int64(3), "3_k2_b.png", "b.png", "image/png", "scan", now))

	files, err := repo.ListByConsultation(context.Background(), 3)
	if err != nil {
		t.Fatalf("ListByConsultation: %v", err)
	}
	if len(files) != 2 || files[1].Description != "scan" {
		t.Fatalf("unexpected result: %+v", files)
	}
}

func TestPGRepoUpdateDescriptionNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE consultation_files SET description").
		WithArgs("note", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.UpdateDescription(context.Background(), 42, "note"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoDeleteByConsultation(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM consultation_files WHERE consultation_id").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	if err := repo.DeleteByConsultation(context.Background(), 3); err != nil {
		t.Fatalf("DeleteByConsultation: %v", err)
	}
}
