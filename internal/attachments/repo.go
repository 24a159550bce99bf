package attachments

import "context"

// Repo defines persistence operations for consultation files.
type Repo interface {
	Create(ctx context.Context, f File) (int64, error)
	GetByID(ctx context.Context, id int64) (File, error)
	// ListByConsultation returns files in insertion order.
	ListByConsultation(ctx context.Context, consultationID int64) ([]File, error)
	UpdateDescription(ctx context.Context, id int64, description string) error
	Delete(ctx context.Context, id int64) error
	DeleteByConsultation(ctx context.Context, consultationID int64) error
	CountByConsultation(ctx context.Context, consultationID int64) (int, error)
	Count(ctx context.Context) (int, error)
}
