package consultations

import "context"

// Repo defines persistence operations for consultations.
type Repo interface {
	// List returns all consultations, most recent date first.
	List(ctx context.Context) ([]Consultation, error)
	GetByID(ctx context.Context, id int64) (Consultation, error)
	Create(ctx context.Context, c Consultation) (int64, error)
	Update(ctx context.Context, c Consultation) error
	Delete(ctx context.Context, id int64) error
	CountByProfessional(ctx context.Context, professionalID int64) (int, error)
	Count(ctx context.Context) (int, error)
}
