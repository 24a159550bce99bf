package professionals

import "context"

// Repo defines persistence operations for professionals.
type Repo interface {
	List(ctx context.Context) ([]Professional, error)
	GetByID(ctx context.Context, id int64) (Professional, error)
	Create(ctx context.Context, p Professional) (int64, error)
	Update(ctx context.Context, p Professional) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
