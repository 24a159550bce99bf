package professionals

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo used when no database
// is configured.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	data   map[int64]Professional
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[int64]Professional)}
}

// List returns all professionals ordered by name.
func (r *MemoryRepo) List(ctx context.Context) ([]Professional, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Professional, 0, len(r.data))
	for _, p := range r.data {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// GetByID fetches a professional by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Professional, error) {
	if err := ctx.Err(); err != nil {
		return Professional{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.data[id]
	if !ok {
		return Professional{}, ErrNotFound
	}
	return p, nil
}

// Create stores a new professional and returns its id.
func (r *MemoryRepo) Create(ctx context.Context, p Professional) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p.ID = r.nextID
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	r.data[p.ID] = p
	return p.ID, nil
}

// Update applies the full field set to an existing professional.
func (r *MemoryRepo) Update(ctx context.Context, p Professional) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.data[p.ID]
	if !ok {
		return ErrNotFound
	}
	p.CreatedAt = existing.CreatedAt
	r.data[p.ID] = p
	return nil
}

// Delete removes a professional by id.
func (r *MemoryRepo) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[id]; !ok {
		return ErrNotFound
	}
	delete(r.data, id)
	return nil
}

// Count returns the number of professionals.
func (r *MemoryRepo) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data), nil
}

var _ Repo = (*MemoryRepo)(nil)
