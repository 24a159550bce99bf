package consultations

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
	data   map[int64]Consultation
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[int64]Consultation)}
}

// List returns all consultations, most recent date first.
func (r *MemoryRepo) List(ctx context.Context) ([]Consultation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Consultation, 0, len(r.data))
	for _, c := range r.data {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// GetByID fetches a consultation by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Consultation, error) {
	if err := ctx.Err(); err != nil {
		return Consultation{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.data[id]
	if !ok {
		return Consultation{}, ErrNotFound
	}
	return c, nil
}

// Create stores a new consultation and returns its id.
func (r *MemoryRepo) Create(ctx context.Context, c Consultation) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	c.ID = r.nextID
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	r.data[c.ID] = c
	return c.ID, nil
}

// Update applies the full field set to an existing consultation.
func (r *MemoryRepo) Update(ctx context.Context, c Consultation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.data[c.ID]
	if !ok {
		return ErrNotFound
	}
	c.CreatedAt = existing.CreatedAt
	r.data[c.ID] = c
	return nil
}

// Delete removes a consultation by id.
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

// CountByProfessional returns the number of consultations referencing a
// professional.
func (r *MemoryRepo) CountByProfessional(ctx context.Context, professionalID int64) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, c := range r.data {
		if c.ProfessionalID == professionalID {
			n++
		}
	}
	return n, nil
}

// Count returns the total number of consultations.
func (r *MemoryRepo) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data), nil
}

var _ Repo = (*MemoryRepo)(nil)
