package attachments

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
	data   map[int64]File
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[int64]File)}
}

// Create stores a new file record and returns its id.
func (r *MemoryRepo) Create(ctx context.Context, f File) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	f.ID = r.nextID
	if f.UploadedAt.IsZero() {
		f.UploadedAt = time.Now().UTC()
	}
	r.data[f.ID] = f
	return f.ID, nil
}

// GetByID fetches a file record by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (File, error) {
	if err := ctx.Err(); err != nil {
		return File{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.data[id]
	if !ok {
		return File{}, ErrNotFound
	}
	return f, nil
}

// ListByConsultation returns a consultation's files in insertion order.
func (r *MemoryRepo) ListByConsultation(ctx context.Context, consultationID int64) ([]File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []File
	for _, f := range r.data {
		if f.ConsultationID == consultationID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// UpdateDescription replaces a file's description.
func (r *MemoryRepo) UpdateDescription(ctx context.Context, id int64, description string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.data[id]
	if !ok {
		return ErrNotFound
	}
	f.Description = description
	r.data[id] = f
	return nil
}

// Delete removes a file record by id.
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

// DeleteByConsultation removes all file records owned by a consultation.
func (r *MemoryRepo) DeleteByConsultation(ctx context.Context, consultationID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, f := range r.data {
		if f.ConsultationID == consultationID {
			delete(r.data, id)
		}
	}
	return nil
}

// CountByConsultation returns the number of files owned by a consultation.
func (r *MemoryRepo) CountByConsultation(ctx context.Context, consultationID int64) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, f := range r.data {
		if f.ConsultationID == consultationID {
			n++
		}
	}
	return n, nil
}

// Count returns the total number of file records.
func (r *MemoryRepo) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data), nil
}

var _ Repo = (*MemoryRepo)(nil)
