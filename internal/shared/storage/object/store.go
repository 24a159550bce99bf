package object

import (
	"context"
	"io"
)

// ObjectStore defines the contract for saving and retrieving binary objects
// addressed by a storage key.
type ObjectStore interface {
	// Save writes the reader's bytes under the given key, creating parent
	// directories as needed, and returns the number of bytes written.
	Save(ctx context.Context, storageKey string, r io.Reader) (int64, error)
	// Open opens a stored object for reading and reports its size.
	Open(ctx context.Context, storageKey string) (io.ReadCloser, int64, error)
	// Delete removes a stored object. Deleting a key with no backing bytes
	// is not an error.
	Delete(ctx context.Context, storageKey string) error
}
