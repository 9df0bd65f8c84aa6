// Package snapshot persists serialized state snapshots so a server can
// restore signal and resource state across restarts.
//
// The Store interface abstracts the backend: MemoryStore for
// single-process deployments and tests, S3Store for durable storage.
// Snapshots do not expire; Delete is the only way one goes away.
package snapshot

import (
	"context"
	"errors"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("snapshot: store closed")

// Store defines the interface for snapshot persistence backends.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save persists a snapshot under key, overwriting any existing one.
	Save(ctx context.Context, key string, data []byte) error

	// Load retrieves a snapshot by key.
	// Returns (nil, nil) if no snapshot exists for the key.
	Load(ctx context.Context, key string) ([]byte, error)

	// Delete removes a snapshot. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
