package ports

import "context"

// StateStore persists JSON documents under fixed keys
type StateStore interface {
	// Get returns the raw value for key, or domain.ErrStateNotFound
	Get(ctx context.Context, key string) ([]byte, error)
	// Put creates or replaces the value for key. The write is durable on return.
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
