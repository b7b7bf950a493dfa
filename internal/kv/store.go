// Package kv provides the persistence gateway: a small named-value store
// consumed by the habit registry, progression engine, and backup serializer.
package kv

import "context"

// Store is an opaque named-value store. Each call is independently durable;
// there is no batching or transaction spanning multiple keys.
type Store interface {
	// Init creates the backing file/database with empty contents. It fails
	// if storage already exists at the configured path.
	Init(ctx context.Context) error
	// Load opens existing storage. It fails if Init has never run.
	Load(ctx context.Context) error

	// Get returns the value for key. The second result reports presence.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error

	Close() error

	// Path returns the path of the backing file/database.
	Path() string
}
