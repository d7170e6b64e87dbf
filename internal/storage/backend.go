package storage

import "context"

// Backend is the durable key-value medium the collections persist to. Load
// returns (nil, nil) when the key is absent.
type Backend interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
