package blob

import (
	"context"
	"time"
)

// Store is the blob storage boundary used by the catalog. Keys are opaque
// strings chosen by the caller.
type Store interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	Delete(ctx context.Context, key string) error
	// SignedURL mints a time-limited read URL for the object under key.
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}
