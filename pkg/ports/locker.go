package ports

import (
	"context"
	"time"
)

// UnlockFunc releases a held distributed lock.
type UnlockFunc func(ctx context.Context) error

// DistributedLocker serializes session access across processes. Two editor
// instances previewing the same session must not interleave their directive
// applies, so the session Manager takes a lock keyed by session ID before
// touching the store.
type DistributedLocker interface {
	// Lock blocks until the lock for key is acquired or ctx is canceled.
	// The TTL bounds how long a crashed holder can wedge the session.
	// The returned UnlockFunc must be called to release the lock.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
