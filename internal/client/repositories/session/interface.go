// Package session provides durable key/value persistence for the
// authenticated session: the auth token and the cached operator record.
package session

import "context"

// Repository is the durable key/value layer under the session store.
type Repository interface {
	// Get returns the stored value for key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every stored key.
	Clear(ctx context.Context) error
}
