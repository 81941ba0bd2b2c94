// Package storage is the durable key-value layer the storefront state is
// serialized into. Values are JSON documents keyed by string.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

// Keys written by the storefront.
const (
	KeyCart          = "cart"
	KeyWishlist      = "wishlist"
	KeyUsers         = "users"
	KeyCurrentUser   = "currentUser"
	KeyUserEmail     = "userEmail"
	KeyOrders        = "orders"
	KeySearchResults = "searchResults"
	KeyCheckout      = "checkout"
)

// ErrNotFound is returned by Get when a key holds no value.
var ErrNotFound = errors.New("storage: key not found")

// Store is a passive serialization target. It never initiates mutation.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type namespaced struct {
	prefix string
	inner  Store
}

// Namespace scopes every key of inner under prefix, so one backend can
// hold many independent browsing sessions.
func Namespace(inner Store, prefix string) Store {
	return &namespaced{prefix: prefix + ":", inner: inner}
}

func (n *namespaced) Get(ctx context.Context, key string) ([]byte, error) {
	return n.inner.Get(ctx, n.prefix+key)
}

func (n *namespaced) Set(ctx context.Context, key string, value []byte) error {
	return n.inner.Set(ctx, n.prefix+key, value)
}

func (n *namespaced) Delete(ctx context.Context, key string) error {
	return n.inner.Delete(ctx, n.prefix+key)
}

// SessionPrefix is the namespace of one session's keys.
func SessionPrefix(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

const sessionKeyPrefix = "session:"

// LoadJSON decodes key into dst. An absent key leaves dst untouched and
// returns false. A value that fails to decode is treated the same way
// (logged, never propagated); only backend I/O errors are returned.
func LoadJSON(ctx context.Context, s Store, key string, dst any) (bool, error) {
	raw, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("storage: get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Printf("⚠️ [storage.load] malformed value under %q, using default: %v", key, err)
		return false, nil
	}
	return true, nil
}

// SaveJSON serializes v under key.
func SaveJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("storage: set %s: %w", key, err)
	}
	return nil
}
