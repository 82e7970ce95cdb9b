// Package storage provides the persistent key-value record store the
// gradebook keeps its histories in.
package storage

import (
	"context"
	"fmt"
)

// Keys the gradebook stores its lists under.
const (
	SemesterHistoryKey = "gpa_history"
	OverallHistoryKey  = "ogpa_history"
)

// Store defines a persistent mapping from string keys to opaque values.
// Values are written and read whole; there are no partial updates.
// This abstraction allows swapping backends (SQLite, Redis) without
// changing the gradebook.
type Store interface {
	// Get returns the value stored under key.
	// ok is false, with a nil error, when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}

// Error is returned by Store implementations when the backend fails.
type Error struct {
	Op  string // "get", "set" or "remove"
	Key string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
