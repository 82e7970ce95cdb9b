package history

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/mmynk/gradebook/internal/storage"
)

// SchemaVersion is the version written with every list.
// Version 0 is a bare JSON array, as written before lists were versioned.
const SchemaVersion = 1

var (
	// ErrNotFound is returned when no record has the requested ID.
	ErrNotFound = errors.New("record not found")

	// ErrUnsupportedSchema is returned when a stored list was written by a
	// newer version of the gradebook.
	ErrUnsupportedSchema = errors.New("unsupported history schema version")
)

// envelope is the stored form of a list.
type envelope[T any] struct {
	Version int `json:"version"`
	Records []T `json:"records"`
}

// Repository loads and stores one list of records under a single key.
// Mutations run load-modify-store under a mutex, so concurrent callers
// sharing a Repository never lose each other's updates. Share one
// Repository per key; two Repositories on the same key do not coordinate.
type Repository[T Record] struct {
	store storage.Store
	key   string
	mu    sync.Mutex
}

// NewRepository creates a repository for the list stored under key.
func NewRepository[T Record](store storage.Store, key string) *Repository[T] {
	return &Repository[T]{store: store, key: key}
}

// Key returns the store key the list lives under.
func (r *Repository[T]) Key() string {
	return r.key
}

// List returns the stored records, most recent first.
// An absent key is an empty list.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// Get returns the record with the given id, or ErrNotFound.
func (r *Repository[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	list, err := r.List(ctx)
	if err != nil {
		return zero, err
	}
	rec, ok := Find(list, id)
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return rec, nil
}

// Update loads the list, passes it to fn and stores what fn returns.
// If fn fails nothing is written. The whole sequence holds the lock.
func (r *Repository[T]) Update(ctx context.Context, fn func([]T) ([]T, error)) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	updated, err := fn(list)
	if err != nil {
		return nil, err
	}
	if err := r.save(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the record with the given id, or returns ErrNotFound.
func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	_, err := r.Update(ctx, func(list []T) ([]T, error) {
		updated, ok := Remove(list, id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return updated, nil
	})
	return err
}

// Clear removes the whole list, including its store key.
func (r *Repository[T]) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Remove(ctx, r.key)
}

func (r *Repository[T]) load(ctx context.Context) ([]T, error) {
	data, ok, err := r.store.Get(ctx, r.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	list, err := decode[T](data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.key, err)
	}
	return list, nil
}

func (r *Repository[T]) save(ctx context.Context, list []T) error {
	if list == nil {
		list = []T{}
	}
	data, err := json.Marshal(envelope[T]{Version: SchemaVersion, Records: list})
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", r.key, err)
	}
	return r.store.Set(ctx, r.key, data)
}

func decode[T any](data []byte) ([]T, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	// Version 0: a bare array.
	if data[0] == '[' {
		var list []T
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var env envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	if env.Version > SchemaVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSchema, env.Version)
	}
	return env.Records, nil
}
