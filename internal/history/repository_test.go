package history

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/gradebook/internal/storage"
)

var errBackend = errors.New("disk full")

// memStore is an in-memory storage.Store whose writes can be made to fail.
type memStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	failSet bool
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet {
		return &storage.Error{Op: "set", Key: key, Err: errBackend}
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memStore) Close() error { return nil }

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (i item) RecordID() string { return i.ID }

func prepend(it item) func([]item) ([]item, error) {
	return func(list []item) ([]item, error) {
		updated, _ := Upsert(list, it)
		return updated, nil
	}
}

func TestRepositoryListAbsentKey(t *testing.T) {
	repo := NewRepository[item](newMemStore(), "k")

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRepositoryUpdateWritesEnvelope(t *testing.T) {
	store := newMemStore()
	repo := NewRepository[item](store, "k")
	ctx := context.Background()

	_, err := repo.Update(ctx, prepend(item{ID: "1", Name: "first"}))
	require.NoError(t, err)
	_, err = repo.Update(ctx, prepend(item{ID: "2", Name: "second"}))
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"version":1,"records":[{"id":"2","name":"second"},{"id":"1","name":"first"}]}`,
		string(store.data["k"]))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []item{{"2", "second"}, {"1", "first"}}, list)
}

func TestRepositoryReadsLegacyArray(t *testing.T) {
	store := newMemStore()
	store.data["k"] = []byte(`[{"id":"1","name":"from the app"}]`)
	repo := NewRepository[item](store, "k")

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []item{{"1", "from the app"}}, list)

	// The next write upgrades the stored format.
	_, err = repo.Update(context.Background(), prepend(item{ID: "2"}))
	require.NoError(t, err)
	assert.Contains(t, string(store.data["k"]), `"version":1`)
}

func TestRepositoryRejectsNewerSchema(t *testing.T) {
	store := newMemStore()
	store.data["k"] = []byte(`{"version":7,"records":[]}`)
	repo := NewRepository[item](store, "k")

	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, ErrUnsupportedSchema)
}

func TestRepositoryFailedUpdateKeepsStoredList(t *testing.T) {
	store := newMemStore()
	repo := NewRepository[item](store, "k")
	ctx := context.Background()

	_, err := repo.Update(ctx, prepend(item{ID: "1"}))
	require.NoError(t, err)
	before := string(store.data["k"])

	t.Run("callback error writes nothing", func(t *testing.T) {
		_, err := repo.Update(ctx, func([]item) ([]item, error) {
			return nil, errors.New("invalid")
		})
		assert.Error(t, err)
		assert.Equal(t, before, string(store.data["k"]))
	})

	t.Run("storage error surfaces as storage.Error", func(t *testing.T) {
		store.failSet = true
		defer func() { store.failSet = false }()

		_, err := repo.Update(ctx, prepend(item{ID: "2"}))
		var serr *storage.Error
		require.ErrorAs(t, err, &serr)
		assert.ErrorIs(t, err, errBackend)
		assert.Equal(t, before, string(store.data["k"]))
	})
}

func TestRepositoryGetAndDelete(t *testing.T) {
	repo := NewRepository[item](newMemStore(), "k")
	ctx := context.Background()

	_, err := repo.Update(ctx, prepend(item{ID: "1", Name: "one"}))
	require.NoError(t, err)

	got, err := repo.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "one", got.Name)

	_, err = repo.Get(ctx, "2")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "1"))
	assert.ErrorIs(t, repo.Delete(ctx, "1"), ErrNotFound)
}

func TestRepositoryClearRemovesKey(t *testing.T) {
	store := newMemStore()
	repo := NewRepository[item](store, "k")
	ctx := context.Background()

	_, err := repo.Update(ctx, prepend(item{ID: "1"}))
	require.NoError(t, err)

	require.NoError(t, repo.Clear(ctx))
	_, ok := store.data["k"]
	assert.False(t, ok, "key should be removed")

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRepositoryConcurrentUpdatesLoseNothing(t *testing.T) {
	repo := NewRepository[item](newMemStore(), "k")
	ctx := context.Background()

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.Update(ctx, prepend(item{ID: fmt.Sprint(i)}))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, writers)
}
