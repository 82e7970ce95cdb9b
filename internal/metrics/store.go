package metrics

import (
	"context"
	"time"

	"github.com/mmynk/gradebook/internal/storage"
)

var _ storage.Store = (*instrumentedStore)(nil)

type instrumentedStore struct {
	next storage.Store
	m    *Metrics
}

// InstrumentStore wraps store so every operation is timed.
func InstrumentStore(store storage.Store, m *Metrics) storage.Store {
	return &instrumentedStore{next: store, m: m}
}

func (s *instrumentedStore) observe(op string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	s.m.StoreDuration.WithLabelValues(op, result).Observe(time.Since(start).Seconds())
}

func (s *instrumentedStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	start := time.Now()
	value, ok, err := s.next.Get(ctx, key)
	s.observe("get", start, err)
	return value, ok, err
}

func (s *instrumentedStore) Set(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := s.next.Set(ctx, key, value)
	s.observe("set", start, err)
	return err
}

func (s *instrumentedStore) Remove(ctx context.Context, key string) error {
	start := time.Now()
	err := s.next.Remove(ctx, key)
	s.observe("remove", start, err)
	return err
}

func (s *instrumentedStore) Close() error {
	return s.next.Close()
}
