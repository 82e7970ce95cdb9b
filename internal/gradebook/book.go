// Package gradebook ties the calculator to the record histories. It is the
// API the RPC service and the CLI are written against.
package gradebook

import (
	"strconv"
	"time"

	"github.com/mmynk/gradebook/internal/history"
	"github.com/mmynk/gradebook/internal/models"
	"github.com/mmynk/gradebook/internal/storage"
)

// DateLayout formats the display timestamp stored on records.
const DateLayout = "1/2/2006, 3:04:05 PM"

// Book manages the semester and overall histories in one store.
// It is safe for concurrent use.
type Book struct {
	semesters *history.Repository[models.SemesterRecord]
	overalls  *history.Repository[models.OverallRecord]
	now       func() time.Time
}

// Option configures a Book.
type Option func(*Book)

// WithClock replaces time.Now, for deterministic IDs and dates in tests.
func WithClock(now func() time.Time) Option {
	return func(b *Book) { b.now = now }
}

// New creates a Book over store.
func New(store storage.Store, opts ...Option) *Book {
	b := &Book{
		semesters: history.NewRepository[models.SemesterRecord](store, storage.SemesterHistoryKey),
		overalls:  history.NewRepository[models.OverallRecord](store, storage.OverallHistoryKey),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// newID derives an ID from the time in milliseconds, stepping forward
// until it is unused in list.
func newID[T history.Record](now time.Time, list []T) string {
	ms := now.UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if _, taken := history.Find(list, id); !taken {
			return id
		}
		ms++
	}
}
