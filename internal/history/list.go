// Package history keeps ordered, most-recent-first record lists in a
// storage.Store. Each list lives under one key and is always read and
// written whole.
package history

import "slices"

// Record is anything with a stable identifier.
type Record interface {
	RecordID() string
}

// Find returns the record with the given id.
func Find[T Record](list []T, id string) (T, bool) {
	if i := indexOf(list, id); i >= 0 {
		return list[i], true
	}
	var zero T
	return zero, false
}

// Upsert returns a new list in which rec replaces the element with the
// same ID at the same position, or, when there is none, rec is prepended.
// The input list is not modified.
func Upsert[T Record](list []T, rec T) (updated []T, replaced bool) {
	if i := indexOf(list, rec.RecordID()); i >= 0 {
		updated = slices.Clone(list)
		updated[i] = rec
		return updated, true
	}
	updated = make([]T, 0, len(list)+1)
	updated = append(updated, rec)
	return append(updated, list...), false
}

// Remove returns a new list without the record with the given id.
// The input list is not modified.
func Remove[T Record](list []T, id string) (updated []T, removed bool) {
	i := indexOf(list, id)
	if i < 0 {
		return list, false
	}
	return slices.Delete(slices.Clone(list), i, i+1), true
}

func indexOf[T Record](list []T, id string) int {
	return slices.IndexFunc(list, func(r T) bool { return r.RecordID() == id })
}
