// Package memstore provides a generic, mutex-guarded keyed table used by the
// in-memory repositories. Records are addressed by an int64 id assigned from a
// per-table counter and are listed in insertion order.
package memstore

import "sync"

// Table holds records of a single entity type.
type Table[T any] struct {
	mu     sync.RWMutex
	rows   map[int64]T
	order  []int64
	nextID int64
}

// NewTable creates an empty table whose first assigned id is 1.
func NewTable[T any]() *Table[T] {
	return &Table[T]{
		rows:   make(map[int64]T),
		nextID: 1,
	}
}

// Insert assigns the next id, builds the record with it and stores the result.
// Ids are never reused, even after the record holding them is deleted.
func (t *Table[T]) Insert(build func(id int64) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextID
	t.nextID++

	v := build(id)
	t.rows[id] = v
	t.order = append(t.order, id)
	return v
}

// Seed stores v under a fixed id and moves the counter past it.
func (t *Table[T]) Seed(id int64, v T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.rows[id]; !exists {
		t.order = append(t.order, id)
	}
	t.rows[id] = v
	if id >= t.nextID {
		t.nextID = id + 1
	}
}

// Get returns the record stored under id.
func (t *Table[T]) Get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.rows[id]
	return v, ok
}

// Update replaces the record under id with fn(existing) while holding the
// write lock. The record keeps its position in the listing order.
func (t *Table[T]) Update(id int64, fn func(T) T) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	existing, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	updated := fn(existing)
	t.rows[id] = updated
	return updated, true
}

// Delete removes the record under id and reports whether one existed.
func (t *Table[T]) Delete(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, oid := range t.order {
		if oid == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// All returns every record in insertion order. The result is never nil.
func (t *Table[T]) All() []T {
	return t.Filter(nil)
}

// Filter returns the records for which keep returns true, in insertion order.
// A nil keep matches everything. The result is never nil.
func (t *Table[T]) Filter(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		v := t.rows[id]
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Len returns the number of stored records.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// NextID reports the id the next Insert will assign.
func (t *Table[T]) NextID() int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.nextID
}
