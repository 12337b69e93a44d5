// Package memdb provides the process-local storage used by every
// repository in this service. A Table is an ordered collection of rows
// keyed by an integer id that is assigned monotonically and never
// reused, mirroring how a serial primary key would behave.
package memdb

import (
	"errors"
	"sync"
)

// ErrRowNotFound is returned by Update when the id does not resolve.
var ErrRowNotFound = errors.New("memdb: row not found")

// Table is a mutex-guarded ordered map. Reads copy rows out so callers
// never observe a concurrent mutation half-applied; Update runs its
// mutate function under the write lock, which makes it the
// serialization point for every read-modify-write in the service.
type Table[T any] struct {
	mu     sync.RWMutex
	rows   map[int]*T
	order  []int
	lastID int
}

func NewTable[T any]() *Table[T] {
	return &Table[T]{rows: make(map[int]*T)}
}

// Insert assigns the next id, stores the row returned by build and
// returns a copy of it. Ids are strictly increasing: deleting the
// highest row does not make its id available again.
func (t *Table[T]) Insert(build func(id int) *T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.lastID + 1
	t.lastID = id

	row := build(id)
	t.rows[id] = row
	t.order = append(t.order, id)
	return *row
}

// Seed stores a row under an explicit id, used for fixture data. The
// id counter advances past seeded ids so later inserts never collide.
func (t *Table[T]) Seed(id int, row *T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.rows[id]; !exists {
		t.order = append(t.order, id)
	}
	t.rows[id] = row
	if id > t.lastID {
		t.lastID = id
	}
}

// Get returns a copy of the row, or false when the id does not resolve.
func (t *Table[T]) Get(id int) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	return *row, true
}

// Has reports whether the id resolves.
func (t *Table[T]) Has(id int) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.rows[id]
	return ok
}

// Update applies mutate to a copy of the row under the write lock and
// commits the copy back only when mutate succeeds. On error the stored
// row is unchanged. Returns the committed row.
func (t *Table[T]) Update(id int, mutate func(*T) error) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var zero T
	row, ok := t.rows[id]
	if !ok {
		return zero, ErrRowNotFound
	}

	staged := *row
	if err := mutate(&staged); err != nil {
		return zero, err
	}
	*row = staged
	return staged, nil
}

// Delete removes the row. The id is retired, not recycled.
func (t *Table[T]) Delete(id int) bool {
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

// List returns copies of the rows in insertion order. A nil keep
// function selects everything.
func (t *Table[T]) List(keep func(*T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make([]T, 0, len(t.order))
	for _, id := range t.order {
		row := t.rows[id]
		if keep == nil || keep(row) {
			result = append(result, *row)
		}
	}
	return result
}

// Len returns the number of stored rows.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
