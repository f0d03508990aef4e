// Package keyedstore provides an ordered, identifier-keyed container for the
// entities of the object graph.
//
// # Characteristics
//
//   - **Keyed:** at most one entity per identifier. Putting a second entity
//     under an existing identifier replaces the stored one (last write wins)
//     and keeps the original position.
//   - **Ordered:** iteration follows insertion order.
//   - **Quiet misses:** Get and Delete of an unknown identifier report
//     absence through the boolean result, never through an error.
//
// A Store is not safe for concurrent use. The graph it backs is single-writer.
package keyedstore

// Entity is anything addressable by a stable identifier. Entities are
// compared by identity, so implementations are normally pointer types.
type Entity interface {
	comparable
	ID() string
}

// Store holds entities keyed by identifier in insertion order.
type Store[T Entity] struct {
	items map[string]T
	order []string
}

// New creates an empty store.
func New[T Entity]() *Store[T] {
	return &Store[T]{items: make(map[string]T)}
}

// Put stores e under e.ID(), replacing any entity already held there.
func (s *Store[T]) Put(e T) {
	id := e.ID()
	if _, exists := s.items[id]; !exists {
		s.order = append(s.order, id)
	}
	s.items[id] = e
}

// Delete removes whatever is stored under e.ID() and returns it.
func (s *Store[T]) Delete(e T) (T, bool) {
	return s.DeleteID(e.ID())
}

// DeleteID removes the entity stored under id and returns it.
func (s *Store[T]) DeleteID(id string) (T, bool) {
	removed, ok := s.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	delete(s.items, id)
	for i, key := range s.order {
		if key == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return removed, true
}

// Contains reports whether e itself, not merely another entity with the same
// identifier, is stored.
func (s *Store[T]) Contains(e T) bool {
	stored, ok := s.items[e.ID()]
	return ok && stored == e
}

// Has reports whether any entity is stored under id.
func (s *Store[T]) Has(id string) bool {
	_, ok := s.items[id]
	return ok
}

// Get returns the entity stored under id.
func (s *Store[T]) Get(id string) (T, bool) {
	e, ok := s.items[id]
	return e, ok
}

// Values returns the stored entities in insertion order. The slice is a
// snapshot and safe for the caller to modify.
func (s *Store[T]) Values() []T {
	values := make([]T, 0, len(s.order))
	for _, id := range s.order {
		values = append(values, s.items[id])
	}
	return values
}

// IDs returns the stored identifiers in insertion order.
func (s *Store[T]) IDs() []string {
	ids := make([]string, len(s.order))
	copy(ids, s.order)
	return ids
}

// Each calls fn for every entity in insertion order. The iteration works on
// a snapshot, so fn may mutate the store.
func (s *Store[T]) Each(fn func(T)) {
	for _, e := range s.Values() {
		fn(e)
	}
}

// EachWithID calls fn with every identifier and entity in insertion order.
func (s *Store[T]) EachWithID(fn func(string, T)) {
	for _, id := range s.IDs() {
		if e, ok := s.items[id]; ok {
			fn(id, e)
		}
	}
}

// Len returns the number of distinct identifiers held.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// Clone returns a shallow copy: same entities, independent bookkeeping.
func (s *Store[T]) Clone() *Store[T] {
	c := &Store[T]{
		items: make(map[string]T, len(s.items)),
		order: make([]string, len(s.order)),
	}
	copy(c.order, s.order)
	for id, e := range s.items {
		c.items[id] = e
	}
	return c
}
