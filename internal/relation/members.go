package relation

import "github.com/specialistvlad/nexgraph/internal/keyedstore"

// Ref is the back-reference a member embeds for one belongs-to relation.
// The zero value means "no owner".
type Ref[O comparable, M Entity] struct {
	in *Members[O, M]
}

// Owner returns the owner, or the zero O.
func (r *Ref[O, M]) Owner() O {
	if r.in == nil {
		var zero O
		return zero
	}
	return r.in.owner
}

// Attached reports whether the member currently has an owner.
func (r *Ref[O, M]) Attached() bool {
	return r.in != nil
}

// detach removes m from the collection holding it.
func (r *Ref[O, M]) detach(m M) {
	if r.in == nil {
		return
	}
	if r.in.store.Contains(m) {
		r.in.store.Delete(m)
	}
	r.in = nil
}

// Members is one owner's collection for a HasMany relation.
type Members[O comparable, M Entity] struct {
	rel   *HasMany[O, M]
	owner O
	store *keyedstore.Store[M]
}

// Relation returns the declaration this collection was bound from.
func (ms *Members[O, M]) Relation() *HasMany[O, M] { return ms.rel }

// Owner returns the owner the collection was bound to.
func (ms *Members[O, M]) Owner() O { return ms.owner }

// Check runs the relation's checks against the current members without
// changing anything.
func (ms *Members[O, M]) Check(m M) error {
	return ms.checkAgainst(ms.store, m)
}

func (ms *Members[O, M]) checkAgainst(current *keyedstore.Store[M], m M) error {
	for _, check := range ms.rel.checks {
		if err := check(current, m); err != nil {
			return err
		}
	}
	return nil
}

// Add inserts m and points it back at this owner, moving it away from any
// previous owner. It returns the owner so calls can be chained.
func (ms *Members[O, M]) Add(m M) (O, error) {
	if err := ms.Check(m); err != nil {
		return ms.owner, err
	}
	ms.attach(m)
	return ms.owner, nil
}

// MustAdd is like Add but panics if a check rejects m. It suits relations
// declared without checks.
func (ms *Members[O, M]) MustAdd(m M) O {
	owner, err := ms.Add(m)
	if err != nil {
		panic(err)
	}
	return owner
}

func (ms *Members[O, M]) attach(m M) {
	ref := ms.rel.link(m)
	if ref.in != nil && ref.in != ms {
		ref.detach(m)
	}
	if displaced, ok := ms.store.Get(m.ID()); ok && displaced != m {
		ms.rel.link(displaced).in = nil
	}
	ms.store.Put(m)
	ref.in = ms
}

// Delete removes the member stored under m's identifier and clears its owner.
func (ms *Members[O, M]) Delete(m M) (M, bool) {
	return ms.DeleteID(m.ID())
}

// DeleteID removes the member stored under id and clears its owner.
func (ms *Members[O, M]) DeleteID(id string) (M, bool) {
	removed, ok := ms.store.DeleteID(id)
	if ok {
		ms.rel.link(removed).in = nil
	}
	return removed, ok
}

// Replace swaps the whole collection for members, re-adding each one so its
// back-reference is re-established. Former members left out lose their
// owner. If any member fails a check nothing changes.
func (ms *Members[O, M]) Replace(members []M) error {
	next := keyedstore.New[M]()
	for _, m := range members {
		if err := ms.checkAgainst(next, m); err != nil {
			return err
		}
		next.Put(m)
	}

	previous := ms.store
	ms.store = keyedstore.New[M]()
	previous.Each(func(old M) {
		if !next.Contains(old) {
			ms.rel.link(old).in = nil
		}
	})
	next.Each(ms.attach)
	return nil
}

// Values returns the members in insertion order.
func (ms *Members[O, M]) Values() []M { return ms.store.Values() }

// Get returns the member stored under id.
func (ms *Members[O, M]) Get(id string) (M, bool) { return ms.store.Get(id) }

// Has reports whether m itself is a member.
func (ms *Members[O, M]) Has(m M) bool { return ms.store.Contains(m) }

// HasID reports whether any member is stored under id.
func (ms *Members[O, M]) HasID(id string) bool { return ms.store.Has(id) }

// Len returns the number of members.
func (ms *Members[O, M]) Len() int { return ms.store.Len() }

// Each calls fn for every member in insertion order.
func (ms *Members[O, M]) Each(fn func(M)) { ms.store.Each(fn) }

// EachWithID calls fn with every identifier and member in insertion order.
func (ms *Members[O, M]) EachWithID(fn func(string, M)) { ms.store.EachWithID(fn) }
