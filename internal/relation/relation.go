package relation

import (
	"fmt"
	"reflect"

	"github.com/specialistvlad/nexgraph/internal/keyedstore"
	"github.com/specialistvlad/nexgraph/internal/wordform"
)

// Entity is the constraint on members: comparable and identifier-keyed.
type Entity = keyedstore.Entity

// CheckFunc validates m against the members an owner would hold alongside it.
// It must not mutate anything.
type CheckFunc[M Entity] func(current *keyedstore.Store[M], m M) error

// HasMany declares the owner side of a one-to-many relation between owner
// type O and member type M.
type HasMany[O comparable, M Entity] struct {
	name   string
	member string
	link   func(M) *Ref[O, M]
	checks []CheckFunc[M]
}

// NewHasMany declares a relation whose collection is called name. The member
// name is the singular of name; link returns a member's back-reference slot.
func NewHasMany[O comparable, M Entity](name string, link func(M) *Ref[O, M]) *HasMany[O, M] {
	return &HasMany[O, M]{
		name:   name,
		member: wordform.Singular(name),
		link:   link,
	}
}

// WithoutSingularize keeps the collection name as the member name, for
// collections named after a type that already reads as plural ("otus").
func (h *HasMany[O, M]) WithoutSingularize() *HasMany[O, M] {
	h.member = h.name
	return h
}

// WithCheck registers a validation that every insertion must pass.
func (h *HasMany[O, M]) WithCheck(fn CheckFunc[M]) *HasMany[O, M] {
	h.checks = append(h.checks, fn)
	return h
}

// Name returns the collection name.
func (h *HasMany[O, M]) Name() string { return h.name }

// Member returns the member name.
func (h *HasMany[O, M]) Member() string { return h.member }

// Bind creates the member collection of a single owner.
func (h *HasMany[O, M]) Bind(owner O) *Members[O, M] {
	return &Members[O, M]{
		rel:   h,
		owner: owner,
		store: keyedstore.New[M](),
	}
}

// MethodSet names the accessor family an owner exposes for one relation.
type MethodSet struct {
	Add        string
	Delete     string
	Values     string
	Replace    string
	Get        string
	Has        string
	HasID      string
	Count      string
	Each       string
	EachWithID string
}

// Methods returns the Go method names owners expose for this relation.
func (h *HasMany[O, M]) Methods() MethodSet {
	one := wordform.Camel(h.member)
	many := wordform.Camel(h.name)
	return MethodSet{
		Add:        "Add" + one,
		Delete:     "Delete" + one,
		Values:     many,
		Replace:    "Set" + many,
		Get:        "Get" + one + "ByID",
		Has:        "Has" + one,
		HasID:      "Has" + one + "ID",
		Count:      "NumberOf" + many,
		Each:       "Each" + one,
		EachWithID: "Each" + one + "WithID",
	}
}

// BelongsTo declares the member side of a relation: a single owner reference
// whose setter inserts the member into the owner's collection.
type BelongsTo[O comparable, M Entity] struct {
	name    string
	key     string
	link    func(M) *Ref[O, M]
	inverse func(O) *Members[O, M]
}

// NewBelongsTo declares the member side called name. inverse finds, on an
// owner, the collection this member type is inserted into. That collection
// must be named after the member type's key (the lower-cased type name).
func NewBelongsTo[O comparable, M Entity](name string, link func(M) *Ref[O, M], inverse func(O) *Members[O, M]) *BelongsTo[O, M] {
	return &BelongsTo[O, M]{
		name:    name,
		key:     wordform.TypeKey(reflect.TypeFor[M]().String()),
		link:    link,
		inverse: inverse,
	}
}

// Name returns the reference name.
func (b *BelongsTo[O, M]) Name() string { return b.name }

// Key returns the member type key used to find the owner's collection.
func (b *BelongsTo[O, M]) Key() string { return b.key }

// Owner returns m's owner, or the zero O when it has none.
func (b *BelongsTo[O, M]) Owner(m M) O {
	return b.link(m).Owner()
}

// Set makes owner the owner of m by inserting m into owner's collection.
// Passing the zero O detaches m from its current owner.
func (b *BelongsTo[O, M]) Set(m M, owner O) error {
	var zero O
	if owner == zero {
		b.link(m).detach(m)
		return nil
	}
	members := b.inverse(owner)
	if members.rel.member != b.key {
		panic(fmt.Sprintf("relation: %q collection holds %q members, but %s members are keyed %q",
			members.rel.name, members.rel.member, b.name, b.key))
	}
	_, err := members.Add(m)
	return err
}
