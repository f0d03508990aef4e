// Package relation keeps one-to-many associations consistent in both
// directions.
//
// # Declarations and instances
//
// A relation is declared once per pair of Go types, at package level:
//
//	var otusOtu = relation.NewHasMany("otus", func(o *Otu) *relation.Ref[*Otus, *Otu] { return &o.otus })
//	var otuOtus = relation.NewBelongsTo("otus", func(o *Otu) *relation.Ref[*Otus, *Otu] { return &o.otus },
//	    func(s *Otus) *relation.Members[*Otus, *Otu] { return s.otus })
//
// Every owner then binds its own member collection in its constructor
// (otusOtu.Bind(owner)), and every member embeds a Ref that points back at
// the collection holding it. Domain types wrap the generic operations in the
// method family named by HasMany.Methods: AddOtu, DeleteOtu, Otus, SetOtus,
// GetOtuByID, HasOtu, NumberOfOtus, EachOtu and EachOtuWithID.
//
// # Invariants
//
// After any call, every member in an owner's collection refers back to that
// owner, and no member is held by two owners: adding a member moves it. An
// entity displaced from a collection by an identifier collision loses its
// owner reference. Checks registered with WithCheck run before any
// collection is touched, so a rejected Add or Replace leaves every owner as
// it was.
//
// Nothing here is safe for concurrent use.
package relation
