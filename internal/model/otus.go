// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import "github.com/specialistvlad/nexgraph/internal/relation"

// Holder is implemented by the owner of taxon sets.
type Holder interface {
	// OtusMembers returns the collection taxon sets are inserted into.
	OtusMembers() *relation.Members[Holder, *Otus]
}

// Otus is a taxon set.
type Otus struct {
	id       string
	label    string
	otus     *relation.Members[*Otus, *Otu]
	document relation.Ref[Holder, *Otus]
}

var otusOtu = relation.NewHasMany("otus", otuLink)

func otusLink(s *Otus) *relation.Ref[Holder, *Otus] { return &s.document }

// HeldOtus declares the collection a Holder binds for its taxon sets.
var HeldOtus = relation.NewHasMany("otus", otusLink).WithoutSingularize()

var otusHolder = relation.NewBelongsTo("document", otusLink, Holder.OtusMembers)

// NewOtus creates an empty taxon set.
func NewOtus(id string, props map[string]string) (*Otus, error) {
	s := &Otus{id: id}
	s.otus = otusOtu.Bind(s)
	if err := s.SetProperties(props); err != nil {
		return nil, err
	}
	return s, nil
}

// ID returns the identifier.
func (s *Otus) ID() string { return s.id }

// Label returns the human-readable label.
func (s *Otus) Label() string { return s.label }

// SetLabel sets the label.
func (s *Otus) SetLabel(label string) { s.label = label }

// Document returns the holder of s, or nil.
func (s *Otus) Document() Holder { return otusHolder.Owner(s) }

// SetDocument moves s into h. A nil h detaches s.
func (s *Otus) SetDocument(h Holder) error { return otusHolder.Set(s, h) }

// AddOtu adds o to the set, taking it from any other set.
func (s *Otus) AddOtu(o *Otu) *Otus { return s.otus.MustAdd(o) }

// DeleteOtu removes the taxon stored under o's identifier.
func (s *Otus) DeleteOtu(o *Otu) (*Otu, bool) { return s.otus.Delete(o) }

// Otus returns the taxa in insertion order.
func (s *Otus) Otus() []*Otu { return s.otus.Values() }

// SetOtus replaces the taxa.
func (s *Otus) SetOtus(otus []*Otu) error { return s.otus.Replace(otus) }

// GetOtuByID looks a taxon up by identifier.
func (s *Otus) GetOtuByID(id string) (*Otu, bool) { return s.otus.Get(id) }

// HasOtu reports whether o itself belongs to the set.
func (s *Otus) HasOtu(o *Otu) bool { return s.otus.Has(o) }

// HasOtuID reports whether a taxon is stored under id.
func (s *Otus) HasOtuID(id string) bool { return s.otus.HasID(id) }

// NumberOfOtus returns the number of taxa.
func (s *Otus) NumberOfOtus() int { return s.otus.Len() }

// EachOtu calls fn for every taxon in insertion order.
func (s *Otus) EachOtu(fn func(*Otu)) { s.otus.Each(fn) }

// EachOtuWithID calls fn with every identifier and taxon.
func (s *Otus) EachOtuWithID(fn func(string, *Otu)) { s.otus.EachWithID(fn) }

func (s *Otus) setters() Setters {
	return Setters{"label": String(&s.label)}
}

// SetProperty sets a single named property.
func (s *Otus) SetProperty(name, value string) error {
	return s.SetProperties(map[string]string{name: value})
}

// SetProperties sets several named properties, all or none.
func (s *Otus) SetProperties(props map[string]string) error {
	return Apply("otus", s.setters(), props)
}
