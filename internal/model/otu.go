// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import "github.com/specialistvlad/nexgraph/internal/relation"

// Otu is an operational taxonomic unit.
type Otu struct {
	id    string
	label string
	otus  relation.Ref[*Otus, *Otu]
}

func otuLink(o *Otu) *relation.Ref[*Otus, *Otu] { return &o.otus }

var otuOtus = relation.NewBelongsTo("otus", otuLink, func(s *Otus) *relation.Members[*Otus, *Otu] {
	return s.otus
})

// NewOtu creates a taxon with the given identifier and initial properties.
func NewOtu(id string, props map[string]string) (*Otu, error) {
	o := &Otu{id: id}
	if err := o.SetProperties(props); err != nil {
		return nil, err
	}
	return o, nil
}

// ID returns the identifier.
func (o *Otu) ID() string { return o.id }

// Label returns the human-readable label.
func (o *Otu) Label() string { return o.label }

// SetLabel sets the label.
func (o *Otu) SetLabel(label string) { o.label = label }

// Otus returns the taxon set holding o, or nil.
func (o *Otu) Otus() *Otus { return otuOtus.Owner(o) }

// SetOtus moves o into s. A nil s detaches o.
func (o *Otu) SetOtus(s *Otus) error { return otuOtus.Set(o, s) }

func (o *Otu) setters() Setters {
	return Setters{"label": String(&o.label)}
}

// SetProperty sets a single named property.
func (o *Otu) SetProperty(name, value string) error {
	return o.SetProperties(map[string]string{name: value})
}

// SetProperties sets several named properties, all or none.
func (o *Otu) SetProperties(props map[string]string) error {
	return Apply("otu", o.setters(), props)
}
