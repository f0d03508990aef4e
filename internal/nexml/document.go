// Package nexml provides the root of the phylogenetic object graph: the
// Document, which owns taxon sets and tree collections.
package nexml

import (
	"github.com/specialistvlad/nexgraph/internal/graph"
	"github.com/specialistvlad/nexgraph/internal/model"
	"github.com/specialistvlad/nexgraph/internal/relation"
)

// DefaultVersion is the markup version written into new documents.
const DefaultVersion = "0.9"

// Document is the root object.
type Document struct {
	version   string
	generator string
	otus      *relation.Members[model.Holder, *model.Otus]
	trees     *relation.Members[graph.Holder, *graph.Trees]
}

// New creates an empty document. Accepted properties: version, generator.
func New(props map[string]string) (*Document, error) {
	d := &Document{version: DefaultVersion}
	d.otus = model.HeldOtus.Bind(d)
	d.trees = graph.HeldTrees.Bind(d)
	if err := d.SetProperties(props); err != nil {
		return nil, err
	}
	return d, nil
}

// Version returns the markup version.
func (d *Document) Version() string { return d.version }

// Generator returns the name of the program that produced the markup.
func (d *Document) Generator() string { return d.generator }

// OtusMembers implements model.Holder.
func (d *Document) OtusMembers() *relation.Members[model.Holder, *model.Otus] { return d.otus }

// TreesMembers implements graph.Holder.
func (d *Document) TreesMembers() *relation.Members[graph.Holder, *graph.Trees] { return d.trees }

// AddOtus adds a taxon set, taking it from any other document.
func (d *Document) AddOtus(s *model.Otus) *Document {
	d.otus.MustAdd(s)
	return d
}

// DeleteOtus removes the taxon set stored under s's identifier.
func (d *Document) DeleteOtus(s *model.Otus) (*model.Otus, bool) { return d.otus.Delete(s) }

// Otus returns the taxon sets in insertion order.
func (d *Document) Otus() []*model.Otus { return d.otus.Values() }

// SetOtus replaces the taxon sets.
func (d *Document) SetOtus(sets []*model.Otus) error { return d.otus.Replace(sets) }

// GetOtusByID looks a taxon set up by identifier.
func (d *Document) GetOtusByID(id string) (*model.Otus, bool) { return d.otus.Get(id) }

// HasOtus reports whether s itself belongs to the document.
func (d *Document) HasOtus(s *model.Otus) bool { return d.otus.Has(s) }

// HasOtusID reports whether a taxon set is stored under id.
func (d *Document) HasOtusID(id string) bool { return d.otus.HasID(id) }

// NumberOfOtus returns the number of taxon sets.
func (d *Document) NumberOfOtus() int { return d.otus.Len() }

// EachOtus calls fn for every taxon set in insertion order.
func (d *Document) EachOtus(fn func(*model.Otus)) { d.otus.Each(fn) }

// EachOtusWithID calls fn with every identifier and taxon set.
func (d *Document) EachOtusWithID(fn func(string, *model.Otus)) { d.otus.EachWithID(fn) }

// AddTrees adds a tree collection, taking it from any other document.
func (d *Document) AddTrees(f *graph.Trees) *Document {
	d.trees.MustAdd(f)
	return d
}

// DeleteTrees removes the tree collection stored under f's identifier.
func (d *Document) DeleteTrees(f *graph.Trees) (*graph.Trees, bool) { return d.trees.Delete(f) }

// Trees returns the tree collections in insertion order.
func (d *Document) Trees() []*graph.Trees { return d.trees.Values() }

// SetTrees replaces the tree collections.
func (d *Document) SetTrees(forests []*graph.Trees) error { return d.trees.Replace(forests) }

// GetTreesByID looks a tree collection up by identifier.
func (d *Document) GetTreesByID(id string) (*graph.Trees, bool) { return d.trees.Get(id) }

// HasTrees reports whether f itself belongs to the document.
func (d *Document) HasTrees(f *graph.Trees) bool { return d.trees.Has(f) }

// HasTreesID reports whether a tree collection is stored under id.
func (d *Document) HasTreesID(id string) bool { return d.trees.HasID(id) }

// NumberOfTrees returns the number of tree collections.
func (d *Document) NumberOfTrees() int { return d.trees.Len() }

// EachTrees calls fn for every tree collection in insertion order.
func (d *Document) EachTrees(fn func(*graph.Trees)) { d.trees.Each(fn) }

// EachTreesWithID calls fn with every identifier and tree collection.
func (d *Document) EachTreesWithID(fn func(string, *graph.Trees)) { d.trees.EachWithID(fn) }

// FindOtu looks a taxon up by identifier across every taxon set.
func (d *Document) FindOtu(id string) (*model.Otu, bool) {
	for _, s := range d.otus.Values() {
		if o, ok := s.GetOtuByID(id); ok {
			return o, true
		}
	}
	return nil, false
}

// SetProperty sets a single named property.
func (d *Document) SetProperty(name, value string) error {
	return d.SetProperties(map[string]string{name: value})
}

// SetProperties sets several named properties, all or none.
func (d *Document) SetProperties(props map[string]string) error {
	return model.Apply("nexml", model.Setters{
		"version":   model.String(&d.version),
		"generator": model.String(&d.generator),
	}, props)
}
