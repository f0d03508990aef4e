package graph

import (
	"fmt"

	"github.com/specialistvlad/nexgraph/internal/model"
	"github.com/specialistvlad/nexgraph/internal/relation"
)

// Holder is implemented by the owner of tree collections.
type Holder interface {
	// TreesMembers returns the collection forests are inserted into.
	TreesMembers() *relation.Members[Holder, *Trees]
}

// Trees is a forest: independent stores of trees and networks, optionally
// drawing taxa from one taxon set.
type Trees struct {
	id       string
	label    string
	otus     *model.Otus
	otusID   string
	trees    *relation.Members[*Trees, *Tree]
	networks *relation.Members[*Trees, *Network]
	document relation.Ref[Holder, *Trees]
}

func treeLink(t *Tree) *relation.Ref[*Trees, *Tree]           { return &t.trees }
func networkLink(nw *Network) *relation.Ref[*Trees, *Network] { return &nw.trees }
func treesLink(f *Trees) *relation.Ref[Holder, *Trees]         { return &f.document }

var (
	forestTrees    = relation.NewHasMany("trees", treeLink)
	forestNetworks = relation.NewHasMany("networks", networkLink)

	treeTrees = relation.NewBelongsTo("trees", treeLink, func(f *Trees) *relation.Members[*Trees, *Tree] {
		return f.trees
	})
	networkTrees = relation.NewBelongsTo("trees", networkLink, func(f *Trees) *relation.Members[*Trees, *Network] {
		return f.networks
	})

	// HeldTrees declares the collection a Holder binds for its forests.
	HeldTrees = relation.NewHasMany("trees", treesLink).WithoutSingularize()

	treesHolder = relation.NewBelongsTo("document", treesLink, Holder.TreesMembers)
)

// NewTrees creates an empty forest. Accepted properties: label, otus (a
// taxon set identifier kept unresolved).
func NewTrees(id string, props map[string]string) (*Trees, error) {
	f := &Trees{id: id}
	f.trees = forestTrees.Bind(f)
	f.networks = forestNetworks.Bind(f)
	if err := f.SetProperties(props); err != nil {
		return nil, err
	}
	return f, nil
}

// ID returns the identifier.
func (f *Trees) ID() string { return f.id }

// Label returns the label.
func (f *Trees) Label() string { return f.label }

// SetLabel sets the label.
func (f *Trees) SetLabel(label string) { f.label = label }

// Otus returns the linked taxon set when it has been resolved.
func (f *Trees) Otus() *model.Otus { return f.otus }

// OtusID returns the linked taxon set's identifier, resolved or not.
func (f *Trees) OtusID() string {
	if f.otus != nil {
		return f.otus.ID()
	}
	return f.otusID
}

// SetOtus links the forest to a taxon set.
func (f *Trees) SetOtus(s *model.Otus) { f.otus, f.otusID = s, "" }

// SetOtusID records an unresolved taxon set identifier.
func (f *Trees) SetOtusID(id string) { f.otus, f.otusID = nil, id }

// Document returns the holder of f, or nil.
func (f *Trees) Document() Holder { return treesHolder.Owner(f) }

// SetDocument moves f into h. A nil h detaches it.
func (f *Trees) SetDocument(h Holder) error { return treesHolder.Set(f, h) }

// Append adds p to the store matching its kind.
func (f *Trees) Append(p Phylogeny) error {
	// Network is the more specific kind and is matched first.
	switch v := p.(type) {
	case *Network:
		f.AddNetwork(v)
	case *Tree:
		f.AddTree(v)
	default:
		return fmt.Errorf("nexgraph: cannot append %T to trees %s", p, f.id)
	}
	return nil
}

// Get looks id up among the trees, then among the networks.
func (f *Trees) Get(id string) (Phylogeny, bool) {
	if t, ok := f.trees.Get(id); ok {
		return t, true
	}
	if nw, ok := f.networks.Get(id); ok {
		return nw, true
	}
	return nil, false
}

// Each calls fn for every tree, then every network.
func (f *Trees) Each(fn func(Phylogeny)) {
	f.trees.Each(func(t *Tree) { fn(t) })
	f.networks.Each(func(nw *Network) { fn(nw) })
}

// Len returns the number of trees and networks together.
func (f *Trees) Len() int { return f.trees.Len() + f.networks.Len() }

// AddTree adds t, taking it from any other forest.
func (f *Trees) AddTree(t *Tree) *Trees { return f.trees.MustAdd(t) }

// DeleteTree removes the tree stored under t's identifier.
func (f *Trees) DeleteTree(t *Tree) (*Tree, bool) { return f.trees.Delete(t) }

// Trees returns the trees in insertion order.
func (f *Trees) Trees() []*Tree { return f.trees.Values() }

// SetTrees replaces the trees.
func (f *Trees) SetTrees(trees []*Tree) error { return f.trees.Replace(trees) }

// GetTreeByID looks a tree up by identifier.
func (f *Trees) GetTreeByID(id string) (*Tree, bool) { return f.trees.Get(id) }

// HasTree reports whether t itself belongs to the forest.
func (f *Trees) HasTree(t *Tree) bool { return f.trees.Has(t) }

// HasTreeID reports whether a tree is stored under id.
func (f *Trees) HasTreeID(id string) bool { return f.trees.HasID(id) }

// NumberOfTrees returns the number of trees.
func (f *Trees) NumberOfTrees() int { return f.trees.Len() }

// EachTree calls fn for every tree in insertion order.
func (f *Trees) EachTree(fn func(*Tree)) { f.trees.Each(fn) }

// EachTreeWithID calls fn with every identifier and tree.
func (f *Trees) EachTreeWithID(fn func(string, *Tree)) { f.trees.EachWithID(fn) }

// AddNetwork adds nw, taking it from any other forest.
func (f *Trees) AddNetwork(nw *Network) *Trees { return f.networks.MustAdd(nw) }

// DeleteNetwork removes the network stored under nw's identifier.
func (f *Trees) DeleteNetwork(nw *Network) (*Network, bool) { return f.networks.Delete(nw) }

// Networks returns the networks in insertion order.
func (f *Trees) Networks() []*Network { return f.networks.Values() }

// SetNetworks replaces the networks.
func (f *Trees) SetNetworks(networks []*Network) error { return f.networks.Replace(networks) }

// GetNetworkByID looks a network up by identifier.
func (f *Trees) GetNetworkByID(id string) (*Network, bool) { return f.networks.Get(id) }

// HasNetwork reports whether nw itself belongs to the forest.
func (f *Trees) HasNetwork(nw *Network) bool { return f.networks.Has(nw) }

// HasNetworkID reports whether a network is stored under id.
func (f *Trees) HasNetworkID(id string) bool { return f.networks.HasID(id) }

// NumberOfNetworks returns the number of networks.
func (f *Trees) NumberOfNetworks() int { return f.networks.Len() }

// EachNetwork calls fn for every network in insertion order.
func (f *Trees) EachNetwork(fn func(*Network)) { f.networks.Each(fn) }

// EachNetworkWithID calls fn with every identifier and network.
func (f *Trees) EachNetworkWithID(fn func(string, *Network)) { f.networks.EachWithID(fn) }

// SetProperty sets a single named property.
func (f *Trees) SetProperty(name, value string) error {
	return f.SetProperties(map[string]string{name: value})
}

// SetProperties sets several named properties, all or none.
func (f *Trees) SetProperties(props map[string]string) error {
	return model.Apply("trees", model.Setters{
		"label": model.String(&f.label),
		"otus": func(v string) (func(), error) {
			return func() { f.SetOtusID(v) }, nil
		},
	}, props)
}
