package graph

import (
	"github.com/specialistvlad/nexgraph/internal/model"
	"github.com/specialistvlad/nexgraph/internal/relation"
)

// Network is a phylogeny that allows reticulation: a node may be the target
// of several edges.
type Network struct {
	base
	trees relation.Ref[*Trees, *Network]
}

// NewNetwork creates an empty network. Accepted properties: label.
func NewNetwork(id string, props map[string]string) (*Network, error) {
	nw := &Network{base: base{kind: "network", id: id}}
	nw.nodes = phylogenyNodes.Bind(nw)
	nw.edges = networkEdges.Bind(nw)
	if err := nw.SetProperties(props); err != nil {
		return nil, err
	}
	return nw, nil
}

// AddNode adds n, taking it from any other graph.
func (nw *Network) AddNode(n *Node) *Network {
	nw.nodes.MustAdd(n)
	return nw
}

// Trees returns the forest holding nw, or nil.
func (nw *Network) Trees() *Trees { return networkTrees.Owner(nw) }

// SetTrees moves nw into f. A nil f detaches it.
func (nw *Network) SetTrees(f *Trees) error { return networkTrees.Set(nw, f) }

// SetProperty sets a single named property.
func (nw *Network) SetProperty(name, value string) error {
	return nw.SetProperties(map[string]string{name: value})
}

// SetProperties sets several named properties, all or none.
func (nw *Network) SetProperties(props map[string]string) error {
	return model.Apply("network", model.Setters{"label": model.String(&nw.label)}, props)
}
