package graph

import (
	"github.com/specialistvlad/nexgraph/internal/model"
	"github.com/specialistvlad/nexgraph/internal/relation"
)

// Node is a vertex of a tree or network.
type Node struct {
	id    string
	label string
	root  bool
	otu   *model.Otu
	otuID string
	tree  relation.Ref[Phylogeny, *Node]
}

// NewNode creates a node. Accepted properties: label, root, otu (a taxon
// identifier kept unresolved).
func NewNode(id string, props map[string]string) (*Node, error) {
	n := &Node{id: id}
	if err := n.SetProperties(props); err != nil {
		return nil, err
	}
	return n, nil
}

// ID returns the identifier.
func (n *Node) ID() string { return n.id }

// Label returns the label.
func (n *Node) Label() string { return n.label }

// SetLabel sets the label.
func (n *Node) SetLabel(label string) { n.label = label }

// IsRoot reports whether the node is flagged as a root.
func (n *Node) IsRoot() bool { return n.root }

// SetRoot flags or unflags the node as a root.
func (n *Node) SetRoot(root bool) { n.root = root }

// Otu returns the linked taxon when it has been resolved.
func (n *Node) Otu() *model.Otu { return n.otu }

// OtuID returns the linked taxon's identifier, resolved or not.
func (n *Node) OtuID() string {
	if n.otu != nil {
		return n.otu.ID()
	}
	return n.otuID
}

// SetOtu links the node to a taxon.
func (n *Node) SetOtu(o *model.Otu) {
	n.otu, n.otuID = o, ""
}

// SetOtuID records an unresolved taxon identifier.
func (n *Node) SetOtuID(id string) {
	n.otu, n.otuID = nil, id
}

// Tree returns the tree or network holding the node, or nil.
func (n *Node) Tree() Phylogeny { return nodeTree.Owner(n) }

// SetTree moves the node into p. A nil p detaches it.
func (n *Node) SetTree(p Phylogeny) error { return nodeTree.Set(n, p) }

func (n *Node) setters() model.Setters {
	return model.Setters{
		"label": model.String(&n.label),
		"root":  model.Bool(&n.root),
		"otu": func(v string) (func(), error) {
			return func() { n.SetOtuID(v) }, nil
		},
	}
}

// SetProperty sets a single named property.
func (n *Node) SetProperty(name, value string) error {
	return n.SetProperties(map[string]string{name: value})
}

// SetProperties sets several named properties, all or none.
func (n *Node) SetProperties(props map[string]string) error {
	return model.Apply("node", n.setters(), props)
}
