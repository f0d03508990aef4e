package graph

import (
	"github.com/specialistvlad/nexgraph/internal/model"
	"github.com/specialistvlad/nexgraph/internal/relation"
)

// Tree is a phylogeny in which every node has at most one incoming edge.
type Tree struct {
	base
	trees relation.Ref[*Trees, *Tree]
}

// NewTree creates an empty tree. Accepted properties: label.
func NewTree(id string, props map[string]string) (*Tree, error) {
	t := &Tree{base: base{kind: "tree", id: id}}
	t.nodes = phylogenyNodes.Bind(t)
	t.edges = treeEdges.Bind(t)
	if err := t.SetProperties(props); err != nil {
		return nil, err
	}
	return t, nil
}

// AddNode adds n, taking it from any other graph.
func (t *Tree) AddNode(n *Node) *Tree {
	t.nodes.MustAdd(n)
	return t
}

// Trees returns the forest holding t, or nil.
func (t *Tree) Trees() *Trees { return treeTrees.Owner(t) }

// SetTrees moves t into f. A nil f detaches it.
func (t *Tree) SetTrees(f *Trees) error { return treeTrees.Set(t, f) }

// SetProperty sets a single named property.
func (t *Tree) SetProperty(name, value string) error {
	return t.SetProperties(map[string]string{name: value})
}

// SetProperties sets several named properties, all or none.
func (t *Tree) SetProperties(props map[string]string) error {
	return model.Apply("tree", model.Setters{"label": model.String(&t.label)}, props)
}
