package graph

import (
	"github.com/specialistvlad/nexgraph/internal/model"
	"github.com/specialistvlad/nexgraph/internal/relation"
)

// Edge connects a source node to a target node. An edge without a source is
// a root edge: the branch above a root.
//
// Endpoints are either resolved nodes or raw identifiers. Queries resolve
// both forms against the owning graph's nodes by identifier.
type Edge struct {
	id       string
	label    string
	source   *Node
	sourceID string
	target   *Node
	targetID string
	length   *float64
	tree     relation.Ref[Phylogeny, *Edge]
}

// NewEdge creates an edge. Accepted properties: label, source, target
// (identifiers kept unresolved) and length.
func NewEdge(id string, props map[string]string) (*Edge, error) {
	e := &Edge{id: id}
	if err := e.SetProperties(props); err != nil {
		return nil, err
	}
	return e, nil
}

// ID returns the identifier.
func (e *Edge) ID() string { return e.id }

// Label returns the label.
func (e *Edge) Label() string { return e.label }

// SetLabel sets the label.
func (e *Edge) SetLabel(label string) { e.label = label }

// Source returns the resolved source node, if any.
func (e *Edge) Source() *Node { return e.source }

// SourceID returns the source identifier, resolved or not.
func (e *Edge) SourceID() string {
	if e.source != nil {
		return e.source.ID()
	}
	return e.sourceID
}

// SetSource sets the source node. A nil node makes e a root edge.
func (e *Edge) SetSource(n *Node) { e.source, e.sourceID = n, "" }

// SetSourceID records an unresolved source identifier.
func (e *Edge) SetSourceID(id string) { e.source, e.sourceID = nil, id }

// Target returns the resolved target node, if any.
func (e *Edge) Target() *Node { return e.target }

// TargetID returns the target identifier, resolved or not.
func (e *Edge) TargetID() string {
	if e.target != nil {
		return e.target.ID()
	}
	return e.targetID
}

// SetTarget sets the target node. Inside a tree the new target must not be
// claimed by another edge.
func (e *Edge) SetTarget(n *Node) error {
	return e.guard(func() { e.target, e.targetID = n, "" })
}

// SetTargetID records an unresolved target identifier, under the same rule
// as SetTarget.
func (e *Edge) SetTargetID(id string) error {
	return e.guard(func() { e.target, e.targetID = nil, id })
}

// Length returns the branch length and whether one is set.
func (e *Edge) Length() (float64, bool) {
	if e.length == nil {
		return 0, false
	}
	return *e.length, true
}

// SetLength sets the branch length.
func (e *Edge) SetLength(length float64) { e.length = &length }

// ClearLength removes the branch length.
func (e *Edge) ClearLength() { e.length = nil }

// IsRootEdge reports whether the edge has no source.
func (e *Edge) IsRootEdge() bool { return e.SourceID() == "" }

// Tree returns the tree or network holding the edge, or nil.
func (e *Edge) Tree() Phylogeny { return edgeTree.Owner(e) }

// SetTree moves the edge into p. A nil p detaches it.
func (e *Edge) SetTree(p Phylogeny) error { return edgeTree.Set(e, p) }

// guard applies change and re-validates e against its owner's checks,
// restoring the previous state on failure.
func (e *Edge) guard(change func()) error {
	saved := *e
	change()
	if p := e.Tree(); p != nil {
		if err := p.graph().checkEdge(e); err != nil {
			*e = saved
			return err
		}
	}
	return nil
}

func (e *Edge) setters() model.Setters {
	return model.Setters{
		"label": model.String(&e.label),
		"source": func(v string) (func(), error) {
			return func() { e.SetSourceID(v) }, nil
		},
		"target": func(v string) (func(), error) {
			return func() { e.target, e.targetID = nil, v }, nil
		},
		"length": model.Float(&e.length),
	}
}

// SetProperty sets a single named property.
func (e *Edge) SetProperty(name, value string) error {
	return e.SetProperties(map[string]string{name: value})
}

// SetProperties sets several named properties, all or none.
func (e *Edge) SetProperties(props map[string]string) error {
	var err error
	guardErr := e.guard(func() {
		err = model.Apply("edge", e.setters(), props)
	})
	if err != nil {
		return err
	}
	return guardErr
}
