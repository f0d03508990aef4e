package graph

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/nexgraph/internal/keyedstore"
	"github.com/specialistvlad/nexgraph/internal/relation"
)

// Phylogeny is implemented by *Tree and *Network only.
type Phylogeny interface {
	ID() string
	Label() string
	// Kind returns "tree" or "network".
	Kind() string

	Nodes() []*Node
	Edges() []*Edge
	GetNodeByID(id string) (*Node, bool)
	GetEdgeByID(id string) (*Edge, bool)
	NumberOfNodes() int
	NumberOfEdges() int
	Roots() []*Node
	RootEdge() *Edge

	Parent(n *Node, roots ...*Node) (map[*Node]*Node, error)
	Children(n *Node, roots ...*Node) (map[*Node][]*Node, error)
	Ancestors(n *Node, roots ...*Node) (map[*Node][]*Node, error)
	Descendants(n *Node, roots ...*Node) (map[*Node][]*Node, error)
	LowestCommonAncestor(a, b *Node, roots ...*Node) (map[*Node]*Node, error)

	graph() *base
}

func nodeLink(n *Node) *relation.Ref[Phylogeny, *Node] { return &n.tree }
func edgeLink(e *Edge) *relation.Ref[Phylogeny, *Edge] { return &e.tree }

var (
	phylogenyNodes = relation.NewHasMany("nodes", nodeLink)
	treeEdges      = relation.NewHasMany("edges", edgeLink).WithCheck(singleParent)
	networkEdges   = relation.NewHasMany("edges", edgeLink)

	nodeTree = relation.NewBelongsTo("tree", nodeLink, func(p Phylogeny) *relation.Members[Phylogeny, *Node] {
		return p.graph().nodes
	})
	edgeTree = relation.NewBelongsTo("tree", edgeLink, func(p Phylogeny) *relation.Members[Phylogeny, *Edge] {
		return p.graph().edges
	})
)

// singleParent rejects an edge whose target another edge already claims.
func singleParent(current *keyedstore.Store[*Edge], e *Edge) error {
	target := e.TargetID()
	if target == "" {
		return nil
	}
	var err error
	current.Each(func(other *Edge) {
		if err == nil && other.ID() != e.ID() && other.TargetID() == target {
			err = &StructuralError{
				Edge:   e.ID(),
				Reason: fmt.Sprintf("targets node %s, already the target of edge %s", target, other.ID()),
			}
		}
	})
	return err
}

// base is the state and behaviour Tree and Network share.
type base struct {
	kind     string
	id       string
	label    string
	nodes    *relation.Members[Phylogeny, *Node]
	edges    *relation.Members[Phylogeny, *Edge]
	rootEdge *Edge
}

func (b *base) graph() *base { return b }

// ID returns the identifier.
func (b *base) ID() string { return b.id }

// Kind returns "tree" or "network".
func (b *base) Kind() string { return b.kind }

// Label returns the label.
func (b *base) Label() string { return b.label }

// SetLabel sets the label.
func (b *base) SetLabel(label string) { b.label = label }

// annotate fills in the graph identity on structural errors raised by checks.
func (b *base) annotate(err error) error {
	var se *StructuralError
	if errors.As(err, &se) && se.Phylogeny == "" {
		se.Kind, se.Phylogeny = b.kind, b.id
	}
	return err
}

func (b *base) checkEdge(e *Edge) error {
	return b.annotate(b.edges.Check(e))
}

// DeleteNode removes the node stored under n's identifier.
func (b *base) DeleteNode(n *Node) (*Node, bool) { return b.nodes.Delete(n) }

// Nodes returns the nodes in insertion order.
func (b *base) Nodes() []*Node { return b.nodes.Values() }

// SetNodes replaces the nodes.
func (b *base) SetNodes(nodes []*Node) error { return b.nodes.Replace(nodes) }

// GetNodeByID looks a node up by identifier.
func (b *base) GetNodeByID(id string) (*Node, bool) { return b.nodes.Get(id) }

// HasNode reports whether n itself belongs to the graph.
func (b *base) HasNode(n *Node) bool { return n != nil && b.nodes.Has(n) }

// HasNodeID reports whether a node is stored under id.
func (b *base) HasNodeID(id string) bool { return b.nodes.HasID(id) }

// NumberOfNodes returns the number of nodes.
func (b *base) NumberOfNodes() int { return b.nodes.Len() }

// EachNode calls fn for every node in insertion order.
func (b *base) EachNode(fn func(*Node)) { b.nodes.Each(fn) }

// EachNodeWithID calls fn with every identifier and node.
func (b *base) EachNodeWithID(fn func(string, *Node)) { b.nodes.EachWithID(fn) }

// AddEdge adds e, taking it from any other graph. A tree rejects an edge
// whose target is already claimed and is then left unchanged.
func (b *base) AddEdge(e *Edge) error {
	_, err := b.edges.Add(e)
	return b.annotate(err)
}

// DeleteEdge removes the edge stored under e's identifier.
func (b *base) DeleteEdge(e *Edge) (*Edge, bool) { return b.edges.Delete(e) }

// Edges returns the edges in insertion order.
func (b *base) Edges() []*Edge { return b.edges.Values() }

// SetEdges replaces the edges. Nothing changes if any edge is rejected.
func (b *base) SetEdges(edges []*Edge) error { return b.annotate(b.edges.Replace(edges)) }

// GetEdgeByID looks an edge up by identifier.
func (b *base) GetEdgeByID(id string) (*Edge, bool) { return b.edges.Get(id) }

// HasEdge reports whether e itself belongs to the graph.
func (b *base) HasEdge(e *Edge) bool { return e != nil && b.edges.Has(e) }

// HasEdgeID reports whether an edge is stored under id.
func (b *base) HasEdgeID(id string) bool { return b.edges.HasID(id) }

// NumberOfEdges returns the number of edges.
func (b *base) NumberOfEdges() int { return b.edges.Len() }

// EachEdge calls fn for every edge in insertion order.
func (b *base) EachEdge(fn func(*Edge)) { b.edges.Each(fn) }

// EachEdgeWithID calls fn with every identifier and edge.
func (b *base) EachEdgeWithID(fn func(string, *Edge)) { b.edges.EachWithID(fn) }

// Roots returns the nodes flagged as roots, in node insertion order.
func (b *base) Roots() []*Node {
	var roots []*Node
	b.nodes.Each(func(n *Node) {
		if n.IsRoot() {
			roots = append(roots, n)
		}
	})
	return roots
}

// RootEdge returns the edge above the root, if any. It is not one of Edges.
func (b *base) RootEdge() *Edge { return b.rootEdge }

// SetRootEdge sets the edge above the root. The edge must have no source;
// nil clears it.
func (b *base) SetRootEdge(e *Edge) error {
	if e != nil && !e.IsRootEdge() {
		return &StructuralError{
			Kind:      b.kind,
			Phylogeny: b.id,
			Edge:      e.ID(),
			Reason:    fmt.Sprintf("has source %s and cannot be a root edge", e.SourceID()),
		}
	}
	b.rootEdge = e
	return nil
}
