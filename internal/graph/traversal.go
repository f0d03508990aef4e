package graph

import "fmt"

// adjacency is the undirected neighbour list of every connected node, in
// edge insertion order.
type adjacency map[*Node][]*Node

// adjacency resolves every edge's endpoints against the node store. Edges
// with an endpoint outside the graph, root edges included, are ignored.
func (b *base) adjacency() adjacency {
	adj := make(adjacency, b.nodes.Len())
	b.edges.Each(func(e *Edge) {
		src, ok := b.nodes.Get(e.SourceID())
		if !ok {
			return
		}
		dst, ok := b.nodes.Get(e.TargetID())
		if !ok {
			return
		}
		adj[src] = append(adj[src], dst)
		if src != dst {
			adj[dst] = append(adj[dst], src)
		}
	})
	return adj
}

// walk is the breadth-first search tree grown from one root.
type walk struct {
	root   *Node
	parent map[*Node]*Node
	depth  map[*Node]int
	order  []*Node
}

func (adj adjacency) walk(root *Node) *walk {
	w := &walk{
		root:   root,
		parent: make(map[*Node]*Node),
		depth:  map[*Node]int{root: 0},
		order:  []*Node{root},
	}
	for i := 0; i < len(w.order); i++ {
		current := w.order[i]
		for _, next := range adj[current] {
			if _, seen := w.depth[next]; seen {
				continue
			}
			w.depth[next] = w.depth[current] + 1
			w.parent[next] = current
			w.order = append(w.order, next)
		}
	}
	return w
}

func (w *walk) reached(n *Node) bool {
	_, ok := w.depth[n]
	return ok
}

// path returns the nodes from the root down to n inclusive, or nil when n
// cannot be reached.
func (w *walk) path(n *Node) []*Node {
	depth, ok := w.depth[n]
	if !ok {
		return nil
	}
	path := make([]*Node, depth+1)
	for i := depth; i >= 0; i-- {
		path[i] = n
		n = w.parent[n]
	}
	return path
}

// prepare validates the query nodes and picks the roots to answer for.
func (b *base) prepare(roots []*Node, nodes ...*Node) ([]*Node, adjacency, error) {
	for _, n := range nodes {
		if !b.HasNode(n) {
			return nil, nil, b.notFound(n)
		}
	}
	if len(roots) == 0 {
		roots = b.Roots()
	}
	if len(roots) == 0 {
		return nil, nil, fmt.Errorf("%w: %s %s has no root", ErrUnrootedTree, b.kind, b.id)
	}
	for _, r := range roots {
		if !b.HasNode(r) {
			return nil, nil, b.notFound(r)
		}
	}
	return roots, b.adjacency(), nil
}

func (b *base) notFound(n *Node) error {
	if n == nil {
		return fmt.Errorf("%w: nil node in %s %s", ErrNodeNotFound, b.kind, b.id)
	}
	return fmt.Errorf("%w: %s in %s %s", ErrNodeNotFound, n.ID(), b.kind, b.id)
}

// Parent returns, per root, the neighbour of n on the shortest path back to
// that root. The value is nil when n is the root or is not connected to it.
func (b *base) Parent(n *Node, roots ...*Node) (map[*Node]*Node, error) {
	roots, adj, err := b.prepare(roots, n)
	if err != nil {
		return nil, err
	}
	out := make(map[*Node]*Node, len(roots))
	for _, root := range roots {
		out[root] = adj.walk(root).parent[n]
	}
	return out, nil
}

// Children returns, per root, the neighbours of n other than its parent.
// A node not connected to the root has no children.
func (b *base) Children(n *Node, roots ...*Node) (map[*Node][]*Node, error) {
	roots, adj, err := b.prepare(roots, n)
	if err != nil {
		return nil, err
	}
	out := make(map[*Node][]*Node, len(roots))
	for _, root := range roots {
		w := adj.walk(root)
		children := []*Node{}
		if w.reached(n) {
			parent := w.parent[n]
			seen := map[*Node]bool{n: true}
			for _, m := range adj[n] {
				if m == parent || seen[m] {
					continue
				}
				seen[m] = true
				children = append(children, m)
			}
		}
		out[root] = children
	}
	return out, nil
}

// Ancestors returns, per root, the nodes between n and the root, nearest
// first and ending with the root itself.
func (b *base) Ancestors(n *Node, roots ...*Node) (map[*Node][]*Node, error) {
	roots, adj, err := b.prepare(roots, n)
	if err != nil {
		return nil, err
	}
	out := make(map[*Node][]*Node, len(roots))
	for _, root := range roots {
		path := adj.walk(root).path(n)
		ancestors := []*Node{}
		for i := len(path) - 2; i >= 0; i-- {
			ancestors = append(ancestors, path[i])
		}
		out[root] = ancestors
	}
	return out, nil
}

// Descendants returns, per root, every node whose path from the root passes
// through n, in breadth-first order.
func (b *base) Descendants(n *Node, roots ...*Node) (map[*Node][]*Node, error) {
	roots, adj, err := b.prepare(roots, n)
	if err != nil {
		return nil, err
	}
	out := make(map[*Node][]*Node, len(roots))
	for _, root := range roots {
		w := adj.walk(root)
		descendants := []*Node{}
		if w.reached(n) {
			below := map[*Node]bool{n: true}
			for _, m := range w.order[1:] {
				if below[w.parent[m]] {
					below[m] = true
					descendants = append(descendants, m)
				}
			}
		}
		out[root] = descendants
	}
	return out, nil
}

// LowestCommonAncestor returns, per root, the deepest node shared by the
// paths from the root to a and to b. It is nil when either is unreachable.
func (b *base) LowestCommonAncestor(a, c *Node, roots ...*Node) (map[*Node]*Node, error) {
	roots, adj, err := b.prepare(roots, a, c)
	if err != nil {
		return nil, err
	}
	out := make(map[*Node]*Node, len(roots))
	for _, root := range roots {
		w := adj.walk(root)
		pa, pc := w.path(a), w.path(c)
		var lca *Node
		for i := 0; i < len(pa) && i < len(pc) && pa[i] == pc[i]; i++ {
			lca = pa[i]
		}
		out[root] = lca
	}
	return out, nil
}
