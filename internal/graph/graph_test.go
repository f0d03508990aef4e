package graph

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/nexgraph/internal/model"
	"github.com/specialistvlad/nexgraph/internal/relation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNode(t *testing.T, id string, props map[string]string) *Node {
	t.Helper()
	n, err := NewNode(id, props)
	require.NoError(t, err)
	return n
}

func mustEdge(t *testing.T, id, source, target string) *Edge {
	t.Helper()
	e, err := NewEdge(id, map[string]string{"source": source, "target": target})
	require.NoError(t, err)
	return e
}

func mustTree(t *testing.T, id string) *Tree {
	t.Helper()
	tr, err := NewTree(id, nil)
	require.NoError(t, err)
	return tr
}

func mustNetwork(t *testing.T, id string) *Network {
	t.Helper()
	nw, err := NewNetwork(id, nil)
	require.NoError(t, err)
	return nw
}

func nodeIDs(nodes []*Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID())
	}
	return out
}

// fixture is the tree
//
//	r
//	├── a
//	│   ├── c
//	│   └── d
//	└── b
type fixture struct {
	tree          *Tree
	r, a, b, c, d *Node
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	f := fixture{
		tree: mustTree(t, "t1"),
		r:    mustNode(t, "r", map[string]string{"root": "true"}),
		a:    mustNode(t, "a", nil),
		b:    mustNode(t, "b", nil),
		c:    mustNode(t, "c", nil),
		d:    mustNode(t, "d", nil),
	}
	f.tree.AddNode(f.r).AddNode(f.a).AddNode(f.b).AddNode(f.c).AddNode(f.d)
	for _, e := range []*Edge{
		mustEdge(t, "e1", "r", "a"),
		mustEdge(t, "e2", "r", "b"),
		mustEdge(t, "e3", "a", "c"),
		mustEdge(t, "e4", "a", "d"),
	} {
		require.NoError(t, f.tree.AddEdge(e))
	}
	return f
}

func assertMethods(t *testing.T, v any, names ...string) {
	t.Helper()
	typ := reflect.TypeOf(v)
	for _, name := range names {
		_, ok := typ.MethodByName(name)
		assert.True(t, ok, "%s is missing %s", typ, name)
	}
}

func family(m relation.MethodSet) []string {
	return []string{m.Add, m.Delete, m.Values, m.Replace, m.Get, m.Has, m.HasID, m.Count, m.Each, m.EachWithID}
}

func TestMethodFamilies(t *testing.T) {
	assertMethods(t, &Tree{}, family(phylogenyNodes.Methods())...)
	assertMethods(t, &Tree{}, family(treeEdges.Methods())...)
	assertMethods(t, &Network{}, family(phylogenyNodes.Methods())...)
	assertMethods(t, &Network{}, family(networkEdges.Methods())...)
	assertMethods(t, &Trees{}, family(forestTrees.Methods())...)
	assertMethods(t, &Trees{}, family(forestNetworks.Methods())...)
}

func TestTree_AddNode(t *testing.T) {
	tr := mustTree(t, "t1")
	n := mustNode(t, "n1", map[string]string{"label": "leaf"})

	assert.Same(t, tr, tr.AddNode(n))
	assert.Equal(t, Phylogeny(tr), n.Tree())
	assert.True(t, tr.HasNode(n))
	assert.True(t, tr.HasNodeID("n1"))
	got, ok := tr.GetNodeByID("n1")
	require.True(t, ok)
	assert.Same(t, n, got)
	assert.Equal(t, "leaf", got.Label())

	removed, ok := tr.DeleteNode(n)
	require.True(t, ok)
	assert.Same(t, n, removed)
	assert.Nil(t, n.Tree())
	assert.Equal(t, 0, tr.NumberOfNodes())
}

func TestNode_SetTree_MovesBetweenGraphs(t *testing.T) {
	tr, nw := mustTree(t, "t1"), mustNetwork(t, "n1")
	n := mustNode(t, "x", nil)

	require.NoError(t, n.SetTree(tr))
	require.NoError(t, n.SetTree(nw))

	assert.False(t, tr.HasNode(n))
	assert.True(t, nw.HasNode(n))
	assert.Equal(t, Phylogeny(nw), n.Tree())
}

func TestTree_AddEdge_SingleParent(t *testing.T) {
	tr := mustTree(t, "t1")
	n1, n2, n3 := mustNode(t, "n1", nil), mustNode(t, "n2", nil), mustNode(t, "n3", nil)
	tr.AddNode(n1).AddNode(n2).AddNode(n3)

	e1 := &Edge{id: "e1"}
	e1.SetSource(n1)
	require.NoError(t, e1.SetTarget(n2))
	require.NoError(t, tr.AddEdge(e1))

	e2 := &Edge{id: "e2"}
	e2.SetSource(n3)
	require.NoError(t, e2.SetTarget(n2))

	err := tr.AddEdge(e2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStructuralViolation)
	assert.True(t, IsStructuralViolation(err))

	var se *StructuralError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "t1", se.Phylogeny)
	assert.Equal(t, "e2", se.Edge)

	assert.Equal(t, 1, tr.NumberOfEdges())
	assert.False(t, tr.HasEdge(e2))
	assert.Nil(t, e2.Tree())
}

func TestTree_AddEdge_RawTargetsCollide(t *testing.T) {
	tr := mustTree(t, "t1")
	require.NoError(t, tr.AddEdge(mustEdge(t, "e1", "n1", "n2")))

	err := tr.AddEdge(mustEdge(t, "e2", "n3", "n2"))
	assert.ErrorIs(t, err, ErrStructuralViolation)

	// Re-adding under the same identifier replaces rather than conflicts.
	require.NoError(t, tr.AddEdge(mustEdge(t, "e1", "n4", "n2")))
	assert.Equal(t, 1, tr.NumberOfEdges())
}

func TestTree_SetEdges_Atomic(t *testing.T) {
	tr := mustTree(t, "t1")
	kept := mustEdge(t, "e1", "a", "b")
	require.NoError(t, tr.AddEdge(kept))

	err := tr.SetEdges([]*Edge{mustEdge(t, "x", "a", "c"), mustEdge(t, "y", "b", "c")})
	require.ErrorIs(t, err, ErrStructuralViolation)
	if diff := cmp.Diff([]string{"e1"}, edgeIDs(tr.Edges())); diff != "" {
		t.Errorf("edges changed (-want +got):\n%s", diff)
	}
	assert.Equal(t, Phylogeny(tr), kept.Tree())
}

func edgeIDs(edges []*Edge) []string {
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.ID())
	}
	return out
}

func TestEdge_Retarget(t *testing.T) {
	tr := mustTree(t, "t1")
	e1, e2 := mustEdge(t, "e1", "a", "b"), mustEdge(t, "e2", "a", "c")
	require.NoError(t, tr.AddEdge(e1))
	require.NoError(t, tr.AddEdge(e2))

	err := e2.SetTargetID("b")
	require.ErrorIs(t, err, ErrStructuralViolation)
	assert.Equal(t, "c", e2.TargetID())

	err = e2.SetProperties(map[string]string{"target": "b", "label": "moved"})
	require.ErrorIs(t, err, ErrStructuralViolation)
	assert.Equal(t, "c", e2.TargetID())
	assert.Empty(t, e2.Label())

	require.NoError(t, e2.SetTargetID("d"))
	assert.Equal(t, "d", e2.TargetID())
}

func TestNetwork_AllowsReticulation(t *testing.T) {
	nw := mustNetwork(t, "net1")
	require.NoError(t, nw.AddEdge(mustEdge(t, "e1", "n1", "h")))
	require.NoError(t, nw.AddEdge(mustEdge(t, "e2", "n2", "h")))
	assert.Equal(t, 2, nw.NumberOfEdges())
}

func TestEdge_Properties(t *testing.T) {
	e, err := NewEdge("e1", map[string]string{"source": "a", "target": "b", "length": "1.5", "label": "x"})
	require.NoError(t, err)

	length, ok := e.Length()
	require.True(t, ok)
	assert.InDelta(t, 1.5, length, 1e-9)
	assert.Equal(t, "a", e.SourceID())
	assert.Equal(t, "b", e.TargetID())
	assert.False(t, e.IsRootEdge())

	_, err = NewEdge("e2", map[string]string{"weight": "3"})
	assert.ErrorIs(t, err, model.ErrUnconfiguredProperty)
}

func TestSetRootEdge(t *testing.T) {
	tr := mustTree(t, "t1")

	withSource := mustEdge(t, "re", "x", "r")
	require.ErrorIs(t, tr.SetRootEdge(withSource), ErrStructuralViolation)
	assert.Nil(t, tr.RootEdge())

	re, err := NewEdge("re", map[string]string{"target": "r", "length": "0.1"})
	require.NoError(t, err)
	require.True(t, re.IsRootEdge())
	require.NoError(t, tr.SetRootEdge(re))
	assert.Same(t, re, tr.RootEdge())
	assert.Equal(t, 0, tr.NumberOfEdges())
}

func TestQueries_Unrooted(t *testing.T) {
	tr := mustTree(t, "t1")
	a, b := mustNode(t, "a", nil), mustNode(t, "b", nil)
	tr.AddNode(a).AddNode(b)
	require.NoError(t, tr.AddEdge(mustEdge(t, "e1", "a", "b")))

	calls := map[string]func() error{
		"parent":      func() error { _, err := tr.Parent(a); return err },
		"children":    func() error { _, err := tr.Children(a); return err },
		"ancestors":   func() error { _, err := tr.Ancestors(a); return err },
		"descendants": func() error { _, err := tr.Descendants(a); return err },
		"lca":         func() error { _, err := tr.LowestCommonAncestor(a, b); return err },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			assert.ErrorIs(t, err, ErrUnrootedTree)
			assert.True(t, IsUnrooted(err))
		})
	}
}

func TestQueries_FlaggedRoot(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, []*Node{f.r}, f.tree.Roots())

	parents, err := f.tree.Parent(f.c)
	require.NoError(t, err)
	assert.Equal(t, map[*Node]*Node{f.r: f.a}, parents)

	parents, err = f.tree.Parent(f.r)
	require.NoError(t, err)
	assert.Nil(t, parents[f.r])

	children, err := f.tree.Children(f.a)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, nodeIDs(children[f.r]))

	children, err = f.tree.Children(f.c)
	require.NoError(t, err)
	assert.Empty(t, children[f.r])

	ancestors, err := f.tree.Ancestors(f.c)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "r"}, nodeIDs(ancestors[f.r]))

	descendants, err := f.tree.Descendants(f.a)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, nodeIDs(descendants[f.r]))

	descendants, err = f.tree.Descendants(f.r)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, nodeIDs(descendants[f.r]))

	lca, err := f.tree.LowestCommonAncestor(f.c, f.d)
	require.NoError(t, err)
	assert.Same(t, f.a, lca[f.r])

	lca, err = f.tree.LowestCommonAncestor(f.c, f.b)
	require.NoError(t, err)
	assert.Same(t, f.r, lca[f.r])

	lca, err = f.tree.LowestCommonAncestor(f.a, f.d)
	require.NoError(t, err)
	assert.Same(t, f.a, lca[f.r])
}

func TestQueries_AnswersDifferPerRoot(t *testing.T) {
	f := newFixture(t)

	parents, err := f.tree.Parent(f.a, f.r, f.c)
	require.NoError(t, err)
	assert.Equal(t, map[*Node]*Node{f.r: f.r, f.c: f.c}, parents)

	children, err := f.tree.Children(f.a, f.r, f.c)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, nodeIDs(children[f.r]))
	assert.Equal(t, []string{"r", "d"}, nodeIDs(children[f.c]))

	ancestors, err := f.tree.Ancestors(f.b, f.c)
	require.NoError(t, err)
	assert.Equal(t, []string{"r", "a", "c"}, nodeIDs(ancestors[f.c]))

	descendants, err := f.tree.Descendants(f.a, f.c)
	require.NoError(t, err)
	assert.Equal(t, []string{"r", "d", "b"}, nodeIDs(descendants[f.c]))

	lca, err := f.tree.LowestCommonAncestor(f.r, f.d, f.c)
	require.NoError(t, err)
	assert.Same(t, f.a, lca[f.c])
}

func TestQueries_SeveralFlaggedRoots(t *testing.T) {
	f := newFixture(t)
	f.c.SetRoot(true)
	assert.Equal(t, []*Node{f.r, f.c}, f.tree.Roots())

	parents, err := f.tree.Parent(f.a)
	require.NoError(t, err)
	assert.Len(t, parents, 2)
	assert.Same(t, f.r, parents[f.r])
	assert.Same(t, f.c, parents[f.c])
}

func TestQueries_NotFound(t *testing.T) {
	f := newFixture(t)
	stranger := mustNode(t, "z", nil)

	_, err := f.tree.Parent(stranger)
	assert.ErrorIs(t, err, ErrNodeNotFound)

	_, err = f.tree.Children(f.a, stranger)
	assert.ErrorIs(t, err, ErrNodeNotFound)

	_, err = f.tree.LowestCommonAncestor(f.a, nil)
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestQueries_Disconnected(t *testing.T) {
	f := newFixture(t)
	island := mustNode(t, "island", nil)
	f.tree.AddNode(island)

	parents, err := f.tree.Parent(island)
	require.NoError(t, err)
	assert.Nil(t, parents[f.r])

	children, err := f.tree.Children(island)
	require.NoError(t, err)
	assert.Empty(t, children[f.r])

	lca, err := f.tree.LowestCommonAncestor(island, f.c)
	require.NoError(t, err)
	assert.Nil(t, lca[f.r])
}

func TestQueries_FollowMutation(t *testing.T) {
	f := newFixture(t)

	_, err := f.tree.Children(f.a)
	require.NoError(t, err)

	e, ok := f.tree.GetEdgeByID("e4")
	require.True(t, ok)
	_, ok = f.tree.DeleteEdge(e)
	require.True(t, ok)

	children, err := f.tree.Children(f.a)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, nodeIDs(children[f.r]))
}

func TestNetwork_Queries(t *testing.T) {
	nw := mustNetwork(t, "net1")
	r := mustNode(t, "r", map[string]string{"root": "true"})
	x, y, h := mustNode(t, "x", nil), mustNode(t, "y", nil), mustNode(t, "h", nil)
	nw.AddNode(r).AddNode(x).AddNode(y).AddNode(h)
	for _, e := range []*Edge{
		mustEdge(t, "e1", "r", "x"),
		mustEdge(t, "e2", "r", "y"),
		mustEdge(t, "e3", "x", "h"),
		mustEdge(t, "e4", "y", "h"),
	} {
		require.NoError(t, nw.AddEdge(e))
	}

	parents, err := nw.Parent(h)
	require.NoError(t, err)
	assert.Same(t, x, parents[r], "the first path found wins")

	descendants, err := nw.Descendants(x)
	require.NoError(t, err)
	assert.Equal(t, []string{"h"}, nodeIDs(descendants[r]))
}

func TestTrees_Append(t *testing.T) {
	forest, err := NewTrees("forest", map[string]string{"otus": "taxa1", "label": "all"})
	require.NoError(t, err)
	assert.Equal(t, "taxa1", forest.OtusID())

	tr, nw := mustTree(t, "t1"), mustNetwork(t, "n1")
	require.NoError(t, forest.Append(nw))
	require.NoError(t, forest.Append(tr))

	assert.Equal(t, 1, forest.NumberOfTrees())
	assert.Equal(t, 1, forest.NumberOfNetworks())
	assert.True(t, forest.HasNetwork(nw))
	assert.True(t, forest.HasTree(tr))
	assert.Same(t, forest, tr.Trees())
	assert.Same(t, forest, nw.Trees())

	require.Error(t, forest.Append(nil))
}

func TestTrees_GetAndEach(t *testing.T) {
	forest, err := NewTrees("forest", nil)
	require.NoError(t, err)

	net := mustNetwork(t, "shared")
	tree := mustTree(t, "shared")
	other := mustTree(t, "t2")
	forest.AddNetwork(net)
	forest.AddTree(tree).AddTree(other)

	got, ok := forest.Get("shared")
	require.True(t, ok)
	assert.Equal(t, "tree", got.Kind(), "tree store is searched first")

	_, ok = forest.Get("missing")
	assert.False(t, ok)

	var kinds []string
	forest.Each(func(p Phylogeny) { kinds = append(kinds, p.Kind()+":"+p.ID()) })
	assert.Equal(t, []string{"tree:shared", "tree:t2", "network:shared"}, kinds)
	assert.Equal(t, 3, forest.Len())
}

func TestTree_SetTrees(t *testing.T) {
	first, err := NewTrees("f1", nil)
	require.NoError(t, err)
	second, err := NewTrees("f2", nil)
	require.NoError(t, err)

	tr := mustTree(t, "t1")
	require.NoError(t, tr.SetTrees(first))
	require.NoError(t, tr.SetTrees(second))
	assert.Equal(t, 0, first.NumberOfTrees())
	assert.True(t, second.HasTree(tr))

	require.NoError(t, tr.SetTrees(nil))
	assert.Nil(t, tr.Trees())
}
