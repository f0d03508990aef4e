// Package graph provides the tree side of the phylogenetic object graph:
// nodes, edges, trees, networks and the forest container that holds them.
//
// # Why Graph Package Exists
//
// A phylogeny is stored as an unoriented set of edges. The same edge set
// reads differently depending on which node is taken as the root, and a
// tree may carry several roots at once. This package keeps that storage
// consistent and answers orientation-dependent questions on demand.
//
// # Key Types
//
// **Phylogeny** (phylogeny.go): the closed set of graph kinds, *Tree and
// *Network. Both own their nodes and edges through the relation engine, so
// Node.SetTree and Tree.AddNode are two views of the same operation.
//
// **Tree** (tree.go): enforces the single-parent rule. Adding an edge whose
// target is already the target of another edge fails with
// ErrStructuralViolation and leaves the tree untouched.
//
// **Network** (network.go): the same shape without the single-parent rule.
//
// **Trees** (trees.go): a forest with separate stores for trees and networks.
//
// # Root-Relative Queries
//
// Parent, Children, Ancestors, Descendants and LowestCommonAncestor each take
// optional roots and fall back to Roots(). They answer once per root, as a
// map keyed by root, from a breadth-first walk over the undirected adjacency
// built at call time. Nothing is cached between calls:
//
//	parents, err := tree.Parent(leaf)
//	if errors.Is(err, graph.ErrUnrootedTree) {
//	    // no node flagged root and none supplied
//	}
//	for root, parent := range parents {
//	    ...
//	}
//
// # Thread-Safety
//
// None. A graph has a single writer.
package graph
