package reader

import (
	"github.com/specialistvlad/nexgraph/internal/graph"
	"github.com/specialistvlad/nexgraph/internal/model"
	"github.com/specialistvlad/nexgraph/internal/nexml"
)

// document reads the root element and everything beneath it.
func (rd *reader) document() (*nexml.Document, error) {
	if err := rd.scanTo("nexml", "document", 0); err != nil {
		return nil, err
	}
	doc, err := nexml.New(rd.attrs("version", "generator"))
	if err != nil {
		return nil, rd.fail("nexml", err, "invalid attributes")
	}
	rd.logger.Debug("Reading document.", "version", doc.Version(), "generator", doc.Generator())

	for {
		ok, err := rd.nextChild("nexml", 1)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		switch rd.cur.Name() {
		case "otus":
			set, err := rd.otus()
			if err != nil {
				return nil, err
			}
			doc.AddOtus(set)
		case "trees":
			forest, err := rd.trees(doc)
			if err != nil {
				return nil, err
			}
			doc.AddTrees(forest)
		default:
			if err := rd.skip(); err != nil {
				return nil, err
			}
		}
	}

	rd.logger.Debug("Finished reading document.", "otus", doc.NumberOfOtus(), "trees", doc.NumberOfTrees())
	return doc, nil
}

// otus reads a taxon set and its taxa.
func (rd *reader) otus() (*model.Otus, error) {
	depth := rd.cur.Depth()
	id, err := rd.id("otus")
	if err != nil {
		return nil, err
	}
	set, err := model.NewOtus(id, rd.attrs("label"))
	if err != nil {
		return nil, rd.fail("otus", err, "invalid attributes")
	}

	for {
		ok, err := rd.nextChild("otus", depth)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if rd.cur.Name() == "otu" {
			o, err := rd.otu()
			if err != nil {
				return nil, err
			}
			set.AddOtu(o)
			continue
		}
		if err := rd.skip(); err != nil {
			return nil, err
		}
	}

	rd.logger.Debug("Read taxon set.", "id", id, "otu_count", set.NumberOfOtus())
	return set, nil
}

func (rd *reader) otu() (*model.Otu, error) {
	id, err := rd.id("otu")
	if err != nil {
		return nil, err
	}
	o, err := model.NewOtu(id, rd.attrs("label"))
	if err != nil {
		return nil, rd.fail("otu", err, "invalid attributes")
	}
	return o, rd.skip()
}

// trees reads a tree collection with its trees and networks.
func (rd *reader) trees(doc *nexml.Document) (*graph.Trees, error) {
	depth := rd.cur.Depth()
	id, err := rd.id("trees")
	if err != nil {
		return nil, err
	}
	forest, err := graph.NewTrees(id, rd.attrs("label", "otus"))
	if err != nil {
		return nil, rd.fail("trees", err, "invalid attributes")
	}
	if rd.opts.ResolveReferences && forest.OtusID() != "" {
		set, ok := doc.GetOtusByID(forest.OtusID())
		if !ok {
			return nil, rd.fail("trees", nil, "otus %q does not name a taxon set", forest.OtusID())
		}
		forest.SetOtus(set)
	}

	for {
		ok, err := rd.nextChild("trees", depth)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		var p graph.Phylogeny
		switch rd.cur.Name() {
		case "tree":
			p, err = rd.phylogeny(doc, forest, "tree")
		case "network":
			p, err = rd.phylogeny(doc, forest, "network")
		default:
			err = rd.skip()
		}
		if err != nil {
			return nil, err
		}
		if p != nil {
			if err := forest.Append(p); err != nil {
				return nil, rd.fail("trees", err, "cannot add %s %s", p.Kind(), p.ID())
			}
		}
	}

	rd.logger.Debug("Read tree collection.", "id", id, "trees", forest.NumberOfTrees(), "networks", forest.NumberOfNetworks())
	return forest, nil
}

// buildable is the part of *graph.Tree and *graph.Network the reader fills.
type buildable interface {
	graph.Phylogeny
	AddEdge(e *graph.Edge) error
	SetRootEdge(e *graph.Edge) error
}

func (rd *reader) newPhylogeny(kind, id string) (buildable, error) {
	props := rd.attrs("label")
	if kind == "network" {
		return graph.NewNetwork(id, props)
	}
	return graph.NewTree(id, props)
}

// phylogeny reads a tree or network: nodes, an optional root edge and edges.
func (rd *reader) phylogeny(doc *nexml.Document, forest *graph.Trees, kind string) (graph.Phylogeny, error) {
	depth := rd.cur.Depth()
	id, err := rd.id(kind)
	if err != nil {
		return nil, err
	}
	p, err := rd.newPhylogeny(kind, id)
	if err != nil {
		return nil, rd.fail(kind, err, "invalid attributes")
	}

	for {
		ok, err := rd.nextChild(kind, depth)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		switch rd.cur.Name() {
		case "node":
			err = rd.node(doc, forest, p)
		case "rootedge":
			err = rd.rootEdge(p)
		case "edge":
			err = rd.edge(p)
		default:
			err = rd.skip()
		}
		if err != nil {
			return nil, err
		}
	}

	rd.logger.Debug("Read phylogeny.", "kind", kind, "id", id, "nodes", p.NumberOfNodes(), "edges", p.NumberOfEdges())
	return p, nil
}

func (rd *reader) node(doc *nexml.Document, forest *graph.Trees, p buildable) error {
	id, err := rd.id("node")
	if err != nil {
		return err
	}
	n, err := graph.NewNode(id, rd.attrs("label", "otu", "root"))
	if err != nil {
		return rd.fail("node", err, "invalid attributes")
	}
	if rd.opts.ResolveReferences && n.OtuID() != "" {
		o, ok := rd.findOtu(doc, forest, n.OtuID())
		if !ok {
			return rd.fail("node", nil, "otu %q does not name a taxon", n.OtuID())
		}
		n.SetOtu(o)
	}
	if err := n.SetTree(p); err != nil {
		return rd.fail("node", err, "cannot add node %s", id)
	}
	return rd.skip()
}

// findOtu looks in the collection's own taxon set first, then everywhere.
func (rd *reader) findOtu(doc *nexml.Document, forest *graph.Trees, id string) (*model.Otu, bool) {
	if set := forest.Otus(); set != nil {
		if o, ok := set.GetOtuByID(id); ok {
			return o, true
		}
	}
	return doc.FindOtu(id)
}

// readEdge builds an edge from the current element.
func (rd *reader) readEdge(kind string, p buildable, names ...string) (*graph.Edge, error) {
	id, err := rd.id(kind)
	if err != nil {
		return nil, err
	}
	if v, ok := rd.cur.Attr("target"); !ok || v == "" {
		return nil, rd.fail(kind, nil, "%s %s has no target", kind, id)
	}
	e, err := graph.NewEdge(id, rd.attrs(names...))
	if err != nil {
		return nil, rd.fail(kind, err, "invalid attributes")
	}
	if rd.opts.ResolveReferences {
		if err := rd.resolveEndpoints(kind, p, e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (rd *reader) resolveEndpoints(kind string, p buildable, e *graph.Edge) error {
	if source := e.SourceID(); source != "" {
		n, ok := p.GetNodeByID(source)
		if !ok {
			return rd.fail(kind, nil, "source %q does not name a node in %s %s", source, p.Kind(), p.ID())
		}
		e.SetSource(n)
	}
	target := e.TargetID()
	n, ok := p.GetNodeByID(target)
	if !ok {
		return rd.fail(kind, nil, "target %q does not name a node in %s %s", target, p.Kind(), p.ID())
	}
	return e.SetTarget(n)
}

func (rd *reader) rootEdge(p buildable) error {
	if p.RootEdge() != nil {
		return rd.fail("rootedge", nil, "%s %s already has a root edge", p.Kind(), p.ID())
	}
	e, err := rd.readEdge("rootedge", p, "label", "target", "length")
	if err != nil {
		return err
	}
	if err := p.SetRootEdge(e); err != nil {
		return rd.fail("rootedge", err, "cannot set root edge")
	}
	return rd.skip()
}

func (rd *reader) edge(p buildable) error {
	e, err := rd.readEdge("edge", p, "label", "source", "target", "length")
	if err != nil {
		return err
	}
	if err := p.AddEdge(e); err != nil {
		return rd.fail("edge", err, "cannot add edge %s", e.ID())
	}
	return rd.skip()
}
