package nexml

import "github.com/specialistvlad/nexgraph/internal/graph"

// Summary is a flat description of a document, suitable for reports.
type Summary struct {
	Version   string         `yaml:"version" json:"version"`
	Generator string         `yaml:"generator,omitempty" json:"generator,omitempty"`
	Otus      []OtusSummary  `yaml:"otus" json:"otus"`
	Trees     []TreesSummary `yaml:"trees" json:"trees"`
}

// OtusSummary describes one taxon set.
type OtusSummary struct {
	ID    string   `yaml:"id" json:"id"`
	Label string   `yaml:"label,omitempty" json:"label,omitempty"`
	Otus  []string `yaml:"otus" json:"otus"`
}

// TreesSummary describes one tree collection.
type TreesSummary struct {
	ID          string             `yaml:"id" json:"id"`
	Label       string             `yaml:"label,omitempty" json:"label,omitempty"`
	Otus        string             `yaml:"otus,omitempty" json:"otus,omitempty"`
	Phylogenies []PhylogenySummary `yaml:"phylogenies" json:"phylogenies"`
}

// PhylogenySummary describes one tree or network.
type PhylogenySummary struct {
	ID       string   `yaml:"id" json:"id"`
	Kind     string   `yaml:"kind" json:"kind"`
	Label    string   `yaml:"label,omitempty" json:"label,omitempty"`
	Nodes    int      `yaml:"nodes" json:"nodes"`
	Edges    int      `yaml:"edges" json:"edges"`
	Roots    []string `yaml:"roots" json:"roots"`
	RootEdge string   `yaml:"rootedge,omitempty" json:"rootedge,omitempty"`
}

// Summary describes d.
func (d *Document) Summary() Summary {
	s := Summary{
		Version:   d.version,
		Generator: d.generator,
		Otus:      []OtusSummary{},
		Trees:     []TreesSummary{},
	}
	for _, set := range d.Otus() {
		entry := OtusSummary{ID: set.ID(), Label: set.Label(), Otus: []string{}}
		for _, o := range set.Otus() {
			entry.Otus = append(entry.Otus, o.ID())
		}
		s.Otus = append(s.Otus, entry)
	}
	for _, forest := range d.Trees() {
		ts := TreesSummary{
			ID:          forest.ID(),
			Label:       forest.Label(),
			Otus:        forest.OtusID(),
			Phylogenies: []PhylogenySummary{},
		}
		forest.Each(func(p graph.Phylogeny) {
			ts.Phylogenies = append(ts.Phylogenies, summarize(p))
		})
		s.Trees = append(s.Trees, ts)
	}
	return s
}

func summarize(p graph.Phylogeny) PhylogenySummary {
	ps := PhylogenySummary{
		ID:    p.ID(),
		Kind:  p.Kind(),
		Label: p.Label(),
		Nodes: p.NumberOfNodes(),
		Edges: p.NumberOfEdges(),
		Roots: []string{},
	}
	for _, r := range p.Roots() {
		ps.Roots = append(ps.Roots, r.ID())
	}
	if re := p.RootEdge(); re != nil {
		ps.RootEdge = re.ID()
	}
	return ps
}
