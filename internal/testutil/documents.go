package testutil

// Small NeXML documents shared by tests that read whole files.
const (
	// TaxaDocument holds one taxon set and no trees.
	TaxaDocument = `<?xml version="1.0" encoding="UTF-8"?>
<nexml version="0.9" generator="testutil">
  <otus id="taxa1" label="Apes">
    <otu id="t1" label="Homo"/>
    <otu id="t2" label="Pan"/>
  </otus>
</nexml>
`

	// TreeDocument holds one taxon set and a rooted four-node tree.
	TreeDocument = `<?xml version="1.0" encoding="UTF-8"?>
<nexml version="0.9" generator="testutil">
  <otus id="taxa1">
    <otu id="t1" label="Homo"/>
    <otu id="t2" label="Pan"/>
    <otu id="t3" label="Gorilla"/>
  </otus>
  <trees id="trees1" otus="taxa1">
    <tree id="tree1" label="ape tree">
      <node id="n1" root="true"/>
      <node id="n2"/>
      <node id="n3" otu="t3"/>
      <node id="n4" otu="t1"/>
      <node id="n5" otu="t2"/>
      <rootedge id="re" target="n1" length="0.1"/>
      <edge id="e1" source="n1" target="n2"/>
      <edge id="e2" source="n1" target="n3" length="1.5"/>
      <edge id="e3" source="n2" target="n4"/>
      <edge id="e4" source="n2" target="n5"/>
    </tree>
  </trees>
</nexml>
`

	// BrokenDocument ends in the middle of a taxon set.
	BrokenDocument = `<nexml version="0.9"><otus id="taxa1"><otu id="t1"/>`
)
