package rdf

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/matryer/is"

	"github.com/diwise/dataset-catalog/internal/pkg/infrastructure/rdf/vocabulary"
)

func TestAddIsIdempotent(t *testing.T) {
	is := is.New(t)
	g := NewGraph()

	r := g.Resource("http://example.com/ds")
	r.Add(vocabulary.RDFType, vocabulary.DCATDataset)
	r.Add(vocabulary.RDFType, vocabulary.DCATDataset)
	g.Resource("http://example.com/ds").Add(vocabulary.RDFType, vocabulary.DCATDataset)

	is.Equal(g.Len(), 1) // duplicate triples should be ignored
	is.Equal(r.Len(), 1)
}

func TestRemoveDeletesOnlyTheGivenTriple(t *testing.T) {
	is := is.New(t)
	g := NewGraph()

	r := g.Resource("http://example.com/ds")
	r.Add(vocabulary.DCTTitle, quad.LangString{Value: "a", Lang: "nb"})
	r.Add(vocabulary.DCTTitle, quad.LangString{Value: "b", Lang: "en"})
	r.Remove(vocabulary.DCTTitle, quad.LangString{Value: "a", Lang: "nb"})

	is.Equal(g.Len(), 1)
	is.Equal(r.Objects(vocabulary.DCTTitle), []quad.Value{quad.LangString{Value: "b", Lang: "en"}})
}

func TestRemovedTriplesCanBeAddedAgain(t *testing.T) {
	is := is.New(t)
	g := NewGraph()

	ds := g.Resource("http://example.com/ds")
	ds.Add(vocabulary.RDFType, vocabulary.DCATDataset)

	for i := 0; i < 1000; i++ {
		node := g.NewBlankNode()
		ds.AddResource(vocabulary.DCATHasDistribution, node)
		node.Add(vocabulary.RDFType, vocabulary.DCATDistribution)
		node.Remove(vocabulary.RDFType, vocabulary.DCATDistribution)
		ds.Remove(vocabulary.DCATHasDistribution, node.Term())

		is.Equal(node.Len(), 0)
	}

	is.Equal(g.Len(), 1)  // only the type triple should remain
	is.Equal(ds.Len(), 1) // removed edges should not be counted
	is.Equal(g.Quads(), []quad.Quad{{Subject: quad.IRI("http://example.com/ds"), Predicate: vocabulary.RDFType, Object: vocabulary.DCATDataset}})

	ds.Add(vocabulary.DCTTitle, quad.String("a"))
	ds.Remove(vocabulary.RDFType, vocabulary.DCATDataset)
	ds.Add(vocabulary.RDFType, vocabulary.DCATDataset)

	is.Equal(ds.Len(), 2)
	is.True(g.Has(quad.IRI("http://example.com/ds"), vocabulary.RDFType, vocabulary.DCATDataset))
	is.Equal(g.Quads()[1].Predicate, vocabulary.RDFType) // a re-added triple should be ordered last
}

func TestBlankNodesAreUnique(t *testing.T) {
	is := is.New(t)
	g := NewGraph()

	a := g.NewBlankNode()
	b := g.NewBlankNode()

	is.True(a.IsBlank())
	is.True(a.Term() != b.Term()) // every call should allocate a new blank node
}

func TestSetNamespacesOnlyOnce(t *testing.T) {
	is := is.New(t)
	g := NewGraph()

	g.SetNamespaces(vocabulary.Namespaces())
	g.SetNamespaces(nil)

	is.Equal(len(g.Namespaces()), len(vocabulary.Namespaces())) // second call should not replace the prefix table
}

func TestIsomorphicIgnoresOrderAndBlankNodeLabels(t *testing.T) {
	is := is.New(t)

	a := NewGraph()
	ds := a.Resource("http://example.com/ds")
	dist := a.NewBlankNode()
	ds.AddResource(vocabulary.DCATHasDistribution, dist)
	dist.Add(vocabulary.RDFType, vocabulary.DCATDistribution)
	dist.Add(vocabulary.DCATAccessURL, quad.IRI("http://example.com/x"))
	ds.Add(vocabulary.RDFType, vocabulary.DCATDataset)

	b := NewGraph()
	b.NewBlankNode()
	other := b.NewBlankNode()
	other.Add(vocabulary.DCATAccessURL, quad.IRI("http://example.com/x"))
	other.Add(vocabulary.RDFType, vocabulary.DCATDistribution)
	bds := b.Resource("http://example.com/ds")
	bds.Add(vocabulary.RDFType, vocabulary.DCATDataset)
	bds.AddResource(vocabulary.DCATHasDistribution, other)

	is.True(Isomorphic(a, b)) // graphs should be isomorphic
	is.True(Isomorphic(b, a)) // isomorphism should be symmetric
}

func TestIsomorphicDistinguishesBlankNodeContents(t *testing.T) {
	is := is.New(t)

	build := func(first, second string) *Graph {
		g := NewGraph()
		ds := g.Resource("http://example.com/ds")
		for _, u := range []string{first, second} {
			n := g.NewBlankNode()
			n.Add(vocabulary.DCATAccessURL, quad.IRI(u))
			ds.AddResource(vocabulary.DCATHasDistribution, n)
		}
		return g
	}

	a := build("http://example.com/1", "http://example.com/2")
	b := build("http://example.com/2", "http://example.com/1")
	c := build("http://example.com/1", "http://example.com/3")

	is.True(Isomorphic(a, b))  // order of blank node creation should not matter
	is.True(!Isomorphic(a, c)) // different blank node contents should not be isomorphic
}

func TestIsomorphicRequiresSameStructure(t *testing.T) {
	is := is.New(t)

	// two distributions sharing one contact against two separate contacts
	shared := NewGraph()
	contact := shared.NewBlankNode()
	contact.Add(vocabulary.VCARDFn, quad.String("x"))
	for _, s := range []string{"http://example.com/a", "http://example.com/b"} {
		shared.Resource(s).AddResource(vocabulary.DCATContactPoint, contact)
	}

	separate := NewGraph()
	for _, s := range []string{"http://example.com/a", "http://example.com/b"} {
		c := separate.NewBlankNode()
		c.Add(vocabulary.VCARDFn, quad.String("x"))
		separate.Resource(s).AddResource(vocabulary.DCATContactPoint, c)
	}

	is.True(!Isomorphic(shared, separate)) // triple counts differ
}

func TestIsomorphicHandlesSymmetricBlankNodes(t *testing.T) {
	is := is.New(t)

	ring := func(n int) *Graph {
		g := NewGraph()
		nodes := []*Resource{}
		for i := 0; i < n; i++ {
			nodes = append(nodes, g.NewBlankNode())
		}
		for i := range nodes {
			nodes[i].AddResource(vocabulary.DCATNext, nodes[(i+1)%n])
		}
		return g
	}

	twoRings := NewGraph()
	for r := 0; r < 2; r++ {
		a, b, c := twoRings.NewBlankNode(), twoRings.NewBlankNode(), twoRings.NewBlankNode()
		a.AddResource(vocabulary.DCATNext, b)
		b.AddResource(vocabulary.DCATNext, c)
		c.AddResource(vocabulary.DCATNext, a)
	}

	is.True(Isomorphic(ring(6), ring(6)))   // identical rings should match
	is.True(!Isomorphic(ring(6), twoRings)) // one ring of six is not two rings of three
}

func dump(t *testing.T, g *Graph) string {
	var buf bytes.Buffer
	if err := WriteNQuads(&buf, g); err != nil {
		t.Fatalf("unable to dump graph: %s", err.Error())
	}
	return buf.String()
}

func TestWriteNQuads(t *testing.T) {
	is := is.New(t)

	g := NewGraph()
	g.Resource("http://example.com/ds").Add(vocabulary.RDFType, vocabulary.DCATDataset)

	out := dump(t, g)
	is.True(strings.HasPrefix(out, "<http://example.com/ds> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/ns/dcat#Dataset>")) // unexpected n-quads output
	is.True(strings.HasSuffix(out, ".\n"))
}

func TestWriteNQuadsWritesTheWholeGraph(t *testing.T) {
	is := is.New(t)

	g := NewGraph()
	ds := g.Resource("http://example.com/ds")
	for i := 0; i < 500; i++ {
		ds.Add(vocabulary.DCATKeyword, quad.LangString{Value: quad.String(fmt.Sprintf("keyword %d", i)), Lang: "nb"})
	}

	out := dump(t, g)
	is.Equal(strings.Count(out, "\n"), 500) // every triple should be flushed to the output
	is.True(strings.Contains(out, `"keyword 499"@nb`))
}
