package rdf

import (
	"fmt"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc"
)

//Graph is a mutable set of triples. Adding a triple that is already present
//is a no-op. Graphs are built per request and are not safe for concurrent use.
//
//Removed triples leave a tombstone in the insertion log that is skipped when
//the graph is read, so that adds and removes stay constant time.
type Graph struct {
	quads      []quad.Quad
	removed    []bool
	index      map[quad.Quad]int
	subjects   map[quad.Value][]int
	namespaces []voc.Namespace
	bnodes     int
}

func NewGraph() *Graph {
	return &Graph{
		index:    map[quad.Quad]int{},
		subjects: map[quad.Value][]int{},
	}
}

//SetNamespaces sets the prefix table used when the graph is serialized.
//Only the first call has any effect.
func (g *Graph) SetNamespaces(ns []voc.Namespace) {
	if g.namespaces != nil {
		return
	}
	g.namespaces = append([]voc.Namespace{}, ns...)
}

func (g *Graph) Namespaces() []voc.Namespace {
	return append([]voc.Namespace{}, g.namespaces...)
}

//Resource returns the resource identified by iri. Calling it twice with the
//same iri returns handles to the same graph node.
func (g *Graph) Resource(iri string) *Resource {
	return &Resource{graph: g, term: quad.IRI(iri)}
}

//NewBlankNode allocates an anonymous resource that is local to this graph
func (g *Graph) NewBlankNode() *Resource {
	g.bnodes++
	return &Resource{graph: g, term: quad.BNode(fmt.Sprintf("b%d", g.bnodes))}
}

func (g *Graph) Add(subject, predicate, object quad.Value) bool {
	q := quad.Quad{Subject: subject, Predicate: predicate, Object: object}
	if _, ok := g.index[q]; ok {
		return false
	}

	pos := len(g.quads)
	g.index[q] = pos
	g.quads = append(g.quads, q)
	g.removed = append(g.removed, false)
	g.subjects[subject] = append(g.subjects[subject], pos)

	return true
}

func (g *Graph) Has(subject, predicate, object quad.Value) bool {
	_, ok := g.index[quad.Quad{Subject: subject, Predicate: predicate, Object: object}]
	return ok
}

func (g *Graph) Remove(subject, predicate, object quad.Value) {
	q := quad.Quad{Subject: subject, Predicate: predicate, Object: object}
	pos, ok := g.index[q]
	if !ok {
		return
	}

	delete(g.index, q)
	g.removed[pos] = true

	//sub resources are retracted right after they were filled, so the
	//position is nearly always found at the end of the subject's list
	positions := g.subjects[subject]
	for i := len(positions) - 1; i >= 0; i-- {
		if positions[i] == pos {
			positions = append(positions[:i], positions[i+1:]...)
			break
		}
	}

	if len(positions) == 0 {
		delete(g.subjects, subject)
	} else {
		g.subjects[subject] = positions
	}
}

func (g *Graph) Len() int {
	return len(g.index)
}

//Quads returns a copy of the triples in insertion order
func (g *Graph) Quads() []quad.Quad {
	quads := make([]quad.Quad, 0, len(g.index))
	for i, q := range g.quads {
		if !g.removed[i] {
			quads = append(quads, q)
		}
	}
	return quads
}

//Objects returns all objects of triples matching subject and predicate
func (g *Graph) Objects(subject, predicate quad.Value) []quad.Value {
	objects := []quad.Value{}
	for _, pos := range g.subjects[subject] {
		if q := g.quads[pos]; q.Predicate == predicate {
			objects = append(objects, q.Object)
		}
	}
	return objects
}

//Resource is a handle to a subject node in a Graph
type Resource struct {
	graph *Graph
	term  quad.Value
}

func (r *Resource) Term() quad.Value {
	return r.term
}

func (r *Resource) IsBlank() bool {
	_, ok := r.term.(quad.BNode)
	return ok
}

func (r *Resource) Add(predicate quad.IRI, object quad.Value) *Resource {
	r.graph.Add(r.term, predicate, object)
	return r
}

func (r *Resource) AddResource(predicate quad.IRI, object *Resource) *Resource {
	return r.Add(predicate, object.term)
}

func (r *Resource) Remove(predicate quad.IRI, object quad.Value) {
	r.graph.Remove(r.term, predicate, object)
}

func (r *Resource) Objects(predicate quad.IRI) []quad.Value {
	return r.graph.Objects(r.term, predicate)
}

func (r *Resource) Has(predicate quad.IRI) bool {
	return len(r.Objects(predicate)) > 0
}

//Len returns the number of triples that have this resource as subject
func (r *Resource) Len() int {
	return len(r.graph.subjects[r.term])
}
