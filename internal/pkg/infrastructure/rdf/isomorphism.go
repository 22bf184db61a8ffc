package rdf

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/cayleygraph/quad"
	"golang.org/x/exp/slices"
)

//Isomorphic reports whether two graphs are equal up to blank node labels
func Isomorphic(a, b *Graph) bool {
	if a.Len() != b.Len() {
		return false
	}

	groundA, blankA := partition(a)
	groundB, blankB := partition(b)

	if len(groundA) != len(groundB) || len(blankA) != len(blankB) {
		return false
	}

	for _, q := range groundA {
		if !b.Has(q.Subject, q.Predicate, q.Object) {
			return false
		}
	}

	if len(blankA) == 0 {
		return true
	}

	m := newMatcher(blankA, blankB, b)
	return m.match()
}

func partition(g *Graph) (ground, blank []quad.Quad) {
	for _, q := range g.Quads() {
		if isBlank(q.Subject) || isBlank(q.Object) {
			blank = append(blank, q)
		} else {
			ground = append(ground, q)
		}
	}
	return
}

func isBlank(v quad.Value) bool {
	_, ok := v.(quad.BNode)
	return ok
}

type matcher struct {
	target   *Graph
	nodesA   []quad.BNode
	nodesB   []quad.BNode
	colorsA  map[quad.BNode]string
	colorsB  map[quad.BNode]string
	incident map[quad.BNode][]quad.Quad
	mapping  map[quad.BNode]quad.BNode
	used     map[quad.BNode]bool
}

func newMatcher(blankA, blankB []quad.Quad, target *Graph) *matcher {
	m := &matcher{
		target:   target,
		incident: map[quad.BNode][]quad.Quad{},
		mapping:  map[quad.BNode]quad.BNode{},
		used:     map[quad.BNode]bool{},
	}

	m.nodesA = blankNodes(blankA, m.incident)
	m.nodesB = blankNodes(blankB, nil)
	m.colorsA, m.colorsB = refineColors(blankA, m.nodesA, blankB, m.nodesB)

	// try the most constrained nodes first
	classSize := map[string]int{}
	for _, n := range m.nodesB {
		classSize[m.colorsB[n]]++
	}
	slices.SortStableFunc(m.nodesA, func(x, y quad.BNode) bool {
		return classSize[m.colorsA[x]] < classSize[m.colorsA[y]]
	})

	return m
}

func blankNodes(quads []quad.Quad, incident map[quad.BNode][]quad.Quad) []quad.BNode {
	seen := map[quad.BNode]bool{}
	nodes := []quad.BNode{}

	add := func(v quad.Value, q quad.Quad) {
		n, ok := v.(quad.BNode)
		if !ok {
			return
		}
		if !seen[n] {
			seen[n] = true
			nodes = append(nodes, n)
		}
		if incident != nil {
			incident[n] = append(incident[n], q)
		}
	}

	for _, q := range quads {
		add(q.Subject, q)
		if q.Object != q.Subject {
			add(q.Object, q)
		}
	}

	return nodes
}

//refineColors assigns each blank node a hash of its neighbourhood and refines
//it until the number of distinct colors in both graphs stops growing.
func refineColors(quadsA []quad.Quad, nodesA []quad.BNode, quadsB []quad.Quad, nodesB []quad.BNode) (map[quad.BNode]string, map[quad.BNode]string) {
	colorsA := initialColors(nodesA)
	colorsB := initialColors(nodesB)

	distinctA, distinctB := 1, 1
	for round := 0; round <= len(nodesA); round++ {
		colorsA = recolor(quadsA, nodesA, colorsA)
		colorsB = recolor(quadsB, nodesB, colorsB)

		da, db := countDistinct(colorsA), countDistinct(colorsB)
		if da == distinctA && db == distinctB && round > 0 {
			break
		}
		distinctA, distinctB = da, db
	}

	return colorsA, colorsB
}

func initialColors(nodes []quad.BNode) map[quad.BNode]string {
	colors := make(map[quad.BNode]string, len(nodes))
	for _, n := range nodes {
		colors[n] = ""
	}
	return colors
}

func recolor(quads []quad.Quad, nodes []quad.BNode, colors map[quad.BNode]string) map[quad.BNode]string {
	signatures := make(map[quad.BNode][]string, len(nodes))

	term := func(v quad.Value) string {
		if n, ok := v.(quad.BNode); ok {
			return "_:" + colors[n]
		}
		return v.String()
	}

	for _, q := range quads {
		if n, ok := q.Subject.(quad.BNode); ok {
			signatures[n] = append(signatures[n], "s "+q.Predicate.String()+" "+term(q.Object))
		}
		if n, ok := q.Object.(quad.BNode); ok {
			signatures[n] = append(signatures[n], "o "+term(q.Subject)+" "+q.Predicate.String())
		}
	}

	next := make(map[quad.BNode]string, len(nodes))
	for _, n := range nodes {
		sig := signatures[n]
		slices.Sort(sig)
		sum := sha256.Sum256([]byte(colors[n] + "|" + strings.Join(sig, "\n")))
		next[n] = hex.EncodeToString(sum[:])
	}

	return next
}

func countDistinct(colors map[quad.BNode]string) int {
	distinct := map[string]struct{}{}
	for _, c := range colors {
		distinct[c] = struct{}{}
	}
	return len(distinct)
}

func (m *matcher) match() bool {
	if len(m.nodesA) != len(m.nodesB) {
		return false
	}
	return m.assign(0)
}

func (m *matcher) assign(i int) bool {
	if i == len(m.nodesA) {
		return true
	}

	a := m.nodesA[i]
	for _, b := range m.nodesB {
		if m.used[b] || m.colorsA[a] != m.colorsB[b] {
			continue
		}

		m.mapping[a] = b
		m.used[b] = true

		if m.consistent(a) && m.assign(i+1) {
			return true
		}

		delete(m.mapping, a)
		m.used[b] = false
	}

	return false
}

//consistent checks every triple touching a whose blank nodes are all mapped
func (m *matcher) consistent(a quad.BNode) bool {
	for _, q := range m.incident[a] {
		s, ok := m.translate(q.Subject)
		if !ok {
			continue
		}
		o, ok := m.translate(q.Object)
		if !ok {
			continue
		}
		if !m.target.Has(s, q.Predicate, o) {
			return false
		}
	}
	return true
}

func (m *matcher) translate(v quad.Value) (quad.Value, bool) {
	n, ok := v.(quad.BNode)
	if !ok {
		return v, true
	}
	mapped, ok := m.mapping[n]
	return mapped, ok
}
