package rdf

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc"
	"golang.org/x/exp/slices"

	"github.com/diwise/dataset-catalog/internal/pkg/infrastructure/rdf/vocabulary"
)

var _ quad.Writer = (*TurtleWriter)(nil)

//TurtleWriter buffers triples and writes them as a Turtle document on Close.
//Blank nodes that are referenced exactly once are written inline.
type TurtleWriter struct {
	w      *bufio.Writer
	ns     []voc.Namespace
	quads  []quad.Quad
	err    error
	closed bool

	bySubject map[quad.Value][]quad.Quad
	refs      map[quad.BNode]int
	written   map[quad.Value]bool
}

func NewTurtleWriter(w io.Writer, namespaces []voc.Namespace) *TurtleWriter {
	ns := append([]voc.Namespace{}, namespaces...)
	slices.SortFunc(ns, func(a, b voc.Namespace) bool {
		return a.Prefix < b.Prefix
	})

	return &TurtleWriter{
		w:  bufio.NewWriter(w),
		ns: ns,
	}
}

func (tw *TurtleWriter) WriteQuad(q quad.Quad) error {
	if tw.closed {
		return fmt.Errorf("turtle writer is closed")
	}
	tw.quads = append(tw.quads, q)
	return nil
}

func (tw *TurtleWriter) WriteQuads(buf []quad.Quad) (int, error) {
	for i, q := range buf {
		if err := tw.WriteQuad(q); err != nil {
			return i, err
		}
	}
	return len(buf), nil
}

func (tw *TurtleWriter) Close() error {
	if tw.closed {
		return tw.err
	}
	tw.closed = true

	tw.index()
	tw.writePrefixes()

	for _, s := range tw.roots() {
		tw.writeSubject(s)
	}

	// blank nodes that only reference each other in a cycle have no root
	for _, s := range tw.subjects() {
		if !tw.written[s] {
			tw.writeSubject(s)
		}
	}

	if tw.err != nil {
		return tw.err
	}
	return tw.w.Flush()
}

func (tw *TurtleWriter) index() {
	tw.bySubject = map[quad.Value][]quad.Quad{}
	tw.refs = map[quad.BNode]int{}
	tw.written = map[quad.Value]bool{}

	for _, q := range tw.quads {
		tw.bySubject[q.Subject] = append(tw.bySubject[q.Subject], q)
		if b, ok := q.Object.(quad.BNode); ok {
			tw.refs[b]++
		}
	}
}

func (tw *TurtleWriter) subjects() []quad.Value {
	subjects := make([]quad.Value, 0, len(tw.bySubject))
	for s := range tw.bySubject {
		subjects = append(subjects, s)
	}

	slices.SortFunc(subjects, func(a, b quad.Value) bool {
		_, aBlank := a.(quad.BNode)
		_, bBlank := b.(quad.BNode)
		if aBlank != bBlank {
			return !aBlank
		}
		return a.String() < b.String()
	})

	return subjects
}

func (tw *TurtleWriter) roots() []quad.Value {
	roots := []quad.Value{}
	for _, s := range tw.subjects() {
		if b, ok := s.(quad.BNode); ok && tw.refs[b] == 1 {
			continue
		}
		roots = append(roots, s)
	}
	return roots
}

func (tw *TurtleWriter) writePrefixes() {
	for _, ns := range tw.ns {
		tw.printf("@prefix %s <%s> .\n", ns.Prefix, escapeIRI(ns.Full))
	}
	if len(tw.ns) > 0 {
		tw.printf("\n")
	}
}

func (tw *TurtleWriter) writeSubject(s quad.Value) {
	tw.written[s] = true
	tw.printf("%s\n", tw.term(s))
	tw.writeProperties(s, 1)
	tw.printf(" .\n\n")
}

func (tw *TurtleWriter) writeProperties(s quad.Value, depth int) {
	quads := append([]quad.Quad{}, tw.bySubject[s]...)
	slices.SortStableFunc(quads, func(a, b quad.Quad) bool {
		ap, bp := predicateOrder(a.Predicate), predicateOrder(b.Predicate)
		if ap != bp {
			return ap < bp
		}
		return a.Object.String() < b.Object.String()
	})

	indent := strings.Repeat("    ", depth)

	for i, q := range quads {
		if i > 0 && q.Predicate == quads[i-1].Predicate {
			tw.printf(" ,\n%s    ", indent)
		} else {
			if i > 0 {
				tw.printf(" ;\n")
			}
			tw.printf("%s%s ", indent, tw.predicate(q.Predicate))
		}
		tw.writeObject(q.Object, depth)
	}
}

func (tw *TurtleWriter) writeObject(o quad.Value, depth int) {
	b, ok := o.(quad.BNode)
	if !ok || tw.refs[b] != 1 || tw.written[o] {
		tw.printf("%s", tw.term(o))
		return
	}

	tw.written[o] = true
	if len(tw.bySubject[o]) == 0 {
		tw.printf("[ ]")
		return
	}

	tw.printf("[\n")
	tw.writeProperties(o, depth+1)
	tw.printf("\n%s]", strings.Repeat("    ", depth))
}

func predicateOrder(p quad.Value) string {
	if p == vocabulary.RDFType {
		return ""
	}
	return p.String()
}

func (tw *TurtleWriter) predicate(p quad.Value) string {
	if p == vocabulary.RDFType {
		return "a"
	}
	return tw.term(p)
}

var localName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

func (tw *TurtleWriter) term(v quad.Value) string {
	switch t := v.(type) {
	case quad.IRI:
		return tw.iri(string(t))
	case quad.BNode:
		return "_:" + blankLabel(string(t))
	case quad.String:
		return quoteLiteral(string(t))
	case quad.LangString:
		return quoteLiteral(string(t.Value)) + "@" + t.Lang
	case quad.TypedString:
		return quoteLiteral(string(t.Value)) + "^^" + tw.iri(string(t.Type))
	}
	return v.String()
}

func (tw *TurtleWriter) iri(iri string) string {
	best := -1
	for i, ns := range tw.ns {
		if strings.HasPrefix(iri, ns.Full) && (best < 0 || len(ns.Full) > len(tw.ns[best].Full)) {
			best = i
		}
	}

	if best >= 0 {
		local := iri[len(tw.ns[best].Full):]
		if localName.MatchString(local) {
			return tw.ns[best].Prefix + local
		}
	}

	return "<" + escapeIRI(iri) + ">"
}

func (tw *TurtleWriter) printf(format string, args ...interface{}) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

var blankLabelReplacer = regexp.MustCompile(`[^A-Za-z0-9_]`)

func blankLabel(label string) string {
	label = blankLabelReplacer.ReplaceAllString(label, "_")
	if label == "" {
		return "b"
	}
	return label
}

func quoteLiteral(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&sb, `\u%04X`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func escapeIRI(iri string) string {
	var sb strings.Builder
	for _, r := range iri {
		if r <= 0x20 || strings.ContainsRune("<>\"{}|^`\\", r) {
			fmt.Fprintf(&sb, `\u%04X`, r)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
