package dcat

import (
	"time"

	"github.com/cayleygraph/quad"

	"github.com/diwise/dataset-catalog/internal/pkg/domain"
	"github.com/diwise/dataset-catalog/internal/pkg/infrastructure/rdf"
	"github.com/diwise/dataset-catalog/internal/pkg/infrastructure/rdf/vocabulary"
)

// language maps are written in this order, "no" is accepted for older records
var languages = [...]string{"no", "nb", "nn", "en"}

func addLiteral(r *rdf.Resource, predicate quad.IRI, value string) {
	if value == "" {
		return
	}
	r.Add(predicate, quad.String(value))
}

func addLocalizedLiteral(r *rdf.Resource, predicate quad.IRI, value *domain.LocalizedStrings) {
	if value == nil {
		return
	}
	addLangLiteral(r, predicate, value.NB, "nb")
	addLangLiteral(r, predicate, value.NN, "nn")
	addLangLiteral(r, predicate, value.EN, "en")
}

func addLocalizedLiteralList(r *rdf.Resource, predicate quad.IRI, value *domain.LocalizedStringLists) {
	if value == nil {
		return
	}
	for _, v := range value.NB {
		addLangLiteral(r, predicate, v, "nb")
	}
	for _, v := range value.NN {
		addLangLiteral(r, predicate, v, "nn")
	}
	for _, v := range value.EN {
		addLangLiteral(r, predicate, v, "en")
	}
}

//addLangMap adds one literal per known language present in a language map
func addLangMap(r *rdf.Resource, predicate quad.IRI, value map[string]string) {
	for _, lang := range languages {
		addLangLiteral(r, predicate, value[lang], lang)
	}
}

func addLangLiteral(r *rdf.Resource, predicate quad.IRI, value, lang string) {
	if value == "" {
		return
	}
	r.Add(predicate, quad.LangString{Value: quad.String(value), Lang: lang})
}

func addLinkedResource(r *rdf.Resource, predicate quad.IRI, uri string) {
	if uri == "" {
		return
	}
	r.Add(predicate, quad.IRI(uri))
}

func addLinkList(r *rdf.Resource, predicate quad.IRI, uris []string) {
	for _, uri := range uris {
		addLinkedResource(r, predicate, uri)
	}
}

func addDateLiteral(r *rdf.Resource, predicate quad.IRI, date *domain.Date) {
	if date == nil || date.IsZero() {
		return
	}
	r.Add(predicate, quad.TypedString{
		Value: quad.String(date.Format(domain.YearMonthDayISO8601)),
		Type:  vocabulary.XSDDate,
	})
}

func addDateTimeLiteral(r *rdf.Resource, predicate quad.IRI, t *time.Time) {
	if t == nil || t.IsZero() {
		return
	}
	r.Add(predicate, quad.TypedString{
		Value: quad.String(t.UTC().Format(time.RFC3339)),
		Type:  vocabulary.XSDDateTime,
	})
}

//addSubResource links a fresh blank node from r and lets fill describe it.
//If fill adds nothing the link is retracted again, so an empty composite
//never leaves a trace in the graph. The class is only asserted on nodes that
//have at least one property of their own.
func addSubResource(g *rdf.Graph, r *rdf.Resource, predicate, class quad.IRI, fill func(*rdf.Resource)) *rdf.Resource {
	node := g.NewBlankNode()
	r.AddResource(predicate, node)

	fill(node)

	if node.Len() == 0 {
		r.Remove(predicate, node.Term())
		return nil
	}

	if class != "" {
		node.Add(vocabulary.RDFType, class)
	}

	return node
}
