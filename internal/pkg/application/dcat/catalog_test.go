package dcat

import (
	"context"
	"errors"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/matryer/is"

	"github.com/diwise/dataset-catalog/internal/pkg/domain"
	"github.com/diwise/dataset-catalog/internal/pkg/infrastructure/rdf"
	"github.com/diwise/dataset-catalog/internal/pkg/infrastructure/rdf/vocabulary"
)

func newTestCatalog() domain.Catalog {
	return domain.Catalog{
		ID:          "cat",
		URI:         "http://example.com/catalogs/cat",
		Title:       map[string]string{"nb": "Katalog"},
		Description: map[string]string{"en": "A catalog"},
		Publisher:   &domain.Publisher{URI: publisherURI, ID: "123456789", Name: "Kommunen"},
		Language:    "nb",
	}
}

func TestProjectCatalogs(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	datasets := append(newSeriesFixture(),
		domain.Dataset{ID: "D", CatalogID: "cat", URI: "http://example.com/D", Published: true},
		domain.Dataset{ID: "U", CatalogID: "cat", URI: "http://example.com/U", Published: false},
	)

	source := &DatasetSourceMock{
		GetDatasetsByCatalogFunc: func(ctx context.Context, catalogID string) ([]domain.Dataset, error) {
			return datasets, nil
		},
	}

	g, err := ProjectCatalogs(ctx, []domain.Catalog{newTestCatalog()}, source, baseURI)
	is.NoErr(err)

	is.Equal(len(source.GetDatasetsByCatalogCalls()), 1)
	is.Equal(source.GetDatasetsByCatalogCalls()[0].CatalogID, "cat")

	c := quad.IRI("http://example.com/catalogs/cat")
	is.True(g.Has(c, vocabulary.RDFType, vocabulary.DCATCatalog))
	is.True(g.Has(c, vocabulary.DCATHasDataset, quad.IRI("http://example.com/S")))  // series should be listed
	is.True(g.Has(c, vocabulary.DCATHasDataset, quad.IRI("http://example.com/D")))  // plain dataset should be listed
	is.True(!g.Has(c, vocabulary.DCATHasDataset, quad.IRI("http://example.com/A"))) // series members are reached through the series
	is.True(!g.Has(c, vocabulary.DCATHasDataset, quad.IRI("http://example.com/U"))) // unpublished datasets should be left out

	is.Equal(len(g.Objects(quad.IRI("http://example.com/U"), vocabulary.RDFType)), 0)
	is.True(g.Has(quad.IRI("http://example.com/A"), vocabulary.DCATInSeries, quad.IRI("http://example.com/S")))
	is.True(g.Has(quad.IRI("http://example.com/D"), vocabulary.DCTPublisher, quad.IRI(publisherURI)))
	is.Equal(len(g.Namespaces()), len(vocabulary.Namespaces()))
}

func TestProjectCatalogsIsDeterministic(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	datasets := newSeriesFixture()
	datasets[1].Distribution = []domain.Distribution{{AccessURL: []string{"http://x"}}, {Format: []string{"CSV"}}}
	datasets[2].ContactPoints = []domain.ContactPoint{{Email: "a@b.c"}}

	source := &DatasetSourceMock{
		GetDatasetsByCatalogFunc: func(ctx context.Context, catalogID string) ([]domain.Dataset, error) {
			return datasets, nil
		},
	}

	first, err := ProjectCatalogs(ctx, []domain.Catalog{newTestCatalog()}, source, baseURI)
	is.NoErr(err)
	second, err := ProjectCatalogs(ctx, []domain.Catalog{newTestCatalog()}, source, baseURI)
	is.NoErr(err)

	is.Equal(first.Len(), second.Len())
	assertIsomorphic(t, first, second)
}

func TestProjectCatalogsFailsWhenDatasetsCannotBeRead(t *testing.T) {
	is := is.New(t)
	storeErr := errors.New("store unavailable")

	source := &DatasetSourceMock{
		GetDatasetsByCatalogFunc: func(ctx context.Context, catalogID string) ([]domain.Dataset, error) {
			return nil, storeErr
		},
	}

	_, err := ProjectCatalogs(context.Background(), []domain.Catalog{newTestCatalog()}, source, baseURI)
	is.True(errors.Is(err, storeErr)) // the cause should be wrapped
}

func TestCatalogWithoutURIGetsMintedURI(t *testing.T) {
	is := is.New(t)
	c := newTestCatalog()
	c.URI = ""

	is.Equal(CatalogURI(c, baseURI+"/"), baseURI+"/cat")
}

func TestCatalogStubsAreListed(t *testing.T) {
	is := is.New(t)
	c := newTestCatalog()
	c.Dataset = []domain.DatasetStub{{ID: "x"}, {ID: "y", OriginalURI: "http://example.com/y"}}

	g := NewGraph()
	r := ProjectCatalog(g, c, nil, baseURI)

	is.True(g.Has(r.Term(), vocabulary.DCATHasDataset, quad.IRI(baseURI+"/cat/datasets/x")))
	is.True(g.Has(r.Term(), vocabulary.DCATHasDataset, quad.IRI("http://example.com/y")))
}

func TestPublisherNameWithoutLabels(t *testing.T) {
	is := is.New(t)
	c := newTestCatalog()

	g := NewGraph()
	ProjectCatalog(g, c, nil, baseURI)

	names := g.Objects(quad.IRI(publisherURI), vocabulary.FOAFName)
	is.Equal(names, []quad.Value{quad.LangString{Value: "Kommunen", Lang: "nb"}}) // plain name should become one nb literal
	is.True(g.Has(quad.IRI(publisherURI), vocabulary.RDFType, vocabulary.FOAFAgent))
	is.True(g.Has(quad.IRI(publisherURI), vocabulary.DCTIdentifier, quad.String("123456789")))
}

func TestPublisherLabelsTakePrecedenceOverName(t *testing.T) {
	is := is.New(t)
	c := newTestCatalog()
	c.Publisher.PrefLabel = map[string]string{"nn": "Kommunen nn", "en": "The municipality"}

	g := NewGraph()
	ProjectCatalog(g, c, nil, baseURI)

	names := g.Objects(quad.IRI(publisherURI), vocabulary.FOAFName)
	is.Equal(len(names), 2) // one literal per label, and none for the plain name
	is.True(!g.Has(quad.IRI(publisherURI), vocabulary.FOAFName, quad.LangString{Value: "Kommunen", Lang: "nb"}))
}

func TestPublisherWithoutURIBecomesBlankNode(t *testing.T) {
	is := is.New(t)
	c := newTestCatalog()
	c.Publisher = &domain.Publisher{ID: "123456789", Name: "Kommunen"}
	datasets := []domain.Dataset{{ID: "D", CatalogID: "cat", URI: "http://example.com/D", Published: true}}

	g := NewGraph()
	r := ProjectCatalog(g, c, datasets, baseURI)

	publishers := r.Objects(vocabulary.DCTPublisher)
	is.Equal(len(publishers), 1)

	_, isBlank := publishers[0].(quad.BNode)
	is.True(isBlank)                                                                       // an agent without uri should be anonymous
	is.True(g.Has(publishers[0], vocabulary.RDFType, vocabulary.FOAFAgent))                // and typed
	is.Equal(len(g.Objects(quad.IRI("http://example.com/D"), vocabulary.DCTPublisher)), 0) // datasets cannot refer to it
}

func TestCatalogMatchesReference(t *testing.T) {
	c := newTestCatalog()
	c.Issued = domain.NewDate(2021, 6, 1)
	datasets := []domain.Dataset{{ID: "D", CatalogID: "cat", URI: "http://example.com/D", Published: true}}

	g := NewGraph()
	ProjectCatalog(g, c, datasets, baseURI)

	e := rdf.NewGraph()
	r := e.Resource("http://example.com/catalogs/cat")
	r.Add(vocabulary.RDFType, vocabulary.DCATCatalog)
	r.Add(vocabulary.DCTTitle, quad.LangString{Value: "Katalog", Lang: "nb"})
	r.Add(vocabulary.DCTDescription, quad.LangString{Value: "A catalog", Lang: "en"})
	r.Add(vocabulary.DCTPublisher, quad.IRI(publisherURI))
	r.Add(vocabulary.DCTIssued, quad.TypedString{Value: "2021-06-01", Type: vocabulary.XSDDate})
	r.Add(vocabulary.DCTLanguage, quad.String("nb"))
	r.Add(vocabulary.DCATHasDataset, quad.IRI("http://example.com/D"))

	p := e.Resource(publisherURI)
	p.Add(vocabulary.RDFType, vocabulary.FOAFAgent)
	p.Add(vocabulary.FOAFName, quad.LangString{Value: "Kommunen", Lang: "nb"})
	p.Add(vocabulary.DCTIdentifier, quad.String("123456789"))

	d := e.Resource("http://example.com/D")
	d.Add(vocabulary.RDFType, vocabulary.DCATDataset)
	d.Add(vocabulary.DCTIdentifier, quad.String("http://example.com/D"))
	d.Add(vocabulary.DCTPublisher, quad.IRI(publisherURI))

	assertIsomorphic(t, g, e)
}

func TestProjectCatalogDataset(t *testing.T) {
	is := is.New(t)
	datasets := newSeriesFixture()

	g, err := ProjectCatalogDataset(newTestCatalog(), datasets, "A", baseURI)
	is.NoErr(err)

	a := quad.IRI("http://example.com/A")
	is.True(g.Has(a, vocabulary.RDFType, vocabulary.DCATDataset))
	is.True(g.Has(a, vocabulary.DCATInSeries, quad.IRI("http://example.com/S")))
	is.True(g.Has(a, vocabulary.DCATNext, quad.IRI("http://example.com/B")))
	is.True(g.Has(quad.IRI(publisherURI), vocabulary.RDFType, vocabulary.FOAFAgent))
	is.Equal(len(g.Objects(quad.IRI("http://example.com/B"), vocabulary.RDFType)), 0) // neighbours are only referenced
}

func TestProjectCatalogDatasetNotFound(t *testing.T) {
	is := is.New(t)
	datasets := newSeriesFixture()
	datasets[2].Published = false

	_, err := ProjectCatalogDataset(newTestCatalog(), datasets, "B", baseURI)
	is.True(errors.Is(err, ErrDatasetNotFound)) // unpublished datasets should not be found

	_, err = ProjectCatalogDataset(newTestCatalog(), datasets, "missing", baseURI)
	is.True(errors.Is(err, ErrDatasetNotFound))
}
