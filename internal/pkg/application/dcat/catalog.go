package dcat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/diwise/dataset-catalog/internal/pkg/domain"
	"github.com/diwise/dataset-catalog/internal/pkg/infrastructure/rdf"
	"github.com/diwise/dataset-catalog/internal/pkg/infrastructure/rdf/vocabulary"
)

var ErrDatasetNotFound = errors.New("dataset not found")

//DatasetSource provides the datasets registered in a catalog
//
//go:generate moq -rm -out datasetsource_mock.go . DatasetSource
type DatasetSource interface {
	GetDatasetsByCatalog(ctx context.Context, catalogID string) ([]domain.Dataset, error)
}

//NewGraph returns an empty graph with the default prefix table set
func NewGraph() *rdf.Graph {
	g := rdf.NewGraph()
	g.SetNamespaces(vocabulary.Namespaces())
	return g
}

//ProjectCatalogs builds one graph holding every catalog and the published
//datasets of each catalog
func ProjectCatalogs(ctx context.Context, catalogs []domain.Catalog, source DatasetSource, baseCatalogURI string) (*rdf.Graph, error) {
	g := NewGraph()

	for _, c := range catalogs {
		datasets, err := source.GetDatasetsByCatalog(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve datasets for catalog %s: %w", c.ID, err)
		}

		ProjectCatalog(g, c, datasets, baseCatalogURI)
	}

	return g, nil
}

func CatalogURI(c domain.Catalog, baseCatalogURI string) string {
	if c.URI != "" {
		return c.URI
	}
	return strings.TrimSuffix(baseCatalogURI, "/") + "/" + c.ID
}

//ProjectCatalog adds a catalog and its published datasets to the graph.
//Datasets that are members of a series are reached through the series and
//get no membership edge from the catalog.
func ProjectCatalog(g *rdf.Graph, c domain.Catalog, datasets []domain.Dataset, baseCatalogURI string) *rdf.Resource {
	g.SetNamespaces(vocabulary.Namespaces())

	r := g.Resource(CatalogURI(c, baseCatalogURI))
	r.Add(vocabulary.RDFType, vocabulary.DCATCatalog)
	addLangMap(r, vocabulary.DCTTitle, c.Title)
	addLangMap(r, vocabulary.DCTDescription, c.Description)

	publisherURI := addPublisher(g, r, c.Publisher)

	addDateLiteral(r, vocabulary.DCTIssued, c.Issued)
	addDateLiteral(r, vocabulary.DCTModified, c.Modified)
	addLiteral(r, vocabulary.DCTLanguage, c.Language)

	for _, stub := range c.Dataset {
		addLinkedResource(r, vocabulary.DCATHasDataset, stubURI(stub, c.ID, baseCatalogURI))
	}

	idx := NewDatasetIndex(datasets, baseCatalogURI)

	for _, ds := range datasets {
		if !ds.Published {
			continue
		}

		series := idx.SeriesData(ds)
		dr := ProjectDataset(g, ds, series, baseCatalogURI, publisherURI)

		if series.InSeries == "" {
			r.AddResource(vocabulary.DCATHasDataset, dr)
		}
	}

	return r
}

//ProjectCatalogDataset builds a graph holding a single published dataset of
//a catalog, described the same way as in the catalog graph
func ProjectCatalogDataset(c domain.Catalog, datasets []domain.Dataset, datasetID, baseCatalogURI string) (*rdf.Graph, error) {
	idx := NewDatasetIndex(datasets, baseCatalogURI)

	ds, ok := idx.byID[datasetID]
	if !ok || !ds.Published {
		return nil, fmt.Errorf("no published dataset %s in catalog %s: %w", datasetID, c.ID, ErrDatasetNotFound)
	}

	g := NewGraph()
	publisherURI := publisherIRI(c.Publisher)
	if publisherURI != "" {
		describePublisher(g.Resource(publisherURI), c.Publisher)
	}

	ProjectDataset(g, ds, idx.SeriesData(ds), baseCatalogURI, publisherURI)

	return g, nil
}

func stubURI(stub domain.DatasetStub, catalogID, baseCatalogURI string) string {
	return DatasetURI(domain.Dataset{
		ID:          stub.ID,
		CatalogID:   catalogID,
		URI:         stub.URI,
		OriginalURI: stub.OriginalURI,
	}, baseCatalogURI)
}

//addPublisher describes the publisher of a catalog and returns its uri, or an
//empty string if the publisher has no uri and had to be written as a blank node
func addPublisher(g *rdf.Graph, r *rdf.Resource, p *domain.Publisher) string {
	if p == nil {
		return ""
	}

	uri := publisherIRI(p)
	if uri != "" {
		r.Add(vocabulary.DCTPublisher, quad.IRI(uri))
		describePublisher(g.Resource(uri), p)
		return uri
	}

	addSubResource(g, r, vocabulary.DCTPublisher, vocabulary.FOAFAgent, func(n *rdf.Resource) {
		describeAgent(n, p)
	})

	return ""
}

func publisherIRI(p *domain.Publisher) string {
	if p == nil {
		return ""
	}
	if isAbsoluteURI(p.URI) {
		return p.URI
	}
	if isAbsoluteURI(p.ID) {
		return p.ID
	}
	return ""
}

func describePublisher(r *rdf.Resource, p *domain.Publisher) {
	r.Add(vocabulary.RDFType, vocabulary.FOAFAgent)
	describeAgent(r, p)
}

//describeAgent writes the publisher name. A plain name is only used when the
//publisher has no preferred labels at all.
func describeAgent(r *rdf.Resource, p *domain.Publisher) {
	if p.Name != "" && p.PrefLabel == nil {
		addLangLiteral(r, vocabulary.FOAFName, p.Name, "nb")
	} else {
		addLangMap(r, vocabulary.FOAFName, p.PrefLabel)
	}

	addLiteral(r, vocabulary.DCTIdentifier, p.ID)
}
