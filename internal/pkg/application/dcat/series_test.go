package dcat

import (
	"testing"

	"github.com/matryer/is"

	"github.com/diwise/dataset-catalog/internal/pkg/domain"
	"github.com/diwise/dataset-catalog/internal/pkg/infrastructure/rdf"
	"github.com/diwise/dataset-catalog/internal/pkg/infrastructure/rdf/vocabulary"
)

func newSeriesFixture() []domain.Dataset {
	return []domain.Dataset{
		{
			ID: "S", CatalogID: "cat", URI: "http://example.com/S", Published: true,
			SpecializedType:    domain.SpecializedTypeSeries,
			SeriesDatasetOrder: map[string]int{"A": 0, "B": 1},
		},
		{ID: "A", CatalogID: "cat", URI: "http://example.com/A", Published: true, InSeries: "S"},
		{ID: "B", CatalogID: "cat", URI: "http://example.com/B", Published: true, InSeries: "S"},
	}
}

func TestSeriesGetsFirstAndLast(t *testing.T) {
	is := is.New(t)
	datasets := newSeriesFixture()
	idx := NewDatasetIndex(datasets, baseURI)

	sd := idx.SeriesData(datasets[0])

	is.Equal(sd.First, "http://example.com/A")
	is.Equal(sd.Last, "http://example.com/B")
	is.Equal(sd.InSeries, "") // the series itself is not a member
}

func TestMembersAreLinkedToNeighbours(t *testing.T) {
	is := is.New(t)
	datasets := newSeriesFixture()
	idx := NewDatasetIndex(datasets, baseURI)

	a := idx.SeriesData(datasets[1])
	b := idx.SeriesData(datasets[2])

	is.Equal(a, SeriesData{InSeries: "http://example.com/S", Next: "http://example.com/B"})
	is.Equal(b, SeriesData{InSeries: "http://example.com/S", Prev: "http://example.com/A"})
}

func TestDeletedMemberIsNoLongerLinked(t *testing.T) {
	is := is.New(t)
	datasets := newSeriesFixture()[:2]
	delete(datasets[0].SeriesDatasetOrder, "B")
	idx := NewDatasetIndex(datasets, baseURI)

	is.Equal(idx.SeriesData(datasets[1]).Next, "") // A should have no next once B is gone
	is.Equal(idx.SeriesData(datasets[0]).Last, "http://example.com/A")
}

func TestUnpublishedMembersAreSkipped(t *testing.T) {
	is := is.New(t)
	datasets := newSeriesFixture()
	datasets[0].SeriesDatasetOrder["C"] = 2
	datasets = append(datasets,
		domain.Dataset{ID: "C", CatalogID: "cat", URI: "http://example.com/C", Published: false, InSeries: "S"},
	)
	idx := NewDatasetIndex(datasets, baseURI)

	is.Equal(idx.SeriesData(datasets[0]).Last, "http://example.com/B") // unpublished C should not be last
	is.Equal(idx.SeriesData(datasets[2]).Next, "")                     // B should not point at C
}

func TestUnpublishedSeriesGivesNoMembershipLinks(t *testing.T) {
	is := is.New(t)
	datasets := newSeriesFixture()
	datasets[0].Published = false
	idx := NewDatasetIndex(datasets, baseURI)

	is.Equal(idx.SeriesData(datasets[1]), SeriesData{})
}

func TestPlainDatasetParentGivesNoMembershipLinks(t *testing.T) {
	is := is.New(t)
	datasets := newSeriesFixture()
	datasets[0].SpecializedType = ""
	idx := NewDatasetIndex(datasets, baseURI)

	is.Equal(idx.SeriesData(datasets[1]), SeriesData{})
}

func TestEqualPositionsAreOrderedByID(t *testing.T) {
	is := is.New(t)
	datasets := newSeriesFixture()
	datasets[0].SeriesDatasetOrder = map[string]int{"B": 0, "A": 0}
	idx := NewDatasetIndex(datasets, baseURI)

	sd := idx.SeriesData(datasets[0])

	is.Equal(sd.First, "http://example.com/A")
	is.Equal(sd.Last, "http://example.com/B")
}

func TestSeriesCanBeReferencedByURI(t *testing.T) {
	is := is.New(t)
	datasets := newSeriesFixture()
	datasets[1].InSeries = "http://example.com/S"
	idx := NewDatasetIndex(datasets, baseURI)

	is.Equal(idx.SeriesData(datasets[1]).InSeries, "http://example.com/S")
}

func TestSeriesLinksUseMintedURIs(t *testing.T) {
	is := is.New(t)
	datasets := newSeriesFixture()
	datasets[1].URI = ""
	idx := NewDatasetIndex(datasets, baseURI)

	is.Equal(idx.SeriesData(datasets[0]).First, baseURI+"/cat/datasets/A")
}

func TestSeriesLinksInGraph(t *testing.T) {
	is := is.New(t)
	datasets := newSeriesFixture()
	idx := NewDatasetIndex(datasets, baseURI)

	g := rdf.NewGraph()
	a := ProjectDataset(g, datasets[1], idx.SeriesData(datasets[1]), baseURI, "")
	b := ProjectDataset(g, datasets[2], idx.SeriesData(datasets[2]), baseURI, "")

	is.True(g.Has(a.Term(), vocabulary.DCATNext, b.Term()))
	is.True(g.Has(b.Term(), vocabulary.DCATPrev, a.Term()))
	is.True(!a.Has(vocabulary.DCATPrev))
	is.True(!b.Has(vocabulary.DCATNext))
}
