package dcat

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/diwise/dataset-catalog/internal/pkg/domain"
)

//SeriesData holds the series links of a dataset that are derived from the
//order map of its series rather than stored on the dataset itself
type SeriesData struct {
	InSeries string
	First    string
	Last     string
	Next     string
	Prev     string
}

//DatasetIndex looks up the datasets of one catalog by id or by uri
type DatasetIndex struct {
	baseCatalogURI string
	byID           map[string]domain.Dataset
	byURI          map[string]string
}

func NewDatasetIndex(datasets []domain.Dataset, baseCatalogURI string) *DatasetIndex {
	idx := &DatasetIndex{
		baseCatalogURI: baseCatalogURI,
		byID:           make(map[string]domain.Dataset, len(datasets)),
		byURI:          make(map[string]string, len(datasets)),
	}

	for _, ds := range datasets {
		idx.byID[ds.ID] = ds
		for _, uri := range []string{ds.OriginalURI, ds.URI, DatasetURI(ds, baseCatalogURI)} {
			if uri != "" {
				idx.byURI[uri] = ds.ID
			}
		}
	}

	return idx
}

func (idx *DatasetIndex) Get(idOrURI string) (domain.Dataset, bool) {
	if ds, ok := idx.byID[idOrURI]; ok {
		return ds, true
	}
	if id, ok := idx.byURI[idOrURI]; ok {
		ds, ok := idx.byID[id]
		return ds, ok
	}
	return domain.Dataset{}, false
}

func (idx *DatasetIndex) uri(ds domain.Dataset) string {
	return DatasetURI(ds, idx.baseCatalogURI)
}

type position struct {
	uri   string
	order int
}

//publishedPositions returns the published members of an order map sorted by
//position. Members missing from the index are left out.
func (idx *DatasetIndex) publishedPositions(order map[string]int) []position {
	ids := maps.Keys(order)
	slices.Sort(ids)

	positions := make([]position, 0, len(ids))
	for _, id := range ids {
		member, ok := idx.byID[id]
		if !ok || !member.Published {
			continue
		}
		positions = append(positions, position{uri: idx.uri(member), order: order[id]})
	}

	slices.SortStableFunc(positions, func(a, b position) bool {
		return a.order < b.order
	})

	return positions
}

//SeriesData computes the series links of a dataset. Only series get first and
//last, and only members of a published series get inSeries, next and prev.
func (idx *DatasetIndex) SeriesData(ds domain.Dataset) SeriesData {
	sd := SeriesData{}

	if ds.IsSeries() {
		positions := idx.publishedPositions(ds.SeriesDatasetOrder)
		if len(positions) > 0 {
			sd.First = positions[0].uri
			sd.Last = positions[len(positions)-1].uri
		}
	}

	if ds.InSeries == "" {
		return sd
	}

	parent, ok := idx.Get(ds.InSeries)
	if !ok || !parent.Published || !parent.IsSeries() {
		return sd
	}

	sd.InSeries = idx.uri(parent)

	own, ok := parent.SeriesDatasetOrder[ds.ID]
	if !ok {
		return sd
	}

	for _, p := range idx.publishedPositions(parent.SeriesDatasetOrder) {
		if p.order < own {
			sd.Prev = p.uri
		}
		if p.order > own && sd.Next == "" {
			sd.Next = p.uri
		}
	}

	return sd
}
