package database

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v2"

	"github.com/diwise/dataset-catalog/internal/pkg/domain"
)

type fileContents struct {
	Catalogs []domain.Catalog `yaml:"catalogs"`
	Datasets []domain.Dataset `yaml:"datasets"`
}

type fileDB struct {
	catalogs []domain.Catalog
	datasets map[string][]domain.Dataset
}

//NewFileConnector loads catalogs and datasets from a yaml file into memory
func NewFileConnector(path string) ConnectorFunc {
	return func(ctx context.Context) (Datastore, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open data file %s: %w", path, err)
		}
		defer f.Close()

		return NewFileStore(f)
	}
}

func NewFileStore(input io.Reader) (Datastore, error) {
	contents := fileContents{}

	if err := yaml.NewDecoder(input).Decode(&contents); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode data file: %w", err)
	}

	db := &fileDB{
		catalogs: contents.Catalogs,
		datasets: map[string][]domain.Dataset{},
	}

	slices.SortFunc(db.catalogs, func(a, b domain.Catalog) bool {
		return a.ID < b.ID
	})

	for _, ds := range normalize(contents.Datasets) {
		db.datasets[ds.CatalogID] = append(db.datasets[ds.CatalogID], ds)
	}

	for _, list := range db.datasets {
		slices.SortFunc(list, func(a, b domain.Dataset) bool {
			return a.ID < b.ID
		})
	}

	return db, nil
}

func (db *fileDB) GetCatalogs(ctx context.Context) ([]domain.Catalog, error) {
	return append([]domain.Catalog{}, db.catalogs...), nil
}

func (db *fileDB) GetCatalog(ctx context.Context, catalogID string) (*domain.Catalog, error) {
	for _, c := range db.catalogs {
		if c.ID == catalogID {
			return &c, nil
		}
	}

	return nil, fmt.Errorf("catalog %s: %w", catalogID, ErrNotFound)
}

func (db *fileDB) GetDatasetsByCatalog(ctx context.Context, catalogID string) ([]domain.Dataset, error) {
	return append([]domain.Dataset{}, db.datasets[catalogID]...), nil
}

func (db *fileDB) GetCatalogCounts(ctx context.Context, catalogIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(catalogIDs))
	for _, id := range catalogIDs {
		counts[id] = int64(len(db.datasets[id]))
	}
	return counts, nil
}
