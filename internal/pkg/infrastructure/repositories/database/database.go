package database

import (
	"context"
	"errors"

	"github.com/diwise/dataset-catalog/internal/pkg/domain"
)

var ErrNotFound = errors.New("not found")

//Datastore is an interface that is used to inject the database into different handlers to improve testability
//
//go:generate moq -rm -out datastore_mock.go . Datastore
type Datastore interface {
	GetCatalogs(ctx context.Context) ([]domain.Catalog, error)
	GetCatalog(ctx context.Context, catalogID string) (*domain.Catalog, error)
	GetDatasetsByCatalog(ctx context.Context, catalogID string) ([]domain.Dataset, error)
	GetCatalogCounts(ctx context.Context, catalogIDs []string) (map[string]int64, error)
}

//ConnectorFunc is used to inject a database connection method into NewDatabaseConnection
type ConnectorFunc func(ctx context.Context) (Datastore, error)

//NewDatabaseConnection initializes a new connection to the database and wraps it in a Datastore
func NewDatabaseConnection(ctx context.Context, connect ConnectorFunc) (Datastore, error) {
	db, err := connect(ctx)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func normalize(datasets []domain.Dataset) []domain.Dataset {
	for i := range datasets {
		datasets[i].NormalizeThemes()
	}
	return datasets
}
