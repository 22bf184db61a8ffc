package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/diwise/dataset-catalog/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const (
	catalogCollection string = "catalogs"
	datasetCollection string = "datasets"
)

type mongoDB struct {
	catalogs *mongo.Collection
	datasets *mongo.Collection
}

//NewMongoConnector connects to a MongoDB server and uses the catalog and
//dataset collections of the given database
func NewMongoConnector(uri, database string) ConnectorFunc {
	return func(ctx context.Context) (Datastore, error) {
		log := logging.GetFromContext(ctx)

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
		}

		if err = client.Ping(ctx, readpref.Primary()); err != nil {
			client.Disconnect(ctx)
			return nil, fmt.Errorf("mongodb did not respond to ping: %w", err)
		}

		log.Info().Msgf("connected to mongodb database %s", database)

		db := client.Database(database)

		return &mongoDB{
			catalogs: db.Collection(catalogCollection),
			datasets: db.Collection(datasetCollection),
		}, nil
	}
}

func (db *mongoDB) GetCatalogs(ctx context.Context) ([]domain.Catalog, error) {
	cursor, err := db.catalogs.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query catalogs: %w", err)
	}

	catalogs := []domain.Catalog{}
	if err = cursor.All(ctx, &catalogs); err != nil {
		return nil, fmt.Errorf("failed to decode catalogs: %w", err)
	}

	return catalogs, nil
}

func (db *mongoDB) GetCatalog(ctx context.Context, catalogID string) (*domain.Catalog, error) {
	catalog := &domain.Catalog{}

	err := db.catalogs.FindOne(ctx, bson.D{{Key: "_id", Value: catalogID}}).Decode(catalog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("catalog %s: %w", catalogID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query catalog %s: %w", catalogID, err)
	}

	return catalog, nil
}

func (db *mongoDB) GetDatasetsByCatalog(ctx context.Context, catalogID string) ([]domain.Dataset, error) {
	cursor, err := db.datasets.Find(
		ctx,
		bson.D{{Key: "catalogId", Value: catalogID}},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query datasets of catalog %s: %w", catalogID, err)
	}

	datasets := []domain.Dataset{}
	if err = cursor.All(ctx, &datasets); err != nil {
		return nil, fmt.Errorf("failed to decode datasets of catalog %s: %w", catalogID, err)
	}

	return normalize(datasets), nil
}

func (db *mongoDB) GetCatalogCounts(ctx context.Context, catalogIDs []string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "catalogId", Value: bson.D{{Key: "$in", Value: catalogIDs}}}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$catalogId"},
			{Key: "datasetCount", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := db.datasets.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to count datasets: %w", err)
	}

	counts := []domain.CatalogCount{}
	if err = cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("failed to decode dataset counts: %w", err)
	}

	result := make(map[string]int64, len(catalogIDs))
	for _, id := range catalogIDs {
		result[id] = 0
	}
	for _, c := range counts {
		result[c.ID] = c.DatasetCount
	}

	return result, nil
}
