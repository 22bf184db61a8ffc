package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/diwise/dataset-catalog/internal/pkg/application/services/catalogs"
	"github.com/diwise/dataset-catalog/internal/pkg/application/services/organisations"
	"github.com/diwise/dataset-catalog/internal/pkg/infrastructure/cache"
	"github.com/diwise/dataset-catalog/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/dataset-catalog/internal/pkg/presentation"
	"github.com/diwise/dataset-catalog/internal/pkg/presentation/handlers"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
)

const serviceName string = "dataset-catalog"

var dataFileName string
var organisationsFileName string

func main() {
	serviceVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion)
	defer cleanup()

	log.Info().Msgf("Starting up %s ...", serviceName)

	flag.StringVar(&dataFileName, "datafile", "", "A yaml file to serve catalogs and datasets from instead of mongodb")
	flag.StringVar(&organisationsFileName, "organisations", "/opt/diwise/config/organisations.yaml", "Organisation names to use for catalog publishers")
	flag.Parse()

	port := env.GetVariableOrDefault(log, "SERVICE_PORT", "8080")
	catalogURIHost := env.GetVariableOrDie(log, "CATALOG_URI_HOST", "base uri of the published catalogs")
	organizationCatalogHost := env.GetVariableOrDefault(log, "ORGANIZATION_CATALOG_HOST", "")

	db := connectToDatastore(ctx, log)
	orgs := loadOrganisations(log, organizationCatalogHost)

	docs := setupDocumentCache(ctx, log)
	defer docs.Cache.Close()

	svc := catalogs.NewCatalogService(db, orgs, catalogURIHost, organizationCatalogHost)

	api := presentation.NewAPI(ctx, chi.NewRouter(), svc, docs)
	if err := api.Start(port); err != nil {
		log.Fatal().Msgf("failed to start router: %s", err.Error())
	}
}

func connectToDatastore(ctx context.Context, log zerolog.Logger) database.Datastore {
	connect := database.NewFileConnector(dataFileName)

	if dataFileName == "" {
		mongoURI := env.GetVariableOrDie(log, "MONGO_URI", "mongodb connection string")
		mongoDatabase := env.GetVariableOrDefault(log, "MONGO_DATABASE", "datasetCatalog")
		connect = database.NewMongoConnector(mongoURI, mongoDatabase)
	}

	db, err := database.NewDatabaseConnection(ctx, connect)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database, shutting down...")
	}

	return db
}

func loadOrganisations(log zerolog.Logger, organizationCatalogHost string) organisations.Registry {
	orgfile, err := os.Open(organisationsFileName)
	if err != nil {
		log.Info().Msgf("failed to open the organisations file %s, using the organization catalog only", organisationsFileName)
		orgs, _ := organisations.NewRegistry(nil, organizationCatalogHost)
		return orgs
	}
	defer orgfile.Close()

	orgs, err := organisations.NewRegistry(orgfile, organizationCatalogHost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load organisations")
	}

	return orgs
}

func setupDocumentCache(ctx context.Context, log zerolog.Logger) handlers.Documents {
	ttl, err := time.ParseDuration(env.GetVariableOrDefault(log, "CACHE_TTL", "5m"))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid cache ttl")
	}

	redisURL := env.GetVariableOrDefault(log, "REDIS_URL", "")
	if redisURL == "" {
		return handlers.Documents{Cache: cache.NewNullCache(), TTL: ttl}
	}

	c, err := cache.NewRedisCache(ctx, redisURL)
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to redis, rendered documents will not be cached")
		return handlers.Documents{Cache: cache.NewNullCache(), TTL: ttl}
	}

	return handlers.Documents{Cache: c, TTL: ttl}
}
