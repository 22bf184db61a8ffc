package presentation

import (
	"compress/flate"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riandyrn/otelchi"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/diwise/dataset-catalog/internal/pkg/application/services/catalogs"
	"github.com/diwise/dataset-catalog/internal/pkg/presentation/handlers"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

type API interface {
	Start(port string) error
}

type catalogAPI struct {
	router chi.Router
	log    zerolog.Logger
}

func NewAPI(ctx context.Context, r chi.Router, svc catalogs.CatalogService, docs handlers.Documents) API {
	return newCatalogAPI(ctx, r, svc, docs)
}

func newCatalogAPI(ctx context.Context, r chi.Router, svc catalogs.CatalogService, docs handlers.Documents) *catalogAPI {
	log := logging.GetFromContext(ctx)

	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		Debug:            false,
	}).Handler)

	// Enable gzip compression for our responses
	compressor := middleware.NewCompressor(flate.DefaultCompression, "text/turtle")
	r.Use(compressor.Handler)
	r.Use(otelchi.Middleware("dataset-catalog", otelchi.WithChiRoutes(r)))

	a := &catalogAPI{
		router: r,
		log:    log,
	}

	a.addProbeHandlers(r)
	a.addCatalogHandlers(r, svc, docs)

	return a
}

func (a *catalogAPI) Start(port string) error {
	a.log.Info().Msgf("Starting dataset-catalog on port:%s", port)
	return http.ListenAndServe(":"+port, a.router)
}

func (a *catalogAPI) addCatalogHandlers(r chi.Router, svc catalogs.CatalogService, docs handlers.Documents) {
	r.Get(
		"/catalogs",
		handlers.NewRetrieveCatalogsHandler(a.log, svc, docs),
	)
	r.Get(
		"/catalogs/{catalogId}",
		handlers.NewRetrieveCatalogByIDHandler(a.log, svc, docs),
	)
	r.Get(
		"/catalogs/{catalogId}/datasets/{id}",
		handlers.NewRetrieveDatasetByIDHandler(a.log, svc, docs),
	)
}

func (a *catalogAPI) addProbeHandlers(r chi.Router) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())
}
