package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"

	"github.com/diwise/dataset-catalog/internal/pkg/application/services/catalogs"
	"github.com/diwise/dataset-catalog/internal/pkg/infrastructure/cache"
	"github.com/diwise/dataset-catalog/internal/pkg/infrastructure/rdf"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

var tracer = otel.Tracer("dataset-catalog/api")

var documentsServed = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "dataset_catalog_documents_served_total",
	Help: "The number of linked data documents requested, by kind and outcome",
}, []string{"kind", "outcome"})

const (
	outcomeRendered      string = "rendered"
	outcomeCached        string = "cached"
	outcomeNotAcceptable string = "not_acceptable"
	outcomeNotFound      string = "not_found"
	outcomeFailed        string = "failed"
)

type graphFunc func(ctx context.Context) (*rdf.Graph, error)

//Documents is the cache and time to live used for rendered documents
type Documents struct {
	Cache cache.Cache
	TTL   time.Duration
}

func NewRetrieveCatalogsHandler(logger zerolog.Logger, svc catalogs.CatalogService, docs Documents) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serveGraph(w, r, logger, docs, "catalogs", cache.Key("catalogs"), svc.GetAll)
	})
}

func NewRetrieveCatalogByIDHandler(logger zerolog.Logger, svc catalogs.CatalogService, docs Documents) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		catalogID, _ := url.QueryUnescape(chi.URLParam(r, "catalogId"))

		serveGraph(w, r, logger, docs, "catalog", cache.Key("catalog", catalogID), func(ctx context.Context) (*rdf.Graph, error) {
			return svc.GetByID(ctx, catalogID)
		})
	})
}

func NewRetrieveDatasetByIDHandler(logger zerolog.Logger, svc catalogs.CatalogService, docs Documents) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		catalogID, _ := url.QueryUnescape(chi.URLParam(r, "catalogId"))
		datasetID, _ := url.QueryUnescape(chi.URLParam(r, "id"))

		serveGraph(w, r, logger, docs, "dataset", cache.Key("dataset", catalogID, datasetID), func(ctx context.Context) (*rdf.Graph, error) {
			return svc.GetDatasetByID(ctx, catalogID, datasetID)
		})
	})
}

//serveGraph negotiates the response format before anything is projected, so
//that a request for an unsupported format never causes any storage access
func serveGraph(w http.ResponseWriter, r *http.Request, logger zerolog.Logger, docs Documents, kind, key string, project graphFunc) {
	var err error
	ctx, span := tracer.Start(r.Context(), "retrieve-"+kind)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

	format, err := rdf.NegotiateFormat(r.Header.Get("Accept"))
	if err != nil {
		log.Info().Str("accept", r.Header.Get("Accept")).Msg("no acceptable format requested")
		documentsServed.WithLabelValues(kind, outcomeNotAcceptable).Inc()
		w.WriteHeader(http.StatusNotAcceptable)
		return
	}

	key = key + ":" + string(format)

	if docs.Cache != nil {
		body, hit, cacheErr := docs.Cache.Get(ctx, key)
		if cacheErr != nil {
			log.Warn().Err(cacheErr).Msg("failed to read from cache")
		} else if hit {
			documentsServed.WithLabelValues(kind, outcomeCached).Inc()
			writeDocument(w, format, body)
			return
		}
	}

	g, err := project(ctx)
	if err != nil {
		if errors.Is(err, catalogs.ErrNotFound) {
			documentsServed.WithLabelValues(kind, outcomeNotFound).Inc()
			w.WriteHeader(http.StatusNotFound)
			return
		}

		log.Error().Err(err).Msgf("failed to project %s", kind)
		documentsServed.WithLabelValues(kind, outcomeFailed).Inc()
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	buf := &bytes.Buffer{}
	if err = rdf.Write(buf, g, format); err != nil {
		log.Error().Err(err).Msgf("failed to serialize %s", kind)
		documentsServed.WithLabelValues(kind, outcomeFailed).Inc()
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if docs.Cache != nil {
		if cacheErr := docs.Cache.Set(ctx, key, buf.Bytes(), docs.TTL); cacheErr != nil {
			log.Warn().Err(cacheErr).Msg("failed to write to cache")
		}
	}

	documentsServed.WithLabelValues(kind, outcomeRendered).Inc()
	writeDocument(w, format, buf.Bytes())
}

func writeDocument(w http.ResponseWriter, format rdf.Format, body []byte) {
	w.Header().Add("Content-Type", format.ContentType())
	w.Header().Add("Cache-Control", "max-age=600")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
