package catalogs

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.opentelemetry.io/otel"

	"github.com/diwise/dataset-catalog/internal/pkg/application/dcat"
	"github.com/diwise/dataset-catalog/internal/pkg/application/services/organisations"
	"github.com/diwise/dataset-catalog/internal/pkg/domain"
	"github.com/diwise/dataset-catalog/internal/pkg/infrastructure/rdf"
	"github.com/diwise/dataset-catalog/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

var tracer = otel.Tracer("dataset-catalog/svcs/catalogs")

var ErrNotFound = errors.New("not found")

//CatalogService projects stored catalogs and datasets into DCAT graphs
//
//go:generate moq -rm -out catalogsvc_mock.go . CatalogService
type CatalogService interface {
	GetAll(ctx context.Context) (*rdf.Graph, error)
	GetByID(ctx context.Context, catalogID string) (*rdf.Graph, error)
	GetDatasetByID(ctx context.Context, catalogID, datasetID string) (*rdf.Graph, error)
}

func NewCatalogService(db database.Datastore, orgs organisations.Registry, catalogURIHost, organizationCatalogHost string) CatalogService {
	catalogURIHost = strings.TrimSuffix(catalogURIHost, "/")

	return &catalogSvc{
		db:                      db,
		orgs:                    orgs,
		catalogURIHost:          catalogURIHost,
		organizationCatalogHost: strings.TrimSuffix(organizationCatalogHost, "/"),
		datasetURIPattern:       regexp.MustCompile("^" + regexp.QuoteMeta(catalogURIHost) + "/([^/]+)/datasets/([^/]+)$"),
	}
}

type catalogSvc struct {
	db                      database.Datastore
	orgs                    organisations.Registry
	catalogURIHost          string
	organizationCatalogHost string
	datasetURIPattern       *regexp.Regexp
}

func (svc *catalogSvc) GetAll(ctx context.Context) (g *rdf.Graph, err error) {
	ctx, span := tracer.Start(ctx, "get-all-catalogs")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	catalogs, err := svc.db.GetCatalogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve catalogs: %w", err)
	}

	ids := make([]string, 0, len(catalogs))
	for i := range catalogs {
		ids = append(ids, catalogs[i].ID)
		catalogs[i] = svc.withPublisher(ctx, catalogs[i])
	}

	counts, err := svc.db.GetCatalogCounts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count datasets: %w", err)
	}

	return dcat.ProjectCatalogs(ctx, catalogs, svc.newDatasetSource(counts), svc.catalogURIHost)
}

func (svc *catalogSvc) GetByID(ctx context.Context, catalogID string) (g *rdf.Graph, err error) {
	ctx, span := tracer.Start(ctx, "get-catalog")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	catalog, datasets, err := svc.catalogWithDatasets(ctx, catalogID)
	if err != nil {
		return nil, err
	}

	g = dcat.NewGraph()
	dcat.ProjectCatalog(g, *catalog, datasets, svc.catalogURIHost)

	return g, nil
}

func (svc *catalogSvc) GetDatasetByID(ctx context.Context, catalogID, datasetID string) (g *rdf.Graph, err error) {
	ctx, span := tracer.Start(ctx, "get-dataset")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	catalog, datasets, err := svc.catalogWithDatasets(ctx, catalogID)
	if err != nil {
		return nil, err
	}

	g, err = dcat.ProjectCatalogDataset(*catalog, datasets, datasetID, svc.catalogURIHost)
	if errors.Is(err, dcat.ErrDatasetNotFound) {
		return nil, fmt.Errorf("%s: %w", err.Error(), ErrNotFound)
	}

	return g, err
}

func (svc *catalogSvc) catalogWithDatasets(ctx context.Context, catalogID string) (*domain.Catalog, []domain.Dataset, error) {
	catalog, err := svc.db.GetCatalog(ctx, catalogID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil, fmt.Errorf("no catalog with id %s: %w", catalogID, ErrNotFound)
		}
		return nil, nil, fmt.Errorf("failed to retrieve catalog %s: %w", catalogID, err)
	}

	enriched := svc.withPublisher(ctx, *catalog)

	datasets, err := svc.newDatasetSource(nil).GetDatasetsByCatalog(ctx, catalogID)
	if err != nil {
		return nil, nil, err
	}

	return &enriched, datasets, nil
}

//withPublisher gives a catalog without publisher its owning organisation as
//publisher, named from the organisation registry when possible
func (svc *catalogSvc) withPublisher(ctx context.Context, c domain.Catalog) domain.Catalog {
	if c.Publisher != nil || c.ID == "" {
		return c
	}

	p := &domain.Publisher{ID: c.ID}
	if svc.organizationCatalogHost != "" {
		p.URI = svc.organizationCatalogHost + "/organizations/" + c.ID
	}

	if svc.orgs != nil {
		org, err := svc.orgs.Get(ctx, c.ID)
		if err == nil {
			p.Name = org.Name
		} else if !errors.Is(err, organisations.ErrNotFound) {
			log := logging.GetFromContext(ctx)
			log.Warn().Err(err).Str("catalog", c.ID).Msg("failed to look up publisher name")
		}
	}

	c.Publisher = p
	return c
}

func (svc *catalogSvc) newDatasetSource(counts map[string]int64) *datasetSource {
	return &datasetSource{
		svc:    svc,
		counts: counts,
		loaded: map[string][]domain.Dataset{},
	}
}

//datasetSource hands datasets to the projector with references to datasets
//registered in this service rewritten to their original uris. Datasets
//are loaded once per catalog and request.
type datasetSource struct {
	svc    *catalogSvc
	counts map[string]int64
	loaded map[string][]domain.Dataset
}

func (s *datasetSource) GetDatasetsByCatalog(ctx context.Context, catalogID string) ([]domain.Dataset, error) {
	if n, ok := s.counts[catalogID]; ok && n == 0 {
		return []domain.Dataset{}, nil
	}

	datasets, err := s.load(ctx, catalogID)
	if err != nil {
		return nil, err
	}

	resolved := make([]domain.Dataset, len(datasets))
	for i, ds := range datasets {
		resolved[i] = ds
		resolved[i].References = s.resolveReferences(ctx, ds.References)
	}

	return resolved, nil
}

func (s *datasetSource) load(ctx context.Context, catalogID string) ([]domain.Dataset, error) {
	if datasets, ok := s.loaded[catalogID]; ok {
		return datasets, nil
	}

	datasets, err := s.svc.db.GetDatasetsByCatalog(ctx, catalogID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve datasets of catalog %s: %w", catalogID, err)
	}

	s.loaded[catalogID] = datasets
	return datasets, nil
}

func (s *datasetSource) resolveReferences(ctx context.Context, refs []domain.Reference) []domain.Reference {
	if len(refs) == 0 {
		return refs
	}

	resolved := make([]domain.Reference, len(refs))
	for i, ref := range refs {
		resolved[i] = ref
		if uri := s.originalURI(ctx, ref.Source); uri != "" {
			resolved[i].Source = uri
		}
	}

	return resolved
}

//originalURI returns the original uri of the dataset that source points to, if
//source is a dataset uri minted by this service
func (s *datasetSource) originalURI(ctx context.Context, source string) string {
	match := s.svc.datasetURIPattern.FindStringSubmatch(source)
	if match == nil {
		return ""
	}

	catalogID, datasetID := match[1], match[2]

	datasets, err := s.load(ctx, catalogID)
	if err != nil {
		log := logging.GetFromContext(ctx)
		log.Warn().Err(err).Str("reference", source).Msg("unable to resolve dataset reference")
		return ""
	}

	for _, ds := range datasets {
		if ds.ID == datasetID {
			return ds.OriginalURI
		}
	}

	return ""
}
