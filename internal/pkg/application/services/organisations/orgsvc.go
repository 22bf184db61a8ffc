package organisations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"gopkg.in/yaml.v2"

	"github.com/diwise/dataset-catalog/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

var tracer = otel.Tracer("dataset-catalog/svcs/organisations")

var ErrNotFound = errors.New("organisation not found")

//Registry looks up organisations by their organisation number
//
//go:generate moq -rm -out registry_mock.go . Registry
type Registry interface {
	Get(ctx context.Context, organisationID string) (*domain.Organisation, error)
}

type registryConfig struct {
	Organisations []domain.Organisation `yaml:"organisations"`
}

//NewRegistry loads organisations from a yaml config. Organisations that are
//not configured are looked up in the organization catalog when a host is given.
func NewRegistry(input io.Reader, organizationCatalogHost string) (Registry, error) {
	r := &registry{
		organisations: map[string]domain.Organisation{},
		host:          strings.TrimSuffix(organizationCatalogHost, "/"),
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	if input == nil {
		return r, nil
	}

	cfg := registryConfig{}
	if err := yaml.NewDecoder(input).Decode(&cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode organisations: %w", err)
	}

	for _, org := range cfg.Organisations {
		r.organisations[org.ID] = org
	}

	return r, nil
}

type registry struct {
	mu            sync.RWMutex
	organisations map[string]domain.Organisation
	host          string
	httpClient    http.Client
}

func (r *registry) Get(ctx context.Context, organisationID string) (*domain.Organisation, error) {
	r.mu.RLock()
	org, ok := r.organisations[organisationID]
	r.mu.RUnlock()

	if ok {
		return &org, nil
	}

	if r.host == "" {
		return nil, fmt.Errorf("organisation %s: %w", organisationID, ErrNotFound)
	}

	fetched, err := r.fetch(ctx, organisationID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.organisations[organisationID] = *fetched
	r.mu.Unlock()

	return fetched, nil
}

func (r *registry) fetch(ctx context.Context, organisationID string) (org *domain.Organisation, err error) {
	ctx, span := tracer.Start(ctx, "fetch-organisation")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.host+"/organizations/"+url.PathEscape(organisationID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Add("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("organisation %s: %w", organisationID, ErrNotFound)
	}

	if resp.StatusCode != http.StatusOK {
		log.Error().Int("status", resp.StatusCode).Str("organisation", organisationID).Msg("organization catalog request failed")
		return nil, fmt.Errorf("organization catalog returned status code %d", resp.StatusCode)
	}

	org = &domain.Organisation{}
	if err = json.NewDecoder(resp.Body).Decode(org); err != nil {
		return nil, fmt.Errorf("failed to unmarshal organisation: %w", err)
	}

	if org.ID == "" {
		org.ID = organisationID
	}

	return org, nil
}
