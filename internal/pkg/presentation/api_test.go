package presentation

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"

	"github.com/diwise/dataset-catalog/internal/pkg/application/services/catalogs"
	"github.com/diwise/dataset-catalog/internal/pkg/application/services/organisations"
	"github.com/diwise/dataset-catalog/internal/pkg/infrastructure/cache"
	"github.com/diwise/dataset-catalog/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/dataset-catalog/internal/pkg/presentation/handlers"
)

func NewAppForTesting(t *testing.T) (*is.I, *httptest.Server) {
	is := is.New(t)

	db, err := database.NewFileStore(strings.NewReader(dataFile))
	is.NoErr(err)

	orgs, err := organisations.NewRegistry(strings.NewReader(organisationsFile), "")
	is.NoErr(err)

	svc := catalogs.NewCatalogService(db, orgs, "https://datasets.example.com/catalogs", "https://organizations.example.com")
	api := newCatalogAPI(context.Background(), chi.NewRouter(), svc, handlers.Documents{Cache: cache.NewNullCache()})

	return is, httptest.NewServer(api.router)
}

func NewTestRequest(is *is.I, ts *httptest.Server, method, path, accept string) (*http.Response, string) {
	req, err := http.NewRequest(method, ts.URL+path, nil)
	is.NoErr(err)
	req.Header.Add("Accept", accept)

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	is.NoErr(err)

	return resp, string(respBody)
}

func TestHealthProbe(t *testing.T) {
	is, ts := NewAppForTesting(t)
	defer ts.Close()

	resp, _ := NewTestRequest(is, ts, http.MethodGet, "/health", "")
	is.Equal(resp.StatusCode, http.StatusOK)
}

func TestMetrics(t *testing.T) {
	is, ts := NewAppForTesting(t)
	defer ts.Close()

	NewTestRequest(is, ts, http.MethodGet, "/catalogs", "application/json")
	resp, body := NewTestRequest(is, ts, http.MethodGet, "/metrics", "text/plain")

	is.Equal(resp.StatusCode, http.StatusOK)
	is.True(strings.Contains(body, "dataset_catalog_documents_served_total")) // served documents should be counted
}

func TestGetCatalogs(t *testing.T) {
	is, ts := NewAppForTesting(t)
	defer ts.Close()

	resp, body := NewTestRequest(is, ts, http.MethodGet, "/catalogs", "text/turtle")

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(resp.Header.Get("Content-Type"), "text/turtle; charset=utf-8")
	is.True(strings.Contains(body, "<https://datasets.example.com/catalogs/123456789>"))
	is.True(strings.Contains(body, "<https://organizations.example.com/organizations/123456789>"))
	is.True(strings.Contains(body, `"Kommunen"@nb`)) // publisher name from the organisation registry
	is.True(strings.Contains(body, "<http://example.com/a>"))
	is.True(!strings.Contains(body, "<http://example.com/hidden>")) // unpublished datasets should not be exposed
}

func TestGetCatalogsAsJSONIsNotAcceptable(t *testing.T) {
	is, ts := NewAppForTesting(t)
	defer ts.Close()

	resp, _ := NewTestRequest(is, ts, http.MethodGet, "/catalogs", "application/json")
	is.Equal(resp.StatusCode, http.StatusNotAcceptable)
}

func TestGetDataset(t *testing.T) {
	is, ts := NewAppForTesting(t)
	defer ts.Close()

	resp, body := NewTestRequest(is, ts, http.MethodGet, "/catalogs/123456789/datasets/a", "text/turtle")
	is.Equal(resp.StatusCode, http.StatusOK)
	is.True(strings.Contains(body, "<http://example.com/a>"))

	resp, _ = NewTestRequest(is, ts, http.MethodGet, "/catalogs/123456789/datasets/hidden", "text/turtle")
	is.Equal(resp.StatusCode, http.StatusNotFound)

	resp, _ = NewTestRequest(is, ts, http.MethodGet, "/catalogs/000000000", "text/turtle")
	is.Equal(resp.StatusCode, http.StatusNotFound)
}

const dataFile string = `
catalogs:
  - id: "123456789"
    title:
      nb: Datakatalog for Kommunen
datasets:
  - id: a
    catalogId: "123456789"
    uri: http://example.com/a
    published: true
    title:
      nb: Badetemperatur
  - id: hidden
    catalogId: "123456789"
    uri: http://example.com/hidden
    published: false
`

const organisationsFile string = `
organisations:
  - id: "123456789"
    name: Kommunen
`
