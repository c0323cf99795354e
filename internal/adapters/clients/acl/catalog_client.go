package acl

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/dosecalc-service/internal/adapters/clients/acl/compound"
	"github.com/jsamuelsen11/dosecalc-service/internal/domain/reagent"
	"github.com/jsamuelsen11/dosecalc-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/dosecalc-service/internal/ports"
)

// Compile-time interface check.
var _ ports.ReagentCatalog = (*CatalogClient)(nil)

// CatalogClient is the outbound adapter for the downstream chemreg chemical
// registry. It implements [ports.ReagentCatalog].
//
// All methods translate between our domain types and the registry's
// representations via the ACL translators in sub-package [compound]. HTTP
// errors are mapped to domain errors (ErrNotFound, ErrValidation, etc.) by
// [TranslateHTTPError].
//
// The underlying [httpclient.Client] provides circuit breaking, retry with
// exponential backoff, OpenTelemetry tracing, and health checking
// ([ports.HealthChecker]) for every outbound call.
type CatalogClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewCatalogClient creates a CatalogClient that sends requests through the
// given [httpclient.Client]. The client's BaseURL should point to the
// registry root (e.g. "https://chemreg.example.com"). The logger is used for
// error-level diagnostics on failed or unexpected responses.
func NewCatalogClient(client *httpclient.Client, logger *slog.Logger) *CatalogClient {
	return &CatalogClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// ListReagents fetches all registered compounds from GET /api/v2/compounds
// and returns them as domain reagents.
func (c *CatalogClient) ListReagents(ctx context.Context) ([]reagent.Reagent, error) {
	var dto compound.CompoundListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, "/api/v2/compounds", http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return compound.ToDomainReagentList(dto), nil
}

// GetReagent fetches a single compound by name from
// GET /api/v2/compounds/{name}. The name is path-escaped, so reagent names
// with spaces ("sodium chloride") resolve correctly. Returns
// [domain.ErrNotFound] if the registry has no such compound.
func (c *CatalogClient) GetReagent(ctx context.Context, name string) (*reagent.Reagent, error) {
	path := "/api/v2/compounds/" + url.PathEscape(name)

	var dto compound.CompoundDTO
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	result := compound.ToDomainReagent(&dto)
	return &result, nil
}
