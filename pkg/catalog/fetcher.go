package catalog

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	internalhttp "github.com/Qianqian117/neovate-code/internal/http"
	"github.com/Qianqian117/neovate-code/pkg/types"
)

// Endpoint describes one provider's model-list endpoint.
type Endpoint struct {
	// Provider is the catalog key the fetched models are registered under.
	Provider string

	// URL is the full model-list URL (e.g. "https://api.openai.com/v1/models").
	URL string

	// AuthMethod selects the header scheme: "bearer", "api-key", "anthropic".
	AuthMethod string

	// APIKey is the static credential for AuthMethod.
	APIKey string

	// TokenSource, when set, supplies OAuth access tokens and takes
	// precedence over APIKey. The token is always sent as a bearer token.
	TokenSource oauth2.TokenSource
}

// FetcherConfig configures a Fetcher.
type FetcherConfig struct {
	// Timeout bounds each model-list request (default 30s). The fetcher owns
	// its timeout; the resolver never waits on the network.
	Timeout time.Duration

	// MaxRetries is passed through to the HTTP client (default 3).
	MaxRetries int

	// RequestsPerMinute paces requests across endpoints (0 = no pacing).
	RequestsPerMinute int
}

// Fetcher populates a Catalog from remote provider model-list endpoints.
// It is the I/O-bound collaborator the resolver depends on only as a
// precondition: Fetch either completes before resolution runs or fails with
// a catalog_unavailable error.
type Fetcher struct {
	client    *internalhttp.Client
	limiter   *rate.Limiter
	endpoints []Endpoint
}

// modelListResponse is the OpenAI-compatible model-list wire format, which
// every supported endpoint speaks.
type modelListResponse struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

// NewFetcher creates a Fetcher for the given endpoints.
func NewFetcher(config FetcherConfig, endpoints []Endpoint) *Fetcher {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if config.RequestsPerMinute > 0 {
		interval := time.Minute / time.Duration(config.RequestsPerMinute)
		limiter = rate.NewLimiter(rate.Every(interval), 1)
	}

	return &Fetcher{
		client: internalhttp.NewClient(internalhttp.Config{
			Timeout:    config.Timeout,
			MaxRetries: config.MaxRetries,
		}),
		limiter:   limiter,
		endpoints: append([]Endpoint(nil), endpoints...),
	}
}

// Fetch queries every endpoint and builds a Catalog from the union of their
// model lists. Any endpoint failure aborts the fetch and returns a
// catalog_unavailable resolution error; a partially fetched catalog is never
// returned. Endpoints sharing a provider contribute to the same model list.
// Descriptors carry provider and name only; remote model lists expose no
// further metadata, so Merge over Default() is the usual way to keep the
// built-in metadata for models both sides know.
func (f *Fetcher) Fetch(ctx context.Context) (*Catalog, error) {
	table := make(map[string][]types.Model, len(f.endpoints))

	for _, ep := range f.endpoints {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, types.NewCatalogUnavailableError(err)
		}

		models, err := f.fetchEndpoint(ctx, ep)
		if err != nil {
			return nil, types.NewCatalogUnavailableError(
				fmt.Errorf("provider %q: %w", ep.Provider, err))
		}
		table[ep.Provider] = append(table[ep.Provider], models...)
	}

	return Build(table), nil
}

func (f *Fetcher) fetchEndpoint(ctx context.Context, ep Endpoint) ([]types.Model, error) {
	headers, err := f.authHeaders(ep)
	if err != nil {
		return nil, err
	}

	var resp modelListResponse
	if err := f.client.GetJSON(ctx, ep.URL, headers, &resp); err != nil {
		return nil, err
	}

	models := make([]types.Model, 0, len(resp.Data))
	for _, entry := range resp.Data {
		if entry.ID == "" {
			continue
		}
		models = append(models, types.Model{Provider: ep.Provider, Name: entry.ID})
	}
	return models, nil
}

func (f *Fetcher) authHeaders(ep Endpoint) (map[string]string, error) {
	if ep.TokenSource != nil {
		token, err := ep.TokenSource.Token()
		if err != nil {
			return nil, fmt.Errorf("fetching oauth token: %w", err)
		}
		return internalhttp.AuthHeaders("bearer", token.AccessToken), nil
	}

	if ep.APIKey == "" {
		return nil, nil
	}
	return internalhttp.AuthHeaders(ep.AuthMethod, ep.APIKey), nil
}
