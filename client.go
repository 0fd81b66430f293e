// Package fastly is a client for the Fastly CDN REST API: cache purging,
// config version management and VCL file management, all built on one
// generic request primitive.
package fastly

import (
	"context"
	"net/http"
	"time"

	"github.com/WennerMedia/fastly-promise/internal/api"
)

// DefaultEndpoint is the API host every relative URL is resolved against.
const DefaultEndpoint = "https://api.fastly.com"

// Version is the client's release version, advertised in the User-Agent
// header of every request.
const Version = api.Version

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

// New constructs a Client authenticated by the given API key. The key is
// the only required input; functional options cover the rest.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	c := &Client{
		endpoint: DefaultEndpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// --------------------------------------------------------------------
// Generic request - the primitive every operation is built on
// --------------------------------------------------------------------

// Request executes one HTTP call against the API and returns the full
// response. Relative urls are resolved against the endpoint; absolute urls
// pass through untouched, losing the Fastly-Key header when they point off
// the endpoint. The JSON field of the result is populated only when the
// response declares exactly "application/json". See RequestOptions for the
// per-call knobs.
func (c *Client) Request(ctx context.Context, method, url string, opts *RequestOptions) (*Response, error) {
	return api.Request(ctx, c.http, c.endpoint, c.apiKey, method, url, opts)
}

// --------------------------------------------------------------------
// Purge operations - delegated to internal/api
// --------------------------------------------------------------------

// Purge evicts a single object by its public URL. The URL must be absolute.
// With soft true the object is marked stale instead of evicted.
func (c *Client) Purge(ctx context.Context, url string, soft bool) (*Purge, error) {
	return api.PurgeURL(ctx, c.http, c.endpoint, c.apiKey, url, soft)
}

// PurgeAll evicts everything the service has cached. The API has no soft
// variant of this endpoint.
func (c *Client) PurgeAll(ctx context.Context, serviceID string) (*Purge, error) {
	return api.PurgeAll(ctx, c.http, c.endpoint, c.apiKey, serviceID)
}

// PurgeKey evicts every object tagged with the given surrogate key.
func (c *Client) PurgeKey(ctx context.Context, serviceID, key string, soft bool) (*Purge, error) {
	return api.PurgeKey(ctx, c.http, c.endpoint, c.apiKey, serviceID, key, soft)
}

// --------------------------------------------------------------------
// Config version operations - delegated to internal/api
// --------------------------------------------------------------------

// GetConfigVersions lists every config version of a service.
func (c *Client) GetConfigVersions(ctx context.Context, serviceID string) ([]ConfigVersion, error) {
	return api.GetConfigVersions(ctx, c.http, c.endpoint, c.apiKey, serviceID)
}

// GetConfigVersion fetches a single config version by number.
func (c *Client) GetConfigVersion(ctx context.Context, serviceID string, version int) (*ConfigVersion, error) {
	return api.GetConfigVersion(ctx, c.http, c.endpoint, c.apiKey, serviceID, version)
}

// GetActiveConfigVersion returns the version currently serving traffic, or
// nil when the service has none.
func (c *Client) GetActiveConfigVersion(ctx context.Context, serviceID string) (*ConfigVersion, error) {
	return api.GetActiveConfigVersion(ctx, c.http, c.endpoint, c.apiKey, serviceID)
}

// ValidateConfigVersion runs server-side validation on a config version.
func (c *Client) ValidateConfigVersion(ctx context.Context, serviceID string, version int) (*ValidationResult, error) {
	return api.ValidateConfigVersion(ctx, c.http, c.endpoint, c.apiKey, serviceID, version)
}

// CreateConfigVersion creates a fresh, empty config version.
func (c *Client) CreateConfigVersion(ctx context.Context, serviceID string) (*ConfigVersion, error) {
	return api.CreateConfigVersion(ctx, c.http, c.endpoint, c.apiKey, serviceID)
}

// UpdateConfigVersion rewrites the deployed/staging/testing flags of a
// config version. All three flags are sent on every call.
func (c *Client) UpdateConfigVersion(ctx context.Context, serviceID string, version int, req UpdateConfigVersionRequest) (*ConfigVersion, error) {
	return api.UpdateConfigVersion(ctx, c.http, c.endpoint, c.apiKey, serviceID, version, req)
}

// ActivateConfigVersion puts a config version into service.
func (c *Client) ActivateConfigVersion(ctx context.Context, serviceID string, version int) (*ConfigVersion, error) {
	return api.ActivateConfigVersion(ctx, c.http, c.endpoint, c.apiKey, serviceID, version)
}

// DeactivateConfigVersion takes a config version out of service.
func (c *Client) DeactivateConfigVersion(ctx context.Context, serviceID string, version int) (*ConfigVersion, error) {
	return api.DeactivateConfigVersion(ctx, c.http, c.endpoint, c.apiKey, serviceID, version)
}

// CloneConfigVersion copies a config version into a new editable one.
// Versions below 1 clone whatever is active; without an active version the
// call fails with ErrNoActiveVersion.
func (c *Client) CloneConfigVersion(ctx context.Context, serviceID string, version int) (*ConfigVersion, error) {
	return api.CloneConfigVersion(ctx, c.http, c.endpoint, c.apiKey, serviceID, version)
}

// LockConfigVersion freezes a config version against further edits.
func (c *Client) LockConfigVersion(ctx context.Context, serviceID string, version int) (*ConfigVersion, error) {
	return api.LockConfigVersion(ctx, c.http, c.endpoint, c.apiKey, serviceID, version)
}

// --------------------------------------------------------------------
// VCL operations - delegated to internal/api
// --------------------------------------------------------------------

// GetBoilerplateVcl fetches the stock VCL template for a version as plain
// text.
func (c *Client) GetBoilerplateVcl(ctx context.Context, serviceID string, version int) (string, error) {
	return api.GetBoilerplateVcl(ctx, c.http, c.endpoint, c.apiKey, serviceID, version)
}

// GetAllVcl lists every VCL file on a config version.
func (c *Client) GetAllVcl(ctx context.Context, serviceID string, version int) ([]Vcl, error) {
	return api.GetAllVcl(ctx, c.http, c.endpoint, c.apiKey, serviceID, version)
}

// GetVcl fetches a single VCL file by name.
func (c *Client) GetVcl(ctx context.Context, serviceID string, version int, name string) (*Vcl, error) {
	return api.GetVcl(ctx, c.http, c.endpoint, c.apiKey, serviceID, version, name)
}

// GetMainVcl returns the VCL marked main on a config version, or nil when
// none carries the flag. Versions below 1 mean "the active version".
func (c *Client) GetMainVcl(ctx context.Context, serviceID string, version int) (*Vcl, error) {
	return api.GetMainVcl(ctx, c.http, c.endpoint, c.apiKey, serviceID, version)
}

// SetMainVcl marks the named VCL as the version's main program. Versions
// below 1 mean "the active version".
func (c *Client) SetMainVcl(ctx context.Context, serviceID, name string, version int) (*Vcl, error) {
	return api.SetMainVcl(ctx, c.http, c.endpoint, c.apiKey, serviceID, name, version)
}

// UploadNewVcl creates a VCL file on a config version. The name must be
// free: if a VCL with that name already exists the call fails with
// ErrVclExists before anything is uploaded. With setMain the new file is
// also promoted to main and the promotion result is returned.
func (c *Client) UploadNewVcl(ctx context.Context, serviceID string, version int, name, content string, setMain bool) (*Vcl, error) {
	return api.UploadNewVcl(ctx, c.http, c.endpoint, c.apiKey, serviceID, version, name, content, setMain)
}

// UpdateVcl replaces the content of an existing VCL file. With setMain the
// file is also promoted to main and the promotion result is returned.
func (c *Client) UpdateVcl(ctx context.Context, serviceID string, version int, name, content string, setMain bool) (*Vcl, error) {
	return api.UpdateVcl(ctx, c.http, c.endpoint, c.apiKey, serviceID, version, name, content, setMain)
}

// DeleteVcl removes a VCL file from a config version. Versions below 1
// mean "the active version".
func (c *Client) DeleteVcl(ctx context.Context, serviceID, name string, version int) error {
	return api.DeleteVcl(ctx, c.http, c.endpoint, c.apiKey, serviceID, name, version)
}
