package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/WennerMedia/fastly-promise/internal/types"
)

// PurgeURL evicts a single cached object by its public URL. The URL must
// be absolute because it names a CDN-facing host, not an API path; the
// credential-stripping rule in Do keeps the api key off that host.
func PurgeURL(ctx context.Context, httpClient *http.Client, endpoint, apiKey, rawurl string, soft bool) (*types.Purge, error) {
	if rawurl == "" {
		return nil, types.ErrMissingURL
	}
	if !isAbsoluteURL(rawurl) {
		return nil, types.ErrPurgeURLNotAbsolute
	}
	var p types.Purge
	if err := DoJSON(ctx, httpClient, endpoint, apiKey, "PURGE", rawurl, &types.RequestOptions{SoftPurge: soft}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// PurgeAll evicts everything the service has cached. The API offers no
// soft variant of this endpoint.
func PurgeAll(ctx context.Context, httpClient *http.Client, endpoint, apiKey, serviceID string) (*types.Purge, error) {
	if err := types.RequireServiceID(serviceID); err != nil {
		return nil, err
	}
	var p types.Purge
	url := fmt.Sprintf("/service/%s/purge_all", serviceID)
	if err := DoJSON(ctx, httpClient, endpoint, apiKey, http.MethodPost, url, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// PurgeKey evicts every object tagged with the given surrogate key.
func PurgeKey(ctx context.Context, httpClient *http.Client, endpoint, apiKey, serviceID, key string, soft bool) (*types.Purge, error) {
	if err := types.RequireServiceID(serviceID); err != nil {
		return nil, err
	}
	if err := types.RequirePurgeKey(key); err != nil {
		return nil, err
	}
	var p types.Purge
	url := fmt.Sprintf("/service/%s/purge/%s", serviceID, key)
	if err := DoJSON(ctx, httpClient, endpoint, apiKey, http.MethodPost, url, &types.RequestOptions{SoftPurge: soft}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
