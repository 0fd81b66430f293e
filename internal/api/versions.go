package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/WennerMedia/fastly-promise/internal/types"
)

// GetConfigVersions lists every config version of the service. The API
// returns a bare JSON array for this endpoint.
func GetConfigVersions(ctx context.Context, httpClient *http.Client, endpoint, apiKey, serviceID string) ([]types.ConfigVersion, error) {
	if err := types.RequireServiceID(serviceID); err != nil {
		return nil, err
	}
	var versions []types.ConfigVersion
	url := fmt.Sprintf("/service/%s/version", serviceID)
	if err := DoJSON(ctx, httpClient, endpoint, apiKey, http.MethodGet, url, nil, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

// GetConfigVersion fetches a single config version by number.
func GetConfigVersion(ctx context.Context, httpClient *http.Client, endpoint, apiKey, serviceID string, version int) (*types.ConfigVersion, error) {
	if err := types.RequireServiceID(serviceID); err != nil {
		return nil, err
	}
	if err := types.RequireVersion(version); err != nil {
		return nil, err
	}
	var v types.ConfigVersion
	url := fmt.Sprintf("/service/%s/version/%d", serviceID, version)
	if err := DoJSON(ctx, httpClient, endpoint, apiKey, http.MethodGet, url, nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// GetActiveConfigVersion returns the version currently serving traffic, or
// nil when the service has none. At most one version is active at a time,
// so the first hit wins.
func GetActiveConfigVersion(ctx context.Context, httpClient *http.Client, endpoint, apiKey, serviceID string) (*types.ConfigVersion, error) {
	versions, err := GetConfigVersions(ctx, httpClient, endpoint, apiKey, serviceID)
	if err != nil {
		return nil, err
	}
	for i := range versions {
		if versions[i].Active {
			return &versions[i], nil
		}
	}
	return nil, nil
}

// ResolveVersion turns the "use the active version" default into a concrete
// version number. Positive versions pass through untouched.
func ResolveVersion(ctx context.Context, httpClient *http.Client, endpoint, apiKey, serviceID string, version int) (int, error) {
	if version > 0 {
		return version, nil
	}
	active, err := GetActiveConfigVersion(ctx, httpClient, endpoint, apiKey, serviceID)
	if err != nil {
		return 0, err
	}
	if active == nil {
		return 0, types.ErrNoActiveVersion
	}
	return active.Number, nil
}

// ValidateConfigVersion runs server-side validation on a config version
// without changing it.
func ValidateConfigVersion(ctx context.Context, httpClient *http.Client, endpoint, apiKey, serviceID string, version int) (*types.ValidationResult, error) {
	if err := types.RequireServiceID(serviceID); err != nil {
		return nil, err
	}
	if err := types.RequireVersion(version); err != nil {
		return nil, err
	}
	var vr types.ValidationResult
	url := fmt.Sprintf("/service/%s/version/%d/validate", serviceID, version)
	if err := DoJSON(ctx, httpClient, endpoint, apiKey, http.MethodGet, url, nil, &vr); err != nil {
		return nil, err
	}
	return &vr, nil
}

// CreateConfigVersion creates a fresh, empty config version.
func CreateConfigVersion(ctx context.Context, httpClient *http.Client, endpoint, apiKey, serviceID string) (*types.ConfigVersion, error) {
	if err := types.RequireServiceID(serviceID); err != nil {
		return nil, err
	}
	var v types.ConfigVersion
	url := fmt.Sprintf("/service/%s/version", serviceID)
	if err := DoJSON(ctx, httpClient, endpoint, apiKey, http.MethodPost, url, nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// UpdateConfigVersion rewrites the deployed/staging/testing flags of a
// config version. All three are sent on every call.
func UpdateConfigVersion(ctx context.Context, httpClient *http.Client, endpoint, apiKey, serviceID string, version int, req types.UpdateConfigVersionRequest) (*types.ConfigVersion, error) {
	if err := types.RequireServiceID(serviceID); err != nil {
		return nil, err
	}
	if err := types.RequireVersion(version); err != nil {
		return nil, err
	}
	opts := &types.RequestOptions{Form: map[string]string{
		"deployed": strconv.FormatBool(req.Deployed),
		"staging":  strconv.FormatBool(req.Staging),
		"testing":  strconv.FormatBool(req.Testing),
	}}
	var v types.ConfigVersion
	url := fmt.Sprintf("/service/%s/version/%d", serviceID, version)
	if err := DoJSON(ctx, httpClient, endpoint, apiKey, http.MethodPut, url, opts, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// ActivateConfigVersion puts a config version into service.
func ActivateConfigVersion(ctx context.Context, httpClient *http.Client, endpoint, apiKey, serviceID string, version int) (*types.ConfigVersion, error) {
	return putVersionAction(ctx, httpClient, endpoint, apiKey, serviceID, version, "activate")
}

// DeactivateConfigVersion takes a config version out of service.
func DeactivateConfigVersion(ctx context.Context, httpClient *http.Client, endpoint, apiKey, serviceID string, version int) (*types.ConfigVersion, error) {
	return putVersionAction(ctx, httpClient, endpoint, apiKey, serviceID, version, "deactivate")
}

// LockConfigVersion freezes a config version against further edits.
func LockConfigVersion(ctx context.Context, httpClient *http.Client, endpoint, apiKey, serviceID string, version int) (*types.ConfigVersion, error) {
	return putVersionAction(ctx, httpClient, endpoint, apiKey, serviceID, version, "lock")
}

// CloneConfigVersion copies a config version into a new editable one.
// Versions below 1 mean "clone whatever is active".
func CloneConfigVersion(ctx context.Context, httpClient *http.Client, endpoint, apiKey, serviceID string, version int) (*types.ConfigVersion, error) {
	if err := types.RequireServiceID(serviceID); err != nil {
		return nil, err
	}
	version, err := ResolveVersion(ctx, httpClient, endpoint, apiKey, serviceID, version)
	if err != nil {
		return nil, err
	}
	return putVersionAction(ctx, httpClient, endpoint, apiKey, serviceID, version, "clone")
}

func putVersionAction(ctx context.Context, httpClient *http.Client, endpoint, apiKey, serviceID string, version int, action string) (*types.ConfigVersion, error) {
	if err := types.RequireServiceID(serviceID); err != nil {
		return nil, err
	}
	if err := types.RequireVersion(version); err != nil {
		return nil, err
	}
	var v types.ConfigVersion
	url := fmt.Sprintf("/service/%s/version/%d/%s", serviceID, version, action)
	if err := DoJSON(ctx, httpClient, endpoint, apiKey, http.MethodPut, url, nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}
