package api

import (
	"context"
	"fmt"
	"net/http"

	apierrors "github.com/WennerMedia/fastly-promise/internal/errors"
	"github.com/WennerMedia/fastly-promise/internal/types"
)

// GetBoilerplateVcl fetches the stock VCL template for a version. The API
// serves it as plain text, so the raw body is the result.
func GetBoilerplateVcl(ctx context.Context, httpClient *http.Client, endpoint, apiKey, serviceID string, version int) (string, error) {
	if err := types.RequireServiceID(serviceID); err != nil {
		return "", err
	}
	if err := types.RequireVersion(version); err != nil {
		return "", err
	}
	url := fmt.Sprintf("/service/%s/version/%d/boilerplate", serviceID, version)
	resp, err := Do(ctx, httpClient, endpoint, apiKey, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	return string(resp.Body), nil
}

// GetAllVcl lists every VCL file on a config version.
func GetAllVcl(ctx context.Context, httpClient *http.Client, endpoint, apiKey, serviceID string, version int) ([]types.Vcl, error) {
	if err := types.RequireServiceID(serviceID); err != nil {
		return nil, err
	}
	if err := types.RequireVersion(version); err != nil {
		return nil, err
	}
	var vcls []types.Vcl
	url := fmt.Sprintf("/service/%s/version/%d/vcl", serviceID, version)
	if err := DoJSON(ctx, httpClient, endpoint, apiKey, http.MethodGet, url, nil, &vcls); err != nil {
		return nil, err
	}
	return vcls, nil
}

// GetVcl fetches a single VCL file by name.
func GetVcl(ctx context.Context, httpClient *http.Client, endpoint, apiKey, serviceID string, version int, name string) (*types.Vcl, error) {
	if err := types.RequireServiceID(serviceID); err != nil {
		return nil, err
	}
	if err := types.RequireVersion(version); err != nil {
		return nil, err
	}
	if err := types.RequireVclName(name); err != nil {
		return nil, err
	}
	var v types.Vcl
	url := fmt.Sprintf("/service/%s/version/%d/vcl/%s", serviceID, version, name)
	if err := DoJSON(ctx, httpClient, endpoint, apiKey, http.MethodGet, url, nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// GetMainVcl returns the VCL marked main on a config version, or nil when
// none carries the flag. Versions below 1 mean "the active version".
func GetMainVcl(ctx context.Context, httpClient *http.Client, endpoint, apiKey, serviceID string, version int) (*types.Vcl, error) {
	if err := types.RequireServiceID(serviceID); err != nil {
		return nil, err
	}
	version, err := ResolveVersion(ctx, httpClient, endpoint, apiKey, serviceID, version)
	if err != nil {
		return nil, err
	}
	vcls, err := GetAllVcl(ctx, httpClient, endpoint, apiKey, serviceID, version)
	if err != nil {
		return nil, err
	}
	for i := range vcls {
		if vcls[i].Main {
			return &vcls[i], nil
		}
	}
	return nil, nil
}

// SetMainVcl marks the named VCL as the version's main program. Versions
// below 1 mean "the active version".
func SetMainVcl(ctx context.Context, httpClient *http.Client, endpoint, apiKey, serviceID, name string, version int) (*types.Vcl, error) {
	if err := types.RequireServiceID(serviceID); err != nil {
		return nil, err
	}
	if err := types.RequireVclName(name); err != nil {
		return nil, err
	}
	version, err := ResolveVersion(ctx, httpClient, endpoint, apiKey, serviceID, version)
	if err != nil {
		return nil, err
	}
	var v types.Vcl
	url := fmt.Sprintf("/service/%s/version/%d/vcl/%s/main", serviceID, version, name)
	if err := DoJSON(ctx, httpClient, endpoint, apiKey, http.MethodPut, url, nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// UploadNewVcl creates a VCL file on a config version. The name must be
// free: a pre-upload lookup that succeeds aborts with ErrVclExists, only a
// 404 clears the way, and any other lookup failure propagates so a flaky
// check can never cause a duplicate upload. With setMain the new file is
// also promoted and the promotion result is returned.
func UploadNewVcl(ctx context.Context, httpClient *http.Client, endpoint, apiKey, serviceID string, version int, name, content string, setMain bool) (*types.Vcl, error) {
	if err := types.RequireServiceID(serviceID); err != nil {
		return nil, err
	}
	if err := types.RequireVersion(version); err != nil {
		return nil, err
	}
	if err := types.RequireVclName(name); err != nil {
		return nil, err
	}

	_, err := GetVcl(ctx, httpClient, endpoint, apiKey, serviceID, version, name)
	if err == nil {
		return nil, fmt.Errorf("%w: %q on service %s version %d", types.ErrVclExists, name, serviceID, version)
	}
	if !apierrors.IsNotFound(err) {
		return nil, err
	}

	opts := &types.RequestOptions{Form: map[string]string{"name": name, "content": content}}
	var v types.Vcl
	url := fmt.Sprintf("/service/%s/version/%d/vcl", serviceID, version)
	if err := DoJSON(ctx, httpClient, endpoint, apiKey, http.MethodPost, url, opts, &v); err != nil {
		return nil, err
	}
	if setMain {
		return SetMainVcl(ctx, httpClient, endpoint, apiKey, serviceID, name, version)
	}
	return &v, nil
}

// UpdateVcl replaces the content of an existing VCL file. With setMain the
// file is also promoted and the promotion result is returned.
func UpdateVcl(ctx context.Context, httpClient *http.Client, endpoint, apiKey, serviceID string, version int, name, content string, setMain bool) (*types.Vcl, error) {
	if err := types.RequireServiceID(serviceID); err != nil {
		return nil, err
	}
	if err := types.RequireVersion(version); err != nil {
		return nil, err
	}
	if err := types.RequireVclName(name); err != nil {
		return nil, err
	}
	opts := &types.RequestOptions{Form: map[string]string{"content": content}}
	var v types.Vcl
	url := fmt.Sprintf("/service/%s/version/%d/vcl/%s", serviceID, version, name)
	if err := DoJSON(ctx, httpClient, endpoint, apiKey, http.MethodPut, url, opts, &v); err != nil {
		return nil, err
	}
	if setMain {
		return SetMainVcl(ctx, httpClient, endpoint, apiKey, serviceID, name, version)
	}
	return &v, nil
}

// DeleteVcl removes a VCL file from a config version. Versions below 1
// mean "the active version".
func DeleteVcl(ctx context.Context, httpClient *http.Client, endpoint, apiKey, serviceID, name string, version int) error {
	if err := types.RequireServiceID(serviceID); err != nil {
		return err
	}
	if err := types.RequireVclName(name); err != nil {
		return err
	}
	version, err := ResolveVersion(ctx, httpClient, endpoint, apiKey, serviceID, version)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("/service/%s/version/%d/vcl/%s", serviceID, version, name)
	if _, err := Do(ctx, httpClient, endpoint, apiKey, http.MethodDelete, url, nil); err != nil {
		return err
	}
	return nil
}
