package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apierrors "github.com/WennerMedia/fastly-promise/internal/errors"
	"github.com/WennerMedia/fastly-promise/internal/types"
)

// Version is the client's release version. It is also advertised in the
// User-Agent header of every request.
const Version = "1.0.0"

const userAgent = "fastly-promise-go/" + Version

// Do executes one HTTP round trip against the Fastly API and returns the
// raw response. Every operation in this package funnels through here, so
// URL resolution, header assembly, the credential-stripping rule, form
// encoding and the caller escape hatch behave identically everywhere.
//
// The steps run in a fixed order:
//
//  1. relative urls are resolved by prefixing the endpoint;
//  2. computed headers are set (Fastly-Key, User-Agent, and
//     Fastly-Soft-Purge / Content-Type when applicable);
//  3. caller headers from opts.Headers are merged over them;
//  4. Fastly-Key is dropped if the resolved URL left the endpoint;
//  5. opts.ModifyRequest gets the final word.
//
// A non-2xx status becomes an *errors.APIError with the body attached.
// Transport failures are returned as-is.
func Do(ctx context.Context, httpClient *http.Client, endpoint, apiKey, method, rawurl string, opts *types.RequestOptions) (*types.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if method == "" {
		return nil, types.ErrMissingMethod
	}
	if rawurl == "" {
		return nil, types.ErrMissingURL
	}
	if opts == nil {
		opts = &types.RequestOptions{}
	}

	resolved := rawurl
	if !isAbsoluteURL(rawurl) {
		resolved = endpoint + rawurl
	}

	var body io.Reader
	if len(opts.Form) > 0 {
		form := url.Values{}
		for k, v := range opts.Form {
			form.Set(k, v)
		}
		body = strings.NewReader(form.Encode())
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, resolved, body)
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Fastly-Key", apiKey)
	httpReq.Header.Set("User-Agent", userAgent)
	if opts.SoftPurge {
		httpReq.Header.Set("Fastly-Soft-Purge", "1")
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for k, v := range opts.Headers {
		httpReq.Header.Set(k, v)
	}
	// The key must never travel to hosts outside the API endpoint, e.g. a
	// purge issued directly against a CDN-facing hostname.
	if !strings.HasPrefix(resolved, endpoint) {
		httpReq.Header.Del("Fastly-Key")
	}
	if opts.ModifyRequest != nil {
		if err := opts.ModifyRequest(httpReq); err != nil {
			return nil, err
		}
	}

	start := time.Now()
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		requestsTotal.WithLabelValues(httpReq.Method, "error").Inc()
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	requestDuration.WithLabelValues(httpReq.Method).Observe(time.Since(start).Seconds())
	requestsTotal.WithLabelValues(httpReq.Method, strconv.Itoa(resp.StatusCode)).Inc()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apierrors.FromResponse(httpReq.Method, httpReq.URL.String(), resp, raw)
	}
	return &types.Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: raw}, nil
}

// Request is Do plus the decode rule of the generic primitive: the JSON
// field is populated only when the response declares exactly
// "application/json". A charset-qualified or non-JSON content type leaves
// Body as the only representation.
func Request(ctx context.Context, httpClient *http.Client, endpoint, apiKey, method, rawurl string, opts *types.RequestOptions) (*types.Response, error) {
	resp, err := Do(ctx, httpClient, endpoint, apiKey, method, rawurl, opts)
	if err != nil {
		return nil, err
	}
	if resp.Header.Get("Content-Type") == "application/json" {
		if err := json.Unmarshal(resp.Body, &resp.JSON); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

// DoJSON executes the round trip and unmarshals the body into v. The typed
// operations know their endpoints return JSON, so no content-type check is
// made here.
func DoJSON(ctx context.Context, httpClient *http.Client, endpoint, apiKey, method, rawurl string, opts *types.RequestOptions, v any) error {
	resp, err := Do(ctx, httpClient, endpoint, apiKey, method, rawurl, opts)
	if err != nil {
		return err
	}
	return json.Unmarshal(resp.Body, v)
}

func isAbsoluteURL(rawurl string) bool {
	return strings.HasPrefix(rawurl, "http://") || strings.HasPrefix(rawurl, "https://")
}
