package types

import "net/http"

// ------------------------------
// Request Types
// ------------------------------

// RequestOptions holds the per-call knobs of the generic Request
// primitive. The zero value is valid; nothing is retained once the call
// returns.
type RequestOptions struct {
	// SoftPurge adds the Fastly-Soft-Purge header so purged content is
	// marked stale instead of evicted.
	SoftPurge bool

	// Headers is merged over the computed defaults. Caller entries win
	// on name collision.
	Headers map[string]string

	// Form is sent as an application/x-www-form-urlencoded body when
	// non-empty.
	Form map[string]string

	// ModifyRequest runs after all defaults are applied and may change
	// anything about the outgoing request. Returning an error aborts
	// the call before it is sent.
	ModifyRequest func(*http.Request) error
}

// UpdateConfigVersionRequest holds the mutable flags of a config version.
// All three are always sent, so leaving a field false clears it.
type UpdateConfigVersionRequest struct {
	Deployed bool
	Staging  bool
	Testing  bool
}
