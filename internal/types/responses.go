package types

import "net/http"

// ------------------------------
// Response Types
// ------------------------------

// Response is the outcome of the generic Request primitive. Body always
// holds the raw payload; JSON is populated only when the response declared
// Content-Type application/json with no parameters.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	JSON       any
}

// Purge represents the receipt returned by the purge endpoints.
type Purge struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

// ValidationResult reports whether a config version passed server-side
// validation.
type ValidationResult struct {
	Status   string   `json:"status"`
	Msg      string   `json:"msg,omitempty"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}
