package errors

import (
	stderrors "errors"
	"net/http"
)

// FromResponse builds an *APIError from a non-2xx response. The body has
// already been drained by the request pipeline and is carried verbatim.
func FromResponse(method, url string, resp *http.Response, body []byte) *APIError {
	return &APIError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Method:     method,
		URL:        url,
		Body:       string(body),
	}
}

// IsStatus reports whether err is an *APIError carrying the given HTTP
// status code, however deeply wrapped.
func IsStatus(err error, code int) bool {
	var ae *APIError
	return stderrors.As(err, &ae) && ae.StatusCode == code
}

// IsNotFound reports whether err is a 404 from the API. The new-VCL upload
// uses this to tell "name is free" apart from real lookup failures.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}
