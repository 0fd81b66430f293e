package fastly

import "github.com/WennerMedia/fastly-promise/internal/types"

// Public type aliases so SDK consumers can import only the fastly package.
type (
	// Requests
	RequestOptions             = types.RequestOptions
	UpdateConfigVersionRequest = types.UpdateConfigVersionRequest

	// Domain entities
	ConfigVersion = types.ConfigVersion
	Vcl           = types.Vcl

	// Responses
	Response         = types.Response
	Purge            = types.Purge
	ValidationResult = types.ValidationResult
)

// Errors re-exported in errors.go
