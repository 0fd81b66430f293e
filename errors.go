package fastly

import (
	apierrors "github.com/WennerMedia/fastly-promise/internal/errors"
	"github.com/WennerMedia/fastly-promise/internal/types"
)

// Re-export shared SDK errors so callers compare against a single symbol.
var (
	// ErrInvalidArgument is the base of every argument-validation failure;
	// the specific sentinels below all wrap it.
	ErrInvalidArgument = types.ErrInvalidArgument

	ErrMissingAPIKey       = types.ErrMissingAPIKey
	ErrMissingMethod       = types.ErrMissingMethod
	ErrMissingURL          = types.ErrMissingURL
	ErrMissingServiceID    = types.ErrMissingServiceID
	ErrMissingVclName      = types.ErrMissingVclName
	ErrMissingPurgeKey     = types.ErrMissingPurgeKey
	ErrInvalidVersion      = types.ErrInvalidVersion
	ErrPurgeURLNotAbsolute = types.ErrPurgeURLNotAbsolute

	// ErrVclExists is returned by UploadNewVcl when the name is taken.
	ErrVclExists = types.ErrVclExists

	// ErrNoActiveVersion is returned by the default-version operations when
	// the service has no active config version.
	ErrNoActiveVersion = types.ErrNoActiveVersion
)

// APIError is a non-2xx response from the Fastly API. Network failures are
// never converted into one, so the two are distinguishable with errors.As.
type APIError = apierrors.APIError

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool { return apierrors.IsNotFound(err) }

// IsStatus reports whether err is an *APIError with the given status code.
func IsStatus(err error, code int) bool { return apierrors.IsStatus(err, code) }
