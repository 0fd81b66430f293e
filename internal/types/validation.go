package types

import (
	"errors"
	"fmt"
)

// ------------------------------
// Shared Errors
// ------------------------------

// ErrInvalidArgument is the base of every argument-validation failure.
// The named sentinels below wrap it, so callers can match the precise
// cause or the whole family with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	ErrMissingAPIKey       = fmt.Errorf("%w: api key is required", ErrInvalidArgument)
	ErrMissingMethod       = fmt.Errorf("%w: method is required", ErrInvalidArgument)
	ErrMissingURL          = fmt.Errorf("%w: url is required", ErrInvalidArgument)
	ErrMissingServiceID    = fmt.Errorf("%w: service id is required", ErrInvalidArgument)
	ErrMissingVclName      = fmt.Errorf("%w: vcl name is required", ErrInvalidArgument)
	ErrMissingPurgeKey     = fmt.Errorf("%w: surrogate key is required", ErrInvalidArgument)
	ErrInvalidVersion      = fmt.Errorf("%w: version must be positive", ErrInvalidArgument)
	ErrPurgeURLNotAbsolute = fmt.Errorf("%w: purge url must be absolute", ErrInvalidArgument)
)

// ErrVclExists is returned by the new-VCL upload when the name is already
// taken on the target version. It is synthesized client-side from the
// pre-upload lookup, never from the upload response itself.
var ErrVclExists = errors.New("vcl name already exists")

// ErrNoActiveVersion is returned when default-version resolution finds no
// version with the active flag set.
var ErrNoActiveVersion = errors.New("service has no active version")

// ------------------------------
// Validation Helpers
// ------------------------------

// RequireServiceID rejects a blank service id before any URL is built
// from it.
func RequireServiceID(id string) error {
	if id == "" {
		return ErrMissingServiceID
	}
	return nil
}

// RequireVersion rejects version numbers the API can never have issued.
// Fastly numbers config versions from 1.
func RequireVersion(version int) error {
	if version < 1 {
		return ErrInvalidVersion
	}
	return nil
}

// RequireVclName rejects a blank VCL file name.
func RequireVclName(name string) error {
	if name == "" {
		return ErrMissingVclName
	}
	return nil
}

// RequirePurgeKey rejects a blank surrogate key.
func RequirePurgeKey(key string) error {
	if key == "" {
		return ErrMissingPurgeKey
	}
	return nil
}
