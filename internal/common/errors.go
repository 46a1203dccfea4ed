// Package common defines shared constants and sentinel errors used across
// the rashii server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// User-table errors.
	ErrorUnknownUser   = errors.New("unknown user")
	ErrorNoCounterpart = errors.New("no counterpart user")
)
