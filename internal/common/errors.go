// Package common defines shared constants and sentinel errors used across
// vidkeeper layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorStorageCorrupt = errors.New("storage corrupt")
	ErrorStorageWrite   = errors.New("storage write failed")

	// Service-level errors.
	ErrorNotFound   = errors.New("not found")
	ErrorValidation = errors.New("validation error")
)
