package domain

import "errors"

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. a negative offset or an empty page size).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
