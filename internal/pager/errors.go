package pager

import "errors"

// ErrUnknownOption is returned by Configure and Get when the option name does
// not match any pager field, even after snake_case normalization.
var ErrUnknownOption = errors.New("unknown pager option")

// ErrForbiddenOption is returned by Configure for the offset and page size,
// which are only ever derived by Run.
var ErrForbiddenOption = errors.New("forbidden pager option")

// ErrNotReady is returned by link generation when Run has not been called yet,
// so the total page count is still unknown.
var ErrNotReady = errors.New("pager not ready: call Run first")
