package cmdhint

import "github.com/kailas-cloud/cmdhint/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound          = domain.ErrNotFound
	ErrInvalidQuery      = domain.ErrInvalidQuery
	ErrInvalidDocument   = domain.ErrInvalidDocument
	ErrSourceUnavailable = domain.ErrSourceUnavailable
)
