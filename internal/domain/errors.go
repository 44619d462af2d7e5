package domain

import "errors"

var (
	// ErrNotFound signals that the engine returned no hit.
	ErrNotFound = errors.New("not found")
	// ErrInvalidDocument signals a source document the engine cannot accept.
	ErrInvalidDocument = errors.New("invalid document")
	// ErrInvalidQuery signals an empty or malformed search request.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrSourceUnavailable signals a missing or unreadable local data file.
	ErrSourceUnavailable = errors.New("data source unavailable")
)
