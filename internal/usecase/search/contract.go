package search

import (
	"context"
	"encoding/json"

	"github.com/kailas-cloud/cmdhint/internal/domain"
	"github.com/kailas-cloud/cmdhint/internal/domain/search/query"
)

// Repository defines the engine contract for top-hit search.
type Repository interface {
	Top(ctx context.Context, kind domain.IndexKind, field string, q query.Query, typo bool) (json.RawMessage, error)
}
