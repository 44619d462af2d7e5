package document

import (
	"context"
	"encoding/json"

	"github.com/kailas-cloud/cmdhint/internal/domain"
)

// Repository defines the storage contract for listing documents.
type Repository interface {
	List(ctx context.Context, kind domain.IndexKind, offset, limit int) ([]json.RawMessage, error)
	Count(ctx context.Context, kind domain.IndexKind) (int, error)
}
