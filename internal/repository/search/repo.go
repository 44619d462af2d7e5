// Package search runs top-hit text searches against the engine indexes.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kailas-cloud/cmdhint/internal/db"
	"github.com/kailas-cloud/cmdhint/internal/domain"
	"github.com/kailas-cloud/cmdhint/internal/domain/search/query"
)

// store is the consumer interface for search operations (ISP).
type store interface {
	SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
}

// Repo implements usecase/search.Repository.
type Repo struct {
	store  store
	prefix string
}

// New creates a search repository. prefix namespaces every index.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

// Top returns the raw JSON of the best hit for q in the given index.
// field limits matching to one searchable attribute; empty matches all of them.
// No hit gives domain.ErrNotFound.
func (r *Repo) Top(
	ctx context.Context, kind domain.IndexKind, field string, q query.Query, typo bool,
) (json.RawMessage, error) {
	tq := &db.TextQuery{
		IndexName:    fmt.Sprintf("%s%s:idx", r.prefix, kind),
		Field:        field,
		Terms:        q.Terms(),
		Filters:      q.Filter(),
		Limit:        1,
		ReturnFields: []string{"$"},
		Typo:         typo,
	}

	sr, err := r.store.SearchText(ctx, tq)
	if err != nil {
		if errors.Is(err, db.ErrIndexNotFound) {
			return nil, fmt.Errorf("index %s: %w", kind, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("search text %s: %w", kind, err)
	}

	return firstHit(sr)
}

// firstHit returns the stored JSON of the highest scored entry.
func firstHit(sr *db.SearchResult) (json.RawMessage, error) {
	if sr == nil || sr.Total == 0 || len(sr.Entries) == 0 {
		return nil, domain.ErrNotFound
	}

	raw := sr.Entries[0].Fields["$"]
	if raw == "" {
		return nil, fmt.Errorf("hit %s has no document body", sr.Entries[0].Key)
	}
	if !json.Valid([]byte(raw)) {
		return nil, fmt.Errorf("hit %s has a malformed document body", sr.Entries[0].Key)
	}
	return json.RawMessage(raw), nil
}
