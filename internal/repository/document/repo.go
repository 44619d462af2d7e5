// Package document stores source documents in the engine and pages through them.
package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kailas-cloud/cmdhint/internal/db"
	"github.com/kailas-cloud/cmdhint/internal/domain"
	domdoc "github.com/kailas-cloud/cmdhint/internal/domain/document"
)

// DefaultBatchSize is the number of JSON.SET commands pipelined per round-trip.
const DefaultBatchSize = 500

// store is the consumer interface for documents (ISP).
type store interface {
	JSONSetMulti(ctx context.Context, items []db.JSONSetItem) error
	SearchList(ctx context.Context, index, query string, offset, limit int, fields []string) (*db.SearchResult, error)
	SearchCount(ctx context.Context, index, query string) (int, error)
}

// Repo implements usecase/loader.DocumentRepository and usecase/document.Repository.
type Repo struct {
	store     store
	prefix    string
	batchSize int
}

// New creates a document repository. prefix namespaces every key and index.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix, batchSize: DefaultBatchSize}
}

// WithBatchSize overrides the pipeline chunk size.
func (r *Repo) WithBatchSize(n int) *Repo {
	if n > 0 {
		r.batchSize = n
	}
	return r
}

// PutMany writes documents in pipelined chunks. A failed chunk stops the load;
// earlier chunks stay written.
func (r *Repo) PutMany(ctx context.Context, kind domain.IndexKind, docs []domdoc.Document) error {
	for start := 0; start < len(docs); start += r.batchSize {
		end := min(start+r.batchSize, len(docs))

		items := make([]db.JSONSetItem, 0, end-start)
		for i := start; i < end; i++ {
			items = append(items, db.JSONSetItem{
				Key:  docKey(r.prefix, kind, docs[i].ID()),
				Path: "$",
				Data: docs[i].Raw(),
			})
		}

		if err := r.store.JSONSetMulti(ctx, items); err != nil {
			return fmt.Errorf("json.set %s [%d:%d]: %w", kind, start, end, err)
		}
	}
	return nil
}

// List returns raw documents in index order starting at offset.
func (r *Repo) List(ctx context.Context, kind domain.IndexKind, offset, limit int) ([]json.RawMessage, error) {
	result, err := r.store.SearchList(ctx, indexName(r.prefix, kind), "*", offset, limit, []string{"$"})
	if err != nil {
		if errors.Is(err, db.ErrIndexNotFound) {
			return nil, fmt.Errorf("index %s: %w", kind, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("search list %s: %w", kind, err)
	}

	docs := make([]json.RawMessage, 0, len(result.Entries))
	if result.Total == 0 {
		return docs, nil
	}
	for _, entry := range result.Entries {
		raw := entry.Fields["$"]
		if raw == "" || !json.Valid([]byte(raw)) {
			continue
		}
		docs = append(docs, json.RawMessage(raw))
	}
	return docs, nil
}

// Count returns the number of documents in an index.
func (r *Repo) Count(ctx context.Context, kind domain.IndexKind) (int, error) {
	n, err := r.store.SearchCount(ctx, indexName(r.prefix, kind), "*")
	if err != nil {
		if errors.Is(err, db.ErrIndexNotFound) {
			return 0, fmt.Errorf("index %s: %w", kind, domain.ErrNotFound)
		}
		return 0, fmt.Errorf("search count %s: %w", kind, err)
	}
	return n, nil
}

func docKey(prefix string, kind domain.IndexKind, id string) string {
	return fmt.Sprintf("%s%s:%s", prefix, kind, id)
}

func indexName(prefix string, kind domain.IndexKind) string {
	return fmt.Sprintf("%s%s:idx", prefix, kind)
}

