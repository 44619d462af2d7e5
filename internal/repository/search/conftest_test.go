package search

import (
	"context"
	"testing"

	"github.com/kailas-cloud/cmdhint/internal/db"
	"github.com/kailas-cloud/cmdhint/internal/domain/search/query"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	searchTextFn func(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
}

func (m *mockStore) SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error) {
	if m.searchTextFn != nil {
		return m.searchTextFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms, "cmdhint:"), ms
}

func mustQuery(t *testing.T, subject, raw string) query.Query {
	t.Helper()
	q, err := query.Parse(subject, raw)
	if err != nil {
		t.Fatalf("query.Parse(%q, %q): %v", subject, raw, err)
	}
	return q
}
