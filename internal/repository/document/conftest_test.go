package document

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/kailas-cloud/cmdhint/internal/db"
	domdoc "github.com/kailas-cloud/cmdhint/internal/domain/document"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	jsonSetMultiFn func(ctx context.Context, items []db.JSONSetItem) error
	searchListFn   func(
		ctx context.Context, index, query string, offset, limit int, fields []string,
	) (*db.SearchResult, error)
	searchCountFn func(ctx context.Context, index, query string) (int, error)
}

func (m *mockStore) JSONSetMulti(ctx context.Context, items []db.JSONSetItem) error {
	if m.jsonSetMultiFn != nil {
		return m.jsonSetMultiFn(ctx, items)
	}
	return nil
}

func (m *mockStore) SearchList(
	ctx context.Context, index, query string, offset, limit int, fields []string,
) (*db.SearchResult, error) {
	if m.searchListFn != nil {
		return m.searchListFn(ctx, index, query, offset, limit, fields)
	}
	return &db.SearchResult{}, nil
}

func (m *mockStore) SearchCount(ctx context.Context, index, query string) (int, error) {
	if m.searchCountFn != nil {
		return m.searchCountFn(ctx, index, query)
	}
	return 0, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms, "cmdhint:"), ms
}

func testDocuments(t *testing.T, ids ...string) []domdoc.Document {
	t.Helper()
	docs := make([]domdoc.Document, 0, len(ids))
	for _, id := range ids {
		d, err := domdoc.Parse(json.RawMessage(`{"id":"` + id + `","subject":"linux","command":"ls"}`))
		if err != nil {
			t.Fatalf("parse %s: %v", id, err)
		}
		docs = append(docs, d)
	}
	return docs
}
