package index

import (
	"context"
	"testing"

	"github.com/kailas-cloud/cmdhint/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	createIndexFn    func(ctx context.Context, def *db.IndexDefinition) error
	dropIndexFn      func(ctx context.Context, name string, deleteDocs bool) error
	indexExistsFn    func(ctx context.Context, name string) (bool, error)
	updateSynonymsFn func(ctx context.Context, index, groupID string, terms []string) error
}

func (m *mockStore) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	if m.createIndexFn != nil {
		return m.createIndexFn(ctx, def)
	}
	return nil
}

func (m *mockStore) DropIndex(ctx context.Context, name string, deleteDocs bool) error {
	if m.dropIndexFn != nil {
		return m.dropIndexFn(ctx, name, deleteDocs)
	}
	return nil
}

func (m *mockStore) IndexExists(ctx context.Context, name string) (bool, error) {
	if m.indexExistsFn != nil {
		return m.indexExistsFn(ctx, name)
	}
	return true, nil
}

func (m *mockStore) UpdateSynonyms(ctx context.Context, index, groupID string, terms []string) error {
	if m.updateSynonymsFn != nil {
		return m.updateSynonymsFn(ctx, index, groupID, terms)
	}
	return nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms, "cmdhint:"), ms
}
