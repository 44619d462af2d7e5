package document

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/kailas-cloud/cmdhint/internal/domain"
)

// --- Mocks ---

type mockDocRepo struct {
	docs   []json.RawMessage
	count  int
	err    error
	kind   domain.IndexKind
	offset int
	limit  int
}

func (m *mockDocRepo) List(_ context.Context, kind domain.IndexKind, offset, limit int) ([]json.RawMessage, error) {
	m.kind, m.offset, m.limit = kind, offset, limit
	return m.docs, m.err
}

func (m *mockDocRepo) Count(_ context.Context, kind domain.IndexKind) (int, error) {
	m.kind = kind
	return m.count, m.err
}

// --- Tests ---

func TestList_DefaultLimit(t *testing.T) {
	repo := &mockDocRepo{docs: []json.RawMessage{json.RawMessage(`{"id":"ls"}`)}}
	svc := New(repo)

	page, err := svc.List(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.kind != domain.IndexCommands {
		t.Errorf("expected commands index, got %s", repo.kind)
	}
	if repo.limit != 100 || page.Limit != 100 {
		t.Errorf("expected default limit 100, got repo=%d page=%d", repo.limit, page.Limit)
	}
	if len(page.Results) != 1 {
		t.Errorf("expected 1 result, got %d", len(page.Results))
	}
}

func TestList_CapsLimit(t *testing.T) {
	repo := &mockDocRepo{}
	svc := New(repo).WithPagination(10, 50)

	page, err := svc.List(context.Background(), 20, 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.limit != 50 || page.Limit != 50 {
		t.Errorf("expected capped limit 50, got %d", repo.limit)
	}
	if repo.offset != 20 || page.Offset != 20 {
		t.Errorf("expected offset 20, got %d", repo.offset)
	}
}

func TestList_InvalidPaging(t *testing.T) {
	svc := New(&mockDocRepo{})

	for _, tc := range []struct{ offset, limit int }{{-1, 10}, {0, -5}} {
		_, err := svc.List(context.Background(), tc.offset, tc.limit)
		if !errors.Is(err, domain.ErrInvalidQuery) {
			t.Errorf("offset=%d limit=%d: expected ErrInvalidQuery, got %v", tc.offset, tc.limit, err)
		}
	}
}

func TestList_RepoError(t *testing.T) {
	svc := New(&mockDocRepo{err: domain.ErrNotFound})

	_, err := svc.List(context.Background(), 0, 10)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWithPagination_IgnoresNonPositive(t *testing.T) {
	svc := New(&mockDocRepo{}).WithPagination(0, -1)
	if svc.defaultPageSize != 100 || svc.maxPageSize != 1000 {
		t.Errorf("unexpected pagination: default=%d max=%d", svc.defaultPageSize, svc.maxPageSize)
	}
}

func TestCount(t *testing.T) {
	repo := &mockDocRepo{count: 42}
	n, err := New(repo).Count(context.Background(), domain.IndexGuides)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 42 || repo.kind != domain.IndexGuides {
		t.Errorf("Count = %d on %s, want 42 on guides", n, repo.kind)
	}
}

func TestCount_IndexMissing(t *testing.T) {
	repo := &mockDocRepo{err: domain.ErrNotFound}
	_, err := New(repo).Count(context.Background(), domain.IndexCommands)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
