package chi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	documentuc "github.com/kailas-cloud/cmdhint/internal/usecase/document"
	healthuc "github.com/kailas-cloud/cmdhint/internal/usecase/health"
	loaderuc "github.com/kailas-cloud/cmdhint/internal/usecase/loader"
)

type mockSearcher struct {
	findCommandFn func(ctx context.Context, subject, query string) (string, error)
	findGuideFn   func(ctx context.Context, subject, query string) (string, error)
}

func (m *mockSearcher) FindCommand(ctx context.Context, subject, query string) (string, error) {
	return m.findCommandFn(ctx, subject, query)
}

func (m *mockSearcher) FindGuide(ctx context.Context, subject, query string) (string, error) {
	return m.findGuideFn(ctx, subject, query)
}

type mockLoader struct {
	refreshDataFn     func(ctx context.Context) (loaderuc.Result, error)
	refreshSynonymsFn func(ctx context.Context) (int, error)
}

func (m *mockLoader) RefreshData(ctx context.Context) (loaderuc.Result, error) {
	return m.refreshDataFn(ctx)
}

func (m *mockLoader) RefreshSynonyms(ctx context.Context) (int, error) {
	return m.refreshSynonymsFn(ctx)
}

type mockLister struct {
	listFn func(ctx context.Context, offset, limit int) (documentuc.Page, error)
}

func (m *mockLister) List(ctx context.Context, offset, limit int) (documentuc.Page, error) {
	return m.listFn(ctx, offset, limit)
}

type mockHealth struct {
	report healthuc.Report
}

func (m *mockHealth) Check(context.Context) healthuc.Report { return m.report }

type fixture struct {
	search  *mockSearcher
	loader  *mockLoader
	lister  *mockLister
	health  *mockHealth
	handler http.Handler
}

func newFixture(t *testing.T, cfg RouterConfig) *fixture {
	t.Helper()
	f := &fixture{
		search: &mockSearcher{},
		loader: &mockLoader{},
		lister: &mockLister{},
		health: &mockHealth{report: healthuc.Report{
			Status: healthuc.Healthy,
			Checks: map[string]healthuc.CheckResult{
				healthuc.ComponentApp:          healthuc.CheckOK,
				healthuc.ComponentSearchEngine: healthuc.CheckOK,
			},
		}},
	}
	server := NewServer(f.search, f.loader, f.lister, f.health, zap.NewNop())
	f.handler = NewRouter(server, cfg, zap.NewNop())
	return f
}

func (f *fixture) do(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, http.NoBody)
	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, req)
	return rr
}

func assertContentType(t *testing.T, rr *httptest.ResponseRecorder, want string) {
	t.Helper()
	if got := rr.Header().Get("Content-Type"); !strings.HasPrefix(got, want) {
		t.Errorf("Content-Type = %q, want prefix %q", got, want)
	}
}
