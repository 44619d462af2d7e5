package cmdhint

import (
	"context"

	"github.com/kailas-cloud/cmdhint/internal/domain"
	documentuc "github.com/kailas-cloud/cmdhint/internal/usecase/document"
	healthuc "github.com/kailas-cloud/cmdhint/internal/usecase/health"
	loaderuc "github.com/kailas-cloud/cmdhint/internal/usecase/loader"
)

// --- searchUseCase mock ---

type mockSearchUC struct {
	findCommandFn func(ctx context.Context, subject, rawQuery string) (string, error)
	findGuideFn   func(ctx context.Context, subject, rawQuery string) (string, error)
}

func (m *mockSearchUC) FindCommand(ctx context.Context, subject, rawQuery string) (string, error) {
	return m.findCommandFn(ctx, subject, rawQuery)
}

func (m *mockSearchUC) FindGuide(ctx context.Context, subject, rawQuery string) (string, error) {
	return m.findGuideFn(ctx, subject, rawQuery)
}

// --- loaderUseCase mock ---

type mockLoaderUC struct {
	refreshDataFn     func(ctx context.Context) (loaderuc.Result, error)
	refreshSynonymsFn func(ctx context.Context) (int, error)
}

func (m *mockLoaderUC) RefreshData(ctx context.Context) (loaderuc.Result, error) {
	return m.refreshDataFn(ctx)
}

func (m *mockLoaderUC) RefreshSynonyms(ctx context.Context) (int, error) {
	return m.refreshSynonymsFn(ctx)
}

// --- documentUseCase mock ---

type mockDocumentUC struct {
	listFn  func(ctx context.Context, offset, limit int) (documentuc.Page, error)
	countFn func(ctx context.Context, kind domain.IndexKind) (int, error)
}

func (m *mockDocumentUC) List(ctx context.Context, offset, limit int) (documentuc.Page, error) {
	return m.listFn(ctx, offset, limit)
}

func (m *mockDocumentUC) Count(ctx context.Context, kind domain.IndexKind) (int, error) {
	return m.countFn(ctx, kind)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(context.Context) healthuc.Report { return m.report }

// --- helpers ---

func testClient(search searchUseCase, loader loaderUseCase, docs documentUseCase) *Client {
	return &Client{
		searchSvc: search,
		loaderSvc: loader,
		docSvc:    docs,
	}
}
