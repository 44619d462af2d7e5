package chi

import (
	"context"

	documentuc "github.com/kailas-cloud/cmdhint/internal/usecase/document"
	healthuc "github.com/kailas-cloud/cmdhint/internal/usecase/health"
	loaderuc "github.com/kailas-cloud/cmdhint/internal/usecase/loader"
)

// Searcher answers terminal lookups.
type Searcher interface {
	FindCommand(ctx context.Context, subject, query string) (string, error)
	FindGuide(ctx context.Context, subject, query string) (string, error)
}

// Loader refreshes engine content from local files.
type Loader interface {
	RefreshData(ctx context.Context) (loaderuc.Result, error)
	RefreshSynonyms(ctx context.Context) (int, error)
}

// DocumentLister pages through loaded commands.
type DocumentLister interface {
	List(ctx context.Context, offset, limit int) (documentuc.Page, error)
}

// HealthChecker reports engine reachability.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}
