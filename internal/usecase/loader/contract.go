package loader

import (
	"context"

	"github.com/kailas-cloud/cmdhint/internal/domain"
	domdoc "github.com/kailas-cloud/cmdhint/internal/domain/document"
	"github.com/kailas-cloud/cmdhint/internal/domain/synonym"
)

// Source reads the local data and synonym files.
type Source interface {
	Documents(ctx context.Context) (domdoc.Bundle, error)
	Synonyms(ctx context.Context) (synonym.Table, error)
}

// IndexRepository manages engine indexes.
type IndexRepository interface {
	Reset(ctx context.Context, kind domain.IndexKind) error
	UpdateSynonyms(ctx context.Context, kind domain.IndexKind, groups []synonym.Group) error
}

// DocumentRepository writes documents into an index.
type DocumentRepository interface {
	PutMany(ctx context.Context, kind domain.IndexKind, docs []domdoc.Document) error
}
