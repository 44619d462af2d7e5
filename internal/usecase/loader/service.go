// Package loader refreshes engine indexes and synonyms from local files.
package loader

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cmdhint/internal/domain"
	domdoc "github.com/kailas-cloud/cmdhint/internal/domain/document"
	"github.com/kailas-cloud/cmdhint/internal/logger"
	"github.com/kailas-cloud/cmdhint/internal/metrics"
)

// Result counts the documents written by a refresh.
type Result struct {
	Commands int
	Guides   int
}

// Service loads documents and synonyms into the engine.
type Service struct {
	src     Source
	indexes IndexRepository
	docs    DocumentRepository
}

// New creates a loader service.
func New(src Source, indexes IndexRepository, docs DocumentRepository) *Service {
	return &Service{src: src, indexes: indexes, docs: docs}
}

// RefreshData replaces the commands index, and the guides index when the source
// has guides, with the content of the documents file. Every document is
// validated before any index is touched.
func (s *Service) RefreshData(ctx context.Context) (Result, error) {
	bundle, err := s.src.Documents(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("read documents: %w", err)
	}

	commands, err := domdoc.ParseAll(bundle.Commands)
	if err != nil {
		return Result{}, fmt.Errorf("commands: %w", err)
	}
	guides, err := domdoc.ParseAll(bundle.Guides)
	if err != nil {
		return Result{}, fmt.Errorf("guides: %w", err)
	}

	if err := s.load(ctx, domain.IndexCommands, commands); err != nil {
		return Result{}, err
	}
	if bundle.Guides != nil {
		if err := s.load(ctx, domain.IndexGuides, guides); err != nil {
			return Result{Commands: len(commands)}, err
		}
	}

	return Result{Commands: len(commands), Guides: len(guides)}, nil
}

// load drops and recreates one index, then writes its documents.
func (s *Service) load(ctx context.Context, kind domain.IndexKind, docs []domdoc.Document) error {
	start := time.Now()
	ctx = logger.With(ctx, zap.String("index", kind.String()))

	if err := s.indexes.Reset(ctx, kind); err != nil {
		return fmt.Errorf("reset index: %w", err)
	}
	if err := s.docs.PutMany(ctx, kind, docs); err != nil {
		return fmt.Errorf("put documents: %w", err)
	}

	metrics.DocumentsLoadedTotal.WithLabelValues(kind.String()).Add(float64(len(docs)))
	logger.FromContext(ctx).Info("Index loaded",
		zap.Int("documents", len(docs)),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

// RefreshSynonyms flips the synonyms file and applies it to the commands index.
// Returns the number of synonym groups sent to the engine.
func (s *Service) RefreshSynonyms(ctx context.Context) (int, error) {
	table, err := s.src.Synonyms(ctx)
	if err != nil {
		return 0, fmt.Errorf("read synonyms: %w", err)
	}

	groups := table.Groups()
	if err := s.indexes.UpdateSynonyms(ctx, domain.IndexCommands, groups); err != nil {
		return 0, fmt.Errorf("update synonyms: %w", err)
	}

	metrics.SynonymGroupsApplied.WithLabelValues(domain.IndexCommands.String()).Set(float64(len(groups)))
	logger.FromContext(ctx).Info("Synonyms updated",
		zap.String("index", domain.IndexCommands.String()),
		zap.Int("groups", len(groups)),
	)
	return len(groups), nil
}
