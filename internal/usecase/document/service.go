// Package document pages through the loaded commands.
package document

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/cmdhint/internal/domain"
)

// Page is one slice of the commands index.
type Page struct {
	Results []json.RawMessage
	Offset  int
	Limit   int
}

// Service lists loaded documents.
type Service struct {
	repo            Repository
	defaultPageSize int
	maxPageSize     int
}

// New creates a document service.
func New(repo Repository) *Service {
	return &Service{
		repo:            repo,
		defaultPageSize: 100,
		maxPageSize:     1000,
	}
}

// WithPagination configures page size limits.
func (s *Service) WithPagination(defaultPageSize, maxPageSize int) *Service {
	if defaultPageSize > 0 {
		s.defaultPageSize = defaultPageSize
	}
	if maxPageSize > 0 {
		s.maxPageSize = maxPageSize
	}
	return s
}

// List returns up to limit commands starting at offset.
// A zero limit means the default page size; larger limits are capped.
func (s *Service) List(ctx context.Context, offset, limit int) (Page, error) {
	if offset < 0 {
		return Page{}, fmt.Errorf("%w: offset must not be negative", domain.ErrInvalidQuery)
	}
	if limit < 0 {
		return Page{}, fmt.Errorf("%w: limit must not be negative", domain.ErrInvalidQuery)
	}
	if limit == 0 {
		limit = s.defaultPageSize
	}
	limit = min(limit, s.maxPageSize)

	docs, err := s.repo.List(ctx, domain.IndexCommands, offset, limit)
	if err != nil {
		return Page{}, fmt.Errorf("list documents: %w", err)
	}
	return Page{Results: docs, Offset: offset, Limit: limit}, nil
}

// Count returns the number of indexed documents of kind.
func (s *Service) Count(ctx context.Context, kind domain.IndexKind) (int, error) {
	n, err := s.repo.Count(ctx, kind)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", kind, err)
	}
	return n, nil
}
