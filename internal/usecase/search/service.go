// Package search answers terminal queries with the best matching command or guide.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cmdhint/internal/domain"
	"github.com/kailas-cloud/cmdhint/internal/domain/command"
	"github.com/kailas-cloud/cmdhint/internal/domain/guide"
	"github.com/kailas-cloud/cmdhint/internal/domain/search/query"
	"github.com/kailas-cloud/cmdhint/internal/logger"
	"github.com/kailas-cloud/cmdhint/internal/metrics"
)

// commandField is the only searchable attribute of the commands index.
const commandField = "description"

// Service handles command and guide lookups.
type Service struct {
	repo  Repository
	typo  bool
	relax bool
}

// New creates a search service with typo tolerance and query relaxation on.
func New(repo Repository) *Service {
	return &Service{repo: repo, typo: true, relax: true}
}

// WithTypoTolerance toggles fuzzy matching of longer words.
func (s *Service) WithTypoTolerance(on bool) *Service {
	s.typo = on
	return s
}

// WithRelaxation toggles retrying with the last word dropped when nothing matches.
func (s *Service) WithRelaxation(on bool) *Service {
	s.relax = on
	return s
}

// FindCommand returns the command line of the best hit for rawQuery within subject.
func (s *Service) FindCommand(ctx context.Context, subject, rawQuery string) (string, error) {
	q, err := query.Parse(subject, rawQuery)
	if err != nil {
		return "", err
	}

	raw, err := s.top(ctx, domain.IndexCommands, commandField, q)
	if err != nil {
		return "", err
	}

	line, err := command.Line(raw)
	if err != nil {
		return "", fmt.Errorf("read hit: %w", err)
	}
	return line, nil
}

// FindGuide returns the best matching guide within subject, formatted for a terminal.
func (s *Service) FindGuide(ctx context.Context, subject, rawQuery string) (string, error) {
	q, err := query.Parse(subject, rawQuery)
	if err != nil {
		return "", err
	}

	raw, err := s.top(ctx, domain.IndexGuides, "", q)
	if err != nil {
		return "", err
	}

	g, err := guide.Decode(raw)
	if err != nil {
		return "", fmt.Errorf("read hit: %w", err)
	}
	return g.Format(), nil
}

// top asks the engine for the best hit. Without a hit the query is relaxed
// word by word from the end until something matches or one word is left.
func (s *Service) top(ctx context.Context, kind domain.IndexKind, field string, q query.Query) (json.RawMessage, error) {
	index := kind.String()
	log := logger.FromContext(ctx)

	for {
		raw, err := s.repo.Top(ctx, kind, field, q, s.typo)
		if err == nil {
			metrics.SearchTotal.WithLabelValues(index, metrics.OutcomeHit).Inc()
			return raw, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			metrics.SearchTotal.WithLabelValues(index, metrics.OutcomeError).Inc()
			return nil, fmt.Errorf("search %s: %w", index, err)
		}

		if !s.relax {
			break
		}
		relaxed, ok := q.Relax()
		if !ok {
			break
		}
		log.Debug("No hit, relaxing query",
			zap.String("index", index),
			zap.String("query", q.Text()),
			zap.String("relaxed", relaxed.Text()),
		)
		metrics.SearchRelaxationsTotal.WithLabelValues(index).Inc()
		q = relaxed
	}

	metrics.SearchTotal.WithLabelValues(index, metrics.OutcomeMiss).Inc()
	return nil, domain.ErrNotFound
}
