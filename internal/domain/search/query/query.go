// Package query turns URL path segments into engine search requests.
package query

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/cmdhint/internal/domain"
	"github.com/kailas-cloud/cmdhint/internal/domain/search/filter"
)

// MaxTerms caps the number of words sent to the engine.
const MaxTerms = 16

// Query is a subject-scoped free text search.
type Query struct {
	subject string
	terms   []string
	filter  filter.Expression
}

// Parse builds a Query from decoded subject and query path segments.
// "+" separates words.
func Parse(subject, raw string) (Query, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return Query{}, fmt.Errorf("%w: subject is required", domain.ErrInvalidQuery)
	}

	terms := strings.Fields(strings.ReplaceAll(raw, "+", " "))
	if len(terms) == 0 {
		return Query{}, fmt.Errorf("%w: query is empty", domain.ErrInvalidQuery)
	}
	if len(terms) > MaxTerms {
		return Query{}, fmt.Errorf("%w: too many words (max %d)", domain.ErrInvalidQuery, MaxTerms)
	}

	f, err := filter.BySubject(subject)
	if err != nil {
		return Query{}, fmt.Errorf("%w: %w", domain.ErrInvalidQuery, err)
	}

	return Query{subject: subject, terms: terms, filter: f}, nil
}

// Subject returns the subject filter value.
func (q Query) Subject() string { return q.subject }

// Terms returns the words to match.
func (q Query) Terms() []string { return q.terms }

// Text returns the words joined by single spaces.
func (q Query) Text() string { return strings.Join(q.terms, " ") }

// Filter returns the subject filter.
func (q Query) Filter() filter.Expression { return q.filter }

// Relax drops the last word. It reports false when only one word is left.
func (q Query) Relax() (Query, bool) {
	if len(q.terms) <= 1 {
		return q, false
	}
	relaxed := q
	relaxed.terms = q.terms[:len(q.terms)-1]
	return relaxed, true
}
