package db

import "github.com/kailas-cloud/cmdhint/internal/domain/search/filter"

// TextQuery is the input for full-text search.
type TextQuery struct {
	IndexName    string
	Field        string // restrict matching to one TEXT field; empty means all
	Terms        []string
	Filters      filter.Expression
	Offset       int
	Limit        int
	ReturnFields []string
	Typo         bool // allow fuzzy matches on longer terms
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}
