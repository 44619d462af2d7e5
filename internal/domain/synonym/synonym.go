// Package synonym turns the synonyms file into engine synonym groups.
package synonym

import (
	"slices"
	"sort"
	"strings"
)

// Table maps a canonical term to the alternative spellings users type.
type Table map[string][]string

// Group is a set of terms the engine treats as equivalent.
type Group struct {
	ID    string
	Terms []string
}

// Flip inverts the table: every alternative points at the canonical terms
// that list it. Keys are visited in sorted order and duplicates are dropped,
// so the result is deterministic.
func (t Table) Flip() map[string][]string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	flipped := make(map[string][]string)
	for _, key := range keys {
		for _, value := range t[key] {
			if value == "" || slices.Contains(flipped[value], key) {
				continue
			}
			flipped[value] = append(flipped[value], key)
		}
	}
	return flipped
}

// Groups converts the flipped table into engine groups, one per alternative,
// each holding the alternative followed by its canonical terms. Terms are
// lowercased; the engine matches synonyms case-insensitively anyway.
func (t Table) Groups() []Group {
	flipped := t.Flip()

	values := make([]string, 0, len(flipped))
	for v := range flipped {
		values = append(values, v)
	}
	sort.Strings(values)

	groups := make([]Group, 0, len(values))
	for _, v := range values {
		terms := make([]string, 0, 1+len(flipped[v]))
		terms = append(terms, strings.ToLower(v))
		for _, k := range flipped[v] {
			lk := strings.ToLower(k)
			if !slices.Contains(terms, lk) {
				terms = append(terms, lk)
			}
		}
		if len(terms) < 2 {
			continue
		}
		groups = append(groups, Group{ID: "syn:" + strings.ToLower(v), Terms: terms})
	}
	return groups
}
