package index

import (
	"fmt"

	"github.com/kailas-cloud/cmdhint/internal/db"
	"github.com/kailas-cloud/cmdhint/internal/domain"
)

// buildIndex returns the FT index definition for an index kind.
// Every kind filters on subject; the searchable text differs.
func buildIndex(prefix string, kind domain.IndexKind) (*db.IndexDefinition, error) {
	b := db.NewIndex(indexName(prefix, kind)).
		OnJSON().
		Prefix(docPrefix(prefix, kind)).
		Tag("$.subject", "subject")

	switch kind {
	case domain.IndexCommands:
		b.Text("$.description", "description")
	case domain.IndexGuides:
		b.TextWeighted("$.title", "title", 2).
			Text("$.description", "description")
	default:
		return nil, fmt.Errorf("unknown index %q", kind)
	}

	return b.Build()
}

// Key patterns: {prefix}{kind}:idx, {prefix}{kind}:{id}

func indexName(prefix string, kind domain.IndexKind) string {
	return fmt.Sprintf("%s%s:idx", prefix, kind)
}

func docPrefix(prefix string, kind domain.IndexKind) string {
	return fmt.Sprintf("%s%s:", prefix, kind)
}
