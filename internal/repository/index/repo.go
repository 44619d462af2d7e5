// Package index manages the lifecycle and synonyms of the engine indexes.
package index

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/cmdhint/internal/db"
	"github.com/kailas-cloud/cmdhint/internal/domain"
	"github.com/kailas-cloud/cmdhint/internal/domain/synonym"
)

// store is the consumer interface for index management (ISP).
type store interface {
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	DropIndex(ctx context.Context, name string, deleteDocs bool) error
	IndexExists(ctx context.Context, name string) (bool, error)
	UpdateSynonyms(ctx context.Context, index, groupID string, terms []string) error
}

// Repo implements usecase/loader.IndexRepository.
type Repo struct {
	store  store
	prefix string
}

// New creates an index repository. prefix namespaces every key and index.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

// Reset drops the index together with its documents and creates it empty.
// A missing index is not an error.
func (r *Repo) Reset(ctx context.Context, kind domain.IndexKind) error {
	def, err := buildIndex(r.prefix, kind)
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}

	if err := r.store.DropIndex(ctx, def.Name, true); err != nil && !errors.Is(err, db.ErrIndexNotFound) {
		return fmt.Errorf("drop index %s: %w", kind, err)
	}

	if err := r.store.CreateIndex(ctx, def); err != nil {
		return fmt.Errorf("create index %s: %w", kind, err)
	}
	return nil
}

// UpdateSynonyms applies synonym groups to an index, one FT.SYNUPDATE per group.
// A missing index is created empty first.
func (r *Repo) UpdateSynonyms(ctx context.Context, kind domain.IndexKind, groups []synonym.Group) error {
	if err := r.ensure(ctx, kind); err != nil {
		return err
	}

	name := indexName(r.prefix, kind)
	for _, g := range groups {
		if err := r.store.UpdateSynonyms(ctx, name, g.ID, g.Terms); err != nil {
			if errors.Is(err, db.ErrIndexNotFound) {
				return fmt.Errorf("index %s: %w", kind, domain.ErrNotFound)
			}
			return fmt.Errorf("synonym group %s: %w", g.ID, err)
		}
	}
	return nil
}

func (r *Repo) ensure(ctx context.Context, kind domain.IndexKind) error {
	def, err := buildIndex(r.prefix, kind)
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}

	exists, err := r.store.IndexExists(ctx, def.Name)
	if err != nil {
		return fmt.Errorf("check index %s: %w", kind, err)
	}
	if exists {
		return nil
	}

	// a concurrent refresh may have created it in between
	if err := r.store.CreateIndex(ctx, def); err != nil && !errors.Is(err, db.ErrIndexExists) {
		return fmt.Errorf("create index %s: %w", kind, err)
	}
	return nil
}
