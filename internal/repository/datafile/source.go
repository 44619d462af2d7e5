// Package datafile reads the local JSON files the service loads into the engine.
package datafile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/kailas-cloud/cmdhint/internal/domain"
	domdoc "github.com/kailas-cloud/cmdhint/internal/domain/document"
	"github.com/kailas-cloud/cmdhint/internal/domain/synonym"
)

// Source implements usecase/loader.Source over two local files.
type Source struct {
	documentsPath string
	synonymsPath  string
}

// New creates a file source.
func New(documentsPath, synonymsPath string) *Source {
	return &Source{documentsPath: documentsPath, synonymsPath: synonymsPath}
}

// Documents reads and decodes the documents file.
func (s *Source) Documents(ctx context.Context) (domdoc.Bundle, error) {
	var f documentsFile
	if err := readJSON(ctx, s.documentsPath, &f); err != nil {
		return domdoc.Bundle{}, err
	}
	if f.Commands == nil {
		return domdoc.Bundle{}, fmt.Errorf("%w: %s: missing \"commands\"", domain.ErrSourceUnavailable, s.documentsPath)
	}
	return domdoc.Bundle(f), nil
}

// Synonyms reads and decodes the synonyms file.
func (s *Source) Synonyms(ctx context.Context) (synonym.Table, error) {
	var f synonymsFile
	if err := readJSON(ctx, s.synonymsPath, &f); err != nil {
		return nil, err
	}
	if f.Synonyms == nil {
		return nil, fmt.Errorf("%w: %s: missing \"synonyms\"", domain.ErrSourceUnavailable, s.synonymsPath)
	}
	return synonym.Table(f.Synonyms), nil
}

func readJSON(ctx context.Context, path string, dst any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrSourceUnavailable, path, err)
	}
	return nil
}
