package datafile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kailas-cloud/cmdhint/internal/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDocuments_CommandsAndGuides(t *testing.T) {
	path := writeFile(t, "data.json", `{
		"commands": [{"id": "ls", "subject": "linux", "command": "ls -la"}],
		"guides": [{"id": 1, "subject": "git", "title": "Undo", "steps": []}]
	}`)

	data, err := New(path, "").Documents(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data.Commands) != 1 {
		t.Errorf("expected 1 command, got %d", len(data.Commands))
	}
	if len(data.Guides) != 1 {
		t.Errorf("expected 1 guide, got %d", len(data.Guides))
	}
}

func TestDocuments_NoGuides(t *testing.T) {
	path := writeFile(t, "data.json", `{"commands": []}`)

	data, err := New(path, "").Documents(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data.Commands) != 0 || data.Guides != nil {
		t.Errorf("unexpected data: %+v", data)
	}
}

func TestDocuments_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")

	_, err := New(path, "").Documents(context.Background())
	if !errors.Is(err, domain.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist in chain, got %v", err)
	}
}

func TestDocuments_Malformed(t *testing.T) {
	path := writeFile(t, "data.json", `{"commands": [`)

	_, err := New(path, "").Documents(context.Background())
	if !errors.Is(err, domain.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestDocuments_MissingCommandsKey(t *testing.T) {
	path := writeFile(t, "data.json", `{"guides": []}`)

	_, err := New(path, "").Documents(context.Background())
	if !errors.Is(err, domain.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestDocuments_CanceledContext(t *testing.T) {
	path := writeFile(t, "data.json", `{"commands": []}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(path, "").Documents(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSynonyms_HappyPath(t *testing.T) {
	path := writeFile(t, "synonyms.json", `{"synonyms": {"delete": ["rm", "remove"]}}`)

	table, err := New("", path).Synonyms(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := table["delete"]; len(got) != 2 || got[0] != "rm" {
		t.Errorf("unexpected table: %v", table)
	}
}

func TestSynonyms_MissingKey(t *testing.T) {
	path := writeFile(t, "synonyms.json", `{}`)

	_, err := New("", path).Synonyms(context.Background())
	if !errors.Is(err, domain.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestSynonyms_MissingFile(t *testing.T) {
	_, err := New("", filepath.Join(t.TempDir(), "nope.json")).Synonyms(context.Background())
	if !errors.Is(err, domain.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}
