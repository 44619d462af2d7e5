package document

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/cmdhint/internal/domain"
)

func TestParse_StringID(t *testing.T) {
	doc, err := Parse(json.RawMessage(`{"id":"ls-1","subject":"linux","command":"ls -la"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.ID() != "ls-1" {
		t.Errorf("ID = %q, want ls-1", doc.ID())
	}
	if doc.Subject() != "linux" {
		t.Errorf("Subject = %q, want linux", doc.Subject())
	}
	if !strings.Contains(string(doc.Raw()), `"command":"ls -la"`) {
		t.Errorf("raw lost fields: %s", doc.Raw())
	}
}

func TestParse_IntegerID(t *testing.T) {
	doc, err := Parse(json.RawMessage(` {"id": 42, "subject": "git"} `))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.ID() != "42" {
		t.Errorf("ID = %q, want 42", doc.ID())
	}
	if doc.Raw()[0] != '{' {
		t.Errorf("raw should be trimmed, got %q", doc.Raw())
	}
}

func TestParse_NoSubject(t *testing.T) {
	doc, err := Parse(json.RawMessage(`{"id":"a"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Subject() != "" {
		t.Errorf("Subject = %q, want empty", doc.Subject())
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ``},
		{"array", `[1,2]`},
		{"broken json", `{"id":`},
		{"missing id", `{"subject":"linux"}`},
		{"null id", `{"id":null}`},
		{"empty id", `{"id":""}`},
		{"float id", `{"id":1.5}`},
		{"bool id", `{"id":true}`},
		{"bad chars", `{"id":"a b"}`},
		{"too long", `{"id":"` + strings.Repeat("x", MaxIDLength+1) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(json.RawMessage(tt.raw))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, domain.ErrInvalidDocument) {
				t.Errorf("expected ErrInvalidDocument, got %v", err)
			}
		})
	}
}

func TestParseAll_ReportsPosition(t *testing.T) {
	raws := []json.RawMessage{
		json.RawMessage(`{"id":"a"}`),
		json.RawMessage(`{"subject":"x"}`),
	}
	_, err := ParseAll(raws)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "document 1") {
		t.Errorf("error should name position, got %q", err)
	}
}

func TestParseAll_Empty(t *testing.T) {
	docs, err := ParseAll(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("expected no documents, got %d", len(docs))
	}
}
