package db

import (
	"strings"
	"testing"
)

func TestIndexBuilder_CommandsSchema(t *testing.T) {
	idx := NewIndex("cmdhint:commands:idx").
		OnJSON().
		Prefix("cmdhint:commands:").
		Tag("$.subject", "subject").
		Text("$.description", "description").
		MustBuild()

	if idx.StorageType != StorageJSON {
		t.Errorf("storage = %q, want JSON", idx.StorageType)
	}
	if len(idx.Fields) != 2 {
		t.Fatalf("fields count = %d, want 2", len(idx.Fields))
	}
	if idx.Fields[0].Alias != "subject" || idx.Fields[0].Type != IndexFieldTag {
		t.Errorf("field[0] = %+v, want subject TAG", idx.Fields[0])
	}
	if idx.Fields[1].Alias != "description" || idx.Fields[1].Type != IndexFieldText {
		t.Errorf("field[1] = %+v, want description TEXT", idx.Fields[1])
	}
}

func TestIndexBuilder_DefaultsToHash(t *testing.T) {
	idx := NewIndex("h").Tag("a", "").MustBuild()
	if idx.StorageType != StorageHash {
		t.Errorf("storage = %q, want HASH", idx.StorageType)
	}
}

func TestIndexBuilder_TagWithOpts(t *testing.T) {
	idx := NewIndex("t").TagWithOpts("$.subject", "subject", ";", true).MustBuild()
	f := idx.Fields[0]
	if f.TagSeparator != ";" || !f.TagCaseSensitive {
		t.Errorf("unexpected tag options: %+v", f)
	}
}

func TestIndexBuilder_TextWeighted(t *testing.T) {
	idx := NewIndex("g").TextWeighted("$.title", "title", 2).MustBuild()
	if idx.Fields[0].Weight != 2 {
		t.Errorf("weight = %v, want 2", idx.Fields[0].Weight)
	}
}

func TestIndexBuilder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		builder *IndexBuilder
		wantErr string
	}{
		{"empty name", NewIndex("").Tag("a", ""), "name is required"},
		{"bad name", NewIndex("has space").Tag("a", ""), "invalid characters"},
		{"no fields", NewIndex("x"), "at least one field"},
		{"empty field", NewIndex("x").Tag("", ""), "field name is required"},
		{"duplicate alias", NewIndex("x").Tag("$.a", "a").Text("$.b", "a"), "duplicate field name: a"},
		{"negative weight", NewIndex("x").TextWeighted("$.t", "t", -1), "negative weight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestIndexBuilder_MustBuildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewIndex("").MustBuild()
}

func TestIndexDefinition_String(t *testing.T) {
	idx := NewIndex("cmds").
		OnJSON().
		Prefix("p:").
		Tag("$.subject", "subject").
		Text("$.description", "").
		MustBuild()

	want := "FT.CREATE cmds ON JSON PREFIX 1 p: SCHEMA $.subject AS subject TAG $.description TEXT"
	if got := idx.String(); got != want {
		t.Errorf("String() =\n%q\nwant\n%q", got, want)
	}
}

func TestIsValidIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"cmdhint:commands:idx", true},
		{"a_b-c", true},
		{"", false},
		{"with space", false},
		{"dot.name", false},
	}
	for _, tt := range tests {
		if got := IsValidIdentifier(tt.in); got != tt.want {
			t.Errorf("IsValidIdentifier(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
