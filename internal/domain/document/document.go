package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"github.com/kailas-cloud/cmdhint/internal/domain"
)

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// MaxIDLength is the maximum primary key length in bytes.
const MaxIDLength = 511

// Document is an opaque JSON object identified by its "id" attribute.
// The service never interprets fields beyond id and subject; everything else
// belongs to the engine.
type Document struct {
	id      string
	subject string
	raw     json.RawMessage
}

type header struct {
	ID      json.RawMessage `json:"id"`
	Subject *string         `json:"subject"`
}

// Parse validates a raw JSON object and extracts its primary key.
// The id may be a string or an integer; subject is optional.
func Parse(raw json.RawMessage) (Document, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Document{}, fmt.Errorf("%w: document must be a JSON object", domain.ErrInvalidDocument)
	}

	var h header
	if err := json.Unmarshal(trimmed, &h); err != nil {
		return Document{}, fmt.Errorf("%w: %w", domain.ErrInvalidDocument, err)
	}

	id, err := parseID(h.ID)
	if err != nil {
		return Document{}, err
	}

	var subject string
	if h.Subject != nil {
		subject = *h.Subject
	}

	return Document{id: id, subject: subject, raw: append(json.RawMessage(nil), trimmed...)}, nil
}

func parseID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", fmt.Errorf("%w: missing primary key \"id\"", domain.ErrInvalidDocument)
	}

	var id string
	switch raw[0] {
	case '"':
		if err := json.Unmarshal(raw, &id); err != nil {
			return "", fmt.Errorf("%w: id: %w", domain.ErrInvalidDocument, err)
		}
	default:
		n, err := strconv.ParseInt(string(raw), 10, 64)
		if err != nil {
			return "", fmt.Errorf("%w: id must be a string or an integer, got %s", domain.ErrInvalidDocument, raw)
		}
		id = strconv.FormatInt(n, 10)
	}

	if id == "" {
		return "", fmt.Errorf("%w: id is empty", domain.ErrInvalidDocument)
	}
	if len(id) > MaxIDLength {
		return "", fmt.Errorf("%w: id too long (max %d)", domain.ErrInvalidDocument, MaxIDLength)
	}
	if !idRegex.MatchString(id) {
		return "", fmt.Errorf("%w: id %q must be alphanumeric with underscores and hyphens",
			domain.ErrInvalidDocument, id)
	}
	return id, nil
}

// ID returns the primary key.
func (d Document) ID() string { return d.id }

// Subject returns the filterable subject, empty if absent.
func (d Document) Subject() string { return d.subject }

// Raw returns the document JSON as loaded.
func (d Document) Raw() json.RawMessage { return d.raw }

// ParseAll parses a list of raw objects, reporting the position of the first bad one.
func ParseAll(raws []json.RawMessage) ([]Document, error) {
	docs := make([]Document, 0, len(raws))
	for i, raw := range raws {
		doc, err := Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
