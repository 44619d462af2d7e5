package search

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kailas-cloud/cmdhint/internal/domain"
	"github.com/kailas-cloud/cmdhint/internal/domain/search/query"
	"github.com/kailas-cloud/cmdhint/internal/metrics"
)

// --- Mocks ---

type topCall struct {
	kind  domain.IndexKind
	field string
	text  string
	typo  bool
}

type mockRepo struct {
	calls []topCall
	// hits maps query text to a raw hit; anything else is a miss.
	hits map[string]string
	err  error
}

func (m *mockRepo) Top(
	_ context.Context, kind domain.IndexKind, field string, q query.Query, typo bool,
) (json.RawMessage, error) {
	m.calls = append(m.calls, topCall{kind: kind, field: field, text: q.Text(), typo: typo})
	if m.err != nil {
		return nil, m.err
	}
	if raw, ok := m.hits[q.Text()]; ok {
		return json.RawMessage(raw), nil
	}
	return nil, domain.ErrNotFound
}

// --- FindCommand ---

func TestFindCommand_Hit(t *testing.T) {
	repo := &mockRepo{hits: map[string]string{
		"list files": `{"id":"ls","subject":"linux","command":"ls -la"}`,
	}}
	svc := New(repo)

	before := testutil.ToFloat64(metrics.SearchTotal.WithLabelValues("commands", metrics.OutcomeHit))

	line, err := svc.FindCommand(context.Background(), "linux", "list+files")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line != "ls -la" {
		t.Errorf("expected ls -la, got %q", line)
	}
	if len(repo.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(repo.calls))
	}
	c := repo.calls[0]
	if c.kind != domain.IndexCommands || c.field != "description" || !c.typo {
		t.Errorf("unexpected call: %+v", c)
	}

	after := testutil.ToFloat64(metrics.SearchTotal.WithLabelValues("commands", metrics.OutcomeHit))
	if after-before != 1 {
		t.Errorf("expected search_total hit +1, got %f", after-before)
	}
}

func TestFindCommand_RelaxesLastWord(t *testing.T) {
	repo := &mockRepo{hits: map[string]string{
		"list": `{"command":"ls"}`,
	}}
	svc := New(repo)

	before := testutil.ToFloat64(metrics.SearchRelaxationsTotal.WithLabelValues("commands"))

	line, err := svc.FindCommand(context.Background(), "linux", "list+hidden+files")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line != "ls" {
		t.Errorf("expected ls, got %q", line)
	}

	var texts []string
	for _, c := range repo.calls {
		texts = append(texts, c.text)
	}
	if got := strings.Join(texts, "|"); got != "list hidden files|list hidden|list" {
		t.Errorf("unexpected query sequence: %s", got)
	}

	after := testutil.ToFloat64(metrics.SearchRelaxationsTotal.WithLabelValues("commands"))
	if after-before != 2 {
		t.Errorf("expected 2 relaxations, got %f", after-before)
	}
}

func TestFindCommand_NoHit(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo)

	_, err := svc.FindCommand(context.Background(), "linux", "frobnicate+widgets")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(repo.calls) != 2 {
		t.Errorf("expected 2 attempts, got %d", len(repo.calls))
	}
}

func TestFindCommand_RelaxationOff(t *testing.T) {
	repo := &mockRepo{hits: map[string]string{"list": `{"command":"ls"}`}}
	svc := New(repo).WithRelaxation(false).WithTypoTolerance(false)

	_, err := svc.FindCommand(context.Background(), "linux", "list+files")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(repo.calls) != 1 {
		t.Errorf("expected a single attempt, got %d", len(repo.calls))
	}
	if repo.calls[0].typo {
		t.Error("expected typo tolerance off")
	}
}

func TestFindCommand_InvalidQuery(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo)

	_, err := svc.FindCommand(context.Background(), "linux", "+++")
	if !errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
	if len(repo.calls) != 0 {
		t.Error("engine must not be queried")
	}
}

func TestFindCommand_EngineError(t *testing.T) {
	repo := &mockRepo{err: errors.New("connection refused")}
	svc := New(repo)

	_, err := svc.FindCommand(context.Background(), "linux", "list+files")
	if err == nil || errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected engine error, got %v", err)
	}
	if len(repo.calls) != 1 {
		t.Errorf("engine errors must not be retried, got %d calls", len(repo.calls))
	}
}

func TestFindCommand_HitWithoutCommand(t *testing.T) {
	repo := &mockRepo{hits: map[string]string{"ls": `{"id":"ls"}`}}
	svc := New(repo)

	_, err := svc.FindCommand(context.Background(), "linux", "ls")
	if err == nil {
		t.Fatal("expected error")
	}
}

// --- FindGuide ---

func TestFindGuide_Formats(t *testing.T) {
	repo := &mockRepo{hits: map[string]string{
		"undo commit": `{"id":"undo","title":"Undo last commit","steps":[` +
			`{"description":"Reset softly","command":"git reset --soft HEAD~1"}]}`,
	}}
	svc := New(repo)

	out, err := svc.FindGuide(context.Background(), "git", "undo+commit")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Undo last commit\n\nStep 1: Reset softly\n$ git reset --soft HEAD~1"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
	if repo.calls[0].kind != domain.IndexGuides || repo.calls[0].field != "" {
		t.Errorf("unexpected call: %+v", repo.calls[0])
	}
}

func TestFindGuide_NoHit(t *testing.T) {
	svc := New(&mockRepo{})

	_, err := svc.FindGuide(context.Background(), "git", "rebase")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
