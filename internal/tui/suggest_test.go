package tui

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/magnetar/internal/filter"
	"github.com/papapumpkin/magnetar/internal/history"
	"github.com/papapumpkin/magnetar/internal/library"
	"github.com/papapumpkin/magnetar/internal/suggest"
)

type fakeSource struct {
	docs []library.SourceDoc
}

func (f fakeSource) List() ([]library.SourceDoc, error) {
	return f.docs, nil
}

func testSession(t *testing.T) *suggest.Session {
	t.Helper()

	meta := library.Metadata{
		ID:       library.EmptyID(),
		Urgency:  library.PriorityNone,
		Strategy: library.PriorityNone,
		Interest: library.PriorityNone,
	}
	lib, err := library.Load(fakeSource{docs: []library.SourceDoc{
		{Name: "chores", Path: "chores.md", Meta: meta, Content: "- [ ] one\n- [ ] two"},
	}})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := lib.Reconcile(); err != nil {
		t.Fatalf("Reconcile: %v", err)
	}

	hist := history.New(&history.State{}, lib)
	engine := suggest.New(lib, hist, rand.New(rand.NewSource(1)))
	return engine.Suggest(filter.Filter{})
}

func keyRunes(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func TestSuggestModelAccept(t *testing.T) {
	t.Parallel()

	session := testSession(t)
	want := session.Current()

	model, cmd := NewSuggest(session).Update(keyRunes("a"))
	if cmd == nil {
		t.Fatal("accept should quit the program")
	}

	m := model.(SuggestModel)
	if m.Outcome() != OutcomeAccepted {
		t.Errorf("outcome: got %v, want accepted", m.Outcome())
	}
	if m.Accepted() != want {
		t.Errorf("accepted: got %v, want the presented candidate", m.Accepted())
	}
}

func TestSuggestModelRejectAdvances(t *testing.T) {
	t.Parallel()

	session := testSession(t)
	first := session.Current()

	model, cmd := NewSuggest(session).Update(keyRunes("r"))
	if cmd != nil {
		t.Fatal("first reject should keep prompting")
	}

	m := model.(SuggestModel)
	if session.Current() == first {
		t.Error("reject did not advance the session")
	}

	model, cmd = m.Update(keyRunes("r"))
	if cmd == nil {
		t.Fatal("exhausting the sequence should quit")
	}
	if got := model.(SuggestModel).Outcome(); got != OutcomeExhausted {
		t.Errorf("outcome: got %v, want exhausted", got)
	}
}

func TestSuggestModelQuitLeavesSessionSuspended(t *testing.T) {
	t.Parallel()

	session := testSession(t)
	first := session.Current()

	model, cmd := NewSuggest(session).Update(keyRunes("q"))
	if cmd == nil {
		t.Fatal("quit should end the program")
	}
	if got := model.(SuggestModel).Outcome(); got != OutcomeCancelled {
		t.Errorf("outcome: got %v, want cancelled", got)
	}
	if session.Current() != first {
		t.Error("cancellation mutated the session")
	}
}

func TestSuggestModelView(t *testing.T) {
	t.Parallel()

	session := testSession(t)
	view := NewSuggest(session).View()

	if !strings.Contains(view, session.Current().Description) {
		t.Errorf("view misses candidate description:\n%s", view)
	}
	if !strings.Contains(view, "candidate 1 of 2") {
		t.Errorf("view misses position:\n%s", view)
	}
	if !strings.Contains(view, "chores") {
		t.Errorf("view misses project name:\n%s", view)
	}
}

func TestConfirmModel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  tea.KeyMsg
		want ConfirmResult
	}{
		{"yes", keyRunes("y"), ConfirmYes},
		{"no", keyRunes("n"), ConfirmNo},
		{"enter accepts", tea.KeyMsg{Type: tea.KeyEnter}, ConfirmYes},
		{"escape cancels", tea.KeyMsg{Type: tea.KeyEsc}, ConfirmCancelled},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			model, cmd := NewConfirm("Did you work on it?").Update(tt.key)
			if cmd == nil {
				t.Fatal("decision should quit the program")
			}
			if got := model.(ConfirmModel).Result(); got != tt.want {
				t.Errorf("result: got %v, want %v", got, tt.want)
			}
		})
	}
}
