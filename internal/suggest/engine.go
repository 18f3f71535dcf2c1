// Package suggest composes the library, history, filter, and ranker into
// the interactive "what should I work on next" sequence. The engine only
// builds and advances the candidate sequence; presenting candidates and
// collecting the accept/reject decision belongs to the caller, so the
// same session drives a TUI, a plain prompt, or a test harness.
package suggest

import (
	"math/rand"

	"github.com/papapumpkin/magnetar/internal/filter"
	"github.com/papapumpkin/magnetar/internal/history"
	"github.com/papapumpkin/magnetar/internal/library"
	"github.com/papapumpkin/magnetar/internal/rank"
)

// Engine builds suggestion sessions.
type Engine struct {
	lib    *library.Library
	hist   *history.History
	ranker *rank.Ranker
}

// New returns an engine over the given library and history. The rng feeds
// the priority-weighted orderings.
func New(lib *library.Library, hist *history.History, rng *rand.Rand) *Engine {
	return &Engine{
		lib:    lib,
		hist:   hist,
		ranker: rank.New(rng),
	}
}

// Session is one suggestion run: an ordered candidate sequence and a
// cursor. The session suspends between candidates; it mutates nothing
// until Accept, so abandoning it (closing the prompt without answering)
// is always safe.
type Session struct {
	queue []*library.Todo
	pos   int
	hist  *history.History
}

// Suggest builds a session for the filter. Available todos that are not
// in a recently worked project are weighted-shuffled to the front;
// todos of recently worked projects follow in biased-sorted recency
// order, so recent work stays reachable but does not crowd out the rest.
func (e *Engine) Suggest(f filter.Filter) *Session {
	available := f.Apply(e.lib.AllAvailableTodos())

	var historyTodos []*library.Todo
	inHistory := make(map[*library.Todo]bool)
	for _, p := range e.hist.Projects() {
		for _, t := range f.Apply(e.lib.AvailableTodos(p)) {
			historyTodos = append(historyTodos, t)
			inHistory[t] = true
		}
	}

	var fresh []*library.Todo
	for _, t := range available {
		if !inHistory[t] {
			fresh = append(fresh, t)
		}
	}

	queue := e.ranker.WeightedShuffle(fresh)
	queue = append(queue, e.ranker.BiasedSort(historyTodos)...)

	return &Session{queue: queue, hist: e.hist}
}

// Empty reports whether the session never had a candidate.
func (s *Session) Empty() bool {
	return len(s.queue) == 0
}

// Current returns the candidate pending a decision, or nil when the
// sequence is exhausted.
func (s *Session) Current() *library.Todo {
	if s.pos >= len(s.queue) {
		return nil
	}
	return s.queue[s.pos]
}

// Position returns the 1-based index of the current candidate and the
// sequence length, for presentation.
func (s *Session) Position() (int, int) {
	return s.pos + 1, len(s.queue)
}

// Accept stores the current candidate in the history as pending work and
// ends the session. No-op when the sequence is exhausted.
func (s *Session) Accept() *library.Todo {
	t := s.Current()
	if t == nil {
		return nil
	}
	s.hist.SetCandidate(t)
	s.pos = len(s.queue)
	return t
}

// Reject advances past the current candidate without mutating any state.
func (s *Session) Reject() {
	if s.pos < len(s.queue) {
		s.pos++
	}
}
