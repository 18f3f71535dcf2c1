// Package history tracks the pending suggestion candidate and the recency
// log of recently worked projects. The log biases future suggestions:
// todos of recently worked projects are kept near their current order
// instead of reshuffled.
package history

import "github.com/papapumpkin/magnetar/internal/library"

// State is the persisted application state. It is owned by the caller and
// mutated in place; the persistence collaborator loads and saves it at
// defined points.
type State struct {
	RootPath        string
	ProjectsHistory []int // project ids, oldest first
	CurrProject     *int
	CurrTodo        *int
	CurrTodoName    string
}

// Resolver resolves ids against the live library. Defined here (where
// consumed) per project convention.
type Resolver interface {
	ProjectByID(id int) *library.Project
	TodoByID(id int) *library.Todo
}

// History mutates the candidate and recency-log portion of the state.
type History struct {
	state *State
	lib   Resolver
}

// New wraps the given state. The resolver is consulted when a candidate is
// accepted and when the log is normalized against the live library.
func New(state *State, lib Resolver) *History {
	return &History{state: state, lib: lib}
}

// HasCandidate reports whether a suggestion is pending a decision.
func (h *History) HasCandidate() bool {
	return h.state.CurrTodo != nil || h.state.CurrProject != nil
}

// CandidateName returns the description snapshot of the pending candidate.
func (h *History) CandidateName() string {
	return h.state.CurrTodoName
}

// SetCandidate stores the todo's id, description, and owning project id as
// the pending candidate.
func (h *History) SetCandidate(t *library.Todo) {
	if id, ok := t.ID.Value(); ok {
		v := id
		h.state.CurrTodo = &v
	} else {
		h.state.CurrTodo = nil
	}
	if id, ok := t.Project.ID.Value(); ok {
		v := id
		h.state.CurrProject = &v
	} else {
		h.state.CurrProject = nil
	}
	h.state.CurrTodoName = t.Description
}

// Accept resolves the candidate into the recency log and clears it. The
// project id is taken from the todo's current owner when the todo still
// exists, falling back to the project id snapshotted at candidate time
// (the todo may have been finished and deleted since).
func (h *History) Accept() {
	if !h.HasCandidate() {
		return
	}

	projectID := h.state.CurrProject
	if h.state.CurrTodo != nil {
		if todo := h.lib.TodoByID(*h.state.CurrTodo); todo != nil {
			if id, ok := todo.Project.ID.Value(); ok {
				v := id
				projectID = &v
			}
		}
	}
	if projectID != nil {
		h.state.ProjectsHistory = append(h.state.ProjectsHistory, *projectID)
	}

	h.clearCandidate()
	h.Normalize()
}

// Reject clears the pending candidate; the log is untouched.
func (h *History) Reject() {
	h.clearCandidate()
}

func (h *History) clearCandidate() {
	h.state.CurrProject = nil
	h.state.CurrTodo = nil
	h.state.CurrTodoName = ""
}

// Normalize deduplicates the log, keeping for each project id only its
// most recent occurrence with the order otherwise preserved, and drops ids
// whose project no longer exists in the library.
func (h *History) Normalize() {
	log := h.state.ProjectsHistory
	keep := make([]bool, len(log))
	seen := make(map[int]bool, len(log))

	for i := len(log) - 1; i >= 0; i-- {
		id := log[i]
		if seen[id] || h.lib.ProjectByID(id) == nil {
			continue
		}
		seen[id] = true
		keep[i] = true
	}

	normalized := log[:0]
	for i, id := range log {
		if keep[i] {
			normalized = append(normalized, id)
		}
	}
	h.state.ProjectsHistory = normalized
}

// Projects normalizes the log and resolves each surviving id to its live
// project, most recently worked first.
func (h *History) Projects() []*library.Project {
	h.Normalize()

	log := h.state.ProjectsHistory
	out := make([]*library.Project, 0, len(log))
	for i := len(log) - 1; i >= 0; i-- {
		if p := h.lib.ProjectByID(log[i]); p != nil {
			out = append(out, p)
		}
	}
	return out
}
