package history

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/magnetar/internal/library"
)

// fakeLibrary resolves ids against a fixed set of projects.
type fakeLibrary struct {
	projects map[int]*library.Project
	todos    map[int]*library.Todo
}

func (f *fakeLibrary) ProjectByID(id int) *library.Project {
	return f.projects[id]
}

func (f *fakeLibrary) TodoByID(id int) *library.Todo {
	return f.todos[id]
}

func newFakeLibrary(projectIDs ...int) *fakeLibrary {
	f := &fakeLibrary{
		projects: make(map[int]*library.Project),
		todos:    make(map[int]*library.Todo),
	}
	for _, id := range projectIDs {
		f.projects[id] = &library.Project{
			ID:   library.AssignedID(id),
			Name: string(rune('A' + id)),
		}
	}
	return f
}

func (f *fakeLibrary) addTodo(todoID, projectID int, desc string) *library.Todo {
	t := &library.Todo{
		ID:          library.AssignedID(todoID),
		Description: desc,
		Project:     f.projects[projectID],
	}
	f.todos[todoID] = t
	return t
}

func TestNormalizeKeepsMostRecentOccurrence(t *testing.T) {
	t.Parallel()

	const a, b, c = 0, 1, 2
	lib := newFakeLibrary(a, b, c)
	state := &State{ProjectsHistory: []int{a, b, a, c}}

	New(state, lib).Normalize()

	if diff := cmp.Diff([]int{b, a, c}, state.ProjectsHistory); diff != "" {
		t.Errorf("normalized log (-want +got):\n%s", diff)
	}
}

func TestNormalizeDropsDeadProjects(t *testing.T) {
	t.Parallel()

	lib := newFakeLibrary(0, 2)
	state := &State{ProjectsHistory: []int{0, 1, 2}} // project 1 no longer exists

	New(state, lib).Normalize()

	if diff := cmp.Diff([]int{0, 2}, state.ProjectsHistory); diff != "" {
		t.Errorf("normalized log (-want +got):\n%s", diff)
	}
}

func TestProjectsMostRecentFirst(t *testing.T) {
	t.Parallel()

	lib := newFakeLibrary(0, 1, 2)
	state := &State{ProjectsHistory: []int{0, 1, 2}}

	got := New(state, lib).Projects()

	var names []string
	for _, p := range got {
		names = append(names, p.Name)
	}
	if diff := cmp.Diff([]string{"C", "B", "A"}, names); diff != "" {
		t.Errorf("projects (-want +got):\n%s", diff)
	}
}

func TestAcceptLogsCurrentOwner(t *testing.T) {
	t.Parallel()

	lib := newFakeLibrary(0, 1)
	todo := lib.addTodo(7, 1, "write report")

	state := &State{}
	h := New(state, lib)
	h.SetCandidate(todo)

	if !h.HasCandidate() {
		t.Fatal("HasCandidate: got false after SetCandidate")
	}
	if h.CandidateName() != "write report" {
		t.Errorf("CandidateName: got %q", h.CandidateName())
	}

	h.Accept()

	if diff := cmp.Diff([]int{1}, state.ProjectsHistory); diff != "" {
		t.Errorf("log after accept (-want +got):\n%s", diff)
	}
	if h.HasCandidate() {
		t.Error("candidate not cleared after accept")
	}
}

func TestAcceptFallsBackToSnapshotProject(t *testing.T) {
	t.Parallel()

	lib := newFakeLibrary(0, 1)
	todo := lib.addTodo(7, 1, "ephemeral")

	state := &State{}
	h := New(state, lib)
	h.SetCandidate(todo)

	// The todo vanished between candidate time and accept.
	delete(lib.todos, 7)
	h.Accept()

	if diff := cmp.Diff([]int{1}, state.ProjectsHistory); diff != "" {
		t.Errorf("log after accept (-want +got):\n%s", diff)
	}
}

func TestRejectLeavesLogUntouched(t *testing.T) {
	t.Parallel()

	lib := newFakeLibrary(0, 1)
	todo := lib.addTodo(7, 1, "skipped")

	state := &State{ProjectsHistory: []int{0}}
	h := New(state, lib)
	h.SetCandidate(todo)
	h.Reject()

	if diff := cmp.Diff([]int{0}, state.ProjectsHistory); diff != "" {
		t.Errorf("log after reject (-want +got):\n%s", diff)
	}
	if h.HasCandidate() {
		t.Error("candidate not cleared after reject")
	}
}

func TestAcceptWithoutCandidateIsNoOp(t *testing.T) {
	t.Parallel()

	lib := newFakeLibrary(0)
	state := &State{ProjectsHistory: []int{0}}
	h := New(state, lib)

	h.Accept()

	if diff := cmp.Diff([]int{0}, state.ProjectsHistory); diff != "" {
		t.Errorf("log (-want +got):\n%s", diff)
	}
}
