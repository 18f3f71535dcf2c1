package filter

import (
	"testing"

	"github.com/papapumpkin/magnetar/internal/library"
)

func project(name string, urgency, strategy, interest library.Priority, areas ...string) *library.Project {
	return &library.Project{
		Name:     name,
		Urgency:  urgency,
		Strategy: strategy,
		Interest: interest,
		Areas:    areas,
	}
}

func todo(p *library.Project, desc string) *library.Todo {
	return &library.Todo{Description: desc, Project: p}
}

func TestEmptyFilterMatchesEverything(t *testing.T) {
	t.Parallel()

	p := project("p", library.PriorityNone, library.PriorityNone, library.PriorityNone)
	todos := []*library.Todo{todo(p, "a"), todo(p, "b")}

	if got := len(Filter{}.Apply(todos)); got != 2 {
		t.Errorf("Apply: got %d todos, want 2", got)
	}
}

func TestProjectNameOverridesEverything(t *testing.T) {
	t.Parallel()

	urgent := project("urgent-project", library.PriorityUrgent, library.PriorityNone, library.PriorityNone)
	other := project("calm-project", library.PriorityNone, library.PriorityNone, library.PriorityNone)

	f := Filter{ProjectName: "calm-project", UltraUrgent: true}
	got := f.Apply([]*library.Todo{todo(urgent, "hot"), todo(other, "cold")})

	if len(got) != 1 || got[0].Description != "cold" {
		t.Errorf("Apply: got %d todos, want only the named project's todo", len(got))
	}
}

func TestAreaNameOverridesBooleans(t *testing.T) {
	t.Parallel()

	home := project("h", library.PriorityNone, library.PriorityNone, library.PriorityNone, "home")
	work := project("w", library.PriorityUrgent, library.PriorityNone, library.PriorityNone, "work")

	f := Filter{AreaName: "home", UltraUrgent: true}
	got := f.Apply([]*library.Todo{todo(home, "a"), todo(work, "b")})

	if len(got) != 1 || got[0].Description != "a" {
		t.Errorf("Apply: got %d todos, want only the home-area todo", len(got))
	}
}

func TestBooleanSelectorsCombineWithOR(t *testing.T) {
	t.Parallel()

	strategic := project("s", library.PriorityNone, library.PriorityHigh, library.PriorityNone)
	interesting := project("i", library.PriorityNone, library.PriorityNone, library.PriorityNormal)
	dull := project("d", library.PriorityNone, library.PriorityLow, library.PriorityLow)

	f := Filter{ConsiderableStrategy: true, ConsiderableInterest: true}
	got := f.Apply([]*library.Todo{todo(strategic, "s"), todo(interesting, "i"), todo(dull, "d")})

	if len(got) != 2 {
		t.Fatalf("Apply: got %d todos, want 2", len(got))
	}
	if got[0].Description != "s" || got[1].Description != "i" {
		t.Errorf("Apply: got %q, %q", got[0].Description, got[1].Description)
	}
}

func TestUltraUrgentSeesMarkerUrgency(t *testing.T) {
	t.Parallel()

	calm := project("c", library.PriorityLow, library.PriorityNone, library.PriorityNone)
	marked := todo(calm, "fix boiler !!!")
	plain := todo(calm, "tidy desk")

	f := Filter{UltraUrgent: true}
	got := f.Apply([]*library.Todo{marked, plain})

	if len(got) != 1 || got[0] != marked {
		t.Errorf("Apply: got %d todos, want only the marker-urgent one", len(got))
	}
}
