// Package filter selects the todos eligible for suggestion. A filter is a
// small predicate bundle: four priority selectors combined with OR, plus
// two exact-name overrides that short-circuit everything else.
package filter

import "github.com/papapumpkin/magnetar/internal/library"

// Filter selects todos. Precedence: ProjectName alone decides when set;
// else AreaName alone decides when set; else the four boolean selectors
// combine with OR. The zero Filter matches everything.
type Filter struct {
	UltraUrgent          bool // todo urgency is URGENT
	ConsiderableUrgency  bool // todo urgency is NORMAL or better
	ConsiderableStrategy bool // project strategy is NORMAL or better
	ConsiderableInterest bool // project interest is NORMAL or better

	AreaName    string // exact area tag match
	ProjectName string // exact project name match
}

// Match reports whether the todo passes the filter.
func (f Filter) Match(t *library.Todo) bool {
	if f.ProjectName != "" {
		return t.Project.Name == f.ProjectName
	}
	if f.AreaName != "" {
		for _, a := range t.Project.Areas {
			if a == f.AreaName {
				return true
			}
		}
		return false
	}

	if !f.UltraUrgent && !f.ConsiderableUrgency && !f.ConsiderableStrategy && !f.ConsiderableInterest {
		return true
	}

	switch {
	case f.UltraUrgent && t.Urgency() == library.PriorityUrgent:
		return true
	case f.ConsiderableUrgency && t.Urgency().Considerable():
		return true
	case f.ConsiderableStrategy && t.Project.Strategy.Considerable():
		return true
	case f.ConsiderableInterest && t.Project.Interest.Considerable():
		return true
	}
	return false
}

// Apply returns the todos passing the filter, order preserved.
func (f Filter) Apply(todos []*library.Todo) []*library.Todo {
	var out []*library.Todo
	for _, t := range todos {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}
