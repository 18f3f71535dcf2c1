// Package library owns the in-memory task model parsed from a folder of
// markdown documents: projects containing boards containing todos. It
// assigns stable numeric ids across edits and writes them back into the
// source text without disturbing unrelated lines.
package library

import "strings"

// Priority is an ordinal urgency level. Lower values are more important.
type Priority int

const (
	PriorityUrgent Priority = iota
	PriorityHigh
	PriorityNormal
	PriorityLow
	PriorityNone
)

// priorityNames maps the metadata-block spellings to ordinals.
var priorityNames = map[string]Priority{
	"urgent": PriorityUrgent,
	"high":   PriorityHigh,
	"normal": PriorityNormal,
	"low":    PriorityLow,
	"none":   PriorityNone,
}

// ParsePriority resolves a priority name from a metadata block.
// Unrecognized or empty names resolve to PriorityNone.
func ParsePriority(name string) Priority {
	if p, ok := priorityNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p
	}
	return PriorityNone
}

func (p Priority) String() string {
	switch p {
	case PriorityUrgent:
		return "urgent"
	case PriorityHigh:
		return "high"
	case PriorityNormal:
		return "normal"
	case PriorityLow:
		return "low"
	default:
		return "none"
	}
}

// Considerable reports whether the priority is NORMAL or more important.
func (p Priority) Considerable() bool {
	return p <= PriorityNormal
}

// IDSlot holds a numeric identity in one of three states: assigned,
// explicitly empty (parsed, no annotation found, needs assignment), or
// uninitialized (the zero value, which the parser never produces and
// reconciliation treats as an internal error).
type IDSlot struct {
	state slotState
	id    int
}

type slotState int

const (
	slotUninitialized slotState = iota
	slotEmpty
	slotAssigned
)

// EmptyID returns a slot that needs an id assigned.
func EmptyID() IDSlot {
	return IDSlot{state: slotEmpty}
}

// AssignedID returns a slot holding id.
func AssignedID(id int) IDSlot {
	return IDSlot{state: slotAssigned, id: id}
}

// Value returns the held id and whether one is assigned.
func (s IDSlot) Value() (int, bool) {
	return s.id, s.state == slotAssigned
}

// Assigned reports whether the slot holds an id.
func (s IDSlot) Assigned() bool {
	return s.state == slotAssigned
}

// Initialized reports whether the parser ever touched the slot. False only
// for the zero value.
func (s IDSlot) Initialized() bool {
	return s.state != slotUninitialized
}

// Assign stores id into the slot.
func (s *IDSlot) Assign(id int) {
	s.state = slotAssigned
	s.id = id
}

// ProjectType distinguishes kanban-structured documents from freeform ones.
type ProjectType int

const (
	TypeKanban ProjectType = iota
	TypeFreeform
)

func (t ProjectType) String() string {
	if t == TypeKanban {
		return "kanban"
	}
	return "freeform"
}

// BoardKind is the discriminant of the board variant. Kanban documents
// carry the four workflow kinds; freeform documents carry topics.
type BoardKind int

const (
	KindInWork BoardKind = iota
	KindTodo
	KindDeepTodo
	KindRepetitive
	KindTopic
)

func (k BoardKind) String() string {
	switch k {
	case KindInWork:
		return "in work"
	case KindTodo:
		return "todo"
	case KindDeepTodo:
		return "deep todo"
	case KindRepetitive:
		return "repetitive"
	default:
		return "topic"
	}
}

// Todo is a single checkbox line. Its id is unique across the whole
// library once assigned.
type Todo struct {
	ID          IDSlot
	Description string
	Project     *Project
	Board       *Board

	// line is the todo's line index within the document body, for
	// write-back. Set by the parser, consumed by flush.
	line int
}

// urgentMarker flags a todo as urgent regardless of its project priority.
const urgentMarker = "!!!"

// Urgency returns PriorityUrgent when the description carries the urgency
// marker, else the owning project's urgency.
func (t *Todo) Urgency() Priority {
	if strings.Contains(t.Description, urgentMarker) {
		return PriorityUrgent
	}
	return t.Project.Urgency
}

// Board is a grouping of todos within a project: a kanban column or a
// freeform topic, discriminated by Kind. Name is set only for topics.
// Board ids are unique within their owning project.
type Board struct {
	ID      IDSlot
	Kind    BoardKind
	Name    string
	Todos   []*Todo
	Project *Project

	// line is the heading's line index within the document body, or -1
	// for the implicit "Default" topic of a heading-less document.
	line int
}

// Metadata is the decoded metadata block of one document.
type Metadata struct {
	Kanban   bool
	ID       IDSlot
	Areas    []string
	Urgency  Priority
	Strategy Priority
	Interest Priority
}

// Project is one document's task model. Project ids are unique across
// the library.
type Project struct {
	ID       IDSlot
	Name     string
	Type     ProjectType
	Boards   []*Board
	Urgency  Priority
	Strategy Priority
	Interest Priority
	Areas    []string
}

// board returns the first board of the given kind, or nil.
func (p *Project) board(kind BoardKind) *Board {
	for _, b := range p.Boards {
		if b.Kind == kind {
			return b
		}
	}
	return nil
}

// Todos returns every todo of the project in document order.
func (p *Project) Todos() []*Todo {
	var out []*Todo
	for _, b := range p.Boards {
		out = append(out, b.Todos...)
	}
	return out
}
