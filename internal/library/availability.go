package library

// AvailableTodos returns the todos a project currently offers for work.
//
// Kanban projects surface the REPETITIVE board plus the IN_WORK board when
// it has entries, falling back to the TODO board when IN_WORK is empty.
// The DEEP_TODO board is never surfaced. Freeform projects surface every
// board's todos in document order.
func (l *Library) AvailableTodos(p *Project) []*Todo {
	if p.Type == TypeFreeform {
		return p.Todos()
	}

	var out []*Todo
	if b := p.board(KindRepetitive); b != nil {
		out = append(out, b.Todos...)
	}
	if b := p.board(KindInWork); b != nil && len(b.Todos) > 0 {
		return append(out, b.Todos...)
	}
	if b := p.board(KindTodo); b != nil {
		out = append(out, b.Todos...)
	}
	return out
}

// AllAvailableTodos aggregates available todos across the library in
// document order.
func (l *Library) AllAvailableTodos() []*Todo {
	var out []*Todo
	for _, p := range l.Projects {
		out = append(out, l.AvailableTodos(p)...)
	}
	return out
}
