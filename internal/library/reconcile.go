package library

import (
	"fmt"

	"github.com/papapumpkin/magnetar/internal/idpool"
)

// Reconcile assigns ids to every element that lacks one, in three ordered
// passes: project ids (one pool across the library), board ids (a fresh
// pool per project), then todo ids (one pool across the library, flattened
// in project, board, todo document order). Each pass seeds its pool from
// the ids already present in its scope so existing identities survive.
//
// An uninitialized id slot in any pass is a parser bug and aborts with
// ErrUninitializedID.
func (l *Library) Reconcile() error {
	if err := l.reconcileProjects(); err != nil {
		return err
	}
	if err := l.reconcileBoards(); err != nil {
		return err
	}
	return l.reconcileTodos()
}

func (l *Library) reconcileProjects() error {
	var used []int
	for _, p := range l.Projects {
		if !p.ID.Initialized() {
			return fmt.Errorf("library: project %q: %w", p.Name, ErrUninitializedID)
		}
		if id, ok := p.ID.Value(); ok {
			used = append(used, id)
		}
	}

	pool, err := idpool.New(used)
	if err != nil {
		return fmt.Errorf("library: seeding project id pool: %w", err)
	}
	for _, p := range l.Projects {
		if !p.ID.Assigned() {
			p.ID.Assign(pool.YieldID())
			l.dirty[p] = true
		}
	}
	return nil
}

// reconcileBoards runs one independent pool per project; board id scope
// does not cross projects.
func (l *Library) reconcileBoards() error {
	for _, p := range l.Projects {
		var used []int
		for _, b := range p.Boards {
			if !b.ID.Initialized() {
				return fmt.Errorf("library: board in %q: %w", p.Name, ErrUninitializedID)
			}
			if id, ok := b.ID.Value(); ok {
				used = append(used, id)
			}
		}

		pool, err := idpool.New(used)
		if err != nil {
			return fmt.Errorf("library: seeding board id pool for %q: %w", p.Name, err)
		}
		for _, b := range p.Boards {
			if !b.ID.Assigned() {
				b.ID.Assign(pool.YieldID())
				l.dirty[p] = true
			}
		}
	}
	return nil
}

func (l *Library) reconcileTodos() error {
	var used []int
	for _, p := range l.Projects {
		for _, b := range p.Boards {
			for _, t := range b.Todos {
				if !t.ID.Initialized() {
					return fmt.Errorf("library: todo in %q: %w", p.Name, ErrUninitializedID)
				}
				if id, ok := t.ID.Value(); ok {
					used = append(used, id)
				}
			}
		}
	}

	pool, err := idpool.New(used)
	if err != nil {
		return fmt.Errorf("library: seeding todo id pool: %w", err)
	}
	for _, p := range l.Projects {
		for _, b := range p.Boards {
			for _, t := range b.Todos {
				if !t.ID.Assigned() {
					t.ID.Assign(pool.YieldID())
					l.dirty[p] = true
				}
			}
		}
	}
	return nil
}

// Dirty reports whether the project's source document needs a flush.
func (l *Library) Dirty(p *Project) bool {
	return l.dirty[p]
}
