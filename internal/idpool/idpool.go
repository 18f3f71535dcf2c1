// Package idpool allocates numeric identifiers within a scope, reusing
// gaps left by deleted elements before extending the id space. A pool is
// built from a snapshot of the ids already in use and must be rebuilt
// whenever that snapshot changes.
package idpool

import (
	"fmt"
	"sort"
)

// Pool hands out non-negative integer ids. Gaps between already-used ids
// are reused (in unspecified order) before the id space is extended.
type Pool struct {
	free []int // unused ids below next, popped LIFO
	next int   // first id never used
}

// New builds a pool from the set of ids already in use. The input may be
// empty, unsorted, and may contain gaps. Negative ids are rejected.
func New(used []int) (*Pool, error) {
	sorted := make([]int, len(used))
	copy(sorted, used)
	sort.Ints(sorted)

	p := &Pool{}
	prev := -1
	for _, id := range sorted {
		if id < 0 {
			return nil, fmt.Errorf("idpool: negative id %d", id)
		}
		if id == prev {
			continue // duplicate in snapshot; tolerate, reconciliation reports it
		}
		for gap := prev + 1; gap < id; gap++ {
			p.free = append(p.free, gap)
		}
		prev = id
	}
	p.next = prev + 1
	return p, nil
}

// YieldID returns a free id, draining gaps before extending the id space.
// Gaps are not returned in ascending numeric order.
func (p *Pool) YieldID() int {
	if n := len(p.free); n > 0 {
		id := p.free[n-1]
		p.free = p.free[:n-1]
		return id
	}
	id := p.next
	p.next++
	return id
}

// FreeID returns an id to the pool. Ids at or beyond the extension point,
// or already free, are ignored.
func (p *Pool) FreeID(id int) {
	if p.IsIDFree(id) {
		return
	}
	p.free = append(p.free, id)
}

// IsIDFree reports whether the pool considers id available.
func (p *Pool) IsIDFree(id int) bool {
	if id >= p.next {
		return true
	}
	for _, f := range p.free {
		if f == id {
			return true
		}
	}
	return false
}
