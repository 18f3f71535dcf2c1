// Package rank produces priority-weighted orderings of todos. Each todo
// draws an exponential score per priority dimension; the scale factors
// make urgency dominate strategy dominate interest in expectation.
package rank

import (
	"math"
	"math/rand"
	"sort"

	"github.com/papapumpkin/magnetar/internal/library"
)

// weights maps a priority ordinal to its score weight. NONE draws zero,
// so it never outranks anything by luck alone.
var weights = map[library.Priority]float64{
	library.PriorityUrgent: 8,
	library.PriorityHigh:   4,
	library.PriorityNormal: 2,
	library.PriorityLow:    1,
	library.PriorityNone:   0,
}

// Dimension scales. Urgency dominates strategy dominates interest.
const (
	scaleUrgency  = 100
	scaleStrategy = 10
	scaleInterest = 1
)

// Ranker orders todos using the given randomness source. Every call
// redraws; orderings are not stable across calls.
type Ranker struct {
	rng *rand.Rand
}

// New returns a ranker drawing from rng.
func New(rng *rand.Rand) *Ranker {
	return &Ranker{rng: rng}
}

// draw samples -ln(U) * weight * scale with U uniform in (0, 1].
func (r *Ranker) draw(p library.Priority, scale float64) float64 {
	u := 1 - r.rng.Float64() // Float64 is [0, 1); flip to (0, 1]
	return -math.Log(u) * weights[p] * scale
}

// score sums one draw per dimension: todo urgency, project strategy,
// project interest.
func (r *Ranker) score(t *library.Todo) float64 {
	return r.draw(t.Urgency(), scaleUrgency) +
		r.draw(t.Project.Strategy, scaleStrategy) +
		r.draw(t.Project.Interest, scaleInterest)
}

// WeightedShuffle returns the todos sorted descending by freshly drawn
// total score. Equal-priority todos come out in uniformly random relative
// order. The input slice is not modified.
func (r *Ranker) WeightedShuffle(todos []*library.Todo) []*library.Todo {
	out := make([]*library.Todo, len(todos))
	copy(out, todos)

	scores := make(map[*library.Todo]float64, len(out))
	for _, t := range out {
		scores[t] = r.score(t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return scores[out[i]] > scores[out[j]]
	})
	return out
}

// BiasedSort orders todos by original index minus freshly drawn score:
// high-priority todos drift earlier while zero-weight todos keep exactly
// their original positions. A gentle bias, not a reshuffle. The input
// slice is not modified.
func (r *Ranker) BiasedSort(todos []*library.Todo) []*library.Todo {
	out := make([]*library.Todo, len(todos))
	copy(out, todos)

	keys := make(map[*library.Todo]float64, len(out))
	for i, t := range out {
		keys[t] = float64(i) - r.score(t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return keys[out[i]] < keys[out[j]]
	})
	return out
}
