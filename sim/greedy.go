package sim

import "math/rand"

// GreedyActions returns the set of actions whose estimate equals the maximum,
// in ascending order. On an empty history every estimate is 0.0, so all
// actions are returned.
func GreedyActions(h *History) []int {
	q := h.Estimates()
	best := q[0]
	ties := []int{0}
	for a := 1; a < len(q); a++ {
		switch {
		case q[a] > best:
			best = q[a]
			ties = ties[:0]
			ties = append(ties, a)
		case q[a] == best:
			ties = append(ties, a)
		}
	}
	return ties
}

// GreedyAction picks the action with the highest sample-average reward in h.
// Ties, including the all-zero case before anything has been learned, are
// broken uniformly at random. An empty history yields a uniformly random
// action rather than an error.
func GreedyAction(h *History, rng *rand.Rand) int {
	if h.Len() == 0 {
		return rng.Intn(h.NumActions())
	}
	ties := GreedyActions(h)
	if len(ties) == 1 {
		return ties[0]
	}
	return ties[rng.Intn(len(ties))]
}
