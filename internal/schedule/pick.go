package schedule

import "math/rand"

// Pick returns an index in [0, n) other than current, uniformly among the
// remaining n-1 indices. It draws exactly once. With fewer than two shapes it
// returns current unchanged.
func Pick(rng *rand.Rand, n, current int) int {
	if n < 2 {
		return current
	}
	if current < 0 || current >= n {
		return rng.Intn(n)
	}
	next := rng.Intn(n - 1)
	if next >= current {
		next++
	}
	return next
}
