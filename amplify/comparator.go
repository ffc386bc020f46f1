// Package amplify - confidence-amplifying comparator.
package amplify

import "github.com/emilmelnikov/noisy-skylines/oracle"

// Less returns whether dataset(i,k) < dataset(j,k) by recursively
// amplifying o's base comparator. Each recursion level turns a vote error e
// into the majority error 3e² − 2e³; this keeps the result's error
// probability at most tau when o.ErrorProbability() is below about 0.095.
// For larger error probabilities the result can be wrong more often than
// tau: with p = 0.4 and tau = 0.05 it is wrong about 20% of the time.
//
// Complexity: O(3^depth) oracle queries in the worst case, where depth is
// bounded by ⌈log2(o.ErrorProbability()/tau)⌉ + 1; the majority-vote early
// exit makes the expected query count well below the worst case.
func Less(o *oracle.Oracle, i, j, k int, tau float64) bool {
	if o.ErrorProbability() <= tau {
		return o.Less(i, j, k)
	}

	doubled := 2 * tau
	r1 := Less(o, i, j, k, doubled)
	r2 := Less(o, i, j, k, doubled)
	if r1 == r2 {
		return r1
	}
	return Less(o, i, j, k, doubled)
}
