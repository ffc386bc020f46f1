package sampler

import (
	"github.com/emilmelnikov/noisy-skylines/oracle"
	"github.com/emilmelnikov/noisy-skylines/tournament"
)

// SkySample extracts at most n skyline items from the candidate set s,
// spending tau/n of the tolerance budget on each extraction (n extractions
// total, so the whole call is tau-correct by a union bound).
//
// It returns fewer than n items exactly when all remaining candidates
// are dominated by what has already been extracted — the signal that the
// candidate set is exhausted.
func SkySample(o *oracle.Oracle, s []int, n int, tau float64) []int {
	result := make([]int, 0, n)

	for i := 0; i < n; i++ {
		z := tournament.MaxLexNotDominated(o, s, result, tau/float64(n))
		idx, ok := z.Index()
		if !ok {
			return result
		}
		result = append(result, idx)
	}

	return result
}
