package skyline

import (
	"github.com/emilmelnikov/noisy-skylines/oracle"
	"github.com/emilmelnikov/noisy-skylines/sampler"
)

// FullSkyline computes the complete noisy skyline of oracle's dataset with
// overall error probability at most tau (when the amplified comparisons stay
// within their tolerances; see package amplify), by squaring the sample
// size n (4, 16, 256, 65536, ...) until a pass returns fewer than n items.
//
// At iteration i (starting at i=1), the tolerance share is tau/2^i and
// n = 2^(2^i); the union bound over all passes keeps the total error at
// most tau. The sequence reaches any realistic skyline size within a
// handful of iterations since n grows doubly-exponentially.
func FullSkyline(o *oracle.Oracle, tau float64) []int {
	s := make([]int, o.ItemCount())
	for i := range s {
		s[i] = i
	}

	n := 4
	pow2i := 2

	for {
		result := sampler.SkySample(o, s, n, tau/float64(pow2i))
		if len(result) < n {
			return result
		}
		pow2i *= 2
		n *= n
	}
}
