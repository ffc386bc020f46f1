package tournament

import (
	"github.com/emilmelnikov/noisy-skylines/dominance"
	"github.com/emilmelnikov/noisy-skylines/oracle"
)

// LessLexNotDominated compares items i and j under the non-dominance total
// order used by the tournament: an item dominated by c is treated as
// lexicographically smaller than any item not dominated by c, and two
// dominated items have no ordering between them (Unknown).
//
// "Dominated by c" means DominatedByAny(i, c, tau).
func LessLexNotDominated(o *oracle.Oracle, i, j int, c []int, tau float64) Ternary {
	iDominated := dominance.DominatedByAny(o, i, c, tau)
	jDominated := dominance.DominatedByAny(o, j, c, tau)

	switch {
	case iDominated && jDominated:
		return Unknown
	case iDominated:
		return True
	case jDominated:
		return False
	default:
		if dominance.LessLex(o, i, j, tau) {
			return True
		}
		return False
	}
}

// Max2LexNotDominated returns the larger of i and j under the non-dominance
// total order. When exactly one operand is None, the other is returned as
// is, without being checked against c; when both are None, the result is
// None. If both i and j are dominated by c, the result is None (Unknown
// outcome).
func Max2LexNotDominated(o *oracle.Oracle, i, j OptIndex, c []int, tau float64) OptIndex {
	iv, iok := i.Index()
	jv, jok := j.Index()

	if !iok {
		return j
	}
	if !jok {
		return i
	}

	switch LessLexNotDominated(o, iv, jv, c, tau) {
	case True:
		return j
	case False:
		return i
	default:
		return None()
	}
}

// Max4LexNotDominated returns the non-dominated maximum among n items
// (n in [1, 4]) taken from s starting at offset. s holds OptIndex because,
// deeper in the reduction tree (see MaxLexNotDominated), group winners may
// themselves already be None; at the leaves, every entry is Some. An item
// that meets no opponent (n == 1, or paired with None) is returned without
// being checked against c. n outside [1, 4] is a programmer error and
// panics with ErrInvalidGroupSize.
func Max4LexNotDominated(o *oracle.Oracle, s []OptIndex, offset, n int, c []int, tau float64) OptIndex {
	switch n {
	case 1:
		return s[offset]
	case 2:
		return Max2LexNotDominated(o, s[offset], s[offset+1], c, tau)
	case 3:
		max01 := Max2LexNotDominated(o, s[offset], s[offset+1], c, tau/2)
		return Max2LexNotDominated(o, max01, s[offset+2], c, tau/2)
	case 4:
		max01 := Max2LexNotDominated(o, s[offset], s[offset+1], c, tau/2)
		max23 := Max2LexNotDominated(o, s[offset+2], s[offset+3], c, tau/2)
		return Max2LexNotDominated(o, max01, max23, c, tau/2)
	default:
		panic(ErrInvalidGroupSize)
	}
}

// MaxLexNotDominated returns the non-dominated lexicographic maximum among
// all items in s, or None if every item in s is dominated by c. s must not
// be empty (a programmer error otherwise, see ErrEmptyCandidates).
//
// Implementation: a 4-ary reduction tree. Groups of up to 4 are folded with
// Max4LexNotDominated into one winner each; the winners (which may
// themselves be None, if an entire group was dominated) are then folded the
// same way, recursively, until one survives. tau is not subdivided across
// levels (see package doc / DESIGN.md).
func MaxLexNotDominated(o *oracle.Oracle, s []int, c []int, tau float64) OptIndex {
	if len(s) == 0 {
		panic(ErrEmptyCandidates)
	}

	opts := make([]OptIndex, len(s))
	for i, v := range s {
		opts[i] = Some(v)
	}
	winner := reduce(o, opts, c, tau)
	// An item paired with None, or alone in its group, is passed up without
	// being checked against c, so the final winner is checked here.
	if idx, ok := winner.Index(); ok && dominance.DominatedByAny(o, idx, c, tau) {
		return None()
	}
	return winner
}

// reduce is the recursive core of MaxLexNotDominated, operating over
// OptIndex throughout so a dominated group can propagate None upward
// without panicking.
func reduce(o *oracle.Oracle, s []OptIndex, c []int, tau float64) OptIndex {
	if len(s) <= 4 {
		return Max4LexNotDominated(o, s, 0, len(s), c, tau)
	}

	groups := (len(s)-1)/4 + 1
	smax := make([]OptIndex, groups)
	g := 0
	for ; g < groups-1; g++ {
		smax[g] = Max4LexNotDominated(o, s, 4*g, 4, c, tau)
	}
	// Final group may have fewer than 4 items.
	smax[g] = Max4LexNotDominated(o, s, 4*g, len(s)-4*g, c, tau)

	return reduce(o, smax, c, tau)
}
