package dominance

import (
	"github.com/emilmelnikov/noisy-skylines/amplify"
	"github.com/emilmelnikov/noisy-skylines/oracle"
)

// LessLex reports whether item i is lexicographically less than item j:
// the first coordinate on which they differ has i < j.
//
// It finds the smallest lt with i_lt < j_lt and the smallest gt with
// i_gt > j_gt (each scan returns d, the dimension, if no such coordinate
// exists), then returns true iff gt == d or lt <= gt.
//
// tau is split in half between the two scans.
func LessLex(o *oracle.Oracle, i, j int, tau float64) bool {
	d := o.ItemDimension()
	half := tau / 2

	lt := d
	for k := 0; k < d; k++ {
		if amplify.Less(o, i, j, k, half) {
			lt = k
			break
		}
	}

	gt := d
	for k := 0; k < d; k++ {
		if amplify.Less(o, j, i, k, half) {
			gt = k
			break
		}
	}

	return gt == d || lt <= gt
}

// DominatedBy reports whether item i is dominated by item j: j is greater
// than or equal to i on every coordinate. Equal items dominate each other
// under this definition (see package doc).
//
// Each coordinate is polled at the full tolerance tau; callers that need a
// tighter overall bound must split tau themselves before calling.
func DominatedBy(o *oracle.Oracle, i, j int, tau float64) bool {
	d := o.ItemDimension()
	for k := 0; k < d; k++ {
		if amplify.Less(o, j, i, k, tau) {
			return false
		}
	}
	return true
}

// DominatedByAny reports whether item i is dominated by any item in c,
// short-circuiting on the first dominator found. tau is passed through to
// every DominatedBy call unchanged.
func DominatedByAny(o *oracle.Oracle, i int, c []int, tau float64) bool {
	for _, j := range c {
		if DominatedBy(o, i, j, tau) {
			return true
		}
	}
	return false
}
