// Package sampler extracts up to n skyline points from a candidate set by
// repeated invocation of the tournament's non-dominated lexicographic
// maximum (package tournament).
//
// SkySample grows an incumbent result by repeatedly asking for the
// lex-maximum candidate not yet dominated by the incumbent; it stops early
// once the tournament reports no further candidate (tournament.OptIndex is
// None), which signals that every remaining candidate is already dominated.
//
// Each extracted item is not dominated by the items already extracted and
// is lex-greatest among the remaining candidates, so it cannot be dominated
// by any candidate either — any would-be dominator would itself have to be
// non-dominated, and hence lexicographically greater, contradicting
// maximality. Consequently the result is a subset of the true skyline with
// probability at least 1 − tau overall.
package sampler
