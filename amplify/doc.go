// Package amplify turns an Oracle with a fixed, possibly large error
// probability into a comparator whose error probability is driven down
// toward a caller-supplied tolerance τ.
//
// Less(o, i, j, k, τ) returns dataset(i,k) < dataset(j,k) by recursive
// majority voting at doubling tolerance:
//
//	– if the oracle is already good enough (p ≤ τ), ask it once directly.
//	– otherwise draw two votes at tolerance 2τ; if they agree, return that
//	  vote (2 recursive calls); if they disagree, draw a third tie-breaking
//	  vote at tolerance 2τ (3 recursive calls).
//
// Termination is guaranteed because τ doubles on every recursive level
// while p is fixed, so the base case (p ≤ τ) is reached after
// ⌈log2(p/τ)⌉ levels — bounded recursion depth, never an explicit stack.
//
// This exact shape (doubling by 2, early exit on agreement) is load-bearing
// for the per-level error bound 3(2τ)²(1−2τ) + (2τ)³ ≤ τ and must not be
// altered. That inequality holds only for τ up to about 0.095, so the
// overall error stays within τ when p is below about 0.095; for larger p
// it can exceed τ (p = 0.4, τ = 0.05 gives about 0.2).
package amplify
