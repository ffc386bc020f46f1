// Package dominance implements the domination predicates that sit between
// the amplified comparator (package amplify) and the non-dominance
// tournament (package tournament): lexicographic ordering and domination
// checks over items, each built from amplify.Less at a caller-controlled
// tolerance.
//
// LessLex splits its tolerance budget in half between the two coordinate
// scans it performs; DominatedBy does not split its budget further (each
// coordinate is polled at the full tolerance passed in, and the caller is
// responsible for any splitting above that); DominatedByAny simply passes
// its tolerance through to every DominatedBy call.
//
// Edge case: DominatedBy returns true when every coordinate is equal (a
// point dominates itself under this weak definition). An item tested with
// DominatedByAny against an incumbent set c that contains it is therefore
// reported dominated; package sampler relies on this to keep an item it has
// already extracted from being picked again.
package dominance
