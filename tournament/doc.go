// Package tournament computes a non-dominance-aware lexicographic maximum
// over a group of candidates, skipping items already dominated by an
// incumbent skyline c.
//
// Types:
//
//	Ternary  – three-valued logic (True/False/Unknown), the result of
//	           LessLexNotDominated: Unknown means both operands are
//	           dominated by c and so have no ordering between them.
//	OptIndex – tagged-optional item index, used in place of a sentinel
//	           "no index" constant. None() represents "all candidates
//	           dominated".
//
// The core reduction, MaxLexNotDominated, builds a 4-ary tree: each group
// of up to 4 candidates is folded down with Max4LexNotDominated, producing
// one winner per group, and the winners are recursively folded the same
// way until one survives.
//
// Known looseness (kept intentionally, see DESIGN.md OQ3): tau is *not*
// subdivided across reduction levels — each Max4LexNotDominated call is
// individually tau-correct, and the overall bound depends on the caller
// supplying a sufficient tau to the whole tree.
package tournament
