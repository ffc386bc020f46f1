// Package skyline computes the skyline (non-dominated set) of a
// multi-dimensional numeric dataset, under two models: a direct, noiseless
// model, and a noisy model where every coordinate comparison is wrong with
// a fixed probability.
//
// What is a skyline?
//
//	Given m points in R^d, the skyline is the subset not dominated by any
//	other point (j dominates i when j >= i on every coordinate and j > i on
//	at least one). It is the Pareto front of the dataset.
//
// Two ways to compute it:
//
//	– Noiseless (package noiseless): direct value access, output-sensitive
//	  maxima extraction. Use this when you trust your comparator.
//	– Noisy (this package's FullSkyline): coordinate comparisons go through
//	  an Oracle (package oracle) that is wrong with probability p. A
//	  confidence-amplifying comparator (package amplify) drives the
//	  effective error down toward the tolerance tau the caller supplies (see
//	  package amplify for when it stays within tau), at the cost of extra
//	  oracle queries; FullSkyline grows a sample size n
//	  (4, 16, 256, ...) until a pass returns fewer than n items, which
//	  signals the skyline has been fully extracted.
//
// Package layout, leaves first:
//
//	dataset/    — immutable m×d matrix, coordinate reads only
//	oracle/     — noisy coordinate comparator over a private dataset
//	amplify/    — recursive 3-majority confidence amplification
//	dominance/  — LessLex / DominatedBy / DominatedByAny
//	tournament/ — non-dominance-aware lexicographic-maximum reduction tree
//	sampler/    — SkySample: bounded extraction from a candidate set
//	noiseless/  — direct-access reference implementation
//	loader/     — dataset file I/O (CSV/TSV, binary row-major) and skyline output
//	cmd/skyline — command-line driver for both modes
//
// This package itself holds only the outer doubling loop (FullSkyline) that
// ties oracle, sampler and the tolerance budget together; the surrounding
// packages each do one job in the pipeline described above.
package skyline
