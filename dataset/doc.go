// Package dataset owns the immutable m×d matrix of real-valued attributes
// that the noisy-skyline engine computes over.
//
// A Dataset is built once (New) and never mutated afterwards. It exposes
// only coordinate reads (At, ItemCount, Dimension); nothing outside the
// oracle package is expected to read a Dataset directly once an Oracle has
// been constructed from it (see package oracle for the privacy boundary).
//
// Errors:
//
//	ErrEmptyDataset    - no rows supplied.
//	ErrRaggedRows      - rows have differing lengths.
//	ErrNaNCoordinate   - a row contains NaN (rejected at load time, per
//	                     the "arithmetic edge cases" policy: NaN ordering
//	                     is undefined, so we refuse it up front).
package dataset
