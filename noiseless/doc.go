// Package noiseless computes the skyline of a dataset with direct,
// error-free value access: an output-sensitive maxima extraction that
// repeatedly pulls the lexicographic maximum of the remaining working set
// and removes everything it dominates.
//
// This is both a standalone mode (when no oracle noise model is wanted) and
// the ground truth used to test the noisy engine's parity: Skyline(ds) must
// equal skyline.FullSkyline(oracle.New(ds, 0), 0) as sets, for any dataset
// with no duplicate rows.
//
// The naive O(m²d) nested-loop variant is used (rather than a hash-set
// removal structure): datasets this package is exercised against are
// small by construction, since it exists for test parity rather than
// production scale.
package noiseless
