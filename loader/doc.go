// Package loader provides thin I/O collaborators around the skyline
// engine: reading a dataset from disk (two flavours — text CSV/TSV, or
// binary row-major float64) and writing a skyline result back out.
//
// Neither format is part of the engine's comparison core; both are kept
// intentionally simple.
package loader
