package loader

import "errors"

var (
	// ErrNoRows indicates that a text dataset file contained no non-empty lines.
	ErrNoRows = errors.New("loader: dataset file contains no rows")

	// ErrRaggedRow indicates that a text dataset file's rows have differing
	// field counts.
	ErrRaggedRow = errors.New("loader: inconsistent row width")

	// ErrBadField indicates a field could not be parsed as a decimal float.
	ErrBadField = errors.New("loader: field is not a valid decimal number")

	// ErrBadBinarySize indicates the binary dataset holds fewer than
	// size*dimensions float64 values. Data beyond that count is not read
	// and is not reported.
	ErrBadBinarySize = errors.New("loader: binary file size does not match size*dimensions")

	// ErrBadDimensions indicates size or dimensions was not positive.
	ErrBadDimensions = errors.New("loader: size and dimensions must be positive")
)
