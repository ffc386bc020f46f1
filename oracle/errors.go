package oracle

import "errors"

var (
	// ErrNilDataset indicates that New was called with a nil dataset.
	ErrNilDataset = errors.New("oracle: dataset is nil")

	// ErrProbabilityRange indicates that the error probability was outside [0, 0.5).
	ErrProbabilityRange = errors.New("oracle: error probability must be in [0, 0.5)")
)
