package dataset

import "errors"

var (
	// ErrEmptyDataset indicates that New was called with zero rows.
	ErrEmptyDataset = errors.New("dataset: must contain at least one item")

	// ErrRaggedRows indicates that rows do not all share the same dimension.
	ErrRaggedRows = errors.New("dataset: all items must have the same dimension")

	// ErrNaNCoordinate indicates a NaN attribute value in the input rows.
	ErrNaNCoordinate = errors.New("dataset: NaN coordinate is not allowed")
)
