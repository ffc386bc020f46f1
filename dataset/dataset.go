package dataset

import "math"

// Dataset is an immutable, row-major store of m items, each with d
// real-valued attributes. d is constant across every item.
type Dataset struct {
	rows [][]float64
	d    int
}

// New builds a Dataset from rows. rows must be non-empty, every row must
// have the same length, and no attribute may be NaN.
//
// The returned Dataset copies rows so later mutation of the caller's slices
// cannot reach into the Dataset.
func New(rows [][]float64) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}

	d := len(rows[0])
	owned := make([][]float64, len(rows))
	for i, row := range rows {
		if len(row) != d {
			return nil, ErrRaggedRows
		}
		item := make([]float64, d)
		for k, v := range row {
			if math.IsNaN(v) {
				return nil, ErrNaNCoordinate
			}
			item[k] = v
		}
		owned[i] = item
	}

	return &Dataset{rows: owned, d: d}, nil
}

// ItemCount returns m, the number of items in the dataset.
func (ds *Dataset) ItemCount() int {
	return len(ds.rows)
}

// Dimension returns d, the number of attributes per item.
func (ds *Dataset) Dimension() int {
	return ds.d
}

// At returns the k-th attribute of the i-th item.
//
// In the noisy engine only the oracle package calls At, inside its own
// Less; package noiseless, the direct-access reference, also reads values
// with At.
func (ds *Dataset) At(i, k int) float64 {
	return ds.rows[i][k]
}
