package noiseless

import "github.com/emilmelnikov/noisy-skylines/dataset"

// Skyline returns the indices of every non-dominated item in ds, via
// repeated lexicographic-maximum extraction and domination removal.
func Skyline(ds *dataset.Dataset) []int {
	working := make([]int, ds.ItemCount())
	for i := range working {
		working[i] = i
	}

	var result []int
	for len(working) > 0 {
		max := maxLex(ds, working)
		working = removeDominated(ds, max, working)
		result = append(result, max)
	}

	return result
}

// maxLex returns the index of the lexicographic maximum among items.
func maxLex(ds *dataset.Dataset, items []int) int {
	d := ds.Dimension()
	max := items[0]

	for _, item := range items[1:] {
		for k := 0; k < d; k++ {
			if ds.At(item, k) < ds.At(max, k) {
				break
			} else if ds.At(item, k) > ds.At(max, k) {
				max = item
				break
			}
		}
	}

	return max
}

// removeDominated returns items with every element dominated by max
// (max included) removed: v is dominated by max when v <= max on every
// coordinate and v < max on at least one.
func removeDominated(ds *dataset.Dataset, max int, items []int) []int {
	d := ds.Dimension()
	kept := items[:0]

	for _, item := range items {
		if item == max {
			continue
		}

		lt := false
		dominated := true
		for k := 0; k < d; k++ {
			if ds.At(item, k) > ds.At(max, k) {
				dominated = false
				break
			}
			if ds.At(item, k) < ds.At(max, k) {
				lt = true
			}
		}

		if !(dominated && lt) {
			kept = append(kept, item)
		}
	}

	return kept
}
