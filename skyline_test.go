package skyline_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emilmelnikov/noisy-skylines/dataset"
	"github.com/emilmelnikov/noisy-skylines/noiseless"
	"github.com/emilmelnikov/noisy-skylines/oracle"
	skyline "github.com/emilmelnikov/noisy-skylines"
)

func mustDataset(t *testing.T, rows [][]float64) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(rows)
	require.NoError(t, err)
	return ds
}

// E4: a perfect oracle (p=0) passes every comparison straight through; the
// noisy engine must reproduce the exact Pareto front.
func TestFullSkyline_E4_PerfectOracle(t *testing.T) {
	ds := mustDataset(t, [][]float64{{3, 1}, {1, 3}, {2, 2}})
	o, err := oracle.New(ds, 0, oracle.WithSeed(1))
	require.NoError(t, err)

	got := skyline.FullSkyline(o, 0.1)
	sort.Ints(got)
	require.Equal(t, []int{0, 1, 2}, got)
}

// E5: a noisy oracle (p=0.3) with a tight-ish tolerance should still
// recover the exact Pareto front on nearly every seed.
func TestFullSkyline_E5_NoisyOracleHighAgreement(t *testing.T) {
	rows := [][]float64{{3, 1}, {1, 3}, {2, 2}}
	const seeds = 20
	hits := 0
	for seed := int64(1); seed <= seeds; seed++ {
		ds := mustDataset(t, rows)
		o, err := oracle.New(ds, 0.3, oracle.WithSeed(seed))
		require.NoError(t, err)

		got := skyline.FullSkyline(o, 0.05)
		sort.Ints(got)
		if len(got) == 3 && got[0] == 0 && got[1] == 1 && got[2] == 2 {
			hits++
		}
	}
	require.GreaterOrEqual(t, hits, 18) // >= 18/20
}

// E6: a random 100-point, 3-D dataset computed via the noisy engine should
// agree with the noiseless ground truth on most seed trials.
func TestFullSkyline_E6_RandomDatasetAgreesWithGroundTruth(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rows := make([][]float64, 100)
	for i := range rows {
		rows[i] = []float64{rng.Float64(), rng.Float64(), rng.Float64()}
	}
	ds := mustDataset(t, rows)
	want := noiseless.Skyline(ds)
	sort.Ints(want)

	const trials = 100
	agree := 0
	for seed := int64(1); seed <= trials; seed++ {
		o, err := oracle.New(ds, 0.4, oracle.WithSeed(seed))
		require.NoError(t, err)
		got := skyline.FullSkyline(o, 0.01)
		sort.Ints(got)
		if equalInts(got, want) {
			agree++
		}
	}
	require.GreaterOrEqual(t, agree, 95)
}

// P1/P3: with a perfect oracle, FullSkyline matches the noiseless reference
// exactly, for every dataset tested.
func TestFullSkyline_ParityWithNoiseless(t *testing.T) {
	cases := [][][]float64{
		{{1, 1}, {2, 2}, {3, 3}},
		{{3, 1}, {1, 3}, {2, 2}},
		{{5, 5}, {5, 4}, {4, 5}, {1, 1}},
		{{1, 2, 3}, {3, 2, 1}, {2, 3, 1}, {0, 0, 0}},
	}
	for _, rows := range cases {
		ds := mustDataset(t, rows)
		want := noiseless.Skyline(ds)
		sort.Ints(want)

		o, err := oracle.New(ds, 0, oracle.WithSeed(1))
		require.NoError(t, err)
		got := skyline.FullSkyline(o, 0)
		sort.Ints(got)

		require.Equal(t, want, got)
	}
}

// P5: a noisy FullSkyline run counts its base Less calls on the oracle, so
// the comparison counter grows during the run. The exact count is not
// checked here.
func TestFullSkyline_ComparisonCounterAccounting(t *testing.T) {
	ds := mustDataset(t, [][]float64{{3, 1}, {1, 3}, {2, 2}, {9, 9}})
	o, err := oracle.New(ds, 0.3, oracle.WithSeed(5))
	require.NoError(t, err)

	before := o.ComparisonCount()
	skyline.FullSkyline(o, 0.1)
	after := o.ComparisonCount()
	require.Greater(t, after, before)
}

// P7: permuting the dataset's rows does not change the skyline, modulo
// re-indexing: mapping the permuted result back through the permutation
// must equal the original skyline.
func TestFullSkyline_PermutationInvariance(t *testing.T) {
	rows := [][]float64{{3, 1}, {1, 3}, {2, 2}, {0, 0}}
	ds := mustDataset(t, rows)
	o, err := oracle.New(ds, 0, oracle.WithSeed(1))
	require.NoError(t, err)
	want := skyline.FullSkyline(o, 0)
	sort.Ints(want)

	perm := []int{2, 0, 3, 1} // permuted[i] = rows[perm[i]]
	permuted := make([][]float64, len(rows))
	for i, p := range perm {
		permuted[i] = rows[p]
	}
	ds2 := mustDataset(t, permuted)
	o2, err := oracle.New(ds2, 0, oracle.WithSeed(1))
	require.NoError(t, err)
	gotPermuted := skyline.FullSkyline(o2, 0)

	mapped := make([]int, len(gotPermuted))
	for i, idx := range gotPermuted {
		mapped[i] = perm[idx]
	}
	sort.Ints(mapped)

	require.Equal(t, want, mapped)
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
