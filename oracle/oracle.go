package oracle

import (
	"math/rand"

	"github.com/emilmelnikov/noisy-skylines/dataset"
)

// Options configures the behavior of a new Oracle.
//
// Seed     – optional RNG seed; SeedSet reports whether WithSeed was called.
type Options struct {
	Seed    int64
	SeedSet bool
}

// Option represents a functional option for configuring an Oracle.
type Option func(*Options)

// WithSeed pins the Oracle's RNG to a deterministic stream. Use only in
// tests; production callers should rely on the nondeterministic default.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.SeedSet = true
	}
}

// DefaultOptions returns the zero-value Options (no seed pinned).
func DefaultOptions() Options {
	return Options{}
}

// Oracle answers coordinate-wise "less than" queries over a private dataset,
// each wrong with probability p. See package doc for the privacy contract.
type Oracle struct {
	ds  *dataset.Dataset
	p   float64
	rng *rand.Rand

	comparisons uint64
}

// New constructs an Oracle over ds with error probability p ∈ [0, 0.5).
// Behavior for p outside that range is rejected with ErrProbabilityRange
// rather than left undefined, since Go library boundaries should validate
// rather than silently misbehave.
func New(ds *dataset.Dataset, p float64, opts ...Option) (*Oracle, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}
	if !(p >= 0 && p < 0.5) {
		return nil, ErrProbabilityRange
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	seed := o.Seed
	if !o.SeedSet {
		seed = nondeterministicSeed()
	}

	return &Oracle{
		ds:  ds,
		p:   p,
		rng: rngFromSeed(seed),
	}, nil
}

// ItemCount returns the number of items in the underlying dataset.
func (o *Oracle) ItemCount() int {
	return o.ds.ItemCount()
}

// ItemDimension returns the dimension of every item in the underlying dataset.
func (o *Oracle) ItemDimension() int {
	return o.ds.Dimension()
}

// ErrorProbability returns p, the probability that Less returns the wrong answer.
func (o *Oracle) ErrorProbability() float64 {
	return o.p
}

// Less reports whether item i is less than item j on dimension k, with
// error probability ErrorProbability(). Each call draws an independent
// Bernoulli(p) sample and increments the comparison counter exactly once.
func (o *Oracle) Less(i, j, k int) bool {
	correct := o.ds.At(i, k) < o.ds.At(j, k)
	o.comparisons++

	if o.rng.Float64() < o.p {
		return !correct
	}
	return correct
}

// ComparisonCount returns the total number of calls to Less made so far.
// This is the base-level counter: amplified comparisons (package amplify)
// increment it only through the Less calls they make, never directly.
//
// Oracle is only ever driven synchronously by a single goroutine, so this
// counter is a plain field, not an atomic one.
func (o *Oracle) ComparisonCount() uint64 {
	return o.comparisons
}
