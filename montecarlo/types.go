// Package montecarlo defines options, the Stats result type and sentinel
// errors for the montecarlo subpackage of github.com/katalvlaran/percolate.
package montecarlo

import (
	"errors"
	"math/rand"
)

// ErrNonPositiveArgument indicates a grid size or trial count of zero or less.
var ErrNonPositiveArgument = errors.New("montecarlo: grid size and trial count must be at least one")

// confidenceZ is the two-sided 95% quantile of the standard normal
// distribution used for the confidence interval.
const confidenceZ = 1.96

// minTrialsForConfidence is the smallest trial count for which the
// confidence interval is considered reliable; below it the bounds are NaN.
const minTrialsForConfidence = 10

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// Options configures a Monte Carlo run.
//
// Fields:
//   - Seed — seeds a fresh deterministic source; 0 selects defaultRNGSeed.
//   - Rand — explicit random source; when non-nil it takes precedence over
//     Seed. The source must produce uniform draws and is consumed
//     sequentially across trials.
//
// Use DefaultOptions() for the reproducible default setup.
type Options struct {
	Seed int64
	Rand *rand.Rand
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithSeed returns an Option that seeds the run's random source.
// Seed 0 keeps the fixed default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand returns an Option that supplies an explicit random source,
// overriding any seed.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// DefaultOptions returns Options initialized for a reproducible run:
// Seed = 0 (fixed default seed), Rand = nil.
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{}
}

// rng resolves the configured random source.
// Policy: explicit Rand wins; otherwise seed==0 ⇒ defaultRNGSeed, else the
// provided seed verbatim.
// Complexity: O(1).
func (o *Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	s := o.Seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// Stats is the immutable outcome of a Monte Carlo run. All fields are set
// once by Run and never mutated afterwards.
type Stats struct {
	// GridSize is the grid dimension n of every trial.
	GridSize int
	// Trials is the number of independent experiments T.
	Trials int
	// Samples holds one value per trial: random draws until percolation,
	// divided by GridSize.
	Samples []float64
	// Mean is the arithmetic mean of Samples.
	Mean float64
	// StdDev is the sample variance of Samples (squared deviations over
	// T−1); NaN when Trials == 1.
	StdDev float64
	// ConfidenceLo and ConfidenceHi bound the 95% confidence interval,
	// mean ∓ 1.96·sqrt(StdDev)/sqrt(T); NaN when Trials < 10.
	ConfidenceLo float64
	ConfidenceHi float64
}
