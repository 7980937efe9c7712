package montecarlo

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/percolate/percolation"
)

// Run performs trials independent percolation experiments on an n×n grid
// and aggregates them into a Stats value.
// Returns ErrNonPositiveArgument when n < 1 or trials < 1.
//
// Trials run serially; within a trial, union-find mutations follow the
// site-opening order exactly.
// Complexity: O(trials·n²·α) time, O(trials + n²) memory.
func Run(n, trials int, opts ...Option) (*Stats, error) {
	if n < 1 || trials < 1 {
		return nil, ErrNonPositiveArgument
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	rng := o.rng()

	samples := make([]float64, trials)
	for i := range samples {
		s, err := runTrial(n, rng)
		if err != nil {
			return nil, err
		}
		samples[i] = s
	}

	return summarize(n, samples), nil
}

// runTrial opens uniformly random sites on a fresh grid until it percolates
// or the number of draws exceeds n². Every draw counts, including repeats
// on already-open sites. The sample is draws/n.
func runTrial(n int, rng *rand.Rand) (float64, error) {
	g, err := percolation.New(n)
	if err != nil {
		return 0, err
	}

	draws := 0
	bound := n * n
	for !g.Percolates() && draws <= bound {
		row := rng.Intn(n) + 1
		col := rng.Intn(n) + 1
		// Coordinates are generated in range, so Open cannot fail.
		_ = g.Open(row, col)
		draws++
	}

	return float64(draws) / float64(n), nil
}

// summarize aggregates the per-trial samples into an immutable Stats.
// StdDev is NaN for a single trial; the confidence bounds are NaN below
// minTrialsForConfidence trials.
func summarize(n int, samples []float64) *Stats {
	trials := len(samples)

	mean := stat.Mean(samples, nil)

	variance := math.NaN()
	if trials > 1 {
		variance = stat.Variance(samples, nil)
	}

	lo, hi := math.NaN(), math.NaN()
	if trials >= minTrialsForConfidence {
		half := confidenceZ * math.Sqrt(variance) / math.Sqrt(float64(trials))
		lo, hi = mean-half, mean+half
	}

	return &Stats{
		GridSize:     n,
		Trials:       trials,
		Samples:      samples,
		Mean:         mean,
		StdDev:       variance,
		ConfidenceLo: lo,
		ConfidenceHi: hi,
	}
}

// Report renders the four-line textual summary: mean, mean as a percentage
// of the n² sites, stddev, and the confidence interval as "lo, hi".
// Undefined statistics are printed as NaN.
// Complexity: O(1).
func (s *Stats) Report() string {
	var b strings.Builder

	total := float64(s.GridSize * s.GridSize)
	fmt.Fprintf(&b, "mean                    = %v\n", s.Mean)
	fmt.Fprintf(&b, "mean %%                  = %v\n", s.Mean*100/total)
	fmt.Fprintf(&b, "stddev                  = %v\n", s.StdDev)
	fmt.Fprintf(&b, "95%% confidence interval = %v, %v\n", s.ConfidenceLo, s.ConfidenceHi)

	return b.String()
}
