// Package bench provides a monotonic clock and functions to time
// operations.
package bench

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// epoch is captured once, when the package is initialized.
var epoch = time.Now()

// Now returns the number of seconds elapsed since the process started.
//
// Now reads the monotonic clock, so successive calls never decrease, and
// the result is not affected by changes to the wall clock.
func Now() float64 {
	return time.Since(epoch).Seconds()
}

// Bench invokes op exactly once and returns how many seconds it took.
//
// If op panics, the panic propagates unchanged and no duration is
// returned.
func Bench(op func()) float64 {
	took := -Now()
	op()
	return took + Now()
}

// Samples holds the durations of repeated runs, in seconds.
type Samples []float64

// Repeat invokes Bench(op) n times and returns all durations in order. If
// n < 1, op is run once.
func Repeat(n int, op func()) Samples {
	if n < 1 {
		n = 1
	}
	samples := make(Samples, n)
	for i := range samples {
		samples[i] = Bench(op)
	}
	return samples
}

// A Summary describes a set of samples. All durations are in seconds.
type Summary struct {
	Runs     int
	Min, Max float64
	Mean     float64
	StdDev   float64
}

// Summary computes the summary of s. The standard deviation of a single
// sample is 0. The summary of no samples is the zero Summary.
func (s Samples) Summary() Summary {
	if len(s) == 0 {
		return Summary{}
	}
	mean, std := stat.MeanStdDev(s, nil)
	if len(s) == 1 {
		std = 0
	}
	return Summary{
		Runs:   len(s),
		Min:    floats.Min(s),
		Max:    floats.Max(s),
		Mean:   mean,
		StdDev: std,
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("%d runs, min %.3fms, mean %.3fms ± %.3fms, max %.3fms",
		s.Runs, s.Min*1000, s.Mean*1000, s.StdDev*1000, s.Max*1000)
}
