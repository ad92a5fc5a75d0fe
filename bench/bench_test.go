package bench_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/exascience/parfor/bench"
)

func TestNowIsMonotonic(t *testing.T) {
	prev := bench.Now()
	require.GreaterOrEqual(t, prev, 0.0)
	for i := 0; i < 10000; i++ {
		now := bench.Now()
		require.GreaterOrEqual(t, now, prev)
		prev = now
	}
}

func TestBenchCoversSleep(t *testing.T) {
	const d = 20 * time.Millisecond
	calls := 0
	took := bench.Bench(func() {
		calls++
		time.Sleep(d)
	})
	require.Equal(t, 1, calls)
	require.GreaterOrEqual(t, took, d.Seconds())
}

func TestBenchPropagatesPanic(t *testing.T) {
	require.PanicsWithValue(t, "boom", func() {
		bench.Bench(func() { panic("boom") })
	})
}

func TestRepeat(t *testing.T) {
	calls := 0
	samples := bench.Repeat(5, func() { calls++ })
	require.Equal(t, 5, calls)
	require.Len(t, samples, 5)

	calls = 0
	require.Len(t, bench.Repeat(0, func() { calls++ }), 1)
	require.Equal(t, 1, calls)
}

func TestSummary(t *testing.T) {
	s := bench.Samples{0.001, 0.002, 0.003}.Summary()
	require.Equal(t, 3, s.Runs)
	require.Equal(t, 0.001, s.Min)
	require.Equal(t, 0.003, s.Max)
	require.InDelta(t, 0.002, s.Mean, 1e-12)
	require.InDelta(t, 0.001, s.StdDev, 1e-12)
	require.Equal(t, "3 runs, min 1.000ms, mean 2.000ms ± 1.000ms, max 3.000ms", s.String())

	one := bench.Samples{0.5}.Summary()
	require.Equal(t, 0.0, one.StdDev)
	require.False(t, math.IsNaN(one.Mean))

	require.Equal(t, bench.Summary{}, bench.Samples{}.Summary())
}
