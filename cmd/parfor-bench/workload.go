package main

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/exascience/parfor/bench"
	"github.com/exascience/parfor/parallel"
	"github.com/exascience/parfor/sequential"
)

// scale is the per-index work of the demonstration: every index writes
// only its own element of dst.
func scale(dst, src []float64, i int) {
	dst[i] = 4 * src[i]
}

type result struct {
	Before, After bench.Summary

	Sequential, Parallel []float64

	// Mismatch is the first index where the two outputs differ, or -1.
	Mismatch int
}

// Speedup returns how many times faster the mean parallel run was.
func (r result) Speedup() float64 {
	if r.After.Mean == 0 {
		return 0
	}
	return r.Before.Mean / r.After.Mean
}

// runWorkload fills an input vector with 0, 1, ..., n-1, scales it once
// with a sequential loop and once with loop, timing each repeats times, and
// compares the outputs.
func runWorkload(n, repeats int, loop parallel.Loop) result {
	input := mat.NewVecDense(n, nil)
	seqOut := mat.NewVecDense(n, nil)
	parOut := mat.NewVecDense(n, nil)

	in := input.RawVector().Data
	for i := range in {
		in[i] = float64(i)
	}
	a1 := seqOut.RawVector().Data
	a2 := parOut.RawVector().Data

	before := bench.Repeat(repeats, func() {
		sequential.For(0, n, func(i int) { scale(a1, in, i) })
	})
	after := bench.Repeat(repeats, func() {
		loop.For(0, n, func(i int) { scale(a2, in, i) })
	})

	r := result{
		Before:     before.Summary(),
		After:      after.Summary(),
		Sequential: a1,
		Parallel:   a2,
		Mismatch:   -1,
	}
	if !floats.Equal(a1, a2) {
		for i := range a1 {
			if a1[i] != a2[i] {
				r.Mismatch = i
				break
			}
		}
	}
	return r
}
