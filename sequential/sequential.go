// Package sequential provides a sequential implementation of the loop
// provided by the parallel package. This is useful for testing and
// debugging, and as the baseline when benchmarking parallel.For.
//
// It is not recommended to use the implementations of this package
// for any other purpose: a plain for loop says the same thing more
// directly.
package sequential

import "github.com/exascience/parfor"

// For invokes work for every index in the half-open interval from low to
// high, in ascending order, on the calling goroutine.
//
// If low >= high, For returns immediately without invoking work.
func For(low, high int, work parfor.Work) {
	for i := low; i < high; i++ {
		work(i)
	}
}

// ForPartitions divides the range from low to high among procs workers
// exactly like parallel.Threads does, but invokes f for each partition in
// turn on the calling goroutine. If the range is smaller than procs, f is
// invoked once for the whole range, matching the fallback of
// parallel.Threads.
func ForPartitions(low, high, procs int, f func(parfor.Partition)) {
	if low >= high {
		return
	}
	chunk := parfor.ChunkSize(low, high, procs)
	if chunk < 1 {
		f(parfor.Partition{Start: low, End: high})
		return
	}
	for _, p := range parfor.Partitions(low, high, chunk) {
		f(p)
	}
}

// Engine executes a range with For, ignoring the number of workers. It
// satisfies parallel.Engine.
type Engine struct{}

func (Engine) String() string {
	return "sequential"
}

// Execute invokes For.
func (Engine) Execute(low, high, _ int, work parfor.Work) {
	For(low, high, work)
}
