// Package parfor provides a minimal data-parallel loop primitive. Given a
// half-open index range and a per-index work function, it executes the
// function once per index, using multiple goroutines when the range is large
// enough to amortize their creation, and falling back to a plain loop on the
// calling goroutine otherwise.
//
// Parfor provides the following subpackages:
//
// parfor/parallel provides For, which partitions a range across workers and
// returns only when all of them are done, together with the engines that
// implement the different execution strategies.
//
// parfor/sequential provides a sequential implementation of For, for
// testing, debugging, and as the baseline in benchmarks.
//
// parfor/bench provides a monotonic clock and a function for timing an
// arbitrary operation.
//
// This package itself holds the types and the partitioning arithmetic shared
// by the subpackages.
package parfor
