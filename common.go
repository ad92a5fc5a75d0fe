package parfor

import "fmt"

// A Work function receives a single index from a range.
//
// A Work function passed to parallel.For is invoked concurrently from
// several goroutines, once for each index. Invocations for distinct
// indices must not race on shared mutable state: writing to disjoint
// elements of a shared slice is fine, appending to a shared slice or
// incrementing a shared counter is not, unless the Work function does its
// own synchronization. The loop itself provides none.
type Work func(index int)

// A Partition is a contiguous sub-range from Start to End, including Start
// but excluding End, that is assigned to exactly one worker.
type Partition struct {
	Start, End int
}

// Len returns the number of indices in the partition.
func (p Partition) Len() int {
	return p.End - p.Start
}

// MinProcs returns procs, or 1 if procs is smaller than 1.
func MinProcs(procs int) int {
	if procs < 1 {
		return 1
	}
	return procs
}

/*
ChunkSize determines the number of indices each worker receives when the
range from low to high is divided among procs workers.

The return value is (high - low) / procs, using integer division, or 0 if
the range is empty. A procs value smaller than 1 is treated as 1, so
ChunkSize never divides by zero.

A return value of 0 for a non-empty range means that the range is smaller
than the number of workers, and that running it on multiple goroutines is
not worth the overhead.
*/
func ChunkSize(low, high, procs int) int {
	if high <= low {
		return 0
	}
	return (high - low) / MinProcs(procs)
}

/*
Partitions divides the range from low to high into consecutive partitions
of chunk indices each, starting at low. The final partition is clamped to
end at high, so when chunk does not evenly divide the range, the remainder
forms one shorter partition at the end.

The result is deterministic, the partitions are disjoint and non-empty, and
their union is exactly the range from low to high. An empty range yields no
partitions.

Partitions panics if chunk < 1 for a non-empty range.
*/
func Partitions(low, high, chunk int) []Partition {
	if high <= low {
		return nil
	}
	if chunk < 1 {
		panic(fmt.Sprintf("invalid chunk size: %v", chunk))
	}
	result := make([]Partition, 0, (high-low-1)/chunk+1)
	for start, end := low, low; start < high; start = end {
		end = start + chunk
		if end > high || end < start {
			end = high
		}
		result = append(result, Partition{start, end})
	}
	return result
}
