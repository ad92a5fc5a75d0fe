package internal

import (
	"runtime"
	"sync"

	"github.com/exascience/parfor"
)

// A ProcessorCounter caches the answer of Query. Query is invoked at most
// once, on the first call to Count, even when Count is called
// concurrently.
type ProcessorCounter struct {
	Query func() int

	once  sync.Once
	count int
}

// Count returns the cached processor count, computing it on first use. An
// answer smaller than 1 is cached as 1.
func (c *ProcessorCounter) Count() int {
	c.once.Do(func() {
		query := c.Query
		if query == nil {
			query = HardwareConcurrency
		}
		c.count = parfor.MinProcs(query())
	})
	return c.count
}

// HardwareConcurrency reports how many goroutines can execute
// simultaneously: runtime.NumCPU(), limited by runtime.GOMAXPROCS(0).
func HardwareConcurrency() int {
	maxProcs := runtime.GOMAXPROCS(0)
	numCPU := runtime.NumCPU()
	if maxProcs < numCPU {
		return maxProcs
	}
	return numCPU
}

var processors ProcessorCounter

// ProcessorCount returns the process-wide processor count. It is computed
// once and never changes afterwards, even if GOMAXPROCS does.
func ProcessorCount() int {
	return processors.Count()
}
