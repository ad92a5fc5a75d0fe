package parallel

import (
	"sync"

	"github.com/exascience/parfor"
	"github.com/exascience/parfor/internal"
)

// Threads divides a range into partitions of parfor.ChunkSize indices and
// starts one goroutine per partition, while the calling goroutine waits for
// all of them.
//
// If the range has fewer indices than procs, the chunk size is 0 and
// starting goroutines would cost more than the work itself, so Threads
// invokes work for every index on the calling goroutine instead, in
// ascending order.
//
// Within a partition, indices are visited in ascending order.
type Threads struct{}

func (Threads) String() string {
	return "threads"
}

// Execute implements Engine.
func (Threads) Execute(low, high, procs int, work parfor.Work) {
	chunk := parfor.ChunkSize(low, high, procs)
	if chunk < 1 {
		for i := low; i < high; i++ {
			work(i)
		}
		return
	}
	partitions := parfor.Partitions(low, high, chunk)
	panics := make([]interface{}, len(partitions))
	var wg sync.WaitGroup
	wg.Add(len(partitions))
	for k, p := range partitions {
		go func(k int, p parfor.Partition) {
			defer func() {
				panics[k] = internal.WrapPanic(recover())
				wg.Done()
			}()
			for i := p.Start; i < p.End; i++ {
				work(i)
			}
		}(k, p)
	}
	wg.Wait()
	for _, p := range panics {
		if p != nil {
			panic(p)
		}
	}
}
