package parallel

import (
	"sync"

	"github.com/exascience/parfor"
	"github.com/exascience/parfor/internal"
)

// DataParallel lets the loop itself distribute a range: it divides the range
// into min(procs, high - low) batches of nearly equal size, and executes
// them by recursive bisection, forking one half onto a new goroutine and
// running the other half on the current one.
//
// Unlike Threads, DataParallel has no small-range fallback: every index
// may run on a different goroutine. No order between indices is
// guaranteed.
type DataParallel struct{}

func (DataParallel) String() string {
	return "dataparallel"
}

// Execute implements Engine.
func (DataParallel) Execute(low, high, procs int, work parfor.Work) {
	if low >= high {
		return
	}
	var recur func(int, int, int)
	recur = func(low, high, n int) {
		if n > 1 {
			batchSize := ((high - low - 1) / n) + 1
			half := n / 2
			mid := low + batchSize*half
			if mid < high {
				var p interface{}
				var wg sync.WaitGroup
				wg.Add(1)
				go func() {
					defer func() {
						p = internal.WrapPanic(recover())
						wg.Done()
					}()
					recur(mid, high, n-half)
				}()
				func() {
					defer wg.Wait()
					recur(low, mid, half)
				}()
				if p != nil {
					panic(p)
				}
				return
			}
		}
		for i := low; i < high; i++ {
			work(i)
		}
	}
	recur(low, high, internal.ComputeNofBatches(low, high, procs))
}
