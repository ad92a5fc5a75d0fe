// Package internal holds the process-wide processor count and helpers shared
// by the parallel and sequential packages.
package internal

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/exascience/parfor"
)

// ComputeNofBatches divides the range (high - low) into at most procs
// batches. It returns 0 for an empty range.
func ComputeNofBatches(low, high, procs int) (batches int) {
	switch size := high - low; {
	case size > 0:
		batches = parfor.MinProcs(procs)
		if batches > size {
			batches = size
		}
	case size == 0:
		batches = 0
	default:
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	return
}

type runtimeError struct{ error }

func (runtimeError) RuntimeError() {}

// WrapPanic adds stack trace information to a recovered panic.
func WrapPanic(p interface{}) interface{} {
	if p != nil {
		s := fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
		if _, isError := p.(error); isError {
			r := errors.New(s)
			if _, isRuntimeError := p.(runtime.Error); isRuntimeError {
				return runtimeError{r}
			}
			return r
		}
		return s
	}
	return nil
}
