// Package parallel provides a fork-join loop over an index range.
//
// For divides a range into partitions, runs every partition on its own
// goroutine, and returns only when all of them have finished. How the range
// is divided is decided by an Engine. The default Engine is chosen at build
// time: Threads, or DataParallel when building with the dataparallel tag.
// Both satisfy the same contract, so callers never need to know which one
// is in use.
package parallel

import (
	"errors"
	"fmt"

	"github.com/exascience/parfor"
	"github.com/exascience/parfor/internal"
	"github.com/exascience/parfor/sequential"
)

// An Engine invokes work exactly once for every index in the half-open
// range from low to high, using up to procs goroutines, and returns only
// after all invocations have completed.
//
// Execute is only called with low < high and procs >= 1.
type Engine interface {
	Execute(low, high, procs int, work parfor.Work)
}

// ErrUnknownEngine is returned by EngineByName for names it does not know.
var ErrUnknownEngine = errors.New("unknown engine")

// EngineByName returns the engine for name: "threads", "dataparallel", or
// "sequential". The empty name and "default" return Default().
func EngineByName(name string) (Engine, error) {
	switch name {
	case "", "default":
		return defaultEngine, nil
	case "threads":
		return Threads{}, nil
	case "dataparallel":
		return DataParallel{}, nil
	case "sequential":
		return sequential.Engine{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
}

// Default returns the engine selected at build time.
func Default() Engine {
	return defaultEngine
}

// ProcessorCount returns the number of goroutines that can execute
// simultaneously, as determined once for the whole process. It is at least
// 1.
func ProcessorCount() int {
	return internal.ProcessorCount()
}

// A Loop describes how For executes a range.
//
// Procs is the number of workers the range is divided among. If Procs is
// 0 or negative, ProcessorCount() is used. Engine executes the range. If
// Engine is nil, Default() is used.
//
// The zero Loop is ready to use and behaves like the package-level For.
type Loop struct {
	Procs  int
	Engine Engine
}

// For invokes work once for every index in the half-open interval from
// low to high, including low but excluding high, and returns when all
// invocations have completed.
//
// If low >= high, For returns immediately without invoking work.
//
// Invocations for indices in different partitions run concurrently and in
// no particular order. See parfor.Work for what this requires from work.
//
// If one or more invocations of work panic, For eventually panics on the
// calling goroutine, after all workers have terminated, with the left-most
// panic value annotated with the stack trace of the worker that raised it.
func (l Loop) For(low, high int, work parfor.Work) {
	if low >= high {
		return
	}
	procs := l.Procs
	if procs <= 0 {
		procs = internal.ProcessorCount()
	}
	engine := l.Engine
	if engine == nil {
		engine = defaultEngine
	}
	engine.Execute(low, high, procs, work)
}

// For invokes work once for every index in the half-open interval from
// low to high, dividing the range among ProcessorCount() workers with the
// default engine. See Loop.For for the details.
func For(low, high int, work parfor.Work) {
	Loop{}.For(low, high, work)
}
