package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/exascience/parfor/parallel"
	"github.com/exascience/parfor/sequential"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PARFOR_CONFIG", "PARFOR_SIZE", "PARFOR_REPEATS",
		"PARFOR_ENGINE", "PARFOR_LOG_LEVEL", "PARFOR_LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func TestRunWorkload(t *testing.T) {
	for _, engine := range []parallel.Engine{parallel.Threads{}, parallel.DataParallel{}, sequential.Engine{}} {
		r := runWorkload(10000, 2, parallel.Loop{Procs: 8, Engine: engine})
		require.Equal(t, -1, r.Mismatch, "%v", engine)
		require.Equal(t, r.Sequential, r.Parallel)
		require.Equal(t, 10000.0, r.Parallel[2500])
		require.Equal(t, 39996.0, r.Parallel[9999])
		require.Equal(t, 2, r.Before.Runs)
		require.Equal(t, 2, r.After.Runs)
	}
}

func TestRun(t *testing.T) {
	clearEnv(t)

	var out bytes.Buffer
	require.Equal(t, exitOK, run([]string{"-size", "1000", "-engine", "threads"}, &out))
	require.Contains(t, out.String(), "results match")

	out.Reset()
	require.Equal(t, exitUsage, run([]string{"-engine", "openmp"}, &out))

	out.Reset()
	require.Equal(t, exitOK, run([]string{"-h"}, &out))

	t.Setenv("PARFOR_LOG_LEVEL", "loud")
	out.Reset()
	require.Equal(t, exitUsage, run(nil, &out))
}
