package parfor_test

import (
	"reflect"
	"testing"

	"github.com/exascience/parfor"
)

func TestChunkSize(t *testing.T) {
	tests := []struct {
		low, high, procs, want int
	}{
		{0, 10000, 8, 1250},
		{0, 10, 3, 3},
		{0, 3, 8, 0},
		{5, 5, 4, 0},
		{7, 2, 4, 0},
		{-10, 10, 4, 5},
		{0, 10, 0, 10},
		{0, 10, -2, 10},
	}
	for _, test := range tests {
		if got := parfor.ChunkSize(test.low, test.high, test.procs); got != test.want {
			t.Errorf("ChunkSize(%v, %v, %v) = %v, want %v", test.low, test.high, test.procs, got, test.want)
		}
	}
}

func TestMinProcs(t *testing.T) {
	for procs, want := range map[int]int{-1: 1, 0: 1, 1: 1, 12: 12} {
		if got := parfor.MinProcs(procs); got != want {
			t.Errorf("MinProcs(%v) = %v, want %v", procs, got, want)
		}
	}
}

func TestPartitions(t *testing.T) {
	tests := []struct {
		low, high, chunk int
		want             []parfor.Partition
	}{
		{0, 0, 1, nil},
		{3, 1, 1, nil},
		{0, 4, 2, []parfor.Partition{{0, 2}, {2, 4}}},
		{0, 10, 3, []parfor.Partition{{0, 3}, {3, 6}, {6, 9}, {9, 10}}},
		{-3, 2, 5, []parfor.Partition{{-3, 2}}},
		{0, 3, 7, []parfor.Partition{{0, 3}}},
	}
	for _, test := range tests {
		got := parfor.Partitions(test.low, test.high, test.chunk)
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("Partitions(%v, %v, %v) = %v, want %v", test.low, test.high, test.chunk, got, test.want)
		}
	}
}

func TestPartitionsCover(t *testing.T) {
	for _, procs := range []int{1, 2, 3, 7, 8, 16} {
		for _, size := range []int{1, 2, 15, 16, 17, 1000, 1023} {
			low, high := -50, -50+size
			chunk := parfor.ChunkSize(low, high, procs)
			if chunk < 1 {
				continue
			}
			partitions := parfor.Partitions(low, high, chunk)
			if !reflect.DeepEqual(partitions, parfor.Partitions(low, high, chunk)) {
				t.Fatalf("Partitions(%v, %v, %v) is not deterministic", low, high, chunk)
			}
			next := low
			for _, p := range partitions {
				if p.Start != next {
					t.Fatalf("procs %v, size %v: partition %v starts at %v, want %v", procs, size, p, p.Start, next)
				}
				if p.Len() < 1 {
					t.Fatalf("procs %v, size %v: empty partition %v", procs, size, p)
				}
				next = p.End
			}
			if next != high {
				t.Fatalf("procs %v, size %v: partitions end at %v, want %v", procs, size, next, high)
			}
		}
	}
}

func TestPartitionsInvalidChunk(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Partitions with chunk 0 did not panic")
		}
	}()
	parfor.Partitions(0, 10, 0)
}
