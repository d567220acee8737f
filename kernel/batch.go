// Copyright 2025 go-numkernel Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package kernel

import (
	"runtime"
	"sync"
)

// Parallel tuning parameters
const (
	// MinParallelOps is the minimum number of loop rounds (n * len(inputs))
	// before a batch is split across workers.
	MinParallelOps = 1 << 16

	// InputsPerStrip is how many inputs a worker takes from the queue at a time.
	InputsPerStrip = 256
)

// LoopedIntegerBatch computes out[i] = LoopedIntegerBenchmark(n, inputs[i])
// for i < min(len(inputs), len(out)).
func LoopedIntegerBatch(n uint64, inputs, out []uint64) {
	size := min(len(inputs), len(out))
	for i := 0; i < size; i++ {
		out[i] = LoopedIntegerBenchmark(n, inputs[i])
	}
}

// LoopedFloatBatch computes out[i] = LoopedFloatBenchmark(n, inputs[i])
// for i < min(len(inputs), len(out)).
func LoopedFloatBatch[T Floats](n uint64, inputs, out []T) {
	size := min(len(inputs), len(out))
	for i := 0; i < size; i++ {
		out[i] = LoopedFloatBenchmark(n, inputs[i])
	}
}

// ParallelLoopedIntegerBatch is LoopedIntegerBatch split into strips across
// GOMAXPROCS workers. Small batches, and every batch when parallelism is
// disabled, run on the calling goroutine. Results match LoopedIntegerBatch.
func ParallelLoopedIntegerBatch(n uint64, inputs, out []uint64) {
	parallelStrips(n, min(len(inputs), len(out)), func(lo, hi int) {
		LoopedIntegerBatch(n, inputs[lo:hi], out[lo:hi])
	})
}

// ParallelLoopedFloatBatch is LoopedFloatBatch split into strips across
// GOMAXPROCS workers. Results match LoopedFloatBatch.
func ParallelLoopedFloatBatch[T Floats](n uint64, inputs, out []T) {
	parallelStrips(n, min(len(inputs), len(out)), func(lo, hi int) {
		LoopedFloatBatch(n, inputs[lo:hi], out[lo:hi])
	})
}

// parallelStrips calls fn over [0, size) in InputsPerStrip chunks. Strips are
// disjoint, so fn may write its range of the output without locking.
func parallelStrips(n uint64, size int, fn func(lo, hi int)) {
	if size == 0 {
		return
	}
	if NoParallel() || size <= InputsPerStrip || n < MinParallelOps/uint64(size) {
		fn(0, size)
		return
	}

	numStrips := (size + InputsPerStrip - 1) / InputsPerStrip
	numWorkers := min(runtime.GOMAXPROCS(0), numStrips)

	work := make(chan int, numStrips)
	for strip := range numStrips {
		work <- strip
	}
	close(work)

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Go(func() {
			for strip := range work {
				lo := strip * InputsPerStrip
				fn(lo, min(lo+InputsPerStrip, size))
			}
		})
	}
	wg.Wait()
}
