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

// Package kernel provides fixed-function numeric kernels with bit-exact
// semantics, used to check that an arithmetic execution engine (for example
// a WebAssembly interpreter) agrees with native code.
//
// # Kernels
//
//   - CombinedSquareModulo(x, y uint64) uint64 - ((x*x + y*y - 13) & 0xff) + 1
//   - LoopedIntegerBenchmark(n, input uint64) uint64 - looped u64 arithmetic
//   - LoopedFloat32Benchmark / LoopedFloat64Benchmark - looped IEEE arithmetic
//
// All integer arithmetic wraps modulo 2^64. Float arithmetic rounds to the
// operand width after every operation; products are explicitly converted so
// that architectures with fused multiply-add (arm64, ppc64le, s390x, amd64 v3)
// produce the same bits as amd64 v1.
//
// # Operator grouping
//
// The kernels were first written in a language where << binds looser than
// + and /, so "(x*4)/3 + y << 3" means "((x*4)/3 + y) << 3". Go gives << the
// precedence of *, so every such term is parenthesized here.
//
// # Batches
//
// LoopedIntegerBatch and LoopedFloatBatch evaluate a kernel for each input.
// The Parallel variants split large batches across GOMAXPROCS workers unless
// NUMKERNEL_NO_PARALLEL is set.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-numkernel/kernel"
//
//	kernel.CombinedSquareModulo(3, 4)        // 13
//	kernel.LoopedIntegerBenchmark(0, 7)      // 9
//	kernel.LoopedFloat64Benchmark(0, 1.0)    // 3.0
package kernel
