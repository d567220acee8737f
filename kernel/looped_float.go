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

// Floats is the set of IEEE-754 types the float kernels are instantiated for.
type Floats interface {
	~float32 | ~float64
}

// LoopedFloatBenchmark runs n rounds of IEEE arithmetic at the width of T,
// seeded by input. LoopedFloatBenchmark(0, input) is input+2.
//
// Each round alternately adds and subtracts ((input+c)*input) - x for six
// constants c, adds y*input, then scales by 1.999, where
// y = (input*x/3.121)*2.003. After round 5 a positive y is subtracted twice.
//
// Every product is wrapped in T(...) before it reaches an add or subtract.
// The conversion forces rounding and keeps the compiler from contracting the
// pair into a fused multiply-add, so results are bit-identical on every GOARCH.
func LoopedFloatBenchmark[T Floats](n uint64, input T) T {
	out := input + 2
	for i := uint64(0); i < n; i++ {
		x := T(i)
		y := T(input*x/3.121) * 2.003

		out += T((input+13)*input) - x
		out -= T((input+11)*input) - x
		out += T((input+14.11)*input) - x
		out -= T((input+10.11)*input) - x
		out += T((input+15.22)*input) - x
		out -= T((input+9.222)*input) - x
		out += T(y * input)
		out = T(out * 1.999)

		if x > 5 && y > 0 {
			out -= T(y * 2)
		}
	}
	return out
}

// LoopedFloat32Benchmark is LoopedFloatBenchmark at single precision.
func LoopedFloat32Benchmark(n uint64, input float32) float32 {
	return LoopedFloatBenchmark(n, input)
}

// LoopedFloat64Benchmark is LoopedFloatBenchmark at double precision.
func LoopedFloat64Benchmark(n uint64, input float64) float64 {
	return LoopedFloatBenchmark(n, input)
}
