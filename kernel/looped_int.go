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

// LoopedIntegerBenchmark runs n rounds of wrapping u64 arithmetic seeded by
// input. Rounds are order dependent: each one folds into the running total.
// LoopedIntegerBenchmark(0, input) is input+2.
func LoopedIntegerBenchmark(n, input uint64) uint64 {
	out := input + 2
	for x := uint64(0); x < n; x++ {
		y := (input * x / 3) * 2
		out += (((input + 13) * input) & 0x66ff) - x
		out += y & 0x9
		// The shift covers the whole sum in each term below.
		for range 3 {
			out += ((x*4)/3 + y) << 3
			out += ((x*5)/2 + y) << 1
			out += ((x*6)/6 + y) << 11
		}
		if x > 5 {
			out -= y*2 - 1
		}
	}
	return out
}
