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

// CombinedSquareModulo computes ((x*x + y*y - 13) & 0xff) + 1 with 64-bit
// wraparound. The result is always in [1, 256].
//
// Sums below 13 wrap rather than go negative:
//
//	CombinedSquareModulo(0, 0)  // (2^64-13)&0xff + 1 = 244
//	CombinedSquareModulo(3, 4)  // 12 + 1 = 13
func CombinedSquareModulo(x, y uint64) uint64 {
	x2 := x * x
	y2 := y * y
	return ((x2 + y2 - 13) & 0xff) + 1
}
