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

// Package exports publishes the kernels under stable names so an external
// harness can call them the way it calls functions exported from a compiled
// module: by name, with every argument passed as a raw uint64.
//
// Floating-point arguments and results travel as IEEE-754 bits. A float32
// occupies the low 32 bits; the high bits are ignored on input and zero on
// output.
//
//	v, err := exports.Invoke("loopedArithmeticF32Benchmark", 10, uint64(math.Float32bits(10)))
//	// v.Type == exports.F32, v.Float32() == 384871.97
package exports
