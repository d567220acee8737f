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

// Package bench measures the kernel exports natively and compares the
// numbers with benchmark output from an engine that runs the same exports,
// such as a WebAssembly interpreter.
//
// The cases mirror the engine benchmarks BenchmarkU64Arithmetic10,
// BenchmarkF64Arithmetic10, BenchmarkF32Arithmetic10 and
// BenchmarkU64Arithmetic50, each of which the engine reports with an
// Interpreted or Native suffix. Native results are written in the standard
// "go test -bench" text format so the same tools can read both sides.
package bench
