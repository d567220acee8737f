//go:build wasip1

// Command numkernel-wasm exports the kernels from a WebAssembly module under
// the names an engine test suite looks up. Build it as a reactor so the
// exports stay callable after initialization:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o numkernel.wasm ./cmd/numkernel-wasm
package main

import "github.com/ajroetker/go-numkernel/kernel"

//go:wasmexport x2_plus_y2_minus_13
func x2PlusY2Minus13(x, y uint64) uint64 {
	return kernel.CombinedSquareModulo(x, y)
}

//go:wasmexport loopedArithmeticI64Benchmark
func loopedArithmeticI64Benchmark(n, input uint64) uint64 {
	return kernel.LoopedIntegerBenchmark(n, input)
}

//go:wasmexport loopedArithmeticF32Benchmark
func loopedArithmeticF32Benchmark(n uint64, input float32) float32 {
	return kernel.LoopedFloat32Benchmark(n, input)
}

//go:wasmexport loopedArithmeticF64Benchmark
func loopedArithmeticF64Benchmark(n uint64, input float64) float64 {
	return kernel.LoopedFloat64Benchmark(n, input)
}

func main() {}
