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
	"fmt"
	"math"
	"testing"
)

func TestCombinedSquareModulo(t *testing.T) {
	tests := []struct {
		name string
		x, y uint64
		want uint64
	}{
		{name: "zeros wrap", x: 0, y: 0, want: 244},
		{name: "three four", x: 3, y: 4, want: 13},
		{name: "ones", x: 1, y: 1, want: 246},
		{name: "twos", x: 2, y: 2, want: 252},
		{name: "sum is 16", x: 4, y: 0, want: 4},
		{name: "square overflows to zero", x: 1 << 32, y: 0, want: 244},
		{name: "max operands", x: math.MaxUint64, y: math.MaxUint64, want: 246},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CombinedSquareModulo(tt.x, tt.y); got != tt.want {
				t.Errorf("CombinedSquareModulo(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCombinedSquareModuloRange(t *testing.T) {
	operands := []uint64{0, 1, 2, 3, 12, 13, 255, 256, 1 << 31, 1<<32 - 1, 1 << 63, math.MaxUint64}
	for _, x := range operands {
		for _, y := range operands {
			got := CombinedSquareModulo(x, y)
			if got < 1 || got > 256 {
				t.Errorf("CombinedSquareModulo(%d, %d) = %d, outside [1, 256]", x, y, got)
			}
		}
	}
}

func TestLoopedIntegerBenchmark(t *testing.T) {
	tests := []struct {
		n, input uint64
		want     uint64
	}{
		{n: 0, input: 7, want: 9},
		{n: 1, input: 0, want: 2},
		{n: 1, input: 1, want: 17},
		{n: 2, input: 1, want: 6210},
		{n: 7, input: 3, want: 389583},
		{n: 10, input: 10, want: 2095579},
		{n: 50, input: 1234, want: 6228608975},
		{n: 3, input: math.MaxUint64, want: 77048},
		{n: 20, input: math.MaxUint64, want: 6148914691237364437},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n%d_input%d", tt.n, tt.input), func(t *testing.T) {
			if got := LoopedIntegerBenchmark(tt.n, tt.input); got != tt.want {
				t.Errorf("LoopedIntegerBenchmark(%d, %d) = %d, want %d", tt.n, tt.input, got, tt.want)
			}
		})
	}
}

func TestLoopedIntegerBenchmarkZeroRounds(t *testing.T) {
	for _, input := range []uint64{0, 1, 1234, math.MaxUint64 - 1, math.MaxUint64} {
		if got, want := LoopedIntegerBenchmark(0, input), input+2; got != want {
			t.Errorf("LoopedIntegerBenchmark(0, %d) = %d, want %d", input, got, want)
		}
	}
}

func TestLoopedIntegerBenchmarkDeterministic(t *testing.T) {
	first := LoopedIntegerBenchmark(50, 1234)
	for i := 0; i < 10; i++ {
		if got := LoopedIntegerBenchmark(50, 1234); got != first {
			t.Fatalf("call %d = %d, first call = %d", i, got, first)
		}
	}
}

// With x=1 and y=0 the first shifted term contributes ((4/3)+0)<<3 = 8.
// Go's native grouping, 4/3 + (0<<3), would give 1. Two rounds with input=1
// isolate that: round 0 leaves 17, round 1 adds 14-1 and 3*(8+4+2048).
func TestLoopedIntegerBenchmarkShiftGrouping(t *testing.T) {
	x, y := uint64(1), uint64(1)
	wholeSum := ((x*4)/3 + y) << 3
	goNative := (x*4)/3 + y<<3
	if wholeSum == goNative {
		t.Fatalf("groupings agree (%d); pick operands where they diverge", wholeSum)
	}
	if wholeSum != 16 || goNative != 9 {
		t.Fatalf("wholeSum = %d, goNative = %d, want 16 and 9", wholeSum, goNative)
	}

	const want = 17 + 14 - 1 + 3*(8+4+2048)
	if got := LoopedIntegerBenchmark(2, 1); got != want {
		t.Errorf("LoopedIntegerBenchmark(2, 1) = %d, want %d", got, want)
	}
	// With Go's native precedence the three terms would be 1, 2 and 1.
	const nativeGrouping = 17 + 14 - 1 + 3*(1+2+1)
	if got := LoopedIntegerBenchmark(2, 1); got == nativeGrouping {
		t.Errorf("LoopedIntegerBenchmark(2, 1) = %d, matches the shift-binds-tighter grouping", got)
	}
}

func TestLoopedFloat64Benchmark(t *testing.T) {
	tests := []struct {
		n     uint64
		input float64
		bits  uint64
	}{
		{n: 0, input: 1.0, bits: 0x4008000000000000},
		{n: 1, input: 1.0, bits: 0x403dfb22f2734f83},
		{n: 2, input: 1.0, bits: 0x40554cbb88bf164e},
		{n: 7, input: 1.0, bits: 0x40abdddac7d9b4ca},
		{n: 10, input: 10.0, bits: 0x41177d9ffe32b4e0},
		{n: 10, input: 1.5, bits: 0x40e4f7ecd4332624},
		{n: 20, input: 0.5, bits: 0x416d37508558e2a0},
		{n: 7, input: -1.0, bits: 0xc0a58a1084fc164b},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n%d_input%v", tt.n, tt.input), func(t *testing.T) {
			got := LoopedFloat64Benchmark(tt.n, tt.input)
			if math.Float64bits(got) != tt.bits {
				t.Errorf("LoopedFloat64Benchmark(%d, %v) = %v (%#016x), want %v (%#016x)",
					tt.n, tt.input, got, math.Float64bits(got), math.Float64frombits(tt.bits), tt.bits)
			}
		})
	}
}

func TestLoopedFloat32Benchmark(t *testing.T) {
	tests := []struct {
		n     uint64
		input float32
		bits  uint32
	}{
		{n: 0, input: 1.0, bits: 0x40400000},
		{n: 1, input: 1.0, bits: 0x41efd918},
		{n: 2, input: 1.0, bits: 0x42aa65dc},
		{n: 7, input: 1.0, bits: 0x455eeed4},
		{n: 10, input: 10.0, bits: 0x48bbecff},
		{n: 10, input: 1.5, bits: 0x4727bf67},
		{n: 20, input: 0.5, bits: 0x4b69ba7d},
		{n: 7, input: -1.0, bits: 0xc52c5084},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n%d_input%v", tt.n, tt.input), func(t *testing.T) {
			got := LoopedFloat32Benchmark(tt.n, tt.input)
			if math.Float32bits(got) != tt.bits {
				t.Errorf("LoopedFloat32Benchmark(%d, %v) = %v (%#08x), want %v (%#08x)",
					tt.n, tt.input, got, math.Float32bits(got), math.Float32frombits(tt.bits), tt.bits)
			}
		})
	}
}

func TestLoopedFloatBenchmarkZeroRounds(t *testing.T) {
	for _, input := range []float64{0, 1, -2.5, 1e300, math.Inf(-1)} {
		got := LoopedFloat64Benchmark(0, input)
		if math.Float64bits(got) != math.Float64bits(input+2) {
			t.Errorf("LoopedFloat64Benchmark(0, %v) = %v, want %v", input, got, input+2)
		}
	}
	for _, input := range []float32{0, 1, -2.5, 3e38, float32(math.Inf(1))} {
		got := LoopedFloat32Benchmark(0, input)
		if math.Float32bits(got) != math.Float32bits(input+2) {
			t.Errorf("LoopedFloat32Benchmark(0, %v) = %v, want %v", input, got, input+2)
		}
	}
}

func TestLoopedFloatBenchmarkNaN(t *testing.T) {
	if got := LoopedFloat64Benchmark(10, math.NaN()); !math.IsNaN(got) {
		t.Errorf("LoopedFloat64Benchmark(10, NaN) = %v, want NaN", got)
	}
	if got := LoopedFloat32Benchmark(10, float32(math.NaN())); !math.IsNaN(float64(got)) {
		t.Errorf("LoopedFloat32Benchmark(10, NaN) = %v, want NaN", got)
	}
}

// The two widths differ by rounding only: same sign, and the relative gap
// stays far below what a structural divergence would produce.
func TestLoopedFloatBenchmarkCrossWidth(t *testing.T) {
	inputs := []float64{0, 0.25, 0.5, 1, 1.5, 2, 3, 10, -0.5, -1, -2}
	for _, input := range inputs {
		for n := uint64(0); n <= 20; n++ {
			f64 := LoopedFloat64Benchmark(n, input)
			f32 := float64(LoopedFloat32Benchmark(n, float32(input)))

			if math.Signbit(f64) != math.Signbit(f32) && f64 != 0 {
				t.Errorf("n=%d input=%v: sign differs: f64=%v f32=%v", n, input, f64, f32)
				continue
			}
			rel := math.Abs(f64-f32) / math.Max(math.Abs(f64), 1e-30)
			if rel > 1e-5 {
				t.Errorf("n=%d input=%v: f64=%v f32=%v (rel diff: %v)", n, input, f64, f32, rel)
			}
		}
	}
}

func BenchmarkLoopedIntegerBenchmark(b *testing.B) {
	for _, n := range []uint64{10, 50, 1000} {
		b.Run(fmt.Sprintf("n%d", n), func(b *testing.B) {
			var sink uint64
			for i := 0; i < b.N; i++ {
				sink += LoopedIntegerBenchmark(n, 1234)
			}
			_ = sink
		})
	}
}

func BenchmarkLoopedFloatBenchmark(b *testing.B) {
	for _, n := range []uint64{10, 50, 1000} {
		b.Run(fmt.Sprintf("f32_n%d", n), func(b *testing.B) {
			var sink float32
			for i := 0; i < b.N; i++ {
				sink += LoopedFloat32Benchmark(n, 10)
			}
			_ = sink
		})
		b.Run(fmt.Sprintf("f64_n%d", n), func(b *testing.B) {
			var sink float64
			for i := 0; i < b.N; i++ {
				sink += LoopedFloat64Benchmark(n, 10)
			}
			_ = sink
		})
	}
}
