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

// Package cpuinfo reports host CPU features that matter when comparing float
// kernel results across runtimes. The main one is fused multiply-add: an
// engine that contracts a*b+c into one instruction rounds once instead of
// twice and can disagree with the kernels in the last bit.
package cpuinfo

import (
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sys/cpu"
)

// Feature is one detected CPU capability.
type Feature struct {
	Name    string
	Present bool
	Note    string
}

// Report describes the host.
type Report struct {
	GOOS   string
	GOARCH string
	NumCPU int

	// FusedMultiplyAdd reports whether the host has a scalar FMA
	// instruction an engine could use for float arithmetic.
	FusedMultiplyAdd bool

	Features []Feature
}

// Detect inspects the running host.
func Detect() Report {
	r := Report{
		GOOS:   runtime.GOOS,
		GOARCH: runtime.GOARCH,
		NumCPU: runtime.NumCPU(),
	}

	switch runtime.GOARCH {
	case "amd64", "386":
		r.Features = amd64Features()
		r.FusedMultiplyAdd = cpu.X86.HasFMA
	case "arm64":
		r.Features = arm64Features()
		// FMADD is part of the base A64 floating point instruction set.
		r.FusedMultiplyAdd = cpu.ARM64.HasFP
	case "ppc64", "ppc64le", "s390x", "riscv64", "loong64":
		r.FusedMultiplyAdd = true
	}
	return r
}

func arm64Features() []Feature {
	return []Feature{
		{"ASIMD", cpu.ARM64.HasASIMD, "NEON baseline"},
		{"FP", cpu.ARM64.HasFP, "Floating point"},
		{"FPHP", cpu.ARM64.HasFPHP, "FP16 scalar, ARMv8.2-A"},
		{"ASIMDHP", cpu.ARM64.HasASIMDHP, "FP16 NEON, ARMv8.2-A"},
		{"ASIMDFHM", cpu.ARM64.HasASIMDFHM, "FP16 FMA, ARMv8.4-A"},
		{"SVE", cpu.ARM64.HasSVE, "Scalable Vector Extension"},
		{"SVE2", cpu.ARM64.HasSVE2, ""},
		{"ATOMICS", cpu.ARM64.HasATOMICS, "Large System Extensions"},
	}
}

func amd64Features() []Feature {
	return []Feature{
		{"SSE2", cpu.X86.HasSSE2, "amd64 baseline"},
		{"SSE41", cpu.X86.HasSSE41, ""},
		{"SSE42", cpu.X86.HasSSE42, ""},
		{"AVX", cpu.X86.HasAVX, ""},
		{"AVX2", cpu.X86.HasAVX2, ""},
		{"FMA", cpu.X86.HasFMA, "contracted a*b+c; GOAMD64=v3 lets Go emit it"},
		{"AVX512F", cpu.X86.HasAVX512F, ""},
		{"AVX512BW", cpu.X86.HasAVX512BW, ""},
		{"AVX512VL", cpu.X86.HasAVX512VL, ""},
	}
}

// WriteText prints the report in the format of the cpu command.
func (r Report) WriteText(w io.Writer) error {
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	printf("GOOS: %s\n", r.GOOS)
	printf("GOARCH: %s\n", r.GOARCH)
	printf("NumCPU: %d\n", r.NumCPU)
	printf("Fused multiply-add: %v\n", r.FusedMultiplyAdd)

	if len(r.Features) > 0 {
		printf("\n=== golang.org/x/sys/cpu ===\n")
		for _, f := range r.Features {
			if f.Note != "" {
				printf("  Has%-10s %v (%s)\n", f.Name+":", f.Present, f.Note)
			} else {
				printf("  Has%-10s %v\n", f.Name+":", f.Present)
			}
		}
	}
	return err
}
