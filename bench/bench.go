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

package bench

import (
	"fmt"
	"io"
	"regexp"
	"runtime"
	"testing"

	"go.uber.org/zap"

	"github.com/ajroetker/go-numkernel/exports"
)

// Case is one benchmarked export invocation.
type Case struct {
	// Name matches the engine benchmark name without the Benchmark prefix
	// and variant suffix, e.g. "U64Arithmetic10".
	Name   string
	Export string
	Args   []exports.Value
}

// Cases are the engine benchmark invocations.
var Cases = []Case{
	{
		Name:   "U64Arithmetic10",
		Export: exports.NameLoopedI64,
		Args:   []exports.Value{exports.I64Value(10), exports.I64Value(10)},
	},
	{
		Name:   "F64Arithmetic10",
		Export: exports.NameLoopedF64,
		Args:   []exports.Value{exports.I64Value(10), exports.F64Value(10)},
	},
	{
		Name:   "F32Arithmetic10",
		Export: exports.NameLoopedF32,
		Args:   []exports.Value{exports.I64Value(10), exports.F32Value(10)},
	},
	{
		Name:   "U64Arithmetic50",
		Export: exports.NameLoopedI64,
		Args:   []exports.Value{exports.I64Value(50), exports.I64Value(1234)},
	},
}

// Select returns the cases whose name matches pattern. An empty pattern
// selects every case.
func Select(pattern string) ([]Case, error) {
	if pattern == "" {
		return Cases, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}
	var out []Case
	for _, c := range Cases {
		if re.MatchString(c.Name) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Result is the native measurement of one case.
type Result struct {
	Case    Case
	Value   exports.Value
	N       int
	NsPerOp float64
}

// Runner measures cases.
type Runner struct {
	// Measure runs a benchmark function. Nil means testing.Benchmark.
	Measure func(func(b *testing.B)) testing.BenchmarkResult

	// Logger receives one debug entry per case. Nil disables logging.
	Logger *zap.Logger
}

var sink exports.Value

// Run measures each case in order.
func (r *Runner) Run(cases []Case) ([]Result, error) {
	measure := r.Measure
	if measure == nil {
		measure = testing.Benchmark
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		e, ok := exports.Lookup(c.Export)
		if !ok {
			return nil, fmt.Errorf("case %s: %w: %q", c.Name, exports.ErrUnknownExport, c.Export)
		}
		value, err := e.CallValues(c.Args...)
		if err != nil {
			return nil, fmt.Errorf("case %s: %w", c.Name, err)
		}

		raw := make([]uint64, len(c.Args))
		for i, a := range c.Args {
			raw[i] = a.Bits
		}
		br := measure(func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sink, _ = e.Call(raw...)
			}
		})

		res := Result{Case: c, Value: value, N: br.N}
		if br.N > 0 {
			res.NsPerOp = float64(br.T.Nanoseconds()) / float64(br.N)
		}
		logger.Debug("benchmark finished",
			zap.String("case", c.Name),
			zap.Int("n", res.N),
			zap.Float64("ns_per_op", res.NsPerOp),
			zap.Stringer("value", value))
		results = append(results, res)
	}
	return results, nil
}

// WriteGoFormat writes results as "go test -bench" lines, e.g.
//
//	BenchmarkU64Arithmetic10Native-8   	 8912345	       134.20 ns/op
func WriteGoFormat(w io.Writer, results []Result) error {
	procs := runtime.GOMAXPROCS(0)
	for _, res := range results {
		_, err := fmt.Fprintf(w, "Benchmark%sNative-%d\t%10d\t%12.2f ns/op\n",
			res.Case.Name, procs, res.N, res.NsPerOp)
		if err != nil {
			return err
		}
	}
	return nil
}
