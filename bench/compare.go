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
	"cmp"
	"fmt"
	"io"
	"regexp"
	"slices"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/tools/benchmark/parse"
)

// Comparison relates one baseline benchmark to the native result of the
// same case.
type Comparison struct {
	Case    string
	Variant string // "Interpreted", "Native" or "" as found in the baseline name

	BaselineNsPerOp float64
	NativeNsPerOp   float64

	// Runs is how many baseline lines were averaged.
	Runs int
}

// Slowdown is baseline time over native time.
func (c Comparison) Slowdown() float64 {
	if c.NativeNsPerOp == 0 {
		return 0
	}
	return c.BaselineNsPerOp / c.NativeNsPerOp
}

var baselineName = regexp.MustCompile(`^Benchmark(.+?)(Interpreted|Native)?(-\d+)?$`)

// SplitName splits a benchmark name such as
// "BenchmarkU64Arithmetic10Interpreted-8" into its case name and variant.
func SplitName(name string) (caseName, variant string, ok bool) {
	m := baselineName.FindStringSubmatch(name)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// Compare reads "go test -bench" output from baseline and pairs every
// benchmark that names a measured case with its native result. Repeated
// runs of one benchmark (-count) are averaged. Benchmarks without ns/op or
// without a matching case are skipped.
func Compare(results []Result, baseline io.Reader) ([]Comparison, error) {
	set, err := parse.ParseSet(baseline)
	if err != nil {
		return nil, fmt.Errorf("failed to parse baseline: %w", err)
	}

	native := make(map[string]float64, len(results))
	for _, r := range results {
		native[r.Case.Name] = r.NsPerOp
	}

	type key struct{ name, variant string }
	sums := make(map[key]*Comparison)
	for _, benches := range set {
		for _, b := range benches {
			if b.Measured&parse.NsPerOp == 0 {
				continue
			}
			name, variant, ok := SplitName(b.Name)
			if !ok {
				continue
			}
			ns, ok := native[name]
			if !ok {
				continue
			}
			k := key{name, variant}
			c := sums[k]
			if c == nil {
				c = &Comparison{Case: name, Variant: variant, NativeNsPerOp: ns}
				sums[k] = c
			}
			c.BaselineNsPerOp += b.NsPerOp
			c.Runs++
		}
	}

	out := make([]Comparison, 0, len(sums))
	for _, c := range sums {
		c.BaselineNsPerOp /= float64(c.Runs)
		out = append(out, *c)
	}
	slices.SortFunc(out, func(a, b Comparison) int {
		return cmp.Or(cmp.Compare(a.Case, b.Case), cmp.Compare(a.Variant, b.Variant))
	})
	return out, nil
}

// WriteComparison renders comparisons as an aligned table with grouped
// digits.
func WriteComparison(w io.Writer, comps []Comparison) error {
	p := message.NewPrinter(language.English)
	if _, err := p.Fprintf(w, "%-18s %-12s %16s %16s %10s\n",
		"case", "variant", "baseline ns/op", "native ns/op", "slowdown"); err != nil {
		return err
	}
	for _, c := range comps {
		variant := c.Variant
		if variant == "" {
			variant = "-"
		}
		if _, err := p.Fprintf(w, "%-18s %-12s %16.1f %16.1f %9.1fx\n",
			c.Case, variant, c.BaselineNsPerOp, c.NativeNsPerOp, c.Slowdown()); err != nil {
			return err
		}
	}
	return nil
}
