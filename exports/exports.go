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

package exports

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/ajroetker/go-numkernel/kernel"
)

var (
	// ErrUnknownExport is returned when no export has the requested name.
	ErrUnknownExport = errors.New("exports: unknown export")

	// ErrInvalidArgumentCount is returned when the number of arguments does
	// not match the export's signature.
	ErrInvalidArgumentCount = errors.New("exports: invalid number of arguments")

	// ErrInvalidValue is returned for unparsable argument or result text.
	ErrInvalidValue = errors.New("exports: invalid value")
)

// Export names, as exported by the compiled fixture module.
const (
	NameCombinedSquareModulo = "x2_plus_y2_minus_13"
	NameLoopedI64            = "loopedArithmeticI64Benchmark"
	NameLoopedF32            = "loopedArithmeticF32Benchmark"
	NameLoopedF64            = "loopedArithmeticF64Benchmark"
)

// Export is a kernel reachable by name.
type Export struct {
	Name string
	Doc  string
	Sig  Signature

	call func(args []uint64) uint64
}

// Call invokes the export with raw arguments.
func (e Export) Call(args ...uint64) (Value, error) {
	if len(args) != len(e.Sig.Params) {
		return Value{}, fmt.Errorf("%w: %s takes %d, got %d",
			ErrInvalidArgumentCount, e.Name, len(e.Sig.Params), len(args))
	}
	return Value{Type: e.Sig.Result, Bits: e.call(args)}, nil
}

// CallValues invokes the export with typed arguments. Argument types must
// match the signature.
func (e Export) CallValues(args ...Value) (Value, error) {
	if len(args) != len(e.Sig.Params) {
		return Value{}, fmt.Errorf("%w: %s takes %d, got %d",
			ErrInvalidArgumentCount, e.Name, len(e.Sig.Params), len(args))
	}
	raw := make([]uint64, len(args))
	for i, a := range args {
		if a.Type != e.Sig.Params[i] {
			return Value{}, fmt.Errorf("%w: %s argument %d is %s, want %s",
				ErrInvalidValue, e.Name, i, a.Type, e.Sig.Params[i])
		}
		raw[i] = a.Bits
	}
	return e.Call(raw...)
}

// ParseArgs parses text arguments according to the export's parameter types.
func (e Export) ParseArgs(args []string) ([]Value, error) {
	if len(args) != len(e.Sig.Params) {
		return nil, fmt.Errorf("%w: %s takes %d, got %d",
			ErrInvalidArgumentCount, e.Name, len(e.Sig.Params), len(args))
	}
	values := make([]Value, len(args))
	for i, s := range args {
		v, err := ParseValue(e.Sig.Params[i], s)
		if err != nil {
			return nil, fmt.Errorf("%s argument %d: %w", e.Name, i, err)
		}
		values[i] = v
	}
	return values, nil
}

var table = []Export{
	{
		Name: NameCombinedSquareModulo,
		Doc:  "((x*x + y*y - 13) & 0xff) + 1 with u64 wraparound",
		Sig:  Signature{Params: []ValueType{I64, I64}, Result: I64},
		call: func(args []uint64) uint64 {
			return kernel.CombinedSquareModulo(args[0], args[1])
		},
	},
	{
		Name: NameLoopedI64,
		Doc:  "n rounds of wrapping u64 arithmetic seeded by input",
		Sig:  Signature{Params: []ValueType{I64, I64}, Result: I64},
		call: func(args []uint64) uint64 {
			return kernel.LoopedIntegerBenchmark(args[0], args[1])
		},
	},
	{
		Name: NameLoopedF32,
		Doc:  "n rounds of f32 arithmetic seeded by input",
		Sig:  Signature{Params: []ValueType{I64, F32}, Result: F32},
		call: func(args []uint64) uint64 {
			out := kernel.LoopedFloat32Benchmark(args[0], math.Float32frombits(uint32(args[1])))
			return uint64(math.Float32bits(out))
		},
	},
	{
		Name: NameLoopedF64,
		Doc:  "n rounds of f64 arithmetic seeded by input",
		Sig:  Signature{Params: []ValueType{I64, F64}, Result: F64},
		call: func(args []uint64) uint64 {
			out := kernel.LoopedFloat64Benchmark(args[0], math.Float64frombits(args[1]))
			return math.Float64bits(out)
		},
	},
}

var index = func() map[string]int {
	m := make(map[string]int, len(table))
	for i, e := range table {
		m[e.Name] = i
	}
	return m
}()

// Lookup returns the export with the given name.
func Lookup(name string) (Export, bool) {
	i, ok := index[name]
	if !ok {
		return Export{}, false
	}
	return table[i], true
}

// Names returns every export name in sorted order.
func Names() []string {
	names := make([]string, 0, len(table))
	for _, e := range table {
		names = append(names, e.Name)
	}
	slices.Sort(names)
	return names
}

// All returns every export sorted by name.
func All() []Export {
	all := slices.Clone(table)
	slices.SortFunc(all, func(a, b Export) int { return cmp.Compare(a.Name, b.Name) })
	return all
}

// Invoke calls the named export with raw arguments.
func Invoke(name string, args ...uint64) (Value, error) {
	e, ok := Lookup(name)
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrUnknownExport, name)
	}
	return e.Call(args...)
}
