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
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValueType is the type of an export parameter or result. The values match
// the WebAssembly binary encoding of the corresponding number types.
type ValueType int8

const (
	I64 ValueType = -0x02
	F32 ValueType = -0x03
	F64 ValueType = -0x04
)

var valueTypeNames = map[ValueType]string{
	I64: "i64",
	F32: "f32",
	F64: "f64",
}

func (t ValueType) String() string {
	if s, ok := valueTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("<unknown value type %d>", int8(t))
}

// ParseValueType parses "i64", "f32" or "f64".
func ParseValueType(s string) (ValueType, error) {
	for t, name := range valueTypeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown value type %q", ErrInvalidValue, s)
}

// Signature describes the parameter and result types of an export.
type Signature struct {
	Params []ValueType
	Result ValueType
}

// String renders the signature as "(i64, f32) -> f32".
func (s Signature) String() string {
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		params[i] = p.String()
	}
	return "(" + strings.Join(params, ", ") + ") -> " + s.Result.String()
}

// Value is a typed raw result or argument.
type Value struct {
	Type ValueType
	Bits uint64
}

// I64Value wraps an unsigned 64-bit integer.
func I64Value(v uint64) Value { return Value{Type: I64, Bits: v} }

// F32Value wraps a float32 as its IEEE bits.
func F32Value(f float32) Value { return Value{Type: F32, Bits: uint64(math.Float32bits(f))} }

// F64Value wraps a float64 as its IEEE bits.
func F64Value(f float64) Value { return Value{Type: F64, Bits: math.Float64bits(f)} }

// Uint64 returns the raw bits, which for I64 is the integer itself.
func (v Value) Uint64() uint64 { return v.Bits }

// Float32 interprets the low 32 bits as a float32.
func (v Value) Float32() float32 { return math.Float32frombits(uint32(v.Bits)) }

// Float64 interprets the bits as a float64.
func (v Value) Float64() float64 { return math.Float64frombits(v.Bits) }

// Interface returns the value as uint64, float32 or float64.
func (v Value) Interface() any {
	switch v.Type {
	case F32:
		return v.Float32()
	case F64:
		return v.Float64()
	default:
		return v.Bits
	}
}

// String formats integers in decimal and floats in the shortest form that
// parses back to the same bits (NaN payloads are not preserved).
func (v Value) String() string {
	switch v.Type {
	case I64:
		return strconv.FormatUint(v.Bits, 10)
	case F32:
		return formatFloat(float64(v.Float32()), 32)
	case F64:
		return formatFloat(v.Float64(), 64)
	}
	return fmt.Sprintf("%s:%#x", v.Type, v.Bits)
}

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'g', -1, bitSize)
}

// bitsPrefix marks a float literal given as raw IEEE bits, e.g. "bits:0x40400000".
const bitsPrefix = "bits:"

// ParseValue parses s as a value of type t.
//
// Integers accept any base prefix understood by strconv ("0x", "0b", "0o")
// and negative numbers, which wrap to their two's complement. Floats accept
// decimal and hex float literals, "nan", "inf", "-inf", and raw bits written
// as "bits:0x...".
func ParseValue(t ValueType, s string) (Value, error) {
	s = strings.TrimSpace(s)
	switch t {
	case I64:
		if strings.HasPrefix(s, "-") {
			n, err := strconv.ParseInt(s, 0, 64)
			if err != nil {
				return Value{}, fmt.Errorf("%w: %s %q: %v", ErrInvalidValue, t, s, err)
			}
			return I64Value(uint64(n)), nil
		}
		n, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s %q: %v", ErrInvalidValue, t, s, err)
		}
		return I64Value(n), nil

	case F32, F64:
		bitSize := 64
		if t == F32 {
			bitSize = 32
		}
		if raw, ok := strings.CutPrefix(s, bitsPrefix); ok {
			bits, err := strconv.ParseUint(raw, 0, bitSize)
			if err != nil {
				return Value{}, fmt.Errorf("%w: %s %q: %v", ErrInvalidValue, t, s, err)
			}
			return Value{Type: t, Bits: bits}, nil
		}
		f, err := strconv.ParseFloat(s, bitSize)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s %q: %v", ErrInvalidValue, t, s, err)
		}
		if t == F32 {
			return F32Value(float32(f)), nil
		}
		return F64Value(f), nil
	}
	return Value{}, fmt.Errorf("%w: unsupported value type %s", ErrInvalidValue, t)
}
