package harness

import (
	"math"

	"github.com/ajroetker/go-numkernel/exports"
)

// Match reports whether got satisfies want under the given relative tolerance.
//
// Values of different types never match. Integers compare exactly. For
// floats a zero tolerance requires identical bits (so +0 and -0 differ);
// a positive tolerance bounds |got-want| / |want|, with |want| floored at
// the smallest normal so that a zero expectation does not divide by zero.
// NaN matches any NaN, and infinities match only themselves.
func Match(got, want exports.Value, tolerance float64) bool {
	if got.Type != want.Type {
		return false
	}

	var g, w float64
	switch got.Type {
	case exports.F32:
		g, w = float64(got.Float32()), float64(want.Float32())
	case exports.F64:
		g, w = got.Float64(), want.Float64()
	default:
		return got.Bits == want.Bits
	}

	gNaN, wNaN := math.IsNaN(g), math.IsNaN(w)
	if gNaN || wNaN {
		return gNaN && wNaN
	}
	if tolerance == 0 {
		return got.Bits == want.Bits
	}
	if math.IsInf(g, 0) || math.IsInf(w, 0) {
		return g == w
	}
	return RelativeError(g, w) <= tolerance
}

// RelativeError returns |got-want| / max(|want|, smallest normal float64).
func RelativeError(got, want float64) float64 {
	const tiny = 0x1p-1022
	return math.Abs(got-want) / math.Max(math.Abs(want), tiny)
}
