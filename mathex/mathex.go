/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package mathex provides small numeric helpers: approximate floating-point
// comparison, precision trimming, and range containment.
package mathex

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Epsilon is the default relative tolerance for approximate comparison.
const Epsilon = 1e-9

// ApproxEqual reports whether a and b are approximately equal under the
// default tolerance. The relation is reflexive (ApproxEqual(a, a) holds for
// every value, infinities included) and symmetric: the tolerance scales
// with max(|a|, |b|), never with one side alone.
func ApproxEqual[T constraints.Float](a, b T) bool {
	return ApproxEqualTol(a, b, Epsilon)
}

// ApproxEqualTol is ApproxEqual with an explicit relative tolerance.
// A non-positive tolerance degenerates to exact equality.
func ApproxEqualTol[T constraints.Float](a, b T, tol float64) bool {
	if a == b {
		// Also covers matching infinities.
		return true
	}
	diff := math.Abs(float64(a) - float64(b))
	scale := math.Max(math.Abs(float64(a)), math.Abs(float64(b)))
	if scale < 1 {
		scale = 1
	}
	return diff <= tol*scale
}

// Trim snaps v to the nearest multiple of precision. It is idempotent:
// Trim(Trim(v, p), p) == Trim(v, p). A non-finite v or a precision that is
// not a positive finite value returns v unchanged.
func Trim[T constraints.Float](v, precision T) T {
	p := float64(precision)
	f := float64(v)
	if p <= 0 || math.IsInf(p, 0) || math.IsNaN(p) || math.IsInf(f, 0) || math.IsNaN(f) {
		return v
	}
	return T(math.Round(f/p) * p)
}

// IsWithin reports whether v lies in the inclusive range [lo, hi].
func IsWithin[T constraints.Ordered](v, lo, hi T) bool {
	return v >= lo && v <= hi
}
