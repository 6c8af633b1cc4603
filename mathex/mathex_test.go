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

package mathex_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/mqx/mathex"
)

func TestApproxEqual(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b float64
		want bool
	}{
		{"identical", 1.5, 1.5, true},
		{"within tolerance", 1.0, 1.0 + 1e-12, true},
		{"outside tolerance", 1.0, 1.0 + 1e-6, false},
		{"near zero", 0, 1e-12, true},
		{"sign differs", 1.0, -1.0, false},
		{"large magnitudes scale", 1e15, 1e15 + 1, true},
		{"pos infinity reflexive", math.Inf(1), math.Inf(1), true},
		{"neg infinity reflexive", math.Inf(-1), math.Inf(-1), true},
		{"opposite infinities", math.Inf(1), math.Inf(-1), false},
		{"nan never equal", math.NaN(), math.NaN(), false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, mathex.ApproxEqual(tc.a, tc.b))
			// Symmetric by construction.
			assert.Equal(t, tc.want, mathex.ApproxEqual(tc.b, tc.a))
		})
	}
}

func TestApproxEqualTol(t *testing.T) {
	t.Parallel()

	assert.True(t, mathex.ApproxEqualTol(100.0, 100.4, 0.01))
	assert.False(t, mathex.ApproxEqualTol(100.0, 102.0, 0.01))

	// Non-positive tolerance degenerates to exact equality.
	assert.True(t, mathex.ApproxEqualTol(2.0, 2.0, 0))
	assert.False(t, mathex.ApproxEqualTol(2.0, math.Nextafter(2.0, 3.0), 0))

	// float32 instantiation.
	assert.True(t, mathex.ApproxEqualTol(float32(1.0), float32(1.0000001), 1e-5))
}

func TestTrim(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		v, p float64
		want float64
	}{
		{"snap down", 1.24, 0.1, 1.2},
		{"snap up", 1.26, 0.1, 1.3},
		{"halfway rounds away from zero", 1.25, 0.1, 1.3},
		{"negative value", -1.26, 0.1, -1.3},
		{"already multiple", 3.5, 0.5, 3.5},
		{"zero value", 0, 0.1, 0},
		{"zero precision passthrough", 1.234, 0, 1.234},
		{"negative precision passthrough", 1.234, -0.5, 1.234},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := mathex.Trim(tc.v, tc.p)
			assert.InDelta(t, tc.want, got, 1e-12)
			// Idempotent.
			assert.Equal(t, got, mathex.Trim(got, tc.p))
		})
	}
}

func TestTrim_NonFinite(t *testing.T) {
	t.Parallel()

	assert.True(t, math.IsInf(mathex.Trim(math.Inf(1), 0.1), 1))
	assert.True(t, math.IsNaN(mathex.Trim(math.NaN(), 0.1)))
	assert.Equal(t, 1.5, mathex.Trim(1.5, math.NaN()))
	assert.Equal(t, 1.5, mathex.Trim(1.5, math.Inf(1)))
}

func TestIsWithin(t *testing.T) {
	t.Parallel()

	assert.True(t, mathex.IsWithin(5, 1, 10))
	// Bounds are inclusive.
	assert.True(t, mathex.IsWithin(1, 1, 10))
	assert.True(t, mathex.IsWithin(10, 1, 10))
	assert.False(t, mathex.IsWithin(0, 1, 10))
	assert.False(t, mathex.IsWithin(11, 1, 10))

	assert.True(t, mathex.IsWithin(2.5, 0.0, 3.0))
	assert.True(t, mathex.IsWithin("m", "a", "z"))

	// An inverted range contains nothing.
	assert.False(t, mathex.IsWithin(5, 10, 1))
}
