// Copyright 2025 go-highway Authors
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

package vec

import (
	"math"

	"github.com/ajroetker/hwyblas/hwy"
)

// BaseNrm2 computes the Euclidean norm sqrt(Σ x[i]²).
//
// The sum of squares is kept relative to the running largest magnitude, so
// the result does not overflow or underflow for representable inputs.
// NaN in x yields NaN.
//
// Example:
//
//	x := []float64{3, 4}
//	result := BaseNrm2(2, x, 1) // 5
func BaseNrm2[T hwy.Floats](n int, x []T, incX int) T {
	if n < 1 {
		return 0
	}
	if n == 1 {
		return abs(x[0])
	}
	scale := T(0)
	ssq := T(1)
	inf := false
	var ix int
	for range n {
		v := x[ix]
		ix += incX
		if v == 0 {
			continue
		}
		if v != v {
			return v
		}
		av := abs(v)
		if math.IsInf(float64(av), 1) {
			inf = true
			continue
		}
		if scale < av {
			ratio := scale / av
			ssq = 1 + ssq*ratio*ratio
			scale = av
		} else {
			ratio := av / scale
			ssq += ratio * ratio
		}
	}
	if inf {
		return T(math.Inf(1))
	}
	return scale * T(math.Sqrt(float64(ssq)))
}

// BaseAsum computes Σ |x[i]|.
func BaseAsum[T hwy.Floats](n int, x []T, incX int) T {
	var sum T
	var ix int
	for range n {
		sum += abs(x[ix])
		ix += incX
	}
	return sum
}

// BaseIamax returns the index (in elements, not slice positions) of the
// first element with the largest magnitude. An empty or all-zero vector
// yields 0. A NaN never compares greater, so NaNs after the first element
// are skipped and a NaN in x[0] makes the result 0.
//
// Example:
//
//	x := []float32{1, -7, 7, 2}
//	idx := BaseIamax(4, x, 1) // 1
func BaseIamax[T hwy.Floats](n int, x []T, incX int) int {
	if n < 1 {
		return 0
	}
	idx := 0
	best := abs(x[0])
	ix := incX
	for i := 1; i < n; i++ {
		if v := abs(x[ix]); v > best {
			best = v
			idx = i
		}
		ix += incX
	}
	return idx
}
