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

// BaseRotg constructs the Givens plane rotation that zeroes b:
//
//	[ c  s ] [ a ]   [ r ]
//	[-s  c ] [ b ] = [ 0 ]
//
// It also returns z, the compact encoding of the rotation used by the
// reference BLAS: z = s when |a| > |b|, z = 1/c when c != 0, otherwise 1.
// The sign of r follows whichever of a and b has the larger magnitude.
//
// Example:
//
//	c, s, r, z := BaseRotg[float64](3, 4) // 0.6, 0.8, 5, 1/0.6
func BaseRotg[T hwy.Floats](a, b T) (c, s, r, z T) {
	absA, absB := abs(a), abs(b)
	roe := b
	if absA > absB {
		roe = a
	}
	scale := absA + absB
	if scale == 0 {
		return 1, 0, 0, 0
	}
	as, bs := a/scale, b/scale
	r = scale * T(math.Sqrt(float64(as*as+bs*bs)))
	if roe < 0 {
		r = -r
	}
	c = a / r
	s = b / r
	z = 1
	if absA > absB {
		z = s
	} else if c != 0 {
		z = 1 / c
	}
	return c, s, r, z
}

// BaseRot applies the plane rotation (c, s) to the pairs (x[i], y[i]):
//
//	x[i] =  c*x[i] + s*y[i]
//	y[i] = -s*x[i] + c*y[i]
func BaseRot[T hwy.Floats](n int, x []T, incX int, y []T, incY int, c, s T) {
	if incX == 1 && incY == 1 {
		x, y = x[:n], y[:n]
		for i, xi := range x {
			yi := y[i]
			x[i] = c*xi + s*yi
			y[i] = c*yi - s*xi
		}
		return
	}
	var ix, iy int
	for range n {
		xi, yi := x[ix], y[iy]
		x[ix] = c*xi + s*yi
		y[iy] = c*yi - s*xi
		ix += incX
		iy += incY
	}
}

func abs[T hwy.Floats](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
