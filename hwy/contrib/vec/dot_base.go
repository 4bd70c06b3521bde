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

import "github.com/ajroetker/hwyblas/hwy"

// BaseDot computes the dot product Σ x[i]*y[i] over n strided elements.
// Returns 0 when n is 0.
//
// Example:
//
//	x := []float32{1, 2, 3}
//	y := []float32{4, 5, 6}
//	result := BaseDot(3, x, 1, y, 1) // 1*4 + 2*5 + 3*6 = 32
func BaseDot[T hwy.Floats](n int, x []T, incX int, y []T, incY int) T {
	var sum T
	if incX == 1 && incY == 1 {
		x, y = x[:n], y[:n]
		for i, v := range x {
			sum += v * y[i]
		}
		return sum
	}
	var ix, iy int
	for range n {
		sum += x[ix] * y[iy]
		ix += incX
		iy += incY
	}
	return sum
}

// BaseSdsdot computes b + Σ x[i]*y[i], accumulating in float64 and rounding
// the result back to float32.
func BaseSdsdot(n int, b float32, x []float32, incX int, y []float32, incY int) float32 {
	sum := float64(b)
	var ix, iy int
	for range n {
		sum += float64(x[ix]) * float64(y[iy])
		ix += incX
		iy += incY
	}
	return float32(sum)
}

// BaseDsdot computes Σ x[i]*y[i] of float32 vectors with float64
// accumulation and result.
func BaseDsdot(n int, x []float32, incX int, y []float32, incY int) float64 {
	var sum float64
	var ix, iy int
	for range n {
		sum += float64(x[ix]) * float64(y[iy])
		ix += incX
		iy += incY
	}
	return sum
}
