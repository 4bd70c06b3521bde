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

// BaseSwap exchanges the elements of x and y.
func BaseSwap[T hwy.Floats](n int, x []T, incX int, y []T, incY int) {
	var ix, iy int
	for range n {
		x[ix], y[iy] = y[iy], x[ix]
		ix += incX
		iy += incY
	}
}

// BaseCopy copies x into y.
func BaseCopy[T hwy.Floats](n int, x []T, incX int, y []T, incY int) {
	if n <= 0 {
		return
	}
	if incX == 1 && incY == 1 {
		copy(y[:n], x[:n])
		return
	}
	var ix, iy int
	for range n {
		y[iy] = x[ix]
		ix += incX
		iy += incY
	}
}

// BaseScal scales x in place by alpha. When alpha is 0, x is zero-filled
// without being read.
//
// Example:
//
//	x := []float32{1, 2, 3}
//	BaseScal(3, 2, x, 1) // x = [2, 4, 6]
func BaseScal[T hwy.Floats](n int, alpha T, x []T, incX int) {
	if alpha == 0 {
		var ix int
		for range n {
			x[ix] = 0
			ix += incX
		}
		return
	}
	if incX == 1 {
		x = x[:n]
		for i := range x {
			x[i] *= alpha
		}
		return
	}
	var ix int
	for range n {
		x[ix] *= alpha
		ix += incX
	}
}

// BaseAxpy computes y += alpha*x.
//
// Example:
//
//	x := []float32{1, 2, 3}
//	y := []float32{1, 1, 1}
//	BaseAxpy(3, 2, x, 1, y, 1) // y = [3, 5, 7]
func BaseAxpy[T hwy.Floats](n int, alpha T, x []T, incX int, y []T, incY int) {
	if alpha == 0 {
		return
	}
	if incX == 1 && incY == 1 {
		x, y = x[:n], y[:n]
		for i, v := range x {
			y[i] += alpha * v
		}
		return
	}
	var ix, iy int
	for range n {
		y[iy] += alpha * x[ix]
		ix += incX
		iy += incY
	}
}
