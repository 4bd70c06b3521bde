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

package matvec

import (
	"gonum.org/v1/gonum/blas"

	"github.com/ajroetker/hwyblas/hwy"
	"github.com/ajroetker/hwyblas/hwy/contrib/vec"
)

// Gemv computes y = alpha*op(A)*x + beta*y for a column-major m×n matrix A.
//
// With tA == blas.NoTrans, x has n elements and y has m; the columns of A
// are folded into y four at a time with Combine4, and the remaining columns
// with Combine1. With blas.Trans or blas.ConjTrans, x has m elements, y has
// n, and each y[j] is updated with the dot product of column j and x.
//
// Increments must be positive. When beta is 0, y is not read.
func Gemv[T hwy.Floats](tA blas.Transpose, m, n int, alpha T, a []T, lda int, x []T, incX int, beta T, y []T, incY int) {
	if m == 0 || n == 0 {
		return
	}
	if tA == blas.Trans || tA == blas.ConjTrans {
		gemvTrans(m, n, alpha, a, lda, x, incX, beta, y, incY)
		return
	}

	if alpha == 0 {
		scaleVector(m, beta, y, incY)
		return
	}

	// Combine4/Combine1 want a contiguous y.
	yc := y
	if incY != 1 {
		yc = make([]T, m)
		if beta != 0 {
			vec.Copy(m, y, incY, yc, 1)
		}
	}

	betaEff := beta
	j := 0
	for ; j+4 <= n; j += 4 {
		Combine4(m, alpha, a[j*lda:], lda, x[j*incX:], incX, betaEff, yc)
		betaEff = 1
	}
	for ; j < n; j++ {
		Combine1(m, alpha, a[j*lda:j*lda+m], x[j*incX], betaEff, yc)
		betaEff = 1
	}

	if incY != 1 {
		vec.Copy(m, yc, 1, y, incY)
	}
}

func gemvTrans[T hwy.Floats](m, n int, alpha T, a []T, lda int, x []T, incX int, beta T, y []T, incY int) {
	var iy int
	for j := range n {
		var dot T
		if alpha != 0 {
			dot = alpha * vec.Dot(m, a[j*lda:j*lda+m], 1, x, incX)
		}
		if beta == 0 {
			y[iy] = dot
		} else {
			y[iy] = beta*y[iy] + dot
		}
		iy += incY
	}
}

// Sgemv is Gemv for float32.
func Sgemv(tA blas.Transpose, m, n int, alpha float32, a []float32, lda int, x []float32, incX int, beta float32, y []float32, incY int) {
	Gemv(tA, m, n, alpha, a, lda, x, incX, beta, y, incY)
}

// Dgemv is Gemv for float64.
func Dgemv(tA blas.Transpose, m, n int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int) {
	Gemv(tA, m, n, alpha, a, lda, x, incX, beta, y, incY)
}

// scaleVector computes y = beta*y; beta == 0 zero-fills without reading.
func scaleVector[T hwy.Floats](n int, beta T, y []T, incY int) {
	switch beta {
	case 1:
		return
	case 0:
		var iy int
		for range n {
			y[iy] = 0
			iy += incY
		}
	default:
		vec.Scal(n, beta, y, incY)
	}
}
