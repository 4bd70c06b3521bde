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

// Symv computes y = alpha*A*x + beta*y for a symmetric n×n matrix A of
// which only the triangle selected by ul is read: blas.Lower reads the
// diagonal and below, any other value the diagonal and above.
//
// Each column j of the stored triangle is used twice: as an Axpy into y and
// as a Dot with x that supplies the mirrored half.
func Symv[T hwy.Floats](ul blas.Uplo, n int, alpha T, a []T, lda int, x []T, incX int, beta T, y []T, incY int) {
	if n == 0 {
		return
	}
	scaleVector(n, beta, y, incY)
	if alpha == 0 {
		return
	}

	if ul == blas.Lower {
		for j := range n {
			xj := alpha * x[j*incX]
			diag := a[j+j*lda]
			var tail T
			if rest := n - j - 1; rest > 0 {
				col := a[j+1+j*lda : j*lda+n]
				vec.Axpy(rest, xj, col, 1, y[(j+1)*incY:], incY)
				tail = vec.Dot(rest, col, 1, x[(j+1)*incX:], incX)
			}
			y[j*incY] += xj*diag + alpha*tail
		}
		return
	}

	for j := range n {
		xj := alpha * x[j*incX]
		col := a[j*lda : j*lda+j]
		vec.Axpy(j, xj, col, 1, y, incY)
		head := vec.Dot(j, col, 1, x, incX)
		y[j*incY] += xj*a[j+j*lda] + alpha*head
	}
}

// Ssymv is Symv for float32.
func Ssymv(ul blas.Uplo, n int, alpha float32, a []float32, lda int, x []float32, incX int, beta float32, y []float32, incY int) {
	Symv(ul, n, alpha, a, lda, x, incX, beta, y, incY)
}

// Dsymv is Symv for float64.
func Dsymv(ul blas.Uplo, n int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int) {
	Symv(ul, n, alpha, a, lda, x, incX, beta, y, incY)
}
