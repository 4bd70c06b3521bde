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

package gonumblas

import (
	"gonum.org/v1/gonum/blas"

	"github.com/ajroetker/hwyblas/hwy/contrib/matvec"
)

// gemvOK reports whether a row-major Gemv call is valid and non-trivial.
func gemvOK(tA blas.Transpose, m, n, lda, lenA, incX, lenX, incY, lenY int) bool {
	if !transOK(tA) || m <= 0 || n <= 0 || !matOK(m, n, lda, lenA) {
		return false
	}
	nx, ny := m, n
	if tA == blas.NoTrans {
		nx, ny = n, m
	}
	return vecOK(nx, incX, lenX) && vecOK(ny, incY, lenY)
}

func symvOK(ul blas.Uplo, n, lda, lenA, incX, lenX, incY, lenY int) bool {
	if ul != blas.Upper && ul != blas.Lower {
		return false
	}
	return n > 0 && matOK(n, n, lda, lenA) && vecOK(n, incX, lenX) && vecOK(n, incY, lenY)
}

// Sgemv computes
//
//	y = alpha * A * x + beta * y    if tA == blas.NoTrans
//	y = alpha * Aᵀ * x + beta * y   if tA == blas.Trans or blas.ConjTrans
//
// where A is a row-major m×n matrix.
func (impl Implementation) Sgemv(tA blas.Transpose, m, n int, alpha float32, a []float32, lda int, x []float32, incX int, beta float32, y []float32, incY int) {
	if !gemvOK(tA, m, n, lda, len(a), incX, len(x), incY, len(y)) {
		impl.Implementation.Sgemv(tA, m, n, alpha, a, lda, x, incX, beta, y, incY)
		return
	}
	matvec.Gemv(flipTrans(tA), n, m, alpha, a, lda, x, incX, beta, y, incY)
}

// Ssymv computes y = alpha * A * x + beta * y where A is a row-major n×n
// symmetric matrix of which only the ul triangle is read.
func (impl Implementation) Ssymv(ul blas.Uplo, n int, alpha float32, a []float32, lda int, x []float32, incX int, beta float32, y []float32, incY int) {
	if !symvOK(ul, n, lda, len(a), incX, len(x), incY, len(y)) {
		impl.Implementation.Ssymv(ul, n, alpha, a, lda, x, incX, beta, y, incY)
		return
	}
	matvec.Symv(flipUplo(ul), n, alpha, a, lda, x, incX, beta, y, incY)
}

// Dgemv computes
//
//	y = alpha * A * x + beta * y    if tA == blas.NoTrans
//	y = alpha * Aᵀ * x + beta * y   if tA == blas.Trans or blas.ConjTrans
//
// where A is a row-major m×n matrix.
func (impl Implementation) Dgemv(tA blas.Transpose, m, n int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int) {
	if !gemvOK(tA, m, n, lda, len(a), incX, len(x), incY, len(y)) {
		impl.Implementation.Dgemv(tA, m, n, alpha, a, lda, x, incX, beta, y, incY)
		return
	}
	matvec.Gemv(flipTrans(tA), n, m, alpha, a, lda, x, incX, beta, y, incY)
}

// Dsymv computes y = alpha * A * x + beta * y where A is a row-major n×n
// symmetric matrix of which only the ul triangle is read.
func (impl Implementation) Dsymv(ul blas.Uplo, n int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int) {
	if !symvOK(ul, n, lda, len(a), incX, len(x), incY, len(y)) {
		impl.Implementation.Dsymv(ul, n, alpha, a, lda, x, incX, beta, y, incY)
		return
	}
	matvec.Symv(flipUplo(ul), n, alpha, a, lda, x, incX, beta, y, incY)
}
