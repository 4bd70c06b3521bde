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

	"github.com/ajroetker/hwyblas/hwy/contrib/matmul"
)

// gemmOK reports whether a row-major Gemm call is valid and has work for
// the packed kernels. Calls with k == 0 only scale C and are left to the
// fallback.
func gemmOK(tA, tB blas.Transpose, m, n, k, lda, lenA, ldb, lenB, ldc, lenC int) bool {
	if !transOK(tA) || !transOK(tB) || m <= 0 || n <= 0 || k <= 0 {
		return false
	}
	rowA, colA := m, k
	if tA != blas.NoTrans {
		rowA, colA = k, m
	}
	rowB, colB := k, n
	if tB != blas.NoTrans {
		rowB, colB = n, k
	}
	return matOK(rowA, colA, lda, lenA) && matOK(rowB, colB, ldb, lenB) && matOK(m, n, ldc, lenC)
}

// Sgemm computes
//
//	C = alpha * op(A) * op(B) + beta * C
//
// for row-major matrices, where op(A) is m×k, op(B) is k×n and C is m×n.
// Cᵀ = op(B)ᵀ * op(A)ᵀ is evaluated by the column-major kernels on the same
// memory, so the operands are exchanged and the transposes kept.
func (impl Implementation) Sgemm(tA, tB blas.Transpose, m, n, k int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) {
	if !gemmOK(tA, tB, m, n, k, lda, len(a), ldb, len(b), ldc, len(c)) {
		impl.Implementation.Sgemm(tA, tB, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
		return
	}
	matmul.Sgemm(tB, tA, n, m, k, alpha, b, ldb, a, lda, beta, c, ldc)
}

// Dgemm computes
//
//	C = alpha * op(A) * op(B) + beta * C
//
// for row-major matrices, where op(A) is m×k, op(B) is k×n and C is m×n.
// Cᵀ = op(B)ᵀ * op(A)ᵀ is evaluated by the column-major kernels on the same
// memory, so the operands are exchanged and the transposes kept.
func (impl Implementation) Dgemm(tA, tB blas.Transpose, m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	if !gemmOK(tA, tB, m, n, k, lda, len(a), ldb, len(b), ldc, len(c)) {
		impl.Implementation.Dgemm(tA, tB, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
		return
	}
	matmul.Dgemm(tB, tA, n, m, k, alpha, b, ldb, a, lda, beta, c, ldc)
}
