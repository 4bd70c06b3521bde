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

package matmul

import (
	"fmt"

	"gonum.org/v1/gonum/blas"

	"github.com/ajroetker/hwyblas/hwy"
	"github.com/ajroetker/hwyblas/hwy/contrib/dense"
)

// Gemm computes C = alpha*op(A)*op(B) + beta*C on column-major matrices,
// where op(A) is m×k, op(B) is k×n and C is m×n.
//
// tA and tB select op: blas.NoTrans uses the matrix as stored, blas.Trans
// and blas.ConjTrans use its transpose. Any other value is treated as
// blas.NoTrans. Leading dimensions must be at least the stored row count and
// the slices long enough for the matrices they describe; neither is checked.
//
// Edge cases:
//   - m == 0 or n == 0: C is not touched.
//   - k == 0 or alpha == 0: C = beta*C (beta == 1 leaves C untouched,
//     beta == 0 zero-fills it without reading it).
//
// The loop structure is (GEBP - GEneral Block Panel multiplication):
//
//	for pc := 0; pc < k; pc += Kc:           // K blocks; beta applied on the first only
//	  for ic := 0; ic < m; ic += Mc:         // row blocks
//	    for jc := 0; jc < n; jc += Nr:       // B micro-panels
//	      if ic == 0: PackB(pc, jc)          // packed once per K block
//	      for ir := 0; ir < Mc; ir += Mr:    // A micro-panels
//	        if jc == 0: PackA(ic+ir, pc)     // packed once per (K block, row block)
//	        MicroKernel or EdgeKernel
//
// Both packing buffers are allocated once per call. For fixed inputs the
// operation order is fixed, so repeated calls return bit-identical results.
func Gemm[T hwy.Floats](tA, tB blas.Transpose, m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int) {
	ks := kernelsFor[T]()
	gemm(&ks, isTrans(tA), isTrans(tB), m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
}

// Sgemm is Gemm for float32.
func Sgemm(tA, tB blas.Transpose, m, n, k int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) {
	Gemm(tA, tB, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
}

// Dgemm is Gemm for float64.
func Dgemm(tA, tB blas.Transpose, m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	Gemm(tA, tB, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
}

// GemmGeneral is Gemm on matrix views. The dimensions are taken from the
// views; it panics if they do not agree.
func GemmGeneral[T hwy.Floats](tA, tB blas.Transpose, alpha T, a, b dense.General[T], beta T, c dense.General[T]) {
	k, err := viewDims(tA, tB, a, b, c)
	if err != nil {
		panic("matmul: " + err.Error())
	}
	Gemm(tA, tB, c.Rows, c.Cols, k, alpha, a.Data, a.Stride, b.Data, b.Stride, beta, c.Data, c.Stride)
}

// viewDims returns the reduction length of op(A)*op(B) and checks that the
// product fits C.
func viewDims[T hwy.Floats](tA, tB blas.Transpose, a, b, c dense.General[T]) (int, error) {
	m, n := c.Rows, c.Cols
	am, k := a.Rows, a.Cols
	if isTrans(tA) {
		am, k = k, am
	}
	bk, bn := b.Rows, b.Cols
	if isTrans(tB) {
		bk, bn = bn, bk
	}
	if am != m || bn != n || bk != k {
		return 0, fmt.Errorf("dimension mismatch: op(A) %dx%d, op(B) %dx%d, C %dx%d", am, k, bk, bn, m, n)
	}
	return k, nil
}

func isTrans(t blas.Transpose) bool {
	return t == blas.Trans || t == blas.ConjTrans
}

func gemm[T hwy.Floats](ks *kernelSet[T], transA, transB bool, m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int) {
	if m == 0 || n == 0 {
		return
	}
	if k == 0 || alpha == 0 {
		scaleMatrix(m, n, beta, c, ldc)
		return
	}

	mr := ks.mr
	params := CacheParams{Mr: mr, Nr: Nr, Kc: Kc, Mc: Mc}
	packedA := make([]T, params.PackedASize(k))
	packedB := make([]T, params.PackedBSize(n, k))

	// Loop over K blocks (L1 blocking)
	for pc := 0; pc < k; pc += Kc {
		pb := min(Kc, k-pc)
		betaEff := beta
		if pc > 0 {
			betaEff = 1
		}

		// Loop over row blocks (L2 blocking)
		for ic := 0; ic < m; ic += Mc {
			mb := min(Mc, m-ic)

			// Loop over Nr-wide micro-panels of op(B) and C
			for jc := 0; jc < n; jc += Nr {
				nb := min(Nr, n-jc)
				bPanel := packedB[jc*pb : (jc+Nr)*pb]
				if ic == 0 {
					if transB {
						ks.packBT(nb, pb, b[jc+pc*ldb:], ldb, bPanel)
					} else {
						ks.packB(nb, pb, b[pc+jc*ldb:], ldb, bPanel)
					}
				}

				// Loop over Mr-tall micro-panels of op(A) and C
				for ir := 0; ir < mb; ir += mr {
					rows := min(mr, mb-ir)
					aPanel := packedA[ir*pb : (ir+mr)*pb]
					if jc == 0 {
						row := ic + ir
						if transA {
							ks.packAT(rows, pb, alpha, a[pc+row*lda:], lda, aPanel)
						} else {
							ks.packA(rows, pb, alpha, a[row+pc*lda:], lda, aPanel)
						}
					}

					cTile := c[ic+ir+jc*ldc:]
					if rows == mr && nb == Nr {
						ks.micro(pb, aPanel, bPanel, betaEff, cTile, ldc)
					} else {
						ks.edge(rows, nb, pb, aPanel, bPanel, betaEff, cTile, ldc)
					}
				}
			}
		}
	}
}

// scaleMatrix computes C = beta*C for an m×n column-major C.
func scaleMatrix[T hwy.Floats](m, n int, beta T, c []T, ldc int) {
	if beta == 1 {
		return
	}
	for j := range n {
		col := c[j*ldc : j*ldc+m]
		if beta == 0 {
			clear(col)
			continue
		}
		for i := range col {
			col[i] *= beta
		}
	}
}
