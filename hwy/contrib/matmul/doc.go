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

// Package matmul provides general matrix multiplication (GEMM) for dense
// column-major float32 and float64 matrices:
//
//	C = alpha * op(A) * op(B) + beta * C
//
// where op(X) is X or Xᵀ, op(A) is m×k, op(B) is k×n and C is m×n.
//
// Example usage:
//
//	// Column-major: element (i, j) of A lives at a[i+j*lda].
//	a := make([]float32, m*k)
//	b := make([]float32, k*n)
//	c := make([]float32, m*n)
//
//	matmul.Sgemm(blas.NoTrans, blas.NoTrans, m, n, k, 1, a, m, b, k, 0, c, m)
//
// The implementation is the GotoBLAS blocked algorithm: op(A) and op(B) are
// copied into contiguous panels (packing), and a register-blocked
// micro-kernel computes one Mr×Nr tile of C per call from those panels.
// The reduction dimension is split in blocks of Kc and the rows of C in
// blocks of Mc, so that a packed A block stays in L2 and a packed B
// micro-panel in L1 while the micro-kernel runs.
//
// The micro-kernel and A-packing routines are dispatched at init time:
//   - AVX-512 (GOEXPERIMENT=simd builds on CPUs with AVX-512F and FMA)
//   - AVX2 (GOEXPERIMENT=simd builds on CPUs with AVX2 and FMA)
//   - Scalar fallback elsewhere
//
// All paths compute the same function; results differ only by the rounding
// of fused versus separate multiply-add.
//
// GEMM is single threaded. Concurrent calls are safe as long as their C
// regions do not overlap.
package matmul
