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

// Package matvec provides the Level-2 BLAS operations on column-major
// matrices and the fused rank-k combine primitives they are built on.
//
// # Combine primitives
//
//   - Combine4: y = beta*y + alpha*(a0*x0 + a1*x1 + a2*x2 + a3*x3)
//   - Combine1: y = beta*y + a*(alpha*x)
//
// where a0..a3 are four consecutive columns of a matrix and y is a
// contiguous vector. One Combine4 call streams y once for four columns,
// which is what makes a column-oriented matrix-vector product bandwidth
// efficient.
//
// # Operations
//
//   - Gemv: y = alpha*op(A)*x + beta*y
//   - Symv: y = alpha*A*x + beta*y with A symmetric, one triangle stored
//
// # Example Usage
//
//	import "github.com/ajroetker/hwyblas/hwy/contrib/matvec"
//
//	// 2x3 matrix, column-major:
//	//   [1 2 3]
//	//   [4 5 6]
//	a := []float32{1, 4, 2, 5, 3, 6}
//	x := []float32{1, 0, 1}
//	y := make([]float32, 2)
//	matvec.Sgemv(blas.NoTrans, 2, 3, 1, a, 2, x, 1, 0, y, 1)
//	// y = [4, 10]
//
// # Build Requirements
//
// The SIMD implementations require:
//   - GOEXPERIMENT=simd build flag
//   - AMD64 architecture with AVX2 and FMA support
package matvec
