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

// Package contrib holds the BLAS kernels built on the hwy dispatcher.
//
// # Subpackages
//
//   - dense: borrowed column-major matrix and strided vector views
//   - vec: Level 1 kernels (dot, axpy, scal, nrm2, rot, ...)
//   - matvec: the fused rank-k updates Combine4 and Combine1, Gemv and Symv
//   - matmul: blocked, packed GEMM and the batch runner
//   - gonumblas: the kernels behind gonum's blas.Float32 and blas.Float64
//   - workerpool: persistent goroutines for caller-partitioned work
//
// Every accelerated routine is a package-level function variable set to a
// portable Base implementation in init and replaced by an archsimd version
// when the CPU supports it:
//
//	import "github.com/ajroetker/hwyblas/hwy/contrib/matmul"
//
//	// C (m×n) = A (m×k) * B (k×n), all column-major
//	matmul.Sgemm(blas.NoTrans, blas.NoTrans, m, n, k, 1, a, m, b, k, 0, c, m)
package contrib
