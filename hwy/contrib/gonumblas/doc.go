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

// Package gonumblas exposes the hwyblas kernels through gonum's
// blas.Float32 and blas.Float64 interfaces.
//
// gonum's BLAS API is row-major, while the kernels in matmul, matvec and
// vec are column-major. A row-major m×n matrix with stride ld has the same
// memory layout as a column-major n×m matrix with leading dimension ld, so
// every call is forwarded with the operands and dimensions swapped instead
// of copying data.
//
// Routines that hwyblas does not implement (banded, packed and triangular
// forms, Level 3 beyond Gemm, the complex types) come from the embedded
// gonum implementation. The overridden routines also hand off to it when
// an argument is invalid, so panics carry gonum's messages, and when an
// increment is negative.
//
// Install it as the package-wide implementation with:
//
//	blas64.Use(gonumblas.Implementation{})
//	blas32.Use(gonumblas.Implementation{})
package gonumblas
