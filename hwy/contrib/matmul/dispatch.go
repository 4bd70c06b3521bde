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
	"unsafe"

	"github.com/ajroetker/hwyblas/hwy"
)

// Dispatch function variables.
// These are initialized to the base (pure Go) implementations and may be
// overridden by architecture-specific optimized implementations in init().
// The GEMM driver reads them on every call.
var (
	// PackAFloat32 packs a ≤MrFloat32-row micro-panel of A, scaled by alpha.
	PackAFloat32 func(rows, k int, alpha float32, a []float32, lda int, packed []float32)
	// PackATFloat32 packs a ≤MrFloat32-row micro-panel of Aᵀ, scaled by alpha.
	PackATFloat32 func(rows, k int, alpha float32, a []float32, lda int, packed []float32)
	// PackBFloat32 packs a ≤Nr-column micro-panel of B.
	PackBFloat32 func(cols, k int, b []float32, ldb int, packed []float32)
	// PackBTFloat32 packs a ≤Nr-column micro-panel of Bᵀ.
	PackBTFloat32 func(cols, k int, b []float32, ldb int, packed []float32)
	// MicroKernelFloat32 computes a full MrFloat32×Nr tile of C.
	MicroKernelFloat32 func(k int, packedA, packedB []float32, beta float32, c []float32, ldc int)
	// EdgeKernelFloat32 computes a partial tile of C.
	EdgeKernelFloat32 func(rows, cols, k int, packedA, packedB []float32, beta float32, c []float32, ldc int)

	PackAFloat64       func(rows, k int, alpha float64, a []float64, lda int, packed []float64)
	PackATFloat64      func(rows, k int, alpha float64, a []float64, lda int, packed []float64)
	PackBFloat64       func(cols, k int, b []float64, ldb int, packed []float64)
	PackBTFloat64      func(cols, k int, b []float64, ldb int, packed []float64)
	MicroKernelFloat64 func(k int, packedA, packedB []float64, beta float64, c []float64, ldc int)
	EdgeKernelFloat64  func(rows, cols, k int, packedA, packedB []float64, beta float64, c []float64, ldc int)
)

func init() {
	PackAFloat32 = func(rows, k int, alpha float32, a []float32, lda int, packed []float32) {
		BasePackA(rows, k, alpha, a, lda, packed, MrFloat32)
	}
	PackATFloat32 = func(rows, k int, alpha float32, a []float32, lda int, packed []float32) {
		BasePackAT(rows, k, alpha, a, lda, packed, MrFloat32)
	}
	PackBFloat32 = BasePackB[float32]
	PackBTFloat32 = BasePackBT[float32]
	MicroKernelFloat32 = func(k int, packedA, packedB []float32, beta float32, c []float32, ldc int) {
		BaseMicroKernel(k, packedA, packedB, beta, c, ldc, MrFloat32)
	}
	EdgeKernelFloat32 = func(rows, cols, k int, packedA, packedB []float32, beta float32, c []float32, ldc int) {
		BaseEdgeKernel(rows, cols, k, packedA, packedB, beta, c, ldc, MrFloat32)
	}

	PackAFloat64 = func(rows, k int, alpha float64, a []float64, lda int, packed []float64) {
		BasePackA(rows, k, alpha, a, lda, packed, MrFloat64)
	}
	PackATFloat64 = func(rows, k int, alpha float64, a []float64, lda int, packed []float64) {
		BasePackAT(rows, k, alpha, a, lda, packed, MrFloat64)
	}
	PackBFloat64 = BasePackB[float64]
	PackBTFloat64 = BasePackBT[float64]
	MicroKernelFloat64 = func(k int, packedA, packedB []float64, beta float64, c []float64, ldc int) {
		BaseMicroKernel(k, packedA, packedB, beta, c, ldc, MrFloat64)
	}
	EdgeKernelFloat64 = func(rows, cols, k int, packedA, packedB []float64, beta float64, c []float64, ldc int) {
		BaseEdgeKernel(rows, cols, k, packedA, packedB, beta, c, ldc, MrFloat64)
	}
}

// kernelSet is the set of leaf routines the GEMM driver uses for one
// element type, captured from the dispatch variables at call time.
type kernelSet[T hwy.Floats] struct {
	mr     int
	packA  func(rows, k int, alpha T, a []T, lda int, packed []T)
	packAT func(rows, k int, alpha T, a []T, lda int, packed []T)
	packB  func(cols, k int, b []T, ldb int, packed []T)
	packBT func(cols, k int, b []T, ldb int, packed []T)
	micro  func(k int, packedA, packedB []T, beta T, c []T, ldc int)
	edge   func(rows, cols, k int, packedA, packedB []T, beta T, c []T, ldc int)
}

// kernelsFor returns the current kernels for T. Named types built on
// float32/float64 use the portable kernels.
func kernelsFor[T hwy.Floats]() kernelSet[T] {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(kernelSet[float32]{
			mr:     MrFloat32,
			packA:  PackAFloat32,
			packAT: PackATFloat32,
			packB:  PackBFloat32,
			packBT: PackBTFloat32,
			micro:  MicroKernelFloat32,
			edge:   EdgeKernelFloat32,
		}).(kernelSet[T])
	case float64:
		return any(kernelSet[float64]{
			mr:     MrFloat64,
			packA:  PackAFloat64,
			packAT: PackATFloat64,
			packB:  PackBFloat64,
			packBT: PackBTFloat64,
			micro:  MicroKernelFloat64,
			edge:   EdgeKernelFloat64,
		}).(kernelSet[T])
	}
	return baseKernels[T]()
}

// baseKernels returns the portable kernels for T.
func baseKernels[T hwy.Floats]() kernelSet[T] {
	var zero T
	mr := MrFloat64
	if unsafe.Sizeof(zero) == 4 {
		mr = MrFloat32
	}
	return kernelSet[T]{
		mr: mr,
		packA: func(rows, k int, alpha T, a []T, lda int, packed []T) {
			BasePackA(rows, k, alpha, a, lda, packed, mr)
		},
		packAT: func(rows, k int, alpha T, a []T, lda int, packed []T) {
			BasePackAT(rows, k, alpha, a, lda, packed, mr)
		},
		packB:  BasePackB[T],
		packBT: BasePackBT[T],
		micro: func(k int, packedA, packedB []T, beta T, c []T, ldc int) {
			BaseMicroKernel(k, packedA, packedB, beta, c, ldc, mr)
		},
		edge: func(rows, cols, k int, packedA, packedB []T, beta T, c []T, ldc int) {
			BaseEdgeKernel(rows, cols, k, packedA, packedB, beta, c, ldc, mr)
		},
	}
}
