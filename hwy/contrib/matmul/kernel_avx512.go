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

//go:build amd64 && goexperiment.simd

package matmul

import "simd/archsimd"

// microKernelAVX512F32 is the 16×4 float32 tile with one 16-lane
// accumulator per column of C.
func microKernelAVX512F32(k int, packedA, packedB []float32, beta float32, c []float32, ldc int) {
	const mr = MrFloat32
	packedA = packedA[:k*mr]
	packedB = packedB[:k*Nr]
	c0 := c[0*ldc : 0*ldc+mr]
	c1 := c[1*ldc : 1*ldc+mr]
	c2 := c[2*ldc : 2*ldc+mr]
	c3 := c[3*ldc : 3*ldc+mr]

	var acc0, acc1, acc2, acc3 archsimd.Float32x16
	if beta == 0 {
		zero := archsimd.BroadcastFloat32x16(0)
		acc0, acc1, acc2, acc3 = zero, zero, zero, zero
	} else {
		vBeta := archsimd.BroadcastFloat32x16(beta)
		acc0 = archsimd.LoadFloat32x16Slice(c0).Mul(vBeta)
		acc1 = archsimd.LoadFloat32x16Slice(c1).Mul(vBeta)
		acc2 = archsimd.LoadFloat32x16Slice(c2).Mul(vBeta)
		acc3 = archsimd.LoadFloat32x16Slice(c3).Mul(vBeta)
	}

	aIdx, bIdx := 0, 0
	for range k {
		vA := archsimd.LoadFloat32x16Slice(packedA[aIdx:])
		aIdx += mr
		acc0 = vA.MulAdd(archsimd.BroadcastFloat32x16(packedB[bIdx]), acc0)
		acc1 = vA.MulAdd(archsimd.BroadcastFloat32x16(packedB[bIdx+1]), acc1)
		acc2 = vA.MulAdd(archsimd.BroadcastFloat32x16(packedB[bIdx+2]), acc2)
		acc3 = vA.MulAdd(archsimd.BroadcastFloat32x16(packedB[bIdx+3]), acc3)
		bIdx += Nr
	}

	acc0.StoreSlice(c0)
	acc1.StoreSlice(c1)
	acc2.StoreSlice(c2)
	acc3.StoreSlice(c3)
}

// microKernelAVX512F64 is the 8×4 float64 tile with one 8-lane accumulator
// per column of C.
func microKernelAVX512F64(k int, packedA, packedB []float64, beta float64, c []float64, ldc int) {
	const mr = MrFloat64
	packedA = packedA[:k*mr]
	packedB = packedB[:k*Nr]
	c0 := c[0*ldc : 0*ldc+mr]
	c1 := c[1*ldc : 1*ldc+mr]
	c2 := c[2*ldc : 2*ldc+mr]
	c3 := c[3*ldc : 3*ldc+mr]

	var acc0, acc1, acc2, acc3 archsimd.Float64x8
	if beta == 0 {
		zero := archsimd.BroadcastFloat64x8(0)
		acc0, acc1, acc2, acc3 = zero, zero, zero, zero
	} else {
		vBeta := archsimd.BroadcastFloat64x8(beta)
		acc0 = archsimd.LoadFloat64x8Slice(c0).Mul(vBeta)
		acc1 = archsimd.LoadFloat64x8Slice(c1).Mul(vBeta)
		acc2 = archsimd.LoadFloat64x8Slice(c2).Mul(vBeta)
		acc3 = archsimd.LoadFloat64x8Slice(c3).Mul(vBeta)
	}

	aIdx, bIdx := 0, 0
	for range k {
		vA := archsimd.LoadFloat64x8Slice(packedA[aIdx:])
		aIdx += mr
		acc0 = vA.MulAdd(archsimd.BroadcastFloat64x8(packedB[bIdx]), acc0)
		acc1 = vA.MulAdd(archsimd.BroadcastFloat64x8(packedB[bIdx+1]), acc1)
		acc2 = vA.MulAdd(archsimd.BroadcastFloat64x8(packedB[bIdx+2]), acc2)
		acc3 = vA.MulAdd(archsimd.BroadcastFloat64x8(packedB[bIdx+3]), acc3)
		bIdx += Nr
	}

	acc0.StoreSlice(c0)
	acc1.StoreSlice(c1)
	acc2.StoreSlice(c2)
	acc3.StoreSlice(c3)
}

func packAAVX512F32(rows, k int, alpha float32, a []float32, lda int, packed []float32) {
	const mr = MrFloat32
	if rows != mr {
		BasePackA(rows, k, alpha, a, lda, packed, mr)
		return
	}
	vAlpha := archsimd.BroadcastFloat32x16(alpha)
	idx := 0
	for p := range k {
		archsimd.LoadFloat32x16Slice(a[p*lda : p*lda+mr]).Mul(vAlpha).StoreSlice(packed[idx:])
		idx += mr
	}
}

func packAAVX512F64(rows, k int, alpha float64, a []float64, lda int, packed []float64) {
	const mr = MrFloat64
	if rows != mr {
		BasePackA(rows, k, alpha, a, lda, packed, mr)
		return
	}
	vAlpha := archsimd.BroadcastFloat64x8(alpha)
	idx := 0
	for p := range k {
		archsimd.LoadFloat64x8Slice(a[p*lda : p*lda+mr]).Mul(vAlpha).StoreSlice(packed[idx:])
		idx += mr
	}
}
