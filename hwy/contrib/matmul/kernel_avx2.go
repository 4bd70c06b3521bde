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

// microKernelAVX2F32 is the 16×4 float32 tile: each column of C is held in
// two 8-lane accumulators, giving 8 FMAs per reduction step.
func microKernelAVX2F32(k int, packedA, packedB []float32, beta float32, c []float32, ldc int) {
	const mr = MrFloat32
	packedA = packedA[:k*mr]
	packedB = packedB[:k*Nr]
	c0 := c[0*ldc : 0*ldc+mr]
	c1 := c[1*ldc : 1*ldc+mr]
	c2 := c[2*ldc : 2*ldc+mr]
	c3 := c[3*ldc : 3*ldc+mr]

	var acc00, acc01, acc10, acc11, acc20, acc21, acc30, acc31 archsimd.Float32x8
	if beta == 0 {
		zero := archsimd.BroadcastFloat32x8(0)
		acc00, acc01, acc10, acc11 = zero, zero, zero, zero
		acc20, acc21, acc30, acc31 = zero, zero, zero, zero
	} else {
		vBeta := archsimd.BroadcastFloat32x8(beta)
		acc00 = archsimd.LoadFloat32x8Slice(c0).Mul(vBeta)
		acc01 = archsimd.LoadFloat32x8Slice(c0[8:]).Mul(vBeta)
		acc10 = archsimd.LoadFloat32x8Slice(c1).Mul(vBeta)
		acc11 = archsimd.LoadFloat32x8Slice(c1[8:]).Mul(vBeta)
		acc20 = archsimd.LoadFloat32x8Slice(c2).Mul(vBeta)
		acc21 = archsimd.LoadFloat32x8Slice(c2[8:]).Mul(vBeta)
		acc30 = archsimd.LoadFloat32x8Slice(c3).Mul(vBeta)
		acc31 = archsimd.LoadFloat32x8Slice(c3[8:]).Mul(vBeta)
	}

	aIdx, bIdx := 0, 0
	for range k {
		vA0 := archsimd.LoadFloat32x8Slice(packedA[aIdx:])
		vA1 := archsimd.LoadFloat32x8Slice(packedA[aIdx+8:])
		aIdx += mr

		vB := archsimd.BroadcastFloat32x8(packedB[bIdx])
		acc00 = vA0.MulAdd(vB, acc00)
		acc01 = vA1.MulAdd(vB, acc01)
		vB = archsimd.BroadcastFloat32x8(packedB[bIdx+1])
		acc10 = vA0.MulAdd(vB, acc10)
		acc11 = vA1.MulAdd(vB, acc11)
		vB = archsimd.BroadcastFloat32x8(packedB[bIdx+2])
		acc20 = vA0.MulAdd(vB, acc20)
		acc21 = vA1.MulAdd(vB, acc21)
		vB = archsimd.BroadcastFloat32x8(packedB[bIdx+3])
		acc30 = vA0.MulAdd(vB, acc30)
		acc31 = vA1.MulAdd(vB, acc31)
		bIdx += Nr
	}

	acc00.StoreSlice(c0)
	acc01.StoreSlice(c0[8:])
	acc10.StoreSlice(c1)
	acc11.StoreSlice(c1[8:])
	acc20.StoreSlice(c2)
	acc21.StoreSlice(c2[8:])
	acc30.StoreSlice(c3)
	acc31.StoreSlice(c3[8:])
}

// microKernelAVX2F64 is the 8×4 float64 tile: two 4-lane accumulators per
// column of C.
func microKernelAVX2F64(k int, packedA, packedB []float64, beta float64, c []float64, ldc int) {
	const mr = MrFloat64
	packedA = packedA[:k*mr]
	packedB = packedB[:k*Nr]
	c0 := c[0*ldc : 0*ldc+mr]
	c1 := c[1*ldc : 1*ldc+mr]
	c2 := c[2*ldc : 2*ldc+mr]
	c3 := c[3*ldc : 3*ldc+mr]

	var acc00, acc01, acc10, acc11, acc20, acc21, acc30, acc31 archsimd.Float64x4
	if beta == 0 {
		zero := archsimd.BroadcastFloat64x4(0)
		acc00, acc01, acc10, acc11 = zero, zero, zero, zero
		acc20, acc21, acc30, acc31 = zero, zero, zero, zero
	} else {
		vBeta := archsimd.BroadcastFloat64x4(beta)
		acc00 = archsimd.LoadFloat64x4Slice(c0).Mul(vBeta)
		acc01 = archsimd.LoadFloat64x4Slice(c0[4:]).Mul(vBeta)
		acc10 = archsimd.LoadFloat64x4Slice(c1).Mul(vBeta)
		acc11 = archsimd.LoadFloat64x4Slice(c1[4:]).Mul(vBeta)
		acc20 = archsimd.LoadFloat64x4Slice(c2).Mul(vBeta)
		acc21 = archsimd.LoadFloat64x4Slice(c2[4:]).Mul(vBeta)
		acc30 = archsimd.LoadFloat64x4Slice(c3).Mul(vBeta)
		acc31 = archsimd.LoadFloat64x4Slice(c3[4:]).Mul(vBeta)
	}

	aIdx, bIdx := 0, 0
	for range k {
		vA0 := archsimd.LoadFloat64x4Slice(packedA[aIdx:])
		vA1 := archsimd.LoadFloat64x4Slice(packedA[aIdx+4:])
		aIdx += mr

		vB := archsimd.BroadcastFloat64x4(packedB[bIdx])
		acc00 = vA0.MulAdd(vB, acc00)
		acc01 = vA1.MulAdd(vB, acc01)
		vB = archsimd.BroadcastFloat64x4(packedB[bIdx+1])
		acc10 = vA0.MulAdd(vB, acc10)
		acc11 = vA1.MulAdd(vB, acc11)
		vB = archsimd.BroadcastFloat64x4(packedB[bIdx+2])
		acc20 = vA0.MulAdd(vB, acc20)
		acc21 = vA1.MulAdd(vB, acc21)
		vB = archsimd.BroadcastFloat64x4(packedB[bIdx+3])
		acc30 = vA0.MulAdd(vB, acc30)
		acc31 = vA1.MulAdd(vB, acc31)
		bIdx += Nr
	}

	acc00.StoreSlice(c0)
	acc01.StoreSlice(c0[4:])
	acc10.StoreSlice(c1)
	acc11.StoreSlice(c1[4:])
	acc20.StoreSlice(c2)
	acc21.StoreSlice(c2[4:])
	acc30.StoreSlice(c3)
	acc31.StoreSlice(c3[4:])
}

// packAAVX2F32 packs full-height micro-panels with two vector loads per
// reduction step. Partial panels take the portable path for zero padding.
func packAAVX2F32(rows, k int, alpha float32, a []float32, lda int, packed []float32) {
	const mr = MrFloat32
	if rows != mr {
		BasePackA(rows, k, alpha, a, lda, packed, mr)
		return
	}
	vAlpha := archsimd.BroadcastFloat32x8(alpha)
	idx := 0
	for p := range k {
		col := a[p*lda : p*lda+mr]
		archsimd.LoadFloat32x8Slice(col).Mul(vAlpha).StoreSlice(packed[idx:])
		archsimd.LoadFloat32x8Slice(col[8:]).Mul(vAlpha).StoreSlice(packed[idx+8:])
		idx += mr
	}
}

func packAAVX2F64(rows, k int, alpha float64, a []float64, lda int, packed []float64) {
	const mr = MrFloat64
	if rows != mr {
		BasePackA(rows, k, alpha, a, lda, packed, mr)
		return
	}
	vAlpha := archsimd.BroadcastFloat64x4(alpha)
	idx := 0
	for p := range k {
		col := a[p*lda : p*lda+mr]
		archsimd.LoadFloat64x4Slice(col).Mul(vAlpha).StoreSlice(packed[idx:])
		archsimd.LoadFloat64x4Slice(col[4:]).Mul(vAlpha).StoreSlice(packed[idx+4:])
		idx += mr
	}
}
