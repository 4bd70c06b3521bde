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

package matvec

import "simd/archsimd"

func combine4AVX2F32(m int, alpha float32, a []float32, lda int, x []float32, incX int, beta float32, y []float32) {
	x0 := alpha * x[0]
	x1 := alpha * x[incX]
	x2 := alpha * x[2*incX]
	x3 := alpha * x[3*incX]
	a0 := a[0*lda : 0*lda+m]
	a1 := a[1*lda : 1*lda+m]
	a2 := a[2*lda : 2*lda+m]
	a3 := a[3*lda : 3*lda+m]
	y = y[:m]

	vx0 := archsimd.BroadcastFloat32x8(x0)
	vx1 := archsimd.BroadcastFloat32x8(x1)
	vx2 := archsimd.BroadcastFloat32x8(x2)
	vx3 := archsimd.BroadcastFloat32x8(x3)
	vBeta := archsimd.BroadcastFloat32x8(beta)

	var i int
	for ; i+8 <= m; i += 8 {
		var acc archsimd.Float32x8
		if beta == 0 {
			acc = archsimd.LoadFloat32x8Slice(a0[i:]).Mul(vx0)
		} else {
			acc = archsimd.LoadFloat32x8Slice(y[i:]).Mul(vBeta)
			acc = archsimd.LoadFloat32x8Slice(a0[i:]).MulAdd(vx0, acc)
		}
		acc = archsimd.LoadFloat32x8Slice(a1[i:]).MulAdd(vx1, acc)
		acc = archsimd.LoadFloat32x8Slice(a2[i:]).MulAdd(vx2, acc)
		acc = archsimd.LoadFloat32x8Slice(a3[i:]).MulAdd(vx3, acc)
		acc.StoreSlice(y[i:])
	}
	for ; i < m; i++ {
		v := a0[i]*x0 + a1[i]*x1 + a2[i]*x2 + a3[i]*x3
		if beta != 0 {
			v += beta * y[i]
		}
		y[i] = v
	}
}

func combine4AVX2F64(m int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64) {
	x0 := alpha * x[0]
	x1 := alpha * x[incX]
	x2 := alpha * x[2*incX]
	x3 := alpha * x[3*incX]
	a0 := a[0*lda : 0*lda+m]
	a1 := a[1*lda : 1*lda+m]
	a2 := a[2*lda : 2*lda+m]
	a3 := a[3*lda : 3*lda+m]
	y = y[:m]

	vx0 := archsimd.BroadcastFloat64x4(x0)
	vx1 := archsimd.BroadcastFloat64x4(x1)
	vx2 := archsimd.BroadcastFloat64x4(x2)
	vx3 := archsimd.BroadcastFloat64x4(x3)
	vBeta := archsimd.BroadcastFloat64x4(beta)

	var i int
	for ; i+4 <= m; i += 4 {
		var acc archsimd.Float64x4
		if beta == 0 {
			acc = archsimd.LoadFloat64x4Slice(a0[i:]).Mul(vx0)
		} else {
			acc = archsimd.LoadFloat64x4Slice(y[i:]).Mul(vBeta)
			acc = archsimd.LoadFloat64x4Slice(a0[i:]).MulAdd(vx0, acc)
		}
		acc = archsimd.LoadFloat64x4Slice(a1[i:]).MulAdd(vx1, acc)
		acc = archsimd.LoadFloat64x4Slice(a2[i:]).MulAdd(vx2, acc)
		acc = archsimd.LoadFloat64x4Slice(a3[i:]).MulAdd(vx3, acc)
		acc.StoreSlice(y[i:])
	}
	for ; i < m; i++ {
		v := a0[i]*x0 + a1[i]*x1 + a2[i]*x2 + a3[i]*x3
		if beta != 0 {
			v += beta * y[i]
		}
		y[i] = v
	}
}

func combine1AVX2F32(m int, alpha float32, a []float32, x float32, beta float32, y []float32) {
	xa := alpha * x
	a = a[:m]
	y = y[:m]
	vx := archsimd.BroadcastFloat32x8(xa)
	vBeta := archsimd.BroadcastFloat32x8(beta)
	var i int
	for ; i+8 <= m; i += 8 {
		va := archsimd.LoadFloat32x8Slice(a[i:])
		if beta == 0 {
			va.Mul(vx).StoreSlice(y[i:])
		} else {
			va.MulAdd(vx, archsimd.LoadFloat32x8Slice(y[i:]).Mul(vBeta)).StoreSlice(y[i:])
		}
	}
	for ; i < m; i++ {
		if beta == 0 {
			y[i] = a[i] * xa
		} else {
			y[i] = beta*y[i] + a[i]*xa
		}
	}
}

func combine1AVX2F64(m int, alpha float64, a []float64, x float64, beta float64, y []float64) {
	xa := alpha * x
	a = a[:m]
	y = y[:m]
	vx := archsimd.BroadcastFloat64x4(xa)
	vBeta := archsimd.BroadcastFloat64x4(beta)
	var i int
	for ; i+4 <= m; i += 4 {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		if beta == 0 {
			va.Mul(vx).StoreSlice(y[i:])
		} else {
			va.MulAdd(vx, archsimd.LoadFloat64x4Slice(y[i:]).Mul(vBeta)).StoreSlice(y[i:])
		}
	}
	for ; i < m; i++ {
		if beta == 0 {
			y[i] = a[i] * xa
		} else {
			y[i] = beta*y[i] + a[i]*xa
		}
	}
}
