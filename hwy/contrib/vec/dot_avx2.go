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

package vec

import "simd/archsimd"

// AVX2 versions of the unit-stride Level-1 kernels. Strided calls fall back
// to the Base implementations.

func dotAVX2F32(n int, x []float32, incX int, y []float32, incY int) float32 {
	if incX != 1 || incY != 1 || n < 8 {
		return BaseDot(n, x, incX, y, incY)
	}
	x, y = x[:n], y[:n]
	acc0 := archsimd.BroadcastFloat32x8(0)
	acc1 := archsimd.BroadcastFloat32x8(0)
	var i int
	for ; i+16 <= n; i += 16 {
		acc0 = archsimd.LoadFloat32x8Slice(x[i:]).MulAdd(archsimd.LoadFloat32x8Slice(y[i:]), acc0)
		acc1 = archsimd.LoadFloat32x8Slice(x[i+8:]).MulAdd(archsimd.LoadFloat32x8Slice(y[i+8:]), acc1)
	}
	for ; i+8 <= n; i += 8 {
		acc0 = archsimd.LoadFloat32x8Slice(x[i:]).MulAdd(archsimd.LoadFloat32x8Slice(y[i:]), acc0)
	}
	var lanes [8]float32
	acc0.Add(acc1).StoreSlice(lanes[:])
	sum := (lanes[0] + lanes[1]) + (lanes[2] + lanes[3]) + (lanes[4] + lanes[5]) + (lanes[6] + lanes[7])
	for ; i < n; i++ {
		sum += x[i] * y[i]
	}
	return sum
}

func dotAVX2F64(n int, x []float64, incX int, y []float64, incY int) float64 {
	if incX != 1 || incY != 1 || n < 4 {
		return BaseDot(n, x, incX, y, incY)
	}
	x, y = x[:n], y[:n]
	acc0 := archsimd.BroadcastFloat64x4(0)
	acc1 := archsimd.BroadcastFloat64x4(0)
	var i int
	for ; i+8 <= n; i += 8 {
		acc0 = archsimd.LoadFloat64x4Slice(x[i:]).MulAdd(archsimd.LoadFloat64x4Slice(y[i:]), acc0)
		acc1 = archsimd.LoadFloat64x4Slice(x[i+4:]).MulAdd(archsimd.LoadFloat64x4Slice(y[i+4:]), acc1)
	}
	for ; i+4 <= n; i += 4 {
		acc0 = archsimd.LoadFloat64x4Slice(x[i:]).MulAdd(archsimd.LoadFloat64x4Slice(y[i:]), acc0)
	}
	var lanes [4]float64
	acc0.Add(acc1).StoreSlice(lanes[:])
	sum := (lanes[0] + lanes[1]) + (lanes[2] + lanes[3])
	for ; i < n; i++ {
		sum += x[i] * y[i]
	}
	return sum
}

func axpyAVX2F32(n int, alpha float32, x []float32, incX int, y []float32, incY int) {
	if incX != 1 || incY != 1 || alpha == 0 {
		BaseAxpy(n, alpha, x, incX, y, incY)
		return
	}
	x, y = x[:n], y[:n]
	va := archsimd.BroadcastFloat32x8(alpha)
	var i int
	for ; i+8 <= n; i += 8 {
		vy := archsimd.LoadFloat32x8Slice(y[i:])
		archsimd.LoadFloat32x8Slice(x[i:]).MulAdd(va, vy).StoreSlice(y[i:])
	}
	for ; i < n; i++ {
		y[i] += alpha * x[i]
	}
}

func axpyAVX2F64(n int, alpha float64, x []float64, incX int, y []float64, incY int) {
	if incX != 1 || incY != 1 || alpha == 0 {
		BaseAxpy(n, alpha, x, incX, y, incY)
		return
	}
	x, y = x[:n], y[:n]
	va := archsimd.BroadcastFloat64x4(alpha)
	var i int
	for ; i+4 <= n; i += 4 {
		vy := archsimd.LoadFloat64x4Slice(y[i:])
		archsimd.LoadFloat64x4Slice(x[i:]).MulAdd(va, vy).StoreSlice(y[i:])
	}
	for ; i < n; i++ {
		y[i] += alpha * x[i]
	}
}

func scalAVX2F32(n int, alpha float32, x []float32, incX int) {
	if incX != 1 || alpha == 0 {
		BaseScal(n, alpha, x, incX)
		return
	}
	x = x[:n]
	va := archsimd.BroadcastFloat32x8(alpha)
	var i int
	for ; i+8 <= n; i += 8 {
		archsimd.LoadFloat32x8Slice(x[i:]).Mul(va).StoreSlice(x[i:])
	}
	for ; i < n; i++ {
		x[i] *= alpha
	}
}

func scalAVX2F64(n int, alpha float64, x []float64, incX int) {
	if incX != 1 || alpha == 0 {
		BaseScal(n, alpha, x, incX)
		return
	}
	x = x[:n]
	va := archsimd.BroadcastFloat64x4(alpha)
	var i int
	for ; i+4 <= n; i += 4 {
		archsimd.LoadFloat64x4Slice(x[i:]).Mul(va).StoreSlice(x[i:])
	}
	for ; i < n; i++ {
		x[i] *= alpha
	}
}
