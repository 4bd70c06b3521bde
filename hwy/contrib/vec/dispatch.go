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

package vec

import "github.com/ajroetker/hwyblas/hwy"

// Dispatch function variables.
// These are initialized to the base (pure Go) implementations and may be
// overridden by architecture-specific optimized implementations in init().
var (
	DotFloat32 func(n int, x []float32, incX int, y []float32, incY int) float32
	DotFloat64 func(n int, x []float64, incX int, y []float64, incY int) float64

	AxpyFloat32 func(n int, alpha float32, x []float32, incX int, y []float32, incY int)
	AxpyFloat64 func(n int, alpha float64, x []float64, incX int, y []float64, incY int)

	ScalFloat32 func(n int, alpha float32, x []float32, incX int)
	ScalFloat64 func(n int, alpha float64, x []float64, incX int)

	Nrm2Float32 func(n int, x []float32, incX int) float32
	Nrm2Float64 func(n int, x []float64, incX int) float64

	AsumFloat32 func(n int, x []float32, incX int) float32
	AsumFloat64 func(n int, x []float64, incX int) float64

	IamaxFloat32 func(n int, x []float32, incX int) int
	IamaxFloat64 func(n int, x []float64, incX int) int

	SwapFloat32 func(n int, x []float32, incX int, y []float32, incY int)
	SwapFloat64 func(n int, x []float64, incX int, y []float64, incY int)

	CopyFloat32 func(n int, x []float32, incX int, y []float32, incY int)
	CopyFloat64 func(n int, x []float64, incX int, y []float64, incY int)

	RotFloat32 func(n int, x []float32, incX int, y []float32, incY int, c, s float32)
	RotFloat64 func(n int, x []float64, incX int, y []float64, incY int, c, s float64)

	RotgFloat32 func(a, b float32) (c, s, r, z float32)
	RotgFloat64 func(a, b float64) (c, s, r, z float64)
)

func init() {
	DotFloat32 = BaseDot[float32]
	DotFloat64 = BaseDot[float64]
	AxpyFloat32 = BaseAxpy[float32]
	AxpyFloat64 = BaseAxpy[float64]
	ScalFloat32 = BaseScal[float32]
	ScalFloat64 = BaseScal[float64]
	Nrm2Float32 = BaseNrm2[float32]
	Nrm2Float64 = BaseNrm2[float64]
	AsumFloat32 = BaseAsum[float32]
	AsumFloat64 = BaseAsum[float64]
	IamaxFloat32 = BaseIamax[float32]
	IamaxFloat64 = BaseIamax[float64]
	SwapFloat32 = BaseSwap[float32]
	SwapFloat64 = BaseSwap[float64]
	CopyFloat32 = BaseCopy[float32]
	CopyFloat64 = BaseCopy[float64]
	RotFloat32 = BaseRot[float32]
	RotFloat64 = BaseRot[float64]
	RotgFloat32 = BaseRotg[float32]
	RotgFloat64 = BaseRotg[float64]
}

// Dot is the generic API that dispatches to the appropriate SIMD implementation.
func Dot[T hwy.Floats](n int, x []T, incX int, y []T, incY int) T {
	switch xs := any(x).(type) {
	case []float32:
		return T(DotFloat32(n, xs, incX, any(y).([]float32), incY))
	case []float64:
		return T(DotFloat64(n, xs, incX, any(y).([]float64), incY))
	}
	return BaseDot(n, x, incX, y, incY)
}

// Axpy is the generic API that dispatches to the appropriate SIMD implementation.
func Axpy[T hwy.Floats](n int, alpha T, x []T, incX int, y []T, incY int) {
	switch xs := any(x).(type) {
	case []float32:
		AxpyFloat32(n, float32(alpha), xs, incX, any(y).([]float32), incY)
	case []float64:
		AxpyFloat64(n, float64(alpha), xs, incX, any(y).([]float64), incY)
	default:
		BaseAxpy(n, alpha, x, incX, y, incY)
	}
}

// Scal is the generic API that dispatches to the appropriate SIMD implementation.
func Scal[T hwy.Floats](n int, alpha T, x []T, incX int) {
	switch xs := any(x).(type) {
	case []float32:
		ScalFloat32(n, float32(alpha), xs, incX)
	case []float64:
		ScalFloat64(n, float64(alpha), xs, incX)
	default:
		BaseScal(n, alpha, x, incX)
	}
}

// Nrm2 is the generic API that dispatches to the appropriate implementation.
func Nrm2[T hwy.Floats](n int, x []T, incX int) T {
	switch xs := any(x).(type) {
	case []float32:
		return T(Nrm2Float32(n, xs, incX))
	case []float64:
		return T(Nrm2Float64(n, xs, incX))
	}
	return BaseNrm2(n, x, incX)
}

// Asum is the generic API that dispatches to the appropriate implementation.
func Asum[T hwy.Floats](n int, x []T, incX int) T {
	switch xs := any(x).(type) {
	case []float32:
		return T(AsumFloat32(n, xs, incX))
	case []float64:
		return T(AsumFloat64(n, xs, incX))
	}
	return BaseAsum(n, x, incX)
}

// Iamax is the generic API that dispatches to the appropriate implementation.
func Iamax[T hwy.Floats](n int, x []T, incX int) int {
	switch xs := any(x).(type) {
	case []float32:
		return IamaxFloat32(n, xs, incX)
	case []float64:
		return IamaxFloat64(n, xs, incX)
	}
	return BaseIamax(n, x, incX)
}

// Swap is the generic API that dispatches to the appropriate implementation.
func Swap[T hwy.Floats](n int, x []T, incX int, y []T, incY int) {
	switch xs := any(x).(type) {
	case []float32:
		SwapFloat32(n, xs, incX, any(y).([]float32), incY)
	case []float64:
		SwapFloat64(n, xs, incX, any(y).([]float64), incY)
	default:
		BaseSwap(n, x, incX, y, incY)
	}
}

// Copy is the generic API that dispatches to the appropriate implementation.
func Copy[T hwy.Floats](n int, x []T, incX int, y []T, incY int) {
	switch xs := any(x).(type) {
	case []float32:
		CopyFloat32(n, xs, incX, any(y).([]float32), incY)
	case []float64:
		CopyFloat64(n, xs, incX, any(y).([]float64), incY)
	default:
		BaseCopy(n, x, incX, y, incY)
	}
}

// Rot is the generic API that dispatches to the appropriate implementation.
func Rot[T hwy.Floats](n int, x []T, incX int, y []T, incY int, c, s T) {
	switch xs := any(x).(type) {
	case []float32:
		RotFloat32(n, xs, incX, any(y).([]float32), incY, float32(c), float32(s))
	case []float64:
		RotFloat64(n, xs, incX, any(y).([]float64), incY, float64(c), float64(s))
	default:
		BaseRot(n, x, incX, y, incY, c, s)
	}
}

// Rotg is the generic API that dispatches to the appropriate implementation.
func Rotg[T hwy.Floats](a, b T) (c, s, r, z T) {
	switch av := any(a).(type) {
	case float32:
		c32, s32, r32, z32 := RotgFloat32(av, float32(b))
		return T(c32), T(s32), T(r32), T(z32)
	case float64:
		c64, s64, r64, z64 := RotgFloat64(av, float64(b))
		return T(c64), T(s64), T(r64), T(z64)
	}
	return BaseRotg(a, b)
}
