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

package matvec

import "github.com/ajroetker/hwyblas/hwy"

// Dispatch function variables.
// These are initialized to the base (pure Go) implementations and may be
// overridden by architecture-specific optimized implementations in init().
var (
	Combine4Float32 func(m int, alpha float32, a []float32, lda int, x []float32, incX int, beta float32, y []float32)
	Combine4Float64 func(m int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64)

	Combine1Float32 func(m int, alpha float32, a []float32, x float32, beta float32, y []float32)
	Combine1Float64 func(m int, alpha float64, a []float64, x float64, beta float64, y []float64)
)

func init() {
	Combine4Float32 = BaseCombine4[float32]
	Combine4Float64 = BaseCombine4[float64]
	Combine1Float32 = BaseCombine1[float32]
	Combine1Float64 = BaseCombine1[float64]
}

// Combine4 is the generic API that dispatches to the appropriate SIMD implementation.
func Combine4[T hwy.Floats](m int, alpha T, a []T, lda int, x []T, incX int, beta T, y []T) {
	switch as := any(a).(type) {
	case []float32:
		Combine4Float32(m, float32(alpha), as, lda, any(x).([]float32), incX, float32(beta), any(y).([]float32))
	case []float64:
		Combine4Float64(m, float64(alpha), as, lda, any(x).([]float64), incX, float64(beta), any(y).([]float64))
	default:
		BaseCombine4(m, alpha, a, lda, x, incX, beta, y)
	}
}

// Combine1 is the generic API that dispatches to the appropriate SIMD implementation.
func Combine1[T hwy.Floats](m int, alpha T, a []T, x T, beta T, y []T) {
	switch as := any(a).(type) {
	case []float32:
		Combine1Float32(m, float32(alpha), as, float32(x), float32(beta), any(y).([]float32))
	case []float64:
		Combine1Float64(m, float64(alpha), as, float64(x), float64(beta), any(y).([]float64))
	default:
		BaseCombine1(m, alpha, a, x, beta, y)
	}
}
