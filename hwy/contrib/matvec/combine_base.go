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

// BaseCombine4 folds four columns of A into y:
//
//	y[i] = beta*y[i] + alpha*(A(i,0)*x[0] + A(i,1)*x[incX] + A(i,2)*x[2*incX] + A(i,3)*x[3*incX])
//
// a points at A(0, 0), column-major with leading dimension lda; y is
// contiguous with m elements. When beta is 0, y is not read.
//
// Callers combining more than four columns into the same y must pass the
// real beta to the first call only and beta = 1 afterwards.
//
// Example:
//
//	// Columns [1 1], [2 2], [3 3], [4 4]
//	a := []float32{1, 1, 2, 2, 3, 3, 4, 4}
//	x := []float32{1, 1, 1, 1}
//	y := []float32{1, 1}
//	BaseCombine4(2, 1, a, 2, x, 1, 2, y) // y = [12, 12]
func BaseCombine4[T hwy.Floats](m int, alpha T, a []T, lda int, x []T, incX int, beta T, y []T) {
	x0 := alpha * x[0]
	x1 := alpha * x[incX]
	x2 := alpha * x[2*incX]
	x3 := alpha * x[3*incX]
	a0 := a[0*lda : 0*lda+m]
	a1 := a[1*lda : 1*lda+m]
	a2 := a[2*lda : 2*lda+m]
	a3 := a[3*lda : 3*lda+m]
	y = y[:m]
	if beta == 0 {
		for i := range y {
			y[i] = a0[i]*x0 + a1[i]*x1 + a2[i]*x2 + a3[i]*x3
		}
		return
	}
	for i := range y {
		y[i] = beta*y[i] + a0[i]*x0 + a1[i]*x1 + a2[i]*x2 + a3[i]*x3
	}
}

// BaseCombine1 folds a single column into y:
//
//	y[i] = beta*y[i] + a[i]*(alpha*x)
//
// When beta is 0, y is not read.
func BaseCombine1[T hwy.Floats](m int, alpha T, a []T, x T, beta T, y []T) {
	xa := alpha * x
	a = a[:m]
	y = y[:m]
	if beta == 0 {
		for i, v := range a {
			y[i] = v * xa
		}
		return
	}
	for i, v := range a {
		y[i] = beta*y[i] + v*xa
	}
}
