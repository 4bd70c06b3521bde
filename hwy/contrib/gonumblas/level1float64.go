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

package gonumblas

import "github.com/ajroetker/hwyblas/hwy/contrib/vec"

// Ddot computes the dot product of x and y.
func (impl Implementation) Ddot(n int, x []float64, incX int, y []float64, incY int) float64 {
	if !vecOK(n, incX, len(x)) || !vecOK(n, incY, len(y)) {
		return impl.Implementation.Ddot(n, x, incX, y, incY)
	}
	return vec.Dot(n, x, incX, y, incY)
}

// Dnrm2 computes the Euclidean norm of x.
func (impl Implementation) Dnrm2(n int, x []float64, incX int) float64 {
	if !vecOK(n, incX, len(x)) {
		return impl.Implementation.Dnrm2(n, x, incX)
	}
	return vec.Nrm2(n, x, incX)
}

// Dasum computes the sum of the absolute values of x.
func (impl Implementation) Dasum(n int, x []float64, incX int) float64 {
	if !vecOK(n, incX, len(x)) {
		return impl.Implementation.Dasum(n, x, incX)
	}
	return vec.Asum(n, x, incX)
}

// Idamax returns the index of the first element of x with the largest
// magnitude, or -1 when n is 0.
func (impl Implementation) Idamax(n int, x []float64, incX int) int {
	if !vecOK(n, incX, len(x)) {
		return impl.Implementation.Idamax(n, x, incX)
	}
	return vec.Iamax(n, x, incX)
}

// Dswap exchanges the elements of x and y.
func (impl Implementation) Dswap(n int, x []float64, incX int, y []float64, incY int) {
	if !vecOK(n, incX, len(x)) || !vecOK(n, incY, len(y)) {
		impl.Implementation.Dswap(n, x, incX, y, incY)
		return
	}
	vec.Swap(n, x, incX, y, incY)
}

// Dcopy copies x into y.
func (impl Implementation) Dcopy(n int, x []float64, incX int, y []float64, incY int) {
	if !vecOK(n, incX, len(x)) || !vecOK(n, incY, len(y)) {
		impl.Implementation.Dcopy(n, x, incX, y, incY)
		return
	}
	vec.Copy(n, x, incX, y, incY)
}

// Daxpy computes y = alpha*x + y.
func (impl Implementation) Daxpy(n int, alpha float64, x []float64, incX int, y []float64, incY int) {
	if !vecOK(n, incX, len(x)) || !vecOK(n, incY, len(y)) {
		impl.Implementation.Daxpy(n, alpha, x, incX, y, incY)
		return
	}
	vec.Axpy(n, alpha, x, incX, y, incY)
}

// Drotg computes the plane rotation that zeros b.
func (Implementation) Drotg(a, b float64) (c, s, r, z float64) {
	return vec.Rotg(a, b)
}

// Drot applies the plane rotation (c, s) to the pairs (x[i], y[i]).
func (impl Implementation) Drot(n int, x []float64, incX int, y []float64, incY int, c, s float64) {
	if !vecOK(n, incX, len(x)) || !vecOK(n, incY, len(y)) {
		impl.Implementation.Drot(n, x, incX, y, incY, c, s)
		return
	}
	vec.Rot(n, x, incX, y, incY, c, s)
}

// Dscal scales x by alpha. An alpha of 0 zero-fills x.
func (impl Implementation) Dscal(n int, alpha float64, x []float64, incX int) {
	if !vecOK(n, incX, len(x)) {
		impl.Implementation.Dscal(n, alpha, x, incX)
		return
	}
	vec.Scal(n, alpha, x, incX)
}
