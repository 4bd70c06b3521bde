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

// Sdsdot computes alpha plus the dot product of x and y, accumulated in
// float64.
func (impl Implementation) Sdsdot(n int, alpha float32, x []float32, incX int, y []float32, incY int) float32 {
	if !vecOK(n, incX, len(x)) || !vecOK(n, incY, len(y)) {
		return impl.Implementation.Sdsdot(n, alpha, x, incX, y, incY)
	}
	return vec.BaseSdsdot(n, alpha, x, incX, y, incY)
}

// Dsdot computes the dot product of x and y in float64.
func (impl Implementation) Dsdot(n int, x []float32, incX int, y []float32, incY int) float64 {
	if !vecOK(n, incX, len(x)) || !vecOK(n, incY, len(y)) {
		return impl.Implementation.Dsdot(n, x, incX, y, incY)
	}
	return vec.BaseDsdot(n, x, incX, y, incY)
}

// Sdot computes the dot product of x and y.
func (impl Implementation) Sdot(n int, x []float32, incX int, y []float32, incY int) float32 {
	if !vecOK(n, incX, len(x)) || !vecOK(n, incY, len(y)) {
		return impl.Implementation.Sdot(n, x, incX, y, incY)
	}
	return vec.Dot(n, x, incX, y, incY)
}

// Snrm2 computes the Euclidean norm of x.
func (impl Implementation) Snrm2(n int, x []float32, incX int) float32 {
	if !vecOK(n, incX, len(x)) {
		return impl.Implementation.Snrm2(n, x, incX)
	}
	return vec.Nrm2(n, x, incX)
}

// Sasum computes the sum of the absolute values of x.
func (impl Implementation) Sasum(n int, x []float32, incX int) float32 {
	if !vecOK(n, incX, len(x)) {
		return impl.Implementation.Sasum(n, x, incX)
	}
	return vec.Asum(n, x, incX)
}

// Isamax returns the index of the first element of x with the largest
// magnitude, or -1 when n is 0.
func (impl Implementation) Isamax(n int, x []float32, incX int) int {
	if !vecOK(n, incX, len(x)) {
		return impl.Implementation.Isamax(n, x, incX)
	}
	return vec.Iamax(n, x, incX)
}

// Sswap exchanges the elements of x and y.
func (impl Implementation) Sswap(n int, x []float32, incX int, y []float32, incY int) {
	if !vecOK(n, incX, len(x)) || !vecOK(n, incY, len(y)) {
		impl.Implementation.Sswap(n, x, incX, y, incY)
		return
	}
	vec.Swap(n, x, incX, y, incY)
}

// Scopy copies x into y.
func (impl Implementation) Scopy(n int, x []float32, incX int, y []float32, incY int) {
	if !vecOK(n, incX, len(x)) || !vecOK(n, incY, len(y)) {
		impl.Implementation.Scopy(n, x, incX, y, incY)
		return
	}
	vec.Copy(n, x, incX, y, incY)
}

// Saxpy computes y = alpha*x + y.
func (impl Implementation) Saxpy(n int, alpha float32, x []float32, incX int, y []float32, incY int) {
	if !vecOK(n, incX, len(x)) || !vecOK(n, incY, len(y)) {
		impl.Implementation.Saxpy(n, alpha, x, incX, y, incY)
		return
	}
	vec.Axpy(n, alpha, x, incX, y, incY)
}

// Srotg computes the plane rotation that zeros b.
func (Implementation) Srotg(a, b float32) (c, s, r, z float32) {
	return vec.Rotg(a, b)
}

// Srot applies the plane rotation (c, s) to the pairs (x[i], y[i]).
func (impl Implementation) Srot(n int, x []float32, incX int, y []float32, incY int, c, s float32) {
	if !vecOK(n, incX, len(x)) || !vecOK(n, incY, len(y)) {
		impl.Implementation.Srot(n, x, incX, y, incY, c, s)
		return
	}
	vec.Rot(n, x, incX, y, incY, c, s)
}

// Sscal scales x by alpha. An alpha of 0 zero-fills x.
func (impl Implementation) Sscal(n int, alpha float32, x []float32, incX int) {
	if !vecOK(n, incX, len(x)) {
		impl.Implementation.Sscal(n, alpha, x, incX)
		return
	}
	vec.Scal(n, alpha, x, incX)
}
