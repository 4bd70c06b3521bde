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

import "github.com/ajroetker/hwyblas/hwy"

// BaseMicroKernel computes one full mr×Nr tile of C from packed panels:
//
//	C(i, j) = beta*C(i, j) + Σ_p packedA[p*mr+i] * packedB[p*Nr+j]
//
// This is the innermost kernel of the GotoBLAS loop nest:
//
//   - packedA: k values for mr rows, laid out as [k, mr] (see BasePackA)
//   - packedB: k values for Nr cols, laid out as [k, Nr] (see BasePackB)
//   - c: element (0, 0) of the tile, column-major with leading dimension ldc
//
// When beta is 0 the old contents of C are not read, so NaN or Inf in C do
// not leak into the result. Every one of the mr×Nr outputs is written.
func BaseMicroKernel[T hwy.Floats](k int, packedA, packedB []T, beta T, c []T, ldc int, mr int) {
	packedA = packedA[:k*mr]
	packedB = packedB[:k*Nr]
	c0 := c[0*ldc : 0*ldc+mr]
	c1 := c[1*ldc : 1*ldc+mr]
	c2 := c[2*ldc : 2*ldc+mr]
	c3 := c[3*ldc : 3*ldc+mr]

	for i := range mr {
		var acc0, acc1, acc2, acc3 T
		if beta != 0 {
			acc0 = beta * c0[i]
			acc1 = beta * c1[i]
			acc2 = beta * c2[i]
			acc3 = beta * c3[i]
		}
		for p := range k {
			a := packedA[p*mr+i]
			b := packedB[p*Nr : p*Nr+Nr]
			acc0 += a * b[0]
			acc1 += a * b[1]
			acc2 += a * b[2]
			acc3 += a * b[3]
		}
		c0[i] = acc0
		c1[i] = acc1
		c2[i] = acc2
		c3[i] = acc3
	}
}

// BaseEdgeKernel computes a partial rows×cols tile (rows <= mr, cols <= Nr)
// at the bottom or right edge of C. It reads the same zero-padded panels as
// BaseMicroKernel and writes only the active rows and columns, so C may end
// right after the tile.
func BaseEdgeKernel[T hwy.Floats](rows, cols, k int, packedA, packedB []T, beta T, c []T, ldc int, mr int) {
	packedA = packedA[:k*mr]
	packedB = packedB[:k*Nr]
	for j := range cols {
		cj := c[j*ldc : j*ldc+rows]
		for i := range cj {
			var acc T
			if beta != 0 {
				acc = beta * cj[i]
			}
			for p := range k {
				acc += packedA[p*mr+i] * packedB[p*Nr+j]
			}
			cj[i] = acc
		}
	}
}
