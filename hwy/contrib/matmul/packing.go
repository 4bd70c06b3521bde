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

// BasePackA packs one micro-panel of op(A) = A into the K-first layout the
// micro-kernel consumes, scaling by alpha on the way.
//
// a points at element (0, 0) of the rows×k sub-block, column-major with
// leading dimension lda. For each p in [0, k) the packed buffer receives
// mr consecutive values:
//
//	packed[p*mr+i] = alpha * A(i, p)   for i < rows
//	packed[p*mr+i] = 0                 for rows <= i < mr
//
// so packed must hold at least k*mr elements. The zero padding lets the
// fixed-shape kernels run on a partial panel without reading past it.
func BasePackA[T hwy.Floats](rows, k int, alpha T, a []T, lda int, packed []T, mr int) {
	idx := 0
	for p := range k {
		col := a[p*lda : p*lda+rows]
		dst := packed[idx : idx+mr]
		for i, v := range col {
			dst[i] = alpha * v
		}
		clear(dst[rows:])
		idx += mr
	}
}

// BasePackAT is BasePackA for op(A) = Aᵀ: a points at element (0, 0) of the
// stored k×rows block, so op(A)(i, p) = a[p+i*lda].
func BasePackAT[T hwy.Floats](rows, k int, alpha T, a []T, lda int, packed []T, mr int) {
	for i := range rows {
		row := a[i*lda : i*lda+k]
		for p, v := range row {
			packed[p*mr+i] = alpha * v
		}
	}
	for p := range k {
		clear(packed[p*mr+rows : (p+1)*mr])
	}
}

// BasePackB packs one micro-panel of op(B) = B: cols <= Nr columns over k
// reduction steps, column-major with leading dimension ldb.
//
//	packed[p*Nr+j] = B(p, j)   for j < cols
//	packed[p*Nr+j] = 0         for cols <= j < Nr
//
// B is not scaled; alpha is applied once, in the A panel.
func BasePackB[T hwy.Floats](cols, k int, b []T, ldb int, packed []T) {
	for j := range cols {
		col := b[j*ldb : j*ldb+k]
		for p, v := range col {
			packed[p*Nr+j] = v
		}
	}
	if cols < Nr {
		for p := range k {
			clear(packed[p*Nr+cols : (p+1)*Nr])
		}
	}
}

// BasePackBT is BasePackB for op(B) = Bᵀ: b points at element (0, 0) of the
// stored cols×k block, so op(B)(p, j) = b[j+p*ldb].
func BasePackBT[T hwy.Floats](cols, k int, b []T, ldb int, packed []T) {
	idx := 0
	for p := range k {
		row := b[p*ldb : p*ldb+cols]
		dst := packed[idx : idx+Nr]
		copy(dst, row)
		clear(dst[cols:])
		idx += Nr
	}
}
