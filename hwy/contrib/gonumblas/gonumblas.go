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

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/gonum"
)

// Type check assertions:
var (
	_ blas.Float32 = Implementation{}
	_ blas.Float64 = Implementation{}
)

// Implementation satisfies blas.Float32 and blas.Float64. The zero value is
// ready to use.
type Implementation struct {
	gonum.Implementation
}

// vecOK reports whether a vector of n elements with increment inc fits in a
// slice of length l and can be handled without the fallback.
func vecOK(n, inc, l int) bool {
	return n > 0 && inc > 0 && l > (n-1)*inc
}

// matOK reports whether a row-major rows×cols matrix with stride ld fits in
// a slice of length l.
func matOK(rows, cols, ld, l int) bool {
	return ld >= max(1, cols) && l >= ld*(rows-1)+cols
}

func transOK(t blas.Transpose) bool {
	return t == blas.NoTrans || t == blas.Trans || t == blas.ConjTrans
}

// flipTrans swaps NoTrans and Trans for the column-major view of a
// row-major matrix.
func flipTrans(t blas.Transpose) blas.Transpose {
	if t == blas.NoTrans {
		return blas.Trans
	}
	return blas.NoTrans
}

// flipUplo swaps the stored triangle for the column-major view of a
// row-major matrix.
func flipUplo(ul blas.Uplo) blas.Uplo {
	if ul == blas.Upper {
		return blas.Lower
	}
	return blas.Upper
}
