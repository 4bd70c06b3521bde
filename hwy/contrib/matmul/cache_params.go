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

import (
	"unsafe"

	"github.com/ajroetker/hwyblas/hwy"
)

// Blocking parameters for the GotoBLAS loop nest. They are compile-time
// constants; Mc must stay a multiple of both Mr values.
const (
	// Kc is the reduction (K) block: one packed B micro-panel is Kc×Nr.
	Kc = 128

	// Mc is the row (M) block: one packed A block is Mc×Kc.
	Mc = 256

	// Nr is the micro-tile width in columns of C.
	Nr = 4

	// MrFloat32 is the micro-tile height for float32: two 8-lane AVX2
	// registers or one 16-lane AVX-512 register per column of C.
	MrFloat32 = 16

	// MrFloat64 is the micro-tile height for float64: two 4-lane AVX2
	// registers or one 8-lane AVX-512 register per column of C.
	MrFloat64 = 8
)

// CacheParams describes the blocking used for one element type.
//
// Memory layout after packing:
//   - Packed A: [Mc/Mr, Kc, Mr] - K-first within micro-panels
//   - Packed B: [ceil(N/Nr), Kc, Nr] - K-first within micro-panels
type CacheParams struct {
	Mr int // Micro-tile rows (register blocking)
	Nr int // Micro-tile columns
	Kc int // K-blocking (L1 cache)
	Mc int // M-blocking (L2 cache)
}

// CacheParamsFor returns the blocking parameters used for T.
func CacheParamsFor[T hwy.Floats]() CacheParams {
	var zero T
	mr := MrFloat64
	if unsafe.Sizeof(zero) == 4 {
		mr = MrFloat32
	}
	return CacheParams{Mr: mr, Nr: Nr, Kc: Kc, Mc: Mc}
}

// PackedASize returns the buffer size needed for packed A when the
// reduction dimension is k.
func (p CacheParams) PackedASize(k int) int {
	return p.Mc * min(p.Kc, k)
}

// PackedBSize returns the buffer size needed for packed B for an n-column
// op(B) and reduction dimension k. Every B micro-panel of one K block is kept
// packed for the whole K block.
func (p CacheParams) PackedBSize(n, k int) int {
	return min(p.Kc, k) * roundUp(n, p.Nr)
}

func roundUp(n, m int) int {
	return (n + m - 1) / m * m
}
