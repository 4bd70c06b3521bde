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
	"fmt"

	"gonum.org/v1/gonum/blas"

	"github.com/ajroetker/hwyblas/hwy"
	"github.com/ajroetker/hwyblas/hwy/contrib/dense"
	"github.com/ajroetker/hwyblas/hwy/contrib/workerpool"
)

// Problem is one product C = Alpha*op(A)*op(B) + Beta*C for GemmBatch.
type Problem[T hwy.Floats] struct {
	Alpha, Beta T
	A, B, C     dense.General[T]
}

// GemmBatch solves independent problems concurrently on pool, all with the
// same transposes. Each problem is an ordinary single-threaded Gemm call
// with its own packing buffers, so the C views must not overlap each other
// or any A or B view.
//
// Every problem is checked before any work starts; GemmBatch panics on the
// first dimension mismatch and leaves all C untouched. A nil pool solves the
// problems in order on the calling goroutine.
func GemmBatch[T hwy.Floats](pool *workerpool.Pool, tA, tB blas.Transpose, probs []Problem[T]) {
	for i, p := range probs {
		if _, err := viewDims(tA, tB, p.A, p.B, p.C); err != nil {
			panic(fmt.Sprintf("matmul: problem %d: %v", i, err))
		}
	}
	solve := func(i int) {
		p := probs[i]
		GemmGeneral(tA, tB, p.Alpha, p.A, p.B, p.Beta, p.C)
	}
	if pool == nil {
		for i := range probs {
			solve(i)
		}
		return
	}
	pool.ForEach(len(probs), solve)
}
