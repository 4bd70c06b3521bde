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

package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/blas"

	"github.com/ajroetker/hwyblas/hwy"
	"github.com/ajroetker/hwyblas/hwy/contrib/dense"
	"github.com/ajroetker/hwyblas/hwy/contrib/matmul"
	"github.com/ajroetker/hwyblas/hwy/contrib/workerpool"
)

// printBatch times cfg.Batch independent n×n products per size, once on the
// calling goroutine and once through a worker pool.
func printBatch(w io.Writer, cfg config, ns []int) {
	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	for _, n := range ns {
		var seq, par time.Duration
		if cfg.DType == "f32" {
			seq, par = timeBatch[float32](pool, n, cfg.Batch, cfg.Reps)
		} else {
			seq, par = timeBatch[float64](pool, n, cfg.Batch, cfg.Reps)
		}
		log.Debug().Int("n", n).Int("batch", cfg.Batch).Dur("sequential", seq).Dur("pool", par).Msg("gemm batch")
		fmt.Fprintf(w, "batch of %d %s gemm n=%d on %d workers: %v sequential, %v pooled (%.2fx)\n",
			cfg.Batch, cfg.DType, n, pool.NumWorkers(), seq, par, seq.Seconds()/par.Seconds())
	}
}

func timeBatch[T hwy.Floats](pool *workerpool.Pool, n, count, reps int) (seq, par time.Duration) {
	rng := rand.New(rand.NewSource(2))
	probs := make([]matmul.Problem[T], count)
	for i := range probs {
		probs[i] = matmul.Problem[T]{
			Alpha: 1,
			A:     randGeneral[T](rng, n),
			B:     randGeneral[T](rng, n),
			C:     dense.NewGeneral(n, n, make([]T, n*n)),
		}
	}
	seq = fastest(reps, func() {
		matmul.GemmBatch(nil, blas.NoTrans, blas.NoTrans, probs)
	})
	par = fastest(reps, func() {
		matmul.GemmBatch(pool, blas.NoTrans, blas.NoTrans, probs)
	})
	return seq, par
}

func randGeneral[T hwy.Floats](rng *rand.Rand, n int) dense.General[T] {
	data := make([]T, n*n)
	for i := range data {
		data[i] = T(rng.Float64()*2 - 1)
	}
	return dense.NewGeneral(n, n, data)
}
