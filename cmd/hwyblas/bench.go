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
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/gonum"
	"gonum.org/v1/gonum/floats"

	"github.com/ajroetker/hwyblas/hwy/contrib/gonumblas"
)

var errMismatch = errors.New("result differs from gonum")

type result struct {
	N      int
	Hwy    time.Duration
	Gonum  time.Duration
	MaxErr float64
}

func (r result) gflops(d time.Duration) float64 {
	n := float64(r.N)
	return 2 * n * n * n / d.Seconds() / 1e9
}

func parseSizes(s string) ([]int, error) {
	var ns []int
	for f := range strings.SplitSeq(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parsing size %q: %w", f, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("size %d must be positive", n)
		}
		ns = append(ns, n)
	}
	if len(ns) == 0 {
		return nil, errors.New("no sizes given")
	}
	return ns, nil
}

func benchGemm(cfg config, ns []int) ([]result, error) {
	var run func(n int, rng *rand.Rand, reps int) result
	switch cfg.DType {
	case "f64":
		run = benchDgemm
	case "f32":
		run = benchSgemm
	default:
		return nil, fmt.Errorf("unknown dtype %q (want f32 or f64)", cfg.DType)
	}

	rng := rand.New(rand.NewSource(1))
	results := make([]result, 0, len(ns))
	for _, n := range ns {
		r := run(n, rng, cfg.Reps)
		log.Debug().Int("n", n).Dur("hwy", r.Hwy).Dur("gonum", r.Gonum).Float64("max_err", r.MaxErr).Msg("gemm")
		if cfg.Verify {
			// Relative to the k-term sums of values in [-1, 1).
			tol := 1e-10 * float64(n)
			if cfg.DType == "f32" {
				tol = 1e-4 * float64(n)
			}
			if r.MaxErr > tol {
				return nil, fmt.Errorf("size %d: max error %g exceeds %g: %w", n, r.MaxErr, tol, errMismatch)
			}
		}
		results = append(results, r)
	}
	return results, nil
}

func fastest(reps int, f func()) time.Duration {
	best := time.Duration(math.MaxInt64)
	for range reps {
		start := time.Now()
		f()
		best = min(best, time.Since(start))
	}
	return best
}

func benchDgemm(n int, rng *rand.Rand, reps int) result {
	a := randMatrix(rng, n)
	b := randMatrix(rng, n)
	got := make([]float64, n*n)
	want := make([]float64, n*n)

	var impl gonumblas.Implementation
	var ref gonum.Implementation
	r := result{N: n}
	r.Hwy = fastest(reps, func() {
		impl.Dgemm(blas.NoTrans, blas.NoTrans, n, n, n, 1, a, n, b, n, 0, got, n)
	})
	r.Gonum = fastest(reps, func() {
		ref.Dgemm(blas.NoTrans, blas.NoTrans, n, n, n, 1, a, n, b, n, 0, want, n)
	})
	r.MaxErr = floats.Distance(got, want, math.Inf(1))
	return r
}

func benchSgemm(n int, rng *rand.Rand, reps int) result {
	a := toFloat32(randMatrix(rng, n))
	b := toFloat32(randMatrix(rng, n))
	got := make([]float32, n*n)
	want := make([]float32, n*n)

	var impl gonumblas.Implementation
	var ref gonum.Implementation
	r := result{N: n}
	r.Hwy = fastest(reps, func() {
		impl.Sgemm(blas.NoTrans, blas.NoTrans, n, n, n, 1, a, n, b, n, 0, got, n)
	})
	r.Gonum = fastest(reps, func() {
		ref.Sgemm(blas.NoTrans, blas.NoTrans, n, n, n, 1, a, n, b, n, 0, want, n)
	})
	r.MaxErr = floats.Distance(toFloat64(got), toFloat64(want), math.Inf(1))
	return r
}

func randMatrix(rng *rand.Rand, n int) []float64 {
	m := make([]float64, n*n)
	for i := range m {
		m[i] = rng.Float64()*2 - 1
	}
	return m
}

func toFloat32(x []float64) []float32 {
	return lo.Map(x, func(v float64, _ int) float32 { return float32(v) })
}

func toFloat64(x []float32) []float64 {
	return lo.Map(x, func(v float32, _ int) float64 { return float64(v) })
}

func printResults(w io.Writer, dtype string, results []result) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s gemm\tn\thwy GFLOPS\tgonum GFLOPS\tspeedup\tmax err\t\n", dtype)
	for _, r := range results {
		fmt.Fprintf(tw, "\t%d\t%.2f\t%.2f\t%.2fx\t%.2g\t\n",
			r.N, r.gflops(r.Hwy), r.gflops(r.Gonum), r.Gonum.Seconds()/r.Hwy.Seconds(), r.MaxErr)
	}
	tw.Flush()
}
