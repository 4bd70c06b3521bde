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
	"math"
	"math/rand"
	"testing"

	"github.com/ajroetker/hwyblas/hwy"
)

// tileReference computes the rows×cols tile beta*C + packedA·packedB in
// float64.
func tileReference(rows, cols, k int, packedA, packedB []float64, beta float64, c []float64, ldc, mr int) []float64 {
	out := make([]float64, len(c))
	copy(out, c)
	for j := range cols {
		for i := range rows {
			var sum float64
			for p := range k {
				sum += packedA[p*mr+i] * packedB[p*Nr+j]
			}
			if beta == 0 {
				out[i+j*ldc] = sum
			} else {
				out[i+j*ldc] = beta*c[i+j*ldc] + sum
			}
		}
	}
	return out
}

func randSlice64(rng *rand.Rand, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = rng.Float64()*2 - 1
	}
	return s
}

func TestMicroKernelFloat64(t *testing.T) {
	t.Logf("Dispatch level: %s", hwy.CurrentName())
	rng := rand.New(rand.NewSource(6))
	const mr = MrFloat64
	for _, k := range []int{1, 2, 7, 64, Kc} {
		for _, beta := range []float64{0, 1, -0.5} {
			ldc := mr + 3
			packedA := randSlice64(rng, k*mr)
			packedB := randSlice64(rng, k*Nr)
			c := randSlice64(rng, ldc*Nr)
			want := tileReference(mr, Nr, k, packedA, packedB, beta, c, ldc, mr)

			MicroKernelFloat64(k, packedA, packedB, beta, c, ldc)
			for i := range c {
				if math.Abs(c[i]-want[i]) > 1e-12 {
					t.Errorf("k=%d beta=%v: c[%d] = %v, want %v", k, beta, i, c[i], want[i])
				}
			}
		}
	}
}

func TestMicroKernelFloat32(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const mr = MrFloat32
	for _, k := range []int{1, 5, 33, Kc} {
		for _, beta := range []float32{0, 1, 2} {
			ldc := mr + 1
			pa64 := randSlice64(rng, k*mr)
			pb64 := randSlice64(rng, k*Nr)
			c64 := randSlice64(rng, ldc*Nr)
			packedA, packedB, c := to32(pa64), to32(pb64), to32(c64)
			want := tileReference(mr, Nr, k, to64(packedA), to64(packedB), float64(beta), to64(c), ldc, mr)

			MicroKernelFloat32(k, packedA, packedB, beta, c, ldc)
			for i := range c {
				if math.Abs(float64(c[i])-want[i]) > 1e-4 {
					t.Errorf("k=%d beta=%v: c[%d] = %v, want %v", k, beta, i, c[i], want[i])
				}
			}
		}
	}
}

func TestMicroKernelBetaZeroIgnoresNaN(t *testing.T) {
	const mr = MrFloat64
	k := 3
	packedA := make([]float64, k*mr)
	packedB := make([]float64, k*Nr)
	for i := range packedA {
		packedA[i] = 1
	}
	for i := range packedB {
		packedB[i] = 2
	}
	c := make([]float64, mr*Nr)
	for i := range c {
		c[i] = math.NaN()
	}
	MicroKernelFloat64(k, packedA, packedB, 0, c, mr)
	for i, v := range c {
		if v != 6 {
			t.Errorf("c[%d] = %v, want 6", i, v)
		}
	}
}

func TestEdgeKernelWritesOnlyActiveTile(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	const mr = MrFloat64
	k := 9
	for rows := 1; rows <= mr; rows++ {
		for cols := 1; cols <= Nr; cols++ {
			packedA := randSlice64(rng, k*mr)
			packedB := randSlice64(rng, k*Nr)
			// Zero the padded parts, as the packing routines would.
			for p := range k {
				for i := rows; i < mr; i++ {
					packedA[p*mr+i] = 0
				}
				for j := cols; j < Nr; j++ {
					packedB[p*Nr+j] = 0
				}
			}
			ldc := mr + 2
			c := randSlice64(rng, ldc*Nr)
			orig := append([]float64(nil), c...)
			want := tileReference(rows, cols, k, packedA, packedB, 0.5, c, ldc, mr)

			EdgeKernelFloat64(rows, cols, k, packedA, packedB, 0.5, c, ldc)
			for j := range Nr {
				for i := range ldc {
					idx := i + j*ldc
					if i < rows && j < cols {
						if math.Abs(c[idx]-want[idx]) > 1e-12 {
							t.Errorf("%dx%d: c(%d,%d) = %v, want %v", rows, cols, i, j, c[idx], want[idx])
						}
					} else if c[idx] != orig[idx] {
						t.Errorf("%dx%d: c(%d,%d) outside the tile was modified", rows, cols, i, j)
					}
				}
			}
		}
	}
}

func TestEdgeKernelMatchesMicroKernelOnFullTile(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	const mr = MrFloat32
	k := 20
	packedA := to32(randSlice64(rng, k*mr))
	packedB := to32(randSlice64(rng, k*Nr))
	c1 := to32(randSlice64(rng, mr*Nr))
	c2 := append([]float32(nil), c1...)

	BaseMicroKernel(k, packedA, packedB, 3, c1, mr, mr)
	BaseEdgeKernel(mr, Nr, k, packedA, packedB, 3, c2, mr, mr)
	for i := range c1 {
		if math.Abs(float64(c1[i]-c2[i])) > 1e-5 {
			t.Errorf("c[%d]: micro %v, edge %v", i, c1[i], c2[i])
		}
	}
}

func to32(s []float64) []float32 {
	out := make([]float32, len(s))
	for i, v := range s {
		out[i] = float32(v)
	}
	return out
}

func to64(s []float32) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}
