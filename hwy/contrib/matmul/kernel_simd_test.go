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

//go:build amd64 && goexperiment.simd

package matmul

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"simd/archsimd"

	"github.com/ajroetker/hwyblas/hwy"
)

func TestMicroKernelsMatchBase(t *testing.T) {
	rng := rand.New(rand.NewSource(20))
	type kernels32 struct {
		name  string
		ok    bool
		micro func(k int, packedA, packedB []float32, beta float32, c []float32, ldc int)
		pack  func(rows, k int, alpha float32, a []float32, lda int, packed []float32)
	}
	type kernels64 struct {
		name  string
		ok    bool
		micro func(k int, packedA, packedB []float64, beta float64, c []float64, ldc int)
		pack  func(rows, k int, alpha float64, a []float64, lda int, packed []float64)
	}
	fma := hwy.HasFMA()
	for _, kk := range []kernels32{
		{"avx2", archsimd.X86.AVX2() && fma, microKernelAVX2F32, packAAVX2F32},
		{"avx512", archsimd.X86.AVX512() && fma, microKernelAVX512F32, packAAVX512F32},
	} {
		t.Run(kk.name+"/float32", func(t *testing.T) {
			if !kk.ok {
				t.Skipf("CPU does not support %s", kk.name)
			}
			const mr = MrFloat32
			k, lda, ldc := 50, mr+5, mr+2
			a := to32(randSlice64(rng, lda*k))
			packedSIMD := make([]float32, k*mr)
			packedBase := make([]float32, k*mr)
			kk.pack(mr, k, 0.75, a, lda, packedSIMD)
			BasePackA(mr, k, 0.75, a, lda, packedBase, mr)
			if !slices.Equal(packedSIMD, packedBase) {
				t.Fatalf("packed A differs from BasePackA")
			}

			packedB := to32(randSlice64(rng, k*Nr))
			for _, beta := range []float32{0, 1, -2} {
				c := to32(randSlice64(rng, ldc*Nr))
				want := slices.Clone(c)
				kk.micro(k, packedBase, packedB, beta, c, ldc)
				BaseMicroKernel(k, packedBase, packedB, beta, want, ldc, mr)
				for i := range c {
					if math.Abs(float64(c[i]-want[i])) > 1e-4 {
						t.Errorf("beta=%v: c[%d] = %v, want %v", beta, i, c[i], want[i])
					}
				}
			}
		})
	}
	for _, kk := range []kernels64{
		{"avx2", archsimd.X86.AVX2() && fma, microKernelAVX2F64, packAAVX2F64},
		{"avx512", archsimd.X86.AVX512() && fma, microKernelAVX512F64, packAAVX512F64},
	} {
		t.Run(kk.name+"/float64", func(t *testing.T) {
			if !kk.ok {
				t.Skipf("CPU does not support %s", kk.name)
			}
			const mr = MrFloat64
			k, lda, ldc := 70, mr+1, mr+3
			a := randSlice64(rng, lda*k)
			packedSIMD := make([]float64, k*mr)
			packedBase := make([]float64, k*mr)
			kk.pack(mr, k, -1.5, a, lda, packedSIMD)
			BasePackA(mr, k, -1.5, a, lda, packedBase, mr)
			if !slices.Equal(packedSIMD, packedBase) {
				t.Fatalf("packed A differs from BasePackA")
			}

			packedB := randSlice64(rng, k*Nr)
			for _, beta := range []float64{0, 1, 0.25} {
				c := randSlice64(rng, ldc*Nr)
				want := slices.Clone(c)
				kk.micro(k, packedBase, packedB, beta, c, ldc)
				BaseMicroKernel(k, packedBase, packedB, beta, want, ldc, mr)
				for i := range c {
					if math.Abs(c[i]-want[i]) > 1e-12 {
						t.Errorf("beta=%v: c[%d] = %v, want %v", beta, i, c[i], want[i])
					}
				}
			}
		})
	}
}

func TestPartialPackFallsBack(t *testing.T) {
	if !archsimd.X86.AVX2() || !hwy.HasFMA() {
		t.Skip("CPU does not support avx2")
	}
	const mr = MrFloat32
	rows, k := 5, 3
	a := make([]float32, rows*k)
	for i := range a {
		a[i] = float32(i + 1)
	}
	got := make([]float32, k*mr)
	for i := range got {
		got[i] = -1
	}
	want := make([]float32, k*mr)
	packAAVX2F32(rows, k, 1, a, rows, got)
	BasePackA(rows, k, 1, a, rows, want, mr)
	if !slices.Equal(got, want) {
		t.Errorf("partial packAAVX2F32 = %v, want %v", got, want)
	}
}
