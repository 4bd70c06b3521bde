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

package vec

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/ajroetker/hwyblas/hwy"
)

// Tolerance constants for floating point comparison
const (
	epsilon32 = float32(1e-4)
	epsilon64 = float64(1e-10)
)

func approxEqual64(a, b, epsilon float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	if math.IsInf(a, 0) && math.IsInf(b, 0) {
		return (a > 0) == (b > 0)
	}
	return math.Abs(a-b) <= epsilon*math.Max(1, math.Abs(b))
}

// strided spreads vals over a slice with the given increment, filling the
// gaps with a sentinel that must never be read or written.
func strided(vals []float64, inc int) []float64 {
	if len(vals) == 0 {
		return nil
	}
	out := make([]float64, (len(vals)-1)*inc+1)
	for i := range out {
		out[i] = -999
	}
	for i, v := range vals {
		out[i*inc] = v
	}
	return out
}

func randVals(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()*2 - 1
	}
	return v
}

func TestDot(t *testing.T) {
	t.Logf("Dispatch level: %s", hwy.CurrentName())
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{0, 1, 3, 7, 8, 9, 16, 17, 33, 100, 257} {
		for _, inc := range [][2]int{{1, 1}, {1, 7}, {7, 1}, {3, 5}} {
			t.Run(fmt.Sprintf("n=%d/inc=%v", n, inc), func(t *testing.T) {
				xv, yv := randVals(rng, n), randVals(rng, n)
				var want float64
				for i := range xv {
					want += xv[i] * yv[i]
				}
				x, y := strided(xv, inc[0]), strided(yv, inc[1])
				if got := Dot(n, x, inc[0], y, inc[1]); !approxEqual64(got, want, epsilon64) {
					t.Errorf("Dot float64 = %v, want %v", got, want)
				}

				x32, y32 := toFloat32(x), toFloat32(y)
				got32 := Dot(n, x32, inc[0], y32, inc[1])
				if !approxEqual64(float64(got32), want, float64(epsilon32)) {
					t.Errorf("Dot float32 = %v, want %v", got32, want)
				}
			})
		}
	}
}

func TestDotEmpty(t *testing.T) {
	if got := Dot[float32](0, nil, 1, nil, 1); got != 0 {
		t.Errorf("Dot of empty vectors = %v, want 0", got)
	}
	if got := BaseDot[float64](0, nil, 1, nil, 1); got != 0 {
		t.Errorf("BaseDot of empty vectors = %v, want 0", got)
	}
}

func TestSdsdotDsdot(t *testing.T) {
	x := []float32{1e8, 1, -1e8, 0, 3}
	y := []float32{1, 1, 1, 9, 1}
	// In float32 1e8+1 rounds back to 1e8; float64 accumulation keeps it.
	if got := BaseDsdot(3, x, 1, y, 1); got != 1 {
		t.Errorf("Dsdot = %v, want 1", got)
	}
	if got := BaseSdsdot(3, 0.5, x, 1, y, 1); got != 1.5 {
		t.Errorf("Sdsdot = %v, want 1.5", got)
	}
	if got := BaseSdsdot(3, 2, x, 2, y, 2); got != 5 {
		t.Errorf("Sdsdot strided = %v, want 5", got)
	}
	if got := BaseSdsdot(0, 4, nil, 1, nil, 1); got != 4 {
		t.Errorf("Sdsdot empty = %v, want b=4", got)
	}
}

func TestAxpy(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, n := range []int{0, 1, 5, 8, 13, 64, 101} {
		for _, inc := range [][2]int{{1, 1}, {2, 3}, {5, 1}} {
			xv, yv := randVals(rng, n), randVals(rng, n)
			alpha := 1.5
			x, y := strided(xv, inc[0]), strided(yv, inc[1])
			x32, y32 := toFloat32(x), toFloat32(y)
			Axpy(n, alpha, x, inc[0], y, inc[1])
			Axpy(n, float32(alpha), x32, inc[0], y32, inc[1])
			for i := range n {
				want := yv[i] + alpha*xv[i]
				if got := y[i*inc[1]]; !approxEqual64(got, want, epsilon64) {
					t.Errorf("n=%d inc=%v: y[%d] = %v, want %v", n, inc, i, got, want)
				}
				if got := y32[i*inc[1]]; !approxEqual64(float64(got), want, float64(epsilon32)) {
					t.Errorf("n=%d inc=%v: y32[%d] = %v, want %v", n, inc, i, got, want)
				}
			}
			checkGaps(t, y, inc[1])
		}
	}
}

func TestScal(t *testing.T) {
	for _, n := range []int{0, 3, 8, 19} {
		for _, inc := range []int{1, 4} {
			vals := make([]float64, n)
			for i := range vals {
				vals[i] = float64(i + 1)
			}
			x := strided(vals, inc)
			x32 := toFloat32(x)
			Scal(n, -2.0, x, inc)
			Scal(n, float32(-2), x32, inc)
			for i := range n {
				want := -2 * float64(i+1)
				if x[i*inc] != want || float64(x32[i*inc]) != want {
					t.Errorf("n=%d inc=%d: x[%d] = %v / %v, want %v", n, inc, i, x[i*inc], x32[i*inc], want)
				}
			}
			checkGaps(t, x, inc)
		}
	}
}

func TestScalZeroAlpha(t *testing.T) {
	x := strided([]float64{math.NaN(), math.Inf(1), 3}, 2)
	BaseScal(3, 0, x, 2)
	for i := range 3 {
		if x[i*2] != 0 {
			t.Errorf("x[%d] = %v, want 0", i, x[i*2])
		}
	}
	checkGaps(t, x, 2)

	y := []float32{float32(math.NaN()), 1, 2, 3, 4, 5, 6, 7, 8}
	Scal(len(y), 0, y, 1)
	for i, v := range y {
		if v != 0 {
			t.Errorf("y[%d] = %v, want 0", i, v)
		}
	}
}

func TestSwapCopy(t *testing.T) {
	x := strided([]float64{1, 2, 3}, 2)
	y := strided([]float64{4, 5, 6}, 3)
	BaseSwap(3, x, 2, y, 3)
	for i, want := range []float64{4, 5, 6} {
		if x[i*2] != want {
			t.Errorf("after Swap x[%d] = %v, want %v", i, x[i*2], want)
		}
	}
	for i, want := range []float64{1, 2, 3} {
		if y[i*3] != want {
			t.Errorf("after Swap y[%d] = %v, want %v", i, y[i*3], want)
		}
	}

	dst := make([]float64, 3)
	BaseCopy(3, x, 2, dst, 1)
	for i, want := range []float64{4, 5, 6} {
		if dst[i] != want {
			t.Errorf("Copy dst[%d] = %v, want %v", i, dst[i], want)
		}
	}
	checkGaps(t, x, 2)
	checkGaps(t, y, 3)
}

func TestRotg(t *testing.T) {
	tests := []struct {
		a, b       float64
		c, s, r, z float64
	}{
		{0, 0, 1, 0, 0, 0},
		{3, 4, 0.6, 0.8, 5, 1 / 0.6},
		{4, 3, 0.8, 0.6, 5, 0.6},
		{-4, 3, 0.8, -0.6, -5, -0.6},
		{0, 2, 0, 1, 2, 1},
		{2, 0, 1, 0, 2, 0},
	}
	for _, tt := range tests {
		c, s, r, z := BaseRotg(tt.a, tt.b)
		if !approxEqual64(c, tt.c, 1e-15) || !approxEqual64(s, tt.s, 1e-15) ||
			!approxEqual64(r, tt.r, 1e-15) || !approxEqual64(z, tt.z, 1e-15) {
			t.Errorf("Rotg(%v, %v) = (%v, %v, %v, %v), want (%v, %v, %v, %v)",
				tt.a, tt.b, c, s, r, z, tt.c, tt.s, tt.r, tt.z)
		}
		// The rotation must zero b.
		if got := -s*tt.a + c*tt.b; math.Abs(got) > 1e-14 {
			t.Errorf("Rotg(%v, %v) leaves %v in b", tt.a, tt.b, got)
		}
	}
}

func TestRot(t *testing.T) {
	c, s := 0.6, 0.8
	for _, inc := range [][2]int{{1, 1}, {2, 3}} {
		xv := []float64{1, 2, 3, 4}
		yv := []float64{5, 6, 7, 8}
		x, y := strided(xv, inc[0]), strided(yv, inc[1])
		BaseRot(4, x, inc[0], y, inc[1], c, s)
		for i := range xv {
			wantX := c*xv[i] + s*yv[i]
			wantY := c*yv[i] - s*xv[i]
			if !approxEqual64(x[i*inc[0]], wantX, 1e-15) || !approxEqual64(y[i*inc[1]], wantY, 1e-15) {
				t.Errorf("inc=%v: Rot pair %d = (%v, %v), want (%v, %v)", inc, i, x[i*inc[0]], y[i*inc[1]], wantX, wantY)
			}
		}
	}
}

func TestNrm2(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		want float64
	}{
		{"empty", nil, 0},
		{"single negative", []float64{-3}, 3},
		{"pythagoras", []float64{3, 4}, 5},
		{"zeros", []float64{0, 0, 0}, 0},
		{"huge", []float64{3e200, 4e200}, 5e200},
		{"tiny", []float64{3e-200, 4e-200}, 5e-200},
		{"inf", []float64{1, math.Inf(-1), 2}, math.Inf(1)},
		{"nan", []float64{1, math.NaN(), 2}, math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BaseNrm2(len(tt.x), tt.x, 1); !approxEqual64(got, tt.want, 1e-15) {
				t.Errorf("Nrm2(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
	x := strided([]float64{3, 4}, 5)
	if got := BaseNrm2(2, toFloat32(x), 5); got != 5 {
		t.Errorf("strided float32 Nrm2 = %v, want 5", got)
	}
}

func TestAsum(t *testing.T) {
	x := strided([]float64{1, -2, 3, -4}, 2)
	if got := BaseAsum(4, x, 2); got != 10 {
		t.Errorf("Asum = %v, want 10", got)
	}
	if got := BaseAsum[float32](0, nil, 1); got != 0 {
		t.Errorf("Asum empty = %v, want 0", got)
	}
}

func TestIamax(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		inc  int
		want int
	}{
		{"empty", nil, 1, 0},
		{"all zero", []float64{0, 0, 0}, 1, 0},
		{"first of ties", []float64{1, -7, 7, 2}, 1, 1},
		{"negative wins", []float64{1, 2, -9, 3}, 1, 2},
		{"strided", []float64{1, 2, -9, 3}, 3, 2},
		{"nan skipped", []float64{1, math.NaN(), 2}, 1, 2},
		{"leading nan", []float64{math.NaN(), 5, 2}, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := strided(tt.x, tt.inc)
			if got := BaseIamax(len(tt.x), x, tt.inc); got != tt.want {
				t.Errorf("Iamax(%v) = %d, want %d", tt.x, got, tt.want)
			}
		})
	}
}

type myFloat float64

// The generic entry points must agree with the base routines for both
// element types and for named types, which take the base path.
func TestGenericLevel1(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for _, n := range []int{0, 1, 7, 33} {
		xv, yv := randVals(rng, n), randVals(rng, n)
		x, y := strided(xv, 2), strided(yv, 3)

		if got, want := Nrm2(n, x, 2), BaseNrm2(n, x, 2); got != want {
			t.Errorf("n=%d: Nrm2 = %v, want %v", n, got, want)
		}
		if got, want := Asum(n, toFloat32(x), 2), BaseAsum(n, toFloat32(x), 2); got != want {
			t.Errorf("n=%d: Asum = %v, want %v", n, got, want)
		}
		if got, want := Iamax(n, x, 2), BaseIamax(n, x, 2); got != want {
			t.Errorf("n=%d: Iamax = %d, want %d", n, got, want)
		}

		gx, gy := append([]float64(nil), x...), append([]float64(nil), y...)
		hx, hy := append([]float64(nil), x...), append([]float64(nil), y...)
		Rot(n, gx, 2, gy, 3, 0.6, 0.8)
		BaseRot(n, hx, 2, hy, 3, 0.6, 0.8)
		Swap(n, gx, 2, gy, 3)
		BaseSwap(n, hx, 2, hy, 3)
		Copy(n, gx, 2, gy, 3)
		BaseCopy(n, hx, 2, hy, 3)
		for i := range gy {
			if gy[i] != hy[i] {
				t.Fatalf("n=%d: y[%d] = %v, want %v", n, i, gy[i], hy[i])
			}
		}
		checkGaps(t, gx, 2)
		checkGaps(t, gy, 3)
	}

	c, s, r, z := Rotg[float32](3, 4)
	wc, ws, wr, wz := BaseRotg[float32](3, 4)
	if c != wc || s != ws || r != wr || z != wz {
		t.Errorf("Rotg(3, 4) = (%v, %v, %v, %v), want (%v, %v, %v, %v)", c, s, r, z, wc, ws, wr, wz)
	}
	named := []myFloat{1, -4, 2}
	if got := Iamax(3, named, 1); got != 1 {
		t.Errorf("named Iamax = %d, want 1", got)
	}
	if got := Asum(3, named, 1); got != 7 {
		t.Errorf("named Asum = %v, want 7", got)
	}
}

func checkGaps(t *testing.T, x []float64, inc int) {
	t.Helper()
	for i, v := range x {
		if i%inc != 0 && v != -999 {
			t.Errorf("gap element %d modified: %v", i, v)
		}
	}
}

func toFloat32(x []float64) []float32 {
	out := make([]float32, len(x))
	for i, v := range x {
		out[i] = float32(v)
	}
	return out
}

func BenchmarkDot(b *testing.B) {
	for _, n := range []int{64, 1024, 16384} {
		x := make([]float32, n)
		y := make([]float32, n)
		for i := range x {
			x[i] = float32(i)
			y[i] = 1
		}
		b.Run(fmt.Sprintf("%s/n=%d", hwy.CurrentName(), n), func(b *testing.B) {
			for b.Loop() {
				DotFloat32(n, x, 1, y, 1)
			}
		})
	}
}
