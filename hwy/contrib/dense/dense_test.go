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

package dense

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGeneralColumnMajor(t *testing.T) {
	data := make([]float64, 12)
	for i := range data {
		data[i] = float64(i)
	}
	g := NewGeneral(3, 4, data)
	if g.Stride != 3 {
		t.Fatalf("Stride = %d, want 3", g.Stride)
	}
	for j := 0; j < 4; j++ {
		for i := 0; i < 3; i++ {
			if got, want := g.At(i, j), float64(i+3*j); got != want {
				t.Errorf("At(%d, %d) = %v, want %v", i, j, got, want)
			}
		}
	}
	g.Set(2, 1, -1)
	if data[5] != -1 {
		t.Errorf("Set(2, 1) wrote data[5] = %v, want -1", data[5])
	}
}

func TestGeneralSlice(t *testing.T) {
	data := make([]float32, 5*6)
	for i := range data {
		data[i] = float32(i)
	}
	g := General[float32]{Rows: 4, Cols: 6, Stride: 5, Data: data}
	sub := g.Slice(1, 3, 2, 5)
	if sub.Rows != 2 || sub.Cols != 3 || sub.Stride != 5 {
		t.Fatalf("sub = %dx%d stride %d, want 2x3 stride 5", sub.Rows, sub.Cols, sub.Stride)
	}
	for j := 0; j < sub.Cols; j++ {
		for i := 0; i < sub.Rows; i++ {
			if got, want := sub.At(i, j), g.At(i+1, j+2); got != want {
				t.Errorf("sub.At(%d, %d) = %v, want %v", i, j, got, want)
			}
		}
	}
	sub.Set(0, 0, 99)
	if g.At(1, 2) != 99 {
		t.Errorf("Slice does not share storage")
	}
	if len(sub.Data) != sub.MinLen() {
		t.Errorf("len(sub.Data) = %d, want %d", len(sub.Data), sub.MinLen())
	}

	empty := g.Slice(2, 2, 0, 6)
	if empty.Rows != 0 || empty.MinLen() != 0 {
		t.Errorf("empty slice = %+v", empty)
	}
}

func TestGeneralSlicePanics(t *testing.T) {
	g := NewGeneral(2, 2, make([]float64, 4))
	defer func() {
		if recover() == nil {
			t.Errorf("Slice out of range did not panic")
		}
	}()
	g.Slice(0, 3, 0, 1)
}

func TestNewGeneralShortData(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("NewGeneral with short data did not panic")
		}
	}()
	NewGeneral(3, 3, make([]float32, 8))
}

func TestColAndVector(t *testing.T) {
	g := NewGeneral(2, 3, []float64{1, 2, 3, 4, 5, 6})
	c := g.Col(1)
	if c.N != 2 || c.At(0) != 3 || c.At(1) != 4 {
		t.Errorf("Col(1) = %+v", c)
	}
	v := Vector[float64]{N: 3, Inc: 2, Data: g.Data}
	if v.At(2) != 5 {
		t.Errorf("strided At(2) = %v, want 5", v.At(2))
	}
	v.Set(1, 0)
	if g.At(0, 1) != 0 {
		t.Errorf("strided Set did not write through")
	}
}

func TestSliceOfSlice(t *testing.T) {
	data := make([]float64, 6*6)
	for i := range data {
		data[i] = float64(i)
	}
	g := NewGeneral(6, 6, data)

	got := g.Slice(1, 5, 1, 5).Slice(1, 3, 2, 4)
	want := General[float64]{Rows: 2, Cols: 2, Stride: 6, Data: data[2+3*6 : 2+4*6+2]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("nested Slice mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(g.Slice(2, 4, 3, 5), got); diff != "" {
		t.Errorf("nested Slice differs from direct Slice (-want +got):\n%s", diff)
	}
}
