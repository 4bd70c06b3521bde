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

// Package dense provides borrowed, column-major views over caller-owned
// slices. Views never allocate or copy; they describe where element (i, j)
// lives inside Data so kernels can be handed a sub-block of a larger matrix.
package dense

import (
	"fmt"

	"github.com/ajroetker/hwyblas/hwy"
)

// General is a column-major view of a Rows×Cols matrix.
// Element (i, j) is stored at Data[i+j*Stride], with Stride >= Rows.
type General[T hwy.Floats] struct {
	Rows, Cols int
	Stride     int
	Data       []T
}

// NewGeneral wraps data as a rows×cols matrix with a tight stride.
// It panics if data is too short.
func NewGeneral[T hwy.Floats](rows, cols int, data []T) General[T] {
	g := General[T]{Rows: rows, Cols: cols, Stride: max(rows, 1), Data: data}
	if len(data) < g.MinLen() {
		panic(fmt.Sprintf("dense: data length %d too short for %dx%d matrix", len(data), rows, cols))
	}
	return g
}

// MinLen is the smallest len(Data) that can back the view.
func (g General[T]) MinLen() int {
	if g.Rows == 0 || g.Cols == 0 {
		return 0
	}
	return (g.Cols-1)*g.Stride + g.Rows
}

// At returns element (i, j).
func (g General[T]) At(i, j int) T {
	return g.Data[i+j*g.Stride]
}

// Set stores v at (i, j).
func (g General[T]) Set(i, j int, v T) {
	g.Data[i+j*g.Stride] = v
}

// Slice returns the sub-view of rows [i, k) and columns [j, l). The result
// shares storage with g.
func (g General[T]) Slice(i, k, j, l int) General[T] {
	if i < 0 || k < i || k > g.Rows || j < 0 || l < j || l > g.Cols {
		panic(fmt.Sprintf("dense: slice [%d:%d, %d:%d] out of range for %dx%d", i, k, j, l, g.Rows, g.Cols))
	}
	sub := General[T]{Rows: k - i, Cols: l - j, Stride: g.Stride}
	if sub.Rows == 0 || sub.Cols == 0 {
		return sub
	}
	off := i + j*g.Stride
	sub.Data = g.Data[off : off+sub.MinLen()]
	return sub
}

// Col returns column j as a unit-stride vector view.
func (g General[T]) Col(j int) Vector[T] {
	if j < 0 || j >= g.Cols {
		panic(fmt.Sprintf("dense: column %d out of range for %d columns", j, g.Cols))
	}
	off := j * g.Stride
	return Vector[T]{N: g.Rows, Inc: 1, Data: g.Data[off : off+g.Rows]}
}

// Vector is a strided view of N elements; element i is Data[i*Inc].
type Vector[T hwy.Floats] struct {
	N    int
	Inc  int
	Data []T
}

// At returns element i.
func (v Vector[T]) At(i int) T {
	return v.Data[i*v.Inc]
}

// Set stores x at element i.
func (v Vector[T]) Set(i int, x T) {
	v.Data[i*v.Inc] = x
}
