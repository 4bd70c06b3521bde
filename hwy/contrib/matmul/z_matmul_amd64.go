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

// NOTE: This file is named "z_matmul_amd64.go" (starting with 'z')
// to ensure its init() runs AFTER dispatch.go.
// Go executes init() functions in lexicographic filename order within a package.
//
// Packing of B, the transposed-A packing and the edge kernel stay portable:
// they are a small share of the work and mostly strided.

package matmul

import "github.com/ajroetker/hwyblas/hwy"

func init() {
	switch hwy.CurrentLevel() {
	case hwy.DispatchAVX512:
		MicroKernelFloat32 = microKernelAVX512F32
		MicroKernelFloat64 = microKernelAVX512F64
		PackAFloat32 = packAAVX512F32
		PackAFloat64 = packAAVX512F64
	case hwy.DispatchAVX2:
		MicroKernelFloat32 = microKernelAVX2F32
		MicroKernelFloat64 = microKernelAVX2F64
		PackAFloat32 = packAAVX2F32
		PackAFloat64 = packAAVX2F64
	}
}
