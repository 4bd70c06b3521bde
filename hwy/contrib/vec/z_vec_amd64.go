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

// NOTE: This file is named "z_vec_amd64.go" (starting with 'z')
// to ensure its init() runs AFTER dispatch.go.
// Go executes init() functions in lexicographic filename order within a package.

package vec

import "github.com/ajroetker/hwyblas/hwy"

func init() {
	if hwy.CurrentLevel() < hwy.DispatchAVX2 {
		return
	}
	DotFloat32 = dotAVX2F32
	DotFloat64 = dotAVX2F64
	AxpyFloat32 = axpyAVX2F32
	AxpyFloat64 = axpyAVX2F64
	ScalFloat32 = scalAVX2F32
	ScalFloat64 = scalAVX2F64
}
