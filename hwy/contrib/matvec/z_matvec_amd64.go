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

// NOTE: This file is named "z_matvec_amd64.go" (starting with 'z')
// to ensure its init() runs AFTER dispatch.go.

package matvec

import "github.com/ajroetker/hwyblas/hwy"

func init() {
	// AVX-512 machines use the AVX2 versions as well.
	if hwy.CurrentLevel() < hwy.DispatchAVX2 {
		return
	}
	Combine4Float32 = combine4AVX2F32
	Combine4Float64 = combine4AVX2F64
	Combine1Float32 = combine1AVX2F32
	Combine1Float64 = combine1AVX2F64
}
