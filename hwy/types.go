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

// Package hwy detects the SIMD capabilities of the running CPU and records
// which kernel family the contrib packages route to.
//
// Detection happens once, in package initialization. Kernel packages keep
// their per-operation implementations in package-level function variables
// that default to portable Go and are overridden at init time when
// CurrentLevel allows it:
//
//	import "github.com/ajroetker/hwyblas/hwy"
//
//	fmt.Println(hwy.CurrentName()) // "avx2", "avx512" or "scalar"
//
// Setting HWY_NO_SIMD=1 forces the portable kernels.
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}
