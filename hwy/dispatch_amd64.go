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

//go:build amd64 && !goexperiment.simd

package hwy

import "golang.org/x/sys/cpu"

// Fallback for when GOEXPERIMENT=simd is not enabled: no vector kernels are
// compiled in, so the level stays scalar. FMA is still reported so callers
// can tell what a GOEXPERIMENT=simd build would get.

func init() {
	hasFMA = cpu.X86.HasAVX && cpu.X86.HasFMA
	setScalarMode()
}
