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

package main

import (
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/hwyblas/hwy"
	"github.com/ajroetker/hwyblas/hwy/contrib/matmul"
)

func printInfo(w io.Writer) {
	fmt.Fprintf(w, "platform:  %s/%s, %d CPUs\n", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	fmt.Fprintf(w, "dispatch:  %s (%s), %d-byte vectors, FMA=%v\n", hwy.CurrentLevel(), hwy.CurrentName(), hwy.CurrentWidth(), hwy.HasFMA())
	if hwy.NoSimdEnv() {
		fmt.Fprintln(w, "           HWY_NO_SIMD is set")
	}
	switch runtime.GOARCH {
	case "amd64":
		fmt.Fprintf(w, "x86:       AVX2=%v AVX512F=%v FMA=%v\n", cpu.X86.HasAVX2, cpu.X86.HasAVX512F, cpu.X86.HasFMA)
	case "arm64":
		fmt.Fprintf(w, "arm64:     ASIMD=%v SVE=%v\n", cpu.ARM64.HasASIMD, cpu.ARM64.HasSVE)
	}

	p32 := matmul.CacheParamsFor[float32]()
	p64 := matmul.CacheParamsFor[float64]()
	fmt.Fprintf(w, "blocking:  f32 Mr=%d Nr=%d Kc=%d Mc=%d\n", p32.Mr, p32.Nr, p32.Kc, p32.Mc)
	fmt.Fprintf(w, "           f64 Mr=%d Nr=%d Kc=%d Mc=%d\n", p64.Mr, p64.Nr, p64.Kc, p64.Mc)
}
