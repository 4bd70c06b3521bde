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

// Package vec provides the Level-1 BLAS kernels: vector-vector operations
// over strided float32 and float64 data.
//
// Every operation takes an explicit element count n and a positive
// increment per vector; element i of x lives at x[i*incX]. Slices must be
// long enough for (n-1)*inc+1 elements. The kernels do not validate their
// arguments.
//
// # Dispatch
//
// The hot operations (Dot, Axpy, Scal) are reached through package-level
// function variables, e.g. DotFloat32, that start out as the portable Base
// implementations and are replaced at init time with vector versions when
// the CPU allows it. The generic wrappers (Dot, Axpy, Scal) pick the
// variable matching T on every call.
//
// The remaining operations are short, memory bound or numerically delicate
// (Rotg, Nrm2) and are only provided in portable form.
package vec
