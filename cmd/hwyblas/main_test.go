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
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSizes(t *testing.T) {
	ns, err := parseSizes(" 8, 17 ,,64")
	require.NoError(t, err)
	assert.Equal(t, []int{8, 17, 64}, ns)

	_, err = parseSizes("8,x")
	var numErr *strconv.NumError
	require.ErrorAs(t, err, &numErr)

	_, err = parseSizes("0")
	require.Error(t, err)

	_, err = parseSizes("")
	require.Error(t, err)
}

func TestRunInfo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(config{Info: true}, &buf))
	out := buf.String()
	assert.Contains(t, out, "dispatch:")
	assert.Contains(t, out, "f32 Mr=16 Nr=4 Kc=128 Mc=256")
	assert.Contains(t, out, "f64 Mr=8 Nr=4 Kc=128 Mc=256")
}

func TestRunBench(t *testing.T) {
	for _, dtype := range []string{"f32", "f64"} {
		t.Run(dtype, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := config{Bench: true, Sizes: "5,33", DType: dtype, Reps: 1, Verify: true}
			require.NoError(t, run(cfg, &buf))
			assert.Contains(t, buf.String(), dtype+" gemm")
			assert.Contains(t, buf.String(), "33")
		})
	}
}

func TestRunBenchErrors(t *testing.T) {
	var buf bytes.Buffer
	err := run(config{Bench: true, Sizes: "4", DType: "f16"}, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "f16")

	err = run(config{Bench: true, Sizes: "-3", DType: "f64"}, &buf)
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestRunBatch(t *testing.T) {
	var buf bytes.Buffer
	cfg := config{Bench: true, Sizes: "12", DType: "f32", Reps: 1, Batch: 5, Workers: 2}
	require.NoError(t, run(cfg, &buf))
	assert.Contains(t, buf.String(), "batch of 5 f32 gemm n=12 on 2 workers")
}
