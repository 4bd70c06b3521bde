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

// Command hwyblas reports the selected dispatch level and benchmarks the
// packed GEMM against gonum's pure Go BLAS.
//
// Usage:
//
//	hwyblas -info
//	hwyblas -bench -sizes 64,256,1024 -dtype f32
//	hwyblas -bench -verify -reps 5 -v
//	hwyblas -bench -sizes 128 -batch 64 -workers 8
//
// Setting HWY_NO_SIMD=1 forces the portable kernels.
package main

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	infoMode  = flag.Bool("info", false, "Print CPU features and the selected dispatch level")
	benchMode = flag.Bool("bench", false, "Benchmark square GEMM against gonum")
	sizes     = flag.String("sizes", "64,128,256,512", "Comma-separated square matrix sizes for -bench")
	dtype     = flag.String("dtype", "f64", "Element type for -bench (f32, f64)")
	reps      = flag.Int("reps", 3, "Repetitions per size; the fastest is reported")
	verify    = flag.Bool("verify", false, "Check every -bench result against gonum")
	batch     = flag.Int("batch", 0, "Also time this many independent GEMMs per size through a worker pool")
	workers   = flag.Int("workers", 0, "Worker pool size for -batch (0 means GOMAXPROCS)")
	verbose   = flag.Bool("v", false, "Verbose (debug) logging")
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Caller().Logger()

	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := config{
		Info:    *infoMode,
		Bench:   *benchMode,
		Sizes:   *sizes,
		DType:   *dtype,
		Reps:    *reps,
		Verify:  *verify,
		Batch:   *batch,
		Workers: *workers,
	}
	if !cfg.Info && !cfg.Bench {
		cfg.Info = true
	}
	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("hwyblas failed")
	}
}

type config struct {
	Info    bool
	Bench   bool
	Sizes   string
	DType   string
	Reps    int
	Verify  bool
	Batch   int
	Workers int
}

func run(cfg config, out io.Writer) error {
	if cfg.Info {
		printInfo(out)
	}
	if !cfg.Bench {
		return nil
	}
	ns, err := parseSizes(cfg.Sizes)
	if err != nil {
		return err
	}
	if cfg.Reps < 1 {
		cfg.Reps = 1
	}
	log.Info().Str("dtype", cfg.DType).Ints("sizes", ns).Int("reps", cfg.Reps).Msg("benchmarking gemm")
	results, err := benchGemm(cfg, ns)
	if err != nil {
		return err
	}
	printResults(out, cfg.DType, results)
	if cfg.Batch > 0 {
		printBatch(out, cfg, ns)
	}
	return nil
}
