// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command vebbench drives a vebset.Set through a random workload of
// inserts, erases, and successor/predecessor queries, cross-checking every
// query against a plain sorted-slice reference implementation.
//
// It is an external collaborator in the sense of the package's own design:
// the core vebset package has no CLI, no logging, and no concurrency of its
// own. vebbench is where those ambient concerns live, each worker goroutine
// owning (and only ever touching) its own Set.
package main

import (
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		flagLevel   string
		flagOps     int
		flagWorkers int
		flagSeed    int64
	)

	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.IntVarP(&flagOps, "ops", "n", 100_000, "number of operations per worker")
	pflag.IntVarP(&flagWorkers, "workers", "w", runtime.NumCPU(), "number of independent worker sets run concurrently")
	pflag.Int64VarP(&flagSeed, "seed", "s", 42, "base PRNG seed; worker i uses seed+i")
	pflag.Parse()

	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)

	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)

	log.Info().
		Int("ops", flagOps).
		Int("workers", flagWorkers).
		Int64("seed", flagSeed).
		Msg("starting vebset fuzz/bench run")

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		combined error
	)

	start := time.Now()
	for i := 0; i < flagWorkers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			w := newWorker(flagSeed+int64(worker), flagOps)
			defer w.set.Destroy()
			if err := w.run(); err != nil {
				mu.Lock()
				combined = multierror.Append(combined, err)
				mu.Unlock()
				log.Error().Int("worker", worker).Err(err).Msg("worker found an invariant violation")
				return
			}
			log.Debug().Int("worker", worker).Int("final_size", w.set.Size()).Msg("worker finished cleanly")
		}(i)
	}
	wg.Wait()
	elapsed := time.Since(start)

	log.Info().
		Dur("elapsed", elapsed).
		Float64("ops_per_sec", float64(flagOps*flagWorkers)/elapsed.Seconds()).
		Msg("run complete")

	if combined != nil {
		log.Error().Err(combined).Msg("one or more workers found invariant violations")
		return failure
	}
	return success
}
