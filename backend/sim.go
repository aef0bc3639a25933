// SPDX-License-Identifier: MIT
// Package backend: the ideal statevector simulator backend.
package backend

import (
	"context"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/qweave/circuit"
	"github.com/katalvlaran/qweave/statevec"
)

// SimName is the registry name of the ideal simulator.
const SimName = "sim"

// DefaultSeed feeds the sampler when WithSeed is not given; runs are
// reproducible by default.
const DefaultSeed int64 = 1

// sampleChunk bounds how many shots are drawn between context checks.
const sampleChunk = 4096

// Sim is the ideal noiseless backend: it applies the circuit to
// |0...0⟩ with statevec and samples the exact distribution. Safe for
// concurrent Run calls; every run draws from its own source.
type Sim struct {
	name      string
	seed      int64
	maxQubits int
	logger    *zap.Logger
}

// SimOption adjusts a Sim under construction.
type SimOption func(*Sim)

// WithName overrides the registry name, for carrying several
// differently tuned simulators side by side.
func WithName(name string) SimOption {
	return func(s *Sim) {
		if name != "" {
			s.name = name
		}
	}
}

// WithSeed fixes the sampling seed. Equal seeds give equal counts.
func WithSeed(seed int64) SimOption {
	return func(s *Sim) { s.seed = seed }
}

// WithMaxQubits lowers the capacity cap. Values outside
// [1, statevec.MaxQubits] are ignored.
func WithMaxQubits(n int) SimOption {
	return func(s *Sim) {
		if n >= 1 && n <= statevec.MaxQubits {
			s.maxQubits = n
		}
	}
}

// WithLogger attaches a structured logger for per-run Debug records. A
// nil logger keeps the default nop.
func WithLogger(l *zap.Logger) SimOption {
	return func(s *Sim) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSim builds the simulator backend with reproducible defaults:
// name "sim", seed DefaultSeed, capacity statevec.MaxQubits, silent.
func NewSim(opts ...SimOption) *Sim {
	s := &Sim{
		name:      SimName,
		seed:      DefaultSeed,
		maxQubits: statevec.MaxQubits,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the registry name.
func (s *Sim) Name() string { return s.name }

// MaxQubits returns the widest register this backend accepts.
func (s *Sim) MaxQubits() int { return s.maxQubits }

// Simulator reports true.
func (s *Sim) Simulator() bool { return true }

// Run simulates c and samples its outcome distribution shots times.
// Validation order: nil circuit, shot count, capacity, then context.
// Cancellation is re-checked between sampling batches of sampleChunk
// shots; a canceled run wraps ctx.Err().
//
// Complexity: O(len(gates)·2ⁿ + shots·n).
func (s *Sim) Run(ctx context.Context, c *circuit.Circuit, shots int) (*Result, error) {
	start := time.Now()
	if c == nil {
		return nil, ErrNilCircuit
	}
	if shots < 1 {
		return nil, ErrShots
	}
	if c.Qubits() > s.maxQubits {
		return nil, errors.Wrapf(ErrTooLarge, "%d qubits over cap %d", c.Qubits(), s.maxQubits)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "backend: run canceled")
	}

	v, err := statevec.New(c.Qubits())
	if err != nil {
		return nil, errors.Wrap(err, "backend: allocate state")
	}
	if err = v.ApplyCircuit(c); err != nil {
		return nil, errors.Wrap(err, "backend: apply circuit")
	}

	rng := rand.New(rand.NewSource(s.seed))
	counts := make(map[string]int)
	for done := 0; done < shots; {
		if err = ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "backend: run canceled")
		}
		n := shots - done
		if n > sampleChunk {
			n = sampleChunk
		}
		var part map[string]int
		if part, err = v.Sample(rng, n); err != nil {
			return nil, errors.Wrap(err, "backend: sample")
		}
		for k, hits := range part {
			counts[k] += hits
		}
		done += n
	}

	res := &Result{Backend: s.name, Shots: shots, Counts: counts, Elapsed: time.Since(start)}
	s.logger.Debug("run complete",
		zap.String("backend", s.name),
		zap.Int("qubits", c.Qubits()),
		zap.Int("gates", c.Len()),
		zap.Int("shots", shots),
		zap.Duration("elapsed", res.Elapsed),
	)

	return res, nil
}
