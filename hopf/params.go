// SPDX-License-Identifier: MIT
// Package: hopf
//
// params.go — simulation parameters and their deterministic defaults.

package hopf

import (
	"math"
)

// Params controls one call to Simulate. Durations are in model time units
// (seconds when frequencies are in Hz).
type Params struct {
	Runs        int     // ensemble size (>0)
	PrePert     float64 // recorded duration before the perturbation window
	PostPert    float64 // recorded duration after the perturbation window
	TR          float64 // sampling interval
	Dt          float64 // integration step
	Transient   float64 // discarded warm-up duration
	Noise       float64 // σ of the additive Gaussian noise
	Bifurcation float64 // baseline a for every region
	Seed        uint64  // base seed; run r uses the stream (Seed, r)
	Workers     int     // parallel runs; 0 → GOMAXPROCS
}

// Defaults.
const (
	DefaultRuns        = 10
	DefaultPrePert     = 50.0
	DefaultPostPert    = 50.0
	DefaultTR          = 0.1
	DefaultDt          = 0.025
	DefaultTransient   = 2000.0
	DefaultNoise       = 6e-4
	DefaultBifurcation = -0.02
	initialState       = 0.1
)

// DefaultParams returns the documented defaults.
func DefaultParams() Params {
	return Params{
		Runs:        DefaultRuns,
		PrePert:     DefaultPrePert,
		PostPert:    DefaultPostPert,
		TR:          DefaultTR,
		Dt:          DefaultDt,
		Transient:   DefaultTransient,
		Noise:       DefaultNoise,
		Bifurcation: DefaultBifurcation,
	}
}

// Stride returns the number of integration steps between two samples.
func (p Params) Stride() int {
	return int(math.Round(p.TR / p.Dt))
}

// TransientSteps returns the number of discarded warm-up steps. The
// warm-up covers [0, Transient] inclusive.
func (p Params) TransientSteps() int {
	return int(math.Round(p.Transient/p.Dt)) + 1
}

// Samples converts a duration into a sample count: int(duration/TR).
func (p Params) Samples(duration float64) int {
	return int(duration / p.TR)
}

// Validate checks the parameter domain.
func (p Params) Validate() error {
	const op = "Params.Validate"
	fields := []struct {
		name string
		v    float64
	}{
		{"PrePert", p.PrePert}, {"PostPert", p.PostPert}, {"TR", p.TR}, {"Dt", p.Dt},
		{"Transient", p.Transient}, {"Noise", p.Noise}, {"Bifurcation", p.Bifurcation},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return hopfErrorf(op, "%s=%g", ErrNaNInf, f.name, f.v)
		}
	}
	switch {
	case p.Runs <= 0:
		return hopfErrorf(op, "Runs=%d", ErrInvalidParams, p.Runs)
	case p.Dt <= 0:
		return hopfErrorf(op, "Dt=%g", ErrInvalidParams, p.Dt)
	case p.TR <= 0:
		return hopfErrorf(op, "TR=%g", ErrInvalidParams, p.TR)
	case p.PrePert < 0 || p.PostPert < 0 || p.Transient < 0:
		return hopfErrorf(op, "negative duration (pre=%g post=%g transient=%g)",
			ErrInvalidParams, p.PrePert, p.PostPert, p.Transient)
	case p.Noise < 0:
		return hopfErrorf(op, "Noise=%g", ErrInvalidParams, p.Noise)
	case p.Workers < 0:
		return hopfErrorf(op, "Workers=%d", ErrInvalidParams, p.Workers)
	case p.Stride() < 1:
		return hopfErrorf(op, "TR=%g shorter than Dt=%g", ErrInvalidParams, p.TR, p.Dt)
	}

	return nil
}
