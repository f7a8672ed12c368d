// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_series.go — multi-region series fixtures (n×T, rows = regions).
//
// Purpose:
//   • WhiteNoise:   a time-reversible baseline.
//   • LaggedChain:  a two-region process where region 0 drives region 1 one
//                   sample later, the canonical irreversible example.
//   • Oscillations: noisy sinusoids at given frequencies, sampled every TR.
//
// Determinism policy:
//   • All draws come from cfg.rng in row-major order.

package builder

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// tau is 2π.
const tau = 2.0 * math.Pi

// WhiteNoise returns an n×t matrix of i.i.d. N(0, σ²) samples.
//
// Errors: ErrTooFewRegions, ErrTooFewSamples.
// Complexity: O(n·t).
func WhiteNoise(n, t int, opts ...BuilderOption) (*mat.Dense, error) {
	if err := validateMin(MethodWhiteNoise, ErrTooFewRegions, n, MinRegions); err != nil {
		return nil, err
	}
	if err := validateMin(MethodWhiteNoise, ErrTooFewSamples, t, MinSamples); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	noise := cfg.gaussian(cfg.noiseSigma)

	x := mat.NewDense(n, t, nil)
	raw := x.RawMatrix().Data
	for k := range raw {
		raw[k] = noise.Rand()
	}

	return x, nil
}

// LaggedChain returns a 2×t series with x[t] i.i.d. N(0, σ²) and
//
//	y[t] = c·x[t−1] + sqrt(1 − c²)·ε[t],   y[0] = ε[0],
//
// so both regions have variance σ² and corr(x[t−1], y[t]) = c.
//
// Errors: ErrTooFewSamples if t < 2, ErrInvalidCoupling if |c| > 1.
// Complexity: O(t).
func LaggedChain(t int, c float64, opts ...BuilderOption) (*mat.Dense, error) {
	if err := validateMin(MethodLaggedChain, ErrTooFewSamples, t, 2); err != nil {
		return nil, err
	}
	if !(math.Abs(c) <= 1) {
		return nil, builderErrorf(MethodLaggedChain, ErrInvalidCoupling, "c=%g", c)
	}
	cfg := newBuilderConfig(opts...)
	noise := cfg.gaussian(cfg.noiseSigma)
	innov := math.Sqrt(1 - c*c)

	s := mat.NewDense(2, t, nil)
	xs, ys := s.RawRowView(0), s.RawRowView(1)
	for k := range xs {
		xs[k] = noise.Rand()
	}
	ys[0] = noise.Rand()
	for k := 1; k < t; k++ {
		ys[k] = c*xs[k-1] + innov*noise.Rand()
	}

	return s, nil
}

// Oscillations returns len(freqs)×t samples of A·sin(2π·f_i·k·TR + φ_i)
// plus N(0, σ²) noise, with a random phase φ_i per region.
//
// Errors: ErrTooFewRegions, ErrTooFewSamples, ErrInvalidSampling.
// Complexity: O(n·t).
func Oscillations(freqs []float64, t int, tr float64, opts ...BuilderOption) (*mat.Dense, error) {
	if err := validateMin(MethodOscillations, ErrTooFewRegions, len(freqs), MinRegions); err != nil {
		return nil, err
	}
	if err := validateMin(MethodOscillations, ErrTooFewSamples, t, MinSamples); err != nil {
		return nil, err
	}
	if err := validateFinitePositive(MethodOscillations, ErrInvalidSampling, "TR", tr); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	noise := cfg.gaussian(cfg.noiseSigma)

	x := mat.NewDense(len(freqs), t, nil)
	for i, f := range freqs {
		phase := tau * cfg.rng.Float64()
		row := x.RawRowView(i)
		for k := range row {
			row[k] = cfg.amplitude*math.Sin(tau*f*float64(k)*tr+phase) + noise.Rand()
		}
	}

	return x, nil
}
