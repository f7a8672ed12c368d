// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand/v2"
)

// BuilderOption customizes a constructor by mutating a builderConfig
// before the fixture is generated.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit random stream. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a PCG stream from seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewPCG(seed, seed^pcgStreamSalt))
	}
}

// WithNoise sets the Gaussian noise σ (>=0) added to series fixtures.
// Panics if sigma < 0.
func WithNoise(sigma float64) BuilderOption {
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		panic("builder: WithNoise(sigma<0)")
	}
	return func(c *builderConfig) {
		c.noiseSigma = sigma
	}
}

// WithDensity sets the probability p ∈ [0,1] that an off-diagonal SC
// entry is present. Panics outside [0,1].
func WithDensity(p float64) BuilderOption {
	if !(p >= 0 && p <= 1) {
		panic("builder: WithDensity(p not in [0,1])")
	}
	return func(c *builderConfig) {
		c.density = p
	}
}

// WithWeightRange sets the uniform range [lo, hi] of present SC weights.
// Panics unless 0 <= lo <= hi.
func WithWeightRange(lo, hi float64) BuilderOption {
	if !(lo >= 0 && hi >= lo) || math.IsInf(hi, 0) {
		panic("builder: WithWeightRange(invalid range)")
	}
	return func(c *builderConfig) {
		c.weightLo, c.weightHi = lo, hi
	}
}

// WithSymmetric mirrors the upper triangle of RandomSC into the lower one.
func WithSymmetric(sym bool) BuilderOption {
	return func(c *builderConfig) {
		c.symmetric = sym
	}
}

// WithFrequencyRange sets the band [lo, hi] (Hz) of natural frequencies.
// Panics unless 0 < lo <= hi.
func WithFrequencyRange(lo, hi float64) BuilderOption {
	if !(lo > 0 && hi >= lo) || math.IsInf(hi, 0) {
		panic("builder: WithFrequencyRange(invalid band)")
	}
	return func(c *builderConfig) {
		c.freqLo, c.freqHi = lo, hi
	}
}

// WithAmplitude sets the oscillation amplitude A (>0) for Oscillations.
// Panics if A <= 0.
func WithAmplitude(a float64) BuilderOption {
	if !(a > 0) || math.IsInf(a, 0) {
		panic("builder: WithAmplitude(A<=0)")
	}
	return func(c *builderConfig) {
		c.amplitude = a
	}
}
