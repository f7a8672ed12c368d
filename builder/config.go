// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng         = PCG(defaultSeed)  (fixed stream unless seeded)
//   • noiseSigma  = 1.0
//   • density     = 0.3
//   • weights     = U[0.05, 0.2]
//   • symmetric   = true
//   • frequencies = U[0.04, 0.07] Hz (typical BOLD band)
//   • amplitude   = 1.0

package builder

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	rng *rand.Rand

	noiseSigma float64 // >=0

	density            float64 // ∈ [0,1]
	weightLo, weightHi float64 // 0 <= lo <= hi
	symmetric          bool

	freqLo, freqHi float64 // 0 < lo <= hi
	amplitude      float64 // >0
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultSeed       = uint64(1)
	pcgStreamSalt     = uint64(0x9e3779b97f4a7c15)
	defaultNoiseSigma = 1.0
	defaultDensity    = 0.3
	defaultWeightLo   = 0.05
	defaultWeightHi   = 0.2
	defaultSymmetric  = true
	defaultFreqLo     = 0.04
	defaultFreqHi     = 0.07
	defaultAmplitude  = 1.0
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:        rand.New(rand.NewPCG(defaultSeed, defaultSeed^pcgStreamSalt)),
		noiseSigma: defaultNoiseSigma,
		density:    defaultDensity,
		weightLo:   defaultWeightLo,
		weightHi:   defaultWeightHi,
		symmetric:  defaultSymmetric,
		freqLo:     defaultFreqLo,
		freqHi:     defaultFreqHi,
		amplitude:  defaultAmplitude,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// gaussian returns a N(0, σ) sampler drawing from the config stream.
func (c builderConfig) gaussian(sigma float64) distuv.Normal {
	return distuv.Normal{Mu: 0, Sigma: sigma, Src: c.rng}
}

// uniform returns a U[lo, hi] sampler drawing from the config stream.
func (c builderConfig) uniform(lo, hi float64) distuv.Uniform {
	return distuv.Uniform{Min: lo, Max: hi, Src: c.rng}
}
