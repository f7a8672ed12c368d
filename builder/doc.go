// Package builder produces deterministic synthetic inputs for the Hopf
// toolkit: structural connectivity matrices, natural frequencies and
// multi-region time series with known temporal structure.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  seed, noise level, density, weight and frequency ranges.
//   - Connectivity fixtures:
//     – RandomSC:  sparse non-negative SC with a zero diagonal.
//     – RingSC:    nearest-neighbour ring with a constant weight.
//   - Frequency fixtures:
//     – Frequencies: one natural frequency per region, uniform in a band.
//   - Series fixtures (n×T, rows = regions):
//     – WhiteNoise:   i.i.d. Gaussian samples (time-reversible).
//     – LaggedChain:  y[t] = c·x[t−1] + sqrt(1−c²)·ε[t] (irreversible).
//     – Oscillations: noisy sinusoids sampled every TR.
//
// Guarantees:
//
//   - Determinism: the same (arguments, options) produce the same matrix;
//     randomness comes only from WithSeed / WithRand.
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; constructors themselves return sentinel errors.
//
// Example:
//
//	sc, _ := builder.RandomSC(90, builder.WithSeed(1), builder.WithDensity(0.2))
//	freqs, _ := builder.Frequencies(90, builder.WithSeed(2))
//	x, _ := builder.LaggedChain(5000, 0.8, builder.WithSeed(3))
package builder
