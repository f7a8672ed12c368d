// SPDX-License-Identifier: MIT
// Package: linear
//
// options.go — functional options for Solve.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs;
//     Solve itself never panics on user data.
//   - Defaults: σ = 0.01, a = −0.02, G = 1, tolerance 1e-12, 100 doubling steps.

package linear

import "math"

// Option customizes Solve by mutating a solverConfig.
type Option func(*solverConfig)

// solverConfig aggregates every Solve knob. Passed by value.
type solverConfig struct {
	sigma       float64 // noise amplitude, Q = σ²I
	bifurcation float64 // a
	coupling    float64 // global coupling G scaling SC
	tol         float64 // relative increment at which doubling stops
	maxIter     int     // doubling step cap
}

const (
	defaultSigma       = 0.01
	defaultBifurcation = -0.02
	defaultCoupling    = 1.0
	defaultTol         = 1e-12
	defaultMaxIter     = 100
)

func newSolverConfig(opts ...Option) solverConfig {
	cfg := solverConfig{
		sigma:       defaultSigma,
		bifurcation: defaultBifurcation,
		coupling:    defaultCoupling,
		tol:         defaultTol,
		maxIter:     defaultMaxIter,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSigma sets the noise amplitude σ (>0); Q = σ²I.
func WithSigma(sigma float64) Option {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		panic("linear: WithSigma(sigma<=0)")
	}
	return func(c *solverConfig) { c.sigma = sigma }
}

// WithBifurcation sets the local bifurcation parameter a (finite).
func WithBifurcation(a float64) Option {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		panic("linear: WithBifurcation(non-finite)")
	}
	return func(c *solverConfig) { c.bifurcation = a }
}

// WithCoupling sets the global coupling G applied to SC before the
// Jacobian is formed, matching the simulator's G·SC coupling term.
func WithCoupling(g float64) Option {
	if math.IsNaN(g) || math.IsInf(g, 0) {
		panic("linear: WithCoupling(non-finite)")
	}
	return func(c *solverConfig) { c.coupling = g }
}

// WithTolerance sets the relative increment ‖ΔC‖/‖C‖ at which the
// doubling iteration is considered converged.
func WithTolerance(tol float64) Option {
	if !(tol > 0) {
		panic("linear: WithTolerance(tol<=0)")
	}
	return func(c *solverConfig) { c.tol = tol }
}

// WithMaxIter caps the number of doubling steps.
func WithMaxIter(n int) Option {
	if n <= 0 {
		panic("linear: WithMaxIter(n<=0)")
	}
	return func(c *solverConfig) { c.maxIter = n }
}
