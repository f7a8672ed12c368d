// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_sc.go — structural connectivity fixtures.
//
// Contract:
//   • Returned matrices are n×n, non-negative, with a zero diagonal.
//   • Strict determinism per (n, options).

package builder

import (
	"gonum.org/v1/gonum/mat"
)

// RandomSC returns a sparse SC: each off-diagonal entry is present with
// probability density and, when present, drawn from U[weightLo, weightHi].
// With WithSymmetric(true) (the default) only the upper triangle is drawn
// and mirrored.
//
// Errors: ErrTooFewRegions if n < MinRegions.
// Complexity: O(n²) time and memory.
func RandomSC(n int, opts ...BuilderOption) (*mat.Dense, error) {
	if err := validateMin(MethodRandomSC, ErrTooFewRegions, n, MinRegions); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	weight := cfg.uniform(cfg.weightLo, cfg.weightHi)

	sc := mat.NewDense(n, n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j || (cfg.symmetric && j < i) {
				continue
			}
			if cfg.rng.Float64() >= cfg.density {
				continue
			}
			w := weight.Rand()
			sc.Set(i, j, w)
			if cfg.symmetric {
				sc.Set(j, i, w)
			}
		}
	}

	return sc, nil
}

// RingSC returns the symmetric nearest-neighbour ring with weight w on
// every edge.
//
// Errors: ErrTooFewRegions if n < MinRingRegions.
// Complexity: O(n²) memory, O(n) writes.
func RingSC(n int, w float64) (*mat.Dense, error) {
	if err := validateMin(MethodRingSC, ErrTooFewRegions, n, MinRingRegions); err != nil {
		return nil, err
	}
	sc := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		sc.Set(i, next, w)
		sc.Set(next, i, w)
	}

	return sc, nil
}
