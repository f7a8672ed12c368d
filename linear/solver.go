// SPDX-License-Identifier: MIT
// Package: linear
//
// solver.go — Solve and the Result accessors (FC, CV, lagged covariance,
// residual).

package linear

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/connectivity"
)

const (
	opSolve  = "Solve"
	opLagged = "Lagged"
)

// Result is the stationary linear-noise solution of one network.
type Result struct {
	FC  *mat.Dense // n×n correlation of the x block
	CV  *mat.Dense // n×n covariance of the x block
	Cov *mat.Dense // 2n×2n covariance of [x; y]
	A   *mat.Dense // 2n×2n Jacobian
	Q   *mat.Dense // 2n×2n noise covariance

	n int
}

// Regions returns the number of regions n.
func (r *Result) Regions() int { return r.n }

// Solve builds the Jacobian of (G·sc, freqs, a), solves the Lyapunov
// equation with Q = σ²I and extracts FC and CV of the x block.
//
// Stage 1 (Validate): square finite SC, one finite frequency per region.
// Stage 2 (Prepare): Jacobian of G·SC.
// Stage 3 (Execute): stability check and Lyapunov solve.
// Stage 4 (Finalize): correlation of the full covariance, top-left block.
//
// Errors: shape/finite sentinels, ErrUnstable, ErrNoSolution.
func Solve(sc mat.Matrix, freqs []float64, opts ...Option) (*Result, error) {
	cfg := newSolverConfig(opts...)

	n, err := validateNetwork(opSolve, sc, freqs)
	if err != nil {
		return nil, err
	}
	scaled := mat.DenseCopyOf(sc)
	scaled.Scale(cfg.coupling, scaled)
	a, err := Jacobian(scaled, freqs, cfg.bifurcation)
	if err != nil {
		return nil, linErrorf(opSolve, "jacobian", err)
	}

	q := mat.NewDense(2*n, 2*n, nil)
	s2 := cfg.sigma * cfg.sigma
	for i := 0; i < 2*n; i++ {
		q.Set(i, i, s2)
	}

	cov, err := solveLyapunov(a, q, cfg.tol, cfg.maxIter)
	if err != nil {
		return nil, linErrorf(opSolve, "G=%g a=%g", err, cfg.coupling, cfg.bifurcation)
	}

	fcFull, err := connectivity.CorrelationFromCovariance(cov)
	if err != nil {
		return nil, linErrorf(opSolve, "correlation: %v", ErrNoSolution, err)
	}

	return &Result{
		FC:  mat.DenseCopyOf(fcFull.Slice(0, n, 0, n)),
		CV:  mat.DenseCopyOf(cov.Slice(0, n, 0, n)),
		Cov: cov,
		A:   a,
		Q:   q,
		n:   n,
	}, nil
}

// Lagged returns the n×n x-block of the stationary lagged covariance
// E[z(t)·z(t+τ)ᵀ] = C·expm(A·τ)ᵀ. Entry (i,j) pairs region i at t with
// region j at t+τ; a negative τ returns the transpose of Lagged(−τ).
func (r *Result) Lagged(tau float64) (*mat.Dense, error) {
	if math.IsNaN(tau) || math.IsInf(tau, 0) {
		return nil, linErrorf(opLagged, "tau=%g", ErrNaNInf, tau)
	}
	if tau < 0 {
		pos, err := r.Lagged(-tau)
		if err != nil {
			return nil, err
		}

		return mat.DenseCopyOf(pos.T()), nil
	}

	m, _ := r.A.Dims()
	at := mat.NewDense(m, m, nil)
	at.Scale(tau, r.A)
	var e mat.Dense
	e.Exp(at)
	full := mat.NewDense(m, m, nil)
	full.Mul(r.Cov, e.T())

	return mat.DenseCopyOf(full.Slice(0, r.n, 0, r.n)), nil
}

// NormalizedLagged returns Lagged(τ) ⊙ SigmaRatio(CV), the dimensionless
// lagged covariance compared against empirical data during fitting.
func (r *Result) NormalizedLagged(tau float64) (*mat.Dense, error) {
	lagged, err := r.Lagged(tau)
	if err != nil {
		return nil, err
	}

	return connectivity.Normalize(lagged, r.CV)
}

// Residual returns ‖A·C + C·Aᵀ + Q‖_F, zero for an exact solution.
func (r *Result) Residual() float64 {
	m, _ := r.A.Dims()
	lhs := mat.NewDense(m, m, nil)
	lhs.Mul(r.A, r.Cov)
	rhs := mat.NewDense(m, m, nil)
	rhs.Mul(r.Cov, r.A.T())
	lhs.Add(lhs, rhs)
	lhs.Add(lhs, r.Q)

	return mat.Norm(lhs, 2)
}
