// SPDX-License-Identifier: MIT
// Package: fit
//
// params.go — fitting parameters and defaults.

package fit

import "math"

// StopFunc is consulted after every iteration; returning true ends Run.
type StopFunc func(Iteration) bool

// Params controls UpdateSC and the Fitter loop.
type Params struct {
	EpsFC        float64  // step size of the FC difference
	EpsCov       float64  // step size of the normalized lagged covariance difference
	OnlyPositive bool     // clamp negative entries to zero
	NormTarget   float64  // max|SC| after every update
	Lag          int      // lag in samples of the covariance term
	MaxIter      int      // iteration cap for Run; 0 = unbounded
	Stop         StopFunc // optional convergence test
}

// Defaults.
const (
	DefaultEpsFC      = 4e-4
	DefaultEpsCov     = 1e-4
	DefaultNormTarget = 0.2
	DefaultLag        = 1
	DefaultMaxIter    = 100
)

// DefaultParams returns the documented defaults (OnlyPositive = true).
func DefaultParams() Params {
	return Params{
		EpsFC:        DefaultEpsFC,
		EpsCov:       DefaultEpsCov,
		OnlyPositive: true,
		NormTarget:   DefaultNormTarget,
		Lag:          DefaultLag,
		MaxIter:      DefaultMaxIter,
	}
}

// Validate checks the parameter domain.
func (p Params) Validate() error {
	const op = "Params.Validate"
	for _, v := range []float64{p.EpsFC, p.EpsCov, p.NormTarget} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fitErrorf(op, "non-finite step or target %g", ErrNaNInf, v)
		}
	}
	switch {
	case p.EpsFC < 0 || p.EpsCov < 0:
		return fitErrorf(op, "EpsFC=%g EpsCov=%g", ErrInvalidParams, p.EpsFC, p.EpsCov)
	case p.NormTarget <= 0:
		return fitErrorf(op, "NormTarget=%g", ErrInvalidParams, p.NormTarget)
	case p.MaxIter < 0:
		return fitErrorf(op, "MaxIter=%d", ErrInvalidParams, p.MaxIter)
	case p.Lag < 0:
		return fitErrorf(op, "Lag=%d", ErrInvalidParams, p.Lag)
	}

	return nil
}
