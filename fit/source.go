// SPDX-License-Identifier: MIT
// Package: fit
//
// source.go — providers of simulated connectivity statistics.

package fit

import (
	"context"

	"gonum.org/v1/gonum/mat"

	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/connectivity"
	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/hopf"
	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/linear"
)

// Source produces the model statistics of a candidate SC at a given lag
// (in samples).
type Source interface {
	Statistics(ctx context.Context, sc *mat.Dense, lag int) (connectivity.Summary, error)
}

// Target is the empirical side of a fit.
type Target struct {
	FC  *mat.Dense // empirical functional connectivity
	Cov *mat.Dense // empirical normalized lagged covariance
}

// TargetFromSeries derives a Target from an empirical n×T series.
func TargetFromSeries(series mat.Matrix, lag int) (Target, error) {
	sum, err := connectivity.Stats(series, lag)
	if err != nil {
		return Target{}, fitErrorf("TargetFromSeries", "lag %d", err, lag)
	}

	return Target{FC: sum.FC, Cov: sum.Normalized}, nil
}

// SimulatedSource simulates an unperturbed hopf ensemble per call and
// averages the per-run statistics.
type SimulatedSource struct {
	Freqs  []float64
	G      float64
	Params hopf.Params
}

// Statistics implements Source.
func (s *SimulatedSource) Statistics(ctx context.Context, sc *mat.Dense, lag int) (connectivity.Summary, error) {
	const op = "SimulatedSource.Statistics"
	ens, err := hopf.Simulate(ctx, s.Freqs, sc, s.G, hopf.NoPerturbation(), s.Params)
	if err != nil {
		return connectivity.Summary{}, fitErrorf(op, "simulate", err)
	}
	runs := make([]connectivity.Summary, ens.Runs())
	for r := range runs {
		if runs[r], err = connectivity.Stats(ens.Run(r), lag); err != nil {
			return connectivity.Summary{}, fitErrorf(op, "run %d", err, r)
		}
	}

	return connectivity.Average(runs...)
}

// LinearSource evaluates the closed-form linear-noise solution. The lag in
// samples is converted to time with TR.
type LinearSource struct {
	Freqs   []float64
	G       float64
	TR      float64
	Options []linear.Option
}

// Statistics implements Source.
func (s *LinearSource) Statistics(_ context.Context, sc *mat.Dense, lag int) (connectivity.Summary, error) {
	const op = "LinearSource.Statistics"
	opts := append([]linear.Option{linear.WithCoupling(s.G)}, s.Options...)
	res, err := linear.Solve(sc, s.Freqs, opts...)
	if err != nil {
		return connectivity.Summary{}, fitErrorf(op, "solve", err)
	}
	lagged, err := res.Lagged(float64(lag) * s.TR)
	if err != nil {
		return connectivity.Summary{}, fitErrorf(op, "lag %d", err, lag)
	}
	norm, err := connectivity.Normalize(lagged, res.CV)
	if err != nil {
		return connectivity.Summary{}, fitErrorf(op, "normalize", err)
	}

	return connectivity.Summary{
		FC:         res.FC,
		Cov:        res.CV,
		Lagged:     lagged,
		Normalized: norm,
		Lag:        lag,
	}, nil
}
