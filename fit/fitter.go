// SPDX-License-Identifier: MIT
// Package: fit
//
// fitter.go — the sequential fitting loop.

package fit

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/connectivity"
)

// Iteration records the fit quality of the SC that entered one step.
type Iteration struct {
	Index   int
	FCRMSE  float64 // RMSE(FCemp, FCsim)
	CovRMSE float64 // RMSE(Covemp, Covsim), normalized lagged covariance
	FCCorr  float64 // Pearson correlation of the FC upper triangles
}

// Option customizes a Fitter.
type Option func(*Fitter)

// WithLogger attaches a logger; iterations are logged at debug level.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("fit: WithLogger(nil)")
	}
	return func(f *Fitter) { f.logger = l }
}

// WithID overrides the generated fit identifier.
func WithID(id uuid.UUID) Option {
	return func(f *Fitter) { f.id = id }
}

// Fitter owns the current SC estimate and the iteration history. It is
// not safe for concurrent use.
type Fitter struct {
	id      uuid.UUID
	src     Source
	target  Target
	params  Params
	logger  *slog.Logger
	sc      *mat.Dense
	history []Iteration
}

// NewFitter validates its inputs and copies sc0.
func NewFitter(src Source, target Target, sc0 mat.Matrix, p Params, opts ...Option) (*Fitter, error) {
	const op = "NewFitter"
	if src == nil {
		return nil, fitErrorf(op, "source", ErrNilSource)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if _, err := connectivity.ValidateSameRegions(op, "sc0", sc0, "target.FC", target.FC); err != nil {
		return nil, err
	}
	if _, err := connectivity.ValidateSameRegions(op, "sc0", sc0, "target.Cov", target.Cov); err != nil {
		return nil, err
	}

	f := &Fitter{
		id:     uuid.New(),
		src:    src,
		target: target,
		params: p,
		logger: slog.New(slog.DiscardHandler),
		sc:     mat.DenseCopyOf(sc0),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.With("fit_id", f.id.String())

	return f, nil
}

// ID returns the fit identifier used in log records.
func (f *Fitter) ID() uuid.UUID { return f.id }

// SC returns a copy of the current estimate.
func (f *Fitter) SC() *mat.Dense { return mat.DenseCopyOf(f.sc) }

// History returns the iterations performed so far.
func (f *Fitter) History() []Iteration {
	out := make([]Iteration, len(f.history))
	copy(out, f.history)

	return out
}

// Step evaluates the current SC with the source, records the fit quality
// and replaces the SC with UpdateSC's result.
func (f *Fitter) Step(ctx context.Context) (Iteration, error) {
	const op = "Fitter.Step"
	idx := len(f.history)
	sim, err := f.src.Statistics(ctx, f.sc, f.params.Lag)
	if err != nil {
		return Iteration{}, fitErrorf(op, "iteration %d", err, idx)
	}

	it := Iteration{Index: idx}
	if it.FCRMSE, err = RMSE(f.target.FC, sim.FC); err != nil {
		return Iteration{}, err
	}
	if it.CovRMSE, err = RMSE(f.target.Cov, sim.Normalized); err != nil {
		return Iteration{}, err
	}
	if it.FCCorr, err = FitCorrelation(f.target.FC, sim.FC); err != nil {
		return Iteration{}, err
	}

	next, err := UpdateSC(f.sc, f.target.FC, sim.FC, f.target.Cov, sim.Normalized, f.params)
	if err != nil {
		return Iteration{}, fitErrorf(op, "iteration %d", err, idx)
	}
	f.sc = next
	f.history = append(f.history, it)

	f.logger.Debug("fit iteration",
		"iter", idx,
		"fc_rmse", it.FCRMSE,
		"cov_rmse", it.CovRMSE,
		"fc_corr", it.FCCorr,
	)

	return it, nil
}

// Run calls Step until MaxIter iterations were performed in this call or
// Stop returns true, and returns a copy of the final SC. Cancellation is
// checked before every iteration.
func (f *Fitter) Run(ctx context.Context) (*mat.Dense, error) {
	if f.params.MaxIter == 0 && f.params.Stop == nil {
		return nil, fitErrorf("Fitter.Run", "MaxIter=0, Stop=nil", ErrNoStopCondition)
	}
	f.logger.Info("fit started", "max_iter", f.params.MaxIter)

	for done := 0; f.params.MaxIter == 0 || done < f.params.MaxIter; done++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		it, err := f.Step(ctx)
		if err != nil {
			return nil, err
		}
		if f.params.Stop != nil && f.params.Stop(it) {
			f.logger.Info("fit converged", "iter", it.Index, "fc_corr", it.FCCorr)
			break
		}
	}

	return f.SC(), nil
}
