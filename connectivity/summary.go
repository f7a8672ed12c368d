// SPDX-License-Identifier: MIT
// Package: connectivity
//
// summary.go — the four connectivity statistics of one series, computed
// together, and their elementwise ensemble average.

package connectivity

import (
	"gonum.org/v1/gonum/mat"
)

const (
	opStats   = "Stats"
	opAverage = "Average"
)

// Summary holds the connectivity statistics of one series at one lag.
type Summary struct {
	FC         *mat.Dense // correlation matrix
	Cov        *mat.Dense // lag-0 covariance
	Lagged     *mat.Dense // covariance at Lag
	Normalized *mat.Dense // Lagged ⊙ SigmaRatio(Cov)
	Lag        int
}

// Regions returns the number of regions summarized, or 0 for an empty Summary.
func (s Summary) Regions() int {
	if s.FC == nil {
		return 0
	}
	n, _ := s.FC.Dims()

	return n
}

// Stats computes FC, the lag-0 covariance, the lagged covariance and the
// normalized lagged covariance of series in a single pass over the data.
//
// Errors: everything TimeLaggedCovariance returns, ErrNegativeVariance
// from the correlation step and ErrZeroVariance from the normalization.
// Complexity: O(n²·T).
func Stats(series mat.Matrix, lag int) (Summary, error) {
	cov, err := TimeLaggedCovariance(series, 0)
	if err != nil {
		return Summary{}, connErrorf(opStats, "lag 0", err)
	}
	lagged := cov
	if lag != 0 {
		if lagged, err = TimeLaggedCovariance(series, lag); err != nil {
			return Summary{}, connErrorf(opStats, "lag %d", err, lag)
		}
	}
	fc, err := CorrelationFromCovariance(cov)
	if err != nil {
		return Summary{}, connErrorf(opStats, "correlation", err)
	}
	norm, err := Normalize(lagged, cov)
	if err != nil {
		return Summary{}, connErrorf(opStats, "normalize", err)
	}

	return Summary{
		FC:         fc,
		Cov:        cov,
		Lagged:     mat.DenseCopyOf(lagged),
		Normalized: norm,
		Lag:        lag,
	}, nil
}

// Average returns the elementwise mean of every field over items.
// All items must share the same region count and lag.
//
// Errors: ErrNoSummaries for an empty call, ErrDimensionMismatch when
// region counts or lags disagree.
func Average(items ...Summary) (Summary, error) {
	if len(items) == 0 {
		return Summary{}, connErrorf(opAverage, "0 items", ErrNoSummaries)
	}
	n := items[0].Regions()
	if n == 0 {
		return Summary{}, connErrorf(opAverage, "item 0", ErrNilMatrix)
	}
	lag := items[0].Lag

	out := Summary{
		FC:         mat.NewDense(n, n, nil),
		Cov:        mat.NewDense(n, n, nil),
		Lagged:     mat.NewDense(n, n, nil),
		Normalized: mat.NewDense(n, n, nil),
		Lag:        lag,
	}
	for k, it := range items {
		if it.Regions() != n || it.Lag != lag {
			return Summary{}, connErrorf(opAverage, "item %d has %d regions at lag %d, want %d at lag %d",
				ErrDimensionMismatch, k, it.Regions(), it.Lag, n, lag)
		}
		out.FC.Add(out.FC, it.FC)
		out.Cov.Add(out.Cov, it.Cov)
		out.Lagged.Add(out.Lagged, it.Lagged)
		out.Normalized.Add(out.Normalized, it.Normalized)
	}
	inv := 1 / float64(len(items))
	out.FC.Scale(inv, out.FC)
	out.Cov.Scale(inv, out.Cov)
	out.Lagged.Scale(inv, out.Lagged)
	out.Normalized.Scale(inv, out.Normalized)

	return out, nil
}
