// SPDX-License-Identifier: MIT
// Package: connectivity
//
// covariance.go — time-lagged covariance of a multi-region series.
//
// The matrix-product form below is numerically the direct definition
//
//	cov[i,j] = (1/T) Σ_{t} (x_i[t]−μ_i)(x_j[t+lag]−μ_j)
//
// with the sum over the valid overlap, only the summation order differs.

package connectivity

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const opTimeLaggedCovariance = "TimeLaggedCovariance"

// TimeLaggedCovariance returns the n×n lagged covariance of series (n×T).
//
// Entry (i,j) pairs region i at time t with region j at time t+lag. A
// negative lag pairs region i with the past of region j, so
// TimeLaggedCovariance(x, -k) is the transpose of TimeLaggedCovariance(x, k).
// With lag 0 the diagonal is the population variance of every region.
//
// Stage 1 (Validate): non-empty, finite series and |lag| < T.
// Stage 2 (Prepare): mean-centred row-major copy.
// Stage 3 (Execute): Xc[:, 0:T-lag] · Xc[:, lag:T]ᵀ / T.
//
// Errors: ErrNilMatrix, ErrEmptySeries, ErrNaNInf, ErrLagTooLarge.
// Complexity: O(n²·T) time, O(n·T + n²) memory.
func TimeLaggedCovariance(series mat.Matrix, lag int) (*mat.Dense, error) {
	// Stage 1: validate shape and lag domain.
	n, t, err := validateSeries(opTimeLaggedCovariance, series)
	if err != nil {
		return nil, err
	}
	abs := lag
	if abs < 0 {
		abs = -abs
	}
	if abs >= t {
		return nil, connErrorf(opTimeLaggedCovariance, "lag=%d with T=%d", ErrLagTooLarge, lag, t)
	}

	// Stage 2: centre every region on its own mean.
	xc := centerRows(series)

	// Stage 3: lagged product over the overlapping window.
	var lead, trail mat.Matrix
	if lag >= 0 {
		lead = xc.Slice(0, n, 0, t-lag)
		trail = xc.Slice(0, n, lag, t)
	} else {
		lead = xc.Slice(0, n, abs, t)
		trail = xc.Slice(0, n, 0, t-abs)
	}
	cov := mat.NewDense(n, n, nil)
	cov.Mul(lead, trail.T())
	cov.Scale(1/float64(t), cov)

	return cov, nil
}

// centerRows returns a dense copy of x with every row mean-centred.
// Assumes x was validated (non-empty).
func centerRows(x mat.Matrix) *mat.Dense {
	xc := mat.DenseCopyOf(x)
	n, _ := xc.Dims()
	for i := 0; i < n; i++ {
		row := xc.RawRowView(i)
		floats.AddConst(-stat.Mean(row, nil), row)
	}

	return xc
}
