// SPDX-License-Identifier: MIT
// Package: insideout
//
// insideout.go — forward/reverse information matrices and the
// irreversibility index.

package insideout

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrTooShort indicates fewer than three samples.
	ErrTooShort = errors.New("insideout: series too short")

	// ErrZeroVariance indicates a region that is constant in one half.
	ErrZeroVariance = errors.New("insideout: zero variance region")

	// ErrPerfectCorrelation indicates |ρ| ≥ 1, where the information is infinite.
	ErrPerfectCorrelation = errors.New("insideout: perfect lagged correlation")

	// ErrEmptySelection indicates that no entry of R lies above its minimum.
	ErrEmptySelection = errors.New("insideout: no entry above the minimum")

	// ErrNaNInf indicates a NaN or ±Inf input value.
	ErrNaNInf = errors.New("insideout: NaN or Inf encountered")
)

const (
	// MinSamples is the shortest series Analyze accepts.
	MinSamples = 3

	// perfectTol treats |ρ| within this distance of 1 as perfect.
	perfectTol = 1e-12
)

// Result carries the intermediate matrices of one analysis.
type Result struct {
	Forward   *mat.Dense // FCtf
	Reverse   *mat.Dense // FCtr
	IForward  *mat.Dense // −½·log(1 − FCtf²)
	IReverse  *mat.Dense // −½·log(1 − FCtr²)
	Reference *mat.Dense // (IForward − IReverse)²
	Index     float64
}

// Index returns the irreversibility index of series (n×T).
func Index(series mat.Matrix) (float64, error) {
	res, err := Analyze(series)
	if err != nil {
		return 0, err
	}

	return res.Index, nil
}

// Analyze computes every intermediate matrix and the index.
//
// Stage 1 (Validate): T ≥ 3, finite values.
// Stage 2 (Prepare): z-scored halves A and B.
// Stage 3 (Execute): lagged correlations and information matrices.
// Stage 4 (Finalize): mean of R over entries strictly above min(R).
//
// Errors: ErrTooShort, ErrNaNInf, ErrZeroVariance, ErrPerfectCorrelation,
// ErrEmptySelection.
// Complexity: O(n²·T).
func Analyze(series mat.Matrix) (*Result, error) {
	const op = "Analyze"

	// Stage 1: validate.
	if series == nil {
		return nil, fmt.Errorf("%s: nil series: %w", op, ErrTooShort)
	}
	if d, ok := series.(*mat.Dense); ok && d == nil {
		return nil, fmt.Errorf("%s: nil series: %w", op, ErrTooShort)
	}
	n, t := series.Dims()
	if n == 0 || t < MinSamples {
		return nil, fmt.Errorf("%s: %dx%d series, need T >= %d: %w", op, n, t, MinSamples, ErrTooShort)
	}

	// Stage 2: z-scored halves.
	x := mat.DenseCopyOf(series)
	a, err := zscore(op, x.Slice(0, n, 0, t-1).(*mat.Dense), "A")
	if err != nil {
		return nil, err
	}
	b, err := zscore(op, x.Slice(0, n, 1, t).(*mat.Dense), "B")
	if err != nil {
		return nil, err
	}

	// Stage 3: FCtf = A·Bᵀ/(T−1), FCtr its transpose.
	fwd := mat.NewDense(n, n, nil)
	fwd.Mul(a, b.T())
	fwd.Scale(1/float64(t-1), fwd)
	rev := mat.DenseCopyOf(fwd.T())

	iFwd, err := information(op, fwd, "forward")
	if err != nil {
		return nil, err
	}
	iRev, err := information(op, rev, "reverse")
	if err != nil {
		return nil, err
	}
	ref := mat.NewDense(n, n, nil)
	ref.Sub(iFwd, iRev)
	ref.MulElem(ref, ref)

	// Stage 4: mean above the minimum.
	idx, err := meanAboveMin(op, ref.RawMatrix().Data)
	if err != nil {
		return nil, err
	}

	return &Result{
		Forward:   fwd,
		Reverse:   rev,
		IForward:  iFwd,
		IReverse:  iRev,
		Reference: ref,
		Index:     idx,
	}, nil
}

// zscore returns a copy of h with every row standardized by its
// population mean and standard deviation.
func zscore(op string, h *mat.Dense, half string) (*mat.Dense, error) {
	n, t := h.Dims()
	z := mat.NewDense(n, t, nil)
	row := make([]float64, t)
	for i := 0; i < n; i++ {
		mat.Row(row, i, h)
		for k, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%s: %s[%d,%d]=%g: %w", op, half, i, k, v, ErrNaNInf)
			}
		}
		mean, std := stat.PopMeanStdDev(row, nil)
		if std == 0 {
			return nil, fmt.Errorf("%s: region %d in half %s: %w", op, i, half, ErrZeroVariance)
		}
		for k, v := range row {
			z.Set(i, k, (v-mean)/std)
		}
	}

	return z, nil
}

// information maps correlations to −½·log(1 − ρ²).
func information(op string, fc *mat.Dense, name string) (*mat.Dense, error) {
	n, _ := fc.Dims()
	out := mat.NewDense(n, n, nil)
	var i, j int
	var rho float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			rho = fc.At(i, j)
			if math.Abs(rho) >= 1-perfectTol {
				return nil, fmt.Errorf("%s: %s[%d,%d]=%g: %w", op, name, i, j, rho, ErrPerfectCorrelation)
			}
			out.Set(i, j, -0.5*math.Log(1-rho*rho))
		}
	}

	return out, nil
}

// meanAboveMin averages the values strictly greater than their minimum.
func meanAboveMin(op string, values []float64) (float64, error) {
	lo, err := stats.Min(values)
	if err != nil {
		return 0, fmt.Errorf("%s: min: %w", op, err)
	}
	above := make([]float64, 0, len(values))
	for _, v := range values {
		if v > lo {
			above = append(above, v)
		}
	}
	if len(above) == 0 {
		return 0, fmt.Errorf("%s: min=%g: %w", op, lo, ErrEmptySelection)
	}
	mean, err := stats.Mean(above)
	if err != nil {
		return 0, fmt.Errorf("%s: mean: %w", op, err)
	}

	return mean, nil
}
