// SPDX-License-Identifier: MIT
// Package: asymmetry
//
// asymmetry.go — antisymmetric difference and asymmetric pair count.

package asymmetry

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNonSquare indicates that EC is not n×n (or is empty).
	ErrNonSquare = errors.New("asymmetry: matrix is not square")

	// ErrNaNInf indicates a NaN or ±Inf entry or threshold.
	ErrNaNInf = errors.New("asymmetry: NaN or Inf encountered")
)

// DefaultThreshold is the fixed |D| threshold used when UseMean is false.
const DefaultThreshold = 0.012

// Options configures CountAsymmetricPairs.
//
// Fields:
//   - Threshold — compare |D| against a threshold; false counts every D ≠ 0.
//   - UseMean   — use mean |D| as the threshold instead of Value.
//   - Value     — fixed threshold (ignored when UseMean is true).
type Options struct {
	Threshold bool
	UseMean   bool
	Value     float64
}

// DefaultOptions returns {Threshold: true, UseMean: false, Value: 0.012}.
func DefaultOptions() Options {
	return Options{Threshold: true, UseMean: false, Value: DefaultThreshold}
}

// Difference returns D = EC − ECᵀ.
func Difference(ec mat.Matrix) (*mat.Dense, error) {
	const op = "Difference"
	if ec == nil {
		return nil, fmt.Errorf("%s: nil matrix: %w", op, ErrNonSquare)
	}
	if d, ok := ec.(*mat.Dense); ok && d == nil {
		return nil, fmt.Errorf("%s: nil matrix: %w", op, ErrNonSquare)
	}
	r, c := ec.Dims()
	if r != c || r == 0 {
		return nil, fmt.Errorf("%s: ec is %dx%d: %w", op, r, c, ErrNonSquare)
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = ec.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%s: ec[%d,%d]=%g: %w", op, i, j, v, ErrNaNInf)
			}
		}
	}

	d := mat.NewDense(r, r, nil)
	d.Sub(ec, ec.T())

	return d, nil
}

// CountAsymmetricPairs returns the number of region pairs whose directed
// weights differ (or differ by more than the threshold).
//
// Complexity: O(n²).
func CountAsymmetricPairs(ec mat.Matrix, opts Options) (int, error) {
	const op = "CountAsymmetricPairs"
	d, err := Difference(ec)
	if err != nil {
		return 0, err
	}
	raw := d.RawMatrix().Data
	abs := make([]float64, len(raw))
	for k, v := range raw {
		abs[k] = math.Abs(v)
	}

	var count int
	if !opts.Threshold {
		for _, v := range abs {
			if v != 0 {
				count++
			}
		}

		return count / 2, nil
	}

	thr := opts.Value
	if opts.UseMean {
		if thr, err = stats.Mean(abs); err != nil {
			return 0, fmt.Errorf("%s: mean |D|: %w", op, err)
		}
	}
	if math.IsNaN(thr) || math.IsInf(thr, 0) {
		return 0, fmt.Errorf("%s: threshold=%g: %w", op, thr, ErrNaNInf)
	}
	for _, v := range abs {
		if v > thr {
			count++
		}
	}

	return count / 2, nil
}
