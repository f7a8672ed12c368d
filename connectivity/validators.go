// SPDX-License-Identifier: MIT
// Package: connectivity
//
// validators.go — canonical shape/nil/finite checks shared by all
// statistics. Each composite check runs in a fixed order:
// nil → empty → shape → finite values.

package connectivity

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// isNil reports whether m is nil, including a typed-nil *mat.Dense.
func isNil(m mat.Matrix) bool {
	if m == nil {
		return true
	}
	if d, ok := m.(*mat.Dense); ok && d == nil {
		return true
	}

	return false
}

// validateSeries checks an n×T series and returns its dimensions.
// Complexity: O(n·T) for the finite-value scan.
func validateSeries(op string, x mat.Matrix) (int, int, error) {
	if isNil(x) {
		return 0, 0, connErrorf(op, "series", ErrNilMatrix)
	}
	n, t := x.Dims()
	if n == 0 || t == 0 {
		return 0, 0, connErrorf(op, "series is %dx%d", ErrEmptySeries, n, t)
	}
	if err := validateFinite(op, "series", x); err != nil {
		return 0, 0, err
	}

	return n, t, nil
}

// validateSquare checks that m is a non-empty n×n matrix and returns n.
func validateSquare(op, name string, m mat.Matrix) (int, error) {
	if isNil(m) {
		return 0, connErrorf(op, "%s", ErrNilMatrix, name)
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return 0, connErrorf(op, "%s is %dx%d", ErrEmptySeries, name, r, c)
	}
	if r != c {
		return 0, connErrorf(op, "%s is %dx%d", ErrNonSquare, name, r, c)
	}

	return r, nil
}

// validateFinite rejects NaN and ±Inf entries, naming the first offender.
func validateFinite(op, name string, m mat.Matrix) error {
	r, c := m.Dims()
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return connErrorf(op, "%s[%d,%d]=%g", ErrNaNInf, name, i, j, v)
			}
		}
	}

	return nil
}

// ValidateSameRegions checks that a and b are square with the same region
// count. It is exported for packages that compare connectivity matrices
// (fitting, asymmetry) so that every dimension error carries the same
// sentinel.
func ValidateSameRegions(op, nameA string, a mat.Matrix, nameB string, b mat.Matrix) (int, error) {
	na, err := validateSquare(op, nameA, a)
	if err != nil {
		return 0, err
	}
	nb, err := validateSquare(op, nameB, b)
	if err != nil {
		return 0, err
	}
	if na != nb {
		return 0, connErrorf(op, "%s has %d regions, %s has %d", ErrDimensionMismatch, nameA, na, nameB, nb)
	}

	return na, nil
}
