// SPDX-License-Identifier: MIT
// Package: connectivity
//
// errors.go — sentinel errors for connectivity statistics.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Implementations attach context (operation, matrix name, index) with %w.
//   - Numerical degeneracy is reported as an error, never as NaN/Inf output.

package connectivity

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates that a nil matrix was passed.
	ErrNilMatrix = errors.New("connectivity: nil matrix")

	// ErrEmptySeries indicates a series with no regions or no samples.
	ErrEmptySeries = errors.New("connectivity: empty series")

	// ErrNonSquare indicates that a square (n×n) matrix was required.
	ErrNonSquare = errors.New("connectivity: matrix is not square")

	// ErrDimensionMismatch indicates operands with inconsistent region counts.
	ErrDimensionMismatch = errors.New("connectivity: dimension mismatch")

	// ErrLagTooLarge indicates |lag| >= number of samples.
	ErrLagTooLarge = errors.New("connectivity: lag exceeds series length")

	// ErrZeroVariance indicates a region whose variance is exactly zero where
	// a normalization by its standard deviation is required.
	ErrZeroVariance = errors.New("connectivity: zero variance region")

	// ErrNegativeVariance indicates a negative diagonal entry in a matrix
	// that is used as a covariance.
	ErrNegativeVariance = errors.New("connectivity: negative variance on diagonal")

	// ErrNaNInf indicates a NaN or ±Inf input value.
	ErrNaNInf = errors.New("connectivity: NaN or Inf encountered")

	// ErrNoSummaries indicates that Average received nothing to average.
	ErrNoSummaries = errors.New("connectivity: no summaries to average")
)

// connErrorf prefixes err with the operation tag: "<op>: <msg>: <err>".
func connErrorf(op, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
