// SPDX-License-Identifier: MIT
// Package: linear
//
// errors.go — sentinel errors for the linear-noise solver.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Numerical failure is an error; a returned matrix is always finite.

package linear

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates that a nil matrix was passed.
	ErrNilMatrix = errors.New("linear: nil matrix")

	// ErrNonSquare indicates that a square matrix was required.
	ErrNonSquare = errors.New("linear: matrix is not square")

	// ErrDimensionMismatch indicates operands with inconsistent sizes
	// (frequencies vs SC, Q vs A).
	ErrDimensionMismatch = errors.New("linear: dimension mismatch")

	// ErrNaNInf indicates a NaN or ±Inf input value.
	ErrNaNInf = errors.New("linear: NaN or Inf encountered")

	// ErrUnstable indicates a Jacobian with an eigenvalue of non-negative
	// real part: no stationary covariance exists.
	ErrUnstable = errors.New("linear: system is not asymptotically stable")

	// ErrNoSolution indicates that the Lyapunov iteration failed to
	// converge or produced a non-finite covariance.
	ErrNoSolution = errors.New("linear: no finite Lyapunov solution")
)

// linErrorf prefixes err with the operation tag: "<op>: <msg>: <err>".
func linErrorf(op, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
