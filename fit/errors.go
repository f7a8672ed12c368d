// SPDX-License-Identifier: MIT
// Package: fit
//
// errors.go — sentinel errors for connectivity fitting.
//
// Shape and finite-value failures reuse the connectivity sentinels so a
// caller can branch on one error value whichever package detected it.

package fit

import (
	"errors"
	"fmt"

	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/connectivity"
)

var (
	// ErrNoStopCondition indicates Run was called with MaxIter == 0 and no
	// Stop callback.
	ErrNoStopCondition = errors.New("fit: no stop condition (set MaxIter or Stop)")

	// ErrInvalidParams indicates negative step sizes, a non-positive
	// normalization target, or a negative MaxIter or Lag.
	ErrInvalidParams = errors.New("fit: invalid parameters")

	// ErrNilSource indicates a Fitter without a statistics source.
	ErrNilSource = errors.New("fit: nil source")

	// ErrDimensionMismatch is connectivity.ErrDimensionMismatch.
	ErrDimensionMismatch = connectivity.ErrDimensionMismatch

	// ErrNaNInf is connectivity.ErrNaNInf.
	ErrNaNInf = connectivity.ErrNaNInf
)

// fitErrorf prefixes err with the operation tag: "<op>: <msg>: <err>".
func fitErrorf(op, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
