// SPDX-License-Identifier: MIT
// Package: hopf
//
// errors.go — sentinel errors for the simulator.
//
// Error policy:
//   - Validation happens before any integration work.
//   - Context cancellation is returned unwrapped (ctx.Err()).

package hopf

import (
	"errors"
	"fmt"
)

var (
	// ErrConflictingPerturbation indicates that both the all-nodes flag and
	// a node mask were supplied.
	ErrConflictingPerturbation = errors.New("hopf: all-nodes perturbation conflicts with a node mask")

	// ErrInvalidParams indicates a non-positive step, TR or run count, a
	// negative duration, or a TR shorter than half a step.
	ErrInvalidParams = errors.New("hopf: invalid parameters")

	// ErrDimensionMismatch indicates SC, frequencies and mask disagree on
	// the number of regions.
	ErrDimensionMismatch = errors.New("hopf: dimension mismatch")

	// ErrNaNInf indicates a NaN or ±Inf input value.
	ErrNaNInf = errors.New("hopf: NaN or Inf encountered")

	// ErrDiverged indicates that the integrated state left the finite range.
	ErrDiverged = errors.New("hopf: integration diverged")

	// ErrNoSamples indicates a configuration that records no sample at all.
	ErrNoSamples = errors.New("hopf: no samples to record")
)

// hopfErrorf prefixes err with the operation tag: "<op>: <msg>: <err>".
func hopfErrorf(op, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
