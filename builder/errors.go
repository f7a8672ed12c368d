// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context (constructor, offending value) with %w.
//   • Constructors never panic; validation panics are confined to WithX.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewRegions indicates a region count below the constructor minimum.
var ErrTooFewRegions = errors.New("builder: too few regions")

// ErrTooFewSamples indicates a series length below the constructor minimum.
var ErrTooFewSamples = errors.New("builder: too few samples")

// ErrInvalidCoupling indicates a lag coupling outside [-1, 1].
var ErrInvalidCoupling = errors.New("builder: coupling out of range")

// ErrInvalidSampling indicates a non-positive or non-finite sampling interval.
var ErrInvalidSampling = errors.New("builder: invalid sampling interval")

// builderErrorf formats "<method>: <msg>: <sentinel>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
