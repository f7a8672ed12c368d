// SPDX-License-Identifier: MIT
// Package: builder
//
// validators.go — parameter contracts shared by constructors.

package builder

import "math"

// validateMin ensures that got ≥ min, wrapping err otherwise.
// Complexity: O(1).
func validateMin(method string, err error, got, min int) error {
	if got < min {
		return builderErrorf(method, err, "must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validateFinitePositive ensures v is finite and > 0, wrapping err otherwise.
func validateFinitePositive(method string, err error, name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return builderErrorf(method, err, "%s must be finite and > 0, got %g", name, v)
	}

	return nil
}
