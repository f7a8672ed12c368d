// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_frequencies.go — natural frequency fixtures.

package builder

// Frequencies returns n natural frequencies drawn from U[freqLo, freqHi].
// A degenerate band (lo == hi) yields a constant vector.
//
// Errors: ErrTooFewRegions if n < MinRegions.
// Complexity: O(n).
func Frequencies(n int, opts ...BuilderOption) ([]float64, error) {
	if err := validateMin(MethodFrequencies, ErrTooFewRegions, n, MinRegions); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)

	out := make([]float64, n)
	if cfg.freqLo == cfg.freqHi {
		for i := range out {
			out[i] = cfg.freqLo
		}
		return out, nil
	}
	band := cfg.uniform(cfg.freqLo, cfg.freqHi)
	for i := range out {
		out[i] = band.Rand()
	}

	return out, nil
}
