// Package asymmetry quantifies how directional an effective connectivity
// matrix is by counting region pairs whose two directed weights differ.
//
// For EC (n×n) let D = EC − ECᵀ. D is antisymmetric, so every asymmetric
// pair {i,j} contributes two nonzero entries. The pair count is
//
//	#{(i,j) : mask(D[i,j])} / 2
//
// where mask is D ≠ 0 without thresholding, or |D| > thr with thr either
// a fixed value (default 0.012) or the mean of |D| over all n² entries.
//
// Usage:
//
//	opts := asymmetry.DefaultOptions()
//	opts.UseMean = true
//	pairs, err := asymmetry.CountAsymmetricPairs(ec, opts)
package asymmetry
