// Package insideout measures the temporal irreversibility of a
// multi-region series with the INSIDEOUT forward/reverse lagged
// mutual-information contrast.
//
// Method:
//
//	Split the series x (n×T) into A = x[:, 0:T−1] and B = x[:, 1:T] and
//	z-score every region of each half with its population standard
//	deviation. The forward and reversed lag-1 correlations are
//
//	  FCtf = A·Bᵀ/(T−1),   FCtr = FCtfᵀ
//
//	each mapped to Gaussian mutual information I = −½·log(1 − ρ²). The
//	reference matrix R = (If − Ir)² is zero for a time-reversible process.
//	The index is the mean of the entries of R strictly above min(R); the
//	diagonal of R is identically zero and therefore never enters.
//
// Masking:
//
//	The "strictly above the minimum" selection is part of the published
//	measure and must be kept as is to reproduce reported values. It drops
//	every entry tied with min(R), not only the diagonal. Only the selected
//	entries are averaged; whole rows of the selected pairs are not.
//
// Usage:
//
//	idx, err := insideout.Index(series)
//	if errors.Is(err, insideout.ErrZeroVariance) { ... }
package insideout
