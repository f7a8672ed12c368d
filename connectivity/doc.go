// Package connectivity derives connectivity statistics from multi-region
// time series: time-lagged covariance, correlation (functional
// connectivity) and the sigma-ratio normalization that puts a lagged
// covariance into the same dimensionless space as correlation.
//
// What is measured?
//
//	A series is an n×T matrix: one row per brain region, one column per
//	sample. For a lag τ the lagged covariance is
//
//	  cov[i,j] = (1/T) · Σ_t (x_i[t] − μ_i)·(x_j[t+τ] − μ_j)
//
//	summed over the T−τ valid samples and normalized by the full series
//	length T. It is not symmetric for τ ≠ 0: entry (i,j) pairs region i
//	with the future of region j.
//
// Key features:
//   - TimeLaggedCovariance: matrix-product form of the direct definition.
//   - CorrelationFromCovariance: zero denominators map to zero, never NaN.
//   - SigmaRatio: rejects zero-variance regions with ErrZeroVariance.
//   - Stats / Summary: FC, lag-0 covariance, lagged covariance and the
//     normalized lagged covariance in one pass; Average over ensembles.
//
// Usage:
//
//	sum, err := connectivity.Stats(series, 1)
//	if err != nil {
//	  // errors.Is(err, connectivity.ErrZeroVariance) ...
//	}
//	fmt.Println(mat.Formatted(sum.FC))
//
// Complexity:
//
//   - Time:   O(n²·T)
//   - Memory: O(n·T) for the centered copy plus O(n²) per result.
package connectivity
