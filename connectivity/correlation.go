// SPDX-License-Identifier: MIT
// Package: connectivity
//
// correlation.go — covariance → correlation, the sigma-ratio factor and
// the normalized lagged covariance built from both.
//
// Edge-case policy (explicit):
//   - CorrelationFromCovariance: a zero covariance entry or a zero
//     denominator yields 0 (a silent region correlates with nothing).
//   - SigmaRatio: a zero diagonal entry is an error (ErrZeroVariance);
//     the factor would otherwise be +Inf.

package connectivity

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	opCorrelationFromCovariance  = "CorrelationFromCovariance"
	opSigmaRatio                 = "SigmaRatio"
	opFunctionalConnectivity     = "FunctionalConnectivity"
	opNormalizedLaggedCovariance = "NormalizedLaggedCovariance"
)

// CorrelationFromCovariance normalizes cov by the outer product of the
// square roots of its diagonal: corr[i,j] = cov[i,j] / sqrt(cov[i,i]·cov[j,j]).
//
// Entries whose covariance is exactly zero, or whose denominator is
// exactly zero, are set to zero. A diagonal covariance therefore maps to
// the identity on its non-zero variances and zero elsewhere.
//
// Errors: ErrNilMatrix, ErrEmptySeries, ErrNonSquare, ErrNaNInf,
// ErrNegativeVariance (a negative diagonal has no real square root).
// Complexity: O(n²).
func CorrelationFromCovariance(cov mat.Matrix) (*mat.Dense, error) {
	n, err := validateSquare(opCorrelationFromCovariance, "cov", cov)
	if err != nil {
		return nil, err
	}
	if err = validateFinite(opCorrelationFromCovariance, "cov", cov); err != nil {
		return nil, err
	}

	// Standard deviations from the diagonal.
	sd := make([]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		v := cov.At(i, i)
		if v < 0 {
			return nil, connErrorf(opCorrelationFromCovariance, "cov[%d,%d]=%g", ErrNegativeVariance, i, i, v)
		}
		sd[i] = math.Sqrt(v)
	}

	corr := mat.NewDense(n, n, nil)
	var c, denom float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			c = cov.At(i, j)
			denom = sd[i] * sd[j]
			if c == 0 || denom == 0 {
				continue // explicit zero policy
			}
			corr.Set(i, j, c/denom)
		}
	}

	return corr, nil
}

// SigmaRatio returns the elementwise factor 1/sqrt|cov[i,i]| / sqrt|cov[j,j]|.
// Multiplying a lagged covariance by this factor makes it dimensionless,
// comparable with correlation-based FC.
//
// Errors: ErrZeroVariance (naming the region) for an exactly zero
// diagonal entry, plus the usual shape and finite-value sentinels.
// Complexity: O(n²).
func SigmaRatio(cov mat.Matrix) (*mat.Dense, error) {
	n, err := validateSquare(opSigmaRatio, "cov", cov)
	if err != nil {
		return nil, err
	}
	if err = validateFinite(opSigmaRatio, "cov", cov); err != nil {
		return nil, err
	}

	inv := make([]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		v := math.Abs(cov.At(i, i))
		if v == 0 {
			return nil, connErrorf(opSigmaRatio, "region %d", ErrZeroVariance, i)
		}
		inv[i] = 1 / math.Sqrt(v)
	}

	sr := mat.NewDense(n, n, nil)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			sr.Set(i, j, inv[i]*inv[j])
		}
	}

	return sr, nil
}

// FunctionalConnectivity returns the Pearson correlation matrix of series
// (the correlation of its lag-0 covariance).
func FunctionalConnectivity(series mat.Matrix) (*mat.Dense, error) {
	cov, err := TimeLaggedCovariance(series, 0)
	if err != nil {
		return nil, connErrorf(opFunctionalConnectivity, "covariance", err)
	}

	return CorrelationFromCovariance(cov)
}

// NormalizedLaggedCovariance returns the lagged covariance of series
// multiplied elementwise by the sigma ratio of its lag-0 covariance.
func NormalizedLaggedCovariance(series mat.Matrix, lag int) (*mat.Dense, error) {
	cov0, err := TimeLaggedCovariance(series, 0)
	if err != nil {
		return nil, connErrorf(opNormalizedLaggedCovariance, "lag 0", err)
	}
	covLag, err := TimeLaggedCovariance(series, lag)
	if err != nil {
		return nil, connErrorf(opNormalizedLaggedCovariance, "lag %d", err, lag)
	}

	return Normalize(covLag, cov0)
}

// Normalize returns covLag ⊙ SigmaRatio(cov0).
func Normalize(covLag, cov0 mat.Matrix) (*mat.Dense, error) {
	if _, err := ValidateSameRegions(opNormalizedLaggedCovariance, "covLag", covLag, "cov0", cov0); err != nil {
		return nil, err
	}
	sr, err := SigmaRatio(cov0)
	if err != nil {
		return nil, err
	}
	sr.MulElem(sr, covLag)

	return sr, nil
}
