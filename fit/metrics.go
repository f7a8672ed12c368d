// SPDX-License-Identifier: MIT
// Package: fit
//
// metrics.go — goodness-of-fit between empirical and simulated matrices.

package fit

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/connectivity"
)

// RMSE returns the root-mean-square elementwise difference of a and b.
func RMSE(a, b mat.Matrix) (float64, error) {
	n, err := connectivity.ValidateSameRegions("RMSE", "a", a, "b", b)
	if err != nil {
		return 0, err
	}
	d := mat.NewDense(n, n, nil)
	d.Sub(a, b)

	return mat.Norm(d, 2) / float64(n), nil
}

// UpperTriangle returns the entries strictly above the diagonal of a
// square matrix, row by row.
func UpperTriangle(m mat.Matrix) []float64 {
	n, _ := m.Dims()
	out := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, m.At(i, j))
		}
	}

	return out
}

// FitCorrelation returns the Pearson correlation of the upper triangles of
// a and b. A constant triangle (no variance) reports 0.
func FitCorrelation(a, b mat.Matrix) (float64, error) {
	if _, err := connectivity.ValidateSameRegions("FitCorrelation", "a", a, "b", b); err != nil {
		return 0, err
	}
	x, y := UpperTriangle(a), UpperTriangle(b)
	if len(x) < 2 {
		return 0, nil
	}
	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		return 0, nil
	}

	return r, nil
}
