// SPDX-License-Identifier: MIT

package connectivity_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/connectivity"
)

// ExampleTimeLaggedCovariance shows the lag-0 covariance of two regions
// where the second region is a scaled copy of the first.
func ExampleTimeLaggedCovariance() {
	x := mat.NewDense(2, 4, []float64{
		1, 2, 3, 4,
		2, 4, 6, 8,
	})
	cov, _ := connectivity.TimeLaggedCovariance(x, 0)
	fmt.Printf("%.2f\n", mat.Formatted(cov))
	// Output:
	// ⎡1.25  2.50⎤
	// ⎣2.50  5.00⎦
}

// ExampleCorrelationFromCovariance shows that a diagonal covariance is
// the identity once normalized.
func ExampleCorrelationFromCovariance() {
	cov := mat.NewDense(2, 2, []float64{4, 0, 0, 9})
	corr, _ := connectivity.CorrelationFromCovariance(cov)
	fmt.Printf("%.1f\n", mat.Formatted(corr))
	// Output:
	// ⎡1.0  0.0⎤
	// ⎣0.0  1.0⎦
}
