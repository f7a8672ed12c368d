// SPDX-License-Identifier: MIT

package linear_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/linear"
)

// ExampleSolve computes the stationary covariance of two uncoupled
// oscillators: every variance is σ²/(2|a|).
func ExampleSolve() {
	sc := mat.NewDense(2, 2, nil)
	res, err := linear.Solve(sc, []float64{0.05, 0.05}, linear.WithSigma(0.02))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.4f\n", res.CV.At(0, 0))
	// Output:
	// 0.0100
}
