// SPDX-License-Identifier: MIT

package asymmetry_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/asymmetry"
)

// ExampleCountAsymmetricPairs counts one strongly directed pair.
func ExampleCountAsymmetricPairs() {
	ec := mat.NewDense(3, 3, []float64{
		0, 0.2, 0.1,
		0.0, 0, 0.1,
		0.1, 0.1, 0,
	})
	pairs, _ := asymmetry.CountAsymmetricPairs(ec, asymmetry.DefaultOptions())
	fmt.Println(pairs)
	// Output:
	// 1
}
