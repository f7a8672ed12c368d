// SPDX-License-Identifier: MIT

package hopf_test

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/hopf"
)

// ExampleSimulate shows the phase layout of a perturbed ensemble.
func ExampleSimulate() {
	sc := mat.NewDense(3, 3, []float64{
		0, 0.1, 0,
		0.1, 0, 0.1,
		0, 0.1, 0,
	})
	freqs := []float64{0.04, 0.05, 0.06}

	p := hopf.DefaultParams()
	p.Runs, p.Seed = 2, 1
	p.Transient, p.PrePert, p.PostPert = 100, 10, 10

	pert := hopf.MaskedPerturbation([]bool{true, false, false}, 5, 0.05)
	ens, err := hopf.Simulate(context.Background(), freqs, sc, 0.5, pert, p)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ens.Runs(), ens.Regions(), ens.Samples())
	fmt.Println(ens.PhaseLen(hopf.PhasePre), ens.PhaseLen(hopf.PhasePerturbation), ens.PhaseLen(hopf.PhasePost))
	// Output:
	// 2 3 250
	// 100 50 100
}
