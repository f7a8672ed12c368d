// SPDX-License-Identifier: MIT

package hopf

// WindowBifurcation exposes the per-region a used inside the
// perturbation window to the external tests.
func WindowBifurcation(p Perturbation, n int, baseline float64) []float64 {
	a := make([]float64, n)
	p.bifurcation(a, baseline)

	return a
}
