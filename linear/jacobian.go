// SPDX-License-Identifier: MIT
// Package: linear
//
// jacobian.go — the 2n×2n Jacobian of the Hopf network at z = 0.

package linear

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const opJacobian = "Jacobian"

// Jacobian returns the linearization of the Hopf network at the origin:
//
//	⎡ aI − B + SC    −diag(ω) ⎤
//	⎣ diag(ω)     aI − B + SC ⎦
//
// where B = diag(Σ_j SC[i,j]) and ω = 2π·freqs. The x block occupies
// rows/columns [0, n), the y block [n, 2n).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(n²).
func Jacobian(sc mat.Matrix, freqs []float64, a float64) (*mat.Dense, error) {
	n, err := validateNetwork(opJacobian, sc, freqs)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return nil, linErrorf(opJacobian, "a=%g", ErrNaNInf, a)
	}

	j := mat.NewDense(2*n, 2*n, nil)
	row := make([]float64, n)
	var i, k int
	var omega float64
	for i = 0; i < n; i++ {
		mat.Row(row, i, sc)
		strength := floats.Sum(row)
		for k = 0; k < n; k++ {
			j.Set(i, k, row[k])
			j.Set(n+i, n+k, row[k])
		}
		j.Set(i, i, j.At(i, i)+a-strength)
		j.Set(n+i, n+i, j.At(n+i, n+i)+a-strength)

		omega = 2 * math.Pi * freqs[i]
		j.Set(i, n+i, -omega)
		j.Set(n+i, i, omega)
	}

	return j, nil
}

// validateNetwork checks an n×n finite SC and n finite frequencies.
func validateNetwork(op string, sc mat.Matrix, freqs []float64) (int, error) {
	n, err := validateSquare(op, "sc", sc)
	if err != nil {
		return 0, err
	}
	if len(freqs) != n {
		return 0, linErrorf(op, "%d frequencies for %d regions", ErrDimensionMismatch, len(freqs), n)
	}
	if err = validateFinite(op, "sc", sc); err != nil {
		return 0, err
	}
	for i, f := range freqs {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, linErrorf(op, "freqs[%d]=%g", ErrNaNInf, i, f)
		}
	}

	return n, nil
}

func validateSquare(op, name string, m mat.Matrix) (int, error) {
	if m == nil {
		return 0, linErrorf(op, "%s", ErrNilMatrix, name)
	}
	if d, ok := m.(*mat.Dense); ok && d == nil {
		return 0, linErrorf(op, "%s", ErrNilMatrix, name)
	}
	r, c := m.Dims()
	if r != c || r == 0 {
		return 0, linErrorf(op, "%s is %dx%d", ErrNonSquare, name, r, c)
	}

	return r, nil
}

func validateFinite(op, name string, m mat.Matrix) error {
	r, c := m.Dims()
	var i, k int
	var v float64
	for i = 0; i < r; i++ {
		for k = 0; k < c; k++ {
			v = m.At(i, k)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return linErrorf(op, "%s[%d,%d]=%g", ErrNaNInf, name, i, k, v)
			}
		}
	}

	return nil
}
