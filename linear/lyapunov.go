// SPDX-License-Identifier: MIT
// Package: linear
//
// lyapunov.go — continuous Lyapunov solve A·C + C·Aᵀ = −Q.
//
// Method (Cayley transform + Smith doubling):
//
//	For p > 0 put M = A − pI, N = A + pI. Then
//	  M·C·Mᵀ = N·C·Nᵀ + 2p·Q,
//	so C is the fixed point of C = B·C·Bᵀ + X₀ with B = M⁻¹N and
//	X₀ = 2p·M⁻¹·Q·M⁻ᵀ. For stable A every eigenvalue (λ+p)/(λ−p) of B
//	lies inside the unit circle and the doubling recursion
//	  X_{k+1} = X_k + B_k·X_k·B_kᵀ,  B_{k+1} = B_k²
//	sums 2^k terms of the series per step.
//
//	p = sqrt(min|λ|·max|λ|) balances the contraction over the spectrum.

package linear

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

const opSolveLyapunov = "SolveLyapunov"

// SolveLyapunov returns the symmetric C with A·C + C·Aᵀ = −Q using the
// default tolerance and iteration cap.
//
// Errors: ErrNonSquare / ErrDimensionMismatch on shape, ErrNaNInf,
// ErrUnstable when max Re λ(A) ≥ 0, ErrNoSolution when doubling does not
// converge or leaves the finite range.
func SolveLyapunov(a, q mat.Matrix) (*mat.Dense, error) {
	cfg := newSolverConfig()

	return solveLyapunov(a, q, cfg.tol, cfg.maxIter)
}

func solveLyapunov(a, q mat.Matrix, tol float64, maxIter int) (*mat.Dense, error) {
	// Stage 1: validate.
	n, err := validateSquare(opSolveLyapunov, "A", a)
	if err != nil {
		return nil, err
	}
	nq, err := validateSquare(opSolveLyapunov, "Q", q)
	if err != nil {
		return nil, err
	}
	if nq != n {
		return nil, linErrorf(opSolveLyapunov, "A is %dx%d, Q is %dx%d", ErrDimensionMismatch, n, n, nq, nq)
	}
	if err = validateFinite(opSolveLyapunov, "A", a); err != nil {
		return nil, err
	}
	if err = validateFinite(opSolveLyapunov, "Q", q); err != nil {
		return nil, err
	}

	// Stage 2: stability and shift from the spectrum.
	p, err := stableShift(a)
	if err != nil {
		return nil, err
	}

	// Stage 3: Cayley transform.
	m := mat.NewDense(n, n, nil)
	m.Copy(a)
	nn := mat.NewDense(n, n, nil)
	nn.Copy(a)
	for i := 0; i < n; i++ {
		m.Set(i, i, m.At(i, i)-p)
		nn.Set(i, i, nn.At(i, i)+p)
	}
	var mInv mat.Dense
	if err = mInv.Inverse(m); err != nil {
		return nil, linErrorf(opSolveLyapunov, "inverting A-pI (p=%g): %v", ErrNoSolution, p, err)
	}
	b := mat.NewDense(n, n, nil)
	b.Mul(&mInv, nn)

	tmp := mat.NewDense(n, n, nil)
	tmp.Mul(&mInv, q)
	x := mat.NewDense(n, n, nil)
	x.Mul(tmp, mInv.T())
	x.Scale(2*p, x)

	// Stage 4: Smith doubling.
	inc := mat.NewDense(n, n, nil)
	b2 := mat.NewDense(n, n, nil)
	for k := 0; k < maxIter; k++ {
		tmp.Mul(b, x)
		inc.Mul(tmp, b.T())
		x.Add(x, inc)

		xn := mat.Norm(x, 2)
		if math.IsNaN(xn) || math.IsInf(xn, 0) {
			return nil, linErrorf(opSolveLyapunov, "non-finite iterate at step %d", ErrNoSolution, k)
		}
		if mat.Norm(inc, 2) <= tol*xn {
			symmetrize(x)

			return x, nil
		}
		b2.Mul(b, b)
		b, b2 = b2, b
	}

	return nil, linErrorf(opSolveLyapunov, "no convergence after %d doubling steps", ErrNoSolution, maxIter)
}

// stableShift checks max Re λ(A) < 0 and returns p = sqrt(min|λ|·max|λ|).
func stableShift(a mat.Matrix) (float64, error) {
	var eig mat.Eigen
	if ok := eig.Factorize(a, mat.EigenNone); !ok {
		return 0, linErrorf(opSolveLyapunov, "eigen decomposition failed", ErrNoSolution)
	}
	values := eig.Values(nil)

	maxRe := math.Inf(-1)
	minAbs, maxAbs := math.Inf(1), 0.0
	for _, v := range values {
		maxRe = math.Max(maxRe, real(v))
		abs := cmplx.Abs(v)
		minAbs = math.Min(minAbs, abs)
		maxAbs = math.Max(maxAbs, abs)
	}
	if maxRe >= 0 {
		return 0, linErrorf(opSolveLyapunov, "max Re(λ)=%g", ErrUnstable, maxRe)
	}

	return math.Sqrt(minAbs * maxAbs), nil
}

// symmetrize replaces x with (x + xᵀ)/2 in place.
func symmetrize(x *mat.Dense) {
	n, _ := x.Dims()
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v = 0.5 * (x.At(i, j) + x.At(j, i))
			x.Set(i, j, v)
			x.Set(j, i, v)
		}
	}
}
