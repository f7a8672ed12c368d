// Package linear computes the stationary statistics of a Hopf network
// linearized around its fixed point, without simulating it.
//
// Model:
//
//	Around z = 0 the network is the linear SDE dz = A z dt + dW with
//	z = [x; y] (2n states) and noise covariance Q = σ²I. A is the
//	Jacobian
//
//	  A = ⎡ aI − B + SC    −diag(ω) ⎤
//	      ⎣ diag(ω)     aI − B + SC ⎦
//
//	with B = diag(row sums of SC) and ω = 2πf. When every eigenvalue of A
//	has negative real part the stationary covariance C is the unique
//	solution of the Lyapunov equation A·C + C·Aᵀ = −Q.
//
// Key features:
//   - Jacobian: the 2n×2n block matrix above.
//   - SolveLyapunov: eigenvalue stability check, Cayley transform and
//     Smith doubling; ErrUnstable / ErrNoSolution instead of NaN output.
//   - Solve: FC (correlation) and CV (covariance) of the x block.
//   - Result.Lagged: lagged covariance C·expm(Aτ)ᵀ in the same pair
//     convention as connectivity.TimeLaggedCovariance.
//
// Usage:
//
//	res, err := linear.Solve(sc, freqs, linear.WithSigma(0.01))
//	if errors.Is(err, linear.ErrUnstable) {
//	  // coupling too strong for the chosen bifurcation parameter
//	}
//	lag1, _ := res.Lagged(2.0) // one TR of 2 s
//
// Complexity:
//
//   - Time:   O(k·n³) for k doubling steps (k is typically < 30).
//   - Memory: O(n²).
package linear
