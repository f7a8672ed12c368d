// SPDX-License-Identifier: MIT

package linear_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/linear"
)

// ring returns a symmetric n-node ring SC with weight w.
func ring(n int, w float64) *mat.Dense {
	sc := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		sc.Set(i, (i+1)%n, w)
		sc.Set((i+1)%n, i, w)
	}

	return sc
}

func constFreqs(n int, f float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = f
	}

	return out
}

func TestJacobian_BlockStructure(t *testing.T) {
	t.Parallel()

	sc := mat.NewDense(2, 2, []float64{0, 0.3, 0.1, 0})
	freqs := []float64{0.05, 0.1}
	j, err := linear.Jacobian(sc, freqs, -0.02)
	require.NoError(t, err)

	r, c := j.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 4, c)

	// x block: a − strength on the diagonal, SC off the diagonal.
	assert.InDelta(t, -0.02-0.3, j.At(0, 0), 1e-15)
	assert.InDelta(t, -0.02-0.1, j.At(1, 1), 1e-15)
	assert.InDelta(t, 0.3, j.At(0, 1), 1e-15)
	assert.InDelta(t, 0.1, j.At(1, 0), 1e-15)
	// y block repeats it.
	assert.InDelta(t, j.At(0, 1), j.At(2, 3), 1e-15)
	assert.InDelta(t, j.At(1, 1), j.At(3, 3), 1e-15)
	// Rotation terms.
	assert.InDelta(t, -2*math.Pi*0.05, j.At(0, 2), 1e-15)
	assert.InDelta(t, 2*math.Pi*0.1, j.At(3, 1), 1e-15)
	assert.Equal(t, 0.0, j.At(0, 3))
}

func TestJacobian_Errors(t *testing.T) {
	t.Parallel()

	_, err := linear.Jacobian(nil, nil, -0.02)
	assert.ErrorIs(t, err, linear.ErrNilMatrix)

	_, err = linear.Jacobian(mat.NewDense(2, 3, nil), []float64{1, 1}, -0.02)
	assert.ErrorIs(t, err, linear.ErrNonSquare)

	_, err = linear.Jacobian(ring(3, 0.1), []float64{1, 1}, -0.02)
	assert.ErrorIs(t, err, linear.ErrDimensionMismatch)

	_, err = linear.Jacobian(ring(3, 0.1), []float64{1, math.NaN(), 1}, -0.02)
	assert.ErrorIs(t, err, linear.ErrNaNInf)
}

func TestSolve_UncoupledMatchesClosedForm(t *testing.T) {
	t.Parallel()

	n := 3
	res, err := linear.Solve(mat.NewDense(n, n, nil), constFreqs(n, 0.05))
	require.NoError(t, err)

	// σ²/(2|a|) with σ = 0.01, a = −0.02.
	want := 1e-4 / 0.04
	for i := 0; i < n; i++ {
		assert.InDelta(t, want, res.CV.At(i, i), 1e-10)
		assert.InDelta(t, 1.0, res.FC.At(i, i), 1e-12)
		for k := 0; k < n; k++ {
			if k != i {
				assert.InDelta(t, 0.0, res.FC.At(i, k), 1e-10)
			}
		}
	}
}

func TestSolve_ResidualIsSmall(t *testing.T) {
	t.Parallel()

	sc := ring(6, 0.2)
	freqs := []float64{0.04, 0.05, 0.06, 0.045, 0.055, 0.05}
	res, err := linear.Solve(sc, freqs, linear.WithCoupling(0.5))
	require.NoError(t, err)

	assert.Less(t, res.Residual()/mat.Norm(res.Q, 2), 1e-8)
	assert.True(t, mat.EqualApprox(res.Cov, res.Cov.T(), 1e-15), "covariance must be symmetric")
}

func TestSolve_TwoRegionsSymmetricFC(t *testing.T) {
	t.Parallel()

	sc := mat.NewDense(2, 2, []float64{0, 0.5, 0.5, 0})
	res, err := linear.Solve(sc, []float64{0.05, 0.05})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Regions())
	assert.InDelta(t, res.FC.At(0, 1), res.FC.At(1, 0), 1e-12)
	assert.Greater(t, res.FC.At(0, 1), 0.0, "positive coupling must give positive FC")
	assert.Less(t, res.FC.At(0, 1), 1.0)
}

func TestSolve_Unstable(t *testing.T) {
	t.Parallel()

	_, err := linear.Solve(ring(3, 0.1), constFreqs(3, 0.05), linear.WithBifurcation(0.01))
	assert.ErrorIs(t, err, linear.ErrUnstable)
}

func TestSolveLyapunov_Errors(t *testing.T) {
	t.Parallel()

	_, err := linear.SolveLyapunov(mat.NewDense(2, 2, []float64{-1, 0, 0, -1}), mat.NewDense(3, 3, nil))
	assert.ErrorIs(t, err, linear.ErrDimensionMismatch)

	_, err = linear.SolveLyapunov(mat.NewDense(2, 2, []float64{1, 0, 0, -1}), mat.NewDense(2, 2, nil))
	assert.ErrorIs(t, err, linear.ErrUnstable)
}

func TestSolveLyapunov_ScalarCase(t *testing.T) {
	t.Parallel()

	// −2c = −q  ⇒  c = q/2 for A = −1.
	c, err := linear.SolveLyapunov(mat.NewDense(1, 1, []float64{-1}), mat.NewDense(1, 1, []float64{3}))
	require.NoError(t, err)
	assert.InDelta(t, 1.5, c.At(0, 0), 1e-12)
}

func TestResult_Lagged(t *testing.T) {
	t.Parallel()

	f := 0.05
	res, err := linear.Solve(mat.NewDense(2, 2, nil), constFreqs(2, f))
	require.NoError(t, err)

	lag0, err := res.Lagged(0)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(lag0, res.CV, 1e-12))

	// Uncoupled oscillator: c·e^{aτ}·cos(ωτ).
	tau := 2.0
	lag, err := res.Lagged(tau)
	require.NoError(t, err)
	want := res.CV.At(0, 0) * math.Exp(-0.02*tau) * math.Cos(2*math.Pi*f*tau)
	assert.InDelta(t, want, lag.At(0, 0), 1e-12)

	neg, err := res.Lagged(-tau)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(neg, lag.T(), 1e-12))

	_, err = res.Lagged(math.Inf(1))
	assert.ErrorIs(t, err, linear.ErrNaNInf)
}

func TestResult_NormalizedLaggedAtZeroIsFC(t *testing.T) {
	t.Parallel()

	res, err := linear.Solve(ring(4, 0.3), constFreqs(4, 0.05))
	require.NoError(t, err)
	norm, err := res.NormalizedLagged(0)
	require.NoError(t, err)

	assert.True(t, mat.EqualApprox(norm, res.FC, 1e-10))
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { linear.WithSigma(0) })
	assert.Panics(t, func() { linear.WithBifurcation(math.NaN()) })
	assert.Panics(t, func() { linear.WithTolerance(-1) })
	assert.Panics(t, func() { linear.WithMaxIter(0) })
}
