// SPDX-License-Identifier: MIT

package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/builder"
)

func TestRandomSC_ShapeDiagonalAndRange(t *testing.T) {
	t.Parallel()

	sc, err := builder.RandomSC(20, builder.WithSeed(3), builder.WithDensity(0.5), builder.WithWeightRange(0.1, 0.3))
	require.NoError(t, err)

	r, c := sc.Dims()
	require.Equal(t, 20, r)
	require.Equal(t, 20, c)
	present := 0
	for i := 0; i < 20; i++ {
		assert.Equal(t, 0.0, sc.At(i, i))
		for j := 0; j < 20; j++ {
			v := sc.At(i, j)
			assert.Equal(t, v, sc.At(j, i), "default SC must be symmetric")
			if v != 0 {
				present++
				assert.GreaterOrEqual(t, v, 0.1)
				assert.LessOrEqual(t, v, 0.3)
			}
		}
	}
	assert.Greater(t, present, 0)
}

func TestRandomSC_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := builder.RandomSC(10, builder.WithSeed(9))
	require.NoError(t, err)
	b, err := builder.RandomSC(10, builder.WithSeed(9))
	require.NoError(t, err)
	c, err := builder.RandomSC(10, builder.WithSeed(10))
	require.NoError(t, err)

	assert.True(t, mat.Equal(a, b))
	assert.False(t, mat.Equal(a, c))
}

func TestRandomSC_DensityExtremes(t *testing.T) {
	t.Parallel()

	empty, err := builder.RandomSC(5, builder.WithDensity(0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, mat.Sum(empty))

	full, err := builder.RandomSC(5, builder.WithDensity(1), builder.WithSymmetric(false))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if i != j {
				assert.NotZero(t, full.At(i, j))
			}
		}
	}
}

func TestRingSC(t *testing.T) {
	t.Parallel()

	sc, err := builder.RingSC(4, 0.2)
	require.NoError(t, err)
	assert.Equal(t, 0.2, sc.At(0, 1))
	assert.Equal(t, 0.2, sc.At(3, 0))
	assert.Equal(t, 0.0, sc.At(0, 2))

	_, err = builder.RingSC(2, 0.2)
	assert.ErrorIs(t, err, builder.ErrTooFewRegions)
}

func TestFrequencies(t *testing.T) {
	t.Parallel()

	f, err := builder.Frequencies(50, builder.WithSeed(1), builder.WithFrequencyRange(0.04, 0.07))
	require.NoError(t, err)
	require.Len(t, f, 50)
	for _, v := range f {
		assert.GreaterOrEqual(t, v, 0.04)
		assert.LessOrEqual(t, v, 0.07)
	}

	flat, err := builder.Frequencies(3, builder.WithFrequencyRange(0.05, 0.05))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.05, 0.05, 0.05}, flat)

	_, err = builder.Frequencies(0)
	assert.ErrorIs(t, err, builder.ErrTooFewRegions)
}

func TestWhiteNoise_Moments(t *testing.T) {
	t.Parallel()

	x, err := builder.WhiteNoise(2, 20000, builder.WithSeed(4), builder.WithNoise(2))
	require.NoError(t, err)
	mean, std := stat.MeanStdDev(x.RawRowView(0), nil)
	assert.InDelta(t, 0.0, mean, 0.05)
	assert.InDelta(t, 2.0, std, 0.05)

	_, err = builder.WhiteNoise(2, 0)
	assert.ErrorIs(t, err, builder.ErrTooFewSamples)
}

func TestLaggedChain_LagCorrelation(t *testing.T) {
	t.Parallel()

	s, err := builder.LaggedChain(20000, 0.8, builder.WithSeed(5))
	require.NoError(t, err)
	xs, ys := s.RawRowView(0), s.RawRowView(1)

	assert.InDelta(t, 0.8, stat.Correlation(xs[:len(xs)-1], ys[1:], nil), 0.02)
	assert.InDelta(t, 0.0, stat.Correlation(xs, ys, nil), 0.03)

	_, err = builder.LaggedChain(100, 1.5)
	assert.ErrorIs(t, err, builder.ErrInvalidCoupling)
	_, err = builder.LaggedChain(1, 0.5)
	assert.ErrorIs(t, err, builder.ErrTooFewSamples)
}

func TestOscillations(t *testing.T) {
	t.Parallel()

	x, err := builder.Oscillations([]float64{0.05, 0.1}, 200, 1, builder.WithNoise(0), builder.WithAmplitude(2))
	require.NoError(t, err)
	r, c := x.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 200, c)
	for _, v := range x.RawMatrix().Data {
		assert.LessOrEqual(t, math.Abs(v), 2.0+1e-12)
	}

	_, err = builder.Oscillations([]float64{0.05}, 10, 0)
	assert.ErrorIs(t, err, builder.ErrInvalidSampling)
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithNoise(-1) })
	assert.Panics(t, func() { builder.WithDensity(1.5) })
	assert.Panics(t, func() { builder.WithWeightRange(0.3, 0.1) })
	assert.Panics(t, func() { builder.WithFrequencyRange(0, 0.1) })
	assert.Panics(t, func() { builder.WithAmplitude(0) })
}
