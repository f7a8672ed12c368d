// SPDX-License-Identifier: MIT

package fit_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/connectivity"
	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/fit"
	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/hopf"
)

func filled(n int, v float64) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, v)
		}
	}

	return m
}

func TestUpdateSC_SmallFixture(t *testing.T) {
	t.Parallel()

	sc := mat.NewDense(2, 2, []float64{0, 0.1, 0.2, 0})
	p := fit.DefaultParams()
	p.EpsFC, p.EpsCov = 0.1, 0.5

	got, err := fit.UpdateSC(sc, filled(2, 1), filled(2, 0), filled(2, 0), filled(2, 0), p)
	require.NoError(t, err)

	// [0 0.2; 0.3 0] rescaled by 0.2/0.3.
	want := mat.NewDense(2, 2, []float64{0, 0.2 / 1.5, 0.2, 0})
	assert.True(t, mat.EqualApprox(got, want, 1e-15))
	assert.Equal(t, 0.1, sc.At(0, 1), "input must not be modified")
}

func TestUpdateSC_ZeroSCStaysZero(t *testing.T) {
	t.Parallel()

	got, err := fit.UpdateSC(filled(3, 0), filled(3, 1), filled(3, 0), filled(3, 1), filled(3, 0), fit.DefaultParams())
	require.NoError(t, err)
	assert.True(t, mat.Equal(got, filled(3, 0)))
}

func TestUpdateSC_PreservesSupportAndBound(t *testing.T) {
	t.Parallel()

	sc := mat.NewDense(3, 3, []float64{
		0, 0.3, 0,
		0.1, 0, 0.05,
		0, 0.2, 0,
	})
	fcEmp := mat.NewDense(3, 3, []float64{1, 0.5, 0.9, 0.5, 1, 0.2, 0.9, 0.2, 1})
	fcSim := mat.NewDense(3, 3, []float64{1, 0.1, 0.1, 0.1, 1, 0.6, 0.1, 0.6, 1})
	p := fit.DefaultParams()
	p.EpsFC = 0.5

	got, err := fit.UpdateSC(sc, fcEmp, fcSim, filled(3, 0), filled(3, 0), p)
	require.NoError(t, err)

	maxAbs := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if sc.At(i, j) == 0 {
				assert.Equal(t, 0.0, got.At(i, j), "support grew at [%d,%d]", i, j)
			}
			assert.GreaterOrEqual(t, got.At(i, j), 0.0)
			maxAbs = math.Max(maxAbs, math.Abs(got.At(i, j)))
		}
	}
	assert.InDelta(t, p.NormTarget, maxAbs, 1e-15)
}

func TestUpdateSC_PositivityClamp(t *testing.T) {
	t.Parallel()

	sc := mat.NewDense(2, 2, []float64{0, 0.1, 0.1, 0})
	fcSim := mat.NewDense(2, 2, []float64{0, 1, 0, 0}) // pushes [0,1] negative
	p := fit.DefaultParams()
	p.EpsFC = 1

	clamped, err := fit.UpdateSC(sc, filled(2, 0), fcSim, filled(2, 0), filled(2, 0), p)
	require.NoError(t, err)
	assert.Equal(t, 0.0, clamped.At(0, 1))
	assert.InDelta(t, 0.2, clamped.At(1, 0), 1e-15)

	p.OnlyPositive = false
	signed, err := fit.UpdateSC(sc, filled(2, 0), fcSim, filled(2, 0), filled(2, 0), p)
	require.NoError(t, err)
	assert.InDelta(t, -0.2, signed.At(0, 1), 1e-15)
	assert.InDelta(t, 0.2*0.1/0.9, signed.At(1, 0), 1e-15)
}

func TestUpdateSC_Errors(t *testing.T) {
	t.Parallel()

	p := fit.DefaultParams()
	_, err := fit.UpdateSC(filled(2, 1), filled(3, 0), filled(2, 0), filled(2, 0), filled(2, 0), p)
	assert.ErrorIs(t, err, fit.ErrDimensionMismatch)

	bad := filled(2, 0)
	bad.Set(0, 1, math.NaN())
	_, err = fit.UpdateSC(filled(2, 1), bad, filled(2, 0), filled(2, 0), filled(2, 0), p)
	assert.ErrorIs(t, err, fit.ErrNaNInf)

	p.NormTarget = 0
	_, err = fit.UpdateSC(filled(2, 1), filled(2, 0), filled(2, 0), filled(2, 0), filled(2, 0), p)
	assert.ErrorIs(t, err, fit.ErrInvalidParams)
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	a := mat.NewDense(2, 2, []float64{1, 0.5, 0.5, 1})
	b := mat.NewDense(2, 2, []float64{1, 0.3, 0.1, 1})
	rmse, err := fit.RMSE(a, b)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt((0.04+0.16)/4), rmse, 1e-15)

	assert.Equal(t, []float64{2, 3, 6}, fit.UpperTriangle(mat.NewDense(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})))

	x := mat.NewDense(3, 3, []float64{1, 0.2, 0.4, 0, 1, 0.6, 0, 0, 1})
	r, err := fit.FitCorrelation(x, x)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, 1e-12)

	r, err = fit.FitCorrelation(x, mat.NewDiagDense(3, []float64{1, 1, 1}))
	require.NoError(t, err)
	assert.Equal(t, 0.0, r, "constant triangle reports zero")
}

// echoSource returns FC = identity + 0.5·SC, a smooth deterministic model.
type echoSource struct{ calls int }

func (s *echoSource) Statistics(_ context.Context, sc *mat.Dense, lag int) (connectivity.Summary, error) {
	s.calls++
	n, _ := sc.Dims()
	fc := mat.NewDense(n, n, nil)
	fc.Scale(0.5, sc)
	for i := 0; i < n; i++ {
		fc.Set(i, i, 1)
	}

	return connectivity.Summary{FC: fc, Cov: fc, Lagged: fc, Normalized: fc, Lag: lag}, nil
}

func echoTarget() fit.Target {
	fc := mat.NewDense(2, 2, []float64{1, 0.3, 0.3, 1})

	return fit.Target{FC: fc, Cov: fc}
}

func TestFitter_RunStopsAtMaxIter(t *testing.T) {
	t.Parallel()

	src := &echoSource{}
	p := fit.DefaultParams()
	p.MaxIter = 3
	f, err := fit.NewFitter(src, echoTarget(), mat.NewDense(2, 2, []float64{0, 0.1, 0.1, 0}), p)
	require.NoError(t, err)

	sc, err := f.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, src.calls)
	assert.Len(t, f.History(), 3)
	assert.InDelta(t, 0.2, sc.At(0, 1), 1e-15)
	assert.NotEqual(t, uuid.Nil, f.ID())
}

func TestFitter_StopCallback(t *testing.T) {
	t.Parallel()

	p := fit.DefaultParams()
	p.MaxIter = 0
	p.Stop = func(it fit.Iteration) bool { return it.Index == 1 }
	f, err := fit.NewFitter(&echoSource{}, echoTarget(), mat.NewDense(2, 2, []float64{0, 0.1, 0.1, 0}), p)
	require.NoError(t, err)

	_, err = f.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, f.History(), 2)
}

func TestFitter_Errors(t *testing.T) {
	t.Parallel()

	sc0 := mat.NewDense(2, 2, []float64{0, 0.1, 0.1, 0})
	p := fit.DefaultParams()

	_, err := fit.NewFitter(nil, echoTarget(), sc0, p)
	assert.ErrorIs(t, err, fit.ErrNilSource)

	_, err = fit.NewFitter(&echoSource{}, echoTarget(), mat.NewDense(3, 3, nil), p)
	assert.ErrorIs(t, err, fit.ErrDimensionMismatch)

	p.MaxIter = 0
	f, err := fit.NewFitter(&echoSource{}, echoTarget(), sc0, p)
	require.NoError(t, err)
	_, err = f.Run(context.Background())
	assert.ErrorIs(t, err, fit.ErrNoStopCondition)

	p.MaxIter = 5
	f, err = fit.NewFitter(&echoSource{}, echoTarget(), sc0, p)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, f.History())
}

func TestFitter_LogsWithFitID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	id := uuid.MustParse("6f1c2a8e-4f7b-4d7a-9a36-0c1d2e3f4a5b")
	p := fit.DefaultParams()
	p.MaxIter = 1

	f, err := fit.NewFitter(&echoSource{}, echoTarget(), mat.NewDense(2, 2, []float64{0, 0.1, 0.1, 0}), p,
		fit.WithLogger(logger), fit.WithID(id))
	require.NoError(t, err)
	_, err = f.Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "fit_id="+id.String())
	assert.Contains(t, buf.String(), "fit iteration")
}

func TestLinearSource_Statistics(t *testing.T) {
	t.Parallel()

	src := &fit.LinearSource{Freqs: []float64{0.05, 0.05, 0.05}, G: 0.5, TR: 2}
	sc := mat.NewDense(3, 3, []float64{0, 0.2, 0, 0.2, 0, 0.2, 0, 0.2, 0})
	sum, err := src.Statistics(context.Background(), sc, 1)
	require.NoError(t, err)

	assert.Equal(t, 3, sum.Regions())
	assert.Equal(t, 1, sum.Lag)
	assert.InDelta(t, 1.0, sum.FC.At(1, 1), 1e-12)
	assert.InDelta(t, sum.FC.At(0, 1), sum.FC.At(1, 0), 1e-12)
}

func TestSimulatedSource_Statistics(t *testing.T) {
	t.Parallel()

	p := hopf.DefaultParams()
	p.Runs, p.Transient, p.PrePert, p.PostPert, p.Seed = 2, 20, 20, 20, 3
	src := &fit.SimulatedSource{Freqs: []float64{0.05, 0.06}, G: 0.5, Params: p}
	sum, err := src.Statistics(context.Background(), mat.NewDense(2, 2, []float64{0, 0.2, 0.2, 0}), 1)
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Regions())
	assert.InDelta(t, 1.0, sum.FC.At(0, 0), 1e-12)
}

func TestTargetFromSeries(t *testing.T) {
	t.Parallel()

	series := mat.NewDense(2, 6, []float64{
		1, 3, 2, 5, 4, 6,
		2, 1, 4, 3, 6, 5,
	})
	target, err := fit.TargetFromSeries(series, 1)
	require.NoError(t, err)
	sum, err := connectivity.Stats(series, 1)
	require.NoError(t, err)

	assert.True(t, mat.Equal(target.FC, sum.FC))
	assert.True(t, mat.Equal(target.Cov, sum.Normalized))
}
