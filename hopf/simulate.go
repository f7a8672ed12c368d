// SPDX-License-Identifier: MIT
// Package: hopf
//
// simulate.go — ensemble Euler–Maruyama integration.
//
// Concurrency:
//   - One goroutine per run, bounded by Params.Workers (errgroup.SetLimit).
//   - Each run owns its state, scratch buffers and noise stream; the only
//     shared write target is its disjoint block of the ensemble buffer.

package hopf

import (
	"context"
	"math"
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

const opSimulate = "Simulate"

// Simulate integrates p.Runs independent realizations of the network
// (freqs, g·sc) under pert and records x of every region at every sample.
//
// Stage 1 (Validate): shapes, finite values, parameter domain, perturbation.
// Stage 2 (Prepare): coupling matrix G·SC, node strengths, ω = 2πf.
// Stage 3 (Execute): parallel runs, each transient → pre → window → post.
//
// Errors: ErrDimensionMismatch, ErrNaNInf, ErrInvalidParams, ErrNoSamples,
// ErrDiverged, or ctx.Err() on cancellation (no partial ensemble).
func Simulate(ctx context.Context, freqs []float64, sc mat.Matrix, g float64, pert Perturbation, p Params) (*Ensemble, error) {
	// Stage 1: fail fast before any work.
	n, err := validateNetwork(freqs, sc)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(g) || math.IsInf(g, 0) {
		return nil, hopfErrorf(opSimulate, "G=%g", ErrNaNInf, g)
	}
	if err = p.Validate(); err != nil {
		return nil, err
	}
	if err = pert.validate(opSimulate, n); err != nil {
		return nil, err
	}
	pre, win, post := p.Samples(p.PrePert), p.Samples(pert.window()), p.Samples(p.PostPert)
	ens := &Ensemble{
		runs:    p.Runs,
		regions: n,
		samples: pre + win + post,
		bounds:  [4]int{0, pre, pre + win, pre + win + post},
	}
	if ens.samples == 0 {
		return nil, hopfErrorf(opSimulate, "pre=%g window=%g post=%g at TR=%g", ErrNoSamples, p.PrePert, pert.window(), p.PostPert, p.TR)
	}
	ens.data = make([]float64, p.Runs*n*ens.samples)

	// Stage 2: shared read-only network.
	net := newNetwork(freqs, sc, g)

	// Stage 3: parallel runs.
	workers := p.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)
	for r := 0; r < p.Runs; r++ {
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return net.run(gctx, r, ens, pert, p)
		})
	}
	if err = grp.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}

	return ens, nil
}

func validateNetwork(freqs []float64, sc mat.Matrix) (int, error) {
	if sc == nil {
		return 0, hopfErrorf(opSimulate, "sc is nil", ErrDimensionMismatch)
	}
	if d, ok := sc.(*mat.Dense); ok && d == nil {
		return 0, hopfErrorf(opSimulate, "sc is nil", ErrDimensionMismatch)
	}
	r, c := sc.Dims()
	if r != c || r == 0 {
		return 0, hopfErrorf(opSimulate, "sc is %dx%d", ErrDimensionMismatch, r, c)
	}
	if len(freqs) != r {
		return 0, hopfErrorf(opSimulate, "%d frequencies for %d regions", ErrDimensionMismatch, len(freqs), r)
	}
	for i, f := range freqs {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, hopfErrorf(opSimulate, "freqs[%d]=%g", ErrNaNInf, i, f)
		}
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = sc.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, hopfErrorf(opSimulate, "sc[%d,%d]=%g", ErrNaNInf, i, j, v)
			}
		}
	}

	return r, nil
}

// network is the read-only part shared by every run.
type network struct {
	n        int
	coupling *mat.Dense // G·SC
	strength []float64  // row sums of G·SC
	omega    []float64  // 2πf
}

func newNetwork(freqs []float64, sc mat.Matrix, g float64) *network {
	n := len(freqs)
	w := mat.DenseCopyOf(sc)
	w.Scale(g, w)
	strength := make([]float64, n)
	for k := 0; k < n; k++ {
		strength[k] = floats.Sum(w.RawRowView(k))
	}
	omega := make([]float64, n)
	floats.ScaleTo(omega, 2*math.Pi, freqs)

	return &network{n: n, coupling: w, strength: strength, omega: omega}
}

// integrator is the private state of one run.
type integrator struct {
	net      *network
	x, y     []float64
	cx, cy   []float64 // coupling products G·SC·x, G·SC·y
	xv, yv   *mat.VecDense
	cxv, cyv *mat.VecDense
	a        []float64
	dt, dsig float64
	noise    distuv.Normal
}

func (net *network) newIntegrator(run int, p Params) *integrator {
	n := net.n
	it := &integrator{
		net:  net,
		x:    make([]float64, n),
		y:    make([]float64, n),
		cx:   make([]float64, n),
		cy:   make([]float64, n),
		a:    make([]float64, n),
		dt:   p.Dt,
		dsig: math.Sqrt(p.Dt) * p.Noise,
		noise: distuv.Normal{
			Mu:    0,
			Sigma: 1,
			Src:   rand.NewPCG(p.Seed, uint64(run)),
		},
	}
	floats.AddConst(initialState, it.x)
	floats.AddConst(initialState, it.y)
	it.xv = mat.NewVecDense(n, it.x)
	it.yv = mat.NewVecDense(n, it.y)
	it.cxv = mat.NewVecDense(n, it.cx)
	it.cyv = mat.NewVecDense(n, it.cy)

	return it
}

// step advances the state by one Euler–Maruyama step. Every term uses the
// state at the start of the step.
func (it *integrator) step() {
	net := it.net
	it.cxv.MulVec(net.coupling, it.xv)
	it.cyv.MulVec(net.coupling, it.yv)

	var x, y, r2, dx, dy float64
	for k := 0; k < net.n; k++ {
		x, y = it.x[k], it.y[k]
		r2 = x*x + y*y
		dx = it.a[k]*x - net.omega[k]*y - x*r2 + it.cx[k] - net.strength[k]*x
		dy = it.a[k]*y + net.omega[k]*x - y*r2 + it.cy[k] - net.strength[k]*y
		it.x[k] = x + it.dt*dx + it.dsig*it.noise.Rand()
		it.y[k] = y + it.dt*dy + it.dsig*it.noise.Rand()
	}
}

// finite reports whether the state is still finite.
func (it *integrator) finite() bool {
	for k := 0; k < it.net.n; k++ {
		if math.IsNaN(it.x[k]) || math.IsInf(it.x[k], 0) || math.IsNaN(it.y[k]) || math.IsInf(it.y[k], 0) {
			return false
		}
	}

	return true
}

// run integrates one realization into its block of ens.
func (net *network) run(ctx context.Context, r int, ens *Ensemble, pert Perturbation, p Params) error {
	it := net.newIntegrator(r, p)
	out := ens.Run(r)

	// Transient at baseline.
	fill(it.a, p.Bifurcation)
	for s := p.TransientSteps(); s > 0; s-- {
		it.step()
	}
	if !it.finite() {
		return hopfErrorf(opSimulate, "run %d: transient", ErrDiverged, r)
	}

	stride := p.Stride()
	for ph := PhasePre; ph <= PhasePost; ph++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if ph == PhasePerturbation {
			pert.bifurcation(it.a, p.Bifurcation)
		} else {
			fill(it.a, p.Bifurcation)
		}
		for col := ens.bounds[ph]; col < ens.bounds[ph+1]; col++ {
			for s := 0; s < stride; s++ {
				it.step()
			}
			out.SetCol(col, it.x)
		}
		if !it.finite() {
			return hopfErrorf(opSimulate, "run %d: %v phase", ErrDiverged, r, ph)
		}
	}

	return nil
}

func fill(dst []float64, v float64) {
	for i := range dst {
		dst[i] = v
	}
}
