// SPDX-License-Identifier: MIT
// Package: hopf
//
// ensemble.go — the recorded output of Simulate.
//
// Layout: one flat row-major buffer of runs × regions × samples; run r is
// the regions×samples block starting at r·regions·samples. Run and Phase
// return views that share this buffer.

package hopf

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Phase names one recorded segment of a run.
type Phase int

const (
	PhasePre Phase = iota
	PhasePerturbation
	PhasePost
)

// String implements fmt.Stringer.
func (ph Phase) String() string {
	switch ph {
	case PhasePre:
		return "pre"
	case PhasePerturbation:
		return "perturbation"
	case PhasePost:
		return "post"
	default:
		return fmt.Sprintf("Phase(%d)", int(ph))
	}
}

// Ensemble holds runs × regions × samples recorded x values.
type Ensemble struct {
	runs, regions, samples int
	// bounds[ph] is the first sample of phase ph; bounds[3] == samples.
	bounds [4]int
	data   []float64
}

// NewEnsemble wraps data (runs·regions·samples values, row-major) with
// the phase lengths pre, pert, post. It is used by readers that restore a
// stored ensemble; Simulate builds its own.
func NewEnsemble(runs, regions, pre, pert, post int, data []float64) (*Ensemble, error) {
	const op = "NewEnsemble"
	samples := pre + pert + post
	switch {
	case runs <= 0 || regions <= 0 || pre < 0 || pert < 0 || post < 0:
		return nil, hopfErrorf(op, "runs=%d regions=%d phases=(%d,%d,%d)", ErrInvalidParams, runs, regions, pre, pert, post)
	case samples == 0:
		return nil, hopfErrorf(op, "all phases empty", ErrNoSamples)
	case regions > math.MaxInt/runs || samples > math.MaxInt/(runs*regions):
		return nil, hopfErrorf(op, "%dx%dx%d values overflow", ErrInvalidParams, runs, regions, samples)
	case len(data) != runs*regions*samples:
		return nil, hopfErrorf(op, "%d values for %dx%dx%d", ErrDimensionMismatch, len(data), runs, regions, samples)
	}

	return &Ensemble{
		runs:    runs,
		regions: regions,
		samples: samples,
		bounds:  [4]int{0, pre, pre + pert, samples},
		data:    data,
	}, nil
}

// Runs returns the ensemble size.
func (e *Ensemble) Runs() int { return e.runs }

// Regions returns the number of regions.
func (e *Ensemble) Regions() int { return e.regions }

// Samples returns the number of recorded samples per run.
func (e *Ensemble) Samples() int { return e.samples }

// PhaseLen returns the number of samples in phase ph.
func (e *Ensemble) PhaseLen(ph Phase) int {
	return e.bounds[ph+1] - e.bounds[ph]
}

// Data returns the flat backing buffer (not a copy).
func (e *Ensemble) Data() []float64 { return e.data }

// Run returns run r as a regions×samples view sharing the ensemble buffer.
// Panics if r is out of range.
func (e *Ensemble) Run(r int) *mat.Dense {
	if r < 0 || r >= e.runs {
		panic(fmt.Sprintf("hopf: run %d out of range [0,%d)", r, e.runs))
	}
	size := e.regions * e.samples

	return mat.NewDense(e.regions, e.samples, e.data[r*size:(r+1)*size])
}

// Phase returns the samples of phase ph in run r as a view, or nil when
// the phase is empty.
func (e *Ensemble) Phase(r int, ph Phase) *mat.Dense {
	if ph < PhasePre || ph > PhasePost {
		panic(fmt.Sprintf("hopf: %v out of range", ph))
	}
	lo, hi := e.bounds[ph], e.bounds[ph+1]
	if lo == hi {
		return nil
	}

	return e.Run(r).Slice(0, e.regions, lo, hi).(*mat.Dense)
}

// Mean returns the regions×samples average over runs.
func (e *Ensemble) Mean() *mat.Dense {
	mean := mat.NewDense(e.regions, e.samples, nil)
	for r := 0; r < e.runs; r++ {
		mean.Add(mean, e.Run(r))
	}
	mean.Scale(1/float64(e.runs), mean)

	return mean
}
