// SPDX-License-Identifier: MIT
// Package: fit
//
// update.go — the structural connectivity update rule.

package fit

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/connectivity"
)

const opUpdateSC = "UpdateSC"

// UpdateSC applies one fitting step to sc and returns a new matrix; sc is
// not modified.
//
// Stage 1 (Validate): five n×n finite matrices, valid Params.
// Stage 2 (Execute): gradient step on both differences.
// Stage 3 (Finalize): support mask, positivity clamp, rescale to NormTarget.
//
// An update whose every entry is zero (for example an all-zero sc) stays
// zero: the rescale is skipped instead of dividing by zero.
//
// Errors: ErrDimensionMismatch / connectivity shape sentinels, ErrNaNInf,
// ErrInvalidParams.
// Complexity: O(n²).
func UpdateSC(sc, fcEmp, fcSim, covEmp, covSim mat.Matrix, p Params) (*mat.Dense, error) {
	// Stage 1: validate.
	if err := p.Validate(); err != nil {
		return nil, err
	}
	named := []struct {
		name string
		m    mat.Matrix
	}{
		{"fcEmp", fcEmp}, {"fcSim", fcSim}, {"covEmp", covEmp}, {"covSim", covSim},
	}
	for _, o := range named {
		if _, err := connectivity.ValidateSameRegions(opUpdateSC, "sc", sc, o.name, o.m); err != nil {
			return nil, err
		}
	}
	n, _ := sc.Dims()

	// Stage 2: SC + εFC·ΔFC + εCov·ΔCov.
	next := mat.NewDense(n, n, nil)
	diff := mat.NewDense(n, n, nil)
	next.Copy(sc)
	diff.Sub(fcEmp, fcSim)
	diff.Scale(p.EpsFC, diff)
	next.Add(next, diff)
	diff.Sub(covEmp, covSim)
	diff.Scale(p.EpsCov, diff)
	next.Add(next, diff)

	// Stage 3: support, clamp, bound.
	var i, j int
	var v, maxAbs float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = next.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fitErrorf(opUpdateSC, "entry [%d,%d]=%g", ErrNaNInf, i, j, v)
			}
			if sc.At(i, j) == 0 || (p.OnlyPositive && v < 0) {
				v = 0
			}
			next.Set(i, j, v)
			maxAbs = math.Max(maxAbs, math.Abs(v))
		}
	}
	if maxAbs == 0 {
		return next, nil
	}
	next.Scale(p.NormTarget/maxAbs, next)

	return next, nil
}
