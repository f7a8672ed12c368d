// Package fit adjusts a structural connectivity matrix until a model
// (simulated or linearized Hopf network) reproduces empirical functional
// connectivity and normalized lagged covariance.
//
// Update rule (one iteration):
//
//	SC' = SC + εFC·(FCemp − FCsim) + εCov·(Covemp − Covsim)
//	SC'[i,j] = 0          wherever SC[i,j] == 0   (support never grows)
//	SC'[i,j] = max(0, ·)  when OnlyPositive
//	SC'      = SC' · NormTarget / max|SC'|         (zero stays zero)
//
// The covariance terms are the sigma-ratio normalized lagged covariances
// of connectivity.Stats, so both differences are dimensionless.
//
// Key features:
//   - UpdateSC: the pure update rule above.
//   - Source: where simulated statistics come from. SimulatedSource runs a
//     hopf ensemble; LinearSource uses the closed-form linear solver.
//   - Fitter: sequential loop with Step / Run, caller-controlled stopping
//     (MaxIter or a Stop callback), per-iteration fit metrics and debug
//     logging through log/slog tagged with a per-fit UUID.
//
// Usage:
//
//	target, _ := fit.TargetFromSeries(empirical, 1)
//	src := &fit.LinearSource{Freqs: freqs, G: 0.5, TR: 2}
//	p := fit.DefaultParams()
//	p.MaxIter = 200
//	f, _ := fit.NewFitter(src, target, sc0, p, fit.WithLogger(logger))
//	sc, err := f.Run(ctx)
package fit
