// Package nonequilibrium is a toolkit for whole-brain Hopf models and the
// measures of broken detailed balance computed on them: how far a network
// of noisy oscillators driven by a structural connectome sits from
// equilibrium, and how a perturbation moves it.
//
// What is in the box?
//
//	connectivity/ — lagged covariance, FC, sigma ratio and their summaries
//	hopf/         — stochastic Stuart–Landau network simulator with perturbations
//	linear/       — linear-noise approximation: Jacobian, Lyapunov solve, lagged covariance
//	fit/          — iterative effective-connectivity fitting against empirical data
//	asymmetry/    — EC − ECᵀ and the asymmetric pair count
//	insideout/    — INSIDEOUT irreversibility index of a series
//	builder/      — deterministic SC, frequency and series fixtures
//	tsio/         — CSV matrices and compressed ensemble archives
//	cmd/hopfwb    — command line front end
//
// Every matrix is a gonum *mat.Dense with regions on the rows; series are
// n×T with samples on the columns.
//
// Typical pipeline:
//
//	series ─► connectivity.Stats ─► fit.Target
//	                                    │
//	SC ─► fit.Fitter (linear or simulated source) ─► EC ─► asymmetry
//	                                    │
//	EC ─► hopf.Simulate (perturbed) ─► insideout.Index per phase
//
//	go install github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/cmd/hopfwb@latest
package nonequilibrium
