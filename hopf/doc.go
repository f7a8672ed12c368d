// Package hopf simulates ensembles of coupled Hopf (Stuart–Landau)
// oscillators, one per brain region, with an optional transient change
// of the local bifurcation parameter (a "perturbation").
//
// Model:
//
//	Each region k carries a planar state (x_k, y_k) with natural angular
//	frequency ω_k = 2π·f_k. With global coupling G and structural
//	connectivity SC the Euler–Maruyama step is
//
//	  dx_k = a_k x_k − ω_k y_k − x_k(x_k² + y_k²) + G Σ_j SC[k,j](x_j − x_k)
//	  dy_k = a_k y_k + ω_k x_k − y_k(x_k² + y_k²) + G Σ_j SC[k,j](y_j − y_k)
//
//	plus σ·sqrt(dt)·N(0,1) per component. a_k is the baseline bifurcation
//	parameter (−0.02) except for perturbed regions inside the
//	perturbation window.
//
// Phases per run:
//
//	Transient (discarded) → Pre → Perturbation → Post.
//	Only x is recorded, once every round(TR/dt) steps.
//
// Key features:
//   - Perturbation is a closed variant: None, AllNodes or MaskedNodes.
//   - Runs are independent and parallel (errgroup, bounded by Workers).
//   - Run r draws noise from its own PCG stream seeded by (Seed, r): the
//     ensemble does not depend on the worker count or scheduling.
//   - Context cancellation is honoured between runs and phases.
//
// Usage:
//
//	p := hopf.DefaultParams()
//	p.Runs, p.Seed = 20, 7
//	pert := hopf.AllNodesPerturbation(20, 0.05)
//	ens, err := hopf.Simulate(ctx, freqs, sc, 0.5, pert, p)
//	if err != nil { ... }
//	post := ens.Phase(0, hopf.PhasePost)
//
// Complexity:
//
//   - Time:   O(runs · steps · n²) (dense coupling product per step).
//   - Memory: O(runs · n · samples) for the recorded ensemble.
package hopf
