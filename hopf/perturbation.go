// SPDX-License-Identifier: MIT
// Package: hopf
//
// perturbation.go — the perturbation variant.

package hopf

import (
	"fmt"
	"math"
)

// PerturbationKind selects which regions a perturbation affects.
type PerturbationKind int

const (
	// None records the pre and post phases only; the window has zero length.
	None PerturbationKind = iota
	// AllNodes sets a = Amplitude for every region inside the window.
	AllNodes
	// MaskedNodes sets a = Amplitude for the masked regions only.
	MaskedNodes
)

// String implements fmt.Stringer.
func (k PerturbationKind) String() string {
	switch k {
	case None:
		return "none"
	case AllNodes:
		return "all-nodes"
	case MaskedNodes:
		return "masked-nodes"
	default:
		return fmt.Sprintf("PerturbationKind(%d)", int(k))
	}
}

// Perturbation defaults.
const (
	DefaultPerturbationLength    = 20.0
	DefaultPerturbationAmplitude = 0.05
)

// Perturbation is a closed variant over PerturbationKind. Build it with
// NoPerturbation, AllNodesPerturbation, MaskedPerturbation or
// NewPerturbation.
//
// Amplitude is absolute: inside the window every perturbed region uses
// a = Amplitude whatever Params.Bifurcation is. It is not an offset from
// the baseline; with the default baseline −0.02 the two readings coincide.
type Perturbation struct {
	Kind      PerturbationKind
	Mask      []bool  // MaskedNodes only; one entry per region
	Length    float64 // window duration
	Amplitude float64 // absolute bifurcation parameter inside the window
}

// NoPerturbation returns the unperturbed variant.
func NoPerturbation() Perturbation {
	return Perturbation{Kind: None}
}

// AllNodesPerturbation perturbs every region for length time units.
func AllNodesPerturbation(length, amplitude float64) Perturbation {
	return Perturbation{Kind: AllNodes, Length: length, Amplitude: amplitude}
}

// MaskedPerturbation perturbs the regions with mask[k] == true. The mask
// is copied.
func MaskedPerturbation(mask []bool, length, amplitude float64) Perturbation {
	m := make([]bool, len(mask))
	copy(m, mask)

	return Perturbation{Kind: MaskedNodes, Mask: m, Length: length, Amplitude: amplitude}
}

// NewPerturbation is the flag-style constructor: allNodes selects
// AllNodes, a non-nil mask selects MaskedNodes, neither selects None.
// Both at once is ErrConflictingPerturbation.
func NewPerturbation(allNodes bool, mask []bool, length, amplitude float64) (Perturbation, error) {
	switch {
	case allNodes && mask != nil:
		return Perturbation{}, hopfErrorf("NewPerturbation", "allNodes=true with a %d-entry mask", ErrConflictingPerturbation, len(mask))
	case allNodes:
		return AllNodesPerturbation(length, amplitude), nil
	case mask != nil:
		return MaskedPerturbation(mask, length, amplitude), nil
	default:
		return NoPerturbation(), nil
	}
}

// window returns the recorded duration of the perturbation phase.
func (p Perturbation) window() float64 {
	if p.Kind == None {
		return 0
	}

	return p.Length
}

// validate checks p against n regions.
func (p Perturbation) validate(op string, n int) error {
	switch p.Kind {
	case None:
		return nil
	case AllNodes, MaskedNodes:
	default:
		return hopfErrorf(op, "kind %v", ErrInvalidParams, p.Kind)
	}
	if math.IsNaN(p.Length) || math.IsInf(p.Length, 0) || math.IsNaN(p.Amplitude) || math.IsInf(p.Amplitude, 0) {
		return hopfErrorf(op, "length=%g amplitude=%g", ErrNaNInf, p.Length, p.Amplitude)
	}
	if p.Length < 0 {
		return hopfErrorf(op, "length=%g", ErrInvalidParams, p.Length)
	}
	if p.Kind == MaskedNodes && len(p.Mask) != n {
		return hopfErrorf(op, "mask has %d entries for %d regions", ErrDimensionMismatch, len(p.Mask), n)
	}

	return nil
}

// bifurcation fills a with the per-region bifurcation parameter inside
// the perturbation window.
func (p Perturbation) bifurcation(a []float64, baseline float64) {
	for k := range a {
		switch {
		case p.Kind == AllNodes, p.Kind == MaskedNodes && p.Mask[k]:
			a[k] = p.Amplitude
		default:
			a[k] = baseline
		}
	}
}
