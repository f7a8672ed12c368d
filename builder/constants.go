// SPDX-License-Identifier: MIT
// Package: builder
//
// constants.go — constructor names and minimum sizes.

package builder

// Constructor names used as error prefixes.
const (
	MethodRandomSC     = "RandomSC"
	MethodRingSC       = "RingSC"
	MethodFrequencies  = "Frequencies"
	MethodWhiteNoise   = "WhiteNoise"
	MethodLaggedChain  = "LaggedChain"
	MethodOscillations = "Oscillations"
)

// MinRegions is the smallest network any constructor builds.
const MinRegions = 1

// MinRingRegions is the smallest ring without self-loops or double edges.
const MinRingRegions = 3

// MinSamples is the shortest series any constructor builds.
const MinSamples = 1
