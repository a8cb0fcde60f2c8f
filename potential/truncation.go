// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package potential

// ShortRangeTruncation selects how the short-range analytic form is driven
// to zero at the cutoff
type ShortRangeTruncation int

// available short-range truncation schemes
const (
	NoShortRange ShortRangeTruncation = iota
	ShiftedShortRange
	CosineShortRange
)

// CoulombTruncation selects how the analytic Coulomb term is driven to zero
// at the cutoff
type CoulombTruncation int

// available Coulomb truncation schemes
const (
	NoCoulomb CoulombTruncation = iota
	ShiftedCoulomb
)

// defaults is the process-wide truncation configuration, set once at
// program start via Configure and read-only thereafter (spec §5/§6); no
// core operation mutates it.
var defaults = struct {
	shortRange  ShortRangeTruncation
	coulomb     CoulombTruncation
	cosineWidth float64
}{
	shortRange:  NoShortRange,
	coulomb:     NoCoulomb,
	cosineWidth: 0,
}

// Configure sets the process-wide default truncation schemes. Call once at
// program start, before any PairPotential is tabulated; it is not
// synchronised and must not be called concurrently with tabulation.
func Configure(shortRange ShortRangeTruncation, coulomb CoulombTruncation, cosineWidth float64) {
	defaults.shortRange = shortRange
	defaults.coulomb = coulomb
	defaults.cosineWidth = cosineWidth
}

// DefaultShortRangeTruncation returns the current process-wide short-range
// truncation scheme
func DefaultShortRangeTruncation() ShortRangeTruncation { return defaults.shortRange }

// DefaultCoulombTruncation returns the current process-wide Coulomb
// truncation scheme
func DefaultCoulombTruncation() CoulombTruncation { return defaults.coulomb }

// DefaultCosineWidth returns the current process-wide cosine-truncation
// width
func DefaultCosineWidth() float64 { return defaults.cosineWidth }
