// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package potmap implements the dense symmetric matrix mapping
// (typeI,typeJ) pairs to a PairPotential, dispatching energy/force queries
// from simulation-side atom pairs (spec §4.5).
package potmap

import (
	"github.com/cpmech/gosl/chk"
	"github.com/disorderedmaterials/dissolve-sub007/atomtype"
	"github.com/disorderedmaterials/dissolve-sub007/potential"
)

// PotentialMap is a dense N×N matrix indexed by global atom-type index;
// entries (i,j) and (j,i) alias the same PairPotential
type PotentialMap struct {
	n       int
	entries [][]*potential.PairPotential
	rangeR  float64
}

// Initialise builds the symmetric index matrix from atomTypes and
// pairPotentials. Fails Unresolved if any PairPotential references a type
// name absent from atomTypes, or if any PairPotential's range does not
// match the supplied range.
func Initialise(atomTypes atomtype.Registry, pairPotentials []*potential.PairPotential, rangeR float64) (*PotentialMap, error) {
	n := atomTypes.Len()
	o := &PotentialMap{n: n, rangeR: rangeR}
	o.entries = make([][]*potential.PairPotential, n)
	for i := range o.entries {
		o.entries[i] = make([]*potential.PairPotential, n)
	}

	for _, pp := range pairPotentials {
		i, ok := atomTypes.Lookup(pp.NameI)
		if !ok {
			return nil, chk.Err("potmap: Initialise: Unresolved: atom type %q referenced by pair potential not found in registry", pp.NameI)
		}
		j, ok := atomTypes.Lookup(pp.NameJ)
		if !ok {
			return nil, chk.Err("potmap: Initialise: Unresolved: atom type %q referenced by pair potential not found in registry", pp.NameJ)
		}
		if pp.Range() != rangeR {
			return nil, chk.Err("potmap: Initialise: pair potential (%s,%s) has range=%v, expected %v", pp.NameI, pp.NameJ, pp.Range(), rangeR)
		}
		o.entries[i][j] = pp
		o.entries[j][i] = pp
	}
	return o, nil
}

// Range returns the common cutoff shared by every entry
func (o *PotentialMap) Range() float64 { return o.rangeR }

// N returns the number of atom types the map is sized for
func (o *PotentialMap) N() int { return o.n }

// Get returns the PairPotential governing the (i,j) interaction, or nil if
// none was registered for that pair
func (o *PotentialMap) Get(i, j int) *potential.PairPotential {
	return o.entries[i][j]
}

// Energy dispatches an energy query for the (i,j) pair at separation r;
// precondition r >= 0 (terminates the process otherwise, per §4.5/§7)
func (o *PotentialMap) Energy(i, j int, r float64) float64 {
	if r < 0 {
		chk.Panic("potmap: Energy: OutOfRange: r=%v must be >= 0", r)
	}
	pp := o.entries[i][j]
	if pp == nil {
		return 0
	}
	return pp.Energy(r)
}

// Force dispatches a force query for the (i,j) pair at separation r;
// precondition r >= 0
func (o *PotentialMap) Force(i, j int, r float64) float64 {
	if r < 0 {
		chk.Panic("potmap: Force: OutOfRange: r=%v must be >= 0", r)
	}
	pp := o.entries[i][j]
	if pp == nil {
		return 0
	}
	return pp.Force(r)
}

// EnergyWithCharges dispatches an energy query as Energy does, additionally
// adding the analytic Coulomb contribution of the atom-pair charge product
// qiqj when the underlying PairPotential does not already fold charges into
// its tabulated values (spec §4.5)
func (o *PotentialMap) EnergyWithCharges(i, j int, r, qiqj float64) float64 {
	if r < 0 {
		chk.Panic("potmap: EnergyWithCharges: OutOfRange: r=%v must be >= 0", r)
	}
	pp := o.entries[i][j]
	if pp == nil {
		return 0
	}
	u := pp.Energy(r)
	if !pp.IncludesCharges() {
		u += pp.ExternalCoulombEnergy(qiqj, r)
	}
	return u
}

// ForceWithCharges dispatches a force query as Force does, additionally
// adding the analytic Coulomb force of the atom-pair charge product qiqj
// when the underlying PairPotential does not already fold charges in
func (o *PotentialMap) ForceWithCharges(i, j int, r, qiqj float64) float64 {
	if r < 0 {
		chk.Panic("potmap: ForceWithCharges: OutOfRange: r=%v must be >= 0", r)
	}
	pp := o.entries[i][j]
	if pp == nil {
		return 0
	}
	f := pp.Force(r)
	if !pp.IncludesCharges() {
		f += pp.ExternalCoulombForce(qiqj, r)
	}
	return f
}
