// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package potential

// analyticCoulombEnergy evaluates the Coulomb energy k*qiqj/r for r>0,
// applying the configured Coulomb truncation scheme
func (o *PairPotential) analyticCoulombEnergy(qiqj, r float64) float64 {
	if r <= 0 || qiqj == 0 {
		return 0
	}
	u := coulombK * qiqj / r
	if o.coulTrunc == ShiftedCoulomb {
		u -= coulombK * qiqj / o.rangeR
	}
	return u
}

// analyticCoulombForce evaluates -d/dr(k*qiqj/r) = k*qiqj/r^2, applying the
// configured Coulomb truncation scheme (a constant shift has zero derivative,
// so ShiftedCoulomb leaves the force unchanged)
func (o *PairPotential) analyticCoulombForce(qiqj, r float64) float64 {
	if r <= 0 || qiqj == 0 {
		return 0
	}
	return coulombK * qiqj / (r * r)
}

// IncludesCharges reports whether this potential already folds qi*qj into
// its tabulated energy/force (see SetCharges)
func (o *PairPotential) IncludesCharges() bool { return o.includeCharges }

// ExternalCoulombEnergy evaluates the analytic Coulomb energy for an
// atom-pair charge product supplied by the caller (the Configuration
// boundary collaborator), for use by PotentialMap when charges are carried
// on atoms rather than folded into the potential
func (o *PairPotential) ExternalCoulombEnergy(qiqj, r float64) float64 {
	return o.analyticCoulombEnergy(qiqj, r)
}

// ExternalCoulombForce evaluates the analytic Coulomb force for an
// atom-pair charge product supplied by the caller
func (o *PairPotential) ExternalCoulombForce(qiqj, r float64) float64 {
	return o.analyticCoulombForce(qiqj, r)
}
