// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package potential

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
	"github.com/disorderedmaterials/dissolve-sub007/interp"
	"github.com/disorderedmaterials/dissolve-sub007/xy"
)

const coulombK = 138.935458 // kJ.mol^-1.Angstrom.e^-2, matching gofem's SI-ish convention of carrying physical constants as named values

// PairPotential holds the analytic short-range form and parameters for one
// atom-type pair plus an additive empirical correction, tabulated on
// [0,range] with uniform spacing delta (spec §4.4).
type PairPotential struct {
	NameI, NameJ string

	form ShortRangeForm

	qi, qj         float64
	includeCharges bool

	shortTrunc  ShortRangeTruncation
	coulTrunc   CoulombTruncation
	cosineWidth float64

	rangeR, delta float64
	nPoints       int

	uOriginal   *xy.XY
	uAdditional *xy.XY
	uFull       *xy.XY
	dUFull      *xy.XY

	uFullIp  *interp.Interpolator
	dUFullIp *interp.Interpolator

	srEnergyAtCutoff, srForceAtCutoff float64
}

// New builds a PairPotential for the named type pair using the given
// analytic form, with truncation schemes taken from the process-wide
// defaults (potential.Configure). Call Tabulate to populate the tables.
func New(nameI, nameJ string, form ShortRangeForm) *PairPotential {
	o := &PairPotential{
		NameI: nameI, NameJ: nameJ,
		form:        form,
		shortTrunc:  DefaultShortRangeTruncation(),
		coulTrunc:   DefaultCoulombTruncation(),
		cosineWidth: DefaultCosineWidth(),
	}
	return o
}

// SetCharges sets qi, qj and enables folding the Coulomb term into the
// tabulated potential (includeAtomTypeCharges = true)
func (o *PairPotential) SetCharges(qi, qj float64) {
	o.qi, o.qj = qi, qj
	o.includeCharges = true
}

// Range returns the tabulation cutoff
func (o *PairPotential) Range() float64 { return o.rangeR }

// Delta returns the tabulation spacing
func (o *PairPotential) Delta() float64 { return o.delta }

// NPoints returns the number of tabulated points
func (o *PairPotential) NPoints() int { return o.nPoints }

// analyticShortRangeRaw evaluates the raw analytic short-range energy/force,
// without truncation
func (o *PairPotential) analyticShortRangeRaw(r float64) (u, f float64) {
	return o.form.Energy(r), o.form.Force(r)
}

// AnalyticEnergy evaluates the closed-form energy at r, bypassing the table,
// including the analytic Coulomb term when charges are not folded into the
// tabulated potential (includeAtomTypeCharges == false, per spec §4.4)
func (o *PairPotential) AnalyticEnergy(r float64) float64 {
	u := o.truncatedShortRangeEnergy(r)
	if !o.includeCharges {
		u += o.analyticCoulombEnergy(o.qi*o.qj, r)
	}
	return u
}

// AnalyticForce evaluates the closed-form force (-dU/dr) at r, bypassing the
// table
func (o *PairPotential) AnalyticForce(r float64) float64 {
	f := o.truncatedShortRangeForce(r)
	if !o.includeCharges {
		f += o.analyticCoulombForce(o.qi*o.qj, r)
	}
	return f
}

// truncatedShortRangeEnergy applies the configured short-range truncation
// scheme to the raw analytic energy
func (o *PairPotential) truncatedShortRangeEnergy(r float64) float64 {
	u, _ := o.analyticShortRangeRaw(r)
	switch o.shortTrunc {
	case NoShortRange:
		return u
	case ShiftedShortRange:
		// subtract the value and the slope at the cutoff (dU/dr = -force)
		return u - o.srEnergyAtCutoff + (r-o.rangeR)*o.srForceAtCutoff
	case CosineShortRange:
		if o.cosineWidth <= 0 || r < o.rangeR-o.cosineWidth {
			return u
		}
		if r >= o.rangeR {
			return 0
		}
		w := 0.5 * (1 + math.Cos(math.Pi*(r-(o.rangeR-o.cosineWidth))/o.cosineWidth))
		return u * w
	}
	return u
}

// truncatedShortRangeForce applies the configured short-range truncation
// scheme to the raw analytic force
func (o *PairPotential) truncatedShortRangeForce(r float64) float64 {
	_, f := o.analyticShortRangeRaw(r)
	switch o.shortTrunc {
	case NoShortRange:
		return f
	case ShiftedShortRange:
		return f - o.srForceAtCutoff
	case CosineShortRange:
		if o.cosineWidth <= 0 || r < o.rangeR-o.cosineWidth {
			return f
		}
		if r >= o.rangeR {
			return 0
		}
		u, _ := o.analyticShortRangeRaw(r)
		w := 0.5 * (1 + math.Cos(math.Pi*(r-(o.rangeR-o.cosineWidth))/o.cosineWidth))
		dw := -0.5 * math.Pi / o.cosineWidth * math.Sin(math.Pi*(r-(o.rangeR-o.cosineWidth))/o.cosineWidth)
		// force = -d(u*w)/dr = -(du/dr*w + u*dw/dr) = f*w - u*dw
		return f*w - u*dw
	}
	return f
}

// Tabulate populates uOriginal for r_m = m*delta over [0,range] from the
// analytic form (short-range plus optional Coulomb when charges are
// folded in), zeroes uAdditional, then regenerates uFull and dUFull.
func (o *PairPotential) Tabulate(rangeR, delta float64) error {
	if rangeR <= 0 || delta <= 0 {
		return chk.Err("potential: Tabulate: range=%v and delta=%v must be positive", rangeR, delta)
	}
	o.rangeR = rangeR
	o.delta = delta
	o.nPoints = int(rangeR/delta+0.5) + 1

	if o.shortTrunc == ShiftedShortRange {
		o.srEnergyAtCutoff, o.srForceAtCutoff = o.analyticShortRangeRaw(rangeR)
	}

	o.uOriginal = new(xy.XY)
	o.uOriginal.Initialise(o.nPoints)
	ux, uy := o.uOriginal.X(), o.uOriginal.Y()
	for m := 0; m < o.nPoints; m++ {
		r := float64(m) * delta
		ux[m] = r
		if r == 0 {
			uy[m] = 0
			continue
		}
		// truncatedShortRangeEnergy already yields exactly 0 at r>=rangeR
		// under Shifted/Cosine; NoShortRange has no boundary exception and
		// keeps the true analytic value there.
		u := o.truncatedShortRangeEnergy(r)
		if o.includeCharges {
			u += o.analyticCoulombEnergy(o.qi*o.qj, r)
		}
		uy[m] = u
	}

	o.uAdditional = new(xy.XY)
	o.uAdditional.Initialise(o.nPoints)
	copy(o.uAdditional.X(), ux)

	return o.regenerate()
}

// regenerate rebuilds uFull, dUFull and their Interpolators; treated
// atomically by the client per spec §5's ordering guarantee.
func (o *PairPotential) regenerate() error {
	if err := o.calculateUFull(); err != nil {
		return err
	}
	if err := o.calculateDUFull(); err != nil {
		return err
	}
	return nil
}

// calculateUFull sets uFull = uOriginal + uAdditional pointwise and rebuilds
// its Interpolator
func (o *PairPotential) calculateUFull() error {
	o.uFull = o.uOriginal.Clone()
	ay := o.uAdditional.Y()
	fy := o.uFull.Y()
	for i := range fy {
		fy[i] += ay[i]
	}
	ip, err := interp.New(o.uFull, interp.Spline)
	if err != nil {
		return chk.Err("potential: calculateUFull: %v", err)
	}
	o.uFullIp = ip
	return nil
}

// calculateDUFull computes the central-difference derivative table of
// uFull, with sign convention force = -dU/dr, via num.DerivCentral
func (o *PairPotential) calculateDUFull() error {
	x, y := o.uFull.X(), o.uFull.Y()
	n := len(x)
	o.dUFull = new(xy.XY)
	o.dUFull.Initialise(n)
	dx, dy := o.dUFull.X(), o.dUFull.Y()
	copy(dx, x)
	h := o.delta
	for i := 0; i < n; i++ {
		d, err := num.DerivCentral(func(xx float64, args ...interface{}) (res float64) {
			res = interpLinearEval(x, y, xx)
			return
		}, x[i], h)
		if err != nil {
			return chk.Err("potential: calculateDUFull: NumericFailure: %v", err)
		}
		dy[i] = -d
	}
	ip, err := interp.New(o.dUFull, interp.Spline)
	if err != nil {
		return chk.Err("potential: calculateDUFull: %v", err)
	}
	o.dUFullIp = ip
	return nil
}

// interpLinearEval evaluates a simple linear interpolation/extrapolation of
// the tabulated (x,y) data at xx, used only to feed num.DerivCentral at and
// near the table boundary
func interpLinearEval(x, y []float64, xx float64) float64 {
	n := len(x)
	if xx <= x[0] {
		if n < 2 {
			return y[0]
		}
		return y[0] + (xx-x[0])*(y[1]-y[0])/(x[1]-x[0])
	}
	if xx >= x[n-1] {
		return y[n-1] + (xx-x[n-1])*(y[n-1]-y[n-2])/(x[n-1]-x[n-2])
	}
	i := int((xx - x[0]) / (x[1] - x[0]))
	if i < 0 {
		i = 0
	}
	if i > n-2 {
		i = n - 2
	}
	return y[i] + (xx-x[i])*(y[i+1]-y[i])/(x[i+1]-x[i])
}

// Energy returns the tabulated uFull at r via its Interpolator; r<0 is a
// precondition violation (terminates the process); r>=range returns 0.
func (o *PairPotential) Energy(r float64) float64 {
	if r < 0 {
		chk.Panic("potential: Energy: OutOfRange: r=%v must be >= 0", r)
	}
	if r >= o.rangeR {
		return 0
	}
	return o.uFullIp.Y(r)
}

// Force returns the tabulated dUFull at r via its Interpolator (sign
// convention force = -dU/dr); r<0 is a precondition violation; r>=range
// returns 0.
func (o *PairPotential) Force(r float64) float64 {
	if r < 0 {
		chk.Panic("potential: Force: OutOfRange: r=%v must be >= 0", r)
	}
	if r >= o.rangeR {
		return 0
	}
	return o.dUFullIp.Y(r)
}

// SetUAdditional overwrites the correction table (must match the tabulation
// grid) and rebuilds uFull/dUFull
func (o *PairPotential) SetUAdditional(delta *xy.XY) error {
	if err := o.checkGrid(delta); err != nil {
		return err
	}
	o.uAdditional = delta.Clone()
	return o.regenerate()
}

// AdjustUAdditional performs uAdditional += factor*deltaU pointwise and
// rebuilds uFull/dUFull
func (o *PairPotential) AdjustUAdditional(deltaU *xy.XY, factor float64) error {
	if err := o.checkGrid(deltaU); err != nil {
		return err
	}
	ay := o.uAdditional.Y()
	dy := deltaU.Y()
	for i := range ay {
		ay[i] += factor * dy[i]
	}
	return o.regenerate()
}

// ResetUAdditional zeroes the correction table and rebuilds uFull/dUFull
func (o *PairPotential) ResetUAdditional() error {
	o.uAdditional = new(xy.XY)
	o.uAdditional.Initialise(o.nPoints)
	copy(o.uAdditional.X(), o.uOriginal.X())
	return o.regenerate()
}

// checkGrid fails ShapeError if delta does not match the tabulation grid in
// size and spacing
func (o *PairPotential) checkGrid(delta *xy.XY) error {
	if delta.Len() != o.nPoints {
		return chk.Err("potential: ShapeError: expected %d points, got %d", o.nPoints, delta.Len())
	}
	dx := delta.X()
	for i := 1; i < len(dx); i++ {
		if math.Abs((dx[i]-dx[i-1])-o.delta) > 1e-9 {
			return chk.Err("potential: ShapeError: spacing mismatch at index %d: got %v, want %v", i, dx[i]-dx[i-1], o.delta)
		}
	}
	return nil
}

// UOriginal returns the analytic baseline table
func (o *PairPotential) UOriginal() *xy.XY { return o.uOriginal }

// UAdditional returns the accumulated empirical correction table
func (o *PairPotential) UAdditional() *xy.XY { return o.uAdditional }

// UFull returns uOriginal+uAdditional
func (o *PairPotential) UFull() *xy.XY { return o.uFull }

// DUFull returns the derivative table
func (o *PairPotential) DUFull() *xy.XY { return o.dUFull }
