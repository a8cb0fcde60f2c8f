// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package basis

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/disorderedmaterials/dissolve-sub007/mc"
	"github.com/disorderedmaterials/dissolve-sub007/xy"
)

// expMax bounds the magnitude of the log-space exponent evaluated in
// poissonReal; terms that would underflow below exp(-expMax) are returned as
// exactly zero rather than risking overflow in the other direction for
// pathological inputs
const expMax = 25.0

// Poisson is a sum of Poisson-distribution-shaped terms
// p_n(r;sigmaR) ∝ (r/sigmaR)^n * exp(-r/sigmaR), normalised so that
// ∫p_n = 1/(4*pi*sigmaR^3*(n+2)!), fitted against a reference signal (spec
// §4.6). Its closed-form Fourier transform avoids numerical integration.
type Poisson struct {
	reference *xy.XY

	c      []float64 // fitted coefficients
	n      []int     // per-term Poisson power, n_k = floor(rStep/sigmaR+1/2)*(k+1)-1
	rStep  float64   // spacing between successive term centres, rMax/nTerms
	sigmaR float64
	sigmaQ float64
	rBroad float64 // optional real-space broadening factor, default 0

	space      Space
	functions  [][]float64
	ignoreZero bool
}

// NewPoisson creates a fit against reference, which is cloned so later
// mutation of the caller's data does not alias the fit's working copy. The
// zeroth term is excluded from fitting by default, matching spec's noted
// common usage (the DC term is frequently unphysical for difference data).
func NewPoisson(reference *xy.XY) *Poisson {
	return &Poisson{reference: reference.Clone(), ignoreZero: true}
}

// SetBroadening sets the optional real-space broadening factor folded into
// the exponent of every term (0 disables broadening)
func (o *Poisson) SetBroadening(rBroad float64) { o.rBroad = rBroad }

// lnNPlusTwoFactorial returns ln((n+2)!) via the log-gamma function,
// Gamma(n+3) == (n+2)!
func lnNPlusTwoFactorial(n int) float64 {
	v, _ := math.Lgamma(float64(n) + 3)
	return v
}

// poissonReal evaluates the real-space kernel for term n (power nPow) at r,
// working in log space to avoid overflow for large nPow
func poissonReal(r, sigmaR, rBroad float64, nPow int) float64 {
	lnFactor := math.Log(4*math.Pi*sigmaR*sigmaR*sigmaR) + lnNPlusTwoFactorial(nPow)
	exponent := -(r / sigmaR) - lnFactor - rBroad*r
	if r > 0 {
		exponent += float64(nPow) * math.Log(r/sigmaR)
	} else if nPow != 0 {
		return 0
	}
	if exponent > -expMax {
		return math.Exp(exponent)
	}
	return 0
}

// poissonReciprocal evaluates the closed-form Fourier transform of term nPow
// at Q value q, avoiding numerical integration (spec §4.6)
func poissonReciprocal(q, sigmaQ float64, nPow int) float64 {
	n := float64(nPow)
	qs := q * sigmaQ
	a := math.Atan(qs)
	na := n * a
	s := 1 + qs*qs
	factor := 1.0 / ((n + 2) * math.Pow(math.Sqrt(s), n+4))
	if qs == 0 {
		return factor * (2 + n)
	}
	value := 2*math.Cos(na) + ((1-qs*qs)/qs)*math.Sin(na)
	return factor * value
}

func (o *Poisson) kernel(space Space, x float64, nPow int) float64 {
	if space == RealSpace {
		return poissonReal(x, o.sigmaR, o.rBroad, nPow)
	}
	return poissonReciprocal(x, o.sigmaQ, nPow)
}

// NCoefficients returns the number of Poisson terms currently set
func (o *Poisson) NCoefficients() int { return len(o.c) }

// Coefficients returns a copy of the fitted coefficients
func (o *Poisson) Coefficients() []float64 { return append([]float64{}, o.c...) }

// SetIgnoreZerothTerm pins C0 at zero during fitting
func (o *Poisson) SetIgnoreZerothTerm(ignore bool) { o.ignoreZero = ignore }

// powerAt returns n_k = floor(rStep/sigmaR + 1/2)*(k+1) - 1, the Poisson
// power placing term k's peak at r=(k+1)*rStep
func powerAt(k int, rStep, sigmaR float64) int {
	if sigmaR <= 0 {
		return 0
	}
	r := float64(k+1) * rStep
	if sigmaR > r {
		return 0
	}
	deltaN := math.Floor(rStep/sigmaR + 0.5)
	return int(deltaN*float64(k+1)) - 1
}

// Set fixes the basis layout: rMax/n evenly spaced term centres (expressed
// through the Poisson power series, not literal x positions), the shared
// real- and reciprocal-space widths, and the supplied starting coefficients
func (o *Poisson) Set(rMax float64, coefficients []float64, sigmaR float64) error {
	return o.set(rMax, coefficients, sigmaR, sigmaR)
}

// SetWithReciprocalWidth is Set but with an independently specified
// reciprocal-space width sigmaQ (Set uses sigmaQ==sigmaR)
func (o *Poisson) SetWithReciprocalWidth(rMax float64, coefficients []float64, sigmaQ, sigmaR float64) error {
	return o.set(rMax, coefficients, sigmaQ, sigmaR)
}

func (o *Poisson) set(rMax float64, coefficients []float64, sigmaQ, sigmaR float64) error {
	n := len(coefficients)
	if n == 0 {
		return chk.Err("basis: Poisson.Set: ShapeError: coefficients must be non-empty")
	}
	if rMax <= 0 {
		return chk.Err("basis: Poisson.Set: OutOfRange: rMax=%v must be > 0", rMax)
	}
	o.c = append([]float64{}, coefficients...)
	o.sigmaQ = sigmaQ
	o.sigmaR = sigmaR
	o.rStep = rMax / float64(n)
	o.n = make([]int, n)
	for k := 0; k < n; k++ {
		o.n[k] = powerAt(k, o.rStep, o.sigmaR)
	}
	return nil
}

// centreAt returns the nominal r location of term k used to decide r_min
// exclusion in ConstructReciprocal and SweepFitC. This follows the index
// scaling used by the source this package is grounded on, (k+1)*sigmaR,
// rather than the coarser (k+1)*rStep spacing between term peaks.
func (o *Poisson) centreAt(k int) float64 { return float64(k+1) * o.sigmaR }

// addFunction accumulates one term's contribution onto data's ordinates
func (o *Poisson) addFunction(data *xy.XY, space Space, c float64, k int) {
	xs := data.X()
	for m := range xs {
		data.SetYi(m, data.Yi(m)+c*o.kernel(space, xs[m], o.n[k]))
	}
}

// generateApproximation rebuilds the working approximate signal (on the
// reference abscissa) from the current coefficients
func (o *Poisson) generateApproximation(space Space) *xy.XY {
	approx := zeroLike(o.reference)
	for k := range o.c {
		o.addFunction(approx, space, o.c[k], k)
	}
	return approx
}

// Approximation evaluates the current fit on a fresh xMin:xStep:xMax grid in
// the requested space, scaling the result by factor
func (o *Poisson) Approximation(space Space, factor, xMin, xStep, xMax float64) (*xy.XY, error) {
	xs, err := genAbscissa(xMin, xStep, xMax)
	if err != nil {
		return nil, err
	}
	data, err := xy.NewFromSlices(xs, make([]float64, len(xs)))
	if err != nil {
		return nil, err
	}
	for k := range o.c {
		o.addFunction(data, space, o.c[k], k)
	}
	data.MulScalar(factor)
	return data, nil
}

// updatePrecalculatedFunctions tabulates the unit-coefficient kernel for
// every term against the reference abscissa
func (o *Poisson) updatePrecalculatedFunctions(space Space) {
	refX := o.reference.X()
	o.functions = make([][]float64, len(o.c))
	for k := range o.c {
		row := make([]float64, len(refX))
		for m, x := range refX {
			row[m] = o.kernel(space, x, o.n[k])
		}
		o.functions[k] = row
	}
	o.space = space
}

// SweepFitC performs the block-sweep refinement described in spec §4.6,
// mirroring Gaussian.SweepFitC
func (o *Poisson) SweepFitC(space Space, xMin float64, sampleSize, overlap, nLoops int) (float64, error) {
	n := len(o.c)
	if n == 0 {
		return 0, chk.Err("basis: Poisson.SweepFitC: ShapeError: basis has not been Set")
	}
	if sampleSize <= 0 || nLoops <= 0 {
		return 0, chk.Err("basis: Poisson.SweepFitC: sampleSize and nLoops must be > 0")
	}
	o.space = space

	for loop := 0; loop < nLoops; loop++ {
		p := loop * (sampleSize / nLoops)
		if p == 0 && o.ignoreZero {
			p = 1
		}
		for p < n {
			approx := o.generateApproximation(space)

			var targets []*float64
			var idxs []int
			pp := p
			for count := 0; count < sampleSize && pp < n; count, pp = count+1, pp+1 {
				if o.centreAt(pp) >= xMin {
					targets = append(targets, &o.c[pp])
					o.addFunction(approx, space, -o.c[pp], pp)
					idxs = append(idxs, pp)
				}
			}

			if len(targets) > 0 {
				appX, appY := approx.X(), approx.Y()
				refY := o.reference.Y()
				cost := func(values []float64) float64 {
					sose := 0.0
					for i := range appX {
						y := appY[i]
						for t, idx := range idxs {
							y += values[t] * o.kernel(space, appX[i], o.n[idx])
						}
						dy := refY[i] - y
						sose += dy * dy
					}
					return sose
				}
				runMinimiser(cost, targets, 0.01, sweepIterationsPerWindow, nil, 0)
			}

			p = pp
			if p < n {
				p -= overlap
			}
		}
	}

	final := o.generateApproximation(space)
	return percentError(o.reference, final)
}

// ConstructReciprocal fits the coefficients of n evenly (in power-space)
// spaced Poisson terms against reference in reciprocal space, starting from
// initialC, excluding (holding at zero) any term whose real-space centre
// lies below rMin. smoothing, when non-nil, is applied to the running
// coefficient vector every smoothEvery iterations.
func (o *Poisson) ConstructReciprocal(rMin, rMax float64, initialC []float64, sigmaQ, sigmaR float64, nIter int, step float64, smoothing mc.Smoother, smoothEvery int) (float64, error) {
	if err := o.SetWithReciprocalWidth(rMax, initialC, sigmaQ, sigmaR); err != nil {
		return 0, err
	}
	o.updatePrecalculatedFunctions(ReciprocalSpace)

	refX, refY := o.reference.X(), o.reference.Y()

	var targets []*float64
	var idxs []int
	for k := range o.c {
		if o.ignoreZero && k == 0 {
			continue
		}
		if o.centreAt(k) < rMin {
			continue
		}
		targets = append(targets, &o.c[k])
		idxs = append(idxs, k)
	}

	cost := func(values []float64) float64 {
		sose := 0.0
		for i := range refX {
			y := 0.0
			for t, idx := range idxs {
				y += o.functions[idx][i] * values[t]
			}
			dy := refY[i] - y
			sose += dy * dy
		}
		return sose
	}
	runMinimiser(cost, targets, step, nIter, smoothing, smoothEvery)

	final := o.generateApproximation(ReciprocalSpace)
	return percentError(o.reference, final)
}
