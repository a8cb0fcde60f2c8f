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

// twoSqrt2Ln2 converts a Gaussian FWHM to its standard deviation: c = FWHM/twoSqrt2Ln2
const twoSqrt2Ln2 = 2.3548200450309493

// Gaussian is a sum-of-Gaussians representation g(r) = sum_k A_k*exp(-(r-x_k)^2/2c_k^2),
// fitted against a reference signal in either real or reciprocal space
// (spec §4.6)
type Gaussian struct {
	reference *xy.XY

	x    []float64 // term centres
	a    []float64 // term amplitudes (the fitted coefficients)
	fwhm []float64 // per-term full-width-half-maximum

	space      Space
	functions  [][]float64 // [k][m] kernel evaluated at reference abscissa, amplitude=1
	ignoreZero bool
}

// NewGaussian creates a fit against reference, which is cloned so later
// mutation of the caller's data does not alias the fit's working copy
func NewGaussian(reference *xy.XY) *Gaussian {
	return &Gaussian{reference: reference.Clone()}
}

// gaussianReal evaluates the real-space kernel at x for a term centred at
// xCentre with amplitude a and width fwhm. The normalisation omits the
// number-density factor, which is folded into coefficients elsewhere.
func gaussianReal(x, xCentre, a, fwhm float64) float64 {
	c := fwhm / twoSqrt2Ln2
	gfac := (math.Sqrt(0.5*math.Pi) / (4 * math.Pi * math.Pi)) / c
	if x > 0 && xCentre > 0 {
		gfac /= x * xCentre
	} else {
		gfac *= 2.0 / (c * c)
	}
	return gfac * a * math.Exp(-((x-xCentre)*(x-xCentre))/(2*c*c))
}

// gaussianReciprocal evaluates the reciprocal-space (Fourier-transformed)
// kernel at x (a Q value) for the same term
func gaussianReciprocal(x, xCentre, a, fwhm float64) float64 {
	c := fwhm / twoSqrt2Ln2
	xcx := xCentre * x
	if xcx > 0 {
		return a * math.Exp(-(x*x*c*c)/2) * math.Sin(xcx) / xcx
	}
	return a * math.Exp(-(x * x * c * c) / 2)
}

func (o *Gaussian) kernel(space Space, x, xCentre, a, fwhm float64) float64 {
	if space == RealSpace {
		return gaussianReal(x, xCentre, a, fwhm)
	}
	return gaussianReciprocal(x, xCentre, a, fwhm)
}

// NCoefficients returns the number of Gaussian terms currently set
func (o *Gaussian) NCoefficients() int { return len(o.a) }

// Coefficients returns a copy of the fitted amplitudes
func (o *Gaussian) Coefficients() []float64 { return append([]float64{}, o.a...) }

// Centres returns a copy of the term centres
func (o *Gaussian) Centres() []float64 { return append([]float64{}, o.x...) }

// SetIgnoreZerothTerm pins the k=0 coefficient at zero during fitting, used
// when the basis's DC term is unphysical for the difference being fitted
func (o *Gaussian) SetIgnoreZerothTerm(ignore bool) { o.ignoreZero = ignore }

// Set fixes the basis layout: rMax/n evenly spaced centres up to rMax, a
// shared width sigma, and the supplied starting coefficients
func (o *Gaussian) Set(rMax float64, coefficients []float64, sigma float64) error {
	n := len(coefficients)
	if n == 0 {
		return chk.Err("basis: Gaussian.Set: ShapeError: coefficients must be non-empty")
	}
	if rMax <= 0 {
		return chk.Err("basis: Gaussian.Set: OutOfRange: rMax=%v must be > 0", rMax)
	}
	o.a = append([]float64{}, coefficients...)
	o.x = make([]float64, n)
	o.fwhm = make([]float64, n)
	delta := rMax / float64(n)
	for k := 0; k < n; k++ {
		o.x[k] = float64(k+1) * delta
		o.fwhm[k] = sigma
	}
	return nil
}

// addFunction accumulates one term's contribution onto data's ordinates
func (o *Gaussian) addFunction(data *xy.XY, space Space, xCentre, a, fwhm float64) {
	xs := data.X()
	for m := range xs {
		data.SetYi(m, data.Yi(m)+o.kernel(space, xs[m], xCentre, a, fwhm))
	}
}

// generateApproximation rebuilds the working approximate signal (on the
// reference abscissa) from the current coefficients
func (o *Gaussian) generateApproximation(space Space) *xy.XY {
	approx := zeroLike(o.reference)
	for k := range o.a {
		o.addFunction(approx, space, o.x[k], o.a[k], o.fwhm[k])
	}
	return approx
}

// Approximation evaluates the current fit on a fresh xMin:xStep:xMax grid in
// the requested space, scaling the result by factor. fwhmFactor rescales
// every term's width, used to thicken/thin Gaussians for visualisation
// without touching the fitted widths themselves.
func (o *Gaussian) Approximation(space Space, factor, xMin, xStep, xMax, fwhmFactor float64) (*xy.XY, error) {
	xs, err := genAbscissa(xMin, xStep, xMax)
	if err != nil {
		return nil, err
	}
	data, err := xy.NewFromSlices(xs, make([]float64, len(xs)))
	if err != nil {
		return nil, err
	}
	for k := range o.a {
		o.addFunction(data, space, o.x[k], o.a[k], o.fwhm[k]*fwhmFactor)
	}
	data.MulScalar(factor)
	return data, nil
}

// updatePrecalculatedFunctions tabulates the unit-amplitude kernel for every
// term against the reference abscissa, used by ConstructReciprocal's cost
// function to avoid re-evaluating the kernel on every trial
func (o *Gaussian) updatePrecalculatedFunctions(space Space) {
	refX := o.reference.X()
	o.functions = make([][]float64, len(o.a))
	for k := range o.a {
		row := make([]float64, len(refX))
		for m, x := range refX {
			row[m] = o.kernel(space, x, o.x[k], 1.0, o.fwhm[k])
		}
		o.functions[k] = row
	}
	o.space = space
}

// SweepFitC performs the block-sweep refinement described in spec §4.6:
// overlapping windows of sampleSize coefficients are optimised in turn,
// nLoops full passes are made with a rotating starting index, and the
// terminal percent error against the reference is returned.
func (o *Gaussian) SweepFitC(space Space, xMin float64, sampleSize, overlap, nLoops int) (float64, error) {
	n := len(o.a)
	if n == 0 {
		return 0, chk.Err("basis: Gaussian.SweepFitC: ShapeError: basis has not been Set")
	}
	if sampleSize <= 0 || nLoops <= 0 {
		return 0, chk.Err("basis: Gaussian.SweepFitC: sampleSize and nLoops must be > 0")
	}
	o.space = space

	for loop := 0; loop < nLoops; loop++ {
		g := loop * (sampleSize / nLoops)
		for g < n {
			approx := o.generateApproximation(space)

			var targets []*float64
			var idxs []int
			gg := g
			for count := 0; count < sampleSize && gg < n; count, gg = count+1, gg+1 {
				if o.x[gg] >= xMin {
					targets = append(targets, &o.a[gg])
					o.addFunction(approx, space, o.x[gg], -o.a[gg], o.fwhm[gg])
					idxs = append(idxs, gg)
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
							y += o.kernel(space, appX[i], o.x[idx], values[t], o.fwhm[idx])
						}
						dy := refY[i] - y
						sose += dy * dy
					}
					return sose
				}
				runMinimiser(cost, targets, 0.01, sweepIterationsPerWindow, nil, 0)
			}

			g = gg
			if g < n {
				g -= overlap
			}
		}
	}

	final := o.generateApproximation(space)
	return percentError(o.reference, final)
}

// ConstructReciprocal fits the amplitudes of rMax/n evenly spaced Gaussians
// of width sigmaQ against reference in reciprocal space, starting from
// initialC, excluding (holding at zero) any term whose real-space centre
// lies below rMin. smoothing, when non-nil, is applied to the running
// coefficient vector every smoothEvery iterations.
func (o *Gaussian) ConstructReciprocal(rMin, rMax float64, initialC []float64, sigmaQ float64, nIter int, step float64, smoothing mc.Smoother, smoothEvery int) (float64, error) {
	if err := o.Set(rMax, initialC, sigmaQ); err != nil {
		return 0, err
	}
	o.updatePrecalculatedFunctions(ReciprocalSpace)

	refX, refY := o.reference.X(), o.reference.Y()

	var targets []*float64
	var idxs []int
	for k := range o.a {
		if o.ignoreZero && k == 0 {
			continue
		}
		if o.x[k] < rMin {
			continue
		}
		targets = append(targets, &o.a[k])
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
