// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package basis implements the Gaussian and Poisson function-sum
// representations used to fit empirical potential corrections and to
// round-trip them between real and reciprocal space (spec §4.6). Both
// families share the same coefficient-sweep and reciprocal-construction
// algorithms; only the kernel (the per-term real/reciprocal-space function
// value) differs between them.
package basis

import (
	"github.com/cpmech/gosl/chk"
	"github.com/disorderedmaterials/dissolve-sub007/compare"
	"github.com/disorderedmaterials/dissolve-sub007/mc"
	"github.com/disorderedmaterials/dissolve-sub007/xy"
)

// Space selects which side of the real/reciprocal transform a basis term,
// or a requested approximation, is evaluated in
type Space int

// available spaces
const (
	RealSpace Space = iota
	ReciprocalSpace
)

// defaultTargetAcceptanceRatio and sweepIterationsPerWindow are the internal
// Monte-Carlo tuning constants used by SweepFitC and ConstructReciprocal;
// neither operation in spec §4.6 exposes them as parameters, so they are
// fixed here to values consistent with the step sizes those operations do
// expose (0.01 initial step, few-hundred-iteration local sweeps).
const (
	defaultTargetAcceptanceRatio = 0.25
	sweepIterationsPerWindow     = 400
)

// zeroLike returns a fresh XY sharing ref's abscissa with all ordinates set
// to zero, used to seed an "approximate" working signal
func zeroLike(ref *xy.XY) *xy.XY {
	o, _ := xy.NewFromSlices(ref.X(), make([]float64, ref.Len()))
	return o
}

// genAbscissa builds the inclusive grid xMin, xMin+xStep, ... <= xMax
func genAbscissa(xMin, xStep, xMax float64) ([]float64, error) {
	if xStep <= 0 {
		return nil, chk.Err("basis: genAbscissa: xStep=%v must be > 0", xStep)
	}
	var xs []float64
	for x := xMin; x <= xMax; x += xStep {
		xs = append(xs, x)
	}
	return xs, nil
}

// percentError reports the Percent comparison of approx against ref over
// their common domain, used as the terminal error returned by the sweep and
// reciprocal-construction operations
func percentError(ref, approx *xy.XY) (float64, error) {
	xmin, xmax := compare.FullDomain(ref)
	rep, err := compare.Percent(ref, approx, xmin, xmax)
	if err != nil {
		return 0, err
	}
	return rep.Value, nil
}

// runMinimiser is the shared Monte-Carlo driver used by both SweepFitC (one
// call per overlapping window) and ConstructReciprocal (one call over the
// whole coefficient vector), matching the adaptive hill-descent in mc.Minimiser
func runMinimiser(cost mc.CostFunc, targets []*float64, step float64, maxIter int, smoothing mc.Smoother, smoothEvery int) {
	if len(targets) == 0 {
		return
	}
	m := &mc.Minimiser{
		Cost:                  cost,
		Targets:               targets,
		StepSize:              step,
		TargetAcceptanceRatio: defaultTargetAcceptanceRatio,
		MaxIterations:         maxIter,
		SamplingFrequency:     smoothEvery,
		Smoothing:             smoothing,
	}
	m.Minimise()
}
