// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mc implements the cooperative Monte-Carlo minimiser with adaptive
// step size driven by a target acceptance ratio: hill-descent with no
// rejection path beyond non-improvement, bounded by a fixed iteration count.
package mc

import "math/rand"

// CostFunc evaluates the cost of a trial parameter vector
type CostFunc func(values []float64) float64

// Smoother is an optional periodic callback invoked on the running
// parameter vector every SamplingFrequency iterations (e.g. a moving-average
// smoother)
type Smoother func(values []float64)

// Minimiser holds the Monte-Carlo minimisation state described in spec §4.7
type Minimiser struct {
	Cost                  CostFunc
	Targets               []*float64 // pointers into client-owned parameters
	StepSize              float64
	TargetAcceptanceRatio float64
	MaxIterations         int
	SamplingFrequency     int // 0 disables periodic sampling
	Smoothing             Smoother

	Rand *rand.Rand // nil uses the package-level source

	nAccepted int
}

// NAccepted returns the number of accepted trials from the last Minimise call
func (o *Minimiser) NAccepted() int { return o.nAccepted }

func (o *Minimiser) uniform() float64 {
	if o.Rand != nil {
		return o.Rand.Float64()*2 - 1
	}
	return rand.Float64()*2 - 1
}

// Minimise runs the adaptive-step hill-descent loop described in spec §4.7
// and writes the final parameter values back through the target pointers,
// returning the final cost.
func (o *Minimiser) Minimise() float64 {
	n := len(o.Targets)
	values := make([]float64, n)
	for i, p := range o.Targets {
		values[i] = *p
	}

	currentError := o.Cost(values)
	o.nAccepted = 0
	step := o.StepSize

	trial := make([]float64, n)
	for iter := 0; iter < o.MaxIterations; iter++ {
		for i := range values {
			trial[i] = values[i] + o.uniform()*step
		}
		trialError := o.Cost(trial)
		if trialError < currentError {
			copy(values, trial)
			currentError = trialError
			o.nAccepted++
		}

		acceptance := float64(o.nAccepted) / float64(iter+1)
		if o.nAccepted == 0 {
			step *= 0.8
		} else {
			step *= acceptance / o.TargetAcceptanceRatio
		}

		if o.SamplingFrequency > 0 && (iter+1)%o.SamplingFrequency == 0 && o.Smoothing != nil {
			o.Smoothing(values)
		}
	}

	for i, p := range o.Targets {
		*p = values[i]
	}
	o.StepSize = step
	return currentError
}

// MovingAverageSmoother returns a Smoother applying a simple moving average
// of the given width in place over the parameter vector, matching the
// periodic-smoothing callback carried from original_source/src/math/mc.cpp's
// "smooth" pass.
func MovingAverageSmoother(width int) Smoother {
	return func(values []float64) {
		if width%2 == 0 {
			width++
		}
		half := width / 2
		n := len(values)
		out := make([]float64, n)
		for i := 0; i < n; i++ {
			lo, hi := i-half, i+half
			if lo < 0 {
				lo = 0
			}
			if hi > n-1 {
				hi = n - 1
			}
			sum := 0.0
			for k := lo; k <= hi; k++ {
				sum += values[k]
			}
			out[i] = sum / float64(hi-lo+1)
		}
		copy(values, out)
	}
}
