// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package histogram implements fixed-width binning over [min,max] with an
// overflow counter, reducible across parallel workers via the ProcessPool
// boundary (spec §5/§6).
package histogram

import (
	"github.com/cpmech/gosl/chk"
)

// Histogram is a fixed-width bin counter
type Histogram struct {
	min, max, delta float64
	bins            []int
	outOfRange      int
	total           int
}

// New builds an empty Histogram over [min,max] with bin width delta
func New(min, max, delta float64) *Histogram {
	o := new(Histogram)
	o.Initialise(min, max, delta)
	return o
}

// Initialise (re)sets the binning: nBins = (max-min)/delta, with a zeroed
// bin array and overflow counter
func (o *Histogram) Initialise(min, max, delta float64) {
	o.min, o.max, o.delta = min, max, delta
	n := int((max-min)/delta + 0.5)
	if n < 1 {
		n = 1
	}
	o.bins = make([]int, n)
	o.outOfRange = 0
	o.total = 0
}

// NBins returns the number of bins
func (o *Histogram) NBins() int { return len(o.bins) }

// OutOfRange returns the number of samples that fell outside [min,max)
func (o *Histogram) OutOfRange() int { return o.outOfRange }

// Total returns the number of in-range samples accepted
func (o *Histogram) Total() int { return o.total }

// BinOf returns the bin index for value x, or -1 if out of range
func (o *Histogram) BinOf(x float64) int {
	if x < o.min || x >= o.max {
		return -1
	}
	i := int((x - o.min) / o.delta)
	if i >= len(o.bins) {
		i = len(o.bins) - 1
	}
	return i
}

// Add increments the bin containing x, or the overflow counter if out of
// range
func (o *Histogram) Add(x float64) {
	i := o.BinOf(x)
	if i < 0 {
		o.outOfRange++
		return
	}
	o.bins[i]++
	o.total++
}

// Counts returns the raw bin counts
func (o *Histogram) Counts() []int {
	return o.bins
}

// Normalised returns bin counts divided by the total accepted sample count
func (o *Histogram) Normalised() []float64 {
	out := make([]float64, len(o.bins))
	if o.total == 0 {
		return out
	}
	for i, c := range o.bins {
		out[i] = float64(c) / float64(o.total)
	}
	return out
}

// sameShape reports whether two histograms share identical binning
func (o *Histogram) sameShape(other *Histogram) bool {
	return o.min == other.min && o.max == other.max && o.delta == other.delta && len(o.bins) == len(other.bins)
}

// Accumulate sums bin counts from a same-shape histogram, scaled by factor
// (used for parallel reduction per spec §4.10/§5); fails ShapeError on
// mismatched binning
func (o *Histogram) Accumulate(other *Histogram, factor float64) error {
	if !o.sameShape(other) {
		return chk.Err("histogram: Accumulate: ShapeError: bins=%d/%d,%v,%v vs %d/%d,%v,%v",
			len(o.bins), len(other.bins), o.min, o.max, len(other.bins), len(o.bins), other.min, other.max)
	}
	for i := range o.bins {
		o.bins[i] += int(factor * float64(other.bins[i]))
	}
	o.total += int(factor * float64(other.total))
	o.outOfRange += int(factor * float64(other.outOfRange))
	return nil
}
