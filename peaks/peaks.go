// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package peaks implements local-maximum detection with a vertical
// threshold and horizontal isolation, plus prominence computation.
package peaks

import (
	"math"
	"sort"

	"github.com/disorderedmaterials/dissolve-sub007/xy"
)

// Peak describes one detected local maximum
type Peak struct {
	Index int
	X     float64
	Y     float64
}

// Finder holds the detection parameters
type Finder struct {
	Data      *xy.XY
	Threshold float64 // y must exceed this to be considered
	Isolation float64 // 0 disables isolation filtering
}

// New creates a Finder over data with the given threshold; isolation is off
// by default (set Finder.Isolation to enable it)
func New(data *xy.XY, threshold float64) *Finder {
	return &Finder{Data: data, Threshold: threshold}
}

// Find returns local maxima satisfying y > threshold, optionally filtered by
// isolation (greedy, highest-first selection keeping only peaks farther than
// Isolation in x from any already-kept higher peak). heightOrder, if true,
// sorts the returned peaks by descending height; otherwise they are returned
// in increasing-x order.
func (o *Finder) Find(heightOrder bool) []Peak {
	x, y := o.Data.X(), o.Data.Y()
	n := len(y)
	var found []Peak
	for i := 1; i < n-1; i++ {
		if y[i] <= o.Threshold {
			continue
		}
		if y[i] > y[i-1] && y[i] >= y[i+1] {
			found = append(found, Peak{Index: i, X: x[i], Y: y[i]})
		}
	}

	if o.Isolation > 0 {
		found = isolate(found, o.Isolation, x[0], x[n-1])
	}

	if heightOrder {
		sort.Slice(found, func(i, j int) bool { return found[i].Y > found[j].Y })
	} else {
		sort.Slice(found, func(i, j int) bool { return found[i].X < found[j].X })
	}
	return found
}

// isolate greedily keeps the highest peaks first, discarding any later
// candidate within Isolation of an already-kept one, and caps the result at
// floor(xrange/isolation) peaks
func isolate(found []Peak, isolation, xlo, xhi float64) []Peak {
	sorted := append([]Peak{}, found...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Y > sorted[j].Y })

	maxPeaks := int((xhi - xlo) / isolation)
	var kept []Peak
	for _, p := range sorted {
		if len(kept) >= maxPeaks && maxPeaks > 0 {
			break
		}
		ok := true
		for _, k := range kept {
			if math.Abs(p.X-k.X) <= isolation {
				ok = false
				break
			}
		}
		if ok {
			kept = append(kept, p)
		}
	}
	return kept
}

// Prominence is the reported prominence for one peak, or a skip diagnostic
// when both walks fail to find a bounding minimum/inflection
type Prominence struct {
	Peak       Peak
	Value      float64
	Skipped    bool
	SkipReason string
}

// Prominences computes, for each peak, the min of the y-distance to the
// nearest left/right local minimum or inflection point
func Prominences(data *xy.XY, found []Peak) []Prominence {
	y := data.Y()
	n := len(y)
	out := make([]Prominence, 0, len(found))
	for _, p := range found {
		hL, okL := walk(y, p.Index, -1)
		hR, okR := walk(y, p.Index, +1)
		switch {
		case okL && okR:
			dl := math.Abs(p.Y - hL)
			dr := math.Abs(p.Y - hR)
			v := dl
			if dr < dl {
				v = dr
			}
			out = append(out, Prominence{Peak: p, Value: v})
		case okL:
			out = append(out, Prominence{Peak: p, Value: math.Abs(p.Y - hL)})
		case okR:
			out = append(out, Prominence{Peak: p, Value: math.Abs(p.Y - hR)})
		default:
			out = append(out, Prominence{Peak: p, Skipped: true, SkipReason: "no bounding minimum or inflection found on either side"})
		}
	}
	_ = n
	return out
}

// walk scans from index i in direction dir (-1 left, +1 right) until it
// finds a local minimum (y[k] <= neighbours) or an inflection (second
// difference changes sign), returning the y-value there. Reaching the
// domain boundary only counts as finding a bound if the boundary sample is
// actually lower than the peak; a boundary reached without ever descending
// below the peak's own height (a monotonic ramp running off the domain
// edge) has no real bounding minimum or inflection and the walk fails.
func walk(y []float64, i, dir int) (float64, bool) {
	n := len(y)
	peakY := y[i]
	k := i + dir
	for k > 0 && k < n-1 {
		if y[k] <= y[k-dir] && y[k] <= y[k+dir] {
			return y[k], true
		}
		// inflection: second difference changes sign around k
		if k-2*dir >= 0 && k-2*dir <= n-1 {
			s0 := y[k] - 2*y[k-dir] + y[k-2*dir]
			s1 := y[k+dir] - 2*y[k] + y[k-dir]
			if s0*s1 < 0 {
				return y[k], true
			}
		}
		k += dir
	}
	if (k == 0 || k == n-1) && y[k] < peakY {
		return y[k], true
	}
	return 0, false
}
