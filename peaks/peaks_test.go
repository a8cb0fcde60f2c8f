// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package peaks

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/disorderedmaterials/dissolve-sub007/xy"
)

// Test_find01 replays scenario S6: synthetic signal with peaks near 1.5,
// 4.5, 7.5
func Test_find01(tst *testing.T) {
	chk.PrintTitle("find01")

	n := 1001
	data := new(xy.XY)
	data.Initialise(n)
	x, y := data.X(), data.Y()
	for i := 0; i < n; i++ {
		xi := float64(i) * 10.0 / float64(n-1)
		x[i] = xi
		y[i] = math.Sin(math.Pi*xi/3) + 0.1*math.Sin(5*math.Pi*xi)
	}

	f := New(data, 0.5)
	found := f.Find(false)
	if len(found) < 3 {
		tst.Fatalf("expected at least 3 peaks, got %d", len(found))
	}

	expected := []float64{1.5, 4.5, 7.5}
	for _, e := range expected {
		closest := false
		for _, p := range found {
			if math.Abs(p.X-e) < 0.3 {
				closest = true
				break
			}
		}
		if !closest {
			tst.Fatalf("expected a peak near x=%v, none found in %v", e, found)
		}
	}
}

// Test_invariants01 checks property 9: peak invariants and monotonic
// threshold behaviour
func Test_invariants01(tst *testing.T) {
	chk.PrintTitle("invariants01")
	n := 1001
	data := new(xy.XY)
	data.Initialise(n)
	x, y := data.X(), data.Y()
	for i := 0; i < n; i++ {
		xi := float64(i) * 10.0 / float64(n-1)
		x[i] = xi
		y[i] = math.Sin(math.Pi*xi/3) + 0.1*math.Sin(5*math.Pi*xi)
	}

	low := New(data, 0.2)
	high := New(data, 0.8)
	foundLow := low.Find(false)
	foundHigh := high.Find(false)
	if len(foundHigh) >= len(foundLow) {
		tst.Fatalf("increasing threshold should strictly decrease peak count: low=%d high=%d", len(foundLow), len(foundHigh))
	}

	for _, p := range foundLow {
		if p.Index > 0 && y[p.Index] <= y[p.Index-1] {
			tst.Fatalf("peak at %d violates y[p]>y[p-1]", p.Index)
		}
		if p.Index < n-1 && y[p.Index] < y[p.Index+1] {
			tst.Fatalf("peak at %d violates y[p]>=y[p+1]", p.Index)
		}
	}
}

// Test_prominence_skip01 checks that a point with no real descent on either
// side (a symmetric V running off both domain edges) is reported with
// Skipped: true and a diagnostic reason, per spec §4.9
func Test_prominence_skip01(tst *testing.T) {
	chk.PrintTitle("prominence_skip01")
	data, _ := xy.NewFromSlices(
		[]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		[]float64{5, 4, 3, 2, 1, 0, 1, 2, 3, 4, 5},
	)
	p := Peak{Index: 5, X: 5, Y: 0}
	proms := Prominences(data, []Peak{p})
	if len(proms) != 1 {
		tst.Fatalf("expected 1 prominence result, got %d", len(proms))
	}
	if !proms[0].Skipped {
		tst.Fatalf("expected both walks to fail and the peak to be skipped, got %+v", proms[0])
	}
	if proms[0].SkipReason == "" {
		tst.Fatalf("expected a non-empty skip diagnostic")
	}
}

func Test_prominence01(tst *testing.T) {
	chk.PrintTitle("prominence01")
	// one dominant, one minor peak
	data, _ := xy.NewFromSlices(
		[]float64{0, 1, 2, 3, 4, 5, 6, 7, 8},
		[]float64{0, 1, 0, 5, 0, 1.2, 0.8, 1.1, 0},
	)
	f := New(data, 0.5)
	found := f.Find(true)
	if len(found) < 2 {
		tst.Fatalf("expected at least two peaks, got %d", len(found))
	}
	proms := Prominences(data, found)
	if proms[0].Value <= proms[len(proms)-1].Value {
		// dominant peak (first, height order) should be at least as prominent
		tst.Fatalf("expected dominant peak prominence >= minor peak: %+v", proms)
	}
}
