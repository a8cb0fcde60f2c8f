// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/disorderedmaterials/dissolve-sub007/xy"
)

// Test_spline01 replays scenario S2: natural cubic interpolation at seven knots
func Test_spline01(tst *testing.T) {
	chk.PrintTitle("spline01")

	data, err := xy.NewFromSlices(
		[]float64{0, 1, 2, 3, 4, 5, 6},
		[]float64{0, 3, 1, 0, 4, 10, 7},
	)
	if err != nil {
		tst.Fatalf("%v", err)
	}

	ip, err := New(data, Spline)
	if err != nil {
		tst.Fatalf("%v", err)
	}

	chk.Scalar(tst, "y(0.5)", 1e-6, ip.Y(0.5), 2.185107692)
	chk.Scalar(tst, "y(5.5)", 1e-6, ip.Y(5.5), 8.841173076)
}

// Test_pinning01 checks property 1: pinning at every input abscissa
func Test_pinning01(tst *testing.T) {
	chk.PrintTitle("pinning01")
	data, _ := xy.NewFromSlices(
		[]float64{0, 1, 2, 3, 4, 5, 6},
		[]float64{0, 3, 1, 0, 4, 10, 7},
	)
	for _, scheme := range []Scheme{Spline, Linear} {
		ip, err := New(data, scheme)
		if err != nil {
			tst.Fatalf("%v", err)
		}
		for i, xi := range data.X() {
			chk.Scalar(tst, "pin", 1e-12, ip.Y(xi), data.Yi(i))
		}
	}
	ip, _ := New(data, ThreePoint)
	// ThreePoint pinning holds exactly at the three Lagrange anchors
	for _, i := range []int{0, 1, 2} {
		chk.Scalar(tst, "three-point pin", 1e-12, ip.Y(data.Xi(i)), data.Yi(i))
	}
}

// Test_boundary01 checks property 2: boundary clamping, no extrapolation
func Test_boundary01(tst *testing.T) {
	chk.PrintTitle("boundary01")
	data, _ := xy.NewFromSlices([]float64{0, 1, 2}, []float64{5, 6, 7})
	for _, scheme := range []Scheme{Spline, Linear, ThreePoint, None} {
		ip, _ := New(data, scheme)
		chk.Scalar(tst, "below first", 1e-15, ip.Y(-10), 5)
		chk.Scalar(tst, "above last", 1e-15, ip.Y(10), 7)
	}
}

func Test_linear01(tst *testing.T) {
	chk.PrintTitle("linear01")
	data, _ := xy.NewFromSlices([]float64{0, 1, 2}, []float64{0, 2, 4})
	ip, _ := New(data, Linear)
	chk.Scalar(tst, "y(0.5)", 1e-15, ip.Y(0.5), 1.0)
	chk.Scalar(tst, "y(1.5)", 1e-15, ip.Y(1.5), 3.0)
}

func Test_sequential_cache01(tst *testing.T) {
	chk.PrintTitle("sequential_cache01")
	data, _ := xy.NewFromSlices([]float64{0, 1, 2, 3, 4}, []float64{0, 1, 4, 9, 16})
	ip, _ := New(data, Linear)
	// sequential access exercises the sticky cache fast path
	for _, x := range []float64{0.1, 0.5, 1.2, 1.8, 3.9} {
		_ = ip.Y(x)
	}
	// random access should still produce correct results after cache misses
	chk.Scalar(tst, "random access", 1e-15, ip.Y(0.5), 0.5)
}

func Test_approximate01(tst *testing.T) {
	chk.PrintTitle("approximate01")
	data, _ := xy.NewFromSlices([]float64{0, 1, 2}, []float64{0, 1, 4})
	v := Approximate(data, 1.0)
	chk.Scalar(tst, "approximate at anchor", 1e-12, v, 1.0)
}

func Test_addInterpolated01(tst *testing.T) {
	chk.PrintTitle("addInterpolated01")
	src, _ := xy.NewFromSlices([]float64{0, 1, 2}, []float64{0, 2, 4})
	dst, _ := xy.NewFromSlices([]float64{0, 0.5, 1, 1.5, 2}, []float64{10, 10, 10, 10, 10})
	AddInterpolated(src, dst, 1.0)
	if dst.Yi(0) != 10 {
		tst.Fatalf("expected unchanged baseline at x=0, got %v", dst.Yi(0))
	}
}
