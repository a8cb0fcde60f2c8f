// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compare

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/disorderedmaterials/dissolve-sub007/xy"
)

func sampleSignals() (ref, other *xy.XY) {
	n := 21
	ref = new(xy.XY)
	ref.Initialise(n)
	other = new(xy.XY)
	other.Initialise(n)
	rx, ry := ref.X(), ref.Y()
	ox, oy := other.X(), other.Y()
	for i := 0; i < n; i++ {
		x := float64(i) * 0.5
		rx[i], ox[i] = x, x
		ry[i] = math.Sin(x)
		oy[i] = math.Sin(x) + 0.1*math.Cos(3*x)
	}
	return
}

// Test_additivity01 checks property 3: additivity across a disjoint
// partition of the domain, for MSE/ASE (the additive numerator behind RMSE
// and RFactor).
func Test_additivity01(tst *testing.T) {
	chk.PrintTitle("additivity01")
	ref, other := sampleSignals()
	xmin, xmax := FullDomain(ref)
	mid := (xmin + xmax) / 2

	whole := MSE(ref, other, xmin, xmax)
	left := MSE(ref, other, xmin, mid)

	// the point exactly at `mid` belongs to both halves under closed
	// intervals; to make the partition disjoint we nudge the right bound
	rightExclusive := MSE(ref, other, mid+1e-9, xmax)
	sum := left.Value + rightExclusive.Value
	chk.Scalar(tst, "MSE additivity", 1e-9, sum, whole.Value)
}

func Test_rmse01(tst *testing.T) {
	chk.PrintTitle("rmse01")
	ref, err := xy.NewFromSlices([]float64{0, 1, 2}, []float64{1, 2, 3})
	if err != nil {
		tst.Fatalf("%v", err)
	}
	other, _ := xy.NewFromSlices([]float64{0, 1, 2}, []float64{1, 2, 3})
	r := RMSE(ref, other, 0, 2)
	chk.Scalar(tst, "identical signals RMSE", 1e-15, r.Value, 0)
	if r.NumPoints != 3 {
		tst.Fatalf("expected 3 points, got %d", r.NumPoints)
	}
}

func Test_mape_skips_zero01(tst *testing.T) {
	chk.PrintTitle("mape_skips_zero01")
	ref, _ := xy.NewFromSlices([]float64{0, 1, 2}, []float64{0, 1, 2})
	other, _ := xy.NewFromSlices([]float64{0, 1, 2}, []float64{5, 1, 2})
	r := MAPE(ref, other, 0, 2)
	// point at x=0 has y_ref==0 and must be skipped
	if r.NumPoints != 2 {
		tst.Fatalf("expected 2 points after skipping y_ref==0, got %d", r.NumPoints)
	}
}

// Test_maape01 checks the arctangent percentage-error formula, including
// the case y_ref==0 where, unlike MAPE, MAAPE does not skip the point
func Test_maape01(tst *testing.T) {
	chk.PrintTitle("maape01")
	ref, _ := xy.NewFromSlices([]float64{0, 1, 2, 3}, []float64{2, 4, 5, 0})
	other, _ := xy.NewFromSlices([]float64{0, 1, 2, 3}, []float64{1, 4, 6, 0.3})
	r := MAAPE(ref, other, 0, 3)
	if r.NumPoints != 4 {
		tst.Fatalf("expected 4 points (no skipping), got %d", r.NumPoints)
	}
	sum := math.Atan(0.5) + math.Atan(0) + math.Atan(0.2) + math.Atan(0.3)
	want := 100 * sum / 4 / (math.Pi / 2)
	chk.Scalar(tst, "MAAPE", 1e-12, r.Value, want)
}

// Test_rfactor01 checks the crystallographic R-factor formula
func Test_rfactor01(tst *testing.T) {
	chk.PrintTitle("rfactor01")
	ref, _ := xy.NewFromSlices([]float64{0, 1, 2}, []float64{2, 4, 5})
	other, _ := xy.NewFromSlices([]float64{0, 1, 2}, []float64{1, 4, 7})
	r, err := RFactor(ref, other, 0, 2)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	// num = (2-1)^2+(4-4)^2+(5-7)^2 = 1+0+4 = 5; den = 4+16+25 = 45
	chk.Scalar(tst, "RFactor", 1e-12, r.Value, 5.0/45.0)
}

// Test_rfactor_numericfailure01 checks RFactor fails NumericFailure on a
// zero reference norm, mirroring Percent's contract
func Test_rfactor_numericfailure01(tst *testing.T) {
	chk.PrintTitle("rfactor_numericfailure01")
	ref, _ := xy.NewFromSlices([]float64{0, 1, 2}, []float64{0, 0, 0})
	other, _ := xy.NewFromSlices([]float64{0, 1, 2}, []float64{1, 1, 1})
	_, err := RFactor(ref, other, 0, 2)
	if err == nil {
		tst.Fatalf("expected NumericFailure for zero reference norm")
	}
}

// Test_euclidean01 checks the Euclidean norm of the pointwise difference
func Test_euclidean01(tst *testing.T) {
	chk.PrintTitle("euclidean01")
	ref, _ := xy.NewFromSlices([]float64{0, 1, 2}, []float64{2, 4, 5})
	other, _ := xy.NewFromSlices([]float64{0, 1, 2}, []float64{1, 4, 7})
	r := Euclidean(ref, other, 0, 2)
	// diffs = -1,0,2 -> norm = sqrt(1+0+4) = sqrt(5)
	chk.Scalar(tst, "Euclidean", 1e-12, r.Value, math.Sqrt(5))
}

func Test_percent_numericfailure01(tst *testing.T) {
	chk.PrintTitle("percent_numericfailure01")
	ref, _ := xy.NewFromSlices([]float64{0, 1, 2}, []float64{0, 0, 0})
	other, _ := xy.NewFromSlices([]float64{0, 1, 2}, []float64{1, 1, 1})
	_, err := Percent(ref, other, 0, 2)
	if err == nil {
		tst.Fatalf("expected NumericFailure for zero reference norm")
	}
}
