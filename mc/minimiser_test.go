// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mc

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_monotonicity01 checks property 8: the minimiser never increases the
// cost.
func Test_monotonicity01(tst *testing.T) {
	chk.PrintTitle("monotonicity01")

	a, b := 3.0, -2.0
	cost := func(v []float64) float64 {
		return (v[0]-1.5)*(v[0]-1.5) + (v[1]+0.5)*(v[1]+0.5)
	}
	before := cost([]float64{a, b})

	m := &Minimiser{
		Cost:                  cost,
		Targets:               []*float64{&a, &b},
		StepSize:              0.5,
		TargetAcceptanceRatio: 0.3,
		MaxIterations:         2000,
		Rand:                  rand.New(rand.NewSource(42)),
	}
	after := m.Minimise()

	if after > before {
		tst.Fatalf("cost increased: before=%v after=%v", before, after)
	}
}

func Test_convergence01(tst *testing.T) {
	chk.PrintTitle("convergence01")
	x := 10.0
	cost := func(v []float64) float64 { return (v[0] - 2.0) * (v[0] - 2.0) }
	m := &Minimiser{
		Cost:                  cost,
		Targets:               []*float64{&x},
		StepSize:              1.0,
		TargetAcceptanceRatio: 0.4,
		MaxIterations:         5000,
		Rand:                  rand.New(rand.NewSource(7)),
	}
	m.Minimise()
	if math.Abs(x-2.0) > 0.1 {
		tst.Fatalf("expected convergence near x=2, got %v", x)
	}
}

func Test_smoothing01(tst *testing.T) {
	chk.PrintTitle("smoothing01")
	called := 0
	v := make([]float64, 3)
	x, y, z := 0.0, 0.0, 0.0
	m := &Minimiser{
		Cost:                  func(vv []float64) float64 { return vv[0]*vv[0] + vv[1]*vv[1] + vv[2]*vv[2] },
		Targets:               []*float64{&x, &y, &z},
		StepSize:              0.5,
		TargetAcceptanceRatio: 0.3,
		MaxIterations:         100,
		SamplingFrequency:     10,
		Smoothing: func(values []float64) {
			called++
			copy(v, values)
		},
		Rand: rand.New(rand.NewSource(1)),
	}
	m.Minimise()
	if called != 10 {
		tst.Fatalf("expected smoothing callback invoked 10 times, got %d", called)
	}
}

func Test_movingAverageSmoother01(tst *testing.T) {
	chk.PrintTitle("movingAverageSmoother01")
	s := MovingAverageSmoother(3)
	v := []float64{0, 10, 0, 10, 0}
	s(v)
	if v[2] == 0 {
		tst.Fatalf("expected interior value to change after smoothing")
	}
}
