// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package basis

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/disorderedmaterials/dissolve-sub007/xy"
	"github.com/stretchr/testify/require"
)

// buildPoissonReference constructs the ground-truth signal Sum_k C[k]*P_k(Q;sigmaQ)
// on a uniform Q grid, returning both the reference XY and the C used. Terms
// whose nominal r=(k+1)*sigmaQ falls below rMin are zeroed in the ground
// truth too, consistent with ConstructReciprocal holding them at zero.
func buildPoissonReference(tst *testing.T, nTerms int, sigmaQ, rMax, rMin float64) (*xy.XY, []float64) {
	var qs []float64
	for q := 0.05; q <= 25.0; q += 0.1 {
		qs = append(qs, q)
	}
	ref, err := xy.NewFromSlices(qs, make([]float64, len(qs)))
	if err != nil {
		tst.Fatalf("%v", err)
	}

	truth := make([]float64, nTerms)
	for k := 0; k < nTerms; k++ {
		if float64(k+1)*sigmaQ < rMin {
			continue
		}
		truth[k] = 0.1 * math.Exp(-float64(k)/10.0)
	}

	gen := NewPoisson(ref)
	gen.SetIgnoreZerothTerm(false)
	if err := gen.Set(rMax, truth, sigmaQ); err != nil {
		tst.Fatalf("%v", err)
	}
	signal, err := gen.Approximation(ReciprocalSpace, 1.0, ref.Xi(0), ref.Xi(1)-ref.Xi(0), ref.Xi(ref.Len()-1))
	if err != nil {
		tst.Fatalf("%v", err)
	}
	return signal, truth
}

// Test_poisson_reconstruction01 replays scenario S5: a 50-term Poisson
// reciprocal-space reconstruction recovers the generating coefficients to
// within the L2 tolerance the scenario specifies
func Test_poisson_reconstruction01(tst *testing.T) {
	chk.PrintTitle("poisson_reconstruction01")

	const nTerms = 50
	const sigmaQ = 0.02
	const rMax = 10.0
	const rMin = 0.5

	reference, truth := buildPoissonReference(tst, nTerms, sigmaQ, rMax, rMin)

	fit := NewPoisson(reference)
	fit.SetIgnoreZerothTerm(false)
	initial := make([]float64, nTerms)
	errPct, err := fit.ConstructReciprocal(rMin, rMax, initial, sigmaQ, sigmaQ, 5000, 0.01, nil, 0)
	require.NoError(tst, err)

	fitted := fit.Coefficients()
	require.Len(tst, fitted, nTerms)
	sumSq := 0.0
	for k := range truth {
		d := fitted[k] - truth[k]
		sumSq += d * d
	}
	l2 := math.Sqrt(sumSq)
	if l2 >= 5e-3 {
		tst.Fatalf("L2 error against ground truth = %v, want < 5e-3 (percent error = %v)", l2, errPct)
	}
}

// Test_gaussian_sweep_fit01 checks property 7 for the Gaussian family:
// starting from a signal built from known amplitudes, SweepFitC recovers a
// terminal percent error close to zero against the reference it was fit to
func Test_gaussian_sweep_fit01(tst *testing.T) {
	chk.PrintTitle("gaussian_sweep_fit01")

	const nTerms = 12
	const sigma = 0.3
	const rMax = 6.0

	var rs []float64
	for r := 0.1; r <= rMax; r += 0.05 {
		rs = append(rs, r)
	}
	ref, err := xy.NewFromSlices(rs, make([]float64, len(rs)))
	if err != nil {
		tst.Fatalf("%v", err)
	}

	truth := make([]float64, nTerms)
	for k := range truth {
		truth[k] = 1.0 + 0.1*float64(k)
	}
	gen := NewGaussian(ref)
	if err := gen.Set(rMax, truth, sigma); err != nil {
		tst.Fatalf("%v", err)
	}
	signal, err := gen.Approximation(RealSpace, 1.0, ref.Xi(0), ref.Xi(1)-ref.Xi(0), ref.Xi(ref.Len()-1), 1.0)
	if err != nil {
		tst.Fatalf("%v", err)
	}

	fit := NewGaussian(signal)
	start := make([]float64, nTerms)
	for k := range start {
		start[k] = 0.5
	}
	if err := fit.Set(rMax, start, sigma); err != nil {
		tst.Fatalf("%v", err)
	}
	errPct, err := fit.SweepFitC(RealSpace, 0, nTerms, 2, 3)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	if errPct > 5.0 {
		tst.Fatalf("terminal percent error = %v, want <= 5", errPct)
	}
}

// Test_construct_reciprocal_holds_below_rmin01 checks that coefficients
// nominally below r_min stay exactly zero, as spec §4.6 requires
func Test_construct_reciprocal_holds_below_rmin01(tst *testing.T) {
	chk.PrintTitle("construct_reciprocal_holds_below_rmin01")

	const nTerms = 20
	const sigmaQ = 0.05
	const rMax = 10.0

	reference, _ := buildPoissonReference(tst, nTerms, sigmaQ, rMax, 0.5)

	fit := NewPoisson(reference)
	fit.SetIgnoreZerothTerm(false)
	initial := make([]float64, nTerms)
	if _, err := fit.ConstructReciprocal(0.5, rMax, initial, sigmaQ, sigmaQ, 200, 0.01, nil, 0); err != nil {
		tst.Fatalf("%v", err)
	}

	fitted := fit.Coefficients()
	for k, c := range fitted {
		centre := float64(k+1) * sigmaQ
		if centre < 0.5 && c != 0 {
			tst.Fatalf("coefficient %d at centre %v < rMin should be held at zero, got %v", k, centre, c)
		}
	}
}

// Test_set_shapeerror01 checks that Set rejects an empty coefficient vector
func Test_set_shapeerror01(tst *testing.T) {
	chk.PrintTitle("set_shapeerror01")
	ref, _ := xy.NewFromSlices([]float64{0, 1, 2}, []float64{0, 0, 0})
	fit := NewGaussian(ref)
	require.Error(tst, fit.Set(10.0, nil, 1.0))
}
