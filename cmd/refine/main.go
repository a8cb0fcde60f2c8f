// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command refine runs one empirical-potential refinement iteration: it
// loads an experimental and a simulated structure factor, regularises their
// difference by fitting a Poisson basis to it in reciprocal space,
// Fourier-transforms the fitted difference into real space, and writes the
// resulting real-space potential correction to disk for a downstream PairPotential to apply via
// AdjustUAdditional.
package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
	"github.com/disorderedmaterials/dissolve-sub007/basis"
	"github.com/disorderedmaterials/dissolve-sub007/compare"
	"github.com/disorderedmaterials/dissolve-sub007/transform"
	"github.com/disorderedmaterials/dissolve-sub007/xy"
)

func windowKind(name string) transform.WindowKind {
	switch name {
	case "bartlett":
		return transform.Bartlett
	case "hann":
		return transform.Hann
	case "lanczos":
		return transform.Lanczos
	case "nuttall":
		return transform.Nuttall
	case "sine":
		return transform.Sine
	default:
		return transform.NoWindow
	}
}

func main() {
	refPath := flag.String("ref", "", "path to the experimental S(Q) tabular file")
	currentPath := flag.String("current", "", "path to the simulated S(Q) tabular file")
	outPath := flag.String("out", "correction.txt", "path to write the fitted real-space potential correction")
	rho := flag.Float64("rho", 0.1, "atomic number density used by the g(r)<->S(Q) transform")
	windowName := flag.String("window", "hann", "window kind: none|bartlett|hann|lanczos|nuttall|sine")
	nTerms := flag.Int("nterms", 50, "number of Poisson basis terms")
	sigmaQ := flag.Float64("sigmaq", 0.02, "Poisson basis reciprocal-space width")
	rMin := flag.Float64("rmin", 0.5, "real-space radius below which basis terms are held at zero")
	rMax := flag.Float64("rmax", 15.0, "real-space radius spacing the basis terms out to")
	nIter := flag.Int("niter", 2000, "Monte-Carlo iterations for the reciprocal-space basis fit")
	step := flag.Float64("step", 0.01, "initial Monte-Carlo step size")
	kT := flag.Float64("kt", 2.49, "kT in kJ/mol, used to convert the fitted g(r) correction to an energy correction")
	weight := flag.Float64("weight", 1.0, "damping factor applied to the produced correction")

	defer func() {
		if r := recover(); r != nil {
			if mpi.Rank() == 0 {
				io.Pfred("ERROR: %v\n", r)
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	if mpi.Rank() == 0 {
		io.PfWhite("\nrefine -- one empirical-potential refinement iteration\n\n")
	}

	flag.Parse()
	if *refPath == "" || *currentPath == "" {
		chk.Panic("refine: -ref and -current are required")
	}

	ref, err := xy.Load(*refPath)
	if err != nil {
		chk.Panic("%v", err)
	}
	cur, err := xy.Load(*currentPath)
	if err != nil {
		chk.Panic("%v", err)
	}

	xmin, xmax := compare.FullDomain(ref)
	rmse := compare.RMSE(ref, cur, xmin, xmax)
	if mpi.Rank() == 0 {
		io.Pf("starting RMSE(S(Q)) over [%v,%v] (%d points) = %v\n", rmse.FirstX, rmse.LastX, rmse.NumPoints, rmse.Value)
	}

	diff := ref.Clone()
	if err := diff.SubXY(cur); err != nil {
		chk.Panic("%v", err)
	}

	fit := basis.NewPoisson(diff)
	fit.SetIgnoreZerothTerm(false)
	initial := make([]float64, *nTerms)
	percentErr, err := fit.ConstructReciprocal(*rMin, *rMax, initial, *sigmaQ, *sigmaQ, *nIter, *step, nil, 0)
	if err != nil {
		chk.Panic("%v", err)
	}
	if mpi.Rank() == 0 {
		io.Pf("reciprocal-space basis fit of the difference: terminal percent error = %v\n", percentErr)
	}

	qStep := diff.Xi(1) - diff.Xi(0)
	smoothedDiff, err := fit.Approximation(basis.ReciprocalSpace, 1.0, diff.Xi(0), qStep, diff.Xi(diff.Len()-1))
	if err != nil {
		chk.Panic("%v", err)
	}

	deltaG, err := transform.StoG(smoothedDiff, *rho, windowKind(*windowName))
	if err != nil {
		chk.Panic("%v", err)
	}

	// Linear EPSR-style inversion: a small, approximately-additive
	// structure-factor difference maps onto an energy correction via
	// delta_U(r) = -kT * delta_g(r), scaled by the caller-supplied weight.
	correction := deltaG.Clone()
	correction.MulScalar(-*kT * *weight)

	if err := correction.Save(*outPath); err != nil {
		chk.Panic("%v", err)
	}
	if mpi.Rank() == 0 {
		io.Pf("wrote real-space correction (%d points) to %q\n", correction.Len(), *outPath)
	}
}
