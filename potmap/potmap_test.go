// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package potmap

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/disorderedmaterials/dissolve-sub007/atomtype"
	"github.com/disorderedmaterials/dissolve-sub007/potential"
)

func buildLJ(tst *testing.T, nameI, nameJ string, rangeR float64) *potential.PairPotential {
	form, err := potential.NewForm("lj")
	if err != nil {
		tst.Fatalf("%v", err)
	}
	if err := form.Init(fun.Prms{{N: "eps", V: 0.5}, {N: "sigma", V: 3.0}}); err != nil {
		tst.Fatalf("%v", err)
	}
	pp := potential.New(nameI, nameJ, form)
	if err := pp.Tabulate(rangeR, 0.01); err != nil {
		tst.Fatalf("%v", err)
	}
	return pp
}

func Test_initialise01(tst *testing.T) {
	chk.PrintTitle("initialise01")
	potential.Configure(potential.NoShortRange, potential.NoCoulomb, 0)

	reg := atomtype.SliceRegistry{"OW", "HW"}
	pp := buildLJ(tst, "OW", "HW", 10.0)

	pm, err := Initialise(reg, []*potential.PairPotential{pp}, 10.0)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	if pm.Get(0, 1) != pm.Get(1, 0) {
		tst.Fatalf("expected (i,j) and (j,i) to alias the same PairPotential")
	}
	e1 := pm.Energy(0, 1, 3.5)
	e2 := pm.Energy(1, 0, 3.5)
	chk.Scalar(tst, "symmetric energy", 1e-15, e1, e2)
}

func Test_unresolved01(tst *testing.T) {
	chk.PrintTitle("unresolved01")
	potential.Configure(potential.NoShortRange, potential.NoCoulomb, 0)
	reg := atomtype.SliceRegistry{"OW"}
	pp := buildLJ(tst, "OW", "HW", 10.0)
	_, err := Initialise(reg, []*potential.PairPotential{pp}, 10.0)
	if err == nil {
		tst.Fatalf("expected Unresolved error for missing atom type HW")
	}
}

func Test_range_mismatch01(tst *testing.T) {
	chk.PrintTitle("range_mismatch01")
	potential.Configure(potential.NoShortRange, potential.NoCoulomb, 0)
	reg := atomtype.SliceRegistry{"OW", "HW"}
	pp := buildLJ(tst, "OW", "HW", 8.0)
	_, err := Initialise(reg, []*potential.PairPotential{pp}, 10.0)
	if err == nil {
		tst.Fatalf("expected range mismatch error")
	}
}

func Test_unset_pair01(tst *testing.T) {
	chk.PrintTitle("unset_pair01")
	potential.Configure(potential.NoShortRange, potential.NoCoulomb, 0)
	reg := atomtype.SliceRegistry{"OW", "HW", "NA"}
	pp := buildLJ(tst, "OW", "HW", 10.0)
	pm, err := Initialise(reg, []*potential.PairPotential{pp}, 10.0)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	if pm.Energy(0, 2, 3.0) != 0 {
		tst.Fatalf("expected 0 energy for unset pair")
	}
}
