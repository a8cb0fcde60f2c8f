// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package histogram

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/disorderedmaterials/dissolve-sub007/pool"
)

func Test_basic01(tst *testing.T) {
	chk.PrintTitle("basic01")
	h := New(0, 10, 2)
	if h.NBins() != 5 {
		tst.Fatalf("expected 5 bins, got %d", h.NBins())
	}
	h.Add(1)
	h.Add(3)
	h.Add(11) // overflow
	if h.OutOfRange() != 1 {
		tst.Fatalf("expected 1 overflow, got %d", h.OutOfRange())
	}
	if h.Total() != 2 {
		tst.Fatalf("expected 2 in-range, got %d", h.Total())
	}
}

func Test_normalised01(tst *testing.T) {
	chk.PrintTitle("normalised01")
	h := New(0, 4, 1)
	h.Add(0.5)
	h.Add(0.5)
	h.Add(2.5)
	norm := h.Normalised()
	chk.Scalar(tst, "bin0", 1e-15, norm[0], 2.0/3.0)
	chk.Scalar(tst, "bin2", 1e-15, norm[2], 1.0/3.0)
}

func Test_accumulate01(tst *testing.T) {
	chk.PrintTitle("accumulate01")
	a := New(0, 4, 1)
	a.Add(0.5)
	b := New(0, 4, 1)
	b.Add(0.5)
	b.Add(2.5)
	if err := a.Accumulate(b, 1); err != nil {
		tst.Fatalf("%v", err)
	}
	if a.Total() != 3 {
		tst.Fatalf("expected total 3 after accumulate, got %d", a.Total())
	}
}

func Test_accumulate_shapeerror01(tst *testing.T) {
	chk.PrintTitle("accumulate_shapeerror01")
	a := New(0, 4, 1)
	b := New(0, 8, 1)
	if err := a.Accumulate(b, 1); err == nil {
		tst.Fatalf("expected ShapeError for mismatched binning")
	}
}

func Test_allsum_serial01(tst *testing.T) {
	chk.PrintTitle("allsum_serial01")
	h := New(0, 4, 1)
	h.Add(0.5)
	p := &pool.SerialPool{}
	h.AllSum(p)
	if h.Total() != 1 {
		tst.Fatalf("expected total unchanged under serial pool, got %d", h.Total())
	}
}
