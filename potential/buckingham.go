// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package potential

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Buckingham implements the exp-6 Buckingham short-range form
// U(r) = A*exp(-r/rho) - C/r^6
type Buckingham struct {
	a   float64
	rho float64
	c   float64
}

func init() {
	allocators["buckingham"] = func() ShortRangeForm { return new(Buckingham) }
	allocators["buck"] = func() ShortRangeForm { return new(Buckingham) }
}

// Init initialises the model
func (o *Buckingham) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "a":
			o.a = p.V
		case "rho":
			o.rho = p.V
		case "c":
			o.c = p.V
		default:
			return chk.Err("buckingham: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Buckingham) GetPrms(example bool) fun.Prms {
	return []*fun.Prm{
		{N: "a", V: 1000.0},
		{N: "rho", V: 0.3},
		{N: "c", V: 32.0},
	}
}

// Energy evaluates U(r)
func (o Buckingham) Energy(r float64) float64 {
	return o.a*math.Exp(-r/o.rho) - o.c/math.Pow(r, 6)
}

// Force evaluates -dU/dr analytically
func (o Buckingham) Force(r float64) float64 {
	return o.a/o.rho*math.Exp(-r/o.rho) - 6*o.c/math.Pow(r, 7)
}
