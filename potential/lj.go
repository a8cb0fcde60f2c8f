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

// LennardJones implements the 12-6 Lennard-Jones short-range form
// U(r) = 4*eps*((sigma/r)^12 - (sigma/r)^6)
type LennardJones struct {
	eps   float64
	sigma float64
}

func init() {
	allocators["lj"] = func() ShortRangeForm { return new(LennardJones) }
	allocators["lennard-jones"] = func() ShortRangeForm { return new(LennardJones) }
}

// Init initialises the model
func (o *LennardJones) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "eps", "epsilon":
			o.eps = p.V
		case "sigma":
			o.sigma = p.V
		default:
			return chk.Err("lj: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o LennardJones) GetPrms(example bool) fun.Prms {
	return []*fun.Prm{
		{N: "eps", V: 0.65},
		{N: "sigma", V: 3.4},
	}
}

// Energy evaluates U(r)
func (o LennardJones) Energy(r float64) float64 {
	sr6 := math.Pow(o.sigma/r, 6)
	return 4 * o.eps * (sr6*sr6 - sr6)
}

// Force evaluates -dU/dr analytically
func (o LennardJones) Force(r float64) float64 {
	sr6 := math.Pow(o.sigma/r, 6)
	return 24 * o.eps * (2*sr6*sr6 - sr6) / r
}
