// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package potential implements analytic short-range pair-potential forms
// plus an additive empirical correction, tabulated on a regular radial grid
// with interpolated energy/force lookup (spec §4.4).
package potential

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// ShortRangeForm is the analytic short-range functional form of one pair
// potential, parameterised by a fun.Prms vector exactly as gofem's material
// models are (see mdl/solid, mreten, mconduct)
type ShortRangeForm interface {
	Init(prms fun.Prms) error
	GetPrms(example bool) fun.Prms
	Energy(r float64) float64
	Force(r float64) float64 // analytic -dU/dr
}

// allocators holds all available short-range forms, registered by the
// init() function of each form's file
var allocators = map[string]func() ShortRangeForm{}

// NewForm allocates a named short-range form
func NewForm(name string) (ShortRangeForm, error) {
	alloc, ok := allocators[strings.ToLower(name)]
	if !ok {
		return nil, chk.Err("potential: NewForm: form %q is not available in the database", name)
	}
	return alloc(), nil
}
