// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transform implements the window functions and discrete sine
// transforms that convert between radial-distribution g(r) and structure
// factor S(Q) signals.
package transform

import "math"

// WindowKind selects the taper applied before a transform
type WindowKind int

// available window kinds
const (
	NoWindow WindowKind = iota
	Bartlett
	Hann
	Lanczos
	Nuttall
	Sine
)

// Window evaluates window(kind, t) for t in [0,1]
func Window(kind WindowKind, t float64) float64 {
	switch kind {
	case NoWindow:
		return 1
	case Bartlett:
		return 1 - math.Abs(t-0.5)/0.5
	case Hann:
		return 0.5 * (1 - math.Cos(2*math.Pi*t))
	case Lanczos:
		u := math.Pi * (2*t - 1)
		if u == 0 {
			return 1
		}
		return math.Sin(u) / u
	case Nuttall:
		return 0.355768 - 0.487396*math.Cos(2*math.Pi*t) + 0.144232*math.Cos(4*math.Pi*t) - 0.012604*math.Cos(6*math.Pi*t)
	case Sine:
		return math.Sin(math.Pi * t)
	}
	return 1
}
