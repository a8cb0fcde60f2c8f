// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import "github.com/disorderedmaterials/dissolve-sub007/xy"

// Approximate performs three-point interpolation of data at x without
// building or caching any coefficients; useful for one-off lookups.
func Approximate(data *xy.XY, x float64) float64 {
	o := &Interpolator{data: data, scheme: ThreePoint, lastInterval: -1}
	n := data.Len()
	xs, ys := data.X(), data.Y()
	if n < 2 || x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	o.h = make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		o.h[i] = xs[i+1] - xs[i]
	}
	i := o.findInterval(x)
	return o.threePoint(i, x)
}

// AddInterpolated accumulates dst.y[i] += factor * interp(src, dst.x[i]) for
// every point of dst, three-point interpolating src
func AddInterpolated(src, dst *xy.XY, factor float64) {
	dx := dst.X()
	dy := dst.Y()
	for i := range dx {
		dy[i] += factor * Approximate(src, dx[i])
	}
}
