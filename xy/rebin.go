// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xy

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Trim returns a new XY restricted to [xmin, xmax], keeping original sample
// points inside the range (no interpolation at the cut edges)
func (o *XY) Trim(xmin, xmax float64) *XY {
	c := new(XY)
	for i, xi := range o.x {
		if xi >= xmin && xi <= xmax {
			c.x = append(c.x, xi)
			c.y = append(c.y, o.y[i])
		}
	}
	c.name, c.object = o.name, o.object
	return c
}

// Rebin resamples onto a uniform grid with spacing dx, linearly interpolating
// y at the new abscissa. A negative dx means "use half the average original
// spacing"
func (o *XY) Rebin(dx float64) (*XY, error) {
	n := len(o.x)
	if n < 2 {
		return nil, chk.Err("xy: Rebin: need at least 2 points, have %d", n)
	}
	if dx < 0 {
		avg := (o.x[n-1] - o.x[0]) / float64(n-1)
		dx = 0.5 * avg
	}
	if dx <= 0 {
		return nil, chk.Err("xy: Rebin: non-positive spacing %v", dx)
	}
	x0, x1 := o.x[0], o.x[n-1]
	npts := int((x1-x0)/dx+0.5) + 1
	c := new(XY)
	c.x = utl.LinSpace(x0, x0+dx*float64(npts-1), npts)
	c.y = make([]float64, npts)
	j := 0
	for i, xi := range c.x {
		for j < n-2 && o.x[j+1] < xi {
			j++
		}
		c.y[i] = lerp(o.x[j], o.y[j], o.x[j+1], o.y[j+1], xi)
	}
	c.name, c.object = o.name, o.object
	return c, nil
}

func lerp(x0, y0, x1, y1, x float64) float64 {
	if x1 == x0 {
		return y0
	}
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}
