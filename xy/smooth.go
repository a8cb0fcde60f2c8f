// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xy

import "sort"

// SmoothMovingAverage returns a new XY smoothed by a moving average of the
// given width. The width is forced odd; near the ends the kernel shrinks so
// no phase shift is introduced.
func (o *XY) SmoothMovingAverage(width int) *XY {
	if width%2 == 0 {
		width++
	}
	half := width / 2
	n := len(o.y)
	c := o.Clone()
	for i := 0; i < n; i++ {
		lo, hi := i-half, i+half
		if lo < 0 {
			lo = 0
		}
		if hi > n-1 {
			hi = n - 1
		}
		sum := 0.0
		for k := lo; k <= hi; k++ {
			sum += o.y[k]
		}
		c.y[i] = sum / float64(hi-lo+1)
	}
	return c
}

// MedianFilter returns a new XY where each point is replaced by the median
// of a window of the given length centred on it (shrinking at the ends)
func (o *XY) MedianFilter(length int) *XY {
	if length%2 == 0 {
		length++
	}
	half := length / 2
	n := len(o.y)
	c := o.Clone()
	buf := make([]float64, 0, length)
	for i := 0; i < n; i++ {
		lo, hi := i-half, i+half
		if lo < 0 {
			lo = 0
		}
		if hi > n-1 {
			hi = n - 1
		}
		buf = buf[:0]
		buf = append(buf, o.y[lo:hi+1]...)
		sort.Float64s(buf)
		c.y[i] = buf[len(buf)/2]
	}
	return c
}

// KolmogorovZurbenko applies k repeated moving averages of width m
// (the Kolmogorov-Zurbenko filter), returning a new XY
func (o *XY) KolmogorovZurbenko(k, m int) *XY {
	c := o
	for i := 0; i < k; i++ {
		c = c.SmoothMovingAverage(m)
	}
	return c
}
