// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interp implements the natural-cubic-spline, linear and
// three-point interpolation schemes used to evaluate an xy.XY at an
// arbitrary abscissa.
package interp

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/disorderedmaterials/dissolve-sub007/xy"
)

// Scheme selects the interpolation method
type Scheme int

// available schemes
const (
	None Scheme = iota
	Spline
	Linear
	ThreePoint
)

// Interpolator precomputes coefficients for one of the schemes above against
// a fixed xy.XY, and evaluates y(x) in O(1) for sequential access (via a
// sticky last-interval cache) or O(log n) for random access.
type Interpolator struct {
	data   *xy.XY
	scheme Scheme
	gen    int // xy generation captured at Build time

	a, b, c, d, h []float64

	lastInterval int // -1 = invalid
}

// New builds an Interpolator for data using scheme, eagerly computing
// coefficients
func New(data *xy.XY, scheme Scheme) (o *Interpolator, err error) {
	o = &Interpolator{data: data, scheme: scheme, lastInterval: -1}
	err = o.Build()
	return
}

// Stale reports whether data has mutated since the coefficients were built
func (o *Interpolator) Stale() bool {
	return o.data.Generation() != o.gen
}

// Build (re)computes the coefficients against the current state of data.
// Callers must call Build again after mutating the underlying XY; Stale
// reports when that is necessary.
func (o *Interpolator) Build() error {
	n := o.data.Len()
	if n < 2 {
		return chk.Err("interp: Build: need at least 2 points, have %d", n)
	}
	o.gen = o.data.Generation()
	o.lastInterval = -1
	x := o.data.X()
	o.h = make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		o.h[i] = x[i+1] - x[i]
	}
	switch o.scheme {
	case Spline:
		return o.buildSpline()
	case Linear, ThreePoint, None:
		return nil
	default:
		return chk.Err("interp: Build: unknown scheme %v", o.scheme)
	}
}

// findInterval returns index i such that x[i] <= xv <= x[i+1], using the
// sticky last-interval cache first then falling back to binary search
func (o *Interpolator) findInterval(xv float64) int {
	x := o.data.X()
	n := len(x)
	if o.lastInterval >= 0 && o.lastInterval < n-1 {
		i := o.lastInterval
		if xv >= x[i] && xv <= x[i+1] {
			return i
		}
	}
	// binary search for the rightmost i with x[i] <= xv
	i := sort.Search(n, func(k int) bool { return x[k] > xv }) - 1
	if i < 0 {
		i = 0
	}
	if i > n-2 {
		i = n - 2
	}
	o.lastInterval = i
	return i
}

// Y evaluates the interpolant at x. x <= x_first returns y_first; x >=
// x_last returns y_last; there is no extrapolation.
func (o *Interpolator) Y(xv float64) float64 {
	x, y := o.data.X(), o.data.Y()
	n := len(x)
	if xv <= x[0] {
		return y[0]
	}
	if xv >= x[n-1] {
		return y[n-1]
	}
	i := o.findInterval(xv)
	switch o.scheme {
	case None:
		return y[i]
	case Linear:
		return y[i] + (xv-x[i])*(y[i+1]-y[i])/o.h[i]
	case Spline:
		dx := xv - x[i]
		return o.a[i] + dx*(o.b[i]+dx*(o.c[i]+dx*o.d[i]))
	case ThreePoint:
		return o.threePoint(i, xv)
	}
	return 0
}

// buildSpline solves the natural-cubic-spline tridiagonal system via Thomas
// elimination: endpoint curvatures are pinned to zero.
func (o *Interpolator) buildSpline() error {
	x, y := o.data.X(), o.data.Y()
	n := len(x)
	h := o.h

	// m holds the second derivatives at each knot (m_0 = m_{n-1} = 0)
	m := make([]float64, n)
	if n > 2 {
		// tridiagonal system for interior knots
		sub := make([]float64, n-2)
		diag := make([]float64, n-2)
		sup := make([]float64, n-2)
		rhs := make([]float64, n-2)
		for k := 0; k < n-2; k++ {
			i := k + 1
			sub[k] = h[i-1]
			diag[k] = 2 * (h[i-1] + h[i])
			sup[k] = h[i]
			rhs[k] = 6 * ((y[i+1]-y[i])/h[i] - (y[i]-y[i-1])/h[i-1])
		}
		sol, err := thomas(sub, diag, sup, rhs)
		if err != nil {
			return chk.Err("interp: buildSpline: NumericFailure: %v", err)
		}
		for k, v := range sol {
			m[k+1] = v
		}
	}

	o.a = make([]float64, n-1)
	o.b = make([]float64, n-1)
	o.c = make([]float64, n-1)
	o.d = make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		o.a[i] = y[i]
		o.c[i] = m[i] / 2
		o.d[i] = (m[i+1] - m[i]) / (6 * h[i])
		o.b[i] = (y[i+1]-y[i])/h[i] - h[i]*m[i]/2 - h[i]*(m[i+1]-m[i])/6
	}
	return nil
}

// thomas solves a tridiagonal system with sub-diagonal, diagonal,
// super-diagonal (each length n) and right-hand side rhs, returning the
// solution of length n. Fails if a pivot becomes non-finite (degenerate
// abscissa).
func thomas(sub, diag, sup, rhs []float64) ([]float64, error) {
	n := len(diag)
	cp := make([]float64, n)
	dp := make([]float64, n)
	cp[0] = sup[0] / diag[0]
	dp[0] = rhs[0] / diag[0]
	for i := 1; i < n; i++ {
		denom := diag[i] - sub[i]*cp[i-1]
		if denom == 0 || isNonFinite(denom) {
			return nil, chk.Err("degenerate tridiagonal pivot at row %d", i)
		}
		if i < n-1 {
			cp[i] = sup[i] / denom
		}
		dp[i] = (rhs[i] - sub[i]*dp[i-1]) / denom
	}
	sol := make([]float64, n)
	sol[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		sol[i] = dp[i] - cp[i]*sol[i+1]
	}
	for _, v := range sol {
		if isNonFinite(v) {
			return nil, chk.Err("non-finite coefficient produced")
		}
	}
	return sol, nil
}

func isNonFinite(v float64) bool {
	return v != v || v > 1e300 || v < -1e300
}

// threePoint evaluates a Lagrange quadratic through (x_i, x_i+1, x_i+2),
// blended linearly with the quadratic through (x_i-1, x_i, x_i+1) over the
// overlap. Inside the last interval the result is y_last, except exactly at
// its left knot x_{n-2}, which returns y_{n-2} so every knot is pinned.
func (o *Interpolator) threePoint(i int, xv float64) float64 {
	x, y := o.data.X(), o.data.Y()
	n := len(x)
	if i >= n-2 {
		if xv == x[i] {
			return y[i]
		}
		return y[n-1]
	}
	q2 := lagrangeQuad(x[i], y[i], x[i+1], y[i+1], x[i+2], y[i+2], xv)
	if i == 0 {
		return q2
	}
	q1 := lagrangeQuad(x[i-1], y[i-1], x[i], y[i], x[i+1], y[i+1], xv)
	t := (xv - x[i]) / (x[i+1] - x[i])
	return (1-t)*q1 + t*q2
}

func lagrangeQuad(x0, y0, x1, y1, x2, y2, x float64) float64 {
	l0 := (x - x1) * (x - x2) / ((x0 - x1) * (x0 - x2))
	l1 := (x - x0) * (x - x2) / ((x1 - x0) * (x1 - x2))
	l2 := (x - x0) * (x - x1) / ((x2 - x0) * (x2 - x1))
	return y0*l0 + y1*l1 + y2*l2
}
