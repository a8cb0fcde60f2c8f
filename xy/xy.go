// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xy implements the ordered pair-sequence container that carries
// g(r), S(Q), reference scattering data and correction functions throughout
// the refinement engine.
package xy

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// XY holds two equal-length sequences of finite doubles plus an optional
// scalar z. x is expected to be strictly increasing whenever the data is fed
// to an Interpolator or a Transform; nothing in this package enforces that
// on every mutation, so callers performing those operations should check it
// explicitly (see IsMonotonic).
type XY struct {
	x    []float64
	y    []float64
	z    float64
	zSet bool

	name   string // human tag, for diagnostics
	object string // object tag, for cross-module lookup

	gen int // generation counter; bumped on every mutation, read by Interpolator
}

// New creates an empty XY
func New() *XY { return new(XY) }

// NewFromSlices builds an XY from x and y slices of equal length, copying
// their contents
func NewFromSlices(x, y []float64) (o *XY, err error) {
	if len(x) != len(y) {
		return nil, chk.Err("xy: NewFromSlices: len(x)=%d != len(y)=%d", len(x), len(y))
	}
	o = new(XY)
	o.x = append([]float64{}, x...)
	o.y = append([]float64{}, y...)
	return
}

// Name returns the human diagnostic tag
func (o *XY) Name() string { return o.name }

// SetName sets the human diagnostic tag
func (o *XY) SetName(name string) { o.name = name }

// Object returns the cross-module object tag
func (o *XY) Object() string { return o.object }

// SetObject sets the cross-module object tag
func (o *XY) SetObject(tag string) { o.object = tag }

// Z returns the optional scalar and whether it has been set
func (o *XY) Z() (float64, bool) { return o.z, o.zSet }

// SetZ sets the optional scalar
func (o *XY) SetZ(z float64) { o.z = z; o.zSet = true }

// Generation returns the mutation counter an Interpolator should compare
// against the value it captured at construction time
func (o *XY) Generation() int { return o.gen }

// touch bumps the generation counter; called by every mutator
func (o *XY) touch() { o.gen++ }

// Len returns the number of points
func (o *XY) Len() int { return len(o.x) }

// X returns the abscissa slice (read-only use expected; mutate via setters)
func (o *XY) X() []float64 { return o.x }

// Y returns the ordinate slice
func (o *XY) Y() []float64 { return o.y }

// Xi returns x[i]
func (o *XY) Xi(i int) float64 { return o.x[i] }

// Yi returns y[i]
func (o *XY) Yi(i int) float64 { return o.y[i] }

// SetYi sets y[i] and bumps the generation counter
func (o *XY) SetYi(i int, v float64) { o.y[i] = v; o.touch() }

// First returns (x0, y0)
func (o *XY) First() (float64, float64) {
	return o.x[0], o.y[0]
}

// Last returns (x_last, y_last)
func (o *XY) Last() (float64, float64) {
	n := len(o.x) - 1
	return o.x[n], o.y[n]
}

// Clone returns a deep copy of x, y, z and the name/object tags; the copy
// starts with its own generation counter at zero
func (o *XY) Clone() *XY {
	c := new(XY)
	c.x = append([]float64{}, o.x...)
	c.y = append([]float64{}, o.y...)
	c.z, c.zSet = o.z, o.zSet
	c.name, c.object = o.name, o.object
	return c
}

// Initialise sizes the sequences to n points, zero-filling x and y and
// invalidating any Interpolator built against this XY
func (o *XY) Initialise(n int) {
	o.x = utl.DblsAlloc(n)
	o.y = utl.DblsAlloc(n)
	o.touch()
}

// Clear empties the sequences
func (o *XY) Clear() {
	o.x = o.x[:0]
	o.y = o.y[:0]
	o.touch()
}

// AddPoint appends (x,y). The caller is responsible for keeping x strictly
// increasing across calls
func (o *XY) AddPoint(x, y float64) {
	o.x = append(o.x, x)
	o.y = append(o.y, y)
	o.touch()
}

// IsMonotonic reports whether x is strictly increasing
func (o *XY) IsMonotonic() bool {
	for i := 1; i < len(o.x); i++ {
		if o.x[i] <= o.x[i-1] {
			return false
		}
	}
	return true
}

// Min returns (xmin, xmax)
func (o *XY) Min() (xmin, xmax float64) {
	return o.x[0], o.x[len(o.x)-1]
}

// YMinMax returns (ymin, ymax) scanning the whole sequence
func (o *XY) YMinMax() (ymin, ymax float64) {
	ymin, ymax = o.y[0], o.y[0]
	for _, v := range o.y {
		if v < ymin {
			ymin = v
		}
		if v > ymax {
			ymax = v
		}
	}
	return
}

// sameAbscissa checks |x| equality and pointwise closeness within tol
func sameAbscissa(a, b []float64, tol float64) (firstMismatch int, ok bool) {
	if len(a) != len(b) {
		return -1, false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return i, false
		}
	}
	return -1, true
}

const abscissaTol = 1e-6

// checkAligned returns a DomainMismatch error if o and other don't share an
// abscissa within tolerance
func (o *XY) checkAligned(op string, other *XY) error {
	i, ok := sameAbscissa(o.x, other.x, abscissaTol)
	if !ok {
		if i < 0 {
			return chk.Err("xy: %s: DomainMismatch: len(x)=%d != len(x')=%d", op, len(o.x), len(other.x))
		}
		return chk.Err("xy: %s: DomainMismatch: x[%d]=%v differs from x'[%d]=%v by more than %v", op, i, o.x[i], i, other.x[i], abscissaTol)
	}
	return nil
}

// AddScalar adds a scalar to every y value
func (o *XY) AddScalar(s float64) {
	for i := range o.y {
		o.y[i] += s
	}
	o.touch()
}

// SubScalar subtracts a scalar from every y value
func (o *XY) SubScalar(s float64) {
	for i := range o.y {
		o.y[i] -= s
	}
	o.touch()
}

// MulScalar multiplies every y value by a scalar
func (o *XY) MulScalar(s float64) {
	for i := range o.y {
		o.y[i] *= s
	}
	o.touch()
}

// DivScalar divides every y value by a scalar
func (o *XY) DivScalar(s float64) {
	for i := range o.y {
		o.y[i] /= s
	}
	o.touch()
}

// AddXY performs o.y[i] += other.y[i] pointwise; fails DomainMismatch when
// the abscissae are not aligned within 1e-6
func (o *XY) AddXY(other *XY) error {
	if err := o.checkAligned("AddXY", other); err != nil {
		return err
	}
	for i := range o.y {
		o.y[i] += other.y[i]
	}
	o.touch()
	return nil
}

// SubXY performs o.y[i] -= other.y[i] pointwise
func (o *XY) SubXY(other *XY) error {
	if err := o.checkAligned("SubXY", other); err != nil {
		return err
	}
	for i := range o.y {
		o.y[i] -= other.y[i]
	}
	o.touch()
	return nil
}

// MulXY performs o.y[i] *= other.y[i] pointwise
func (o *XY) MulXY(other *XY) error {
	if err := o.checkAligned("MulXY", other); err != nil {
		return err
	}
	for i := range o.y {
		o.y[i] *= other.y[i]
	}
	o.touch()
	return nil
}

// DivXY performs o.y[i] /= other.y[i] pointwise
func (o *XY) DivXY(other *XY) error {
	if err := o.checkAligned("DivXY", other); err != nil {
		return err
	}
	for i := range o.y {
		o.y[i] /= other.y[i]
	}
	o.touch()
	return nil
}

// Integral computes the trapezium-rule integral of y over x
func (o *XY) Integral() float64 {
	return trapz(o.x, o.y, false)
}

// AbsIntegral computes the trapezium-rule integral of |y| over x
func (o *XY) AbsIntegral() float64 {
	return trapz(o.x, o.y, true)
}

func trapz(x, y []float64, abs bool) float64 {
	n := len(x)
	if n < 2 {
		return 0
	}
	sum := 0.0
	for i := 1; i < n; i++ {
		a, b := y[i-1], y[i]
		if abs {
			a, b = math.Abs(a), math.Abs(b)
		}
		sum += 0.5 * (a + b) * (x[i] - x[i-1])
	}
	return sum
}
