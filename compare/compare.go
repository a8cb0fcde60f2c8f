// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compare implements pointwise comparison of two signals over an
// optional sub-range: RMSE, MAPE, MAAPE, percent, R-factor, Euclidean, and
// absolute-squared error.
package compare

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/disorderedmaterials/dissolve-sub007/interp"
	"github.com/disorderedmaterials/dissolve-sub007/xy"
)

// Report is the structured result of one comparison
type Report struct {
	Value      float64
	FirstX     float64
	LastX      float64
	NumPoints  int
}

// gatherRange returns, for every point of ref that falls inside [xmin,xmax]
// and inside other's native abscissa, (x_i, y_ref_i, y_other_interpolated_i)
func gatherRange(ref, other *xy.XY, xmin, xmax float64) (xs, yr, yo []float64) {
	refX, refY := ref.X(), ref.Y()
	oxmin, oxmax := other.Min()
	ip, _ := interp.New(other, interp.ThreePoint)
	for i, x := range refX {
		if x < xmin || x > xmax {
			continue
		}
		if x < oxmin || x > oxmax {
			continue
		}
		xs = append(xs, x)
		yr = append(yr, refY[i])
		yo = append(yo, ip.Y(x))
	}
	return
}

func fullRange(ref *xy.XY) (xmin, xmax float64) {
	return ref.Min()
}

func report(xs []float64, value float64) Report {
	n := len(xs)
	if n == 0 {
		return Report{Value: value, NumPoints: 0}
	}
	return Report{Value: value, FirstX: xs[0], LastX: xs[n-1], NumPoints: n}
}

// RMSE returns sqrt(mean((yref-yother)^2)) over [xmin,xmax] (pass the bounds
// from FullDomain(ref) for the full range)
func RMSE(ref, other *xy.XY, xmin, xmax float64) Report {
	xs, yr, yo := gatherRange(ref, other, xmin, xmax)
	sum := 0.0
	for i := range xs {
		d := yr[i] - yo[i]
		sum += d * d
	}
	n := len(xs)
	v := 0.0
	if n > 0 {
		v = math.Sqrt(sum / float64(n))
	}
	return report(xs, v)
}

// MSE returns the un-rooted sum of squared errors, not divided by the point
// count (the additive quantity RMSE is built from — see the additivity
// contract in spec §8 item 3, which is stated over "RMSE^2")
func MSE(ref, other *xy.XY, xmin, xmax float64) Report {
	xs, yr, yo := gatherRange(ref, other, xmin, xmax)
	sum := 0.0
	for i := range xs {
		d := yr[i] - yo[i]
		sum += d * d
	}
	return report(xs, sum)
}

// MAPE returns mean absolute percentage error, skipping points where
// y_ref == 0 (division would diverge)
func MAPE(ref, other *xy.XY, xmin, xmax float64) Report {
	xs, yr, yo := gatherRange(ref, other, xmin, xmax)
	sum := 0.0
	used := make([]float64, 0, len(xs))
	for i := range xs {
		if yr[i] == 0 {
			continue
		}
		sum += math.Abs((yr[i] - yo[i]) / yr[i])
		used = append(used, xs[i])
	}
	v := 0.0
	if len(used) > 0 {
		v = 100 * sum / float64(len(used))
	}
	return report(used, v)
}

// MAAPE returns mean arctangent absolute percentage error (bounded, does not
// diverge when y_ref == 0)
func MAAPE(ref, other *xy.XY, xmin, xmax float64) Report {
	xs, yr, yo := gatherRange(ref, other, xmin, xmax)
	sum := 0.0
	for i := range xs {
		var ratio float64
		if yr[i] != 0 {
			ratio = (yr[i] - yo[i]) / yr[i]
		} else {
			ratio = yr[i] - yo[i]
		}
		sum += math.Atan(math.Abs(ratio))
	}
	v := 0.0
	if len(xs) > 0 {
		v = 100 * sum / float64(len(xs)) / (math.Pi / 2)
	}
	return report(xs, v)
}

// Percent returns sum|yref-yother| / sum|yref| * 100; fails NumericFailure
// (reported as a zero-point Report) when fewer than one qualifying point or
// the denominator is zero
func Percent(ref, other *xy.XY, xmin, xmax float64) (Report, error) {
	xs, yr, yo := gatherRange(ref, other, xmin, xmax)
	if len(xs) < 1 {
		return Report{}, chk.Err("compare: Percent: NumericFailure: no qualifying points in range [%v,%v]", xmin, xmax)
	}
	num, den := 0.0, 0.0
	for i := range xs {
		num += math.Abs(yr[i] - yo[i])
		den += math.Abs(yr[i])
	}
	if den == 0 {
		return Report{}, chk.Err("compare: Percent: NumericFailure: zero reference norm in range [%v,%v]", xmin, xmax)
	}
	return report(xs, 100*num/den), nil
}

// RFactor returns sum((yref-yother)^2) / sum(yref^2) — the crystallographic
// R-factor; fails NumericFailure under the same conditions as Percent
func RFactor(ref, other *xy.XY, xmin, xmax float64) (Report, error) {
	xs, yr, yo := gatherRange(ref, other, xmin, xmax)
	if len(xs) < 1 {
		return Report{}, chk.Err("compare: RFactor: NumericFailure: no qualifying points in range [%v,%v]", xmin, xmax)
	}
	num, den := 0.0, 0.0
	for i := range xs {
		d := yr[i] - yo[i]
		num += d * d
		den += yr[i] * yr[i]
	}
	if den == 0 {
		return Report{}, chk.Err("compare: RFactor: NumericFailure: zero reference norm in range [%v,%v]", xmin, xmax)
	}
	return report(xs, num/den), nil
}

// Euclidean returns the Euclidean norm of the pointwise difference, via
// la.VecNorm
func Euclidean(ref, other *xy.XY, xmin, xmax float64) Report {
	xs, yr, yo := gatherRange(ref, other, xmin, xmax)
	diff := make([]float64, len(xs))
	for i := range xs {
		diff[i] = yr[i] - yo[i]
	}
	return report(xs, la.VecNorm(diff))
}

// ASE returns the absolute-squared error sum((yref-yother)^2) — the additive
// numerator shared by RMSE and RFactor
func ASE(ref, other *xy.XY, xmin, xmax float64) Report {
	return MSE(ref, other, xmin, xmax)
}

// FullDomain is a convenience returning ref's own x-range, for callers that
// want the "whole domain" comparison of spec §8 item 3
func FullDomain(ref *xy.XY) (xmin, xmax float64) { return fullRange(ref) }
