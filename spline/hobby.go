// Package spline finds smooth control points for a sequence of knots,
// implementing John Hobby's spline interpolation for open paths.
/*
Hobby-splines are aesthetically pleasing curves with small curvature
variation. The primary source of information is:

   Smooth, Easy to Compute Interpolating Splines -- John D. Hobby
   Computer Science Dept. Stanford University
   Report No. STAN-CS-85-1047, Jan 1985

The practical algorithm is explained in Computers & Typesetting, Vol. B & D.

Ink strokes only ever need open paths with neutral curl at both ends and
neutral tension at every knot, so this package restricts itself to that
case. For a path z.0 .. z.n the solver sets up the tridiagonal system of
"mock curvature" equations for the turning angles theta.i, solves it by
forward elimination and back-substitution, and derives the cubic Bézier
control points from theta.i and phi.i.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package spline

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"github.com/npillmayer/inkstroke/geom"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

const _epsilon = 0.0000001

var (
	// ErrTooFewKnots indicates knot count is insufficient for solving.
	ErrTooFewKnots = errors.New("path has too few knots")
	// ErrInvalidKnot indicates a knot coordinate contains NaN/Inf.
	ErrInvalidKnot = errors.New("path has invalid knot coordinate")
	// ErrDegenerateSegment indicates two consecutive knots collapse to one point.
	ErrDegenerateSegment = errors.New("path has degenerate segment")
)

// Validate checks if a sequence of knots is solvable as an open Hobby path.
func Validate(knots []geom.Pair) error {
	n := len(knots)
	if n < 2 {
		return fmt.Errorf("%w: open path needs at least 2 knots, got %d", ErrTooFewKnots, n)
	}
	for i, z := range knots {
		if !z.IsFinite() {
			return fmt.Errorf("%w at knot %d", ErrInvalidKnot, i)
		}
	}
	for i := 0; i < n-1; i++ {
		if cmplx.Abs((knots[i+1] - knots[i]).C()) <= _epsilon {
			return fmt.Errorf("%w between knots %d and %d", ErrDegenerateSegment, i, i+1)
		}
	}
	return nil
}

// Controls finds the Hobby-spline control points for an open path through
// knots. post[i] is the control point leaving knot i, pre[i+1] the control
// point entering knot i+1; post[n-1] and pre[0] are unused and set to the
// knots themselves.
func Controls(knots []geom.Pair) (post, pre []geom.Pair, err error) {
	dirs, err := Directions(knots)
	if err != nil {
		return nil, nil, err
	}
	n := len(knots)
	post, pre = make([]geom.Pair, n), make([]geom.Pair, n)
	post[n-1], pre[0] = knots[n-1], knots[0]
	for i := 0; i < n-1; i++ {
		post[i], pre[i+1] = Between(knots[i], knots[i+1], dirs[i], dirs[i+1])
	}
	tracer().Debugf("hobby controls %s", AsString(knots, post, pre))
	return post, pre, nil
}

// Directions returns the direction of the Hobby curve through knots at
// every knot, as an angle in radians. The curve leaves and enters each
// interior knot in the same direction.
func Directions(knots []geom.Pair) ([]float64, error) {
	if err := Validate(knots); err != nil {
		return nil, err
	}
	theta := solveTheta(knots)
	n := len(knots)
	dirs := make([]float64, n)
	for i := 0; i < n-1; i++ {
		dirs[i] = reduceAngle(delta(knots, i).Angle() + theta[i])
	}
	// psi is 0 at the last knot, so the arrival direction is
	// chord angle + theta
	dirs[n-1] = reduceAngle(delta(knots, n-2).Angle() + theta[n-1])
	return dirs, nil
}

// Between returns the two control points of the segment z0 → z1 which
// leaves z0 in direction dir0 and arrives at z1 in direction dir1 (angles
// in radians), using Hobby's formula for neutral tension. This is
// MetaFont's z0{dir0}..{dir1}z1.
func Between(z0, z1 geom.Pair, dir0, dir1 float64) (geom.Pair, geom.Pair) {
	dvec := z1 - z0
	chord := dvec.Angle()
	theta := reduceAngle(dir0 - chord)
	phi := reduceAngle(chord - dir1)
	p2, p3 := controlOffsets(theta, phi, dvec)
	return z0 + p2, z1 - p3
}

// solveTheta returns the outgoing direction theta.i at every knot, relative
// to the chord z.i → z.i+1.
func solveTheta(knots []geom.Pair) []float64 {
	n := len(knots)
	last := n - 1
	theta := make([]float64, n)
	if n == 2 { // curl-to-curl between two knots is a straight line
		return theta
	}
	u := make([]float64, n)
	v := make([]float64, n)
	// neutral curl at z.0: u.0 = ((3-a)c + b) / (ac + 3 - b) with a=b=c=1
	u[0] = 1
	v[0] = -u[0] * psi(knots, 1)
	for i := 1; i < last; i++ {
		dPrev, dNext := d(knots, i-1), d(knots, i)
		A := 1 / dPrev
		B := 2 / dPrev
		C := 2 / dNext
		D := 1 / dNext
		t := B - u[i-1]*A + C
		u[i] = D / t
		v[i] = (-B*psi(knots, i) - D*psi(knots, i+1) - A*v[i-1]) / t
		tracer().Debugf("u.%d = %.4g, v.%d = %.4g", i, u[i], i, v[i])
	}
	// neutral curl at z.n
	u[last] = 1
	if den := u[last-1] - u[last]; math.Abs(den) > _epsilon {
		theta[last] = v[last-1] / den
	}
	for i := last - 1; i >= 0; i-- {
		theta[i] = v[i] - u[i]*theta[i+1]
	}
	return theta
}

// Hobby's velocity parameters for the control arms leaving at angle theta
// and arriving at angle phi.
func hobbyParamsRhoSigma(theta, phi float64) (float64, float64) {
	const (
		constA  = 1.41421356    // sqrt(2) -- empiric constants, as explained by J.Hobby
		constB  = 0.0625        // 1/16
		constC  = 0.38196601125 // (3 - sqrt(5)) / 2
		constCC = 0.61803398875 // 1 - c
	)
	st, ct := math.Sin(theta), math.Cos(theta)
	sf, cf := math.Sin(phi), math.Cos(phi)
	alpha := constA * (st - constB*sf) * (sf - constB*st) * (ct - cf)
	beta := 1 + constCC*ct + constC*cf
	return (2 + alpha) / beta, (2 - alpha) / beta
}

// controlOffsets calculates the control point offsets between z.i and
// z.i+1, relative to z.i and z.i+1 respectively.
func controlOffsets(theta, phi float64, dvec geom.Pair) (geom.Pair, geom.Pair) {
	rho, sigma := hobbyParamsRhoSigma(theta, phi)
	out := dvec.Rotated(theta).Scaled(rho / 3)
	in := dvec.Rotated(-phi).Scaled(sigma / 3)
	return out, in
}

func delta(knots []geom.Pair, i int) geom.Pair {
	return knots[i+1] - knots[i]
}

func d(knots []geom.Pair, i int) float64 {
	return cmplx.Abs(delta(knots, i).C())
}

// Turning angle at z.i, 0 at both ends of an open path.
func psi(knots []geom.Pair, i int) float64 {
	if i <= 0 || i >= len(knots)-1 {
		return 0
	}
	a := cmplx.Phase(delta(knots, i).C()) - cmplx.Phase(delta(knots, i-1).C())
	return reduceAngle(a)
}

// Reduce an angle to fit into -pi .. pi.
func reduceAngle(a float64) float64 {
	return math.Remainder(a, 2*math.Pi)
}

// AsString returns a path, optionally including control points, as a
// (debugging) string in MetaFont-like notation:
//
//	(0,0) .. controls (1.0000,0.0000) and (2.0000,0.0000)
//	  .. (3,0)
//
// Without control points (post or pre nil) the knots are listed on one line.
func AsString(knots []geom.Pair, post, pre []geom.Pair) string {
	var sb strings.Builder
	withControls := post != nil && pre != nil
	for i, z := range knots {
		if i > 0 {
			if withControls {
				fmt.Fprintf(&sb, " and %s\n  .. ", ptstring(pre[i], true))
			} else {
				sb.WriteString(" .. ")
			}
		}
		sb.WriteString(ptstring(z, false))
		if withControls && i < len(knots)-1 {
			fmt.Fprintf(&sb, " .. controls %s", ptstring(post[i], true))
		}
	}
	return sb.String()
}

func ptstring(p geom.Pair, iscontrol bool) string {
	if cmplx.IsNaN(p.C()) {
		return "(<unknown>)"
	}
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f)", round(p.X()), round(p.Y()))
	}
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	r := math.Round(x*10000.0) / 10000.0
	if r == 0 {
		return 0 // no "-0.0000"
	}
	return r
}
