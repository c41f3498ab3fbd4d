package smoother

import (
	"github.com/npillmayer/inkstroke/geom"
	"github.com/npillmayer/inkstroke/spline"
)

// Span is the fitting context for one segment: the segment runs from From
// to To, Next is the sample after To, and Prev (if HasPrev) the sample
// before From. From and To never coincide.
type Span struct {
	Prev     geom.Pair
	HasPrev  bool
	From, To geom.Pair
	Next     geom.Pair
}

// A Fitter places the two inner control points of the cubic segment
// From → To. For smoothness 0 a fitter must return From and To
// themselves (a straight segment); for 1 its canonical smooth curve;
// other values scale the curvature accordingly.
type Fitter interface {
	Fit(span Span, smoothness float64) (c1, c2 geom.Pair)
}

// FitterFunc adapts an ordinary function to the Fitter interface.
type FitterFunc func(span Span, smoothness float64) (geom.Pair, geom.Pair)

// Fit calls f(span, smoothness).
func (f FitterFunc) Fit(span Span, smoothness float64) (geom.Pair, geom.Pair) {
	return f(span, smoothness)
}

// Hobby fits segments with John Hobby's spline through the neighbouring
// samples and scales both control arms by the smoothness.
var Hobby Fitter = hobbyFitter{}

// CatmullRom fits segments by placing control points between the
// midpoints of adjacent edges, proportional to the edge lengths, and
// biasing them by the smoothness. A missing Prev is treated as From.
var CatmullRom Fitter = catmullRomFitter{}

type hobbyFitter struct{}

// The direction at each sample is taken from the Hobby curve through that
// sample and its two neighbours, so both segments meeting at a sample
// share its tangent.
func (hobbyFitter) Fit(span Span, smoothness float64) (geom.Pair, geom.Pair) {
	ahead := []geom.Pair{span.From, span.To}
	if !span.Next.Equal(span.To) {
		ahead = append(ahead, span.Next)
	}
	dirs, err := spline.Directions(ahead)
	if err != nil {
		tracer().Errorf("cannot fit %s: %v", spline.AsString(ahead, nil, nil), err)
		return span.From, span.To
	}
	dir0, dir1 := dirs[0], dirs[1]
	if span.HasPrev && !span.Prev.Equal(span.From) {
		behind := []geom.Pair{span.Prev, span.From, span.To}
		if dirs, err = spline.Directions(behind); err != nil {
			tracer().Errorf("cannot fit %s: %v", spline.AsString(behind, nil, nil), err)
			return span.From, span.To
		}
		dir0 = dirs[1]
	}
	h1, h2 := spline.Between(span.From, span.To, dir0, dir1)
	return span.From.Lerp(h1, smoothness), span.To.Lerp(h2, smoothness)
}

type catmullRomFitter struct{}

func (catmullRomFitter) Fit(span Span, smoothness float64) (geom.Pair, geom.Pair) {
	p0, p1, p2, p3 := span.Prev, span.From, span.To, span.Next
	if !span.HasPrev {
		p0 = p1
	}
	m01, m12, m23 := p0.Mid(p1), p1.Mid(p2), p2.Mid(p3)
	l01, l12, l23 := p0.Dist(p1), p1.Dist(p2), p2.Dist(p3)
	k1, k2 := ratio(l01, l12), ratio(l12, l23)
	// points on the midpoint polygon which will be moved onto p1 and p2
	b1 := m01.Lerp(m12, k1)
	b2 := m12.Lerp(m23, k2)
	c1 := b1.Lerp(m12, smoothness) + p1 - b1
	c2 := b2.Lerp(m12, smoothness) + p2 - b2
	return c1, c2
}

func ratio(a, b float64) float64 {
	if geom.Is0(a + b) {
		return 0.5
	}
	return a / (a + b)
}
