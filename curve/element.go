// Package curve holds the committed building blocks of an ink stroke.
//
// An Element is one smooth sub-curve of a stroke: a cubic Bézier segment
// which additionally carries a width and a color at each of its endpoints.
// Renderers are expected to interpolate width and color along the curve;
// Element.At shows the interpolation this package assumes.
package curve

import (
	"fmt"
	"math"

	"github.com/npillmayer/inkstroke/geom"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// ID identifies an element within its stroke. IDs are assigned by the
// stroke when an element is committed; the zero ID means "not committed".
type ID uint64

// Element is a cubic Bézier segment with interpolated width and color.
//
// Elements are values. Once an element has been committed to a stroke,
// the stroke only ever hands out copies, so a committed element never
// changes.
type Element struct {
	ID         ID
	Start      geom.Pair // on-curve start point
	Ctrl1      geom.Pair // control point leaving Start
	Ctrl2      geom.Pair // control point entering End
	End        geom.Pair // on-curve end point
	StartWidth float64
	EndWidth   float64
	StartColor geom.Color
	EndColor   geom.Color
}

// Line creates a straight element from start to end. Its control points
// sit at the thirds of the chord.
func Line(start, end geom.Pair) Element {
	return Element{
		Start: start,
		Ctrl1: start.Lerp(end, 1.0/3.0),
		Ctrl2: start.Lerp(end, 2.0/3.0),
		End:   end,
	}
}

// Collapsed creates a zero-length element located at p.
func Collapsed(p geom.Pair) Element {
	return Element{Start: p, Ctrl1: p, Ctrl2: p, End: p}
}

// WithStyle returns a copy of e with endpoint widths and colors set.
func (e Element) WithStyle(w0, w1 float64, c0, c1 geom.Color) Element {
	e.StartWidth, e.EndWidth = w0, w1
	e.StartColor, e.EndColor = c0, c1
	return e
}

// Points returns the four Bézier points in order.
func (e Element) Points() [4]geom.Pair {
	return [4]geom.Pair{e.Start, e.Ctrl1, e.Ctrl2, e.End}
}

// MaxWidth is the larger of the two endpoint widths.
func (e Element) MaxWidth() float64 {
	return math.Max(e.StartWidth, e.EndWidth)
}

// Bounds returns a box containing everything a renderer may paint for e:
// the control polygon (which contains the curve) grown by half the
// maximum width.
func (e Element) Bounds() geom.Box {
	p := e.Points()
	return geom.BoxOf(p[:]...).Expanded(e.MaxWidth() / 2)
}

// At evaluates e at t ∈ [0,1], returning position, width and color.
func (e Element) At(t float64) (geom.Pair, float64, geom.Color) {
	mt := 1 - t
	pos := e.Start.Scaled(mt*mt*mt) +
		e.Ctrl1.Scaled(3*mt*mt*t) +
		e.Ctrl2.Scaled(3*mt*t*t) +
		e.End.Scaled(t*t*t)
	width := e.StartWidth + (e.EndWidth-e.StartWidth)*t
	return pos, width, e.StartColor.Lerp(e.EndColor, t)
}

// IsFinite is a predicate: are all four points free of NaN and Inf?
func (e Element) IsFinite() bool {
	return e.Start.IsFinite() && e.Ctrl1.IsFinite() && e.Ctrl2.IsFinite() && e.End.IsFinite()
}

// IsCollapsed is a predicate: do all four points coincide?
func (e Element) IsCollapsed() bool {
	return e.Start.Equal(e.Ctrl1) && e.Start.Equal(e.Ctrl2) && e.Start.Equal(e.End)
}

// IsStraight is a predicate: do both control points lie on the segment
// between Start and End?
func (e Element) IsStraight() bool {
	chord := e.End - e.Start
	length := chord.Abs()
	if geom.Is0(length) {
		return e.IsCollapsed()
	}
	onChord := func(c geom.Pair) bool {
		v := c - e.Start
		if !geom.Is0(chord.Cross(v) / length) {
			return false
		}
		proj := (v.X()*chord.X() + v.Y()*chord.Y()) / (length * length)
		return proj >= -geom.Epsilon && proj <= 1+geom.Epsilon
	}
	return onChord(e.Ctrl1) && onChord(e.Ctrl2)
}

// Transformed returns a copy of e with all points mapped by m. Widths are
// scaled by the average length scale of m.
func (e Element) Transformed(m geom.AT) Element {
	scale := math.Sqrt(math.Abs(m.Det()))
	e.Start = m.Transform(e.Start)
	e.Ctrl1 = m.Transform(e.Ctrl1)
	e.Ctrl2 = m.Transform(e.Ctrl2)
	e.End = m.Transform(e.End)
	e.StartWidth *= scale
	e.EndWidth *= scale
	tracer().Debugf("transformed element %d by %s", e.ID, m)
	return e
}

func (e Element) String() string {
	return fmt.Sprintf("#%d %s .. controls %s and %s .. %s [w %g..%g]",
		e.ID, e.Start, e.Ctrl1, e.Ctrl2, e.End, e.StartWidth, e.EndWidth)
}
