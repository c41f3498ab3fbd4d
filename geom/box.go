package geom

import (
	"fmt"

	polyclip "github.com/akavel/polyclip-go"
)

// Box is an axis-aligned bounding box. The zero value is the empty box,
// which contains no points and is the neutral element of Union.
type Box struct {
	r     polyclip.Rectangle
	valid bool
}

// BoxOf returns the smallest box containing all points. Without points the
// box is empty.
func BoxOf(points ...Pair) Box {
	if len(points) == 0 {
		return Box{}
	}
	c := make(polyclip.Contour, 0, len(points))
	for _, p := range points {
		c.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	}
	return Box{r: c.BoundingBox(), valid: true}
}

// Rect returns the box spanned by two corners, in any order.
func Rect(p0, p1 Pair) Box {
	return BoxOf(p0, p1)
}

// IsEmpty is a predicate: does b contain no points at all?
func (b Box) IsEmpty() bool {
	return !b.valid
}

// Min is the lower left corner of b. It is the origin for an empty box.
func (b Box) Min() Pair {
	if !b.valid {
		return Origin
	}
	return P(b.r.Min.X, b.r.Min.Y)
}

// Max is the upper right corner of b. It is the origin for an empty box.
func (b Box) Max() Pair {
	if !b.valid {
		return Origin
	}
	return P(b.r.Max.X, b.r.Max.Y)
}

// Width of b, 0 for an empty box.
func (b Box) Width() float64 {
	return b.Max().X() - b.Min().X()
}

// Height of b, 0 for an empty box.
func (b Box) Height() float64 {
	return b.Max().Y() - b.Min().Y()
}

func (b Box) contour() polyclip.Contour {
	return polyclip.Contour{b.r.Min, b.r.Max}
}

// Union returns the smallest box containing b and all others.
func (b Box) Union(others ...Box) Box {
	var pg polyclip.Polygon
	if b.valid {
		pg.Add(b.contour())
	}
	for _, o := range others {
		if o.valid {
			pg.Add(o.contour())
		}
	}
	if len(pg) == 0 {
		return Box{}
	}
	return Box{r: pg.BoundingBox(), valid: true}
}

// Extend returns the smallest box containing b and p.
func (b Box) Extend(p Pair) Box {
	return b.Union(BoxOf(p))
}

// Expanded grows b by d on every side. Empty boxes stay empty.
func (b Box) Expanded(d float64) Box {
	if !b.valid || d == 0 {
		return b
	}
	return Rect(b.Min()-P(d, d), b.Max()+P(d, d))
}

// Contains is a predicate: is p inside b or on its border?
// Points on the border are counted with a tolerance of Epsilon.
func (b Box) Contains(p Pair) bool {
	if !b.valid {
		return false
	}
	return p.X() >= b.r.Min.X-Epsilon && p.X() <= b.r.Max.X+Epsilon &&
		p.Y() >= b.r.Min.Y-Epsilon && p.Y() <= b.r.Max.Y+Epsilon
}

// ContainsBox is a predicate: is o completely inside b? Every box contains
// the empty box.
func (b Box) ContainsBox(o Box) bool {
	if !o.valid {
		return true
	}
	return b.Contains(o.Min()) && b.Contains(o.Max())
}

// Overlaps is a predicate: do b and o share at least one point?
func (b Box) Overlaps(o Box) bool {
	if !b.valid || !o.valid {
		return false
	}
	return b.r.Overlaps(o.r)
}

// Debug Stringer for boxes.
func (b Box) String() string {
	if !b.valid {
		return "[empty]"
	}
	return fmt.Sprintf("[%s..%s]", b.Min(), b.Max())
}
