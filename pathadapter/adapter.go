/*
Package pathadapter exports stroke geometry as seehuhn.de/go/geom paths,
which can then be handed to a rasterizer or a PDF writer.

Only the center line of a stroke is exported. Widths and colors stay with
the curve elements and are left to the renderer.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package pathadapter

import (
	"github.com/npillmayer/inkstroke"
	"github.com/npillmayer/inkstroke/curve"
	"github.com/npillmayer/inkstroke/geom"
	"github.com/npillmayer/schuko/tracing"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// Append adds elems to d as cubic segments, mapping every point by m (nil
// is the identity). A new sub-path is started whenever an element does not
// begin where its predecessor ended, so retracted elements show up as gaps.
// If d is nil, a new path is allocated.
func Append(d *path.Data, elems []curve.Element, m geom.AT) *path.Data {
	if d == nil {
		d = &path.Data{}
	}
	var last geom.Pair
	open := len(d.Cmds) > 0 && d.Cmds[len(d.Cmds)-1] != path.CmdClose
	if open && len(d.Coords) > 0 {
		last = fromVec(d.Coords[len(d.Coords)-1])
	}
	subpaths := 0
	for _, e := range elems {
		e = e.Transformed(m)
		if !open || !last.Equal(e.Start) {
			d.MoveTo(toVec(e.Start))
			subpaths++
		}
		d.CubeTo(toVec(e.Ctrl1), toVec(e.Ctrl2), toVec(e.End))
		last, open = e.End, true
	}
	tracer().Debugf("appended %d elements in %d new sub-paths", len(elems), subpaths)
	return d
}

// Stroke converts the committed elements of s into a path.
func Stroke(s *inkstroke.Stroke, m geom.AT) *path.Data {
	return Append(nil, s.Segments(), m)
}

func toVec(p geom.Pair) vec.Vec2 {
	return vec.Vec2{X: p.X(), Y: p.Y()}
}

func fromVec(v vec.Vec2) geom.Pair {
	return geom.P(v.X, v.Y)
}
