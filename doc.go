/*
Package inkstroke turns raw pointer input into smooth, renderable ink
strokes.

A Stroke is fed samples one at a time (position, width, color and a
smoothness factor). It buffers them in a segment smoother and commits a
new curve element whenever enough context is available:

	s := inkstroke.MustNew(inkstroke.NamedTexture("pencil"))
	changed, err := s.AddPoint(geom.P(0, 0), 2, red, 0.5)    // false
	changed, err = s.AddPoint(geom.P(10, 0), 2, red, 0.5)    // false
	changed, err = s.AddPoint(geom.P(20, 0), 2, red, 0.5)    // true
	for _, e := range s.Segments() {
	    // render e
	}

AddPoint reports whether the stroke visibly changed, which tells the
caller whether a redraw is needed. Committed elements never change; an
element may be retracted with RemoveElement. A stroke ends either by
simply receiving no more points or by Cancel, which is terminal and
informs an optional delegate.

Strokes are not safe for concurrent use. They are meant to be driven by
the goroutine which owns the input stream.

Sub-packages:

  - geom: points, affine transforms, bounding boxes and colors
  - curve: the committed curve elements
  - spline: John Hobby's spline interpolation
  - smoother: the ring-buffered segment smoother
  - pathadapter: export of strokes to seehuhn.de/go/geom paths

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package inkstroke

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'inkstroke'
func tracer() tracing.Trace {
	return tracing.Select("inkstroke")
}
