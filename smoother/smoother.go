/*
Package smoother turns a stream of raw pointer samples into smooth curve
elements.

A Smoother buffers the most recent samples in a small ring (see
WindowCapacity). Once MinWindow samples are available, every further
sample completes the context for one more segment: with buffered samples

	[prev?, from, to, next]

the smoother emits the cubic segment from → to. Its tangents are
determined by the neighbours prev and next, which makes consecutive
segments join smoothly. The segment ending at the newest sample is held
back until the next sample arrives, and its samples are reported by
PendingBounds in the meantime.

Width and color at the segment endpoints are taken from the samples
directly. The curvature is taken from the smoothness factor of the sample
which terminates the segment, i.e. "to".

Coincident samples are never an error: a segment between two equal
positions is emitted as a collapsed element, and coincident neighbours
are ignored when fitting tangents.
*/
package smoother

import (
	"fmt"
	"math"

	"github.com/npillmayer/inkstroke/curve"
	"github.com/npillmayer/inkstroke/geom"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// Smoother is the stateful fitting engine of a stroke. It is not safe for
// concurrent use.
type Smoother struct {
	w      window
	fitter Fitter
}

// Option configures a Smoother.
type Option func(*Smoother)

// WithFitter selects the curve fitting strategy. The default is Hobby.
func WithFitter(f Fitter) Option {
	return func(sm *Smoother) {
		if f != nil {
			sm.fitter = f
		}
	}
}

// New creates an empty smoother.
func New(opts ...Option) *Smoother {
	sm := &Smoother{fitter: Hobby}
	for _, opt := range opts {
		opt(sm)
	}
	return sm
}

// Ingest adds a sample. It returns the element completed by this sample, or
// nil if there is not enough context yet. Invalid samples are rejected with
// an error and leave the smoother unchanged. This includes samples whose
// smoothness is so large that control points would overflow.
func (sm *Smoother) Ingest(s Sample) (*curve.Element, error) {
	if err := s.Validate(); err != nil {
		tracer().Errorf("rejected sample %s: %v", s, err)
		return nil, err
	}
	if err := sm.checkReach(s); err != nil {
		tracer().Errorf("rejected sample %s: %v", s, err)
		return nil, err
	}
	saved := sm.w
	sm.w.push(s)
	if sm.w.len() < MinWindow {
		tracer().Debugf("buffered sample %d of %d", sm.w.len(), MinWindow)
		return nil, nil
	}
	next, to, from := sm.w.fromEnd(0), sm.w.fromEnd(1), sm.w.fromEnd(2)
	span := Span{From: from.Pos, To: to.Pos, Next: next.Pos}
	if sm.w.len() == WindowCapacity {
		span.Prev, span.HasPrev = sm.w.fromEnd(3).Pos, true
	}
	e := sm.fit(span, to.Smoothness).WithStyle(from.Width, to.Width, from.Color, to.Color)
	if !e.IsFinite() {
		sm.w = saved
		tracer().Errorf("rejected sample %s: fitted %s", s, e)
		return nil, fmt.Errorf("%w: control points out of range for smoothness %g",
			ErrInvalidSmoothness, to.Smoothness)
	}
	tracer().Debugf("fitted %s", e)
	return &e, nil
}

// armReach bounds the length of a control arm, relative to its chord and
// to the absolute smoothness, for the fitters of this package.
const armReach = 8.0

// checkReach rejects a sample whose segment from the previous sample could
// not be fitted with finite control points.
func (sm *Smoother) checkReach(s Sample) error {
	if sm.w.len() == 0 {
		return nil
	}
	prev := sm.w.fromEnd(0).Pos
	chord := prev.Dist(s.Pos)
	if !geom.IsFinite(chord) {
		return fmt.Errorf("%w: %s too far from %s", ErrInvalidPoint, s.Pos, prev)
	}
	reach := math.Abs(s.Smoothness)*armReach*chord + prev.Abs() + s.Pos.Abs()
	if !geom.IsFinite(reach) {
		return fmt.Errorf("%w: %g overflows segment %s .. %s",
			ErrInvalidSmoothness, s.Smoothness, prev, s.Pos)
	}
	return nil
}

func (sm *Smoother) fit(span Span, smoothness float64) curve.Element {
	if span.From.Equal(span.To) {
		return curve.Collapsed(span.From)
	}
	c1, c2 := sm.fitter.Fit(span, smoothness)
	return curve.Element{Start: span.From, Ctrl1: c1, Ctrl2: c2, End: span.To}
}

// PendingBounds is the box covering all buffered samples, each grown by half
// its width. It is empty if no samples are buffered.
func (sm *Smoother) PendingBounds() geom.Box {
	var b geom.Box
	for i := 0; i < sm.w.len(); i++ {
		b = b.Union(sm.w.at(i).Bounds())
	}
	return b
}

// Buffered is the number of samples currently held.
func (sm *Smoother) Buffered() int {
	return sm.w.len()
}

// Pending returns a copy of the buffered samples, oldest first.
func (sm *Smoother) Pending() []Sample {
	return sm.w.samples()
}

// Restore replaces the buffered samples, e.g. from a persisted stroke. Only
// the last WindowCapacity samples are kept. Restore validates all samples
// first and changes nothing if one of them is invalid.
func (sm *Smoother) Restore(samples []Sample) error {
	for _, s := range samples {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	sm.w.reset()
	for _, s := range samples {
		sm.w.push(s)
	}
	return nil
}

// Reset drops all buffered samples.
func (sm *Smoother) Reset() {
	sm.w.reset()
}
