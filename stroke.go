package inkstroke

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/google/uuid"
	"github.com/npillmayer/inkstroke/curve"
	"github.com/npillmayer/inkstroke/geom"
	"github.com/npillmayer/inkstroke/smoother"
)

var (
	// ErrNilTexture indicates a stroke without a (resolvable) texture.
	ErrNilTexture = errors.New("stroke needs a texture")
	// ErrNegativeWidth indicates a sample width below 0, NaN or Inf.
	ErrNegativeWidth = smoother.ErrNegativeWidth
	// ErrInvalidPoint indicates a sample position containing NaN/Inf.
	ErrInvalidPoint = smoother.ErrInvalidPoint
	// ErrInvalidSmoothness indicates a smoothness factor of NaN/Inf.
	ErrInvalidSmoothness = smoother.ErrInvalidSmoothness
	// ErrInvalidColor indicates a color channel out of range.
	ErrInvalidColor = geom.ErrInvalidColor
)

type state uint8

const (
	active state = iota
	cancelled
)

// Stroke is one smooth ink line: an ordered sequence of committed curve
// elements plus the smoother holding the samples not yet committed.
//
// Stroke is not safe for concurrent use.
type Stroke struct {
	id       uuid.UUID
	texture  Texture
	smoother *smoother.Smoother
	segments []curve.Element
	lastID   curve.ID
	delegate func() Delegate // weak, see SetDelegate
	state    state
}

// Option configures a stroke at creation time.
type Option func(*Stroke)

// WithSmootherOptions passes options on to the stroke's segment smoother.
func WithSmootherOptions(opts ...smoother.Option) Option {
	return func(s *Stroke) {
		s.smoother = smoother.New(opts...)
	}
}

// WithID sets the stroke's identity instead of a random one.
func WithID(id uuid.UUID) Option {
	return func(s *Stroke) {
		s.id = id
	}
}

// New creates an empty stroke drawn with texture.
func New(texture Texture, opts ...Option) (*Stroke, error) {
	if texture == nil {
		return nil, ErrNilTexture
	}
	s := &Stroke{
		id:       uuid.New(),
		texture:  texture,
		smoother: smoother.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	tracer().Debugf("new stroke %s with texture %q", s.id, texture.Name())
	return s, nil
}

// MustNew is like New, but panics on error.
func MustNew(texture Texture, opts ...Option) *Stroke {
	s, err := New(texture, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// ID is the stroke's identity.
func (s *Stroke) ID() uuid.UUID {
	return s.id
}

// Texture is the brush texture the stroke is drawn with.
func (s *Stroke) Texture() Texture {
	return s.texture
}

// IsCancelled is a predicate: has Cancel been called?
func (s *Stroke) IsCancelled() bool {
	return s.state == cancelled
}

// AddPoint feeds one input sample to the stroke. smoothness is the
// smoothness between the previous point and this one: 0 is straight, 1 is
// curvy, values > 1 and < 0 are loopy or bouncy.
//
// It returns true if a new element was committed, i.e. the stroke changed
// visibly, and false if the point was only buffered. Invalid input is
// rejected with an error and leaves the stroke unchanged. On a cancelled
// stroke AddPoint does nothing and returns false.
func (s *Stroke) AddPoint(p geom.Pair, width float64, color geom.Color, smoothness float64) (bool, error) {
	if s.state == cancelled {
		tracer().Debugf("stroke %s is cancelled, ignoring point %s", s.id, p)
		return false, nil
	}
	e, err := s.smoother.Ingest(smoother.Sample{
		Pos:        p,
		Width:      width,
		Color:      color,
		Smoothness: smoothness,
	})
	if err != nil {
		return false, fmt.Errorf("stroke %s: %w", s.id, err)
	}
	if e == nil {
		return false, nil
	}
	s.lastID++
	e.ID = s.lastID
	s.segments = append(s.segments, *e)
	tracer().Infof("stroke %s: committed element %s", s.id, e)
	return true, nil
}

// RemoveElement removes the element with e's ID from the stroke. It
// returns false if no such element is present. The smoother's buffered
// samples are not affected.
func (s *Stroke) RemoveElement(e curve.Element) bool {
	i := slices.IndexFunc(s.segments, func(x curve.Element) bool {
		return x.ID == e.ID
	})
	if i < 0 || e.ID == 0 {
		return false
	}
	s.segments = slices.Delete(s.segments, i, i+1)
	tracer().Infof("stroke %s: removed element %d", s.id, e.ID)
	return true
}

// Bounds is the union of the bounds of all committed elements and of the
// samples still buffered in the smoother. It is the empty box if the
// stroke has no geometry at all.
func (s *Stroke) Bounds() geom.Box {
	b := s.smoother.PendingBounds()
	for _, e := range s.segments {
		b = b.Union(e.Bounds())
	}
	return b
}

// Cancel ends the stroke for good and informs the delegate, if it is still
// alive. Cancelling a cancelled stroke does nothing.
func (s *Stroke) Cancel() {
	if s.state == cancelled {
		return
	}
	s.state = cancelled
	tracer().Infof("stroke %s cancelled", s.id)
	if d := s.liveDelegate(); d != nil {
		d.StrokeWasCancelled(s)
	}
}

// Len is the number of committed elements.
func (s *Stroke) Len() int {
	return len(s.segments)
}

// Segments returns a copy of the committed elements, in order.
func (s *Stroke) Segments() []curve.Element {
	return slices.Clone(s.segments)
}

// All iterates over the committed elements in order. The stroke must not
// be modified during iteration.
func (s *Stroke) All() iter.Seq2[int, curve.Element] {
	return func(yield func(int, curve.Element) bool) {
		for i, e := range s.segments {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Overlapping returns the committed elements whose bounds overlap box, in
// stroke order. Useful for erasers and for partial redraws.
func (s *Stroke) Overlapping(box geom.Box) []curve.Element {
	var hits []curve.Element
	for _, e := range s.segments {
		if e.Bounds().Overlaps(box) {
			hits = append(hits, e)
		}
	}
	return hits
}

// Pending returns the samples buffered in the smoother, oldest first.
func (s *Stroke) Pending() []smoother.Sample {
	return s.smoother.Pending()
}

func (s *Stroke) String() string {
	st := "active"
	if s.state == cancelled {
		st = "cancelled"
	}
	return fmt.Sprintf("stroke %s (%s, %d elements, texture %q)", s.id, st, len(s.segments), s.texture.Name())
}
