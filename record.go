package inkstroke

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/npillmayer/inkstroke/curve"
	"github.com/npillmayer/inkstroke/geom"
	"github.com/npillmayer/inkstroke/smoother"
)

// ErrInvalidRecord indicates a persisted stroke which cannot be restored.
var ErrInvalidRecord = errors.New("invalid stroke record")

// Record is the persistent form of a stroke. It is plain, order-preserving
// data; choosing an encoding is left to the caller.
type Record struct {
	UUID      string          `yaml:"uuid" json:"uuid"`
	Texture   string          `yaml:"texture" json:"texture"`
	Cancelled bool            `yaml:"cancelled,omitempty" json:"cancelled,omitempty"`
	LastID    uint64          `yaml:"last_id" json:"last_id"`
	Segments  []ElementRecord `yaml:"segments" json:"segments"`
	Pending   []SampleRecord  `yaml:"pending,omitempty" json:"pending,omitempty"`
}

// ElementRecord is the persistent form of a curve element. Points holds
// start, both control points and end, each as [x, y]. Colors are RGBA.
type ElementRecord struct {
	ID     uint64        `yaml:"id" json:"id"`
	Points [4][2]float64 `yaml:"points,flow" json:"points"`
	Width  [2]float64    `yaml:"width,flow" json:"width"`
	Color  [2][4]float64 `yaml:"color,flow" json:"color"`
}

// SampleRecord is the persistent form of a buffered input sample.
type SampleRecord struct {
	Pos        [2]float64 `yaml:"pos,flow" json:"pos"`
	Width      float64    `yaml:"width" json:"width"`
	Color      [4]float64 `yaml:"color,flow" json:"color"`
	Smoothness float64    `yaml:"smoothness" json:"smoothness"`
}

// Record captures the complete state of s, including the samples which
// have not been committed yet, so that a restored stroke continues exactly
// where s left off.
func (s *Stroke) Record() Record {
	rec := Record{
		UUID:      s.id.String(),
		Texture:   s.texture.Name(),
		Cancelled: s.state == cancelled,
		LastID:    uint64(s.lastID),
		Segments:  make([]ElementRecord, len(s.segments)),
	}
	for i, e := range s.segments {
		rec.Segments[i] = elementRecord(e)
	}
	for _, smp := range s.smoother.Pending() {
		rec.Pending = append(rec.Pending, SampleRecord{
			Pos:        pairRecord(smp.Pos),
			Width:      smp.Width,
			Color:      colorRecord(smp.Color),
			Smoothness: smp.Smoothness,
		})
	}
	return rec
}

// FromRecord restores a stroke from its record. Element IDs, element order,
// buffered samples and the cancellation state are preserved. IDs of removed
// elements are not handed out again. Delegates are not part of a record.
func FromRecord(rec Record, resolve TextureResolver, opts ...Option) (*Stroke, error) {
	id, err := uuid.Parse(rec.UUID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if resolve == nil {
		return nil, ErrNilTexture
	}
	texture, err := resolve(rec.Texture)
	if err != nil {
		return nil, err
	}
	s, err := New(texture, append(opts, WithID(id))...)
	if err != nil {
		return nil, err
	}
	for i, er := range rec.Segments {
		e, err := er.element()
		if err != nil {
			return nil, fmt.Errorf("%w: segment %d: %w", ErrInvalidRecord, i, err)
		}
		if e.ID <= s.lastID {
			return nil, fmt.Errorf("%w: segment %d has id %d, not ascending", ErrInvalidRecord, i, e.ID)
		}
		s.lastID = e.ID
		s.segments = append(s.segments, e)
	}
	pending := make([]smoother.Sample, len(rec.Pending))
	for i, sr := range rec.Pending {
		pending[i] = smoother.Sample{
			Pos:        geom.P(sr.Pos[0], sr.Pos[1]),
			Width:      sr.Width,
			Color:      colorOfRecord(sr.Color),
			Smoothness: sr.Smoothness,
		}
	}
	if err := s.smoother.Restore(pending); err != nil {
		return nil, fmt.Errorf("%w: pending samples: %w", ErrInvalidRecord, err)
	}
	s.lastID = max(s.lastID, curve.ID(rec.LastID))
	if rec.Cancelled {
		s.state = cancelled
	}
	tracer().Infof("restored %s", s)
	return s, nil
}

func elementRecord(e curve.Element) ElementRecord {
	er := ElementRecord{
		ID:    uint64(e.ID),
		Width: [2]float64{e.StartWidth, e.EndWidth},
		Color: [2][4]float64{colorRecord(e.StartColor), colorRecord(e.EndColor)},
	}
	for i, p := range e.Points() {
		er.Points[i] = pairRecord(p)
	}
	return er
}

func (er ElementRecord) element() (curve.Element, error) {
	var pts [4]geom.Pair
	for i, p := range er.Points {
		pts[i] = geom.P(p[0], p[1])
		if !pts[i].IsFinite() {
			return curve.Element{}, fmt.Errorf("%w: %s", smoother.ErrInvalidPoint, pts[i])
		}
	}
	if er.ID == 0 {
		return curve.Element{}, errors.New("element without id")
	}
	e := curve.Element{
		ID:    curve.ID(er.ID),
		Start: pts[0], Ctrl1: pts[1], Ctrl2: pts[2], End: pts[3],
	}
	e = e.WithStyle(er.Width[0], er.Width[1], colorOfRecord(er.Color[0]), colorOfRecord(er.Color[1]))
	for _, w := range er.Width {
		if !(w >= 0) {
			return curve.Element{}, fmt.Errorf("%w: %g", smoother.ErrNegativeWidth, w)
		}
	}
	if err := e.StartColor.Validate(); err != nil {
		return curve.Element{}, err
	}
	if err := e.EndColor.Validate(); err != nil {
		return curve.Element{}, err
	}
	return e, nil
}

func pairRecord(p geom.Pair) [2]float64 {
	return [2]float64{p.X(), p.Y()}
}

func colorRecord(c geom.Color) [4]float64 {
	return [4]float64{c.R, c.G, c.B, c.A}
}

func colorOfRecord(c [4]float64) geom.Color {
	return geom.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}
