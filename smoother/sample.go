package smoother

import (
	"errors"
	"fmt"

	"github.com/npillmayer/inkstroke/geom"
)

var (
	// ErrNegativeWidth indicates a sample width below 0, NaN or Inf.
	ErrNegativeWidth = errors.New("invalid sample width")
	// ErrInvalidPoint indicates a sample position containing NaN/Inf.
	ErrInvalidPoint = errors.New("sample has invalid position")
	// ErrInvalidSmoothness indicates a smoothness factor of NaN/Inf.
	ErrInvalidSmoothness = errors.New("sample has invalid smoothness")
	// ErrInvalidColor indicates a color channel out of range.
	ErrInvalidColor = geom.ErrInvalidColor
)

// Sample is one raw input observation.
//
// Smoothness controls the curvature of the segment ending at this sample:
// 0 gives a straight segment, 1 a conventional smooth curve. Values outside
// [0,1] are legal and produce loopy or bouncy curves.
type Sample struct {
	Pos        geom.Pair
	Width      float64
	Color      geom.Color
	Smoothness float64
}

// Validate reports the first problem with s, or nil.
func (s Sample) Validate() error {
	if !s.Pos.IsFinite() {
		return fmt.Errorf("%w: %s", ErrInvalidPoint, s.Pos)
	}
	if !geom.IsFinite(s.Width) || s.Width < 0 {
		return fmt.Errorf("%w: %g", ErrNegativeWidth, s.Width)
	}
	if !geom.IsFinite(s.Smoothness) {
		return fmt.Errorf("%w: %g", ErrInvalidSmoothness, s.Smoothness)
	}
	return s.Color.Validate()
}

// Bounds is the area covered by the sample's pen tip.
func (s Sample) Bounds() geom.Box {
	return geom.BoxOf(s.Pos).Expanded(s.Width / 2)
}

func (s Sample) String() string {
	return fmt.Sprintf("%s w=%g s=%g %s", s.Pos, s.Width, s.Smoothness, s.Color)
}
