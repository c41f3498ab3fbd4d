package geom

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrInvalidColor indicates a color channel outside [0,1] or NaN.
var ErrInvalidColor = errors.New("color channel out of range")

// Color is a non-premultiplied RGBA color with channels in [0,1].
// It implements color.Color.
type Color struct {
	R, G, B, A float64
}

var _ color.Color = Color{}

// RGB creates an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// ColorOf converts any color.Color into a Color.
func ColorOf(c color.Color) Color {
	if c == nil {
		return Color{}
	}
	if cc, ok := c.(Color); ok {
		return cc
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	fa := float64(a)
	return Color{
		R: float64(r) / fa,
		G: float64(g) / fa,
		B: float64(b) / fa,
		A: fa / 0xffff,
	}
}

// RGBA returns alpha-premultiplied 16-bit channels, as color.Color demands.
// Channels outside [0,1] are clamped here; use Validate to reject them.
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := clamp01(c.A)
	conv := func(v float64) uint32 {
		return uint32(math.Round(clamp01(v) * alpha * 0xffff))
	}
	return conv(c.R), conv(c.G), conv(c.B), uint32(math.Round(alpha * 0xffff))
}

// Validate returns ErrInvalidColor if any channel is NaN or outside [0,1].
func (c Color) Validate() error {
	for i, v := range [4]float64{c.R, c.G, c.B, c.A} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			tracer().Debugf("invalid color %s", c)
			return fmt.Errorf("%w: channel %c = %g", ErrInvalidColor, "RGBA"[i], v)
		}
	}
	return nil
}

// Lerp interpolates channel-wise between c (t=0) and c2 (t=1).
func (c Color) Lerp(c2 Color, t float64) Color {
	return Color{
		R: c.R + (c2.R-c.R)*t,
		G: c.G + (c2.G-c.G)*t,
		B: c.B + (c2.B-c.B)*t,
		A: c.A + (c2.A-c.A)*t,
	}
}

// Equal compares two colors, tolerating differences up to Epsilon.
func (c Color) Equal(c2 Color) bool {
	return Is0(c.R-c2.R) && Is0(c.G-c2.G) && Is0(c.B-c2.B) && Is0(c.A-c2.A)
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%.3g,%.3g,%.3g,%.3g)", c.R, c.G, c.B, c.A)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
