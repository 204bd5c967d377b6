package color

import (
	"math"

	"github.com/ironsheep/color-tools-mcp/angle"
)

// Kind identifies which encoding a Color uses.
type Kind int

const (
	// KindRGBA is the red/green/blue/alpha encoding.
	KindRGBA Kind = iota + 1
	// KindHSLA is the hue/saturation/lightness/alpha encoding.
	KindHSLA
)

// String returns "rgba", "hsla" or "unknown".
func (k Kind) String() string {
	switch k {
	case KindRGBA:
		return "rgba"
	case KindHSLA:
		return "hsla"
	default:
		return "unknown"
	}
}

// Color is either an RGBA or an HSLA value. No other type can implement it;
// the method sets also admit *RGBA and *HSLA, which every function here
// dereferences.
type Color interface {
	// Kind reports the encoding of the value.
	Kind() Kind

	// RGBA implements image/color.Color so any Color can be drawn directly.
	RGBA() (r, g, b, a uint32)

	sealed()
}

// RGBA is a color in the red/green/blue encoding.
//
// Channels are conventionally 0-255 and Alpha 0-1, but neither range is
// enforced.
type RGBA struct {
	Red   int     `json:"red"`
	Green int     `json:"green"`
	Blue  int     `json:"blue"`
	Alpha float64 `json:"alpha"`
}

// HSLA is a color in the hue/saturation/lightness encoding.
//
// Hue is in radians. Values built with NewHSLA keep it in [0, 2π).
type HSLA struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
	Alpha      float64 `json:"alpha"`
}

func (RGBA) Kind() Kind { return KindRGBA }
func (HSLA) Kind() Kind { return KindHSLA }

func (RGBA) sealed() {}
func (HSLA) sealed() {}

// NewRGB returns an opaque RGBA color.
func NewRGB(r, g, b int) RGBA {
	return NewRGBA(r, g, b, 1)
}

// NewRGBA returns an RGBA color with the given alpha.
func NewRGBA(r, g, b int, a float64) RGBA {
	return RGBA{Red: r, Green: g, Blue: b, Alpha: a}
}

// NewHSL returns an opaque HSLA color. See NewHSLA for hue handling.
func NewHSL(h, s, l float64) HSLA {
	return NewHSLA(h, s, l, 1)
}

// NewHSLA returns an HSLA color with the hue wrapped into [0, 2π).
//
// Any real hue is accepted: 3π is stored as π and -π/2 as 3π/2. Saturation,
// lightness and alpha are stored as given.
func NewHSLA(h, s, l, a float64) HSLA {
	return HSLA{
		Hue:        normalizeHue(h),
		Saturation: s,
		Lightness:  l,
		Alpha:      a,
	}
}

// Grayscale returns an achromatic color where v = 0 is white and v = 1 is
// black.
func Grayscale(v float64) HSLA {
	return HSLA{Hue: 0, Saturation: 0, Lightness: 1 - v, Alpha: 1}
}

// Hue returns the normalized hue of c in radians, converting from RGBA if
// needed.
func Hue(c Color) float64 {
	return ToHSL(c).Hue
}

// normalizeHue subtracts whole turns so the result lies in [0, 2π).
func normalizeHue(h float64) float64 {
	n := h - angle.Turns(math.Floor(h/(2*math.Pi)))
	// h just below a multiple of 2π can round up to exactly 2π.
	if n >= 2*math.Pi {
		return 0
	}
	return n
}
