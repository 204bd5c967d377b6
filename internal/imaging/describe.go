package imaging

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/color-tools-mcp/angle"
	"github.com/ironsheep/color-tools-mcp/color"
	"github.com/ironsheep/color-tools-mcp/palette"
)

// HSLDegrees is an HSLA color with the hue expressed in degrees for display.
type HSLDegrees struct {
	Hue        float64 `json:"hue"`        // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	Saturation float64 `json:"saturation"` // Saturation: 0-1 (0=gray, 1=vivid)
	Lightness  float64 `json:"lightness"`  // Lightness: 0-1 (0=black, 0.5=normal, 1=white)
	Alpha      float64 `json:"alpha"`      // Alpha: 0-1 (0=transparent)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex            string       `json:"hex"`             // "#rrggbb", channels clamped, no alpha
	RGBA           color.RGBA   `json:"rgba"`            // Integer channels, alpha 0-1
	HSL            HSLDegrees   `json:"hsl"`             // Hue in degrees
	NearestPalette palette.Name `json:"nearest_palette"` // Closest built-in palette entry
}

// Describe renders c in every representation the server reports.
func Describe(c color.Color) ColorResult {
	rgb := color.ToRGB(c)
	hsl := color.ToHSL(c)
	nearest, _ := palette.Nearest(rgb)

	return ColorResult{
		Hex:  Hex(rgb),
		RGBA: rgb,
		HSL: HSLDegrees{
			Hue:        angle.ToDegrees(hsl.Hue),
			Saturation: hsl.Saturation,
			Lightness:  hsl.Lightness,
			Alpha:      hsl.Alpha,
		},
		NearestPalette: nearest,
	}
}

// Hex formats c as "#rrggbb". Out-of-range channels are clamped first.
func Hex(c color.RGBA) string {
	n := c.NRGBA()
	return colorful.Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
	}.Hex()
}
