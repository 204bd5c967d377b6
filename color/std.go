package color

import (
	stdcolor "image/color"
	"math"
)

// Both encodings can be handed to anything that draws with image/color.
var (
	_ stdcolor.Color = RGBA{}
	_ stdcolor.Color = HSLA{}
)

// RGBA implements image/color.Color. It returns alpha-premultiplied 16-bit
// channels.
//
// This is the one place the package clamps: channels are limited to 0-255
// and alpha to 0-1 before premultiplying, since image/color requires it.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA returns c as a non-premultiplied 8-bit image/color value, clamped to
// the representable range.
func (c RGBA) NRGBA() stdcolor.NRGBA {
	return stdcolor.NRGBA{
		R: clampByte(float64(c.Red)),
		G: clampByte(float64(c.Green)),
		B: clampByte(float64(c.Blue)),
		A: clampByte(math.Round(c.Alpha * 255)),
	}
}

// RGBA implements image/color.Color by converting to RGBA first.
func (c HSLA) RGBA() (r, g, b, a uint32) {
	return hslToRGB(c).RGBA()
}

// FromStd converts any image/color.Color into RGBA, going through the
// non-premultiplied model so fully transparent pixels keep alpha 0.
//
// Values that already belong to this package are converted without the
// 8-bit round trip.
func FromStd(c stdcolor.Color) RGBA {
	if own, ok := c.(Color); ok {
		return ToRGB(own)
	}

	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return RGBA{
		Red:   int(n.R),
		Green: int(n.G),
		Blue:  int(n.B),
		Alpha: float64(n.A) / 255,
	}
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
