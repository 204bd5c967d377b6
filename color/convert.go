package color

import "math"

// sector is 60 degrees in radians, one step of the hue hexagon.
const sector = math.Pi / 3

// ToRGB returns c in the RGBA encoding. RGBA input is returned unchanged.
//
// Pointers to either encoding are dereferenced. ToRGB panics with a
// *ShapeError if c or the pointer it holds is nil; use ToRGBValue for data that
// has not been through Recognize.
func ToRGB(c Color) RGBA {
	switch v := c.(type) {
	case RGBA:
		return v
	case HSLA:
		return hslToRGB(v)
	case *RGBA:
		if v != nil {
			return *v
		}
	case *HSLA:
		if v != nil {
			return hslToRGB(*v)
		}
	}
	panic(&ShapeError{Value: c, Reason: "nil color"})
}

// ToHSL returns c in the HSLA encoding. HSLA input is returned unchanged.
//
// Pointers to either encoding are dereferenced. ToHSL panics with a
// *ShapeError if c or the pointer it holds is nil; use ToHSLValue for data that
// has not been through Recognize.
func ToHSL(c Color) HSLA {
	switch v := c.(type) {
	case HSLA:
		return v
	case RGBA:
		return rgbToHSL(v)
	case *HSLA:
		if v != nil {
			return *v
		}
	case *RGBA:
		if v != nil {
			return rgbToHSL(*v)
		}
	}
	panic(&ShapeError{Value: c, Reason: "nil color"})
}

// Complement returns the color opposite c on the color wheel: the hue rotated
// by π with saturation, lightness and alpha kept.
//
// The result is always HSLA, since hue rotation is only meaningful there. Use
// ComplementPreserving to get the input's encoding back.
func Complement(c Color) HSLA {
	return RotateHue(ToHSL(c), math.Pi)
}

// ComplementPreserving is Complement converted back to the encoding of c.
// Pointer input yields a value, never a pointer.
func ComplementPreserving(c Color) Color {
	comp := Complement(c)
	if c.Kind() == KindRGBA {
		return hslToRGB(comp)
	}
	return comp
}

// RotateHue returns c with radians added to its hue, renormalized.
func RotateHue(c HSLA, radians float64) HSLA {
	return NewHSLA(c.Hue+radians, c.Saturation, c.Lightness, c.Alpha)
}

// rgbToHSL converts integer channels to HSL.
//
// The conversion follows the standard hexagonal model:
//  1. Normalize channels to 0-1
//  2. Pick the hue sector from whichever channel is largest
//  3. Lightness is the midpoint of the largest and smallest channel
//  4. Saturation is the channel spread relative to the lightness
//
// Achromatic input (all channels equal) has no defined hue; it is reported
// with hue 0 and saturation 0.
func rgbToHSL(c RGBA) HSLA {
	r := float64(c.Red) / 255
	g := float64(c.Green) / 255
	b := float64(c.Blue) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	lightness := (max + min) / 2

	if delta == 0 {
		return NewHSLA(0, 0, lightness, c.Alpha)
	}

	var h float64
	switch max {
	case r:
		h = fmod((g-b)/delta, 6)
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}

	var saturation float64
	if lightness != 0 {
		saturation = delta / (1 - math.Abs(2*lightness-1))
	}

	return NewHSLA(h*sector, saturation, lightness, c.Alpha)
}

// hslToRGB converts HSL to integer channels, rounding each to the nearest
// integer. Results are not clamped to 0-255.
func hslToRGB(c HSLA) RGBA {
	chroma := (1 - math.Abs(2*c.Lightness-1)) * c.Saturation
	h := c.Hue / sector
	x := chroma * (1 - math.Abs(fmod(h, 2)-1))

	var r, g, b float64
	switch {
	case 0 <= h && h < 1:
		r, g, b = chroma, x, 0
	case 1 <= h && h < 2:
		r, g, b = x, chroma, 0
	case 2 <= h && h < 3:
		r, g, b = 0, chroma, x
	case 3 <= h && h < 4:
		r, g, b = 0, x, chroma
	case 4 <= h && h < 5:
		r, g, b = x, 0, chroma
	case 5 <= h && h < 6:
		r, g, b = chroma, 0, x
	default:
		// Unreachable for hues built with NewHSLA; also catches NaN.
		r, g, b = 0, 0, 0
	}

	m := c.Lightness - chroma/2

	return RGBA{
		Red:   channel(r + m),
		Green: channel(g + m),
		Blue:  channel(b + m),
		Alpha: c.Alpha,
	}
}

func channel(v float64) int {
	return int(math.Round(255 * v))
}

// fmod is a floating modulo that is never negative for positive n, even when
// x is: the integer part is reduced mod n and the fraction added back.
func fmod(x, n float64) float64 {
	whole := math.Floor(x)
	m := math.Mod(whole, n)
	if m < 0 {
		m += n
	}
	return m + (x - whole)
}
