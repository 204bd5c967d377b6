// Package color implements a two-encoding color model: RGBA with integer
// channels and HSLA with the hue stored in radians.
//
// Colors are small immutable values. Every conversion returns a new value and
// every function in the package is safe to call from any goroutine.
//
// # Encodings
//
// A [Color] is exactly one of:
//   - [RGBA]: red, green, blue as integers (conventionally 0-255) and alpha (0-1)
//   - [HSLA]: hue in radians normalized to [0, 2π), saturation, lightness and
//     alpha (conventionally 0-1)
//
// The set of variants is closed. Code inside a program should pass these types
// around directly and call [ToRGB], [ToHSL] and [Complement].
//
// # Untyped Input
//
// Data arriving from outside the program (decoded JSON, loosely typed structs)
// goes through [Recognize], which decides from the shape of the value which
// variant it describes:
//
//	c, err := color.Recognize(map[string]any{"red": 10, "green": 20, "blue": 30})
//	if errors.Is(err, color.ErrInvalidShape) {
//	    // not a color
//	}
//
// # Ranges
//
// Nothing in this package clamps. Out-of-range channels flow through the
// conversion formulas unchanged; only the image/color adapter ([RGBA.RGBA])
// clamps, because that interface requires it.
package color
