// Package palette provides the Tango desktop palette as named, read-only
// colors.
//
// Each entry is a typed [Name] constant. The colors themselves live in a table
// that is filled in once at package initialization and never written again,
// so the palette is safe to read from any goroutine:
//
//	bg := palette.LightBlue.Color()
//	c, ok := palette.Lookup("dark-red")
//
// Go has no struct constants, so the entries are not exported as color.RGBA
// variables: any caller could reassign those. Name.Color returns a copy, and
// that copy is a color.Color usable anywhere in package color:
//
//	comp := color.Complement(palette.Red.Color())
package palette

import (
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/color-tools-mcp/color"
)

// Name identifies a palette entry.
type Name string

// The Tango palette, in three shades per hue plus the neutrals. Grey and gray
// are both spelled out since callers use either.
const (
	LightRed    Name = "lightRed"
	Red         Name = "red"
	DarkRed     Name = "darkRed"
	LightOrange Name = "lightOrange"
	Orange      Name = "orange"
	DarkOrange  Name = "darkOrange"
	LightYellow Name = "lightYellow"
	Yellow      Name = "yellow"
	DarkYellow  Name = "darkYellow"
	LightGreen  Name = "lightGreen"
	Green       Name = "green"
	DarkGreen   Name = "darkGreen"
	LightBlue   Name = "lightBlue"
	Blue        Name = "blue"
	DarkBlue    Name = "darkBlue"
	LightPurple Name = "lightPurple"
	Purple      Name = "purple"
	DarkPurple  Name = "darkPurple"
	LightBrown  Name = "lightBrown"
	Brown       Name = "brown"
	DarkBrown   Name = "darkBrown"

	Black Name = "black"
	White Name = "white"

	LightGrey Name = "lightGrey"
	Grey      Name = "grey"
	DarkGrey  Name = "darkGrey"
	LightGray Name = "lightGray"
	Gray      Name = "gray"
	DarkGray  Name = "darkGray"

	LightCharcoal Name = "lightCharcoal"
	Charcoal      Name = "charcoal"
	DarkCharcoal  Name = "darkCharcoal"
)

type entry struct {
	name  Name
	color color.RGBA
}

var table = [...]entry{
	{LightRed, color.NewRGB(239, 41, 41)},
	{Red, color.NewRGB(204, 0, 0)},
	{DarkRed, color.NewRGB(164, 0, 0)},
	{LightOrange, color.NewRGB(252, 175, 62)},
	{Orange, color.NewRGB(245, 121, 0)},
	{DarkOrange, color.NewRGB(206, 92, 0)},
	{LightYellow, color.NewRGB(255, 233, 79)},
	{Yellow, color.NewRGB(237, 212, 0)},
	{DarkYellow, color.NewRGB(196, 160, 0)},
	{LightGreen, color.NewRGB(138, 226, 52)},
	{Green, color.NewRGB(115, 210, 22)},
	{DarkGreen, color.NewRGB(78, 154, 6)},
	{LightBlue, color.NewRGB(114, 159, 207)},
	{Blue, color.NewRGB(52, 101, 164)},
	{DarkBlue, color.NewRGB(32, 74, 135)},
	{LightPurple, color.NewRGB(173, 127, 168)},
	{Purple, color.NewRGB(117, 80, 123)},
	{DarkPurple, color.NewRGB(92, 53, 102)},
	{LightBrown, color.NewRGB(233, 185, 110)},
	{Brown, color.NewRGB(193, 125, 17)},
	{DarkBrown, color.NewRGB(143, 89, 2)},
	{Black, color.NewRGB(0, 0, 0)},
	{White, color.NewRGB(255, 255, 255)},
	{LightGrey, color.NewRGB(238, 238, 236)},
	{Grey, color.NewRGB(211, 215, 207)},
	{DarkGrey, color.NewRGB(186, 189, 182)},
	{LightGray, color.NewRGB(238, 238, 236)},
	{Gray, color.NewRGB(211, 215, 207)},
	{DarkGray, color.NewRGB(186, 189, 182)},
	{LightCharcoal, color.NewRGB(136, 138, 133)},
	{Charcoal, color.NewRGB(85, 87, 83)},
	{DarkCharcoal, color.NewRGB(46, 52, 54)},
}

// index maps a folded name (lower case, no separators) to its table slot.
var index = func() map[string]int {
	m := make(map[string]int, len(table))
	for i, e := range table {
		m[fold(string(e.name))] = i
	}
	return m
}()

// Color returns the palette color for n. Unknown names return opaque black.
func (n Name) Color() color.RGBA {
	c, ok := Lookup(string(n))
	if !ok {
		return color.NewRGB(0, 0, 0)
	}
	return c
}

// String returns the camel-case name.
func (n Name) String() string {
	return string(n)
}

// Lookup finds a palette color by name. Matching ignores case and the
// separators '-', '_' and ' ', so "darkRed", "dark_red" and "Dark Red" are
// all the same entry.
func Lookup(name string) (color.RGBA, bool) {
	i, ok := index[fold(name)]
	if !ok {
		return color.RGBA{}, false
	}
	return table[i].color, true
}

// Resolve returns the canonical Name for a loosely spelled one, using the
// same matching as Lookup.
func Resolve(name string) (Name, bool) {
	i, ok := index[fold(name)]
	if !ok {
		return "", false
	}
	return table[i].name, true
}

// Names returns every palette name in table order. The slice is a fresh copy.
func Names() []Name {
	names := make([]Name, len(table))
	for i, e := range table {
		names[i] = e.name
	}
	return names
}

// Nearest returns the palette entry closest to c by Euclidean distance in RGB,
// along with that distance. Channels are compared on a 0-1 scale, so the
// distance ranges from 0 to √3. Ties go to the entry listed first.
func Nearest(c color.Color) (Name, float64) {
	target := toColorful(color.ToRGB(c))

	best := table[0].name
	bestDist := math.Inf(1)
	for _, e := range table {
		d := target.DistanceRgb(toColorful(e.color))
		if d < bestDist {
			best, bestDist = e.name, d
		}
	}
	return best, bestDist
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.Red) / 255,
		G: float64(c.Green) / 255,
		B: float64(c.Blue) / 255,
	}
}

func fold(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(s))
}
