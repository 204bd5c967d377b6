package palette

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/color-tools-mcp/color"
)

func TestNames(t *testing.T) {
	names := Names()
	assert.Len(t, names, 32)
	assert.Equal(t, LightRed, names[0])
	assert.Equal(t, DarkCharcoal, names[len(names)-1])

	// Callers cannot reach the table through the returned slice.
	names[0] = "mutated"
	assert.Equal(t, LightRed, Names()[0])
}

func TestNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, n := range Names() {
		key := fold(string(n))
		assert.False(t, seen[key], "duplicate %s", n)
		seen[key] = true
	}
}

func TestAllEntriesOpaqueAndInRange(t *testing.T) {
	for _, n := range Names() {
		c := n.Color()
		assert.Equal(t, 1.0, c.Alpha, "%s", n)
		for _, ch := range []int{c.Red, c.Green, c.Blue} {
			assert.GreaterOrEqual(t, ch, 0, "%s", n)
			assert.LessOrEqual(t, ch, 255, "%s", n)
		}
	}
}

func TestKnownEntries(t *testing.T) {
	tests := []struct {
		name Name
		hex  string
	}{
		{Red, "#cc0000"},
		{DarkRed, "#a40000"},
		{LightBlue, "#729fcf"},
		{Charcoal, "#555753"},
		{Black, "#000000"},
		{White, "#ffffff"},
		{Orange, "#f57900"},
	}

	for _, tt := range tests {
		t.Run(tt.name.String(), func(t *testing.T) {
			want, err := colorful.Hex(tt.hex)
			require.NoError(t, err)
			r, g, b := want.RGB255()
			assert.Equal(t, color.NewRGB(int(r), int(g), int(b)), tt.name.Color())
		})
	}
}

func TestGreyGraySpellings(t *testing.T) {
	assert.Equal(t, Grey.Color(), Gray.Color())
	assert.Equal(t, LightGrey.Color(), LightGray.Color())
	assert.Equal(t, DarkGrey.Color(), DarkGray.Color())
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"darkRed", "darkred", "dark_red", "dark-red", "Dark Red", "DARKRED"} {
		c, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, DarkRed.Color(), c, name)
	}

	_, ok := Lookup("ultraviolet")
	assert.False(t, ok)
}

func TestResolve(t *testing.T) {
	n, ok := Resolve("light_charcoal")
	require.True(t, ok)
	assert.Equal(t, LightCharcoal, n)

	_, ok = Resolve("")
	assert.False(t, ok)
}

func TestUnknownNameColor(t *testing.T) {
	assert.Equal(t, color.NewRGB(0, 0, 0), Name("nope").Color())
}

func TestNearest(t *testing.T) {
	name, dist := Nearest(color.NewRGB(204, 0, 0))
	assert.Equal(t, Red, name)
	assert.InDelta(t, 0, dist, 1e-12)

	name, _ = Nearest(color.NewRGB(250, 250, 250))
	assert.Equal(t, White, name)

	name, _ = Nearest(color.NewHSL(0, 0, 0.02))
	assert.Equal(t, Black, name)

	// Grey and gray share a value; the first listed wins.
	name, _ = Nearest(Gray.Color())
	assert.Equal(t, Grey, name)

	c := color.NewRGB(164, 0, 0)
	name, _ = Nearest(&c)
	assert.Equal(t, DarkRed, name)
}

func TestNameColor_UsableAsColor(t *testing.T) {
	var c color.Color = Red.Color()
	assert.Equal(t, color.KindRGBA, c.Kind())
	assert.Equal(t, color.NewRGB(204, 0, 0), color.ToRGB(c))
	assert.Equal(t, color.NewRGB(0, 204, 204), color.ToRGB(color.Complement(c)))

	wants := map[Name]color.RGBA{
		DarkRed:      color.NewRGB(164, 0, 0),
		LightBlue:    color.NewRGB(114, 159, 207),
		Charcoal:     color.NewRGB(85, 87, 83),
		White:        color.NewRGB(255, 255, 255),
		DarkCharcoal: color.NewRGB(46, 52, 54),
	}
	for n, want := range wants {
		assert.Equal(t, want, n.Color(), "%s", n)
	}
}

func TestNameColor_ReturnsCopy(t *testing.T) {
	c := Red.Color()
	c.Red = 1
	assert.Equal(t, 204, Red.Color().Red)

	looked, ok := Lookup("red")
	require.True(t, ok)
	looked.Green = 99
	assert.Equal(t, 0, Red.Color().Green)
}
