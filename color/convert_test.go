package color

import (
	"math"
	"math/rand"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/color-tools-mcp/angle"
)

func TestToRGB_KnownConversions(t *testing.T) {
	tests := []struct {
		name string
		in   HSLA
		want RGBA
	}{
		{"red", NewHSL(0, 1, 0.5), NewRGB(255, 0, 0)},
		{"green", NewHSL(angle.Degrees(120), 1, 0.5), NewRGB(0, 255, 0)},
		{"blue", NewHSL(angle.Degrees(240), 1, 0.5), NewRGB(0, 0, 255)},
		{"yellow", NewHSL(angle.Degrees(60), 1, 0.5), NewRGB(255, 255, 0)},
		{"cyan", NewHSL(angle.Degrees(180), 1, 0.5), NewRGB(0, 255, 255)},
		{"magenta", NewHSL(angle.Degrees(300), 1, 0.5), NewRGB(255, 0, 255)},
		{"white", NewHSL(0, 0, 1), NewRGB(255, 255, 255)},
		{"black", NewHSL(0, 0, 0), NewRGB(0, 0, 0)},
		{"mid gray", NewHSL(2, 0, 0.5), NewRGB(128, 128, 128)},
		{"translucent red", NewHSLA(0, 1, 0.5, 0.25), NewRGBA(255, 0, 0, 0.25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToRGB(tt.in))
		})
	}
}

func TestToHSL_KnownConversions(t *testing.T) {
	tests := []struct {
		name                   string
		in                     RGBA
		hueDeg, sat, lightness float64
	}{
		{"red", NewRGB(255, 0, 0), 0, 1, 0.5},
		{"green", NewRGB(0, 255, 0), 120, 1, 0.5},
		{"blue", NewRGB(0, 0, 255), 240, 1, 0.5},
		{"magenta wraps through red sector", NewRGB(255, 0, 128), 329.882352941, 1, 0.5},
		{"dark teal", NewRGB(0, 128, 128), 180, 1, 128.0 / 255 / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToHSL(tt.in)
			assert.InDelta(t, 0, hueDiff(angle.Degrees(tt.hueDeg), got.Hue), 1e-6)
			assert.InDelta(t, tt.sat, got.Saturation, 1e-9)
			assert.InDelta(t, tt.lightness, got.Lightness, 1e-9)
			assert.Equal(t, tt.in.Alpha, got.Alpha)
		})
	}
}

func TestToHSL_Achromatic(t *testing.T) {
	for _, v := range []int{0, 1, 64, 128, 254, 255} {
		got := ToHSL(NewRGB(v, v, v))
		assert.Equal(t, 0.0, got.Hue, "value %d", v)
		assert.Equal(t, 0.0, got.Saturation, "value %d", v)
		assert.False(t, math.IsNaN(got.Lightness))
		assert.InDelta(t, float64(v)/255, got.Lightness, 1e-12)
	}
}

func TestToHSL_FieldsBoundByName(t *testing.T) {
	// Dark saturated red: lightness and saturation differ, so a swap shows.
	got := ToHSL(NewRGB(128, 0, 0))
	assert.InDelta(t, 1.0, got.Saturation, 1e-9)
	assert.InDelta(t, 128.0/255/2, got.Lightness, 1e-9)
}

func TestToRGB_Unchanged(t *testing.T) {
	c := NewRGBA(12, 34, 56, 0.7)
	assert.Equal(t, c, ToRGB(c))
}

func TestToHSL_Unchanged(t *testing.T) {
	c := NewHSLA(1.25, 0.3, 0.6, 0.7)
	assert.Equal(t, c, ToHSL(c))
}

func TestToRGB_NilPanics(t *testing.T) {
	assert.Panics(t, func() { ToRGB(nil) })
	assert.Panics(t, func() { ToHSL(nil) })
}

func TestPointerColors(t *testing.T) {
	rgb := NewRGBA(255, 0, 0, 0.5)
	hsl := NewHSLA(math.Pi, 1, 0.5, 0.5)

	var pr Color = &rgb
	var ph Color = &hsl

	assert.Equal(t, KindRGBA, pr.Kind())
	assert.Equal(t, rgb, ToRGB(pr))
	assert.Equal(t, hsl, ToHSL(ph))
	assert.Equal(t, NewRGBA(0, 255, 255, 0.5), ToRGB(ph))

	h := ToHSL(pr)
	assert.InDelta(t, 0, h.Hue, tolerance)
	assert.InDelta(t, 0.5, h.Alpha, tolerance)

	assert.InDelta(t, math.Pi, Complement(pr).Hue, tolerance)
	assert.Equal(t, NewRGBA(0, 255, 255, 0.5), ComplementPreserving(pr))
	assert.InDelta(t, 0, ComplementPreserving(ph).(HSLA).Hue, tolerance)

	// The input is not modified through the pointer.
	assert.Equal(t, NewRGBA(255, 0, 0, 0.5), rgb)
}

func TestPointerColors_NilPanics(t *testing.T) {
	var pr *RGBA
	var ph *HSLA

	assert.PanicsWithValue(t, &ShapeError{Value: pr, Reason: "nil color"}, func() { ToRGB(pr) })
	assert.PanicsWithValue(t, &ShapeError{Value: ph, Reason: "nil color"}, func() { ToHSL(ph) })
	assert.Panics(t, func() { Complement(pr) })
}

func TestToRGB_OutOfSectorHue(t *testing.T) {
	// Built by hand to bypass normalization.
	c := HSLA{Hue: 7 * math.Pi, Saturation: 1, Lightness: 0.5, Alpha: 1}
	assert.Equal(t, NewRGB(0, 0, 0), ToRGB(c))
}

func TestToRGB_NotClamped(t *testing.T) {
	got := ToRGB(NewHSL(0, 1, 1.5))
	assert.Equal(t, 510, got.Green)
}

func TestRoundTrip_RGBToHSLToRGB(t *testing.T) {
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 15 {
			for b := 0; b <= 255; b += 15 {
				c := NewRGBA(r, g, b, 0.5)
				require.Equal(t, c, ToRGB(ToHSL(c)), "rgb(%d,%d,%d)", r, g, b)
			}
		}
	}
}

func TestRoundTrip_HSLStableThroughRGB(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		c := NewRGBA(rng.Intn(256), rng.Intn(256), rng.Intn(256), rng.Float64())
		want := ToHSL(c)
		got := ToHSL(ToRGB(want))

		assert.InDelta(t, 0, hueDiff(want.Hue, got.Hue), 1e-9, "color %+v", c)
		assert.InDelta(t, want.Saturation, got.Saturation, 1e-9, "color %+v", c)
		assert.InDelta(t, want.Lightness, got.Lightness, 1e-9, "color %+v", c)
		assert.Equal(t, want.Alpha, got.Alpha)
	}
}

func TestAlphaPreserved(t *testing.T) {
	const a = 0.3
	rgb := NewRGBA(10, 200, 30, a)
	hsl := NewHSLA(4, 0.2, 0.7, a)

	assert.Equal(t, a, ToHSL(rgb).Alpha)
	assert.Equal(t, a, ToRGB(hsl).Alpha)
	assert.Equal(t, a, Complement(rgb).Alpha)
	assert.Equal(t, a, Complement(hsl).Alpha)
	assert.Equal(t, a, ToRGB(ComplementPreserving(rgb)).Alpha)
}

func TestMatchesColorful_RGBToHSL(t *testing.T) {
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				wantH, wantS, wantL := colorful.Color{
					R: float64(r) / 255,
					G: float64(g) / 255,
					B: float64(b) / 255,
				}.Hsl()

				got := ToHSL(NewRGB(r, g, b))
				assert.InDelta(t, 0, hueDiff(angle.Degrees(wantH), got.Hue), 1e-9, "rgb(%d,%d,%d)", r, g, b)
				assert.InDelta(t, wantS, got.Saturation, 1e-9, "rgb(%d,%d,%d)", r, g, b)
				assert.InDelta(t, wantL, got.Lightness, 1e-9, "rgb(%d,%d,%d)", r, g, b)
			}
		}
	}
}

func TestMatchesColorful_HSLToRGB(t *testing.T) {
	for deg := 0.0; deg < 360; deg += 7.5 {
		for _, s := range []float64{0, 0.25, 0.5, 1} {
			for _, l := range []float64{0.1, 0.3, 0.5, 0.8} {
				wr, wg, wb := colorful.Hsl(deg, s, l).RGB255()
				got := ToRGB(NewHSL(angle.Degrees(deg), s, l))

				assert.InDelta(t, int(wr), got.Red, 1, "hsl(%v,%v,%v)", deg, s, l)
				assert.InDelta(t, int(wg), got.Green, 1, "hsl(%v,%v,%v)", deg, s, l)
				assert.InDelta(t, int(wb), got.Blue, 1, "hsl(%v,%v,%v)", deg, s, l)
			}
		}
	}
}

func TestComplement(t *testing.T) {
	got := Complement(NewRGB(255, 0, 0))
	assert.InDelta(t, math.Pi, got.Hue, tolerance)
	assert.InDelta(t, 1.0, got.Saturation, tolerance)
	assert.InDelta(t, 0.5, got.Lightness, tolerance)
	assert.Equal(t, NewRGB(0, 255, 255), ToRGB(got))

	wrapped := Complement(NewHSL(angle.Degrees(270), 0.4, 0.6))
	assert.InDelta(t, angle.Degrees(90), wrapped.Hue, tolerance)
}

func TestComplement_Involution(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		c := NewHSLA(rng.Float64()*20-10, rng.Float64(), rng.Float64(), rng.Float64())
		got := Complement(Complement(c))

		assert.InDelta(t, 0, hueDiff(c.Hue, got.Hue), 1e-9)
		assert.Equal(t, c.Saturation, got.Saturation)
		assert.Equal(t, c.Lightness, got.Lightness)
		assert.Equal(t, c.Alpha, got.Alpha)
	}
}

func TestComplementPreserving(t *testing.T) {
	rgb := ComplementPreserving(NewRGB(255, 0, 0))
	require.Equal(t, KindRGBA, rgb.Kind())
	assert.Equal(t, NewRGB(0, 255, 255), rgb)

	hsl := ComplementPreserving(NewHSL(0, 1, 0.5))
	require.Equal(t, KindHSLA, hsl.Kind())
	assert.InDelta(t, math.Pi, hsl.(HSLA).Hue, tolerance)
}

func TestRotateHue(t *testing.T) {
	c := NewHSLA(angle.Degrees(300), 0.5, 0.5, 0.9)
	got := RotateHue(c, angle.Degrees(90))
	assert.InDelta(t, angle.Degrees(30), got.Hue, tolerance)
	assert.Equal(t, c.Alpha, got.Alpha)
}

func TestFmod(t *testing.T) {
	tests := []struct {
		x, n, want float64
	}{
		{0, 6, 0},
		{5.5, 6, 5.5},
		{6, 6, 0},
		{7.25, 6, 1.25},
		{-0.5, 6, 5.5},
		{-1, 6, 5},
		{-6.75, 6, 5.25},
		{3, 2, 1},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, fmod(tt.x, tt.n), 1e-12, "fmod(%v, %v)", tt.x, tt.n)
	}
}
