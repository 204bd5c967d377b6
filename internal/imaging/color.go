package imaging

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/color-tools-mcp/color"
)

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - *ColorResult: The color at (x, y) in multiple formats.
//   - error: Non-nil if coordinates are outside the image bounds.
//
// # Color Conversion
//
// The pixel is read through the non-premultiplied 8-bit model, so a
// half-transparent red reports red 255 with alpha 0.5 rather than red 128.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	result := Describe(color.FromStd(img.At(x, y)))
	return &result, nil
}

// LabeledPoint represents a pixel coordinate with an optional descriptive label.
type LabeledPoint struct {
	X     int    // X coordinate (0-based)
	Y     int    // Y coordinate (0-based)
	Label string // Optional descriptive label for this point
}

// LabeledColorResult combines a color sample with its location and optional label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"` // Optional label (empty if not provided)
	X     int         `json:"x"`               // X coordinate that was sampled
	Y     int         `json:"y"`               // Y coordinate that was sampled
	Color ColorResult `json:"color"`           // The color at this location
}

// MultiColorResult contains color samples from multiple points.
//
// Results are returned in the same order as the input points.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"` // Color samples in input order
}

// SampleColorsMulti extracts colors at multiple pixel coordinates in a single call.
//
// On error, no partial results are returned.
func SampleColorsMulti(img image.Image, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		c, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *c,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}

// Region represents a rectangular region within an image.
//
// (X1, Y1) is the top-left corner (inclusive) and (X2, Y2) the bottom-right
// corner (exclusive).
type Region struct {
	X1 int // Left edge X coordinate (inclusive)
	Y1 int // Top edge Y coordinate (inclusive)
	X2 int // Right edge X coordinate (exclusive)
	Y2 int // Bottom edge Y coordinate (exclusive)
}

// Rect validates r against bounds and returns it as an image.Rectangle.
func (r Region) Rect(bounds image.Rectangle) (image.Rectangle, error) {
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return image.Rectangle{}, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
	}
	rect := image.Rect(r.X1, r.Y1, r.X2, r.Y2)
	if !rect.In(bounds) {
		return image.Rectangle{}, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			r.X1, r.Y1, r.X2, r.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	return rect, nil
}

// ColorFrequency represents a color and its occurrence frequency in an image.
type ColorFrequency struct {
	ColorResult
	Percentage float64 `json:"percentage"` // Percentage of pixels with this color (0-100)
}

// DominantColorsResult contains the most frequently occurring colors in an image.
//
// Colors are sorted by frequency in descending order (most common first).
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"` // Colors sorted by frequency (descending)
}

// DominantColors extracts the N most common colors from an image or region.
//
// Parameters:
//   - ctx: Cancels the scan between rows.
//   - img: The source image to analyze.
//   - count: Maximum number of colors to return. Must be positive.
//   - region: Optional rectangular region to analyze. If nil, the entire image
//     is analyzed.
//
// # Color Quantization
//
// To group similar colors, each channel is rounded down to a multiple of 16:
//
//	quantized = (original / 16) * 16
//
// Channels are read through the non-premultiplied model, as SampleColor does,
// so translucent pixels keep their hue. Alpha does not split groups; each
// entry reports the mean alpha of its pixels. Colors with equal frequency are ordered by their packed
// RGB value so results are deterministic.
//
// # Performance
//
// The region is split into horizontal bands, one per available CPU, which are
// counted concurrently and merged.
func DominantColors(ctx context.Context, img image.Image, count int, region *Region) (*DominantColorsResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	bounds := img.Bounds()
	if region != nil {
		rect, err := region.Rect(bounds)
		if err != nil {
			return nil, err
		}
		bounds = rect
	}

	bands := runtime.GOMAXPROCS(0)
	if bands > bounds.Dy() {
		bands = bounds.Dy()
	}
	if bands == 0 {
		return &DominantColorsResult{Colors: []ColorFrequency{}}, nil
	}
	rowsPerBand := (bounds.Dy() + bands - 1) / bands

	partials := make([]map[uint32]bucket, bands)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < bands; i++ {
		y0 := bounds.Min.Y + i*rowsPerBand
		y1 := min(y0+rowsPerBand, bounds.Max.Y)
		g.Go(func() error {
			counts := make(map[uint32]bucket)
			for y := y0; y < y1; y++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				for x := bounds.Min.X; x < bounds.Max.X; x++ {
					c := color.FromStd(img.At(x, y))
					key := quantize(c)
					b := counts[key]
					b.pixels++
					b.alpha += c.Alpha
					counts[key] = b
				}
			}
			partials[i] = counts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dominant color scan interrupted: %w", err)
	}

	colorCounts := make(map[uint32]bucket)
	for _, counts := range partials {
		for key, b := range counts {
			total := colorCounts[key]
			total.pixels += b.pixels
			total.alpha += b.alpha
			colorCounts[key] = total
		}
	}
	totalPixels := bounds.Dx() * bounds.Dy()

	keys := make([]uint32, 0, len(colorCounts))
	for key := range colorCounts {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		ci, cj := colorCounts[keys[i]].pixels, colorCounts[keys[j]].pixels
		if ci != cj {
			return ci > cj
		}
		return keys[i] < keys[j]
	})
	if len(keys) > count {
		keys = keys[:count]
	}

	colors := make([]ColorFrequency, 0, len(keys))
	for _, key := range keys {
		b := colorCounts[key]
		c := color.NewRGBA(int(key>>16&0xff), int(key>>8&0xff), int(key&0xff), b.alpha/float64(b.pixels))
		colors = append(colors, ColorFrequency{
			ColorResult: Describe(c),
			Percentage:  float64(b.pixels) / float64(totalPixels) * 100,
		})
	}

	return &DominantColorsResult{Colors: colors}, nil
}

// bucket accumulates the pixels that quantize to one key.
type bucket struct {
	pixels int
	alpha  float64 // sum of pixel alphas, 0-1 each
}

// quantize packs non-premultiplied channels into a 24-bit key after rounding
// each down to a multiple of 16.
func quantize(c color.RGBA) uint32 {
	r8 := uint32(c.Red) / 16 * 16
	g8 := uint32(c.Green) / 16 * 16
	b8 := uint32(c.Blue) / 16 * 16
	return r8<<16 | g8<<8 | b8
}
