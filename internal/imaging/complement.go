package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	stdcolor "image/color"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-tools-mcp/color"
)

// ComplementOptions controls ComplementImage.
type ComplementOptions struct {
	// Region limits the output to part of the source. Nil means the whole image.
	Region *Region

	// Scale resizes the output. Zero or one keeps the size.
	Scale float64

	// OutputPath, if set, also writes the result to disk. The format is
	// chosen from the file extension.
	OutputPath string
}

// ImageResult contains an encoded image.
type ImageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	OutputPath  string `json:"output_path,omitempty"`
}

// ComplementImage returns a copy of img with every pixel replaced by its
// complement: hue rotated 180 degrees, saturation, lightness and alpha kept.
//
// Fully transparent pixels are left alone. The result is returned as a
// base64 PNG.
func ComplementImage(img image.Image, opts ComplementOptions) (*ImageResult, error) {
	src := img
	if opts.Region != nil {
		rect, err := opts.Region.Rect(img.Bounds())
		if err != nil {
			return nil, err
		}
		src = imaging.Crop(img, rect)
	}

	if opts.Scale < 0 {
		return nil, fmt.Errorf("scale must not be negative, got %g", opts.Scale)
	}
	if opts.Scale != 0 && opts.Scale != 1 {
		w := int(float64(src.Bounds().Dx()) * opts.Scale)
		h := int(float64(src.Bounds().Dy()) * opts.Scale)
		if w == 0 || h == 0 {
			return nil, fmt.Errorf("scale %g leaves an empty image", opts.Scale)
		}
		src = imaging.Resize(src, w, h, imaging.Lanczos)
	}

	out := adjust.Apply(src, complementPixel)

	if opts.OutputPath != "" {
		if err := imaging.Save(out, opts.OutputPath); err != nil {
			return nil, fmt.Errorf("failed to save complemented image: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode complemented image: %w", err)
	}

	return &ImageResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		OutputPath:  opts.OutputPath,
	}, nil
}

// complementPixel works on bild's premultiplied pixels.
func complementPixel(c stdcolor.RGBA) stdcolor.RGBA {
	if c.A == 0 {
		return c
	}
	comp := color.ToRGB(color.Complement(color.FromStd(c)))
	return stdcolor.RGBAModel.Convert(comp).(stdcolor.RGBA)
}
