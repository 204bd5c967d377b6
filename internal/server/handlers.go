package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/ironsheep/color-tools-mcp/angle"
	"github.com/ironsheep/color-tools-mcp/color"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
	"github.com/ironsheep/color-tools-mcp/palette"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_convert", "image_sample_color").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors, including colors of unrecognized shape, return a
// JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		if s.cfg.Debug() {
			log.Printf("tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Color Model
	case "color_convert":
		return s.handleColorConvert(args)
	case "color_complement":
		return s.handleColorComplement(args)
	case "color_grayscale":
		return s.handleColorGrayscale(args)
	case "color_hsl":
		return s.handleColorHSL(args)
	case "color_palette":
		return s.handleColorPalette(args)
	case "color_nearest_palette":
		return s.handleColorNearestPalette(args)

	// Image Color Operations
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(ctx, args)
	case "image_complement":
		return s.handleImageComplement(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Color Model Handlers ===

// colorResult is a color in one encoding plus every display form. Kind is
// included so the color can be passed back in as a tagged argument.
type colorResult struct {
	Kind        string              `json:"kind"`
	Color       color.Color         `json:"color"`
	Description imaging.ColorResult `json:"description"`
}

func newColorResult(c color.Color) *colorResult {
	return &colorResult{
		Kind:        c.Kind().String(),
		Color:       c,
		Description: imaging.Describe(c),
	}
}

type colorConvertArgs struct {
	Color interface{} `json:"color"`
	To    string      `json:"to"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := color.Recognize(a.Color)
	if err != nil {
		return nil, err
	}

	switch a.To {
	case "rgba", "rgb":
		return newColorResult(color.ToRGB(c)), nil
	case "hsla", "hsl":
		return newColorResult(color.ToHSL(c)), nil
	default:
		return nil, fmt.Errorf("unknown target encoding %q: want rgba or hsla", a.To)
	}
}

type colorComplementArgs struct {
	Color        interface{} `json:"color"`
	PreserveKind *bool       `json:"preserve_kind,omitempty"`
}

func (s *Server) handleColorComplement(args json.RawMessage) (interface{}, error) {
	var a colorComplementArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := color.Recognize(a.Color)
	if err != nil {
		return nil, err
	}

	preserve := s.cfg.PreserveKind
	if a.PreserveKind != nil {
		preserve = *a.PreserveKind
	}
	if preserve {
		return newColorResult(color.ComplementPreserving(c)), nil
	}
	return newColorResult(color.Complement(c)), nil
}

type colorGrayscaleArgs struct {
	Value float64 `json:"value"`
}

func (s *Server) handleColorGrayscale(args json.RawMessage) (interface{}, error) {
	var a colorGrayscaleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return newColorResult(color.Grayscale(a.Value)), nil
}

type colorHSLArgs struct {
	Hue        float64  `json:"hue"`
	Saturation float64  `json:"saturation"`
	Lightness  float64  `json:"lightness"`
	Alpha      *float64 `json:"alpha,omitempty"`
	Unit       string   `json:"unit"`
}

func (s *Server) handleColorHSL(args json.RawMessage) (interface{}, error) {
	var a colorHSLArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var hue float64
	switch a.Unit {
	case "", "degrees":
		hue = angle.Degrees(a.Hue)
	case "turns":
		hue = angle.Turns(a.Hue)
	case "radians":
		hue = angle.Radians(a.Hue)
	default:
		return nil, fmt.Errorf("unknown hue unit %q: want degrees, turns or radians", a.Unit)
	}

	alpha := 1.0
	if a.Alpha != nil {
		alpha = *a.Alpha
	}
	return newColorResult(color.NewHSLA(hue, a.Saturation, a.Lightness, alpha)), nil
}

type paletteEntry struct {
	Name  palette.Name        `json:"name"`
	Color imaging.ColorResult `json:"color"`
}

type colorPaletteArgs struct {
	Name string `json:"name"`
}

func (s *Server) handleColorPalette(args json.RawMessage) (interface{}, error) {
	var a colorPaletteArgs
	if len(args) > 0 {
		if err := json.Unmarshal(args, &a); err != nil {
			return nil, err
		}
	}

	if a.Name != "" {
		name, ok := palette.Resolve(a.Name)
		if !ok {
			return nil, fmt.Errorf("unknown palette color: %s", a.Name)
		}
		return paletteEntry{Name: name, Color: imaging.Describe(name.Color())}, nil
	}

	names := palette.Names()
	entries := make([]paletteEntry, 0, len(names))
	for _, n := range names {
		entries = append(entries, paletteEntry{Name: n, Color: imaging.Describe(n.Color())})
	}
	return map[string]interface{}{"colors": entries}, nil
}

type colorNearestPaletteArgs struct {
	Color interface{} `json:"color"`
}

type nearestPaletteResult struct {
	Name     palette.Name        `json:"name"`
	Distance float64             `json:"distance"`
	Color    imaging.ColorResult `json:"color"`
}

func (s *Server) handleColorNearestPalette(args json.RawMessage) (interface{}, error) {
	var a colorNearestPaletteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := color.Recognize(a.Color)
	if err != nil {
		return nil, err
	}

	name, dist := palette.Nearest(c)
	return &nearestPaletteResult{
		Name:     name,
		Distance: dist,
		Color:    imaging.Describe(name.Color()),
	}, nil
}

// === Image Color Handlers ===

type regionArgs struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

func (r *regionArgs) region() *imaging.Region {
	if r == nil {
		return nil
	}
	return &imaging.Region{X1: r.X1, Y1: r.Y1, X2: r.X2, Y2: r.Y2}
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type imageSampleColorsMultiArgs struct {
	Path   string `json:"path"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	return imaging.SampleColorsMulti(img, points)
}

type imageDominantColorsArgs struct {
	Path   string      `json:"path"`
	Count  int         `json:"count"`
	Region *regionArgs `json:"region,omitempty"`
}

func (s *Server) handleImageDominantColors(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = s.cfg.DominantColorsDefault
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.DominantColors(ctx, img, a.Count, a.Region.region())
}

type imageComplementArgs struct {
	Path       string      `json:"path"`
	Region     *regionArgs `json:"region,omitempty"`
	Scale      float64     `json:"scale"`
	OutputPath string      `json:"output_path"`
}

func (s *Server) handleImageComplement(args json.RawMessage) (interface{}, error) {
	var a imageComplementArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	result, err := imaging.ComplementImage(img, imaging.ComplementOptions{
		Region:     a.Region.region(),
		Scale:      a.Scale,
		OutputPath: a.OutputPath,
	})
	if err != nil {
		return nil, err
	}
	if a.OutputPath != "" {
		s.cache.Evict(a.OutputPath)
	}
	return result, nil
}
