package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// colorSchema describes a color argument. Either channel set is accepted;
// alpha and kind are optional.
func colorSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description + " Give red/green/blue (0-255) or hue (radians)/saturation/lightness (0-1); alpha (0-1) defaults to 1.",
		"properties": map[string]interface{}{
			"kind":       map[string]interface{}{"type": "string", "enum": []string{"rgba", "hsla"}, "description": "Optional explicit encoding"},
			"red":        map[string]interface{}{"type": "number"},
			"green":      map[string]interface{}{"type": "number"},
			"blue":       map[string]interface{}{"type": "number"},
			"hue":        map[string]interface{}{"type": "number", "description": "Radians"},
			"saturation": map[string]interface{}{"type": "number"},
			"lightness":  map[string]interface{}{"type": "number"},
			"alpha":      map[string]interface{}{"type": "number"},
		},
	}
}

func regionSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer"},
			"y1": map[string]interface{}{"type": "integer"},
			"x2": map[string]interface{}{"type": "integer"},
			"y2": map[string]interface{}{"type": "integer"},
		},
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Color Model
		{
			Name:        "color_convert",
			Description: "Convert a color between the RGBA and HSLA encodings. Also reports hex and the nearest palette color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorSchema("Color to convert."),
					"to": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"rgba", "hsla"},
						"description": "Target encoding",
					},
				},
				"required": []string{"color", "to"},
			},
		},
		{
			Name:        "color_complement",
			Description: "Return the complementary color (hue rotated 180 degrees, saturation, lightness and alpha kept).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorSchema("Color to complement."),
					"preserve_kind": map[string]interface{}{
						"type":        "boolean",
						"description": "Return the input's encoding instead of HSLA. Defaults to the server setting.",
					},
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_grayscale",
			Description: "Build a gray where 0 is white and 1 is black.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"value": map[string]interface{}{
						"type":        "number",
						"description": "Darkness from 0 (white) to 1 (black)",
					},
				},
				"required": []string{"value"},
			},
		},
		{
			Name:        "color_hsl",
			Description: "Build an HSLA color with the hue given in degrees, turns or radians. Any hue wraps around the color wheel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hue":        map[string]interface{}{"type": "number"},
					"saturation": map[string]interface{}{"type": "number", "description": "0-1"},
					"lightness":  map[string]interface{}{"type": "number", "description": "0-1"},
					"alpha":      map[string]interface{}{"type": "number", "description": "0-1, default 1"},
					"unit": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"degrees", "turns", "radians"},
						"description": "Unit of hue. Default degrees",
						"default":     "degrees",
					},
				},
				"required": []string{"hue", "saturation", "lightness"},
			},
		},
		{
			Name:        "color_palette",
			Description: "List the built-in Tango palette, or look up one entry by name (e.g. darkRed, dark-red).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Optional palette name. If omitted, all entries are returned.",
					},
				},
			},
		},
		{
			Name:        "color_nearest_palette",
			Description: "Find the palette entry closest to a color (Euclidean RGB distance, 0 to 1.732).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorSchema("Color to match."),
				},
				"required": []string{"color"},
			},
		},

		// Image Color Operations
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate in both encodings.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_sample_colors_multi",
			Description: "Get color values at multiple pixel coordinates in a single call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string", "description": "Optional label for this point"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Array of points to sample",
					},
				},
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "Analyze an image and return the N most dominant colors with their nearest palette names.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of dominant colors to return (server default 5)",
					},
					"region": regionSchema("Optional region to analyze. If omitted, analyzes entire image."),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_complement",
			Description: "Produce a copy of an image with every pixel replaced by its complementary color, returned as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"region": regionSchema("Optional region to crop before complementing."),
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor. Default 1.0",
						"default":     1.0,
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to also write the result to; format follows the extension",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
