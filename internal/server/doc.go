// Package server implements the MCP (Model Context Protocol) server for the
// color tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the color model
// (RGBA/HSLA conversion, complements, the named palette) and a few image
// color operations through the MCP protocol.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Color Model:
//   - color_convert: Convert between RGBA and HSLA
//   - color_complement: Rotate hue by 180 degrees
//   - color_grayscale: Build a gray from a darkness value
//   - color_hsl: Build an HSLA color from degrees, turns or radians
//   - color_palette: List or look up palette entries
//   - color_nearest_palette: Closest palette entry to a color
//
// Image Color Operations:
//   - image_sample_color: Get color at pixel
//   - image_sample_colors_multi: Sample multiple points
//   - image_dominant_colors: Extract color palette
//   - image_complement: Complement every pixel
//
// # Color Arguments
//
// Color arguments are plain JSON objects. They are recognized by shape: red,
// green and blue make an RGBA; hue, saturation and lightness make an HSLA.
// An optional "kind" field forces one encoding. Results carry "kind" so they
// can be passed straight back in.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string, e.g. "invalid color shape: ..."
package server
