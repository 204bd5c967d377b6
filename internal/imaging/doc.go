// Package imaging applies the color model to raster images for the MCP server.
//
// It samples pixels into both color encodings, extracts dominant colors, and
// produces complemented copies of images. All operations work with standard Go
// image.Image types and use a coordinate system where (0,0) is the top-left
// corner, X increases rightward, and Y increases downward.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Individual image operations
// are stateless and can be called concurrently on different images.
//
// # Color Representation
//
// Every sampled color is reported by Describe in three forms:
//   - Hex: "#rrggbb" (alpha excluded, channels clamped)
//   - RGBA: integer channels and alpha in 0-1
//   - HSL: hue in degrees with saturation, lightness and alpha in 0-1
//
// plus the nearest entry of the built-in palette.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Coordinates outside image bounds
//   - Invalid region specifications (x1 >= x2 or y1 >= y2)
//   - File I/O errors during image loading or saving
//   - Encoding errors during image output
package imaging
