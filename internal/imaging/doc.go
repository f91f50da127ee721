// Package imaging is the image side of the CSS color tool server.
//
// It reads colors out of images as CSS values (single pixels and dominant
// palettes) and renders CSS colors back into images (single swatches and
// labelled palette sheets). Rendered images are returned as base64 PNG so
// they can travel inside an MCP tool result.
//
// # Coordinates
//
// Pixel coordinates are 0-based with (0,0) at the top-left. Regions include
// (X1,Y1) and exclude (X2,Y2).
//
// # Transparency
//
// Sampled colors are un-premultiplied, matching the straight alpha of
// csscolor.Color. Swatches composite translucent colors over a light and
// dark checkerboard with bild's normal blend so the alpha stays visible.
//
// # Caching
//
// ImageCache is safe for concurrent use. Rendering and sampling functions
// hold no state.
package imaging
