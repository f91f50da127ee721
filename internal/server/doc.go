// Package server implements the MCP (Model Context Protocol) server for the
// CSS color tools.
//
// The server speaks JSON-RPC 2.0 over stdio, one request per line on stdin
// and one response per line on stdout. Logs go to stderr through slog.
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Parsing:
//   - css_color_parse: CSS color expression to hex, number, rgb() and channels
//   - css_color_describe: the same plus HSL/HSV/Lab/Luv and nearest named colors
//
// Rendering:
//   - css_color_swatch: PNG swatch of one color
//   - css_color_palette: labelled PNG sheet of several colors
//
// Image colors:
//   - image_sample_css_color: pixel color as CSS strings
//   - image_dominant_css_colors: most common colors of an image or region
//
// Colors may use light-dark(); tools take an optional "mode" and otherwise use
// the configured default_mode.
//
// # Error Handling
//
// Tool failures, including unparseable colors, are returned as JSON-RPC errors
// with code -32000 and the Go error text in data. Malformed tools/call params
// use -32602 and unknown methods -32601.
package server
