package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/css-color-tools/internal/imaging"
	"github.com/ironsheep/css-color-tools/pkg/csscolor"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "css_color_parse").
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
// Tool execution errors, including a panic inside a tool, return a JSON-RPC
// error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) (resp *MCPResponse) {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("tool panicked", "tool", params.Name, "panic", r)
			resp = s.errorResponse(req.ID, -32000, "Tool execution failed", fmt.Sprint(r))
		}
	}()

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Debug("tool failed", "tool", params.Name, "error", err)
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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Parsing
	case "css_color_parse":
		return s.handleColorParse(args)
	case "css_color_describe":
		return s.handleColorDescribe(args)

	// Rendering
	case "css_color_swatch":
		return s.handleColorSwatch(args)
	case "css_color_palette":
		return s.handleColorPalette(args)

	// Image colors
	case "image_sample_css_color":
		return s.handleImageSampleColor(args)
	case "image_dominant_css_colors":
		return s.handleImageDominantColors(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
// An empty data string is left out of the response.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	resp := &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
		},
	}
	if data != "" {
		resp.Error.Data = data
	}
	return resp
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments. Missing arguments decode as the zero
// value so that tools whose fields are all optional can be called bare.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// parseColor parses input with the server's parser. An empty mode means the
// configured default.
func (s *Server) parseColor(input, mode string) (csscolor.Color, error) {
	if mode == "" {
		mode = s.cfg.DefaultMode
	}
	m, ok := csscolor.ParseMode(mode)
	if !ok {
		return csscolor.Color{}, fmt.Errorf("unknown mode %q, want light or dark", mode)
	}
	c, err := s.parser.Parse(input, csscolor.Options{Mode: m})
	if err != nil {
		return csscolor.Color{}, fmt.Errorf("%q: %w", input, err)
	}
	return c, nil
}

// === Parsing Handlers ===

type colorArgs struct {
	Color string `json:"color"`
	Mode  string `json:"mode,omitempty"`
}

// ParseResult is the css_color_parse result.
type ParseResult struct {
	Input string `json:"input"`
	imaging.CSSColor
	Value uint32 `json:"value"` // A<<24 | R<<16 | G<<8 | B
}

func (s *Server) handleColorParse(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := s.parseColor(a.Color, a.Mode)
	if err != nil {
		return nil, err
	}
	return newParseResult(a.Color, c), nil
}

func newParseResult(input string, c csscolor.Color) ParseResult {
	return ParseResult{Input: input, CSSColor: imaging.NewCSSColor(c), Value: c.ToNumber()}
}

type colorDescribeArgs struct {
	colorArgs
	Nearest int `json:"nearest"`
}

func (s *Server) handleColorDescribe(args json.RawMessage) (interface{}, error) {
	var a colorDescribeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Nearest == 0 {
		a.Nearest = 3
	}
	c, err := s.parseColor(a.Color, a.Mode)
	if err != nil {
		return nil, err
	}
	return describe(a.Color, c, a.Nearest), nil
}

// === Rendering Handlers ===

type colorSwatchArgs struct {
	colorArgs
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handleColorSwatch(args json.RawMessage) (interface{}, error) {
	var a colorSwatchArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = s.cfg.Swatch.Width
	}
	if a.Height == 0 {
		a.Height = s.cfg.Swatch.Height
	}
	c, err := s.parseColor(a.Color, a.Mode)
	if err != nil {
		return nil, err
	}
	return imaging.Swatch(c, imaging.SwatchOptions{
		Width:       a.Width,
		Height:      a.Height,
		CheckerSize: s.cfg.Swatch.CheckerSize,
		MaxSize:     s.cfg.Swatch.MaxSize,
	})
}

type colorPaletteArgs struct {
	Colors  []string `json:"colors"`
	Mode    string   `json:"mode,omitempty"`
	Columns int      `json:"columns"`
}

func (s *Server) handleColorPalette(args json.RawMessage) (interface{}, error) {
	var a colorPaletteArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Columns == 0 {
		a.Columns = s.cfg.Palette.Columns
	}

	colors := make([]csscolor.Color, len(a.Colors))
	for i, input := range a.Colors {
		c, err := s.parseColor(input, a.Mode)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i, err)
		}
		colors[i] = c
	}
	return imaging.Palette(colors, imaging.PaletteOptions{
		Columns:     a.Columns,
		CellSize:    s.cfg.Palette.CellSize,
		CheckerSize: s.cfg.Swatch.CheckerSize,
	})
}

// === Image Color Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleCSSColor(img, a.X, a.Y)
}

type imageDominantColorsArgs struct {
	Path   string          `json:"path"`
	Count  int             `json:"count"`
	Region *imaging.Region `json:"region,omitempty"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.DominantCSSColors(img, a.Count, a.Region)
}
