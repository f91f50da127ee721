package server

import "github.com/ironsheep/css-color-tools/internal/config"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// Shared schema fragments.
var (
	colorProperty = map[string]interface{}{
		"type":        "string",
		"description": "Any CSS color expression, e.g. \"rebeccapurple\", \"#f718\", \"hsl(100 50% 40% / 0.5)\" or \"color-mix(in oklch, plum, #f00 30%)\"",
	}
	modeProperty = map[string]interface{}{
		"type":        "string",
		"enum":        []string{"light", "dark"},
		"description": "Branch used by light-dark(). Defaults to the server's configured mode",
	}
	pathProperty = map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to a PNG, JPEG or GIF image",
	}
)

// GetToolDefinitions returns all available tools, described for the default
// configuration.
func GetToolDefinitions() []Tool {
	return toolDefinitions(config.Default().Swatch.MaxSize)
}

// toolDefinitions returns the tool catalogue with swatch sizes limited to
// maxSwatchSize.
func toolDefinitions(maxSwatchSize int) []Tool {
	return []Tool{
		// Parsing
		{
			Name:        "css_color_parse",
			Description: "Parse a CSS color expression and return it as #RRGGBBAA, 0xAARRGGBB, rgb() and its 8-bit channels.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
					"mode":  modeProperty,
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "css_color_describe",
			Description: "Parse a CSS color and describe it: HSL, HSV, CIE Lab and Luv coordinates plus the closest CSS named colors by CIEDE2000 distance.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
					"mode":  modeProperty,
					"nearest": map[string]interface{}{
						"type":        "integer",
						"description": "How many nearest named colors to list. Default 3",
						"default":     3,
					},
				},
				"required": []string{"color"},
			},
		},

		// Rendering
		{
			Name:        "css_color_swatch",
			Description: "Render a CSS color as a base64-encoded PNG swatch. Translucent colors are drawn over a checkerboard.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
					"mode":  modeProperty,
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Swatch width in pixels. Defaults to the configured size",
						"minimum":     1,
						"maximum":     maxSwatchSize,
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Swatch height in pixels. Defaults to the configured size",
						"minimum":     1,
						"maximum":     maxSwatchSize,
					},
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "css_color_palette",
			Description: "Render several CSS colors side by side as a base64-encoded PNG, each cell labelled with its #RRGGBBAA value.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colors": map[string]interface{}{
						"type":        "array",
						"items":       colorProperty,
						"description": "CSS color expressions, drawn left to right and top to bottom",
					},
					"mode": modeProperty,
					"columns": map[string]interface{}{
						"type":        "integer",
						"description": "Cells per row. Defaults to the configured column count",
					},
				},
				"required": []string{"colors"},
			},
		},

		// Image colors
		{
			Name:        "image_sample_css_color",
			Description: "Read the pixel at (x, y) of an image and return it as CSS color strings, including its CSS name when it has one.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from the left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from the top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_dominant_css_colors",
			Description: "Find the most common colors in an image or region, quantized to steps of 16 per channel, as CSS color strings.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return. Default 5",
						"default":     5,
					},
					"region": map[string]interface{}{
						"type":        "object",
						"description": "Optional region to analyze; x2 and y2 are exclusive",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the tool catalogue.
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": toolDefinitions(s.cfg.Swatch.MaxSize),
		},
	}
}
