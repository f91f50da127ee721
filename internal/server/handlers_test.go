package server

import (
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/css-color-tools/internal/config"
)

// createTestImageFile writes a two-color PNG (left half c1, right half c2)
// and returns its path.
func createTestImageFile(t *testing.T, width, height int, c1, c2 color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x < width/2 {
				img.Set(x, y, c1)
			} else {
				img.Set(x, y, c2)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "handler-test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

// callTool sends tools/call and returns the response.
func callTool(t *testing.T, s *Server, name string, args interface{}) *MCPResponse {
	t.Helper()
	params, err := json.Marshal(map[string]interface{}{"name": name, "arguments": args})
	if err != nil {
		t.Fatalf("failed to marshal params: %v", err)
	}
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/call", Params: params})
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	return resp
}

// toolResult calls a tool that must succeed and decodes its text content
// into v.
func toolResult(t *testing.T, s *Server, name string, args interface{}, v interface{}) {
	t.Helper()
	resp := callTool(t, s, name, args)
	if resp.Error != nil {
		t.Fatalf("%s failed: %s (%v)", name, resp.Error.Message, resp.Error.Data)
	}

	result := resp.Result.(map[string]interface{})
	content := result["content"].([]map[string]interface{})
	if len(content) != 1 || content[0]["type"] != "text" {
		t.Fatalf("unexpected content: %v", content)
	}
	if err := json.Unmarshal([]byte(content[0]["text"].(string)), v); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
}

// toolError calls a tool that must fail and returns the error.
func toolError(t *testing.T, s *Server, name string, args interface{}) *MCPError {
	t.Helper()
	resp := callTool(t, s, name, args)
	if resp.Error == nil {
		t.Fatalf("%s should fail, got %v", name, resp.Result)
	}
	return resp.Error
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := newTestServer()
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/call", Params: json.RawMessage(`[1,2]`)})
	if resp.Error == nil || resp.Error.Code != -32602 {
		t.Fatalf("expected -32602, got %+v", resp.Error)
	}
}

func TestHandleToolsCall_UnknownTool(t *testing.T) {
	s := newTestServer()
	e := toolError(t, s, "image_crop", map[string]interface{}{})
	if e.Code != -32000 {
		t.Errorf("code: got %d, want -32000", e.Code)
	}
	if !strings.Contains(e.Data.(string), "unknown tool") {
		t.Errorf("data: got %v", e.Data)
	}
}

func TestColorParse(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		args   map[string]interface{}
		number string
		hex    string
		name   string
	}{
		{map[string]interface{}{"color": "rebeccapurple"}, "0xFF663399", "#663399FF", "rebeccapurple"},
		{map[string]interface{}{"color": "hsl(100 50% 40% / 0.23)"}, "0x3B559933", "#5599333B", ""},
		{map[string]interface{}{"color": "light-dark(white, black)"}, "0xFFFFFFFF", "#FFFFFFFF", "white"},
		{map[string]interface{}{"color": "light-dark(white, black)", "mode": "dark"}, "0xFF000000", "#000000FF", "black"},
		{map[string]interface{}{"color": "color-mix(in lab, plum 60%, #f00 50%)"}, "0xFFF7707D", "#F7707DFF", ""},
	}
	for _, tt := range tests {
		t.Run(tt.args["color"].(string), func(t *testing.T) {
			var got ParseResult
			toolResult(t, s, "css_color_parse", tt.args, &got)
			if got.Number != tt.number {
				t.Errorf("number: got %s, want %s", got.Number, tt.number)
			}
			if got.Hex != tt.hex {
				t.Errorf("hex: got %s, want %s", got.Hex, tt.hex)
			}
			if got.Name != tt.name {
				t.Errorf("name: got %q, want %q", got.Name, tt.name)
			}
			if got.Input != tt.args["color"] {
				t.Errorf("input: got %q", got.Input)
			}
		})
	}
}

func TestColorParse_DefaultModeFromConfig(t *testing.T) {
	s := newTestServer()
	s.cfg.DefaultMode = "dark"

	var got ParseResult
	toolResult(t, s, "css_color_parse", map[string]interface{}{"color": "light-dark(white, black)"}, &got)
	if got.Number != "0xFF000000" {
		t.Errorf("got %s, want dark branch 0xFF000000", got.Number)
	}
}

func TestColorParse_Errors(t *testing.T) {
	s := newTestServer()

	for _, args := range []map[string]interface{}{
		{"color": "rgb(1 2)"},
		{"color": ""},
		{"color": "red", "mode": "dim"},
		{},
	} {
		e := toolError(t, s, "css_color_parse", args)
		if e.Code != -32000 {
			t.Errorf("%v: code %d, want -32000", args, e.Code)
		}
	}
}

func TestColorDescribe(t *testing.T) {
	s := newTestServer()

	var got Description
	toolResult(t, s, "css_color_describe", map[string]interface{}{"color": "#ff0000", "nearest": 2}, &got)

	if got.Number != "0xFFFF0000" {
		t.Errorf("number: got %s", got.Number)
	}
	if got.HSL != [3]float64{0, 1, 0.5} {
		t.Errorf("hsl: got %v", got.HSL)
	}
	if got.HSV != [3]float64{0, 1, 1} {
		t.Errorf("hsv: got %v", got.HSV)
	}
	if got.Lab[0] < 0.5 || got.Lab[0] > 0.6 {
		t.Errorf("lab L: got %v, want about 0.53", got.Lab[0])
	}
	if len(got.Nearest) != 2 {
		t.Fatalf("nearest: got %d, want 2", len(got.Nearest))
	}
	if got.Nearest[0].Name != "red" || got.Nearest[0].Distance != 0 {
		t.Errorf("nearest[0]: got %+v, want red at 0", got.Nearest[0])
	}
	if got.Nearest[1].Distance <= 0 {
		t.Errorf("nearest[1]: got %+v, want a positive distance", got.Nearest[1])
	}
}

func TestColorDescribe_DefaultNearest(t *testing.T) {
	s := newTestServer()

	var got Description
	toolResult(t, s, "css_color_describe", map[string]interface{}{"color": "oklch(0.7 0.1 200)"}, &got)
	if len(got.Nearest) != 3 {
		t.Errorf("nearest: got %d, want 3", len(got.Nearest))
	}
}

// decodePNG decodes the image carried in a swatch or palette result.
func decodePNG(t *testing.T, b64 string) image.Image {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("failed to decode png: %v", err)
	}
	return img
}

type renderResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

func TestColorSwatch(t *testing.T) {
	s := newTestServer()

	var got renderResult
	toolResult(t, s, "css_color_swatch", map[string]interface{}{"color": "navy"}, &got)
	if got.Width != 64 || got.Height != 64 {
		t.Errorf("default size: got %dx%d, want 64x64", got.Width, got.Height)
	}
	img := decodePNG(t, got.ImageBase64)
	if img.Bounds().Dx() != 64 {
		t.Errorf("decoded width %d", img.Bounds().Dx())
	}

	toolResult(t, s, "css_color_swatch", map[string]interface{}{"color": "navy", "width": 10, "height": 20}, &got)
	if got.Width != 10 || got.Height != 20 {
		t.Errorf("explicit size: got %dx%d, want 10x20", got.Width, got.Height)
	}

	toolError(t, s, "css_color_swatch", map[string]interface{}{"color": "navy", "width": -5})
	toolError(t, s, "css_color_swatch", map[string]interface{}{"color": "nope"})
}

func TestColorPalette(t *testing.T) {
	s := newTestServer()

	var got renderResult
	toolResult(t, s, "css_color_palette", map[string]interface{}{
		"colors":  []string{"red", "#0f08", "hwb(200 10% 20%)"},
		"columns": 2,
	}, &got)
	if got.Width != 2*48 {
		t.Errorf("width: got %d, want 96", got.Width)
	}
	if got.Height <= 2*48 {
		t.Errorf("height: got %d, want two rows with labels", got.Height)
	}
	if got.MimeType != "image/png" {
		t.Errorf("mime type: got %s", got.MimeType)
	}

	e := toolError(t, s, "css_color_palette", map[string]interface{}{"colors": []string{"red", "bogus"}})
	if !strings.Contains(e.Data.(string), "color 1") {
		t.Errorf("error should name the bad color: %v", e.Data)
	}
	toolError(t, s, "css_color_palette", map[string]interface{}{"colors": []string{}})
}

func TestImageSampleColor(t *testing.T) {
	s := newTestServer()
	path := createTestImageFile(t, 20, 10, color.RGBA{255, 0, 0, 255}, color.RGBA{0x12, 0x34, 0x56, 0xFF})

	var got struct {
		Hex    string `json:"hex"`
		Number string `json:"number"`
		Name   string `json:"name"`
	}
	toolResult(t, s, "image_sample_css_color", map[string]interface{}{"path": path, "x": 1, "y": 1}, &got)
	if got.Hex != "#FF0000FF" || got.Name != "red" {
		t.Errorf("left half: got %+v", got)
	}

	got.Name = ""
	toolResult(t, s, "image_sample_css_color", map[string]interface{}{"path": path, "x": 15, "y": 5}, &got)
	if got.Number != "0xFF123456" || got.Name != "" {
		t.Errorf("right half: got %+v", got)
	}

	toolError(t, s, "image_sample_css_color", map[string]interface{}{"path": path, "x": 20, "y": 0})
	toolError(t, s, "image_sample_css_color", map[string]interface{}{"path": "/nonexistent.png", "x": 0, "y": 0})
}

func TestImageDominantColors(t *testing.T) {
	s := newTestServer()
	path := createTestImageFile(t, 40, 10, color.RGBA{0, 0, 0, 255}, color.RGBA{0x20, 0x40, 0x80, 0xFF})

	var got struct {
		Colors []struct {
			Color struct {
				Hex string `json:"hex"`
			} `json:"color"`
			Percentage float64 `json:"percentage"`
		} `json:"colors"`
	}
	toolResult(t, s, "image_dominant_css_colors", map[string]interface{}{"path": path}, &got)
	if len(got.Colors) != 2 {
		t.Fatalf("got %d colors, want 2", len(got.Colors))
	}
	if got.Colors[0].Color.Hex != "#000000FF" || got.Colors[0].Percentage != 50 {
		t.Errorf("first: got %+v", got.Colors[0])
	}

	toolResult(t, s, "image_dominant_css_colors", map[string]interface{}{
		"path":   path,
		"count":  1,
		"region": map[string]interface{}{"x1": 20, "y1": 0, "x2": 40, "y2": 10},
	}, &got)
	if len(got.Colors) != 1 || got.Colors[0].Color.Hex != "#204080FF" {
		t.Errorf("region: got %+v", got.Colors)
	}

	toolError(t, s, "image_dominant_css_colors", map[string]interface{}{
		"path":   path,
		"region": map[string]interface{}{"x1": 0, "y1": 0, "x2": 80, "y2": 10},
	})
}

func TestColorSwatch_SizeLimits(t *testing.T) {
	s := newTestServer()

	for _, args := range []map[string]interface{}{
		{"color": "red", "width": 2147483647, "height": 2147483647},
		{"color": "red", "width": 2049},
		{"color": "red", "height": 4096},
	} {
		e := toolError(t, s, "css_color_swatch", args)
		if e.Code != -32000 {
			t.Errorf("%v: code %d, want -32000", args, e.Code)
		}
		if !strings.Contains(e.Data.(string), "exceeds") {
			t.Errorf("%v: data %v", args, e.Data)
		}
	}

	var got renderResult
	toolResult(t, s, "css_color_swatch", map[string]interface{}{"color": "red", "width": 2048, "height": 1}, &got)
	if got.Width != 2048 || got.Height != 1 {
		t.Errorf("size at the limit: got %dx%d", got.Width, got.Height)
	}
}

func TestColorSwatch_ConfiguredMaxSize(t *testing.T) {
	cfg := config.Default()
	cfg.Swatch.MaxSize = 100
	s := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	toolError(t, s, "css_color_swatch", map[string]interface{}{"color": "red", "width": 101})
	var got renderResult
	toolResult(t, s, "css_color_swatch", map[string]interface{}{"color": "red", "width": 100}, &got)
}

func TestHandleToolsCall_RecoversPanic(t *testing.T) {
	s := newTestServer()
	s.cache = nil

	e := toolError(t, s, "image_sample_css_color", map[string]interface{}{"path": "/nowhere.png", "x": 0, "y": 0})
	if e.Code != -32000 {
		t.Errorf("code: got %d, want -32000", e.Code)
	}

	// The server still answers afterwards.
	if resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 2, Method: "ping"}); resp == nil || resp.Error != nil {
		t.Errorf("ping after panic: %+v", resp)
	}
}
