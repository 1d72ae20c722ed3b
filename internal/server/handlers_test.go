package server

import (
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/img2ascii/internal/asciiart"
	"github.com/ironsheep/img2ascii/internal/imaging"
)

// createTestImageFile writes a solid-color PNG and returns its path
func createTestImageFile(t *testing.T, width, height int, c color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "handler-test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}

	return path
}

// callTool issues a tools/call request and returns the response.
func callTool(t *testing.T, s *Server, name string, args map[string]interface{}) *MCPResponse {
	t.Helper()

	params := map[string]interface{}{
		"name":      name,
		"arguments": args,
	}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("failed to marshal params: %v", err)
	}

	resp := s.handleRequest(context.Background(), &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  paramsJSON,
	})
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	return resp
}

// decodeContent unmarshals the JSON text payload of a successful tool response.
func decodeContent(t *testing.T, resp *MCPResponse, v interface{}) {
	t.Helper()

	if resp.Error != nil {
		t.Fatalf("Unexpected error: %+v", resp.Error)
	}
	result, ok := resp.Result.(ToolResult)
	if !ok {
		t.Fatalf("Result type: got %T", resp.Result)
	}
	if len(result.Content) != 1 || result.Content[0].Type != "text" {
		t.Fatalf("unexpected content: %+v", result.Content)
	}
	if err := json.Unmarshal([]byte(result.Content[0].Text), v); err != nil {
		t.Fatalf("failed to decode tool result: %v", err)
	}
}

func TestHandleToolsCall_ImageDimensions(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 200, 150, color.RGBA{0, 255, 0, 255})

	var dims imaging.DimensionsResult
	decodeContent(t, callTool(t, s, "image_dimensions", map[string]interface{}{"path": imgPath}), &dims)

	if dims.Width != 200 || dims.Height != 150 {
		t.Errorf("dimensions: got %dx%d, want 200x150", dims.Width, dims.Height)
	}
}

func TestHandleToolsCall_ImageToASCII(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 8, 4, color.RGBA{255, 255, 255, 255})

	tests := []struct {
		name string
		args map[string]interface{}
		want asciiart.Result
	}{
		{
			"defaults",
			map[string]interface{}{"path": imgPath},
			asciiart.Result{Width: 8, Height: 2, Charset: "short", Text: "@@@@@@@@\n@@@@@@@@\n"},
		},
		{
			"narrow blocky",
			map[string]interface{}{"path": imgPath, "width": 4, "charset": "blocky", "filter": "nearest"},
			asciiart.Result{Width: 4, Height: 1, Charset: "blocky", Text: "████\n"},
		},
		{
			"inverted",
			map[string]interface{}{"path": imgPath, "invert": true, "conversion": "average", "width": -1},
			asciiart.Result{Width: 8, Height: 2, Charset: "short", Text: "        \n        \n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got asciiart.Result
			decodeContent(t, callTool(t, s, "image_to_ascii", tt.args), &got)
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}

	// All calls share one decoded image.
	if s.cache.Len() != 1 {
		t.Errorf("cache entries: got %d, want 1", s.cache.Len())
	}
}

func TestHandleToolsCall_ImageToASCII_Errors(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 4, 4, color.RGBA{0, 0, 0, 255})

	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{"missing path", map[string]interface{}{}},
		{"nonexistent file", map[string]interface{}{"path": "/nonexistent/image.png"}},
		{"zero width", map[string]interface{}{"path": imgPath, "width": 0}},
		{"unknown charset", map[string]interface{}{"path": imgPath, "charset": "braille"}},
		{"unknown conversion", map[string]interface{}{"path": imgPath, "conversion": "sepia"}},
		{"unknown filter", map[string]interface{}{"path": imgPath, "filter": "sinc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := callTool(t, s, "image_to_ascii", tt.args)
			if resp.Error == nil {
				t.Fatal("expected error response")
			}
			if resp.Error.Code != -32000 {
				t.Errorf("Code: got %d, want -32000", resp.Error.Code)
			}
		})
	}
}

func TestHandleToolsCall_ASCIIPalettes(t *testing.T) {
	s := New()

	var got PalettesResult
	decodeContent(t, callTool(t, s, "ascii_palettes", map[string]interface{}{}), &got)

	want := map[string]int{"short": 10, "long": 65, "blocky": 5}
	if len(got.Palettes) != len(want) {
		t.Fatalf("palettes: got %d, want %d", len(got.Palettes), len(want))
	}
	for _, p := range got.Palettes {
		if want[p.Name] != p.Size {
			t.Errorf("%s: size %d, want %d", p.Name, p.Size, want[p.Name])
		}
		if len([]rune(p.Glyphs)) != p.Size {
			t.Errorf("%s: glyphs %q do not match size %d", p.Name, p.Glyphs, p.Size)
		}
	}
}

func TestHandleToolsCall_UnknownTool(t *testing.T) {
	resp := callTool(t, New(), "image_crop", map[string]interface{}{})
	if resp.Error == nil || resp.Error.Code != -32000 {
		t.Fatalf("expected tool execution error, got %+v", resp.Error)
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New()
	resp := s.handleRequest(context.Background(), &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  json.RawMessage(`"not an object"`),
	})
	if resp == nil || resp.Error == nil || resp.Error.Code != -32602 {
		t.Fatalf("expected invalid params error, got %+v", resp)
	}
}
