package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ironsheep/img2ascii/internal/asciiart"
	"github.com/ironsheep/img2ascii/internal/ctxlog"
	"github.com/ironsheep/img2ascii/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_to_ascii").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// ContentItem is one entry of a tool result. Only text content is produced.
type ContentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ToolResult is the result of a tools/call request. The tool's own result is
// carried as indented JSON in a single text item.
type ToolResult struct {
	Content []ContentItem `json:"content"`
}

// handleToolsCall runs the named tool. Malformed params are reported with
// codeInvalidParams and tool failures with codeToolFailed.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return failure(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	log := ctxlog.FromContext(ctx)
	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		log.Debug("tool failed", "tool", params.Name, "err", err)
		return failure(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	text, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return failure(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}
	return success(req.ID, ToolResult{Content: []ContentItem{{Type: "text", Text: string(text)}}})
}

func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case toolImageDimensions:
		return s.handleImageDimensions(args)
	case toolImageToASCII:
		return s.handleImageToASCII(ctx, args)
	case toolASCIIPalettes:
		return s.handleASCIIPalettes()
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

type imageToASCIIArgs struct {
	Path       string `json:"path"`
	Width      *int   `json:"width"`
	Charset    string `json:"charset"`
	Invert     bool   `json:"invert"`
	Conversion string `json:"conversion"`
	Filter     string `json:"filter"`
}

func (s *Server) handleImageToASCII(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a imageToASCIIArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	width := asciiart.UnsetWidth
	if a.Width != nil {
		width = *a.Width
		if width != asciiart.UnsetWidth && width < 1 {
			return nil, fmt.Errorf("width must be positive or -1, got %d", width)
		}
	}

	cs := asciiart.Short
	if a.Charset != "" {
		var err error
		if cs, err = asciiart.ParseCharset(a.Charset); err != nil {
			return nil, err
		}
	}

	conv := asciiart.DefaultConversion
	if a.Conversion != "" {
		var err error
		if conv, err = asciiart.ParseConversion(a.Conversion); err != nil {
			return nil, err
		}
	}

	filter := imaging.DefaultFilter
	if a.Filter != "" {
		var err error
		if filter, err = imaging.ParseFilter(a.Filter); err != nil {
			return nil, err
		}
	}
	resizer, err := imaging.NewResizer(imaging.ResizerImaging, filter)
	if err != nil {
		return nil, err
	}

	converter := asciiart.New(
		asciiart.WithWidth(width),
		asciiart.WithCharset(cs),
		asciiart.WithInvert(a.Invert),
		asciiart.WithConversion(conv),
		asciiart.WithResizer(resizer),
		asciiart.WithDecoder(asciiart.DecoderFunc(s.cache.Load)),
	)
	return converter.ConvertFile(ctx, a.Path)
}

// PaletteInfo describes one built-in glyph ramp.
type PaletteInfo struct {
	Name   string `json:"name"`
	Glyphs string `json:"glyphs"`
	Size   int    `json:"size"`
}

// PalettesResult lists the built-in glyph ramps.
type PalettesResult struct {
	Palettes []PaletteInfo `json:"palettes"`
}

func (s *Server) handleASCIIPalettes() (interface{}, error) {
	res := &PalettesResult{Palettes: make([]PaletteInfo, 0, len(asciiart.Charsets))}
	for _, cs := range asciiart.Charsets {
		p := asciiart.GetPalette(cs, false)
		res.Palettes = append(res.Palettes, PaletteInfo{
			Name:   cs.String(),
			Glyphs: string(p),
			Size:   len(p),
		})
	}
	return res, nil
}
