package server

import (
	"fmt"

	"github.com/ironsheep/img2ascii/internal/asciiart"
	"github.com/ironsheep/img2ascii/internal/imaging"
)

// Tool names.
const (
	toolImageDimensions = "image_dimensions"
	toolImageToASCII    = "image_to_ascii"
	toolASCIIPalettes   = "ascii_palettes"
)

// Tool is an MCP tool definition as returned by tools/list.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// ToolsListResult is the result of tools/list.
type ToolsListResult struct {
	Tools []Tool `json:"tools"`
}

// schema is a JSON Schema fragment.
type schema = map[string]interface{}

func objectSchema(properties schema, required ...string) schema {
	s := schema{"type": "object", "properties": properties}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func pathProperty() schema {
	return schema{"type": "string", "description": "Absolute path to the image file"}
}

// GetToolDefinitions returns the tools served by the MCP server.
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        toolImageDimensions,
			Description: "Get the width and height of an image file in pixels.",
			InputSchema: objectSchema(schema{"path": pathProperty()}, "path"),
		},
		{
			Name: toolImageToASCII,
			Description: "Render an image as ASCII art. Each output line is one row of glyphs; " +
				"the height is halved to compensate for tall character cells. Images are never upscaled.",
			InputSchema: objectSchema(schema{
				"path": pathProperty(),
				"width": schema{
					"type":        "integer",
					"description": "Output width in characters, -1 for the native image width",
					"default":     asciiart.UnsetWidth,
				},
				"charset": schema{
					"type":        "string",
					"enum":        names(asciiart.Charsets),
					"description": "Glyph palette",
					"default":     asciiart.Short.String(),
				},
				"invert": schema{
					"type":        "boolean",
					"description": "Reverse the palette for dark content on a light background",
					"default":     false,
				},
				"conversion": schema{
					"type":        "string",
					"enum":        names(asciiart.Conversions),
					"description": "Grayscale formula",
					"default":     asciiart.DefaultConversion.String(),
				},
				"filter": schema{
					"type":        "string",
					"enum":        names(imaging.Filters),
					"description": "Resampling filter",
					"default":     imaging.DefaultFilter.String(),
				},
			}, "path"),
		},
		{
			Name:        toolASCIIPalettes,
			Description: "List the built-in glyph palettes, darkest glyph first.",
			InputSchema: objectSchema(schema{}),
		},
	}
}

func names[T fmt.Stringer](values []T) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.String())
	}
	return out
}

func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return success(req.ID, ToolsListResult{Tools: GetToolDefinitions()})
}
