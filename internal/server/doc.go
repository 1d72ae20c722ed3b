// Package server serves the ASCII-art converter as MCP (Model Context
// Protocol) tools, so an MCP client can look at an image as text.
//
// Requests arrive on the input stream as JSON-RPC 2.0, one document per line,
// and responses are written one per line to the output stream. The methods
// initialize, notifications/initialized, tools/list, tools/call and ping are
// understood; anything else is answered with -32601.
//
// Tools:
//
//	image_dimensions  {path}                      -> {width, height}
//	image_to_ascii    {path, width?, charset?,     -> {width, height, charset, text}
//	                   invert?, conversion?, filter?}
//	ascii_palettes    {}                          -> {palettes: [{name, glyphs, size}]}
//
// A tool result is returned as a single text content item holding the
// indented JSON of the result. Failing tools produce a -32000 error whose data
// is the Go error string; malformed tools/call params produce -32602 and unparseable
// lines -32700.
//
// Decoded images are cached by path for the lifetime of the Server, so
// rendering one image at several widths decodes it once.
//
//	srv := server.New()
//	err := srv.Run(ctx, os.Stdin, os.Stdout)
package server
