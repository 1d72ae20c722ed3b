// Package asciiart turns images into grids of text glyphs.
//
// The conversion is a single forward pass:
//
//  1. Decode: the image file is decoded by the backend (see internal/imaging).
//  2. Size: OutputSize picks the character grid dimensions. Glyph cells are
//     roughly twice as tall as they are wide, so the grid is half as many rows
//     as the source has pixel rows (cell-aspect compensation). The image is
//     never upscaled.
//  3. Resize: the image is resampled to exactly the grid dimensions.
//  4. Quantize: each pixel becomes a grayscale value (ToGray) and then a glyph
//     index into the palette ramp (GlyphIndex).
//  5. Assemble: each row of glyphs is terminated by a newline.
//
// # Palettes
//
// A palette is an ordered ramp of glyphs with index 0 as the darkest shade.
// Three ramps are built in: Short (10 glyphs), Long (65 glyphs) and Blocky
// (5 shade blocks). Inverting a palette reverses its ramp, which suits dark
// text on a light background.
//
// # Determinism
//
// Rows may be rendered on several goroutines, but each row is written to its
// own slot, so the resulting text is byte-identical across runs and
// parallelism settings.
package asciiart
