package asciiart

import "math"

// Divisor returns the grayscale step per glyph for a ramp of rampSize glyphs:
// ceil(255 / (rampSize-1)). Rounding up keeps round(255/divisor) inside the ramp.
func Divisor(rampSize int) int {
	if rampSize < 2 {
		return 256
	}
	return int(math.Ceil(255 / float64(rampSize-1)))
}

// GlyphIndex maps a grayscale value to a ramp index in [0, rampSize-1].
func GlyphIndex(gray uint8, divisor, rampSize int) int {
	idx := int(math.Round(float64(gray) / float64(divisor)))
	if idx > rampSize-1 {
		idx = rampSize - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// OutputSize returns the character grid dimensions for an image of
// nativeWidth x nativeHeight pixels.
//
// A targetWidth of UnsetWidth (or any value below 1), or one at least as wide
// as the image, keeps the native width. Otherwise the width shrinks to
// targetWidth and the height follows the aspect ratio. Either way the height is halved for glyph cells being about
// twice as tall as they are wide, and never drops below one row.
func OutputSize(nativeWidth, nativeHeight, targetWidth int) (width, height int) {
	if nativeWidth <= 0 || nativeHeight <= 0 {
		return 0, 0
	}

	if targetWidth < 1 || targetWidth >= nativeWidth {
		width = nativeWidth
		height = nativeHeight / 2
	} else {
		width = targetWidth
		height = (targetWidth * nativeHeight) / (nativeWidth * 2)
	}

	if height < 1 {
		height = 1
	}
	return width, height
}
