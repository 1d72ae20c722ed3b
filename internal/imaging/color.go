package imaging

import (
	"image"
	"image/color"
)

// RGBColor represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// RGB8At reads the pixel at (x, y) as 8-bit RGB.
//
// Coordinates are 0-based offsets from img.Bounds().Min, so images returned by
// either resizer and images with a shifted origin are addressed the same way.
// The caller is responsible for staying inside the bounds.
//
// # Color Conversion
//
// Every color model is converted through color.NRGBAModel and the alpha channel
// is dropped. Translucent pixels therefore keep their straight (non-premultiplied)
// color rather than being blended towards black.
func RGB8At(img image.Image, x, y int) RGBColor {
	min := img.Bounds().Min
	if nrgba, ok := img.(*image.NRGBA); ok {
		i := nrgba.PixOffset(x+min.X, y+min.Y)
		p := nrgba.Pix[i : i+3 : i+3]
		return RGBColor{R: p[0], G: p[1], B: p[2]}
	}

	c := color.NRGBAModel.Convert(img.At(x+min.X, y+min.Y)).(color.NRGBA)
	return RGBColor{R: c.R, G: c.G, B: c.B}
}
