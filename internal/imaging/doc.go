// Package imaging is the image backend used by the ASCII converter.
//
// It wraps the third-party imaging libraries behind three small operations:
// decoding a file into an image.Image, resizing an image to exact output
// dimensions, and reading a pixel as 8-bit RGB. Everything above this package
// works with the standard image.Image interface, so the grayscale and glyph
// logic can be tested with synthetic in-memory images.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based and relative to the
// image bounds:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Supported Formats
//
// Decoding goes through github.com/disintegration/imaging, which understands
// PNG, JPEG, GIF, BMP and TIFF. WebP is registered from golang.org/x/image.
// JPEG files carrying an EXIF orientation tag are rotated on load.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Decoded images are treated
// as read-only by every caller, so they can be shared between goroutines.
//
// # Resizing
//
// Two resizer backends are available, selected by ResizerKind:
//   - "imaging": github.com/disintegration/imaging (default)
//   - "bild": github.com/anthonynsimon/bild/transform
//
// Both return images whose bounds start at (0,0) and use the same Filter
// names, so switching backends never changes output dimensions.
package imaging
