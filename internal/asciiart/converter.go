package asciiart

import (
	"context"
	"errors"
	"fmt"
	"image"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/img2ascii/internal/ctxlog"
	"github.com/ironsheep/img2ascii/internal/imaging"
)

// UnsetWidth asks for the native image width.
const UnsetWidth = -1

// Decoder loads an image file. imaging.Open and (*imaging.ImageCache).Load both
// satisfy it through DecoderFunc.
type Decoder interface {
	Open(path string) (image.Image, error)
}

// DecoderFunc adapts a plain function to the Decoder interface.
type DecoderFunc func(path string) (image.Image, error)

func (f DecoderFunc) Open(path string) (image.Image, error) {
	return f(path)
}

// Reporter receives human-readable progress messages. The console package
// provides the implementation used by the CLI.
type Reporter interface {
	Infof(format string, args ...any)
}

type nopReporter struct{}

func (nopReporter) Infof(string, ...any) {}

// Result is a rendered character grid.
type Result struct {
	// Width is the number of glyphs per line.
	Width int `json:"width"`

	// Height is the number of lines.
	Height int `json:"height"`

	// Charset is the palette the text was rendered with.
	Charset string `json:"charset"`

	// Text holds Height lines of Width glyphs, each terminated by "\n".
	Text string `json:"text"`
}

// Converter renders images as text. Configure it with New and Option values;
// a Converter is immutable afterwards and safe for concurrent use.
type Converter struct {
	width       int
	charset     Charset
	invert      bool
	conversion  Conversion
	decoder     Decoder
	resizer     imaging.Resizer
	reporter    Reporter
	parallelism int
}

// Option configures a Converter.
type Option func(*Converter)

// WithWidth sets the target grid width in glyphs. UnsetWidth keeps the native
// image width.
func WithWidth(width int) Option {
	return func(c *Converter) { c.width = width }
}

// WithCharset selects the glyph ramp.
func WithCharset(cs Charset) Option {
	return func(c *Converter) { c.charset = cs }
}

// WithInvert reverses the glyph ramp.
func WithInvert(invert bool) Option {
	return func(c *Converter) { c.invert = invert }
}

// WithConversion selects the grayscale formula.
func WithConversion(conv Conversion) Option {
	return func(c *Converter) { c.conversion = conv }
}

// WithDecoder replaces the image decoder used by ConvertFile.
func WithDecoder(d Decoder) Option {
	return func(c *Converter) { c.decoder = d }
}

// WithResizer replaces the resizer backend.
func WithResizer(r imaging.Resizer) Option {
	return func(c *Converter) { c.resizer = r }
}

// WithReporter sets the receiver of progress messages.
func WithReporter(r Reporter) Option {
	return func(c *Converter) { c.reporter = r }
}

// WithParallelism bounds how many rows are rendered at once. Values below 1
// render sequentially.
func WithParallelism(n int) Option {
	return func(c *Converter) { c.parallelism = n }
}

// New returns a Converter with the defaults (native width, Short palette,
// Luma1, imaging decoder and CatmullRom resizer, one worker per CPU) and then
// applies opts.
func New(opts ...Option) *Converter {
	resizer, _ := imaging.NewResizer(imaging.ResizerImaging, imaging.DefaultFilter)
	c := &Converter{
		width:       UnsetWidth,
		charset:     Short,
		conversion:  DefaultConversion,
		decoder:     DecoderFunc(imaging.Open),
		resizer:     resizer,
		reporter:    nopReporter{},
		parallelism: runtime.GOMAXPROCS(0),
	}

	for _, o := range opts {
		o(c)
	}

	return c
}

// ConvertFile decodes the image at path and renders it.
//
// Decoding failures, and images without pixels, are returned as *ImageLoadError.
func (c *Converter) ConvertFile(ctx context.Context, path string) (*Result, error) {
	log := ctxlog.FromContext(ctx)

	img, err := c.decoder.Open(path)
	if err != nil {
		return nil, &ImageLoadError{Path: path, Err: err}
	}
	c.reporter.Infof("Image loaded successfully.")
	log.Debug("decoded image", "path", path, "bounds", img.Bounds().String(), "model", fmt.Sprintf("%T", img))

	if !isRGB(img) {
		c.reporter.Infof("Image mode is not RGB! Converting to RGB...")
	}

	res, err := c.Convert(ctx, img)
	if errors.Is(err, ErrEmptyImage) {
		return nil, &ImageLoadError{Path: path, Err: err}
	}
	return res, err
}

// Convert renders an already decoded image.
func (c *Converter) Convert(ctx context.Context, img image.Image) (*Result, error) {
	log := ctxlog.FromContext(ctx)

	bounds := img.Bounds()
	width, height := OutputSize(bounds.Dx(), bounds.Dy(), c.width)
	if width == 0 || height == 0 {
		return nil, ErrEmptyImage
	}

	palette := GetPalette(c.charset, c.invert)
	if len(palette) < 2 {
		return nil, fmt.Errorf("unknown charset: %v", c.charset)
	}

	resized := c.resizer.Resize(img, width, height)
	c.reporter.Infof("The output will be %d characters wide by %d characters high.", width, height)

	c.reporter.Infof("Iterating over the pixels...")
	start := time.Now()
	rows, err := c.renderRows(ctx, resized, width, height, palette)
	if err != nil {
		return nil, err
	}
	c.reporter.Infof("Done.")
	log.Debug("rendered grid",
		"width", width,
		"height", height,
		"charset", c.charset.String(),
		"conversion", c.conversion.String(),
		"elapsed", time.Since(start))

	var sb strings.Builder
	sb.Grow(height * (len(rows[0]) + 1))
	for _, row := range rows {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}

	return &Result{
		Width:   width,
		Height:  height,
		Charset: c.charset.String(),
		Text:    sb.String(),
	}, nil
}

// renderRows quantizes every pixel of img, one string per row. Each goroutine
// writes only its own row slot.
func (c *Converter) renderRows(ctx context.Context, img image.Image, width, height int, palette []rune) ([]string, error) {
	rampSize := len(palette)
	divisor := Divisor(rampSize)
	rows := make([]string, height)

	g, gctx := errgroup.WithContext(ctx)
	if c.parallelism > 0 {
		g.SetLimit(c.parallelism)
	} else {
		g.SetLimit(1)
	}

	for y := 0; y < height; y++ {
		y := y
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var sb strings.Builder
			sb.Grow(width)
			for x := 0; x < width; x++ {
				px := imaging.RGB8At(img, x, y)
				gray := ToGray(px.R, px.G, px.B, c.conversion)
				sb.WriteRune(palette[GlyphIndex(gray, divisor, rampSize)])
			}
			rows[y] = sb.String()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to render image: %w", err)
	}
	return rows, nil
}

// isRGB reports whether img is stored in a true-color model. Other models
// (gray, paletted, CMYK) are converted pixel by pixel while rendering.
func isRGB(img image.Image) bool {
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64, *image.YCbCr, *image.NYCbCrA:
		return true
	default:
		return false
	}
}
