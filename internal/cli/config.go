package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ironsheep/img2ascii/internal/asciiart"
	"github.com/ironsheep/img2ascii/internal/imaging"
)

// OutputExt replaces the source extension when no output path is given.
const OutputExt = ".txt"

// Config is the fully resolved configuration of one conversion run.
type Config struct {
	SourcePath string
	OutputPath string
	Width      int
	Charset    asciiart.Charset
	Invert     bool
	Conversion asciiart.Conversion
	Filter     imaging.Filter
	Resizer    imaging.ResizerKind
}

// flagValues holds the raw flag values as parsed by cobra.
type flagValues struct {
	output     string
	width      int
	blocky     bool
	short      bool
	long       bool
	invert     bool
	conversion string
	filter     string
	resizer    string
	verbose    bool
	quiet      bool
}

// OutputPathFor derives the default output path from the source image path:
// the extension is replaced by ".txt", or ".txt" is appended when there is none.
func OutputPathFor(source string) string {
	return strings.TrimSuffix(source, filepath.Ext(source)) + OutputExt
}

// resolveConfig validates the parsed flags and positional arguments.
func resolveConfig(args []string, f flagValues) (Config, error) {
	if len(args) != 1 || args[0] == "" {
		return Config{}, usageErrorf("exactly one image path is required")
	}

	cfg := Config{
		SourcePath: args[0],
		OutputPath: f.output,
		Width:      f.width,
		Invert:     f.invert,
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = OutputPathFor(cfg.SourcePath)
	}

	if cfg.Width != asciiart.UnsetWidth && cfg.Width < 1 {
		return Config{}, usageErrorf("width must be a positive number of characters or -1, got %d", cfg.Width)
	}

	selected := 0
	cfg.Charset = asciiart.Short
	for _, choice := range []struct {
		set bool
		cs  asciiart.Charset
	}{
		{f.blocky, asciiart.Blocky},
		{f.long, asciiart.Long},
		{f.short, asciiart.Short},
	} {
		if choice.set {
			selected++
			cfg.Charset = choice.cs
		}
	}
	if selected > 1 {
		return Config{}, usageErrorf("only one of --blocky, --short and --long may be set")
	}

	var err error
	if cfg.Conversion, err = asciiart.ParseConversion(f.conversion); err != nil {
		return Config{}, &UsageError{Err: err}
	}
	if cfg.Filter, err = imaging.ParseFilter(f.filter); err != nil {
		return Config{}, &UsageError{Err: err}
	}
	if cfg.Resizer, err = imaging.ParseResizerKind(f.resizer); err != nil {
		return Config{}, &UsageError{Err: err}
	}

	return cfg, nil
}

func (c Config) String() string {
	return fmt.Sprintf("source=%s output=%s width=%d charset=%s invert=%t conversion=%s filter=%s resizer=%s",
		c.SourcePath, c.OutputPath, c.Width, c.Charset, c.Invert, c.Conversion, c.Filter, c.Resizer)
}
