package asciiart

import (
	"fmt"
	"strings"
)

// Charset names one of the built-in glyph ramps.
type Charset int

const (
	// Short is the 10-glyph ramp and the default.
	Short Charset = iota
	// Long is the 65-glyph ramp.
	Long
	// Blocky is the 5-glyph ramp of Unicode shade blocks.
	Blocky
)

// Glyph ramps ordered from darkest (index 0) to brightest.
const (
	shortRamp  = " .:-=+*%#@"
	longRamp   = " `^\",:;!il~+_-?][}{1)(|\\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$"
	blockyRamp = " ░▒▓█"
)

var charsetNames = map[Charset]string{
	Short:  "short",
	Long:   "long",
	Blocky: "blocky",
}

var charsetRamps = map[Charset]string{
	Short:  shortRamp,
	Long:   longRamp,
	Blocky: blockyRamp,
}

// Charsets lists every charset in display order.
var Charsets = []Charset{Short, Long, Blocky}

func (c Charset) String() string {
	if name, ok := charsetNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Charset(%d)", int(c))
}

// ParseCharset resolves a case-insensitive charset name.
func ParseCharset(name string) (Charset, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for c, cn := range charsetNames {
		if cn == n {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown charset: %q", name)
}

// GetPalette returns the glyph ramp for c, reversed when invert is set.
//
// The returned slice is a fresh copy owned by the caller. An unknown charset
// yields an empty palette.
func GetPalette(c Charset, invert bool) []rune {
	p := []rune(charsetRamps[c])
	if invert {
		for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
			p[i], p[j] = p[j], p[i]
		}
	}
	return p
}
