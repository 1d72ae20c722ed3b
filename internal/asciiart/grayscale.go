package asciiart

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Conversion selects the formula that reduces an RGB triple to one intensity.
type Conversion int

const (
	// Average is round((r+g+b)/3).
	Average Conversion = iota
	// Lightness is round((max(r,g,b)+min(r,g,b))/2).
	Lightness
	// Luma1 is round(0.21r + 0.72g + 0.07b).
	Luma1
	// Luma2 is round(sqrt(0.299r² + 0.587g² + 0.114b²)).
	Luma2
	// LStar is the CIE L*a*b* lightness scaled to 0-255.
	LStar
)

// DefaultConversion gives the best looking results on photographs.
const DefaultConversion = Luma1

var conversionNames = map[Conversion]string{
	Average:   "average",
	Lightness: "lightness",
	Luma1:     "luma1",
	Luma2:     "luma2",
	LStar:     "lstar",
}

// Conversions lists every conversion in display order.
var Conversions = []Conversion{Average, Lightness, Luma1, Luma2, LStar}

func (c Conversion) String() string {
	if name, ok := conversionNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Conversion(%d)", int(c))
}

// ParseConversion resolves a case-insensitive conversion name.
func ParseConversion(name string) (Conversion, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for c, cn := range conversionNames {
		if cn == n {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown conversion: %q", name)
}

// ToGray converts an 8-bit RGB triple to a grayscale value in [0, 255].
//
// Rounding is half away from zero. Results above 255 are clipped. An unknown
// conversion yields 0.
func ToGray(r, g, b uint8, c Conversion) uint8 {
	rf, gf, bf := float64(r), float64(g), float64(b)

	var v float64
	switch c {
	case Average:
		v = (rf + gf + bf) / 3
	case Lightness:
		v = (math.Max(rf, math.Max(gf, bf)) + math.Min(rf, math.Min(gf, bf))) / 2
	case Luma1:
		v = 0.21*rf + 0.72*gf + 0.07*bf
	case Luma2:
		v = math.Sqrt(0.299*rf*rf + 0.587*gf*gf + 0.114*bf*bf)
	case LStar:
		l, _, _ := colorful.Color{R: rf / 255, G: gf / 255, B: bf / 255}.Lab()
		v = l * 255
	default:
		return 0
	}

	v = math.Round(v)
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}
