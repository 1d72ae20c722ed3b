package imaging

import (
	"fmt"
	"image"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
)

// Filter names a resampling filter understood by both resizer backends.
type Filter string

const (
	FilterNearest    Filter = "nearest"
	FilterBox        Filter = "box"
	FilterLinear     Filter = "linear"
	FilterCatmullRom Filter = "catmullrom"
	FilterLanczos    Filter = "lanczos"
)

// DefaultFilter is a bicubic filter, the closest match to what most image
// editors use when shrinking.
const DefaultFilter = FilterCatmullRom

// Filters lists every accepted filter name in display order.
var Filters = []Filter{FilterNearest, FilterBox, FilterLinear, FilterCatmullRom, FilterLanczos}

func (f Filter) String() string {
	return string(f)
}

// ParseFilter resolves a case-insensitive filter name.
func ParseFilter(name string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Filters {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown resample filter: %q", name)
}

// ResizerKind selects the library that performs resampling.
type ResizerKind string

const (
	ResizerImaging ResizerKind = "imaging"
	ResizerBild    ResizerKind = "bild"
)

// ParseResizerKind resolves a case-insensitive resizer backend name.
func ParseResizerKind(name string) (ResizerKind, error) {
	switch k := ResizerKind(strings.ToLower(strings.TrimSpace(name))); k {
	case ResizerImaging, ResizerBild:
		return k, nil
	default:
		return "", fmt.Errorf("unknown resizer: %q", name)
	}
}

// Resizer scales an image to exact output dimensions.
//
// Implementations must return an image of exactly width x height pixels with
// bounds starting at (0,0). Width and height are always at least 1.
type Resizer interface {
	Resize(img image.Image, width, height int) image.Image
}

// NewResizer returns the resizer backend for kind using filter.
func NewResizer(kind ResizerKind, filter Filter) (Resizer, error) {
	switch kind {
	case ResizerImaging, "":
		f, ok := imagingFilters[filter]
		if !ok {
			return nil, fmt.Errorf("unknown resample filter: %q", filter)
		}
		return imagingResizer{filter: f}, nil
	case ResizerBild:
		f, ok := bildFilters[filter]
		if !ok {
			return nil, fmt.Errorf("unknown resample filter: %q", filter)
		}
		return bildResizer{filter: f}, nil
	default:
		return nil, fmt.Errorf("unknown resizer: %q", kind)
	}
}

var imagingFilters = map[Filter]imaging.ResampleFilter{
	FilterNearest:    imaging.NearestNeighbor,
	FilterBox:        imaging.Box,
	FilterLinear:     imaging.Linear,
	FilterCatmullRom: imaging.CatmullRom,
	FilterLanczos:    imaging.Lanczos,
}

var bildFilters = map[Filter]transform.ResampleFilter{
	FilterNearest:    transform.NearestNeighbor,
	FilterBox:        transform.Box,
	FilterLinear:     transform.Linear,
	FilterCatmullRom: transform.CatmullRom,
	FilterLanczos:    transform.Lanczos,
}

// imagingResizer resizes with github.com/disintegration/imaging.
type imagingResizer struct {
	filter imaging.ResampleFilter
}

func (r imagingResizer) Resize(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, width, height, r.filter)
}

// bildResizer resizes with github.com/anthonynsimon/bild/transform.
type bildResizer struct {
	filter transform.ResampleFilter
}

func (r bildResizer) Resize(img image.Image, width, height int) image.Image {
	return transform.Resize(img, width, height, r.filter)
}
