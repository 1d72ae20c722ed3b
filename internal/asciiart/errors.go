package asciiart

import (
	"errors"
	"fmt"
)

// ErrEmptyImage is returned for images without a single pixel.
var ErrEmptyImage = errors.New("image has no pixels")

// ImageLoadError reports that the source image could not be opened or decoded.
// Nothing has been rendered or written when it is returned.
type ImageLoadError struct {
	Path string
	Err  error
}

func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("failed to load image %s: %v", e.Path, e.Err)
}

func (e *ImageLoadError) Unwrap() error {
	return e.Err
}
