// Package resize defines the resampler contract shared by the
// interchangeable backends in its subpackages.
package resize

import (
	"github.com/srlehn/fbv/pixbuf"
)

// Resizer scales a source image to the given dimensions.
// Implementations must reject non-positive dimensions and must return
// an image of exactly w×h pixels.
type Resizer interface {
	Resize(src *pixbuf.Image, w, h int) (*pixbuf.Image, error)
}
