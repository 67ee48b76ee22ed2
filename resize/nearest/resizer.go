// Package nearest implements nearest-neighbor resampling on packed
// 3-channel buffers. Source indices are truncated, not rounded, which
// biases sampling half a pixel toward the top left on upscale; this
// matches the blit pipeline's reference behavior and keeps uniform
// areas exactly uniform.
package nearest

import (
	"github.com/srlehn/fbv/internal/errors"
	"github.com/srlehn/fbv/pixbuf"
	"github.com/srlehn/fbv/resize"
)

// Resizer is the default, dependency-free backend.
type Resizer struct{}

var _ resize.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(src *pixbuf.Image, w, h int) (*pixbuf.Image, error) {
	if err := errors.NilParam(src); err != nil {
		return nil, err
	}
	dst, err := pixbuf.New(w, h)
	if err != nil {
		return nil, err
	}
	xRatio := float64(src.Width) / float64(w)
	yRatio := float64(src.Height) / float64(h)
	for y := 0; y < h; y++ {
		srcRow := int(float64(y)*yRatio) * src.Stride
		dstRow := y * dst.Stride
		for x := 0; x < w; x++ {
			si := srcRow + int(float64(x)*xRatio)*pixbuf.Channels
			di := dstRow + x*pixbuf.Channels
			dst.Pix[di] = src.Pix[si]
			dst.Pix[di+1] = src.Pix[si+1]
			dst.Pix[di+2] = src.Pix[si+2]
		}
	}
	return dst, nil
}
