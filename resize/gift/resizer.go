// Package gift provides a resize backend using "github.com/disintegration/gift".
package gift

import (
	"image"

	giftImg "github.com/disintegration/gift"

	"github.com/srlehn/fbv/internal/errors"
	"github.com/srlehn/fbv/pixbuf"
	"github.com/srlehn/fbv/resize"
)

// Resizer uses "github.com/disintegration/gift"
type Resizer struct{}

var _ resize.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(src *pixbuf.Image, w, h int) (*pixbuf.Image, error) {
	if err := errors.NilParam(src); err != nil {
		return nil, err
	}
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf(`non-positive image dimensions %dx%d`, w, h)
	}
	m := image.NewNRGBA(image.Rectangle{Max: image.Point{X: w, Y: h}})
	giftImg.Resize(w, h, giftImg.LanczosResampling).Draw(m, src.ToRGBA(), &giftImg.Options{Parallelization: true})
	dst := pixbuf.FromImage(m)
	if dst == nil {
		return nil, errors.New(`nil resized image`)
	}
	return dst, nil
}
