// Package nfnt provides a resize backend using "github.com/nfnt/resize".
package nfnt

import (
	resizeNfnt "github.com/nfnt/resize"

	"github.com/srlehn/fbv/internal/errors"
	"github.com/srlehn/fbv/pixbuf"
	"github.com/srlehn/fbv/resize"
)

// Resizer uses "github.com/nfnt/resize"
type Resizer struct{}

var _ resize.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(src *pixbuf.Image, w, h int) (*pixbuf.Image, error) {
	if err := errors.NilParam(src); err != nil {
		return nil, err
	}
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf(`non-positive image dimensions %dx%d`, w, h)
	}
	m := resizeNfnt.Resize(uint(w), uint(h), src.ToRGBA(), resizeNfnt.Lanczos3)
	dst := pixbuf.FromImage(m)
	if dst == nil {
		return nil, errors.New(`nil resized image`)
	}
	return dst, nil
}
