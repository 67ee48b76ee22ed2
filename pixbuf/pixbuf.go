// Package pixbuf holds decoded raster images as tightly packed
// 3-channel R,G,B byte buffers, the layout the framebuffer blitter
// consumes directly.
package pixbuf

import (
	"image"
	"os"

	"github.com/srlehn/fbv/internal/errors"
)

// Channels is the channel count of every Image: R, G, B.
const Channels = 3

var ErrDecode = errors.New(`cannot decode image`)

// Image is an owned, tightly packed 3-channel bitmap.
// len(Pix) == Height*Stride and Stride == Width*Channels always hold.
type Image struct {
	Width  int
	Height int
	Stride int
	Pix    []byte
}

// New allocates a zeroed w×h image.
func New(w, h int) (*Image, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf(`non-positive image dimensions %dx%d`, w, h)
	}
	stride := w * Channels
	return &Image{
		Width:  w,
		Height: h,
		Stride: stride,
		Pix:    make([]byte, h*stride),
	}, nil
}

// Load decodes the image file at path and normalizes it to 3 channels.
// Gray, paletted and alpha-carrying sources all come out as plain R,G,B.
// The set of understood formats is whatever has been registered with
// image.RegisterFormat; cmd/fbv pulls in the stdlib and x/image decoders.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	return FromImage(img), nil
}

// FromImage converts any image.Image to a packed 3-channel Image,
// dropping alpha. Returns nil for a nil or empty source.
func FromImage(img image.Image) *Image {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}
	m, err := New(w, h)
	if err != nil {
		return nil
	}
	for y := 0; y < h; y++ {
		row := y * m.Stride
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			i := row + x*Channels
			m.Pix[i] = byte(r >> 8)
			m.Pix[i+1] = byte(g >> 8)
			m.Pix[i+2] = byte(bl >> 8)
		}
	}
	return m
}

// ToRGBA converts the image to an *image.RGBA with opaque alpha.
func (m *Image) ToRGBA() *image.RGBA {
	if m == nil {
		return nil
	}
	r := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		src := y * m.Stride
		dst := y * r.Stride
		for x := 0; x < m.Width; x++ {
			si := src + x*Channels
			di := dst + x*4
			r.Pix[di] = m.Pix[si]
			r.Pix[di+1] = m.Pix[si+1]
			r.Pix[di+2] = m.Pix[si+2]
			r.Pix[di+3] = 0xff
		}
	}
	return r
}

// At returns the channel values of the pixel at (x, y).
func (m *Image) At(x, y int) (r, g, b byte) {
	i := y*m.Stride + x*Channels
	return m.Pix[i], m.Pix[i+1], m.Pix[i+2]
}
