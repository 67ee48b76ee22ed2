// Package viewer runs the interactive display loop: fit the image to
// the screen, then rescale it on keystrokes until 'q'.
package viewer

import (
	"image/color"
	"log/slog"
	"math"

	"github.com/srlehn/fbv/internal/errors"
	"github.com/srlehn/fbv/internal/logx"
	"github.com/srlehn/fbv/pixbuf"
	"github.com/srlehn/fbv/resize"
)

const (
	minScale    = 0.1
	maxScale    = 5.0
	zoomStep    = 1.2
	fitFraction = 0.8
)

// Surface is the drawing target, implemented by *fb.Framebuffer.
type Surface interface {
	Size() (w, h int)
	Clear(c color.Color)
	Draw(xOffset, yOffset int, img *pixbuf.Image)
	Flush() error
}

// KeyReader delivers one keystroke per call, blocking until one
// arrives. Implemented by *tty.TTY.
type KeyReader interface {
	ReadRune() (r rune, size int, err error)
}

// Viewer owns the currently displayed image and the scale state.
type Viewer struct {
	surface   Surface
	resizer   resize.Resizer
	src       *pixbuf.Image
	resized   *pixbuf.Image
	baseScale float64
	scale     float64
	logger    *slog.Logger
}

// New computes the best-fit scale for src on surface and produces the
// first displayed image. A failed initial resize is fatal.
func New(surface Surface, resizer resize.Resizer, src *pixbuf.Image, logger *slog.Logger) (*Viewer, error) {
	if err := errors.NilParam(surface, resizer, src); err != nil {
		return nil, err
	}
	fbW, fbH := surface.Size()
	base := fitScale(fbW, fbH, src.Width, src.Height)
	w, h := scaledDims(src, base)
	resized, err := resizer.Resize(src, w, h)
	if err != nil {
		return nil, err
	}
	return &Viewer{
		surface:   surface,
		resizer:   resizer,
		src:       src,
		resized:   resized,
		baseScale: base,
		scale:     base,
		logger:    logger,
	}, nil
}

// Scale returns the current display scale.
func (v *Viewer) Scale() float64 { return v.scale }

// BaseScale returns the initial best-fit scale that 'r' resets to.
func (v *Viewer) BaseScale() float64 { return v.baseScale }

// Run renders frames and reads keystrokes from input until 'q' or a
// read failure. Keystrokes that leave the clamped scale unchanged do
// not trigger any resampling or redraw work; a failed rescale keeps
// the previous frame's image on screen and the loop running.
func (v *Viewer) Run(input KeyReader) error {
	if v == nil {
		return errors.New(`nil viewer`)
	}
	if err := errors.NilParam(input); err != nil {
		return err
	}
	for {
		if err := v.render(); err != nil {
			return err
		}
		if quit, err := v.await(input); quit || err != nil {
			return err
		}
	}
}

// await blocks on input until a keystroke requires a redraw or quits.
func (v *Viewer) await(input KeyReader) (quit bool, _ error) {
	for {
		ch, _, err := input.ReadRune()
		if err != nil {
			return true, errors.New(err)
		}
		scale, quit := applyKey(ch, v.scale, v.baseScale)
		if quit {
			return true, nil
		}
		if scale == v.scale {
			continue
		}
		v.scale = scale
		w, h := scaledDims(v.src, scale)
		resized, err := v.resizer.Resize(v.src, w, h)
		if logx.IsErr(err, v.logger, slog.LevelDebug, `scale`, scale) {
			continue
		}
		v.resized = resized
		return false, nil
	}
}

func (v *Viewer) render() error {
	fbW, fbH := v.surface.Size()
	v.surface.Clear(color.Black)
	v.surface.Draw((fbW-v.resized.Width)/2, (fbH-v.resized.Height)/2, v.resized)
	return v.surface.Flush()
}

// applyKey maps a keystroke to the next clamped scale.
// 'q' quits; unrecognized keys leave the scale as is.
func applyKey(ch rune, scale, base float64) (_ float64, quit bool) {
	switch ch {
	case 'q':
		return scale, true
	case 'r':
		scale = base
	case '+', '=':
		scale *= zoomStep
	case '-':
		scale /= zoomStep
	}
	return clampScale(scale), false
}

func clampScale(scale float64) float64 {
	return math.Min(math.Max(scale, minScale), maxScale)
}

// fitScale is the scale at which the image fills 80% of the smaller
// screen dimension relative to the image.
func fitScale(fbW, fbH, imgW, imgH int) float64 {
	scaleW := float64(fbW) / float64(imgW)
	scaleH := float64(fbH) / float64(imgH)
	return math.Min(scaleW, scaleH) * fitFraction
}

func scaledDims(img *pixbuf.Image, scale float64) (w, h int) {
	return int(float64(img.Width) * scale), int(float64(img.Height) * scale)
}
