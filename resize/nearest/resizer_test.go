package nearest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/fbv/pixbuf"
	"github.com/srlehn/fbv/resize/nearest"
)

func solidImage(t *testing.T, w, h int, r, g, b byte) *pixbuf.Image {
	t.Helper()
	img, err := pixbuf.New(w, h)
	require.NoError(t, err)
	for i := 0; i < len(img.Pix); i += pixbuf.Channels {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2] = r, g, b
	}
	return img
}

func TestResizeDimensions(t *testing.T) {
	rsz := &nearest.Resizer{}
	src := solidImage(t, 17, 11, 1, 2, 3)
	for _, d := range []struct{ w, h int }{{1, 1}, {17, 11}, {5, 31}, {640, 320}} {
		dst, err := rsz.Resize(src, d.w, d.h)
		require.NoError(t, err)
		assert.Equal(t, d.w, dst.Width)
		assert.Equal(t, d.h, dst.Height)
		assert.Equal(t, d.w*pixbuf.Channels, dst.Stride)
		assert.Len(t, dst.Pix, d.w*d.h*pixbuf.Channels)
	}
}

func TestResizeDeterministic(t *testing.T) {
	rsz := &nearest.Resizer{}
	src, err := pixbuf.New(13, 7)
	require.NoError(t, err)
	for i := range src.Pix {
		src.Pix[i] = byte(i * 31)
	}
	a, err := rsz.Resize(src, 29, 3)
	require.NoError(t, err)
	b, err := rsz.Resize(src, 29, 3)
	require.NoError(t, err)
	assert.Equal(t, a.Pix, b.Pix)
}

func TestResizeUniformStaysUniform(t *testing.T) {
	rsz := &nearest.Resizer{}
	src := solidImage(t, 100, 60, 10, 200, 30)
	dst, err := rsz.Resize(src, 33, 17)
	require.NoError(t, err)
	for y := 0; y < dst.Height; y++ {
		for x := 0; x < dst.Width; x++ {
			r, g, b := dst.At(x, y)
			require.Equal(t, []byte{10, 200, 30}, []byte{r, g, b})
		}
	}
}

// Source indices truncate, so upscaling biases toward the top left:
// a 2x2 image blown up to 3x3 repeats the first row and column.
func TestResizeTruncationBias(t *testing.T) {
	rsz := &nearest.Resizer{}
	src, err := pixbuf.New(2, 2)
	require.NoError(t, err)
	// red green / blue white
	copy(src.Pix, []byte{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 255, 255, 255,
	})
	dst, err := rsz.Resize(src, 3, 3)
	require.NoError(t, err)
	want := [3][3][3]byte{
		{{255, 0, 0}, {255, 0, 0}, {0, 255, 0}},
		{{255, 0, 0}, {255, 0, 0}, {0, 255, 0}},
		{{0, 0, 255}, {0, 0, 255}, {255, 255, 255}},
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			r, g, b := dst.At(x, y)
			assert.Equal(t, want[y][x], [3]byte{r, g, b}, "pixel (%d,%d)", x, y)
		}
	}
}

func TestResizeBadInput(t *testing.T) {
	rsz := &nearest.Resizer{}
	src := solidImage(t, 4, 4, 0, 0, 0)
	_, err := rsz.Resize(src, 0, 4)
	assert.Error(t, err)
	_, err = rsz.Resize(src, 4, -1)
	assert.Error(t, err)
	_, err = rsz.Resize(nil, 4, 4)
	assert.Error(t, err)
}
