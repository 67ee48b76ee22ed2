package nfnt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/fbv/pixbuf"
	"github.com/srlehn/fbv/resize/nfnt"
)

func TestResizeDimensions(t *testing.T) {
	rsz := &nfnt.Resizer{}
	src, err := pixbuf.New(64, 48)
	require.NoError(t, err)
	dst, err := rsz.Resize(src, 21, 9)
	require.NoError(t, err)
	assert.Equal(t, 21, dst.Width)
	assert.Equal(t, 9, dst.Height)
	assert.Len(t, dst.Pix, 21*9*pixbuf.Channels)
}

func TestResizeBadInput(t *testing.T) {
	rsz := &nfnt.Resizer{}
	src, err := pixbuf.New(4, 4)
	require.NoError(t, err)
	_, err = rsz.Resize(src, 0, 4)
	assert.Error(t, err)
	_, err = rsz.Resize(nil, 4, 4)
	assert.Error(t, err)
}
