//go:build linux

// Package fb drives a Linux framebuffer device. All drawing goes into a
// CPU-side shadow buffer; Flush copies the shadow buffer over the
// memory-mapped device in one pass. Row addressing assumes a packed
// line length of width*bytes-per-pixel, so exotic drivers with padded
// scanlines are not handled.
package fb

import (
	"image/color"
	"log/slog"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/srlehn/fbv/internal/errors"
	"github.com/srlehn/fbv/internal/logx"
	"github.com/srlehn/fbv/pixbuf"
)

var (
	ErrOpen     = errors.New(`cannot open framebuffer device`)
	ErrGeometry = errors.New(`cannot query framebuffer geometry`)
	ErrMap      = errors.New(`cannot map framebuffer memory`)
)

const ioctlGetVarScreenInfo = 0x4600 // FBIOGET_VSCREENINFO, <linux/fb.h>

type bitField struct {
	Offset   uint32
	Length   uint32
	MSBRight uint32
}

// varScreenInfo is struct fb_var_screeninfo from <linux/fb.h>.
type varScreenInfo struct {
	XRes         uint32
	YRes         uint32
	XResVirtual  uint32
	YResVirtual  uint32
	XOffset      uint32
	YOffset      uint32
	BitsPerPixel uint32
	Grayscale    uint32
	Red          bitField
	Green        bitField
	Blue         bitField
	Transp       bitField
	NonStd       uint32
	Activate     uint32
	Height       uint32
	Width        uint32
	AccelFlags   uint32
	Pixclock     uint32
	LeftMargin   uint32
	RightMargin  uint32
	UpperMargin  uint32
	LowerMargin  uint32
	HSyncLen     uint32
	VSyncLen     uint32
	Sync         uint32
	VMode        uint32
	Rotate       uint32
	Colorspace   uint32
	_            [4]uint32
}

// Framebuffer is an open framebuffer device with its shadow buffer.
// Geometry is fixed for the lifetime of the value.
type Framebuffer struct {
	dev    *os.File
	width  int
	height int
	bpp    int // bytes per pixel
	mem    []byte
	shadow []byte
	mapped bool
	logger *slog.Logger
}

// Open opens the framebuffer device, queries its geometry, maps its
// memory and allocates a zeroed shadow buffer of the same size.
// Partially acquired resources are released on every failure path.
func Open(device string, logger *slog.Logger) (*Framebuffer, error) {
	dev, err := os.OpenFile(device, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, errors.Join(ErrOpen, err)
	}
	var vinfo varScreenInfo
	if err := ioctl(dev.Fd(), ioctlGetVarScreenInfo, unsafe.Pointer(&vinfo)); err != nil {
		_ = dev.Close()
		return nil, errors.Join(ErrGeometry, err)
	}
	fb := &Framebuffer{
		dev:    dev,
		width:  int(vinfo.XRes),
		height: int(vinfo.YRes),
		bpp:    int(vinfo.BitsPerPixel) / 8,
		logger: logger,
	}
	screenSize := fb.width * fb.height * fb.bpp
	fb.mem, err = unix.Mmap(int(dev.Fd()), 0, screenSize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = dev.Close()
		return nil, errors.Join(ErrMap, err)
	}
	fb.mapped = true
	fb.shadow = make([]byte, screenSize)
	logx.Info(`framebuffer opened`, logger,
		`device`, device, `width`, fb.width, `height`, fb.height, `bytes-per-pixel`, fb.bpp)
	return fb, nil
}

// Size returns the device resolution in pixels.
func (fb *Framebuffer) Size() (w, h int) {
	if fb == nil {
		return 0, 0
	}
	return fb.width, fb.height
}

// BytesPerPixel returns the device pixel depth in bytes.
func (fb *Framebuffer) BytesPerPixel() int {
	if fb == nil {
		return 0
	}
	return fb.bpp
}

// Clear fills the shadow buffer with c. The device stores channels in
// B,G,R order; on 4-byte devices the 4th byte is left untouched.
func (fb *Framebuffer) Clear(c color.Color) {
	if fb == nil || fb.shadow == nil || c == nil {
		return
	}
	if fb.bpp < pixbuf.Channels {
		logx.Warn(`unsupported pixel depth`, fb.logger, `bytes-per-pixel`, fb.bpp)
		return
	}
	r, g, b, _ := c.RGBA()
	for i := 0; i < len(fb.shadow); i += fb.bpp {
		fb.shadow[i] = byte(b >> 8)
		fb.shadow[i+1] = byte(g >> 8)
		fb.shadow[i+2] = byte(r >> 8)
	}
}

// Draw blits img into the shadow buffer with its top-left corner at
// (xOffset, yOffset), clipping against the device bounds and reversing
// the channel order to the device's B,G,R layout. Fully off-screen
// placements are a no-op.
func (fb *Framebuffer) Draw(xOffset, yOffset int, img *pixbuf.Image) {
	if fb == nil || fb.shadow == nil || img == nil {
		return
	}
	x0, y0 := xOffset, yOffset
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	x1, y1 := xOffset+img.Width, yOffset+img.Height
	if x1 > fb.width {
		x1 = fb.width
	}
	if y1 > fb.height {
		y1 = fb.height
	}
	if x0 >= x1 || y0 >= y1 {
		return
	}
	if fb.bpp < pixbuf.Channels {
		logx.Warn(`unsupported pixel depth`, fb.logger, `bytes-per-pixel`, fb.bpp)
		return
	}
	for y := y0; y < y1; y++ {
		fbRow := y * fb.width * fb.bpp
		imgRow := (y - yOffset) * img.Stride
		for x := x0; x < x1; x++ {
			fi := fbRow + x*fb.bpp
			ii := imgRow + (x-xOffset)*pixbuf.Channels
			for c := 0; c < pixbuf.Channels; c++ {
				fb.shadow[fi+c] = img.Pix[ii+pixbuf.Channels-1-c]
			}
		}
	}
}

// Flush copies the shadow buffer over the device mapping. This is the
// only point at which drawn pixels become visible.
func (fb *Framebuffer) Flush() error {
	if fb == nil || fb.shadow == nil || fb.mem == nil {
		return errors.New(`flush on closed framebuffer`)
	}
	copy(fb.mem, fb.shadow)
	return nil
}

// Close unmaps the device memory, releases the shadow buffer and closes
// the device. Safe to call on a nil or already closed Framebuffer.
func (fb *Framebuffer) Close() error {
	if fb == nil {
		return nil
	}
	var errMunmap, errClose error
	if fb.mapped && fb.mem != nil {
		errMunmap = unix.Munmap(fb.mem)
	}
	if fb.dev != nil {
		errClose = fb.dev.Close()
	}
	fb.mem = nil
	fb.shadow = nil
	fb.mapped = false
	fb.dev = nil
	return errors.Join(errMunmap, errClose)
}

func ioctl(fd uintptr, cmd uintptr, data unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, cmd, uintptr(data))
	if errno != 0 {
		return errors.New(os.NewSyscallError(`IOCTL`, errno))
	}
	return nil
}
