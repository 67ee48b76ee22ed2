//go:build linux

package main

import (
	"fmt"
	"log/slog"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"

	"github.com/spf13/cobra"

	"github.com/srlehn/fbv/fb"
	"github.com/srlehn/fbv/internal/errors"
	"github.com/srlehn/fbv/internal/logx"
	"github.com/srlehn/fbv/pixbuf"
	"github.com/srlehn/fbv/resize"
	rszgift "github.com/srlehn/fbv/resize/gift"
	rsznearest "github.com/srlehn/fbv/resize/nearest"
	rsznfnt "github.com/srlehn/fbv/resize/nfnt"
	"github.com/srlehn/fbv/tty"
	"github.com/srlehn/fbv/viewer"
)

var rootCmd = &cobra.Command{
	Use:   `fbv <framebuffer-device> <image-path>`,
	Short: `fbv displays an image on a Linux framebuffer`,
	Long: `fbv displays an image on a Linux framebuffer.

Keys:
  +, =   zoom in
  -      zoom out
  r      reset zoom
  q      quit`,
	Example: `  fbv /dev/fb0 images/test2.jpg`,
	Args:    cobra.ExactArgs(2),
	PreRun: func(cmd *cobra.Command, args []string) {
		// args are valid at this point, don't dump the usage on runtime errors
		cmd.SilenceUsage = true
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return view(args[0], args[1])
	},
}

var (
	debug       bool
	resizerName string
	ttyDev      string
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().BoolVar(&debug, `debug`, false, `debug errors`)
	rootCmd.Flags().StringVar(&resizerName, `resizer`, `nearest`, `resize backend (nearest, nfnt, gift)`)
	rootCmd.Flags().StringVar(&ttyDev, `tty`, `/dev/tty`, `terminal device for keyboard input`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if stackFramer, ok := err.(interface{ ErrorStack() string }); debug && ok {
			fmt.Fprintln(os.Stderr, stackFramer.ErrorStack())
		}
		os.Exit(1)
	}
}

func view(device, imagePath string) error {
	logger := newLogger()
	rsz, err := newResizer(resizerName)
	if err != nil {
		return err
	}

	fbDev, err := fb.Open(device, logger)
	if err != nil {
		return err
	}
	defer func() { logx.IsErr(fbDev.Close(), logger, slog.LevelError) }()

	img, err := pixbuf.Load(imagePath)
	if err != nil {
		return err
	}
	logx.Info(`image loaded`, logger, `path`, imagePath, `width`, img.Width, `height`, img.Height)

	v, err := viewer.New(fbDev, rsz, img, logger)
	if err != nil {
		return err
	}

	keys, err := tty.Open(ttyDev)
	if err != nil {
		return err
	}
	defer func() { logx.IsErr(keys.Close(), logger, slog.LevelError) }()

	return v.Run(keys)
}

func newLogger() *slog.Logger {
	lvl := slog.LevelInfo
	if debug {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func newResizer(name string) (resize.Resizer, error) {
	switch name {
	case `nearest`, ``:
		return &rsznearest.Resizer{}, nil
	case `nfnt`:
		return &rsznfnt.Resizer{}, nil
	case `gift`:
		return &rszgift.Resizer{}, nil
	}
	return nil, errors.Errorf(`unknown resize backend %q`, name)
}
