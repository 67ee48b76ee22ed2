// Package tty reads single keystrokes via [github.com/mattn/go-tty].
// Opening the device disables line buffering and echo; Close restores
// the previous terminal mode.
//
// [github.com/mattn/go-tty]: https://pkg.go.dev/github.com/mattn/go-tty
package tty

import (
	ttymattn "github.com/mattn/go-tty"

	"github.com/srlehn/fbv/internal/errors"
)

type TTY struct {
	tty      *ttymattn.TTY
	fileName string
}

// Open opens the terminal device (e.g. /dev/tty) in raw-ish mode.
func Open(ttyFile string) (*TTY, error) {
	t, err := ttymattn.OpenDevice(ttyFile)
	if err != nil {
		return nil, errors.New(err)
	}
	if t == nil {
		return nil, errors.New(`nil tty`)
	}
	return &TTY{tty: t, fileName: ttyFile}, nil
}

// ReadRune blocks until a single keystroke arrives.
func (t *TTY) ReadRune() (r rune, size int, err error) {
	r = '�'
	if t == nil || t.tty == nil {
		return r, len(string(r)), errors.New(`nil tty`)
	}
	r, err = t.tty.ReadRune()
	if err != nil {
		r = '�'
	}
	return r, len(string(r)), err
}

// TTYDevName returns the device file name the TTY was opened with.
func (t *TTY) TTYDevName() string {
	if t == nil {
		return ``
	}
	return t.fileName
}

// Close restores the previous terminal mode and closes the device.
// Safe to call on a nil or already closed TTY.
func (t *TTY) Close() error {
	if t == nil || t.tty == nil {
		return nil
	}
	defer func() { t.tty = nil }()
	return t.tty.Close()
}
