package tty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srlehn/fbv/tty"
)

func TestNilSafety(t *testing.T) {
	var tt *tty.TTY
	assert.NoError(t, tt.Close())
	_, _, err := tt.ReadRune()
	assert.Error(t, err)
	assert.Empty(t, tt.TTYDevName())
}

func TestOpenMissingDevice(t *testing.T) {
	_, err := tty.Open(`/dev/does-not-exist`)
	assert.Error(t, err)
}
