package errors_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srlehn/fbv/internal/errors"
)

func TestNewNilGivesNil(t *testing.T) {
	assert.Nil(t, errors.New(nil))
}

func TestNewKeepsOrigin(t *testing.T) {
	orig := errors.New(`boom`)
	assert.Same(t, orig, errors.New(orig))
}

func TestJoinIs(t *testing.T) {
	sentinel := errors.New(`sentinel`)
	err := errors.Join(sentinel, io.EOF)
	assert.True(t, errors.Is(err, sentinel))
	assert.True(t, errors.Is(err, io.EOF))
	assert.NoError(t, errors.Join(nil, nil))
}

func TestNilParam(t *testing.T) {
	assert.NoError(t, errors.NilParam(1, `a`, struct{}{}))
	err := errors.NilParam(1, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `nil parameter`)
}
