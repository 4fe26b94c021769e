package errors

import (
	stderrors "errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("read %d of %d bytes", 3, 10)
	assert.True(t, strings.HasPrefix(err.Error(), "read 3 of 10 bytes"))
	assert.Contains(t, err.Error(), "Stack Trace:")
}

func TestWrapChain(t *testing.T) {
	err := Wrap(io.EOF, "an error occurred reading a chunk")
	require.True(t, stderrors.Is(err, io.EOF))
	assert.Contains(t, err.Error(), "an error occurred reading a chunk: EOF")
	// The non-Error cause gets the stack trace.
	assert.Contains(t, err.Error(), "Stack Trace:")

	outer := Wrap(err, "an error occurred decoding a message")
	require.True(t, stderrors.Is(outer, io.EOF))
	// Wrapping an Error does not stack another trace on top.
	assert.Equal(t, 1, strings.Count(outer.Error(), "Stack Trace:"))
}

func TestInnerMost(t *testing.T) {
	leaf := New("connection reset")
	assert.Same(t, leaf, leaf.InnerMost())

	wrapped := Wrap(Wrap(io.EOF, "inner"), "outer")
	assert.Equal(t, io.EOF, wrapped.InnerMost())
}
