package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	t.Run("tagged error", func(t *testing.T) {
		err := Errorf(ErrorKindProvider, "model unavailable")
		assert.Equal(t, ErrorKindProvider, KindOf(err))
	})

	t.Run("tagged error through a wrap chain", func(t *testing.T) {
		inner := Errorf(ErrorKindStorage, "disk full")
		wrapped := fmt.Errorf("saving mood: %w", inner)
		assert.Equal(t, ErrorKindStorage, KindOf(wrapped))
	})

	t.Run("untagged error defaults to internal", func(t *testing.T) {
		assert.Equal(t, ErrorKindInternal, KindOf(errors.New("boom")))
	})
}

func TestNewError(t *testing.T) {
	t.Run("nil cause yields nil", func(t *testing.T) {
		assert.NoError(t, NewError(ErrorKindStorage, nil))
	})

	t.Run("unwraps to the cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewError(ErrorKindProvider, cause)
		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "provider")
	})
}
