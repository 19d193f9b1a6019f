//go:build linux || darwin || freebsd || netbsd || openbsd

package pages

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapRoundsToPages(t *testing.T) {
	b, err := Map(1)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, Unmap(b))
	}()

	require.Equal(t, PageSize(), len(b))
	require.Equal(t, len(b), cap(b))

	// Mapping must be writable and zeroed.
	require.Zero(t, b[0])
	b[0] = 0xde
	b[len(b)-1] = 0xad
	require.Equal(t, byte(0xde), b[0])
}

func TestRemapPreservesContents(t *testing.T) {
	b, err := Map(PageSize())
	require.NoError(t, err)
	for i := range b {
		b[i] = byte(i)
	}

	grown, err := Remap(b, 3*PageSize())
	require.NoError(t, err)
	require.Len(t, grown, 3*PageSize())
	for i := 0; i < PageSize(); i++ {
		require.Equal(t, byte(i), grown[i], "byte %d lost on grow", i)
	}

	shrunk, err := Remap(grown, 10)
	require.NoError(t, err)
	require.Len(t, shrunk, PageSize())
	require.Equal(t, byte(9), shrunk[9])

	require.NoError(t, Unmap(shrunk))
}

func TestRemapSameLengthIsNoop(t *testing.T) {
	b, err := Map(100)
	require.NoError(t, err)
	same, err := Remap(b, PageSize())
	require.NoError(t, err)
	require.Equal(t, &b[0], &same[0])
	require.NoError(t, Unmap(same))
}

func TestUnmapEmpty(t *testing.T) {
	require.NoError(t, Unmap(nil))
}

func TestLengthRejectsBadSizes(t *testing.T) {
	_, err := Length(0)
	require.ErrorIs(t, err, ErrBadSize)
	_, err = Map(-5)
	require.ErrorIs(t, err, ErrBadSize)
}
