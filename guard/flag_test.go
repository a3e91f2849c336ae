package guard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlag_IsClear(t *testing.T) {
	f := NewFlag(false)
	require.NoError(t, f.IsClear())

	f.Set(true)
	err := f.IsClear()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrTripped)

	f.Set(false)
	require.NoError(t, f.IsClear())
	require.False(t, f.Tripped())
}

func TestFlag_Clone(t *testing.T) {
	f := NewFlag(true)

	c := f.Clone()
	require.True(t, c.Tripped())

	// The copy is disconnected from the original.
	c.Set(false)
	require.True(t, f.Tripped())
	require.False(t, c.Tripped())
}
