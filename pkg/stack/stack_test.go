package stack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	s := New[int](2)
	require.Equal(t, 0, s.Size())

	_, err := s.Pop()
	require.ErrorIs(t, err, ErrEmptyStack)
	_, err = s.Top()
	require.ErrorIs(t, err, ErrEmptyStack)

	s.Push(1)
	s.Push(2)
	s.Push(3)
	require.Equal(t, 3, s.Size())

	top, err := s.Top()
	require.NoError(t, err)
	require.Equal(t, 3, top)
	require.Equal(t, 3, s.Size())

	for _, want := range []int{3, 2, 1} {
		v, err := s.Pop()
		require.NoError(t, err)
		require.Equal(t, want, v)
	}
	require.Equal(t, 0, s.Size())
}
