package config

import (
	"testing"

	"go-lists/pkg/customerrors"
	"go-lists/pkg/freelist"
	"go-lists/pkg/slablist"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := New()
	require.NotNil(t, c.ListConfig)
	require.Equal(t, 5, c.ListConfig.Capacity)
	require.NoError(t, c.ListConfig.Validate())

	opts := c.ListConfig.Options(nil)
	require.Equal(t, freelist.LIFO, opts.Reuse)

	l, err := slablist.New[int](c.ListConfig.Capacity, opts)
	require.NoError(t, err)
	require.Equal(t, 5, l.Cap())
}

func TestValidate(t *testing.T) {
	c := &ListConfig{Capacity: -1, Reuse: "lifo"}
	require.ErrorIs(t, c.Validate(), customerrors.ErrInvalidCapacity)

	c = &ListConfig{Capacity: 1, Reuse: "stack"}
	require.ErrorIs(t, c.Validate(), freelist.ErrUnknownPolicy)

	c = &ListConfig{Capacity: 0, Reuse: "fifo"}
	require.NoError(t, c.Validate())
}
