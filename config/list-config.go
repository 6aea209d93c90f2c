package config

import (
	"go-lists/pkg/customerrors"
	"go-lists/pkg/freelist"
	"go-lists/pkg/slablist"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type ListConfig struct {
	Capacity int
	Reuse    string
}

func NewListConfig() *ListConfig {
	return &ListConfig{
		Capacity: 5,
		Reuse:    string(freelist.LIFO),
	}
}

func (c *ListConfig) Validate() error {
	if c.Capacity < 0 {
		return errors.Wrapf(customerrors.ErrInvalidCapacity, "capacity %d", c.Capacity)
	}

	switch freelist.Policy(c.Reuse) {
	case freelist.LIFO, freelist.FIFO:
		return nil
	default:
		return errors.Wrapf(freelist.ErrUnknownPolicy, "reuse %q", c.Reuse)
	}
}

func (c *ListConfig) Options(log logrus.FieldLogger) *slablist.Options {
	return &slablist.Options{
		Reuse:  freelist.Policy(c.Reuse),
		Logger: log,
	}
}
