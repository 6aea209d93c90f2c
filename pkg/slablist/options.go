package slablist

import (
	"io"

	"go-lists/pkg/freelist"

	"github.com/sirupsen/logrus"
)

type Options struct {
	// Reuse picks the order in which freed slots are handed out again.
	// Defaults to freelist.LIFO.
	Reuse freelist.Policy

	// Logger receives debug messages on capacity exhaustion and errors if
	// the slot pool rejects a release. Output is discarded when nil.
	Logger logrus.FieldLogger
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}
