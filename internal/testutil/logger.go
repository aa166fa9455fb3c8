package testutil

import (
	"io"

	"github.com/kneeboard/kneeboard-server/internal/logger"
)

// MakeNoopLogger returns a logger that discards everything it is given.
func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, 0)
}
