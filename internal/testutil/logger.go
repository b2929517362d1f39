package testutil

import (
	"io"

	"github.com/Deba69/BookList/internal/logger"
)

func MakeNoopLogger() *logger.Logger {
	return logger.NewWithFormat(io.Discard, 0, "text")
}
