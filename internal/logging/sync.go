package logging

import (
	"strings"
	"syscall"

	"go.uber.org/zap"
)

// Sync flushes the logger, swallowing the well-known stdout/stderr sync
// errors that occur on some terminals and are safe to ignore.
func Sync(logger *zap.Logger) error {
	err := logger.Sync()
	if err == nil {
		return nil
	}

	errStr := err.Error()
	if strings.Contains(errStr, "invalid argument") ||
		strings.Contains(errStr, "inappropriate ioctl for device") ||
		strings.Contains(errStr, "bad file descriptor") {
		return nil
	}
	if err == syscall.EINVAL {
		return nil
	}

	return err
}
