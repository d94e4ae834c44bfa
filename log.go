package chunklist

import (
	"go.uber.org/zap/zapcore"

	"github.com/timzifer/chunklist/internal/logger"
)

// SetLogLevel changes the level of the package logger at runtime. It
// affects every list constructed without WithLogger, including existing
// ones. The initial level comes from the LOG_LEVEL environment variable.
func SetLogLevel(level zapcore.Level) {
	logger.SetLevel(level)
}

// LogLevel returns the current level of the package logger.
func LogLevel() zapcore.Level {
	return logger.Level()
}
