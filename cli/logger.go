package cli

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a wrapper for zap.SugaredLogger.
type Logger struct {
	zLogger *zap.SugaredLogger
}

// A LoggerConfig contains the running environment, which is either
// "development" or "production", and an optional path of a file to also
// write the logging output to.
type LoggerConfig struct {
	Environment string `toml:"env"`
	Path        string `toml:"path,omitempty"`
}

// NewLogger builds a Logger from conf. Development logs DebugLevel and
// above, production InfoLevel and above, both to stderr in a human-friendly
// format, plus the configured file if any.
func NewLogger(conf *LoggerConfig) (*Logger, error) {
	zLevel := zap.NewAtomicLevel()
	if conf != nil && strings.EqualFold("development", conf.Environment) {
		zLevel.SetLevel(zap.DebugLevel)
	} else {
		zLevel.SetLevel(zap.InfoLevel)
	}

	zOutputPaths := []string{"stderr"}
	if conf != nil && conf.Path != "" {
		zOutputPaths = append(zOutputPaths, conf.Path)
	}

	zConfig := &zap.Config{
		Level:             zLevel,
		Encoding:          "console",
		DisableStacktrace: true,
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "timestamp",
			LevelKey:       "level",
			MessageKey:     "msg",
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths: zOutputPaths,
	}

	logger, err := zConfig.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{logger.Sugar()}, nil
}

// Debug logs a debugging message with additional key-value context.
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.zLogger.Debugw(msg, keysAndValues...)
}

// Info logs an informational message with additional key-value context.
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.zLogger.Infow(msg, keysAndValues...)
}

// Error logs an error message with additional key-value context.
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.zLogger.Errorw(msg, keysAndValues...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.zLogger.Sync()
}
