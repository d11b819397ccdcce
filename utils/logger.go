package utils

import (
	"log"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// NewLogger builds a production (JSON) or development (colored console) logger.
func NewLogger(production bool, level string) (*zap.Logger, error) {
	var cfg zap.Config
	if production {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	lvl := zap.NewAtomicLevelAt(zap.InfoLevel)
	if !production {
		lvl = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, err
		}
	}
	cfg.Level = lvl

	return cfg.Build()
}

// InitializeLogger builds the process logger and installs it as the zap global.
func InitializeLogger(production bool, level string) *zap.Logger {
	loggerOnce.Do(func() {
		l, err := NewLogger(production, level)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		zap.ReplaceGlobals(l)
		logger = l
	})
	return logger
}

// GetLogger retrieves the global logger.
func GetLogger() *zap.Logger {
	if logger == nil {
		return zap.L()
	}
	return logger
}
