package tlog

import (
	"fmt"
	"testing"

	"github.com/ridge/must/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// New creates a top-level logger
func New(config Config) *zap.Logger {
	var encoding string
	encoderConfig := DefaultEncoderConfig
	development := true

	switch config.Format {
	case FormatJSON:
		encoding = "json"
		development = false
	case FormatText:
		encoding = "console"

		var color bool
		switch config.Color {
		case ColorYes:
			color = true
		case ColorNo:
			color = false
		case ColorAuto:
			color = term.IsTerminal(unix.Stderr)
		default:
			panic(fmt.Errorf("unexpected --log-color value: %s", config.Color))
		}
		if color {
			encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		} else {
			encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		}
	default:
		panic(fmt.Errorf("unexpected --log-format value: %s", config.Format))
	}

	level := zapcore.InfoLevel
	if config.Verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      development,
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	logger := must.OK1(cfg.Build())

	if config.Name != "" {
		logger = logger.Named(config.Name)
	}

	return logger
}

// NewForTesting creates a logger for use in unit tests
func NewForTesting(t *testing.T) *zap.Logger {
	return New(Config{
		Name:    t.Name(),
		Format:  FormatText,
		Color:   ColorAuto,
		Verbose: true,
	})
}
