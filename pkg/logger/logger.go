package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/GlebRadaev/festeros/internal/config"
)

const (
	serviceName = "festeros"
	timeLayout  = "15:04:05 02-01-2006"
)

var logLvlMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// InitLogger replaces the global zap logger. The console format is meant
// for a terminal, json for log collectors.
func InitLogger(conf *config.Config) error {
	lvl, ok := logLvlMap[conf.LogLvl]
	if !ok {
		return fmt.Errorf("unsupported log lvl %q, want one of debug, info, warn, error", conf.LogLvl)
	}

	format := conf.LogFormat
	if format == "" {
		format = "console"
	}
	encoder, err := encoderConfig(format)
	if err != nil {
		return err
	}

	c := zap.Config{
		Level:             zap.NewAtomicLevelAt(lvl),
		Encoding:          format,
		EncoderConfig:     encoder,
		DisableStacktrace: lvl > zapcore.DebugLevel,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
		InitialFields:     map[string]interface{}{"service": serviceName},
	}

	logger, err := c.Build()
	if err != nil {
		return fmt.Errorf("unable to create zap logger, error: %w", err)
	}

	zap.ReplaceGlobals(logger)

	return nil
}

func encoderConfig(format string) (zapcore.EncoderConfig, error) {
	switch format {
	case "console":
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
		cfg.EncodeDuration = zapcore.MillisDurationEncoder
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg, nil
	case "json":
		cfg := zap.NewProductionEncoderConfig()
		cfg.TimeKey = "ts"
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.EncodeDuration = zapcore.MillisDurationEncoder
		return cfg, nil
	default:
		return zapcore.EncoderConfig{}, fmt.Errorf("unsupported log format %q, want console or json", format)
	}
}
