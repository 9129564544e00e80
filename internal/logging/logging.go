// Package logging constructs the zap loggers used by long-running commands.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewProductionLogger() *zap.SugaredLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableCaller = true
	config.DisableStacktrace = true

	logger, err := config.Build()
	if err != nil {
		panic(err)
	}

	return logger.Sugar()
}

func NewDebugLogger() *zap.SugaredLogger {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	logger, err := config.Build()
	if err != nil {
		panic(err)
	}

	return logger.Sugar()
}
