package logger_test

import (
	"agenda/config"
	"agenda/shared/constant"
	"agenda/shared/logger"
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func restore(t *testing.T) {
	t.Helper()

	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	originalTimeFormat := zerolog.TimeFieldFormat

	t.Cleanup(func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
		zerolog.TimeFieldFormat = originalTimeFormat
	})
}

func TestInitLogger(t *testing.T) {
	restore(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("slot store unreachable"))

	assert.Contains(t, buf.String(), "slot store unreachable")
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		expected zerolog.Level
	}{
		{name: "debug level", logLevel: "debug", expected: zerolog.DebugLevel},
		{name: "info level", logLevel: "info", expected: zerolog.InfoLevel},
		{name: "warn level", logLevel: "warn", expected: zerolog.WarnLevel},
		{name: "error level", logLevel: "error", expected: zerolog.ErrorLevel},
		{name: "invalid level defaults to trace", logLevel: "loud", expected: zerolog.TraceLevel},
		{name: "empty level uses NoLevel", logLevel: "", expected: zerolog.NoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore(t)

			var buf bytes.Buffer
			log.Logger = log.Output(&buf)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestSetLogLevel_ProductionSwitchesToJSON(t *testing.T) {
	restore(t)

	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvProduction
	cfg.Server.LogLevel = "info"
	cfg.App.Name = "agenda"

	logger.SetLogLevel(cfg)

	var buf bytes.Buffer
	log.Logger = log.Logger.Output(&buf)
	log.Info().Msg("booking created")

	assert.Contains(t, buf.String(), `"message":"booking created"`)
	assert.Contains(t, buf.String(), `"app":"agenda"`)
}
