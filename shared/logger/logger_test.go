package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"frontdesk/config"
	"frontdesk/shared/logger"
)

func restoreGlobals(t *testing.T) {
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

func configWithLevel(level string) *config.Config {
	cfg := &config.Config{}
	cfg.Server.LogLevel = level

	return cfg
}

func TestInitLogger(t *testing.T) {
	restoreGlobals(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		want     zerolog.Level
	}{
		{name: "trace level", logLevel: "trace", want: zerolog.TraceLevel},
		{name: "debug level", logLevel: "debug", want: zerolog.DebugLevel},
		{name: "info level", logLevel: "info", want: zerolog.InfoLevel},
		{name: "warn level", logLevel: "warn", want: zerolog.WarnLevel},
		{name: "error level", logLevel: "error", want: zerolog.ErrorLevel},
		{name: "disabled level", logLevel: "disabled", want: zerolog.Disabled},
		{name: "unparseable level falls back to trace", logLevel: "loud", want: zerolog.TraceLevel},
		// zerolog parses "" as NoLevel without error
		{name: "empty level", logLevel: "", want: zerolog.NoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreGlobals(t)
			log.Logger = log.Output(&bytes.Buffer{})

			logger.SetLogLevel(configWithLevel(tt.logLevel))

			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestErrorWithStack(t *testing.T) {
	restoreGlobals(t)

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("boiler offline"))

	assert.Contains(t, buf.String(), "boiler offline")
	assert.Contains(t, buf.String(), "logger_test.go")
}
