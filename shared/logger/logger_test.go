package logger_test

import (
	"bytes"
	"cyclebook/config"
	"cyclebook/shared/logger"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	originalLogger := log.Logger
	t.Cleanup(func() { log.Logger = originalLogger })

	cfg := &config.Config{}
	cfg.Server.Env = "production"

	logger.InitLogger(cfg)

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	originalLogger := log.Logger
	t.Cleanup(func() { log.Logger = originalLogger })

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger.ErrorWithStack(errors.New("cycle lock lost"))

	assert.Contains(t, buf.String(), "cycle lock lost")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestSetLogLevel(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(originalLevel) })

	tests := []struct {
		name          string
		logLevel      string
		expectedLevel zerolog.Level
	}{
		{name: "debug", logLevel: "debug", expectedLevel: zerolog.DebugLevel},
		{name: "info", logLevel: "info", expectedLevel: zerolog.InfoLevel},
		{name: "warn", logLevel: "warn", expectedLevel: zerolog.WarnLevel},
		{name: "empty defaults to trace", logLevel: "", expectedLevel: zerolog.TraceLevel},
		{name: "unknown defaults to trace", logLevel: "loud", expectedLevel: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
}
