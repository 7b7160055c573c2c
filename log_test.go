package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewLoggerBareMessages(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, false)
	log.Warn("Could not read /proc/1/stack: permission denied")
	log.Debug("hidden", zap.Int("n", 1))

	assert.Equal(t, "Could not read /proc/1/stack: permission denied\n", buf.String())
}

func TestNewLoggerDebug(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, true)
	log.Debug("scanned base directory", zap.String("base", "/proc"), zap.Int("accepted", 4))

	assert.Equal(t, "scanned base directory\t{\"base\": \"/proc\", \"accepted\": 4}\n", buf.String())
}
