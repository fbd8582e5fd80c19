package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, false)

	l.Debugf("hidden %d\n", 1)
	l.Infof("shown %d\n", 2)
	l.Warnf("careful\n")
	l.Errorf("broken\n")

	assert.Equal(t, "[INFO] shown 2\n[WARN] careful\n[ERROR] broken\n", buf.String())
}

func TestLoggerDebug(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, true)

	l.Debugf("HTTP %s %s\n", "GET", "https://example.com")

	assert.Equal(t, "[DEBUG] HTTP GET https://example.com\n", buf.String())
}
