package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		Configure("")
	})
	return &buf
}

func TestDebugfOnlyWhenVerbose(t *testing.T) {
	buf := capture(t)

	Configure("")
	Debugf("hidden %d", 1)
	assert.Empty(t, buf.String())
	assert.False(t, Verbose())

	Configure("true")
	Debugf("shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")
	assert.True(t, Verbose())
}

func TestWarnf(t *testing.T) {
	buf := capture(t)
	Warnf("no config at %s", "/tmp/x")
	assert.Contains(t, buf.String(), "warning")
	assert.Contains(t, buf.String(), "no config at /tmp/x")
}
