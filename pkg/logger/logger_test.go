package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "warn")
	require.NoError(t, err)

	log.Info("CreateBooking: listing=%d", 1)
	log.Warn("CreateBooking: rejected reason=%s", "OUTSIDE_WINDOW")

	out := buf.String()
	assert.NotContains(t, out, "listing=1")
	assert.Contains(t, out, "reason=OUTSIDE_WINDOW")
	assert.Contains(t, out, "level=warning")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("", "loud")
	assert.Error(t, err)
}
