package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "guard-bot", false)

	l.Debug().Msg("hidden")
	l.Info().Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "service:guard-bot")
}

func TestNewDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "guard-bot", true)

	l.Debug().Int64("chat_id", 100).Msg("challenge issued")

	assert.Contains(t, buf.String(), "challenge issued")
	assert.Contains(t, buf.String(), "chat_id:100")
}
