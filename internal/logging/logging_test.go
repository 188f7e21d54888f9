package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/rv-pager/internal/logging"
)

func TestNew_json(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, "warn", "json")

	logger.Info("dropped")
	logger.Warn("kept", "page", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.EqualValues(t, 3, entry["page"])
}

// TestNew_text verifies the tint handler is used for "text" and that colors
// are disabled when the writer is not a terminal.
func TestNew_text(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, "debug", "text")

	logger.Debug("planned links", "count", 7)

	out := buf.String()
	assert.Contains(t, out, "planned links")
	assert.Contains(t, out, "count=7")
	assert.NotContains(t, out, "\x1b[")
}

func TestNew_unknownLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, "loud", "json")

	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger.Info("shown")
	assert.NotEmpty(t, buf.String())
}
