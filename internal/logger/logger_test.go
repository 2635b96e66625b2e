// file: internal/logger/logger_test.go
// version: 1.0.0
// guid: 9d0a6e37-2f5c-4b18-a7e4-81c3f5d29b06

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatConsole, ParseFormat("console"))
	assert.Equal(t, FormatConsole, ParseFormat("bogus"))
}

func TestNew_JSONLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn", Format: FormatJSON, Output: &buf})

	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Warn().Str("provider", "Google Books").Msg("kept")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "Google Books", entry["provider"])
}

func TestNew_InvalidLevelDefaultsToInfo(t *testing.T) {
	l := New(Config{Level: "loud", Format: FormatJSON, Output: &bytes.Buffer{}})
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}

func TestSetupAndComponent(t *testing.T) {
	var buf bytes.Buffer
	Setup(Config{Level: "debug", Format: FormatJSON, Output: &buf})
	t.Cleanup(func() { Setup(Config{}) })

	l := Component("lookup")
	l.Debug().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "lookup", entry["component"])
	assert.Equal(t, "debug", entry["level"])
}
