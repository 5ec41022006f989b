package utils

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"garbage", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log := NewLogger(LoggerOptions{Level: tt.level, Format: "json"})
			assert.Equal(t, tt.want, log.GetLevel())
		})
	}
}

func TestNewLogger_VerboseOverridesLevel(t *testing.T) {
	log := NewLogger(LoggerOptions{Level: "error", Format: "json", Verbose: true})
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
}

func TestLogger_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerOptions{Level: "info", Format: "json", Output: &buf})

	log.WithComponent("packager").Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "packager", entry["component"])
	assert.Equal(t, "hello", entry["message"])
}

func TestLogger_WithArtifact(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerOptions{Level: "info", Format: "json", Output: &buf})

	log.WithArtifact("out/ext.aseprite-extension").Info().Msg("done")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "out/ext.aseprite-extension", entry["artifact"])
}
