package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWithPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "rowdrawer.log")

	result := NewLoggerWithPath(Config{Level: "debug", Output: OutputFile, File: path})
	t.Cleanup(func() { _ = result.Close() })

	require.True(t, result.UsingFile)
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, path, result.FilePath)
	assert.Equal(t, zerolog.DebugLevel, result.Logger.GetLevel())

	result.Logger.Debug().Str("row", "1").Msg("drawer toggled")
	require.NoError(t, result.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "drawer toggled")

	// Closing twice is harmless.
	assert.NoError(t, result.Close())
}

func TestNewLoggerWithPath_FallbackWithoutFile(t *testing.T) {
	result := NewLoggerWithPath(Config{Level: "info", Output: OutputFile})

	assert.False(t, result.UsingFile)
	assert.True(t, result.FallbackUsed)
	assert.Contains(t, result.FallbackReason, "no log file")
}

func TestNewLoggerWithPath_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"chatty", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			result := NewLoggerWithPath(Config{Level: tt.level, Output: OutputDiscard})
			assert.Equal(t, tt.want, result.Logger.GetLevel())
		})
	}
}

func TestComponentLoggerAndContext(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	ctx := ComponentLogger(base, "drawer").WithContext(context.Background())
	l := FromContext(ctx)
	l.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"drawer"`)
	assert.Equal(t, zerolog.Disabled, FromContext(context.Background()).GetLevel())
}

func TestPrintMessages(t *testing.T) {
	var buf bytes.Buffer
	PrintLogPathMessage(&buf, "/tmp/x.log")
	PrintFallbackWarning(&buf, "no log file configured")

	assert.Contains(t, buf.String(), "Logging to /tmp/x.log")
	assert.Contains(t, buf.String(), "logging disabled, no log file configured")
}
