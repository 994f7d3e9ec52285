package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{-1, zerolog.WarnLevel},
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{7, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestSetup(t *testing.T) {
	state := t.TempDir()
	t.Setenv("XDG_STATE_HOME", state)
	defer func(old zerolog.Logger) { log.Logger = old }(log.Logger)

	var console bytes.Buffer
	path := Setup(&console, 1)

	assert.Equal(t, filepath.Join(state, "spark", "spark.log"), path)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	logger := GetLogger("test")
	logger.Warn().Str("keyword", "{{$NAME}}").Msg("Value not found")

	assert.Contains(t, console.String(), "Value not found")
	assert.NotContains(t, console.String(), "\x1b[", "console output to a buffer is not colored")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"test"`)
	assert.Contains(t, string(data), `"keyword":"{{$NAME}}"`)
}

func TestSetupWithoutLogFile(t *testing.T) {
	// A regular file where the state directory should be makes the log
	// directory impossible to create
	blocker := filepath.Join(t.TempDir(), "state")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	t.Setenv("XDG_STATE_HOME", blocker)
	defer func(old zerolog.Logger) { log.Logger = old }(log.Logger)

	var console bytes.Buffer
	path := Setup(&console, 0)

	assert.Equal(t, "", path)
	assert.Contains(t, console.String(), "Failed to create log file")
}

func TestLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	assert.Equal(t, filepath.Join("/custom/state", "spark", "spark.log"), LogFilePath())

	t.Setenv("XDG_STATE_HOME", "")
	got := LogFilePath()
	assert.True(t, filepath.IsAbs(got))
	assert.True(t, strings.HasSuffix(filepath.ToSlash(got), ".local/state/spark/spark.log"))
}
