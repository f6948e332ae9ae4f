package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)
			t.Setenv("TAKONSOLE_STATE_DIR", "")
			t.Cleanup(Close)

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logDir := filepath.Join(tempDir, "takonsole")
			_, err := os.Stat(logDir)
			assert.NoError(t, err, "log directory was not created")
		})
	}
}

func TestSetup_WritesToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "out.log")
	t.Cleanup(Close)

	opts := DefaultOptions(2)
	opts.File = logPath
	Setup(opts)

	log.Info().Str("probe", "value").Msg("file probe")
	Close()

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "file probe")
	assert.Contains(t, string(data), `"probe":"value"`)
}

func TestSetup_DisableFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "none.log")
	t.Cleanup(Close)

	opts := DefaultOptions(2)
	opts.File = logPath
	opts.DisableFile = true
	Setup(opts)

	log.Info().Msg("not in a file")
	_, err := os.Stat(logPath)
	assert.True(t, os.IsNotExist(err))
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := GetLogger("console")
	logger.Info().Msg("test message")

	assert.Contains(t, buf.String(), `"component":"console"`)
	assert.Contains(t, buf.String(), "test message")
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := WithFields(map[string]interface{}{"key1": "value1", "key2": 42})
	logger.Info().Msg("with fields")

	assert.Contains(t, buf.String(), `"key1":"value1"`)
	assert.Contains(t, buf.String(), `"key2":42`)
}

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	LogCommand("write", []string{"--bold", "hello"})

	output := buf.String()
	assert.Contains(t, output, "write")
	assert.Contains(t, output, "--bold")
	assert.Contains(t, output, "Executing command")
}

func TestLogDuration(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	LogDuration(time.Now().Add(-5*time.Second), "selftest")

	assert.Contains(t, buf.String(), "selftest")
	assert.Contains(t, buf.String(), "duration")
}
