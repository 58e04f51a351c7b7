// pkg/logger/logger_test.go

package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"debug", zapcore.DebugLevel},
		{"TRACE", zapcore.DebugLevel},
		{" warn ", zapcore.WarnLevel},
		{"WARNING", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"dpanic", zapcore.DPanicLevel},
		{"fatal", zapcore.FatalLevel},
		{"nonsense", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLogLevel(tt.in), tt.in)
	}
}

func TestTerminalCoreRoutesPromptMessages(t *testing.T) {
	t.Parallel()

	base, logs := observer.New(zapcore.DebugLevel)
	var out bytes.Buffer
	log := zap.New(newTerminalConsoleCore(base, &out))

	log.Info(TerminalPrefix+" Enter a password to strengthen", zap.String("hint", "leave empty for random"), zap.Int("attempt", 1))
	log.Info("structured only")

	assert.Equal(t, "Enter a password to strengthen\nattempt: 1\nhint: leave empty for random\n", out.String())
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "structured only", logs.All()[0].Message)
}

func TestTerminalCoreWithKeepsRouting(t *testing.T) {
	t.Parallel()

	base, logs := observer.New(zapcore.InfoLevel)
	var out bytes.Buffer
	log := zap.New(newTerminalConsoleCore(base, &out)).With(zap.String("command", "passwords"))

	log.Info(TerminalPrefix + "line one\nline two")
	log.Debug("below level")

	assert.Equal(t, "line one\nline two\n", out.String())
	assert.Zero(t, logs.Len())
}

func TestSetLoggerReplacesGlobals(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	prev := L()
	t.Cleanup(func() { SetLogger(prev) })

	SetLogger(zap.New(core))
	zap.L().Info("via global")
	L().Info("via package")

	assert.Equal(t, 2, logs.Len())
	assert.NoError(t, Sync())
}

func TestGetLogFileWriter(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "passforge.log")
	w, err := GetLogFileWriter(path)
	require.NoError(t, err)

	_, err = w.Write([]byte("hello\n"))
	require.NoError(t, err)
	require.NoError(t, w.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestPlatformLogPaths(t *testing.T) {
	t.Parallel()

	paths := PlatformLogPaths()
	require.NotEmpty(t, paths)
	for _, p := range paths {
		assert.True(t, strings.HasSuffix(p, "passforge.log"), p)
	}
}

func TestGenerateTraceID(t *testing.T) {
	t.Parallel()

	a, b := GenerateTraceID(), GenerateTraceID()
	assert.Len(t, a, 8)
	assert.NotEqual(t, a, b)
}
