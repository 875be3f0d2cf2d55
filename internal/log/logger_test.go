package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T, level Level) (*Logger, string) {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), "logs", "iu.log")
	logger, err := New(logPath, level)
	require.NoError(t, err)
	t.Cleanup(func() { _ = logger.Close() })
	return logger, logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestLogger_WritesSessionAndLevel(t *testing.T) {
	logger, logPath := newTestLogger(t, LevelDebug)

	logger.Debug("menu: dispatch %s", "ping")
	logger.Error("boom")
	require.NoError(t, logger.Close())

	content := readLog(t, logPath)
	session := logger.Session()
	require.Len(t, session, 8)
	require.Contains(t, content, "DEBUG "+session+": menu: dispatch ping")
	require.Contains(t, content, "ERROR "+session+": boom")
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, logPath := newTestLogger(t, LevelWarn)

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Warn("shown warn")
	require.NoError(t, logger.Close())

	content := readLog(t, logPath)
	require.NotContains(t, content, "hidden")
	require.Contains(t, content, "shown warn")
}

func TestLogger_Permissions(t *testing.T) {
	logger, logPath := newTestLogger(t, LevelInfo)
	logger.Info("x")

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	dirInfo, err := os.Stat(filepath.Dir(logPath))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0700), dirInfo.Mode().Perm())
}

func TestLogger_TightensExistingFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "iu.log")
	require.NoError(t, os.WriteFile(logPath, []byte("old\n"), 0644))

	logger, err := New(logPath, LevelInfo)
	require.NoError(t, err)
	logger.Info("new")
	require.NoError(t, logger.Close())

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	content := readLog(t, logPath)
	require.True(t, strings.HasPrefix(content, "old\n"))
	require.Contains(t, content, "new")
}

func TestLogger_SetEnabled(t *testing.T) {
	logger, logPath := newTestLogger(t, LevelInfo)

	logger.Info("before")
	logger.SetEnabled(false)
	logger.Info("while disabled")
	logger.SetEnabled(true)
	logger.Info("after")
	require.NoError(t, logger.Close())

	content := readLog(t, logPath)
	require.Contains(t, content, "before")
	require.NotContains(t, content, "while disabled")
	require.Contains(t, content, "after")
}

func TestLogger_WriteAfterCloseIsDropped(t *testing.T) {
	logger, logPath := newTestLogger(t, LevelInfo)
	require.NoError(t, logger.Close())
	logger.Info("late")
	require.NoError(t, logger.Close())

	require.NotContains(t, readLog(t, logPath), "late")
}

func TestLogger_Writer(t *testing.T) {
	logger, logPath := newTestLogger(t, LevelDebug)

	_, err := logger.Writer(LevelInfo).Write([]byte("from writer\n"))
	require.NoError(t, err)
	require.NoError(t, logger.Close())

	require.Contains(t, readLog(t, logPath), "INFO "+logger.Session()+": from writer\n")
}

func TestLogger_NilReceiver(t *testing.T) {
	var logger *Logger

	require.NotPanics(t, func() {
		logger.Debug("x")
		logger.Info("x")
		logger.Warn("x")
		logger.Error("x")
		logger.SetEnabled(true)
	})
	require.NoError(t, logger.Close())
	require.Empty(t, logger.Session())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{" info ", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"Error", LevelError},
		{"verbose", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "INFO", LevelInfo.String())
	require.Equal(t, "WARN", LevelWarn.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(42).String())
}

func TestGlobalLogger(t *testing.T) {
	t.Cleanup(func() { SetDefault(nil) })

	SetDefault(nil)
	require.NotPanics(t, func() {
		Debug("nothing installed")
		Info("nothing installed")
	})
	require.Nil(t, GetLogger())
	require.NoError(t, Close())

	logPath := filepath.Join(t.TempDir(), "iu.log")
	require.NoError(t, Init(logPath, LevelDebug))
	require.NotNil(t, GetLogger())

	Debug("global %d", 1)
	Warn("global %d", 2)
	require.NoError(t, Close())

	content := readLog(t, logPath)
	require.Contains(t, content, "global 1")
	require.Contains(t, content, "global 2")
}

func TestNew_FileInPlaceOfDirectory(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "afile")
	require.NoError(t, os.WriteFile(filePath, nil, 0600))

	_, err := New(filepath.Join(filePath, "sub", "iu.log"), LevelInfo)
	require.Error(t, err)
}
