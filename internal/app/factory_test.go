package app

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/interutils/cli/internal/domain"
	"github.com/interutils/cli/internal/input"
	"github.com/interutils/cli/internal/log"
)

func newApp(t *testing.T, configPath string, stdin string) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	a, err := New(Options{
		ConfigPath: configPath,
		Stdin:      strings.NewReader(stdin),
		Stdout:     &out,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a, &out
}

func TestNew_FirstRunRecreatesConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")

	a, out := newApp(t, configPath, "")

	require.Equal(t, "[!] Recreated config!\n", out.String())
	require.Equal(t, domain.DefaultConfig(), a.Config.All())
	require.Equal(t, configPath, a.Store.Path())
	require.IsType(t, &log.Logger{}, a.Logger)

	_, err := os.Stat(filepath.Join(dir, "iu.log"))
	require.NoError(t, err, "log file is created next to the config")
}

func TestNew_ReadsFromReplacedStdin(t *testing.T) {
	a, out := newApp(t, filepath.Join(t.TempDir(), "config.json"), "hello\n")
	out.Reset()

	require.IsType(t, &input.Stream{}, a.Input)
	line, err := a.Input.ReadLine(".iu->")
	require.NoError(t, err)
	require.Equal(t, "hello", line)
	require.Equal(t, ".iu->", out.String())
}

func TestNew_LoggingDisabledByConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	data, err := json.Marshal(map[string]string{"enable_log": "false"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(configPath, data, 0600))

	a, out := newApp(t, configPath, "")

	require.Empty(t, out.String())
	require.IsType(t, log.NopLogger{}, a.Logger)
	_, err = os.Stat(filepath.Join(dir, "iu.log"))
	require.True(t, os.IsNotExist(err))
}

func TestNew_VerboseFromConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"verbose":"true","enable_log":"false"}`), 0600))

	a, out := newApp(t, configPath, "")
	a.Output.Report(domain.SeverityVerbose, "details")

	require.Equal(t, "[~] details\n", out.String())
}

func TestNew_UnreadableConfigFails(t *testing.T) {
	// a directory where the config file should be
	_, err := New(Options{
		ConfigPath: t.TempDir(),
		Stdin:      strings.NewReader(""),
		Stdout:     &bytes.Buffer{},
	})
	require.Error(t, err)
}

func TestClose_Idempotent(t *testing.T) {
	a, _ := newApp(t, filepath.Join(t.TempDir(), "config.json"), "")

	require.NoError(t, a.Close())
	require.NoError(t, a.Close())
}

func TestNew_InterruptEndsRead(t *testing.T) {
	r, w := io.Pipe()
	t.Cleanup(func() { _ = w.Close() })
	sig := make(chan os.Signal, 1)
	a, err := New(Options{
		ConfigPath: filepath.Join(t.TempDir(), "config.json"),
		Stdin:      r,
		Stdout:     &bytes.Buffer{},
		Interrupts: input.NewInterrupts(sig),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	sig <- os.Interrupt
	_, err = a.Input.ReadLine(".iu->")
	require.ErrorIs(t, err, input.ErrInterrupted)
}
