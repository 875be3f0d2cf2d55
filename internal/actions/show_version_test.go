package actions

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/interutils/cli/internal/domain"
	"github.com/interutils/cli/internal/input"
	"github.com/interutils/cli/internal/pkgcheck"
	"github.com/interutils/cli/internal/testutil"
	"github.com/interutils/cli/internal/ui/style"
)

func newDeps(t *testing.T) (Deps, *testutil.Reporter) {
	t.Helper()
	style.Init(false, nil)
	out := &testutil.Reporter{}
	deps := DefaultDeps(testutil.NewConfig(nil), out, func() {}, "1.2.3", nil)
	return deps, out
}

func TestShowVersion_PrintsVersion(t *testing.T) {
	deps, out := newDeps(t)

	require.NoError(t, ShowVersion(deps)(nil))
	require.Equal(t, []string{"iu version 1.2.3"}, out.RawLines())
}

func TestDate(t *testing.T) {
	deps, out := newDeps(t)
	deps.Now = func() time.Time { return time.Date(2024, time.March, 7, 23, 59, 0, 0, time.UTC) }

	require.NoError(t, Date(deps)(nil))
	require.Equal(t, []string{"07.03.2024"}, out.Texts(domain.SeverityInfo))

	out.Reset()
	deps.Config = testutil.NewConfig(map[string]string{"date_format": "yyyy-mm-dd"})
	require.NoError(t, Date(deps)(nil))
	require.Equal(t, []string{"2024-03-07"}, out.Texts(domain.SeverityInfo))
}

func TestTime(t *testing.T) {
	deps, out := newDeps(t)
	deps.Now = func() time.Time { return time.Date(2024, time.March, 7, 23, 59, 10, 0, time.UTC) }

	require.NoError(t, Time(deps)(nil))
	deps.Config = testutil.NewConfig(map[string]string{"time_format": "12h"})
	require.NoError(t, Time(deps)(nil))

	require.Equal(t, []string{"23:59:10", "11:59:10 PM"}, out.Texts(domain.SeverityInfo))
}

func TestClear(t *testing.T) {
	deps, _ := newDeps(t)
	cleared := 0
	deps.Clear = func() { cleared++ }

	require.NoError(t, Clear(deps)([]string{"ignored"}))
	require.Equal(t, 1, cleared)
}

func TestPackage(t *testing.T) {
	deps, out := newDeps(t)
	var asked []string
	deps.PackageVersion = func(_ context.Context, name string) (string, error) {
		asked = append(asked, name)
		if name == "bash" {
			return "5.2", nil
		}
		return "", nil
	}

	require.NoError(t, Package(deps)([]string{"bash", "zsh"}))
	require.Equal(t, []string{"bash", "zsh"}, asked)
	require.Equal(t, []string{"bash 5.2"}, out.Texts(domain.SeveritySuccess))
	require.Equal(t, []string{"zsh is not installed"}, out.Texts(domain.SeverityCaution))
}

func TestPackage_Interrupted(t *testing.T) {
	deps, out := newDeps(t)
	sig := make(chan os.Signal, 1)
	deps.Interrupts = input.NewInterrupts(sig)
	var asked []string
	deps.PackageVersion = func(ctx context.Context, name string) (string, error) {
		asked = append(asked, name)
		sig <- os.Interrupt
		<-ctx.Done()
		return "", ctx.Err()
	}

	require.NoError(t, Package(deps)([]string{"bash", "zsh"}))
	require.Equal(t, []string{"bash"}, asked)
	require.Equal(t, []string{"Package check interrupted!"}, out.Texts(domain.SeverityCaution))
}

func TestPackage_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantErr  bool
		severity domain.Severity
		text     string
	}{
		{"invalid name", pkgcheck.ErrInvalidName, false, domain.SeverityCaution, `Invalid argument "-x": not a package name`},
		{"no manager", pkgcheck.ErrNoPackageManager, false, domain.SeverityError, "Neither pacman nor apt is available"},
		{"other", errors.New("apt crashed"), true, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, out := newDeps(t)
			deps.PackageVersion = func(context.Context, string) (string, error) { return "", tt.err }

			err := Package(deps)([]string{"-x"})
			if tt.wantErr {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, []string{tt.text}, out.Texts(tt.severity))
		})
	}

	deps, out := newDeps(t)
	require.NoError(t, Package(deps)(nil))
	require.Len(t, out.Texts(domain.SeverityCaution), 1)
}
