//go:build unix

package netutil

import (
	"os/exec"
	"syscall"
)

// detach starts cmd in its own process group so a terminal ^C reaches iu,
// which then cancels the command through its context.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
