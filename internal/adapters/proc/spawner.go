// Package proc implements the Spawner port with os/exec.
package proc

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/bft-labs/xargo/internal/ports"
)

// ttyDevice is the interactive control device handed to the child's stdin
// when requested.
const ttyDevice = "/dev/tty"

// Exit codes reported when the child could not be launched at all, matching
// what a forked child would exit with after a failed exec.
const (
	codeNotFound      = 127
	codeNotExecutable = 126
)

// Spawner runs argument vectors as child processes with stdout and stderr
// inherited from the parent.
type Spawner struct {
	// OpenTTY redirects the child's standard input to the interactive
	// control device instead of the null device.
	OpenTTY bool
}

// New returns a Spawner. When openTTY is true the child reads its standard
// input from /dev/tty; otherwise it reads from the null device.
func New(openTTY bool) *Spawner {
	return &Spawner{OpenTTY: openTTY}
}

// Spawn starts argv and blocks until the child exits.
func (s *Spawner) Spawn(ctx context.Context, argv []string) (ports.Result, error) {
	stdinPath := os.DevNull
	if s.OpenTTY {
		stdinPath = ttyDevice
	}
	stdin, err := os.Open(stdinPath)
	if err != nil {
		return ports.Result{}, err
	}
	defer stdin.Close()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err = cmd.Run()
	if err == nil {
		return ports.Result{Exited: true, Code: 0}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.ProcessState.Exited() {
			return ports.Result{Exited: true, Code: exitErr.ProcessState.ExitCode()}, nil
		}
		// Terminated by signal.
		return ports.Result{Exited: false}, nil
	}

	// The child never ran. Report the status a forked child would have
	// exited with so the loop's classification applies uniformly.
	if errors.Is(err, exec.ErrNotFound) {
		return ports.Result{Exited: true, Code: codeNotFound}, nil
	}
	if errors.Is(err, os.ErrPermission) {
		return ports.Result{Exited: true, Code: codeNotExecutable}, nil
	}
	return ports.Result{}, err
}
