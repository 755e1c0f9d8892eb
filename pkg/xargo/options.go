package xargo

import (
	"io"
	"os"

	"github.com/bft-labs/xargo/internal/ports"
	"github.com/bft-labs/xargo/pkg/log"
)

// Logger is the structured logging interface consumed by the run loop.
type Logger = log.Logger

// Spawner runs one assembled argument vector to completion.
// The default implementation uses os/exec with stdout/stderr inherited.
type Spawner = ports.Spawner

// Result describes how a child process ended.
type Result = ports.Result

// Confirmer gates each batch behind a yes/no decision.
// The default implementation lazily opens /dev/tty.
type Confirmer = ports.Confirmer

// Option configures optional behavior of a Runner.
type Option func(*options)

// options holds the optional wiring for a Runner.
type options struct {
	input     io.Reader
	diag      io.Writer
	logger    ports.Logger
	spawner   ports.Spawner
	confirmer ports.Confirmer
}

// defaultOptions returns options with process-level defaults.
func defaultOptions() options {
	return options{
		input:  os.Stdin,
		diag:   os.Stderr,
		logger: log.NewNoopLogger(),
	}
}

// WithInput sets the stream tokens are read from. Defaults to os.Stdin.
func WithInput(r io.Reader) Option {
	return func(o *options) {
		o.input = r
	}
}

// WithDiag sets the diagnostic stream that traced command lines and prompts
// are written to. Defaults to os.Stderr.
func WithDiag(w io.Writer) Option {
	return func(o *options) {
		o.diag = w
	}
}

// WithLogger sets a custom logger. If not provided, a no-op logger is used.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSpawner replaces the process-spawning implementation. Mostly useful for
// tests and embedders that need to intercept invocations.
func WithSpawner(s Spawner) Option {
	return func(o *options) {
		o.spawner = s
	}
}

// WithConfirmer replaces the interactive confirmation source used by Prompt.
func WithConfirmer(c Confirmer) Option {
	return func(o *options) {
		o.confirmer = c
	}
}
