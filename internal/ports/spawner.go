package ports

import "context"

// Result describes how a child process ended.
type Result struct {
	// Exited is true for a normal exit and false for termination by signal.
	Exited bool

	// Code is the exit status. Meaningful only when Exited is true.
	Code int
}

// Spawner runs one assembled argument vector to completion.
// Implementations decide where the child's standard input comes from;
// standard output and error are inherited from the parent.
type Spawner interface {
	// Spawn starts argv[0] with arguments argv[1:] and blocks until the
	// child exits. A non-nil error means the child could not be observed at
	// all; launch failures (not found, not executable) are reported through
	// Result instead, matching the exit codes a forked child would produce.
	Spawn(ctx context.Context, argv []string) (Result, error)
}
