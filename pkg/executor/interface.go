package executor

import "context"

// Executor defines the interface for running external commands
type Executor interface {
	// Execute runs a command, waits for it and returns captured stdout.
	Execute(ctx context.Context, name string, args ...string) (string, error)
	// Start launches a command detached, without waiting for it to finish.
	Start(dir string, name string, args ...string) error
}
