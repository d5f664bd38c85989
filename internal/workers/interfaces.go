// Package workers runs the terminal client's background jobs.
//
// Every worker is started with a parent context and stopped explicitly;
// Stop blocks until the worker goroutine has exited.
package workers

import "context"

// Worker is a cancellable background job.
type Worker interface {
	// Start launches the job. A second Start replaces the running job.
	Start(ctx context.Context)

	// Stop cancels the job and waits for it. Stopping an idle worker is a
	// no-op.
	Stop()
}

// SessionChecker re-evaluates the stored credential. Implementations purge
// an expired credential and notify their observers as a side effect.
type SessionChecker interface {
	IsSessionValid(ctx context.Context) bool
}
