package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Exit codes for different failure modes
const (
	ExitSuccess      = 0 // All checks passed
	ExitChecksFailed = 1 // One or more checks failed
	ExitUsage        = 2 // Invalid flags or arguments
)

// ChecksFailedError indicates that the suite ran to completion but one or
// more checks failed. The report has already been printed.
type ChecksFailedError struct {
	Failed int
}

func (e *ChecksFailedError) Error() string {
	return fmt.Sprintf("%d check(s) failed", e.Failed)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := execute(ctx)
	stop()

	os.Exit(exitCode(err))
}

// exitCode maps the result of a run to the process exit status, printing
// anything that is not a check failure.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var failed *ChecksFailedError
	if errors.As(err, &failed) {
		return ExitChecksFailed
	}

	fmt.Fprintln(os.Stderr, err)
	return ExitUsage
}
