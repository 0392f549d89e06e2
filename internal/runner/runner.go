// Package runner executes the wrapped build command and feeds its standard
// output through the rewrite pipeline. Standard error is not touched: it
// goes straight to the wrapper's own stderr so diagnostics keep their
// ordering guarantees with the terminal.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"time"

	"github.com/dkoosis/makefmt/pkg/stream"
)

// signalTimeout is how long a forwarded signal gets before the process
// group is killed outright.
const signalTimeout = 2 * time.Second

// ErrInterrupted is returned when the wrapped command was torn down by a
// forwarded signal rather than finishing on its own.
var ErrInterrupted = errors.New("interrupted by signal")

// Run starts command with args, pipes its stdout through sink, and blocks
// until the command exits and the stream is drained.
//
// The returned int is the exit code to propagate: the command's own code
// when it ran, 127 when the command was not found, 1 for other failures.
// err is nil whenever the command itself ran to completion, even with a
// non-zero code; a non-zero code is the build failing, not the wrapper.
//
// SIGINT and SIGTERM are forwarded to the command's process group, a short
// notice is written to stderr, and ErrInterrupted is returned once the
// process is gone.
func Run(ctx context.Context, command string, args []string, sink *stream.Pipeline, stderr io.Writer) (int, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Env = os.Environ()
	cmd.Stderr = stderr
	setProcessGroup(cmd)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return 1, fmt.Errorf("connecting to %s output: %w", command, err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, getInterruptSignals()...)
	defer signal.Stop(sigChan)

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return 127, fmt.Errorf("starting %s: %w", command, err)
		}
		return 1, fmt.Errorf("starting %s: %w", command, err)
	}

	cmdDone := make(chan struct{})
	interrupted := make(chan struct{}, 1)
	go func() {
		select {
		case sig := <-sigChan:
			fmt.Fprintf(stderr, " [signal] %v sent to makefmt\n", sig)
			interrupted <- struct{}{}
			_ = killProcessGroup(cmd, sig)
			select {
			case <-cmdDone:
			case <-time.After(signalTimeout):
				_ = killProcessGroupWithSIGKILL(cmd)
			}
		case <-ctx.Done():
			_ = killProcessGroupWithSIGKILL(cmd)
		case <-cmdDone:
		}
	}()

	// Drain stdout fully before Wait; Wait closes the pipe.
	streamErr := sink.Run(stdout)
	waitErr := cmd.Wait()
	close(cmdDone)

	select {
	case <-interrupted:
		return 1, ErrInterrupted
	default:
	}

	if streamErr != nil {
		return 1, streamErr
	}
	return exitStatus(waitErr)
}

// exitStatus maps cmd.Wait's error into (code, err) per Run's contract.
func exitStatus(waitErr error) (int, error) {
	if waitErr == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		if code, ok := getExitCodeFromError(exitErr); ok && code >= 0 {
			return code, nil
		}
		// Killed by a signal; no meaningful code of its own.
		return 1, nil
	}
	return 1, waitErr
}
