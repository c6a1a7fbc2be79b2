/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	fcerrors "github.com/NVIDIA/foundry-forcecpu/pkg/errors"
)

const (
	// DefaultBin is the wrapped executable, resolved via PATH.
	DefaultBin = "foundry"

	// ExitSpawnFailure is returned when the wrapper itself cannot start
	// the child. Child exit codes are propagated as-is.
	ExitSpawnFailure = 1

	// maxLineBytes bounds a single relayed output line.
	maxLineBytes = 1024 * 1024
)

// DefaultArgs is the subcommand used when the caller supplies no
// arguments: list the models available to the runtime.
var DefaultArgs = []string{"model", "ls"}

// Runner spawns the wrapped CLI with an environment overlay and relays its
// output live. The zero value wraps "foundry" with no overlay, writing to
// the process stdout/stderr.
type Runner struct {
	// Bin is the target executable name. Defaults to DefaultBin.
	Bin string
	// Overlay is merged over the inherited environment before spawn.
	Overlay map[string]string
	// Stdout and Stderr receive the child's output streams line by line.
	// They default to os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the wrapped CLI with the given arguments and blocks until
// it exits. The child's stdin is not attached; its stdout and stderr are
// relayed concurrently, each preserving its own line order.
//
// The returned code is the child's exit code on any completed run (a
// non-zero child exit is pass-through, not a wrapper error; a child
// killed by a signal maps to 128+signal), or ExitSpawnFailure with a
// non-nil error when the child could not be started at all.
func (r *Runner) Run(ctx context.Context, args []string) (int, error) {
	if len(args) == 0 {
		args = DefaultArgs
	}
	bin := r.Bin
	if bin == "" {
		bin = DefaultBin
	}
	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	log := slog.With("run", uuid.New().String(), "bin", bin)

	path, err := exec.LookPath(bin)
	if err != nil {
		runsTotal.WithLabelValues("not_found").Inc()
		return ExitSpawnFailure, fcerrors.Wrap(fcerrors.ErrCodeNotFound,
			fmt.Sprintf("%s not found in PATH", bin), err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Env = MergeEnviron(os.Environ(), r.Overlay)
	cmd.Stdin = nil

	outPipe, err := cmd.StdoutPipe()
	if err != nil {
		runsTotal.WithLabelValues("spawn_error").Inc()
		return ExitSpawnFailure, fcerrors.Wrap(fcerrors.ErrCodeSpawnFailed,
			"failed to open stdout pipe", err)
	}
	errPipe, err := cmd.StderrPipe()
	if err != nil {
		runsTotal.WithLabelValues("spawn_error").Inc()
		return ExitSpawnFailure, fcerrors.Wrap(fcerrors.ErrCodeSpawnFailed,
			"failed to open stderr pipe", err)
	}

	log.Debug("starting child", "path", path, "args", args)
	start := time.Now()

	if err := cmd.Start(); err != nil {
		runsTotal.WithLabelValues("spawn_error").Inc()
		return ExitSpawnFailure, fcerrors.Wrap(fcerrors.ErrCodeSpawnFailed,
			fmt.Sprintf("failed to start %s", bin), err)
	}

	// One relay per stream; each runs until its pipe closes. Cross-stream
	// ordering is unspecified, per-stream ordering is preserved.
	g := new(errgroup.Group)
	g.Go(func() error { return relayLines(outPipe, stdout) })
	g.Go(func() error { return relayLines(errPipe, stderr) })

	// Pipes must be drained before Wait closes them.
	relayErr := g.Wait()
	waitErr := cmd.Wait()

	childDuration.Observe(time.Since(start).Seconds())

	if relayErr != nil {
		log.Warn("output relay interrupted", "error", relayErr)
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			code := exitCode(exitErr)
			runsTotal.WithLabelValues("child_failure").Inc()
			log.Debug("child exited non-zero", "code", code)
			return code, nil
		}
		runsTotal.WithLabelValues("spawn_error").Inc()
		return ExitSpawnFailure, fcerrors.Wrap(fcerrors.ErrCodeSpawnFailed,
			fmt.Sprintf("%s did not run to completion", bin), waitErr)
	}

	runsTotal.WithLabelValues("success").Inc()
	log.Debug("child exited", "code", 0, "duration", time.Since(start))
	return 0, nil
}

// exitCode maps a child's exit state to a shell-style code: the child's
// own code for a normal exit, 128+signal when the child was killed by a
// signal (ExitCode reports -1 there, which os.Exit would turn into 255).
func exitCode(exitErr *exec.ExitError) int {
	code := exitErr.ExitCode()
	if code < 0 {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return 128 + int(ws.Signal())
		}
	}
	return code
}

// relayLines forwards src to dst one line at a time until src closes.
// On a scanner error the remainder of the stream is still drained, so a
// child that overruns maxLineBytes cannot block on a full pipe and stall
// Wait.
func relayLines(src io.Reader, dst io.Writer) error {
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		if _, err := fmt.Fprintln(dst, scanner.Text()); err != nil {
			_, _ = io.Copy(io.Discard, src)
			return fmt.Errorf("failed to forward output line: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		_, _ = io.Copy(io.Discard, src)
		return fmt.Errorf("failed to read child output: %w", err)
	}
	return nil
}
