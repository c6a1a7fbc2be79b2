/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/foundry-forcecpu/pkg/cudaversion"
	"github.com/NVIDIA/foundry-forcecpu/pkg/logging"
	"github.com/NVIDIA/foundry-forcecpu/pkg/runner"
)

const wrapperName = "foundry-forcecpu"

// Environment knobs for the wrapper. It deliberately has no flags of its
// own: every argument on the command line passes through to the wrapped
// CLI untouched.
const (
	// EnvFoundryBin overrides the wrapped executable name.
	EnvFoundryBin = "FOUNDRY_BIN"
	// EnvCudaVersionSource supplies a raw version string to sanitize into
	// the overlay's CUDA version override. Unset or unrecoverable input
	// resolves to the sanitizer fallback.
	EnvCudaVersionSource = "FOUNDRY_CPU_CUDA_VERSION"
)

func newWrapperCmd() *cli.Command {
	return &cli.Command{
		Name:  wrapperName,
		Usage: "Run the Foundry Local CLI in CPU-only mode",
		Description: `Run the Foundry Local CLI with an environment overlay that forces the
CPU execution provider, hides all CUDA devices, and pins the CUDA version
override to a well-formed value. This works around the runtime crash on
malformed version strings during hardware-acceleration detection.

All arguments pass through to the wrapped CLI unmodified; with no
arguments the wrapper runs "model ls". The wrapper exits with the child's
exit code, or 1 when the child cannot be started.

# Environment Variables

  FOUNDRY_BIN              Wrapped executable name (default: foundry)
  FOUNDRY_CPU_CUDA_VERSION Raw version sanitized into the overlay
  LOG_LEVEL                Logging verbosity (debug, info, warn, error)

# Examples

List models on the CPU-only path:
  foundry-forcecpu

Forward a chat invocation:
  foundry-forcecpu model run phi-3.5-mini`,
		Version:         version,
		SkipFlagParsing: true,
		Action:          runWrapper,
	}
}

func runWrapper(ctx context.Context, cmd *cli.Command) error {
	ver := cudaversion.Sanitize(os.Getenv(EnvCudaVersionSource)).OrFallback()

	r := &runner.Runner{
		Bin:     os.Getenv(EnvFoundryBin),
		Overlay: runner.CPUOverlay(ver),
	}

	code, err := r.Run(ctx, cmd.Args().Slice())
	if err != nil {
		return err
	}
	if code != 0 {
		// Child failure: propagate the code without treating it as a
		// wrapper error. Nothing to flush; relays have drained.
		os.Exit(code)
	}
	return nil
}

// ExecuteWrapper runs the pass-through wrapper command. It is called by
// the foundry-forcecpu main and does not return on child failure.
func ExecuteWrapper() {
	logging.SetDefaultStructuredLogger(wrapperName, version)
	slog.Debug("starting",
		"name", wrapperName,
		"version", version,
		"commit", commit,
		"date", date)

	if err := newWrapperCmd().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(runner.ExitSpawnFailure)
	}
}
