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

	"github.com/NVIDIA/foundry-forcecpu/pkg/logging"
)

const diagName = "cudaver"

func newDiagCmd() *cli.Command {
	return &cli.Command{
		Name:  diagName,
		Usage: "CUDA version string diagnostics",
		Description: `Inspect and sanitize driver version strings the way the CPU-forcing
wrapper does. Use "sanitize" to normalize an arbitrary string, "check" to
verify the sanitizer against a corpus of known-bad driver outputs, and
"probe" to read the live driver version from nvidia-smi.

# Examples

Sanitize a raw value:
  cudaver sanitize "12.0
  "

Read from stdin:
  nvidia-smi --query-gpu=driver_version --format=csv,noheader | cudaver sanitize

Probe the local driver as JSON:
  cudaver probe --format json`,
		Version: version,
		Commands: []*cli.Command{
			newSanitizeCmd(),
			newCheckCmd(),
			newProbeCmd(),
		},
	}
}

// ExecuteDiag runs the diagnostics command. It is called by the cudaver
// main and exits non-zero on any command error.
func ExecuteDiag() {
	logging.SetDefaultStructuredLogger(diagName, version)
	slog.Debug("starting",
		"name", diagName,
		"version", version,
		"commit", commit,
		"date", date)

	if err := newDiagCmd().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
