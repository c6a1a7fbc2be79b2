/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/foundry-forcecpu/pkg/cudaversion"
	fcerrors "github.com/NVIDIA/foundry-forcecpu/pkg/errors"
	"github.com/NVIDIA/foundry-forcecpu/pkg/header"
)

// sanitizeReport is the serialized sanitize output.
type sanitizeReport struct {
	header.Header `yaml:",inline"`

	Result cudaversion.Result `json:"result" yaml:"result"`
}

// maxStdinBytes bounds the sanitize input read from stdin. Driver version
// strings are tiny; anything larger is not a version string.
const maxStdinBytes = 1 << 20

func newSanitizeCmd() *cli.Command {
	return &cli.Command{
		Name:      "sanitize",
		Usage:     "Normalize a raw version string to a dotted-numeric form",
		ArgsUsage: "[raw-version]",
		Description: `Normalize an arbitrary version string into a dotted-numeric form that
survives strict version parsing. With no argument the raw value is read
from stdin. Empty input stays empty; unrecoverable input resolves to the
fallback version.`,
		Flags: []cli.Flag{
			formatFlag(),
			outputFlag(),
		},
		Action: runSanitize,
	}
}

func runSanitize(ctx context.Context, cmd *cli.Command) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	raw, err := sanitizeInput(cmd)
	if err != nil {
		return err
	}

	report := sanitizeReport{Result: cudaversion.Sanitize(raw)}
	report.Init(header.KindSanitizeResult, diagAPIVersion, version)

	w := serializerFor(format, cmd.String(outputFlagName))
	defer w.Close()

	if err := w.Serialize(ctx, report); err != nil {
		return fcerrors.Wrap(fcerrors.ErrCodeInternal, "failed to write result", err)
	}
	return nil
}

func sanitizeInput(cmd *cli.Command) (string, error) {
	args := cmd.Args()
	switch args.Len() {
	case 0:
		raw, err := io.ReadAll(io.LimitReader(os.Stdin, maxStdinBytes))
		if err != nil {
			return "", fcerrors.Wrap(fcerrors.ErrCodeInvalidRequest, "failed to read stdin", err)
		}
		return string(raw), nil
	case 1:
		return args.First(), nil
	default:
		return "", fmt.Errorf("expected at most one argument, got %d", args.Len())
	}
}
