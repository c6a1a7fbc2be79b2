/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/foundry-forcecpu/pkg/defaults"
	fcerrors "github.com/NVIDIA/foundry-forcecpu/pkg/errors"
	"github.com/NVIDIA/foundry-forcecpu/pkg/header"
	"github.com/NVIDIA/foundry-forcecpu/pkg/probe"
)

const probeBinFlagName = "bin"

// probeReport is the serialized probe output.
type probeReport struct {
	header.Header `yaml:",inline"`
	probe.Result  `yaml:",inline"`
}

func newProbeCmd() *cli.Command {
	return &cli.Command{
		Name:  "probe",
		Usage: "Read and sanitize the live driver version",
		Description: `Query the local driver version through nvidia-smi and show both the raw
output and its sanitized form. A missing probe executable reports
available=false rather than failing.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  probeBinFlagName,
				Usage: "Probe executable name",
				Value: probe.DefaultBin,
			},
			formatFlag(),
			outputFlag(),
		},
		Action: runProbe,
	}
}

func runProbe(ctx context.Context, cmd *cli.Command) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	probeCtx, cancel := context.WithTimeout(ctx, defaults.ProbeTimeout)
	defer cancel()

	p := &probe.Prober{Bin: cmd.String(probeBinFlagName)}
	res, err := p.Probe(probeCtx)
	if err != nil {
		return fcerrors.Wrap(fcerrors.ErrCodeInternal, "driver probe failed", err)
	}

	report := probeReport{Result: res}
	report.Init(header.KindProbeResult, diagAPIVersion, version)

	w := serializerFor(format, cmd.String(outputFlagName))
	defer w.Close()

	if err := w.Serialize(ctx, report); err != nil {
		return fcerrors.Wrap(fcerrors.ErrCodeInternal, "failed to write result", err)
	}
	return nil
}
