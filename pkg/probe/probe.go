/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package probe reads the accelerator driver version the same way the
// wrapped runtime's hardware probe does, so its raw output can be
// inspected next to the sanitized value.
package probe

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/NVIDIA/foundry-forcecpu/pkg/cudaversion"
)

// DefaultBin is the probe executable, resolved via PATH.
const DefaultBin = "nvidia-smi"

// Result pairs the raw probe output with its sanitized form.
type Result struct {
	// Available reports whether the probe executable was found at all.
	Available bool   `json:"available" yaml:"available"`
	Raw       string `json:"raw,omitempty" yaml:"raw,omitempty"`
	// Version is the sanitized form of Raw; empty-sourced when the probe
	// executable is absent.
	Version cudaversion.Result `json:"version" yaml:"version"`
}

// Prober queries the driver version through an external SMI tool.
type Prober struct {
	// Bin overrides the probe executable name. Defaults to DefaultBin.
	Bin string
}

// Probe runs the driver version query. A missing probe executable is a
// designed outcome (Available=false), not an error; only a present but
// failing executable produces one.
func (p *Prober) Probe(ctx context.Context) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	bin := p.Bin
	if bin == "" {
		bin = DefaultBin
	}

	path, err := exec.LookPath(bin)
	if err != nil {
		slog.Debug("probe executable not found", "bin", bin)
		return Result{Available: false, Version: cudaversion.Sanitize("")}, nil
	}

	cmd := exec.CommandContext(ctx, path, "--query-gpu=driver_version", "--format=csv,noheader")
	output, err := cmd.Output()
	if err != nil {
		return Result{}, fmt.Errorf("failed to execute %s: %w", bin, err)
	}

	raw := string(output)
	res := Result{
		Available: true,
		Raw:       raw,
		Version:   cudaversion.Sanitize(raw),
	}
	slog.Debug("probed driver version", "raw", raw, "sanitized", res.Version.Value)
	return res, nil
}
