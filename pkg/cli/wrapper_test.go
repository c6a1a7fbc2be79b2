/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWrapperCmdPassesArgumentsThrough(t *testing.T) {
	cmd := newWrapperCmd()

	if cmd.Name != wrapperName {
		t.Errorf("expected command name %q, got %q", wrapperName, cmd.Name)
	}
	if !cmd.SkipFlagParsing {
		t.Error("wrapper must skip flag parsing so arguments reach the wrapped CLI untouched")
	}
	if len(cmd.Flags) != 0 {
		t.Errorf("wrapper must define no flags of its own, got %d", len(cmd.Flags))
	}
}

func TestWrapperAppliesOverlayToChild(t *testing.T) {
	dir := t.TempDir()
	outFile := filepath.Join(dir, "env.txt")
	stub := filepath.Join(dir, "foundry-stub")

	script := "#!/bin/sh\n" +
		"echo \"$FOUNDRY_EXECUTION_PROVIDER $CUDA_VISIBLE_DEVICES $FOUNDRY_CUDA_VERSION_OVERRIDE\" > " + outFile + "\n"
	if err := os.WriteFile(stub, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvFoundryBin, stub)
	t.Setenv(EnvCudaVersionSource, "12.4\n")

	if err := newWrapperCmd().Run(context.Background(), []string{wrapperName, "model", "ls"}); err != nil {
		t.Fatalf("wrapper run failed: %v", err)
	}

	got, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("stub did not run: %v", err)
	}
	want := "CPUExecutionProvider -1 12.4"
	if strings.TrimSpace(string(got)) != want {
		t.Errorf("child environment = %q, want %q", strings.TrimSpace(string(got)), want)
	}
}

func TestWrapperMalformedVersionFallsBack(t *testing.T) {
	dir := t.TempDir()
	outFile := filepath.Join(dir, "env.txt")
	stub := filepath.Join(dir, "foundry-stub")

	script := "#!/bin/sh\n" +
		"echo \"$FOUNDRY_CUDA_VERSION_OVERRIDE $CUDA_VERSION\" > " + outFile + "\n"
	if err := os.WriteFile(stub, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvFoundryBin, stub)
	t.Setenv(EnvCudaVersionSource, "n/a")

	if err := newWrapperCmd().Run(context.Background(), []string{wrapperName, "ignored"}); err != nil {
		t.Fatalf("wrapper run failed: %v", err)
	}

	got, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("stub did not run: %v", err)
	}
	if strings.TrimSpace(string(got)) != "0.0.0 0.0.0" {
		t.Errorf("child environment = %q, want fallback in both override variables", strings.TrimSpace(string(got)))
	}
}
