/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"testing"

	"github.com/NVIDIA/foundry-forcecpu/pkg/cudaversion"
)

func TestRunCorpusAllSamplesPass(t *testing.T) {
	report := runCorpus(checkCorpus)

	if report.Failed != 0 {
		t.Errorf("expected zero failures, got %d", report.Failed)
	}
	if report.Passed != len(checkCorpus) {
		t.Errorf("expected %d passes, got %d", len(checkCorpus), report.Passed)
	}
	for _, r := range report.Results {
		if !r.OK {
			t.Errorf("sample %q failed: raw %q sanitized to %q", r.Name, r.Raw, r.Sanitized.Value)
		}
	}
}

func TestRunCorpusFlagsViolations(t *testing.T) {
	// A synthetic result that breaks the guarantee gets counted as failed.
	report := runCorpus([]checkSample{{Name: "clean", Raw: "12.0"}})
	if report.Failed != 0 {
		t.Fatalf("clean sample should pass, got %d failures", report.Failed)
	}

	if sampleOK("n/a", cudaversion.Result{Value: "n/a", Source: cudaversion.SourceExtracted}) {
		t.Error("malformed sanitized value should not pass the guarantee")
	}
	if sampleOK("", cudaversion.Result{Value: "0.0.0", Source: cudaversion.SourceFallback}) {
		t.Error("empty input must stay empty, not fall back")
	}
}

func TestCheckCmd(t *testing.T) {
	cmd := newCheckCmd()

	if cmd.Name != "check" {
		t.Errorf("expected command name 'check', got %q", cmd.Name)
	}

	flagNames := make(map[string]bool)
	for _, flag := range cmd.Flags {
		for _, name := range flag.Names() {
			flagNames[name] = true
		}
	}
	for _, flag := range []string{"format", "f", "output", "o"} {
		if !flagNames[flag] {
			t.Errorf("expected flag %q to be defined", flag)
		}
	}
}
