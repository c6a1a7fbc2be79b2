/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/foundry-forcecpu/pkg/cudaversion"
	fcerrors "github.com/NVIDIA/foundry-forcecpu/pkg/errors"
	"github.com/NVIDIA/foundry-forcecpu/pkg/header"
	strictversion "github.com/NVIDIA/foundry-forcecpu/pkg/version"
)

// checkSample is one raw driver output exercised by the check command.
type checkSample struct {
	Name string `json:"name" yaml:"name"`
	Raw  string `json:"raw" yaml:"raw"`
}

// checkCorpus holds raw driver version strings observed to crash strict
// version parsing, plus the clean forms that must survive unchanged.
var checkCorpus = []checkSample{
	{Name: "clean", Raw: "12.0"},
	{Name: "patch release", Raw: "12.0.1"},
	{Name: "trailing newline", Raw: "12.0\n"},
	{Name: "surrounding spaces", Raw: "  12.0  "},
	{Name: "surrounding tabs", Raw: "\t12.0\t"},
	{Name: "bare integer", Raw: "5"},
	{Name: "multiline", Raw: "5\n      7"},
	{Name: "crlf", Raw: "12.4\r\n"},
	{Name: "csv residue", Raw: "driver_version, 550.54.14"},
	{Name: "not applicable", Raw: "n/a"},
	{Name: "empty", Raw: ""},
	{Name: "whitespace only", Raw: " \n\t "},
	{Name: "unicode noise", Raw: "версия 12.2"},
}

// checkResult is the verdict for one corpus sample.
type checkResult struct {
	checkSample `yaml:",inline"`

	Sanitized cudaversion.Result `json:"sanitized" yaml:"sanitized"`
	OK        bool               `json:"ok" yaml:"ok"`
}

// checkReport is the full check output.
type checkReport struct {
	header.Header `yaml:",inline"`

	Results []checkResult `json:"results" yaml:"results"`
	Passed  int           `json:"passed" yaml:"passed"`
	Failed  int           `json:"failed" yaml:"failed"`
}

func newCheckCmd() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Verify the sanitizer against known-bad driver outputs",
		Description: `Run the sanitizer over a built-in corpus of driver version strings that
have crashed strict version parsing in the wild, and verify every result
is either empty or a well-formed dotted-numeric version. Exits non-zero
when any sample violates that guarantee.`,
		Flags: []cli.Flag{
			formatFlag(),
			outputFlag(),
		},
		Action: runCheck,
	}
}

func runCheck(ctx context.Context, cmd *cli.Command) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	report := runCorpus(checkCorpus)

	w := serializerFor(format, cmd.String(outputFlagName))
	defer w.Close()

	if err := w.Serialize(ctx, report); err != nil {
		return fcerrors.Wrap(fcerrors.ErrCodeInternal, "failed to write report", err)
	}

	if report.Failed > 0 {
		return fcerrors.New(fcerrors.ErrCodeInternal, "sanitizer guarantee violated")
	}
	return nil
}

func runCorpus(samples []checkSample) checkReport {
	report := checkReport{
		Results: make([]checkResult, 0, len(samples)),
	}
	report.Init(header.KindCheckReport, diagAPIVersion, version)
	for _, s := range samples {
		res := cudaversion.Sanitize(s.Raw)
		ok := sampleOK(s.Raw, res)
		if ok {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Results = append(report.Results, checkResult{
			checkSample: s,
			Sanitized:   res,
			OK:          ok,
		})
	}
	return report
}

// sampleOK enforces the sanitizer guarantee: only empty input yields an
// empty value, everything else must be well-formed and survive the
// strict parse the wrapped runtime applies to version strings.
func sampleOK(raw string, res cudaversion.Result) bool {
	if raw == "" {
		return res.Value == "" && res.Source == cudaversion.SourceEmpty
	}
	if !cudaversion.IsWellFormed(res.Value) {
		return false
	}
	_, err := strictversion.Parse(res.Value)
	return err == nil
}
