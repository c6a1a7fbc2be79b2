/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/foundry-forcecpu/pkg/serializer"
)

const versionDefault = "dev"

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

const (
	outputFlagName = "output"
	formatFlagName = "format"
)

// diagAPIVersion is the schema version stamped on diagnostic output.
const diagAPIVersion = "cudaver/v1"

// Flag instances hold parse state, so every command gets its own copies.
func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    outputFlagName,
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    formatFlagName,
		Aliases: []string{"f"},
		Usage:   "Output format: json, yaml, table",
		Sources: cli.EnvVars("CUDAVER_FORMAT"),
		Value:   string(serializer.FormatTable),
	}
}

// parseOutputFormat validates the --format flag value.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format %q, supported: %v",
			f, serializer.SupportedFormats())
	}
	return f, nil
}

// serializerFor builds the output writer for a command, honoring the
// --output path when set.
func serializerFor(format serializer.Format, path string) *serializer.Writer {
	if path == "" {
		return serializer.NewStdoutWriter(format)
	}
	return serializer.NewFileWriterOrStdout(format, path)
}
