/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package cli defines the command surfaces of the two binaries:
//
//   - foundry-forcecpu, the pass-through wrapper that runs the Foundry
//     Local CLI with a CPU-forcing environment overlay, and
//   - cudaver, the version-string diagnostics tool (sanitize, check,
//     probe).
//
// The wrapper skips flag parsing entirely so every argument reaches the
// wrapped CLI untouched; it is configured through environment variables
// only. The diagnostics tool carries the conventional flag surface with
// json, yaml, and table output.
package cli
