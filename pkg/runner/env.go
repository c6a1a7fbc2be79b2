/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package runner

import (
	"sort"
	"strings"

	"github.com/NVIDIA/foundry-forcecpu/pkg/cudaversion"
)

// Environment variables the Foundry Local runtime honors. The names are
// part of the wrapped CLI's contract and must stay stable.
const (
	// EnvExecutionProvider selects the ONNX execution backend.
	EnvExecutionProvider = "FOUNDRY_EXECUTION_PROVIDER"
	// EnvVisibleDevices is the standard CUDA device visibility list;
	// "-1" hides every accelerator.
	EnvVisibleDevices = "CUDA_VISIBLE_DEVICES"
	// EnvSkipCudaCheck short-circuits the runtime's CUDA capability probe.
	EnvSkipCudaCheck = "FOUNDRY_SKIP_CUDA_CHECK"
	// EnvCudaVersionOverride replaces whatever the probe would have parsed.
	EnvCudaVersionOverride = "FOUNDRY_CUDA_VERSION_OVERRIDE"
	// EnvCudaVersion is consulted by older runtime builds.
	EnvCudaVersion = "CUDA_VERSION"
)

// cpuProvider is the backend value that avoids the accelerator probe
// entirely.
const cpuProvider = "CPUExecutionProvider"

// CPUOverlay builds the environment overlay that forces the Foundry Local
// runtime onto the CPU-only execution path. The map is constructed fresh
// per invocation and merged with the inherited environment at spawn time;
// the process-global environment is never mutated.
//
// The version argument feeds the CUDA version override and must be a valid
// dotted-numeric version; anything else is replaced with the sanitizer
// fallback so the overlay can never reintroduce the malformed-version
// crash it exists to prevent.
func CPUOverlay(version string) map[string]string {
	if !cudaversion.IsWellFormed(version) {
		version = cudaversion.Fallback
	}
	return map[string]string{
		EnvExecutionProvider:   cpuProvider,
		EnvVisibleDevices:      "-1",
		EnvSkipCudaCheck:       "1",
		EnvCudaVersionOverride: version,
		EnvCudaVersion:         version,
	}
}

// MergeEnviron merges an overlay into a base environment in the
// "KEY=value" form used by os/exec. Overlay entries override base entries
// with the same key; everything else is inherited untouched. Overlay keys
// absent from the base are appended in sorted order for deterministic
// child environments.
func MergeEnviron(base []string, overlay map[string]string) []string {
	merged := make([]string, 0, len(base)+len(overlay))
	applied := make(map[string]bool, len(overlay))

	for _, kv := range base {
		key, _, ok := strings.Cut(kv, "=")
		if ok {
			if v, hit := overlay[key]; hit {
				merged = append(merged, key+"="+v)
				applied[key] = true
				continue
			}
		}
		merged = append(merged, kv)
	}

	missing := make([]string, 0, len(overlay))
	for key := range overlay {
		if !applied[key] {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	for _, key := range missing {
		merged = append(merged, key+"="+overlay[key])
	}

	return merged
}
