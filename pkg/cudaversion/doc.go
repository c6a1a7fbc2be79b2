// Package cudaversion sanitizes CUDA version strings reported by hardware
// probes before they reach the Foundry Local runtime.
//
// # Overview
//
// The Foundry Local CLI crashes when the driver probe returns a malformed
// version string (embedded newlines, interior whitespace, trailing junk, or
// nothing at all). Sanitize is the single entry point: a total function
// that maps any input to a well-formed dotted-numeric version, the empty
// string (for empty input), or the fixed "0.0.0" fallback. It never
// returns an error; degradation is signaled through the Result.Source tag
// and debug-level trace logs only.
//
// # Resolution order
//
//  1. Empty input returns an empty value (meaning "no version available").
//  2. The first contiguous dotted-numeric run is extracted; a bare integer
//     gets ".0" appended to force major.minor shape. The run stops at the
//     first non-digit, non-dot character, so digit groups split by interior
//     whitespace are deliberately not merged.
//  3. Failing that, the whole input is retried with all whitespace removed.
//  4. Failing that, the Fallback constant "0.0.0" is returned.
//
// # Usage
//
//	res := cudaversion.Sanitize(rawProbeOutput)
//	overlay := runner.CPUOverlay(res.OrFallback())
//
// Every value produced satisfies ^$|^0\.0\.0$|^\d+(\.\d+)+$ and
// re-sanitizing a clean value returns it unchanged.
package cudaversion
