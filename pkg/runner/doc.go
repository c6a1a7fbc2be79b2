// Package runner spawns the Foundry Local CLI with a CPU-only environment
// overlay and relays its output live.
//
// The overlay (CPUOverlay) forces the CPU execution provider, hides all
// CUDA devices, skips the runtime's accelerator capability probe, and pins
// the CUDA version override to a well-formed value, which together work
// around the runtime's crash on malformed version strings. The overlay is
// an immutable map built per invocation; the wrapper never mutates its own
// process environment.
//
// Runner.Run is a single-shot call: {NotStarted -> Running -> Exited} or
// {NotStarted -> FailedToStart}, no retries, no internal timeout. The
// child's exit code is propagated; only spawn-level failures are wrapper
// errors.
package runner
