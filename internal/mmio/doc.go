// Package mmio provides the register access backends for the power
// engine: a flat in-memory register bank with base-offset views (the
// simulated backend used by the CLI and tests), a behavioral PMU model
// that answers the hardware handshakes the sequencer drives, and a raw
// memory-mapped accessor for running against real hardware.
package mmio
