// Package store persists the simulated PMU between CLI invocations: the
// raw register file, the tracked active set, and the saved QoS snapshots
// live in one JSON state file under the home directory, keyed by board
// name so switching boards starts fresh.
package store
