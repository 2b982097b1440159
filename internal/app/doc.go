// Package app wires application dependencies for the CLI.
//
// It resolves the board descriptor table, builds the simulated PMU and
// the power manager over it, and restores any persisted state from the
// home directory, exposing everything via the Wire struct for commands
// to use.
package app
