// Package commands implements the pmuctl subcommands. Every invocation
// rebuilds the simulated PMU from the persisted state file, runs one
// operation against the power manager, and persists the result, so
// power state and dependency tracking carry across invocations.
package commands
