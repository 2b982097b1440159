// Package domain holds the core types of the power sequencing engine:
// power-domain identifiers, per-domain register descriptors, chip-level
// PMU layout, the register accessor contract, and the sentinel errors
// every component returns.
//
// The package is pure data and contracts. It never touches hardware and
// has no dependencies on the rest of the module.
package domain
