// Package variants holds the per-chip PMU descriptor tables: which power
// domains exist, their register masks and offsets, QoS port addresses,
// and dependency relations. Tables are built once and never mutated.
//
// Built-in variants cover rk3568 and rk3588; custom boards load from a
// YAML file with the same schema.
package variants

import (
	"fmt"

	"rkpm/internal/domain"
)

// Lookup resolves a built-in board table by name.
func Lookup(name string) (*domain.PmuInfo, error) {
	switch name {
	case "rk3568":
		return RK3568(), nil
	case "rk3588":
		return RK3588(), nil
	}
	return nil, fmt.Errorf("unknown board %q (have %v)", name, Boards())
}

// Boards lists the built-in board names.
func Boards() []string { return []string{"rk3568", "rk3588"} }

func bit(n uint) uint32 { return 1 << n }

// domainM builds a descriptor in the simple layout used by chips like
// the rk3568: power and idle-request registers use the write-enable
// convention, all masks live in shared chip-wide registers.
func domainM(name string, pwr, status, req, idle, ack uint32, wakeup, keepon bool) *domain.Descriptor {
	return &domain.Descriptor{
		Name:          name,
		PwrMask:       pwr,
		PwrWMask:      pwr << 16,
		StatusMask:    status,
		ReqMask:       req,
		ReqWMask:      req << 16,
		IdleMask:      idle,
		AckMask:       ack,
		ActiveWakeup:  wakeup,
		KeeponStartup: keepon,
	}
}

// domainMOR builds a descriptor in the extended layout used by chips
// like the rk3588: per-domain register offsets plus memory-array power
// and repair-status signals.
func domainMOR(name string, pwrOffset uint32, pwr, status uint32, memOffset uint32, mem, repairStatus uint32,
	reqOffset uint32, req, idle uint32, wakeup bool) *domain.Descriptor {
	return &domain.Descriptor{
		Name:             name,
		PwrOffset:        pwrOffset,
		PwrMask:          pwr,
		PwrWMask:         pwr << 16,
		StatusMask:       status,
		MemOffset:        memOffset,
		MemMask:          mem,
		RepairStatusMask: repairStatus,
		ReqOffset:        reqOffset,
		ReqMask:          req,
		ReqWMask:         req << 16,
		IdleMask:         idle,
		AckMask:          idle,
		ActiveWakeup:     wakeup,
	}
}

func withQoS(d *domain.Descriptor, ports ...uint32) *domain.Descriptor {
	d.QoSPorts = ports
	return d
}

func withParent(d *domain.Descriptor, parent domain.PowerDomain) *domain.Descriptor {
	p := parent
	d.Dep = &domain.Dependency{Parent: &p}
	return d
}

func withChildren(d *domain.Descriptor, children ...domain.PowerDomain) *domain.Descriptor {
	d.Dep = &domain.Dependency{Children: children}
	return d
}
