package domain

import "sort"

// PowerDomain identifies an independently power-gateable region of the
// chip. Values are board-scoped: the descriptor table of the selected
// chip variant defines which identifiers exist. The type is totally
// ordered so it can key ordered sets and maps.
type PowerDomain uint32

// Dependency is the power-ordering relation of a domain: at most one
// parent (which must be on before this domain powers on) and any number
// of children (which must all be off before this domain powers off).
type Dependency struct {
	Parent   *PowerDomain
	Children []PowerDomain
}

// Descriptor holds the per-domain register layout: bit masks and offsets
// for main power, status, memory-array power, bus-idle handshaking and
// memory repair, plus the QoS port base addresses and the optional
// dependency relation. Descriptors are immutable after table
// construction and shared read-only across all components.
//
// Mask conventions (matching the PMU hardware):
//   - power-control bit set   = domain powered off
//   - status bit set          = domain powered off
//   - repair-status bit set   = domain powered on (note the reversed polarity)
//   - idle bits all set       = bus interface idle
//
// A non-zero write-enable mask (PwrWMask, MemWMask, ReqWMask) selects the
// atomic set-style write convention: the upper half of the written value
// enables modification of the corresponding lower-half bits, and the
// hardware self-clears the enable bits after latching. A zero write-enable
// mask means plain read-modify-write.
type Descriptor struct {
	Name string

	PwrMask   uint32
	PwrWMask  uint32
	PwrOffset uint32 // added to the chip-level power-control offset

	StatusMask uint32

	MemMask   uint32
	MemWMask  uint32
	MemOffset uint32 // added to the chip-level memory-power offset

	RepairMask       uint32
	RepairOffset     uint32 // added to the chip-level repair-status offset
	RepairStatusMask uint32

	ReqMask   uint32
	ReqWMask  uint32
	ReqOffset uint32 // added to the chip-level idle-request offset
	IdleMask  uint32
	AckMask   uint32

	// QoSPorts are absolute bus addresses of the domain's QoS port
	// register blocks, one entry per port.
	QoSPorts []uint32

	ActiveWakeup  bool
	KeeponStartup bool
	AlwaysOn      bool

	Dep *Dependency
}

// HasMemory reports whether the domain has a gateable memory array.
func (d *Descriptor) HasMemory() bool { return d.MemMask != 0 }

// HasIdle reports whether the domain participates in the bus-idle handshake.
func (d *Descriptor) HasIdle() bool { return d.ReqMask != 0 }

// HasQoS reports whether the domain has QoS ports to preserve.
func (d *Descriptor) HasQoS() bool { return len(d.QoSPorts) > 0 }

// PmuInfo is the chip-level PMU register layout plus the full domain
// descriptor table of one board variant. It is loaded once at startup
// and never mutated.
type PmuInfo struct {
	Name string

	// Base is the absolute bus address of the PMU block. Register
	// accessors are built relative to it.
	Base uint32

	PwrOffset          uint32
	StatusOffset       uint32
	ReqOffset          uint32
	IdleOffset         uint32
	AckOffset          uint32
	MemPwrOffset       uint32
	ChainStatusOffset  uint32
	MemStatusOffset    uint32
	RepairStatusOffset uint32

	Domains map[PowerDomain]*Descriptor
}

// Domain looks up the descriptor for pd, or ErrDomainNotFound.
func (p *PmuInfo) Domain(pd PowerDomain) (*Descriptor, error) {
	d, ok := p.Domains[pd]
	if !ok {
		return nil, ErrDomainNotFound
	}
	return d, nil
}

// DomainByName resolves a descriptor by its table name, or ErrDomainNotFound.
func (p *PmuInfo) DomainByName(name string) (PowerDomain, *Descriptor, error) {
	for pd, d := range p.Domains {
		if d.Name == name {
			return pd, d, nil
		}
	}
	return 0, nil, ErrDomainNotFound
}

// SortedDomains returns the table's domain identifiers in ascending order.
func (p *PmuInfo) SortedDomains() []PowerDomain {
	out := make([]PowerDomain, 0, len(p.Domains))
	for pd := range p.Domains {
		out = append(out, pd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
