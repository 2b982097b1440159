// Package qos snapshots and restores the per-port bus QoS registers
// (priority, mode, bandwidth, saturation, extended control) that must
// survive a domain's power cycle.
package qos

import "rkpm/internal/domain"

// Register sub-offsets from each QoS port base, in save/restore order.
const (
	regPriority   = 0x08
	regMode       = 0x0c
	regBandwidth  = 0x10
	regSaturation = 0x14
	regExtControl = 0x18
)

const numRegs = 5

// MaxPorts is the hardware limit on QoS ports per domain.
const MaxPorts = 8

// Control preserves the QoS configuration of one domain's ports. The
// snapshot belongs to whoever owns the Control; the facade keeps one per
// domain so a save before power-off is visible to the restore after the
// next power-on.
type Control struct {
	bus     domain.RegisterAccessor
	ports   []uint32
	saved   [numRegs][MaxPorts]uint32
	isSaved bool
}

// New returns a controller for the given absolute port base addresses.
// The port list must be non-empty and at most MaxPorts long.
func New(bus domain.RegisterAccessor, ports []uint32) (*Control, error) {
	if len(ports) == 0 || len(ports) > MaxPorts {
		return nil, domain.ErrInvalidQoSConfig
	}
	return &Control{bus: bus, ports: ports}, nil
}

var regOrder = [numRegs]uint32{regPriority, regMode, regBandwidth, regSaturation, regExtControl}

// Save reads all five registers of every port into the snapshot and
// marks it valid. Reads have no hardware failure path.
func (c *Control) Save() error {
	for pi, base := range c.ports {
		for ri, off := range regOrder {
			c.saved[ri][pi] = c.bus.Read(base + off)
		}
	}
	c.isSaved = true
	return nil
}

// Restore writes the snapshot back to every port in the same register
// order. It fails with ErrQoSNotSaved when no save preceded it. Call
// only after the domain's main power is verified on.
func (c *Control) Restore() error {
	if !c.isSaved {
		return domain.ErrQoSNotSaved
	}
	for pi, base := range c.ports {
		for ri, off := range regOrder {
			c.bus.Write(base+off, c.saved[ri][pi])
		}
	}
	return nil
}

// Export copies the snapshot out as [register][port] rows in save
// order, or nil when nothing has been saved. Used by hosts that persist
// snapshots across process lifetimes.
func (c *Control) Export() [][]uint32 {
	if !c.isSaved {
		return nil
	}
	out := make([][]uint32, numRegs)
	for ri := range out {
		row := make([]uint32, len(c.ports))
		copy(row, c.saved[ri][:len(c.ports)])
		out[ri] = row
	}
	return out
}

// Import installs a previously exported snapshot and marks it valid. The
// shape must match this controller's port count.
func (c *Control) Import(vals [][]uint32) error {
	if len(vals) != numRegs {
		return domain.ErrInvalidQoSConfig
	}
	for ri, row := range vals {
		if len(row) != len(c.ports) {
			return domain.ErrInvalidQoSConfig
		}
		copy(c.saved[ri][:], row)
	}
	c.isSaved = true
	return nil
}

// Saved reports whether a snapshot has been taken.
func (c *Control) Saved() bool { return c.isSaved }

// Ports returns the number of QoS ports under this controller.
func (c *Control) Ports() int { return len(c.ports) }
