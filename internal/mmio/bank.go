package mmio

import "rkpm/internal/domain"

// Bank is a flat 32-bit register file keyed by absolute bus address.
// Unwritten words read as zero. A Bank on its own has no behavior: writes
// are stored verbatim, which also makes it the "hardware never responds"
// backend for timeout tests.
type Bank struct {
	regs map[uint32]uint32
}

func NewBank() *Bank {
	return &Bank{regs: make(map[uint32]uint32)}
}

func (b *Bank) Read32(addr uint32) uint32 { return b.regs[addr] }

func (b *Bank) Write32(addr, v uint32) { b.regs[addr] = v }

// Snapshot copies the current register contents, for persistence.
func (b *Bank) Snapshot() map[uint32]uint32 {
	out := make(map[uint32]uint32, len(b.regs))
	for a, v := range b.regs {
		out[a] = v
	}
	return out
}

// Load replaces the register contents with a previously taken snapshot.
func (b *Bank) Load(regs map[uint32]uint32) {
	b.regs = make(map[uint32]uint32, len(regs))
	for a, v := range regs {
		b.regs[a] = v
	}
}

// View returns an accessor whose offsets are relative to base. Barrier is
// a no-op: the bank is sequentially consistent by construction.
func (b *Bank) View(base uint32) domain.RegisterAccessor {
	return &view{bank: b, base: base}
}

type view struct {
	bank *Bank
	base uint32
}

var _ domain.RegisterAccessor = (*view)(nil)

func (v *view) Read(off uint32) uint32 { return v.bank.Read32(v.base + off) }

func (v *view) Write(off uint32, val uint32) { v.bank.Write32(v.base+off, val) }

func (v *view) Barrier() {}
