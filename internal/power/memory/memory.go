// Package memory powers a domain's retained memory array on and off and
// waits for it to stabilize. Domains without a memory array (zero memory
// mask) pass through as no-ops.
package memory

import "rkpm/internal/domain"

// DefaultStableBudget is the polling iteration bound for memory power
// stabilization.
const DefaultStableBudget = 10000

// Control drives the memory-power registers of the PMU block.
type Control struct {
	reg          domain.RegisterAccessor
	memPwrOffset uint32
	budget       int
}

// New returns a controller over reg, with memPwrOffset the chip-level
// base of the memory-power register group. A budget <= 0 selects
// DefaultStableBudget.
func New(reg domain.RegisterAccessor, memPwrOffset uint32, budget int) *Control {
	if budget <= 0 {
		budget = DefaultStableBudget
	}
	return &Control{reg: reg, memPwrOffset: memPwrOffset, budget: budget}
}

// SetPower switches the domain's memory array on or off. With a
// write-enable mask the update is a single atomic write (the hardware
// self-clears the enable half after latching); otherwise read-modify-
// write. A full barrier follows the write.
func (c *Control) SetPower(d *domain.Descriptor, on bool) error {
	if d.MemMask == 0 {
		return nil
	}

	off := c.memPwrOffset + d.MemOffset
	if d.MemWMask != 0 {
		v := d.MemWMask
		if !on {
			v = d.MemMask | d.MemWMask
		}
		c.reg.Write(off, v)
	} else {
		cur := c.reg.Read(off)
		if on {
			cur &^= d.MemMask
		} else {
			cur |= d.MemMask
		}
		c.reg.Write(off, cur)
	}

	c.reg.Barrier()
	return nil
}

// WaitStable polls the repair-status register until the domain's memory
// reads as expectedOn (repair-status bit set means on), bounded by the
// iteration budget. Domains with no repair-status signal succeed
// immediately: there is nothing observable to poll.
func (c *Control) WaitStable(d *domain.Descriptor, expectedOn bool, repairStatusOffset uint32) error {
	if d.RepairStatusMask == 0 {
		return nil
	}

	for i := 0; i < c.budget; i++ {
		v := c.reg.Read(repairStatusOffset)
		if (v&d.RepairStatusMask != 0) == expectedOn {
			return nil
		}
	}
	return domain.ErrMemoryPowerTimeout
}
