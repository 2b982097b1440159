// Package busidle drives the bus-idle handshake that quiesces a domain's
// bus interface before power removal: write the request bits, wait for
// the acknowledgment register, then verify the idle state itself.
// Cancelling a request runs the identical two-phase wait with the
// opposite expectation.
package busidle

import "rkpm/internal/domain"

// Polling iteration bounds for the two wait phases.
const (
	DefaultAckBudget  = 10000
	DefaultIdleBudget = 10000
)

// ackOffset is the acknowledgment register's fixed distance from the
// idle register base.
const ackOffset = 0x0c

// Control drives the idle-request register group of the PMU block.
type Control struct {
	reg        domain.RegisterAccessor
	idleOffset uint32
	ackBudget  int
	idleBudget int
}

// New returns a controller over reg, with idleOffset the chip-level base
// of the idle register. Budgets <= 0 select the defaults.
func New(reg domain.RegisterAccessor, idleOffset uint32, ackBudget, idleBudget int) *Control {
	if ackBudget <= 0 {
		ackBudget = DefaultAckBudget
	}
	if idleBudget <= 0 {
		idleBudget = DefaultIdleBudget
	}
	return &Control{reg: reg, idleOffset: idleOffset, ackBudget: ackBudget, idleBudget: idleBudget}
}

// RequestIdle asks the domain's bus interface to quiesce (idle=true) or
// to resume (idle=false), then waits for the acknowledgment and verifies
// the resulting idle state, in that order. Domains with a zero request
// mask pass through as a no-op.
func (c *Control) RequestIdle(d *domain.Descriptor, idle bool) error {
	if d.ReqMask == 0 {
		return nil
	}

	req := c.idleOffset + d.ReqOffset
	cur := c.reg.Read(req)
	if idle {
		cur |= d.ReqMask
	} else {
		cur &^= d.ReqMask
	}
	c.reg.Write(req, cur)
	c.reg.Barrier()

	if err := c.waitAck(d, idle); err != nil {
		return err
	}
	return c.verifyIdle(d, idle)
}

// waitAck polls the acknowledgment register until the ack bits match the
// expected state. A zero ack mask skips the wait.
func (c *Control) waitAck(d *domain.Descriptor, expected bool) error {
	if d.AckMask == 0 {
		return nil
	}

	for i := 0; i < c.ackBudget; i++ {
		v := c.reg.Read(c.idleOffset + ackOffset)
		if (v&d.AckMask == d.AckMask) == expected {
			return nil
		}
	}
	return domain.ErrIdleAckTimeout
}

// verifyIdle polls the idle register until the idle bits match the
// expected state. A zero idle mask skips the check.
func (c *Control) verifyIdle(d *domain.Descriptor, expected bool) error {
	if d.IdleMask == 0 {
		return nil
	}

	for i := 0; i < c.idleBudget; i++ {
		v := c.reg.Read(c.idleOffset)
		if (v&d.IdleMask == d.IdleMask) == expected {
			return nil
		}
	}
	return domain.ErrIdleRequestTimeout
}
