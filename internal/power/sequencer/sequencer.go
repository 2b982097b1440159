// Package sequencer drives the multi-step hardware protocol that moves a
// single power domain between on and off: memory-array power, bus-idle
// handshaking, the main power rail, memory-repair completion, and QoS
// preservation, in the order the hardware mandates.
//
// A Sequencer holds the PMU register block exclusively for the duration
// of one transition; no two transitions may interleave accesses. There is
// no rollback: a failure at step k leaves the hardware in whatever state
// the earlier steps produced, and callers may retry the whole sequence
// (each step re-applies the same target state) or escalate.
package sequencer

import (
	"rkpm/internal/domain"
	"rkpm/internal/power/busidle"
	"rkpm/internal/power/memory"
	"rkpm/internal/power/qos"
)

// Polling iteration bounds for repair completion and main-power
// stabilization.
const (
	DefaultRepairBudget = 10000
	DefaultStableBudget = 10000
)

// Config carries the polling budgets. Zero values select the defaults,
// so Config{} is a valid configuration.
type Config struct {
	RepairBudget int
	StableBudget int
	MemoryBudget int
	AckBudget    int
	IdleBudget   int
}

// Sequencer orchestrates one domain transition over the PMU block.
type Sequencer struct {
	reg  domain.RegisterAccessor
	info *domain.PmuInfo
	mem  *memory.Control
	idle *busidle.Control

	repairBudget int
	stableBudget int
}

func New(reg domain.RegisterAccessor, info *domain.PmuInfo, cfg Config) *Sequencer {
	if cfg.RepairBudget <= 0 {
		cfg.RepairBudget = DefaultRepairBudget
	}
	if cfg.StableBudget <= 0 {
		cfg.StableBudget = DefaultStableBudget
	}
	return &Sequencer{
		reg:          reg,
		info:         info,
		mem:          memory.New(reg, info.MemPwrOffset, cfg.MemoryBudget),
		idle:         busidle.New(reg, info.IdleOffset, cfg.AckBudget, cfg.IdleBudget),
		repairBudget: cfg.RepairBudget,
		stableBudget: cfg.StableBudget,
	}
}

// PowerOn runs the full power-on protocol for pd: memory up, idle
// request cancelled, main rail on, repair complete, state verified, QoS
// restored. qc is the domain's persistent QoS controller (nil when the
// domain has no QoS ports); a restore failure is tolerated, since the
// first power-on of a boot has no snapshot to restore.
func (s *Sequencer) PowerOn(pd domain.PowerDomain, qc *qos.Control) error {
	d, err := s.info.Domain(pd)
	if err != nil {
		return err
	}

	if d.HasMemory() {
		if err := s.mem.SetPower(d, true); err != nil {
			return err
		}
		if err := s.mem.WaitStable(d, true, s.info.RepairStatusOffset); err != nil {
			return err
		}
	}

	if d.HasIdle() {
		if err := s.idle.RequestIdle(d, false); err != nil {
			return err
		}
	}

	s.writePowerControl(d, true)

	if d.RepairMask != 0 {
		if err := s.waitRepairDone(d); err != nil {
			return err
		}
	}

	if err := s.waitPowerStable(d, true); err != nil {
		return err
	}

	if d.HasQoS() && qc != nil {
		_ = qc.Restore() // first bring-up of a boot has no snapshot
	}

	return nil
}

// PowerOff runs the full power-off protocol for pd: QoS saved, bus
// idled, main rail off, state verified, memory down.
func (s *Sequencer) PowerOff(pd domain.PowerDomain, qc *qos.Control) error {
	d, err := s.info.Domain(pd)
	if err != nil {
		return err
	}

	if d.HasQoS() && qc != nil {
		if err := qc.Save(); err != nil {
			return err
		}
	}

	if d.HasIdle() {
		if err := s.idle.RequestIdle(d, true); err != nil {
			return err
		}
	}

	s.writePowerControl(d, false)

	if err := s.waitPowerStable(d, false); err != nil {
		return err
	}

	if d.HasMemory() {
		if err := s.mem.SetPower(d, false); err != nil {
			return err
		}
		if err := s.mem.WaitStable(d, false, s.info.RepairStatusOffset); err != nil {
			return err
		}
	}

	return nil
}

// DomainOn reads the current hardware power state of pd.
func (s *Sequencer) DomainOn(pd domain.PowerDomain) (bool, error) {
	d, err := s.info.Domain(pd)
	if err != nil {
		return false, err
	}
	return s.checkDomainOn(d), nil
}

// writePowerControl moves the main power rail. Power-control bit set
// means off; the write-enable duality matches the memory controller's.
func (s *Sequencer) writePowerControl(d *domain.Descriptor, on bool) {
	if d.PwrMask == 0 {
		return
	}

	off := s.info.PwrOffset + d.PwrOffset
	if d.PwrWMask != 0 {
		v := d.PwrWMask
		if !on {
			v = d.PwrMask | d.PwrWMask
		}
		s.reg.Write(off, v)
	} else {
		cur := s.reg.Read(off)
		if on {
			cur &^= d.PwrMask
		} else {
			cur |= d.PwrMask
		}
		s.reg.Write(off, cur)
	}

	s.reg.Barrier()
}

// checkDomainOn is the three-tier power-state decision. The repair-status
// register, when configured, is authoritative over the generic status
// register; domains with neither fall back to "on iff not bus-idle".
func (s *Sequencer) checkDomainOn(d *domain.Descriptor) bool {
	if d.RepairStatusMask != 0 {
		v := s.reg.Read(s.info.RepairStatusOffset)
		return v&d.RepairStatusMask != 0 // 1 = on
	}

	if d.StatusMask == 0 {
		v := s.reg.Read(s.info.IdleOffset)
		idle := v&d.IdleMask == d.IdleMask
		return !idle
	}

	v := s.reg.Read(s.info.StatusOffset)
	return v&d.StatusMask == 0 // 0 = on
}

func (s *Sequencer) waitPowerStable(d *domain.Descriptor, expectedOn bool) error {
	for i := 0; i < s.stableBudget; i++ {
		if s.checkDomainOn(d) == expectedOn {
			return nil
		}
	}
	return domain.ErrTimeout
}

func (s *Sequencer) waitRepairDone(d *domain.Descriptor) error {
	if d.RepairMask == 0 {
		return nil
	}

	off := s.info.RepairStatusOffset + d.RepairOffset
	for i := 0; i < s.repairBudget; i++ {
		if s.reg.Read(off)&d.RepairMask != 0 {
			return nil
		}
	}
	return domain.ErrRepairTimeout
}
