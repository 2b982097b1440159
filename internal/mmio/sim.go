package mmio

import "rkpm/internal/domain"

// SimPMU is a behavioral model of the PMU block sitting on a Bank. It
// answers the handshakes the sequencer drives: an idle request raises the
// matching ack and idle bits, a main-power write moves the status and
// repair-status bits, a memory-power write moves the repair-status bit,
// and write-enable-mask registers latch only the enabled low bits.
//
// The model reacts only to writes through the PMU() view; direct Bank
// stores (or the Bus() view) bypass it, which is how tests corrupt QoS
// registers or starve a poll.
type SimPMU struct {
	bank *Bank
	info *domain.PmuInfo
	base uint32

	// registers using the write-enable convention, by PMU-relative offset
	wEnable map[uint32]bool
}

// NewSimPMU builds a model of info's PMU block at the given absolute bus
// address, with every domain initially off except those marked always-on
// or keep-on-at-startup.
func NewSimPMU(info *domain.PmuInfo, base uint32) *SimPMU {
	s := &SimPMU{
		bank:    NewBank(),
		info:    info,
		base:    base,
		wEnable: make(map[uint32]bool),
	}
	for _, d := range info.Domains {
		if d.PwrWMask != 0 {
			s.wEnable[info.PwrOffset+d.PwrOffset] = true
		}
		if d.MemWMask != 0 {
			s.wEnable[info.MemPwrOffset+d.MemOffset] = true
		}
	}
	s.Reset()
	return s
}

// Bank exposes the underlying register file for persistence.
func (s *SimPMU) Bank() *Bank { return s.bank }

// Bus returns a plain whole-bus accessor (absolute addresses), used for
// QoS ports and by tests that poke registers behind the model's back.
func (s *SimPMU) Bus() domain.RegisterAccessor { return s.bank.View(0) }

// PMU returns the behavioral accessor for the PMU block itself.
func (s *SimPMU) PMU() domain.RegisterAccessor { return &simView{s} }

type simView struct{ sim *SimPMU }

var _ domain.RegisterAccessor = (*simView)(nil)

func (v *simView) Read(off uint32) uint32 { return v.sim.bank.Read32(v.sim.base + off) }

func (v *simView) Write(off uint32, val uint32) { v.sim.write(off, val) }

func (v *simView) Barrier() {}

func (s *SimPMU) write(off, val uint32) {
	addr := s.base + off
	if s.wEnable[off] {
		// Upper half selects which lower-half bits latch; the enable
		// bits themselves self-clear.
		en := val >> 16
		old := s.bank.Read32(addr)
		s.bank.Write32(addr, (old&^en)|(val&en&0xffff))
	} else {
		s.bank.Write32(addr, val)
	}
	s.react(off)
}

func (s *SimPMU) react(off uint32) {
	for _, d := range s.info.Domains {
		switch {
		case d.PwrMask != 0 && off == s.info.PwrOffset+d.PwrOffset:
			reg := s.bank.Read32(s.base + off)
			s.setPowered(d, reg&d.PwrMask == 0)
		case d.MemMask != 0 && off == s.info.MemPwrOffset+d.MemOffset:
			reg := s.bank.Read32(s.base + off)
			s.setRepairStatus(d, reg&d.MemMask == 0)
		case d.ReqMask != 0 && off == s.info.IdleOffset+d.ReqOffset:
			reg := s.bank.Read32(s.base + off)
			s.setIdle(d, reg&d.ReqMask == d.ReqMask)
		}
	}
}

// setPowered moves the observable power state of one domain: the status
// bit (set = off) and the repair-status bit (set = on), plus the
// repair-done bit for domains that signal repair completion.
func (s *SimPMU) setPowered(d *domain.Descriptor, on bool) {
	if d.StatusMask != 0 {
		s.assign(s.info.StatusOffset, d.StatusMask, !on)
	}
	if d.RepairStatusMask != 0 {
		s.assign(s.info.RepairStatusOffset, d.RepairStatusMask, on)
	}
	if d.RepairMask != 0 {
		s.assign(s.info.RepairStatusOffset+d.RepairOffset, d.RepairMask, on)
	}
}

func (s *SimPMU) setRepairStatus(d *domain.Descriptor, on bool) {
	if d.RepairStatusMask != 0 {
		s.assign(s.info.RepairStatusOffset, d.RepairStatusMask, on)
	}
}

func (s *SimPMU) setIdle(d *domain.Descriptor, idle bool) {
	if d.IdleMask != 0 {
		s.assign(s.info.IdleOffset, d.IdleMask, idle)
	}
	if d.AckMask != 0 {
		s.assign(s.info.IdleOffset+0x0c, d.AckMask, idle)
	}
}

// assign sets or clears mask bits at a PMU-relative offset without going
// back through the behavioral write path.
func (s *SimPMU) assign(off, mask uint32, set bool) {
	addr := s.base + off
	reg := s.bank.Read32(addr)
	if set {
		reg |= mask
	} else {
		reg &^= mask
	}
	s.bank.Write32(addr, reg)
}

// Reset puts every domain into its cold-boot state: off, memory off, bus
// idle. Always-on and keep-on-at-startup domains instead come up powered
// with their bus active.
func (s *SimPMU) Reset() {
	s.bank.Load(nil)
	for _, d := range s.info.Domains {
		on := d.AlwaysOn || d.KeeponStartup
		if d.PwrMask != 0 {
			s.assign(s.info.PwrOffset+d.PwrOffset, d.PwrMask, !on)
		}
		if d.MemMask != 0 {
			s.assign(s.info.MemPwrOffset+d.MemOffset, d.MemMask, !on)
		}
		if d.ReqMask != 0 {
			s.assign(s.info.IdleOffset+d.ReqOffset, d.ReqMask, !on)
		}
		s.setIdle(d, !on)
		s.setPowered(d, on)
	}
}
