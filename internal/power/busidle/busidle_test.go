package busidle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rkpm/internal/domain"
	"rkpm/internal/mmio"
	"rkpm/internal/power/busidle"
)

const simBase = 0x1000

func simTable() *domain.PmuInfo {
	return &domain.PmuInfo{
		Name:         "sim",
		Base:         simBase,
		PwrOffset:    0x10,
		StatusOffset: 0x14,
		IdleOffset:   0x20,
		Domains: map[domain.PowerDomain]*domain.Descriptor{
			1: {Name: "vid", PwrMask: 0x1, StatusMask: 0x1, ReqMask: 0x1, IdleMask: 0x1, AckMask: 0x1},
		},
	}
}

func TestRequestIdle_Handshake(t *testing.T) {
	info := simTable()
	sim := mmio.NewSimPMU(info, simBase)
	d := info.Domains[1]
	c := busidle.New(sim.PMU(), info.IdleOffset, 0, 0)

	// Reset leaves the domain off and its bus idle; resume it.
	require.NoError(t, c.RequestIdle(d, false))
	idleReg := sim.Bank().Read32(simBase + info.IdleOffset)
	require.Zero(t, idleReg&d.ReqMask)
	require.Zero(t, idleReg&d.IdleMask)
	require.Zero(t, sim.Bank().Read32(simBase+info.IdleOffset+0x0c)&d.AckMask)

	// And quiesce it again.
	require.NoError(t, c.RequestIdle(d, true))
	idleReg = sim.Bank().Read32(simBase + info.IdleOffset)
	require.Equal(t, d.ReqMask, idleReg&d.ReqMask)
	require.Equal(t, d.IdleMask, idleReg&d.IdleMask)
	require.Equal(t, d.AckMask, sim.Bank().Read32(simBase+info.IdleOffset+0x0c)&d.AckMask)
}

// recorder wraps an accessor and logs the offset of every read.
type recorder struct {
	domain.RegisterAccessor
	reads []uint32
}

func (r *recorder) Read(off uint32) uint32 {
	r.reads = append(r.reads, off)
	return r.RegisterAccessor.Read(off)
}

func TestRequestIdle_DeadHardware_AckTimeout(t *testing.T) {
	rec := &recorder{RegisterAccessor: mmio.NewBank().View(0)}
	d := &domain.Descriptor{Name: "vid", ReqMask: 0x1, IdleMask: 0x100, AckMask: 0x1}
	c := busidle.New(rec, 0x20, 10, 10)

	require.ErrorIs(t, c.RequestIdle(d, true), domain.ErrIdleAckTimeout)

	// Ack starvation never reaches the idle verification: after the
	// initial read-modify-write, every read hits the ack register.
	require.Equal(t, uint32(0x20), rec.reads[0])
	for _, off := range rec.reads[1:] {
		require.Equal(t, uint32(0x2c), off)
	}
}

func TestRequestIdle_AckWithoutIdle_IdleTimeout(t *testing.T) {
	// No ack mask, so the request goes straight to idle verification,
	// and the idle bit never follows on dead hardware.
	reg := mmio.NewBank().View(0)
	d := &domain.Descriptor{Name: "vid", ReqMask: 0x1, IdleMask: 0x100}
	c := busidle.New(reg, 0x20, 10, 10)

	require.ErrorIs(t, c.RequestIdle(d, true), domain.ErrIdleRequestTimeout)
}

func TestRequestIdle_NoReqMask_NoOp(t *testing.T) {
	bank := mmio.NewBank()
	c := busidle.New(bank.View(0), 0x20, 10, 10)

	require.NoError(t, c.RequestIdle(&domain.Descriptor{Name: "fixed"}, true))
	require.Empty(t, bank.Snapshot())
}

func TestRequestIdle_BankedRequestRegister(t *testing.T) {
	// A descriptor with a request-register offset writes its bits one
	// word over, leaving the base register untouched.
	bank := mmio.NewBank()
	d := &domain.Descriptor{Name: "vo1", ReqMask: 0x1, ReqOffset: 0x4}
	c := busidle.New(bank.View(0), 0x20, 10, 10)

	require.NoError(t, c.RequestIdle(d, true))
	require.Equal(t, d.ReqMask, bank.Read32(0x24))
	require.Zero(t, bank.Read32(0x20))
}
