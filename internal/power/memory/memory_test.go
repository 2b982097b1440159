package memory_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rkpm/internal/domain"
	"rkpm/internal/mmio"
	"rkpm/internal/power/memory"
)

const memPwrOffset = 0x1a0

func TestSetPower_WriteEnableConvention(t *testing.T) {
	bank := mmio.NewBank()
	d := &domain.Descriptor{Name: "nvm", MemMask: 0x1000000, MemWMask: 0x1000000 << 4, MemOffset: 0x4}
	c := memory.New(bank.View(0), memPwrOffset, 10)

	// On: only the write-enable half goes out, the mask bit stays clear.
	require.NoError(t, c.SetPower(d, true))
	require.Equal(t, d.MemWMask, bank.Read32(memPwrOffset+d.MemOffset))

	// Off: mask and enable together.
	require.NoError(t, c.SetPower(d, false))
	require.Equal(t, d.MemMask|d.MemWMask, bank.Read32(memPwrOffset+d.MemOffset))
}

func TestSetPower_ReadModifyWrite(t *testing.T) {
	bank := mmio.NewBank()
	d := &domain.Descriptor{Name: "npu", MemMask: 0x2}
	c := memory.New(bank.View(0), memPwrOffset, 10)

	// Neighboring bits must survive both directions.
	bank.Write32(memPwrOffset, 0xf0)

	require.NoError(t, c.SetPower(d, false))
	require.Equal(t, uint32(0xf2), bank.Read32(memPwrOffset))

	require.NoError(t, c.SetPower(d, true))
	require.Equal(t, uint32(0xf0), bank.Read32(memPwrOffset))
}

func TestSetPower_NoMemory_NoOp(t *testing.T) {
	bank := mmio.NewBank()
	c := memory.New(bank.View(0), memPwrOffset, 10)

	require.NoError(t, c.SetPower(&domain.Descriptor{Name: "gpu"}, true))
	require.Empty(t, bank.Snapshot())
}

func TestWaitStable_RepairStatusPolarity(t *testing.T) {
	bank := mmio.NewBank()
	d := &domain.Descriptor{Name: "npu", MemMask: 0x2, RepairStatusMask: 0x2}
	c := memory.New(bank.View(0), memPwrOffset, 10)
	repairStatus := uint32(0x290)

	// Bit set means on.
	bank.Write32(repairStatus, 0x2)
	require.NoError(t, c.WaitStable(d, true, repairStatus))
	require.ErrorIs(t, c.WaitStable(d, false, repairStatus), domain.ErrMemoryPowerTimeout)

	bank.Write32(repairStatus, 0)
	require.NoError(t, c.WaitStable(d, false, repairStatus))
	require.ErrorIs(t, c.WaitStable(d, true, repairStatus), domain.ErrMemoryPowerTimeout)
}

func TestWaitStable_NoRepairStatus_Immediate(t *testing.T) {
	c := memory.New(mmio.NewBank().View(0), memPwrOffset, 10)
	require.NoError(t, c.WaitStable(&domain.Descriptor{Name: "gpu", MemMask: 0x1}, true, 0x290))
}
