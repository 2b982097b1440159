package qos_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rkpm/internal/domain"
	"rkpm/internal/mmio"
	"rkpm/internal/power/qos"
)

var portRegs = []uint32{0x08, 0x0c, 0x10, 0x14, 0x18}

func TestNew_RejectsBadPortLists(t *testing.T) {
	bus := mmio.NewBank().View(0)

	_, err := qos.New(bus, nil)
	require.ErrorIs(t, err, domain.ErrInvalidQoSConfig)

	tooMany := make([]uint32, qos.MaxPorts+1)
	_, err = qos.New(bus, tooMany)
	require.ErrorIs(t, err, domain.ErrInvalidQoSConfig)
}

func TestSaveRestore_SurvivesCorruption(t *testing.T) {
	bank := mmio.NewBank()
	ports := []uint32{0x1000, 0x2000}

	// Distinct value per port register.
	for pi, base := range ports {
		for ri, off := range portRegs {
			bank.Write32(base+off, uint32(0x100*pi+ri+1))
		}
	}

	qc, err := qos.New(bank.View(0), ports)
	require.NoError(t, err)
	require.NoError(t, qc.Save())
	require.True(t, qc.Saved())

	// A power cycle scrambles the port registers.
	for _, base := range ports {
		for _, off := range portRegs {
			bank.Write32(base+off, 0xdeadbeef)
		}
	}

	require.NoError(t, qc.Restore())
	for pi, base := range ports {
		for ri, off := range portRegs {
			require.Equal(t, uint32(0x100*pi+ri+1), bank.Read32(base+off))
		}
	}
}

func TestRestore_WithoutSave_Fails(t *testing.T) {
	qc, err := qos.New(mmio.NewBank().View(0), []uint32{0x1000})
	require.NoError(t, err)
	require.False(t, qc.Saved())
	require.ErrorIs(t, qc.Restore(), domain.ErrQoSNotSaved)
}

func TestExportImport_RoundTrip(t *testing.T) {
	bank := mmio.NewBank()
	ports := []uint32{0x1000}
	for ri, off := range portRegs {
		bank.Write32(ports[0]+off, uint32(ri+10))
	}

	src, err := qos.New(bank.View(0), ports)
	require.NoError(t, err)
	require.Nil(t, src.Export())
	require.NoError(t, src.Save())

	snap := src.Export()
	require.Len(t, snap, len(portRegs))

	dst, err := qos.New(bank.View(0), ports)
	require.NoError(t, err)
	require.NoError(t, dst.Import(snap))
	require.True(t, dst.Saved())

	for _, off := range portRegs {
		bank.Write32(ports[0]+off, 0)
	}
	require.NoError(t, dst.Restore())
	for ri, off := range portRegs {
		require.Equal(t, uint32(ri+10), bank.Read32(ports[0]+off))
	}
}

func TestImport_RejectsWrongShape(t *testing.T) {
	qc, err := qos.New(mmio.NewBank().View(0), []uint32{0x1000, 0x2000})
	require.NoError(t, err)

	require.ErrorIs(t, qc.Import(nil), domain.ErrInvalidQoSConfig)
	require.ErrorIs(t, qc.Import([][]uint32{{1}, {1}, {1}, {1}, {1}}), domain.ErrInvalidQoSConfig)
}
