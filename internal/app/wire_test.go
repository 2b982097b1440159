package app_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rkpm/internal/app"
	"rkpm/internal/power/sequencer"
	"rkpm/internal/variants"
)

func testConfig(home string) app.Config {
	return app.Config{
		Board: "rk3588",
		Home:  home,
		Seq: sequencer.Config{
			RepairBudget: 100,
			StableBudget: 100,
			MemoryBudget: 100,
			AckBudget:    100,
			IdleBudget:   100,
		},
	}
}

func TestWire_StateSurvivesRebuild(t *testing.T) {
	home := t.TempDir()

	w, err := app.NewWire(testConfig(home))
	require.NoError(t, err)
	require.NoError(t, w.Manager.PowerOnWithDeps(variants.RK3588VCodec))
	require.NoError(t, w.Manager.PowerOnWithDeps(variants.RK3588VENC0))
	require.NoError(t, w.Persist())

	// A fresh wire, as the next CLI invocation would build.
	w2, err := app.NewWire(testConfig(home))
	require.NoError(t, err)
	require.True(t, w2.Manager.IsActive(variants.RK3588VCodec))

	on, err := w2.Manager.DomainOn(variants.RK3588VENC0)
	require.NoError(t, err)
	require.True(t, on)

	// Dependency tracking carried over: the parent is still pinned.
	require.Error(t, w2.Manager.PowerOffWithDeps(variants.RK3588VCodec))
}

func TestWire_QoSSnapshotSurvivesRebuild(t *testing.T) {
	home := t.TempDir()

	w, err := app.NewWire(testConfig(home))
	require.NoError(t, err)
	require.NoError(t, w.Manager.PowerOnWithDeps(variants.RK3588VCodec))
	require.NoError(t, w.Manager.PowerOnWithDeps(variants.RK3588VENC0))

	d := w.Info.Domains[variants.RK3588VENC0]
	for i, base := range d.QoSPorts {
		w.Sim.Bus().Write(base+0x08, uint32(0x30+i))
	}
	require.NoError(t, w.Manager.PowerOffWithDeps(variants.RK3588VENC0))
	require.NoError(t, w.Persist())

	w2, err := app.NewWire(testConfig(home))
	require.NoError(t, err)
	require.True(t, w2.Manager.QoSSaved(variants.RK3588VENC0))

	for _, base := range d.QoSPorts {
		w2.Sim.Bus().Write(base+0x08, 0)
	}
	require.NoError(t, w2.Manager.PowerOnWithDeps(variants.RK3588VENC0))
	for i, base := range d.QoSPorts {
		require.Equal(t, uint32(0x30+i), w2.Sim.Bus().Read(base+0x08))
	}
}

func TestWire_ColdStartReconcilesKeepon(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Board = "rk3568"

	w, err := app.NewWire(cfg)
	require.NoError(t, err)
	require.True(t, w.Manager.IsActive(variants.RK3568VO))
	require.False(t, w.Manager.IsActive(variants.RK3568GPU))
}

func TestWire_Reset(t *testing.T) {
	home := t.TempDir()

	w, err := app.NewWire(testConfig(home))
	require.NoError(t, err)
	require.NoError(t, w.Manager.PowerOnWithDeps(variants.RK3588GPU))
	require.NoError(t, w.Persist())

	require.NoError(t, w.Reset())
	require.False(t, w.Manager.IsActive(variants.RK3588GPU))

	w2, err := app.NewWire(testConfig(home))
	require.NoError(t, err)
	require.False(t, w2.Manager.IsActive(variants.RK3588GPU))
}

func TestWire_UnknownBoard(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Board = "rk9999"
	_, err := app.NewWire(cfg)
	require.Error(t, err)
}
