package app

import (
	"rkpm/internal/domain"
	"rkpm/internal/mmio"
	"rkpm/internal/power/manager"
	"rkpm/internal/store"
	"rkpm/internal/variants"
)

// Wire bundles the board table, the simulated PMU, the power manager and
// the state store for the CLI.
type Wire struct {
	Info    *domain.PmuInfo
	Sim     *mmio.SimPMU
	Manager *manager.Manager
	States  *store.FileStore
}

// NewWire constructs the dependency graph from cfg and restores any
// persisted state for the selected board.
func NewWire(cfg Config) (*Wire, error) {
	var (
		info *domain.PmuInfo
		err  error
	)
	if cfg.BoardFile != "" {
		info, err = variants.LoadBoard(cfg.BoardFile)
	} else {
		info, err = variants.Lookup(cfg.Board)
	}
	if err != nil {
		return nil, err
	}

	sim := mmio.NewSimPMU(info, info.Base)
	mgr := manager.New(sim.PMU(), sim.Bus(), info, cfg.Seq)

	w := &Wire{
		Info:    info,
		Sim:     sim,
		Manager: mgr,
		States:  store.NewFileStore(cfg.Home),
	}
	if err := w.restore(); err != nil {
		return nil, err
	}
	return w, nil
}

// restore loads the persisted register file and active set, if any.
// A cold start instead reconciles the active set against the simulator's
// reset state, which powers up keep-on domains.
func (w *Wire) restore() error {
	st, err := w.States.Load(w.Info.Name)
	if err != nil {
		return err
	}
	if st == nil {
		return w.Manager.Reconcile()
	}
	w.Sim.Bank().Load(st.Regs)
	w.Manager.Seed(st.Active)
	w.Manager.ImportQoS(st.QoS)
	return nil
}

// Persist writes the current simulator and manager state back to disk.
func (w *Wire) Persist() error {
	return w.States.Save(&store.State{
		Board:  w.Info.Name,
		Regs:   w.Sim.Bank().Snapshot(),
		Active: w.Manager.ActiveDomains(),
		QoS:    w.Manager.ExportQoS(),
	})
}

// Reset discards the persisted state and returns the simulator to its
// cold-boot condition.
func (w *Wire) Reset() error {
	if err := w.States.Reset(w.Info.Name); err != nil {
		return err
	}
	w.Sim.Reset()
	w.Manager.Seed(nil)
	return w.Manager.Reconcile()
}
