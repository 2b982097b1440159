// Package manager is the facade over the power engine. It composes the
// dependency manager with a fresh sequencer per transition, owns the
// per-domain QoS snapshots so they survive across power cycles, and
// serializes the check-transition-mark unit behind one lock.
package manager

import (
	"fmt"
	"sync"

	"rkpm/internal/domain"
	"rkpm/internal/power/deps"
	"rkpm/internal/power/qos"
	"rkpm/internal/power/sequencer"
)

type Manager struct {
	mu   sync.Mutex
	pmu  domain.RegisterAccessor
	bus  domain.RegisterAccessor
	info *domain.PmuInfo
	cfg  sequencer.Config

	dm        *deps.Manager
	snapshots map[domain.PowerDomain]*qos.Control
}

// New builds a manager over the PMU block accessor (offsets relative to
// the PMU base) and the bus accessor (absolute addresses, for QoS
// ports). The active set starts empty; hosts that need to match a warm
// hardware state call Reconcile or Seed first.
func New(pmu, bus domain.RegisterAccessor, info *domain.PmuInfo, cfg sequencer.Config) *Manager {
	return &Manager{
		pmu:       pmu,
		bus:       bus,
		info:      info,
		cfg:       cfg,
		dm:        deps.New(),
		snapshots: make(map[domain.PowerDomain]*qos.Control),
	}
}

// PowerOnWithDeps powers pd on after validating that its parent (if any)
// is active. The active set is updated only after the hardware sequence
// reports success.
func (m *Manager) PowerOnWithDeps(pd domain.PowerDomain) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, err := m.info.Domain(pd)
	if err != nil {
		return fmt.Errorf("domain %d: %w", pd, err)
	}
	if err := m.dm.CanPowerOn(pd, d); err != nil {
		return fmt.Errorf("power on %s: %w", d.Name, err)
	}
	if err := m.powerOn(pd, d); err != nil {
		return err
	}
	m.dm.MarkOn(pd)
	return nil
}

// PowerOffWithDeps powers pd off after validating that none of its
// children are active.
func (m *Manager) PowerOffWithDeps(pd domain.PowerDomain) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, err := m.info.Domain(pd)
	if err != nil {
		return fmt.Errorf("domain %d: %w", pd, err)
	}
	if err := m.dm.CanPowerOff(pd, d); err != nil {
		return fmt.Errorf("power off %s: %w", d.Name, err)
	}
	if err := m.powerOff(pd, d); err != nil {
		return err
	}
	m.dm.MarkOff(pd)
	return nil
}

// PowerOn powers pd on without dependency checking. Escape hatch:
// callers accept responsibility for ordering.
func (m *Manager) PowerOn(pd domain.PowerDomain) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, err := m.info.Domain(pd)
	if err != nil {
		return fmt.Errorf("domain %d: %w", pd, err)
	}
	if err := m.powerOn(pd, d); err != nil {
		return err
	}
	m.dm.MarkOn(pd)
	return nil
}

// PowerOff powers pd off without dependency checking.
func (m *Manager) PowerOff(pd domain.PowerDomain) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, err := m.info.Domain(pd)
	if err != nil {
		return fmt.Errorf("domain %d: %w", pd, err)
	}
	if err := m.powerOff(pd, d); err != nil {
		return err
	}
	m.dm.MarkOff(pd)
	return nil
}

func (m *Manager) powerOn(pd domain.PowerDomain, d *domain.Descriptor) error {
	seq := sequencer.New(m.pmu, m.info, m.cfg)
	if err := seq.PowerOn(pd, m.snapshotFor(pd, d)); err != nil {
		return fmt.Errorf("power on %s: %w", d.Name, err)
	}
	return nil
}

func (m *Manager) powerOff(pd domain.PowerDomain, d *domain.Descriptor) error {
	if d.AlwaysOn {
		return fmt.Errorf("power off %s: %w", d.Name, domain.ErrInvalidOperation)
	}
	seq := sequencer.New(m.pmu, m.info, m.cfg)
	if err := seq.PowerOff(pd, m.snapshotFor(pd, d)); err != nil {
		return fmt.Errorf("power off %s: %w", d.Name, err)
	}
	return nil
}

// snapshotFor returns the domain's persistent QoS controller, creating
// it on first use. The controller lives here, not in the sequencer, so
// the save taken during power-off is the snapshot restored by the next
// power-on.
func (m *Manager) snapshotFor(pd domain.PowerDomain, d *domain.Descriptor) *qos.Control {
	if !d.HasQoS() {
		return nil
	}
	if qc, ok := m.snapshots[pd]; ok {
		return qc
	}
	qc, err := qos.New(m.bus, d.QoSPorts)
	if err != nil {
		// Descriptor tables are validated at load; a bad port list
		// here is a data bug, surface it as "no QoS".
		return nil
	}
	m.snapshots[pd] = qc
	return qc
}

// DomainOn reads the current hardware power state of pd.
func (m *Manager) DomainOn(pd domain.PowerDomain) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sequencer.New(m.pmu, m.info, m.cfg).DomainOn(pd)
}

// IsActive reports whether pd is in the tracked active set.
func (m *Manager) IsActive(pd domain.PowerDomain) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dm.IsActive(pd)
}

// ActiveDomains returns the tracked active set in ascending order.
func (m *Manager) ActiveDomains() []domain.PowerDomain {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dm.ActiveDomains()
}

// Reconcile seeds the active set from the hardware's current state, one
// state read per domain. Use at startup after a warm reset, when the
// empty-set assumption does not hold.
func (m *Manager) Reconcile() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	seq := sequencer.New(m.pmu, m.info, m.cfg)
	for _, pd := range m.info.SortedDomains() {
		on, err := seq.DomainOn(pd)
		if err != nil {
			return err
		}
		if on {
			m.dm.MarkOn(pd)
		} else {
			m.dm.MarkOff(pd)
		}
	}
	return nil
}

// Seed replaces the active set with the given domains, for hosts that
// persist the set themselves.
func (m *Manager) Seed(active []domain.PowerDomain) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, pd := range m.dm.ActiveDomains() {
		m.dm.MarkOff(pd)
	}
	for _, pd := range active {
		m.dm.MarkOn(pd)
	}
}

// QoSSaved reports whether a QoS snapshot is held for pd. Pure map
// query, no hardware access.
func (m *Manager) QoSSaved(pd domain.PowerDomain) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	qc, ok := m.snapshots[pd]
	return ok && qc.Saved()
}

// ExportQoS copies out every saved QoS snapshot, keyed by domain, as
// [register][port] rows. Domains without a saved snapshot are absent.
func (m *Manager) ExportQoS() map[domain.PowerDomain][][]uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[domain.PowerDomain][][]uint32)
	for pd, qc := range m.snapshots {
		if vals := qc.Export(); vals != nil {
			out[pd] = vals
		}
	}
	return out
}

// ImportQoS installs previously exported snapshots. Entries for unknown
// domains or with a mismatched shape are skipped.
func (m *Manager) ImportQoS(snap map[domain.PowerDomain][][]uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for pd, vals := range snap {
		d, err := m.info.Domain(pd)
		if err != nil || !d.HasQoS() {
			continue
		}
		qc := m.snapshotFor(pd, d)
		if qc == nil {
			continue
		}
		_ = qc.Import(vals)
	}
}

// ClearQoS drops pd's QoS snapshot.
func (m *Manager) ClearQoS(pd domain.PowerDomain) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snapshots, pd)
}
