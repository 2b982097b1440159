// Package deps tracks which power domains are believed on and enforces
// the parent/child ordering rules before a transition is allowed: a
// parent must be on before its child powers on, and all children must be
// off before their parent powers off.
//
// The manager is pure in-memory state. It starts empty regardless of true
// hardware state after a warm reset; hosts that need to reconcile seed it
// explicitly through the facade's Reconcile or Seed.
package deps

import (
	"sort"

	"rkpm/internal/domain"
)

type Manager struct {
	active map[domain.PowerDomain]struct{}
}

func New() *Manager {
	return &Manager{active: make(map[domain.PowerDomain]struct{})}
}

// CanPowerOn reports whether pd may power on. A domain already in the
// active set succeeds immediately without re-checking its parent; the
// dependency rule applies only to the inactive-to-active transition.
func (m *Manager) CanPowerOn(pd domain.PowerDomain, d *domain.Descriptor) error {
	if m.IsActive(pd) {
		return nil
	}
	if d.Dep != nil && d.Dep.Parent != nil {
		if !m.IsActive(*d.Dep.Parent) {
			return domain.ErrDependencyNotMet
		}
	}
	return nil
}

// CanPowerOff reports whether pd may power off. A domain already absent
// from the active set succeeds immediately; otherwise every child listed
// in the descriptor must be inactive.
func (m *Manager) CanPowerOff(pd domain.PowerDomain, d *domain.Descriptor) error {
	if !m.IsActive(pd) {
		return nil
	}
	if d.Dep != nil {
		for _, child := range d.Dep.Children {
			if m.IsActive(child) {
				return domain.ErrDependencyNotMet
			}
		}
	}
	return nil
}

// MarkOn records pd as powered on. No validation: callers invoke this
// only after a verified hardware transition.
func (m *Manager) MarkOn(pd domain.PowerDomain) {
	m.active[pd] = struct{}{}
}

// MarkOff records pd as powered off.
func (m *Manager) MarkOff(pd domain.PowerDomain) {
	delete(m.active, pd)
}

func (m *Manager) IsActive(pd domain.PowerDomain) bool {
	_, ok := m.active[pd]
	return ok
}

// ActiveDomains returns the active set in ascending domain order.
func (m *Manager) ActiveDomains() []domain.PowerDomain {
	out := make([]domain.PowerDomain, 0, len(m.active))
	for pd := range m.active {
		out = append(out, pd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
