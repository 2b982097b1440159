package deps_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rkpm/internal/domain"
	"rkpm/internal/power/deps"
)

const (
	parentPD domain.PowerDomain = 1
	childAPD domain.PowerDomain = 2
	childBPD domain.PowerDomain = 3
	childCPD domain.PowerDomain = 4
	childDPD domain.PowerDomain = 5
)

func parentDesc(children ...domain.PowerDomain) *domain.Descriptor {
	return &domain.Descriptor{
		Name: "parent",
		Dep:  &domain.Dependency{Children: children},
	}
}

func childDesc(name string) *domain.Descriptor {
	p := parentPD
	return &domain.Descriptor{
		Name: name,
		Dep:  &domain.Dependency{Parent: &p},
	}
}

func TestCanPowerOn_ParentRequired(t *testing.T) {
	m := deps.New()
	child := childDesc("child")

	err := m.CanPowerOn(childAPD, child)
	require.ErrorIs(t, err, domain.ErrDependencyNotMet)

	m.MarkOn(parentPD)
	require.NoError(t, m.CanPowerOn(childAPD, child))
}

func TestCanPowerOn_ActiveShortCircuits(t *testing.T) {
	m := deps.New()
	child := childDesc("child")

	// An already-active domain passes without its parent being checked.
	m.MarkOn(childAPD)
	require.NoError(t, m.CanPowerOn(childAPD, child))
}

func TestCanPowerOn_NoDependency(t *testing.T) {
	m := deps.New()
	require.NoError(t, m.CanPowerOn(parentPD, &domain.Descriptor{Name: "root"}))
}

func TestCanPowerOff_ChildrenBlock(t *testing.T) {
	m := deps.New()
	kids := []domain.PowerDomain{childAPD, childBPD, childCPD, childDPD}
	parent := parentDesc(kids...)

	m.MarkOn(parentPD)
	for _, c := range kids {
		m.MarkOn(c)
	}

	// Blocked while any child remains active.
	for _, c := range kids {
		err := m.CanPowerOff(parentPD, parent)
		require.ErrorIs(t, err, domain.ErrDependencyNotMet)
		m.MarkOff(c)
	}
	require.NoError(t, m.CanPowerOff(parentPD, parent))
}

func TestCanPowerOff_InactiveShortCircuits(t *testing.T) {
	m := deps.New()
	parent := parentDesc(childAPD)
	m.MarkOn(childAPD)

	// The parent is not active, so powering it off is trivially allowed.
	require.NoError(t, m.CanPowerOff(parentPD, parent))
}

func TestActiveDomains_SortedAscending(t *testing.T) {
	m := deps.New()
	m.MarkOn(childCPD)
	m.MarkOn(parentPD)
	m.MarkOn(childAPD)
	m.MarkOff(childAPD)

	require.Equal(t, []domain.PowerDomain{parentPD, childCPD}, m.ActiveDomains())
	require.True(t, m.IsActive(parentPD))
	require.False(t, m.IsActive(childAPD))
}
