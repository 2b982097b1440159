package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rkpm/internal/domain"
	"rkpm/internal/store"
)

func TestStateFile_SaveLoad(t *testing.T) {
	s := store.NewFileStore(t.TempDir())

	st := &store.State{
		Board:  "rk3588",
		Regs:   map[uint32]uint32{0x14c: 0x40, 0x180: 0},
		Active: []domain.PowerDomain{9, 13},
		QoS: map[domain.PowerDomain][][]uint32{
			16: {{1, 2}, {3, 4}, {5, 6}, {7, 8}, {9, 10}},
		},
	}
	require.NoError(t, s.Save(st))

	got, err := s.Load("rk3588")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, st.Board, got.Board)
	require.Equal(t, st.Regs, got.Regs)
	require.Equal(t, st.Active, got.Active)
	require.Equal(t, st.QoS, got.QoS)
}

func TestStateFile_MissingIsNotAnError(t *testing.T) {
	s := store.NewFileStore(t.TempDir())

	got, err := s.Load("rk3568")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestStateFile_PerBoardIsolation(t *testing.T) {
	s := store.NewFileStore(t.TempDir())

	require.NoError(t, s.Save(&store.State{Board: "rk3568", Regs: map[uint32]uint32{1: 1}}))
	require.NoError(t, s.Save(&store.State{Board: "rk3588", Regs: map[uint32]uint32{2: 2}}))

	a, err := s.Load("rk3568")
	require.NoError(t, err)
	require.Equal(t, map[uint32]uint32{1: 1}, a.Regs)

	b, err := s.Load("rk3588")
	require.NoError(t, err)
	require.Equal(t, map[uint32]uint32{2: 2}, b.Regs)
}

func TestStateFile_Reset(t *testing.T) {
	s := store.NewFileStore(t.TempDir())

	require.NoError(t, s.Save(&store.State{Board: "rk3588"}))
	require.NoError(t, s.Reset("rk3588"))

	got, err := s.Load("rk3588")
	require.NoError(t, err)
	require.Nil(t, got)

	// Resetting an absent state is fine.
	require.NoError(t, s.Reset("rk3588"))
}

func TestStateFile_CreatesHomeDir(t *testing.T) {
	s := store.NewFileStore(t.TempDir() + "/nested/home")
	require.NoError(t, s.Save(&store.State{Board: "rk3588"}))

	got, err := s.Load("rk3588")
	require.NoError(t, err)
	require.NotNil(t, got)
}
