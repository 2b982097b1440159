package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"rkpm/internal/domain"
)

// State is everything the CLI carries between invocations: which board
// the registers belong to, the raw register file of the simulated PMU,
// the active set, and any QoS snapshots taken by a power-off.
type State struct {
	Board  string                            `json:"board"`
	Regs   map[uint32]uint32                 `json:"regs"`
	Active []domain.PowerDomain              `json:"active"`
	QoS    map[domain.PowerDomain][][]uint32 `json:"qos,omitempty"`
}

// FileStore keeps one state file per board under a home directory.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

func (s *FileStore) path(board string) string {
	return filepath.Join(s.dir, board+".state.json")
}

// Load reads the state for board. A missing file returns (nil, nil): the
// caller starts from a cold simulator.
func (s *FileStore) Load(board string) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var st State
	found, err := readJSON(s.path(board), &st)
	if err != nil {
		return nil, fmt.Errorf("load state for %s: %w", board, err)
	}
	if !found {
		return nil, nil
	}
	if st.Board != board {
		return nil, fmt.Errorf("state file for %s names board %q", board, st.Board)
	}
	return &st, nil
}

// Save writes st under its board name, creating the home directory if
// needed.
func (s *FileStore) Save(st *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("save state for %s: %w", st.Board, err)
	}
	if err := writeJSON(s.path(st.Board), st, 0o600); err != nil {
		return fmt.Errorf("save state for %s: %w", st.Board, err)
	}
	return nil
}

// Reset removes the state file for board, if any.
func (s *FileStore) Reset(board string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(board))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// readJSON reads path into out; it reports whether the file existed.
func readJSON(path string, out any) (bool, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(b, out)
}

// writeJSON writes JSON via a temp file, then atomically replaces the
// target.
func writeJSON(path string, v any, mode os.FileMode) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
