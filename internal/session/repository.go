package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNoSession is returned when no persisted session exists yet.
var ErrNoSession = errors.New("session: no stored session")

// StateStore persists session snapshots.
type StateStore interface {
	Load() (Snapshot, error)
	Save(Snapshot) error
	Clear() error
}

// FileRepository stores the session snapshot as a JSON file.
type FileRepository struct {
	path string
}

// NewFileRepository creates a repository backed by path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Path returns the file backing this repository.
func (r *FileRepository) Path() string {
	return r.path
}

// Load reads the persisted snapshot if present.
func (r *FileRepository) Load() (Snapshot, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Snapshot{}, ErrNoSession
		}
		return Snapshot{}, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Save writes the snapshot to a temp file and renames it into place.
func (r *FileRepository) Save(snap Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}
	encoded, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, append(encoded, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, r.path)
}

// Clear removes the persisted snapshot.
func (r *FileRepository) Clear() error {
	if err := os.Remove(r.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// MemoryRepository keeps the snapshot in process memory. It backs sessions
// that must not outlive the process.
type MemoryRepository struct {
	snap  *Snapshot
	saves int
}

// NewMemoryRepository returns an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Load() (Snapshot, error) {
	if r.snap == nil {
		return Snapshot{}, ErrNoSession
	}
	return r.snap.clone(), nil
}

func (r *MemoryRepository) Save(snap Snapshot) error {
	clone := snap.clone()
	r.snap = &clone
	r.saves++
	return nil
}

func (r *MemoryRepository) Clear() error {
	r.snap = nil
	return nil
}

// Saves reports how many snapshots have been written.
func (r *MemoryRepository) Saves() int {
	return r.saves
}
