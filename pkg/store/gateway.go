// Package store owns the in-memory content tree and its persistence. The
// Store enforces the tree invariants; a Gateway carries whole-store
// snapshots to and from durable storage.
package store

import (
	"sync"

	"github.com/chouchoussy/FamilyNote/pkg/note"
)

// Gateway is the persistence contract for the content tree. Save overwrites
// the durable slot with the full snapshot; Load reads it back. A missing or
// unparseable slot is reported as ok=false, not as an error.
type Gateway interface {
	Save(s note.Snapshot) error
	Load() (s note.Snapshot, ok bool, err error)
}

// Memory is an in-process Gateway. The store takes its persistence as an
// injected collaborator, so tests and the UI demo run against this instead
// of a disk slot.
type Memory struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

// NewMemory returns an empty in-process gateway.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Save(s note.Snapshot) error {
	data, err := note.MarshalSnapshot(s)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
	m.saves++
	return nil
}

func (m *Memory) Load() (note.Snapshot, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return note.Snapshot{}, false, nil
	}
	s, err := note.UnmarshalSnapshot(m.data)
	if err != nil {
		return note.Snapshot{}, false, nil
	}
	return s, true, nil
}

// Saves reports how many snapshots have been written.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
