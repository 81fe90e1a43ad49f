package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"github.com/chouchoussy/FamilyNote/pkg/note"
)

// Fixed slot keys inside the database directory. The content tree and the
// theme preference persist independently.
const (
	DataKey  = "familyNotesData"
	ThemeKey = "familyNotesTheme"
)

// Disk is the diskv-backed persistence. It implements Gateway for the
// content tree and hands out raw Slots for everything else.
type Disk struct {
	d        *diskv.Diskv
	basePath string
}

// Open creates a Disk rooted at the configured base path. A nil config
// falls back to LoadConfig.
func Open(cfg Config) (*Disk, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &Disk{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// Save overwrites the content slot with the full snapshot.
func (d *Disk) Save(s note.Snapshot) error {
	data, err := note.MarshalSnapshot(s)
	if err != nil {
		return fmt.Errorf("store: marshal snapshot: %w", err)
	}
	if err := d.d.Write(DataKey, data); err != nil {
		return fmt.Errorf("store: write %s: %w", DataKey, err)
	}
	return nil
}

// Load reads the content slot back. A missing or unparseable slot counts as
// no prior data, not as an error.
func (d *Disk) Load() (note.Snapshot, bool, error) {
	data, err := d.d.Read(DataKey)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return note.Snapshot{}, false, nil
		}
		return note.Snapshot{}, false, fmt.Errorf("store: read %s: %w", DataKey, err)
	}
	s, err := note.UnmarshalSnapshot(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: %s unreadable, starting fresh: %v\n", DataKey, err)
		return note.Snapshot{}, false, nil
	}
	return s, true, nil
}

// Slot exposes a single durable key for collaborators that persist outside
// the content tree, like the theme preference.
func (d *Disk) Slot(key string) *Slot {
	return &Slot{d: d.d, key: key}
}

// Slot is one durable key-value entry.
type Slot struct {
	d   *diskv.Diskv
	key string
}

// Write overwrites the slot contents.
func (s *Slot) Write(data []byte) error {
	return s.d.Write(s.key, data)
}

// Read returns the slot contents, with ok=false when the slot is absent.
func (s *Slot) Read() ([]byte, bool, error) {
	data, err := s.d.Read(s.key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}
