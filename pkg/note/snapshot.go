package note

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Snapshot is the whole-store persisted form. The same shape backs the
// durable slot, the export file, and the import payload.
type Snapshot struct {
	CurrentTabID    string   `json:"currentTabId"`
	CurrentFolderID string   `json:"currentFolderId"`
	Tabs            []Tab    `json:"tabs"`
	Folders         []Folder `json:"folders"`
	Notes           []Note   `json:"notes"`
}

// Import failure modes surfaced to the user. Everything else in the core is
// a silent no-op.
var (
	ErrMalformedJSON = errors.New("note: import data is not valid JSON")
	ErrInvalidSchema = errors.New("note: import data is missing tabs, folders, or notes")
)

// Clone deep-copies the snapshot so callers can hand it out without
// aliasing the store's slices.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Tabs = append([]Tab(nil), s.Tabs...)
	out.Folders = append([]Folder(nil), s.Folders...)
	out.Notes = append([]Note(nil), s.Notes...)
	return out
}

// MarshalSnapshot serializes the compact form written to the durable slot.
func MarshalSnapshot(s Snapshot) ([]byte, error) {
	return json.Marshal(s)
}

// UnmarshalSnapshot deserializes slot contents.
func UnmarshalSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// ExportSnapshot serializes the pretty-printed backup form.
func ExportSnapshot(s Snapshot) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// ExportFilename names a backup file after the date it was taken.
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("family_notes_backup_%s.json", t.Format("2006-01-02"))
}

// ImportSnapshot parses and validates a backup payload. The result replaces
// the entire store, so callers must confirm with the user before applying
// it. Unparseable bytes yield ErrMalformedJSON; a document whose tabs,
// folders, or notes field is absent or not an array yields ErrInvalidSchema.
func ImportSnapshot(data []byte) (Snapshot, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	for _, field := range []string{"tabs", "folders", "notes"} {
		if err := requireArray(raw, field); err != nil {
			return Snapshot{}, err
		}
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	return s, nil
}

func requireArray(raw map[string]json.RawMessage, field string) error {
	msg, ok := raw[field]
	if !ok {
		return fmt.Errorf("%w: %s missing", ErrInvalidSchema, field)
	}
	var probe []json.RawMessage
	if err := json.Unmarshal(msg, &probe); err != nil || probe == nil {
		return fmt.Errorf("%w: %s is not an array", ErrInvalidSchema, field)
	}
	return nil
}
