package note

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func sampleSnapshot() Snapshot {
	return Snapshot{
		CurrentTabID:    "t1",
		CurrentFolderID: "f1",
		Tabs:            []Tab{{ID: "t1", Name: "Recipes"}},
		Folders:         []Folder{{ID: "f1", Name: "Dinners", TabID: "t1"}},
		Notes: []Note{{
			ID:        "n1",
			Title:     "Soup",
			Content:   "<p>tomato</p>",
			TabID:     "t1",
			FolderID:  "f1",
			CreatedAt: At(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)),
		}},
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	data, err := MarshalSnapshot(sampleSnapshot())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := UnmarshalSnapshot(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.CurrentTabID != "t1" || got.CurrentFolderID != "f1" {
		t.Fatalf("selection lost: %+v", got)
	}
	if len(got.Notes) != 1 || got.Notes[0].Content != "<p>tomato</p>" {
		t.Fatalf("note lost: %+v", got.Notes)
	}
	if !got.Notes[0].CreatedAt.Equal(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("timestamp lost: %v", got.Notes[0].CreatedAt)
	}
}

func TestSnapshotFieldNames(t *testing.T) {
	data, err := MarshalSnapshot(sampleSnapshot())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("reparse: %v", err)
	}
	for _, field := range []string{"currentTabId", "currentFolderId", "tabs", "folders", "notes"} {
		if _, ok := raw[field]; !ok {
			t.Fatalf("missing field %q in %s", field, data)
		}
	}
	if !strings.Contains(string(data), `"tabId":"t1"`) {
		t.Fatalf("expected camelCase tabId in %s", data)
	}
	if !strings.Contains(string(data), `"createdAt":"2026-03-14T09:00:00Z"`) {
		t.Fatalf("expected RFC3339 createdAt in %s", data)
	}
}

func TestExportSnapshotIsIndented(t *testing.T) {
	data, err := ExportSnapshot(sampleSnapshot())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(string(data), "\n  \"tabs\"") {
		t.Fatalf("expected two-space indentation, got %s", data)
	}
	if _, err := ImportSnapshot(data); err != nil {
		t.Fatalf("exported backup should import cleanly: %v", err)
	}
}

func TestExportFilename(t *testing.T) {
	got := ExportFilename(time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC))
	if got != "family_notes_backup_2026-03-14.json" {
		t.Fatalf("unexpected filename %q", got)
	}
}

func TestImportSnapshotMalformed(t *testing.T) {
	_, err := ImportSnapshot([]byte("{not json"))
	if !errors.Is(err, ErrMalformedJSON) {
		t.Fatalf("expected ErrMalformedJSON, got %v", err)
	}
}

func TestImportSnapshotInvalidSchema(t *testing.T) {
	cases := []string{
		`{}`,
		`{"tabs":[],"folders":[]}`,
		`{"tabs":"nope","folders":[],"notes":[]}`,
		`{"tabs":null,"folders":[],"notes":[]}`,
		`[]`,
	}
	for _, c := range cases {
		_, err := ImportSnapshot([]byte(c))
		if c == `[]` {
			// A top-level array is not even an object; it fails the first
			// parse into a keyed document.
			if err == nil {
				t.Fatalf("expected error for %s", c)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidSchema) {
			t.Fatalf("expected ErrInvalidSchema for %s, got %v", c, err)
		}
	}
}

func TestImportSnapshotAcceptsMinimalDocument(t *testing.T) {
	snap, err := ImportSnapshot([]byte(`{"tabs":[],"folders":[],"notes":[]}`))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(snap.Tabs) != 0 || len(snap.Folders) != 0 || len(snap.Notes) != 0 {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	orig := sampleSnapshot()
	cp := orig.Clone()
	cp.Tabs[0].Name = "Changed"
	if orig.Tabs[0].Name != "Recipes" {
		t.Fatal("clone aliases the original slices")
	}
}
