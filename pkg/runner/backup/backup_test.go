package backup

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chouchoussy/FamilyNote/pkg/note"
	"github.com/chouchoussy/FamilyNote/pkg/store"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(store.NewMemory())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func TestExportWritesDatedBackup(t *testing.T) {
	s := newStore(t)
	s.CreateNote("Soup", "<p>tomato</p>")
	dir := t.TempDir()

	e := Export{Dir: dir, Store: s}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("export: %v", err)
	}

	path := filepath.Join(dir, note.ExportFilename(time.Now()))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	snap, err := note.ImportSnapshot(data)
	if err != nil {
		t.Fatalf("backup should import cleanly: %v", err)
	}
	if len(snap.Notes) != 1 || snap.Notes[0].Title != "Soup" {
		t.Fatalf("backup missing note: %+v", snap.Notes)
	}
}

func writeBackup(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "backup.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write backup: %v", err)
	}
	return path
}

func TestImportReplacesStore(t *testing.T) {
	s := newStore(t)
	s.CreateNote("Old", "")
	path := writeBackup(t, `{
	  "currentTabId": "t9",
	  "currentFolderId": "f9",
	  "tabs": [{"id":"t9","name":"Imported"}],
	  "folders": [{"id":"f9","name":"Inbox","tabId":"t9"}],
	  "notes": []
	}`)

	i := Import{Path: path, Confirmed: true, Store: s}
	if err := i.Do(context.Background()); err != nil {
		t.Fatalf("import: %v", err)
	}

	tabs := s.Tabs()
	if len(tabs) != 1 || tabs[0].Name != "Imported" {
		t.Fatalf("expected imported tab only, got %+v", tabs)
	}
	if len(s.Snapshot().Notes) != 0 {
		t.Fatal("expected prior notes replaced")
	}
}

func TestImportRejectsInvalidSchemaUntouched(t *testing.T) {
	s := newStore(t)
	n := s.CreateNote("Keep me", "")
	path := writeBackup(t, `{"tabs":[],"folders":[]}`)

	i := Import{Path: path, Confirmed: true, Store: s}
	err := i.Do(context.Background())
	if !errors.Is(err, note.ErrInvalidSchema) {
		t.Fatalf("expected ErrInvalidSchema, got %v", err)
	}
	if got := s.Snapshot().Notes; len(got) != 1 || got[0].ID != n.ID {
		t.Fatal("failed import must leave the store untouched")
	}
}

func TestImportRejectsMalformedJSON(t *testing.T) {
	s := newStore(t)
	path := writeBackup(t, `{broken`)

	i := Import{Path: path, Confirmed: true, Store: s}
	if err := i.Do(context.Background()); !errors.Is(err, note.ErrMalformedJSON) {
		t.Fatalf("expected ErrMalformedJSON, got %v", err)
	}
}

func TestImportPromptAborts(t *testing.T) {
	s := newStore(t)
	before := s.Tabs()
	path := writeBackup(t, `{"tabs":[{"id":"t9","name":"Imported"}],"folders":[],"notes":[]}`)

	i := Import{Path: path, In: strings.NewReader("n\n"), Store: s}
	if err := i.Do(context.Background()); err == nil {
		t.Fatal("expected abort error on declined prompt")
	}
	if got := s.Tabs(); len(got) != len(before) || got[0].ID != before[0].ID {
		t.Fatal("declined import must leave the store untouched")
	}
}

func TestImportPromptAccepts(t *testing.T) {
	s := newStore(t)
	path := writeBackup(t, `{"tabs":[{"id":"t9","name":"Imported"}],"folders":[],"notes":[]}`)

	i := Import{Path: path, In: strings.NewReader("yes\n"), Store: s}
	if err := i.Do(context.Background()); err != nil {
		t.Fatalf("import: %v", err)
	}
	if got := s.Tabs(); len(got) != 1 || got[0].Name != "Imported" {
		t.Fatalf("expected imported tab, got %+v", got)
	}
}
