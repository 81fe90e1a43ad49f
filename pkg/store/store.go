package store

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chouchoussy/FamilyNote/pkg/id"
	"github.com/chouchoussy/FamilyNote/pkg/note"
)

// Store is the single authoritative content tree: tabs, their folders, their
// notes, and the transient selection cursor. Every mutator enforces the tree
// invariants, persists the whole snapshot through the gateway, and then
// fires the change notifier so the view can re-query and redraw.
//
// Malformed input (blank names, unknown ids) is silently ignored. A failed
// save is a warning on stderr; the in-memory tree stays authoritative for
// the session.
type Store struct {
	gw     Gateway
	now    func() time.Time
	newID  func() string
	notify func()

	defaultTabName    string
	defaultFolderName string

	tabs    []note.Tab
	folders []note.Folder
	notes   []note.Note

	currentTabID    string
	currentFolderID string
}

// Option customises Store construction.
type Option func(*Store)

// WithClock overrides the time source used for note timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the identifier source.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithNotify registers the view's change callback. It runs after every
// completed mutation, including the ones init performs.
func WithNotify(fn func()) Option {
	return func(s *Store) { s.notify = fn }
}

// WithDefaults overrides the synthesized tab and folder display names.
func WithDefaults(tabName, folderName string) Option {
	return func(s *Store) {
		if strings.TrimSpace(tabName) != "" {
			s.defaultTabName = tabName
		}
		if strings.TrimSpace(folderName) != "" {
			s.defaultFolderName = folderName
		}
	}
}

// New loads the prior snapshot from the gateway (or starts empty when there
// is none) and normalizes it: at least one tab exists afterwards and the
// selection cursor points at a live tab.
func New(gw Gateway, opts ...Option) (*Store, error) {
	if gw == nil {
		return nil, errors.New("store: no gateway configured")
	}
	s := &Store{
		gw:                gw,
		now:               time.Now,
		newID:             id.New,
		defaultTabName:    note.DefaultTabName,
		defaultFolderName: note.DefaultFolderName,
	}
	for _, opt := range opts {
		opt(s)
	}

	snap, ok, err := gw.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: load: %v\n", err)
	} else if ok {
		s.apply(snap)
	}
	s.normalize()
	return s, nil
}

// apply installs snapshot contents without normalizing.
func (s *Store) apply(snap note.Snapshot) {
	snap = snap.Clone()
	s.tabs = snap.Tabs
	s.folders = snap.Folders
	s.notes = snap.Notes
	s.currentTabID = snap.CurrentTabID
	s.currentFolderID = snap.CurrentFolderID
}

// normalize restores the standing invariants after init or a wholesale
// replacement: a default tab is created when none exists, and a dangling
// cursor is reset to the first tab with the folder left for lazy
// re-derivation.
func (s *Store) normalize() {
	if len(s.tabs) == 0 {
		s.createDefaultTab()
		s.persist()
		return
	}
	if s.findTab(s.currentTabID) < 0 {
		s.currentTabID = s.tabs[0].ID
		s.currentFolderID = ""
	}
	if s.currentFolderID != "" {
		i := s.findFolder(s.currentFolderID)
		if i < 0 || s.folders[i].TabID != s.currentTabID {
			s.currentFolderID = ""
		}
	}
}

// CreateTab appends a tab, selects it, and synthesizes its default folder.
// Blank names are ignored.
func (s *Store) CreateTab(name string) (note.Tab, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return note.Tab{}, false
	}
	t := note.NewTab(s.newID(), name)
	s.tabs = append(s.tabs, t)
	s.currentTabID = t.ID

	f := note.NewFolder(s.newID(), s.defaultFolderName, t.ID)
	s.folders = append(s.folders, f)
	s.currentFolderID = f.ID

	s.persist()
	return t, true
}

// RenameTab updates a tab's display name. Unknown ids and blank names are
// ignored.
func (s *Store) RenameTab(tabID, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	i := s.findTab(tabID)
	if i < 0 {
		return
	}
	s.tabs[i].Name = name
	s.persist()
}

// DeleteTab removes a tab and cascades to all of its folders and notes. The
// first remaining tab becomes current; when the last tab goes, a fresh
// default tab takes its place.
func (s *Store) DeleteTab(tabID string) {
	i := s.findTab(tabID)
	if i < 0 {
		return
	}

	kept := s.folders[:0]
	for _, f := range s.folders {
		if f.TabID != tabID {
			kept = append(kept, f)
		}
	}
	s.folders = kept

	keptNotes := s.notes[:0]
	for _, n := range s.notes {
		if n.TabID != tabID {
			keptNotes = append(keptNotes, n)
		}
	}
	s.notes = keptNotes

	s.tabs = append(s.tabs[:i], s.tabs[i+1:]...)

	if len(s.tabs) > 0 {
		s.currentTabID = s.tabs[0].ID
		s.currentFolderID = ""
	} else {
		s.createDefaultTab()
	}
	s.persist()
}

// CreateFolder appends a folder to the current tab and selects it. Blank
// names are ignored.
func (s *Store) CreateFolder(name string) (note.Folder, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return note.Folder{}, false
	}
	f := note.NewFolder(s.newID(), name, s.currentTabID)
	s.folders = append(s.folders, f)
	s.currentFolderID = f.ID
	s.persist()
	return f, true
}

// RenameFolder updates a folder's display name. Unknown ids and blank names
// are ignored.
func (s *Store) RenameFolder(folderID, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	i := s.findFolder(folderID)
	if i < 0 {
		return
	}
	s.folders[i].Name = name
	s.persist()
}

// DeleteFolder removes a folder and cascades to its notes, then re-selects
// the first remaining folder of the current tab or synthesizes a fresh
// default one so the tab is never left folderless.
func (s *Store) DeleteFolder(folderID string) {
	i := s.findFolder(folderID)
	if i < 0 {
		return
	}

	kept := s.notes[:0]
	for _, n := range s.notes {
		if n.FolderID != folderID {
			kept = append(kept, n)
		}
	}
	s.notes = kept

	s.folders = append(s.folders[:i], s.folders[i+1:]...)

	s.currentFolderID = ""
	if remaining := s.foldersOf(s.currentTabID); len(remaining) > 0 {
		s.currentFolderID = remaining[0].ID
	} else {
		s.createDefaultFolder()
	}
	s.persist()
}

// CreateNote stores a new note under the current tab and folder, stamping it
// with the current time. A blank title falls back to the placeholder; the
// content blob is stored verbatim.
func (s *Store) CreateNote(title, content string) note.Note {
	s.ensureFolderSelection()
	n := note.NewNote(
		s.newID(),
		orUntitled(title),
		content,
		s.currentTabID,
		s.currentFolderID,
		note.At(s.now()),
	)
	s.notes = append(s.notes, n)
	s.persist()
	return n
}

// UpdateNote replaces a note's title and content wholesale. Unknown ids are
// ignored; a blank title falls back to the placeholder.
func (s *Store) UpdateNote(noteID, title, content string) {
	i := s.findNote(noteID)
	if i < 0 {
		return
	}
	s.notes[i].Title = orUntitled(title)
	s.notes[i].Content = content
	s.persist()
}

// DeleteNote removes a note by id. Unknown ids are ignored.
func (s *Store) DeleteNote(noteID string) {
	i := s.findNote(noteID)
	if i < 0 {
		return
	}
	s.notes = append(s.notes[:i], s.notes[i+1:]...)
	s.persist()
}

// SelectTab moves the cursor to the given tab and clears the folder
// selection so it is re-derived against the new tab.
func (s *Store) SelectTab(tabID string) {
	if s.findTab(tabID) < 0 {
		return
	}
	s.currentTabID = tabID
	s.currentFolderID = ""
	s.persist()
}

// SelectFolder moves the cursor to the given folder. The folder must belong
// to the current tab.
func (s *Store) SelectFolder(folderID string) {
	i := s.findFolder(folderID)
	if i < 0 || s.folders[i].TabID != s.currentTabID {
		return
	}
	s.currentFolderID = folderID
	s.persist()
}

// Folders lists the current tab's folders in insertion order. This is the
// lazy enforcement point for the at-least-one-folder invariant: a tab found
// folderless here gets its default folder synthesized and selected before
// anything folder-scoped proceeds.
func (s *Store) Folders() []note.Folder {
	s.ensureFolderSelection()
	return s.foldersOf(s.currentTabID)
}

// Tabs lists all tabs in insertion order.
func (s *Store) Tabs() []note.Tab {
	return append([]note.Tab(nil), s.tabs...)
}

// Selection returns the cursor as (currentTabID, currentFolderID).
func (s *Store) Selection() (string, string) {
	return s.currentTabID, s.currentFolderID
}

// Snapshot returns a deep copy of the whole store, both the query layer's
// read view and the persistence payload.
func (s *Store) Snapshot() note.Snapshot {
	return note.Snapshot{
		CurrentTabID:    s.currentTabID,
		CurrentFolderID: s.currentFolderID,
		Tabs:            s.tabs,
		Folders:         s.folders,
		Notes:           s.notes,
	}.Clone()
}

// Replace swaps in an imported snapshot wholesale, then re-normalizes and
// persists. The caller is responsible for having confirmed the replacement
// with the user.
func (s *Store) Replace(snap note.Snapshot) {
	s.apply(snap)
	if len(s.tabs) == 0 {
		s.createDefaultTab()
	} else {
		s.normalize()
	}
	s.persist()
}

func (s *Store) ensureFolderSelection() {
	if s.currentTabID == "" {
		s.createDefaultTab()
		s.persist()
		return
	}
	tabFolders := s.foldersOf(s.currentTabID)
	if len(tabFolders) == 0 {
		s.createDefaultFolder()
		s.persist()
		return
	}
	if s.currentFolderID == "" {
		s.currentFolderID = tabFolders[0].ID
		return
	}
	for _, f := range tabFolders {
		if f.ID == s.currentFolderID {
			return
		}
	}
	s.currentFolderID = tabFolders[0].ID
}

func (s *Store) createDefaultTab() {
	t := note.NewTab(s.newID(), s.defaultTabName)
	s.tabs = append(s.tabs, t)
	s.currentTabID = t.ID
	s.createDefaultFolder()
}

func (s *Store) createDefaultFolder() {
	f := note.NewFolder(s.newID(), s.defaultFolderName, s.currentTabID)
	s.folders = append(s.folders, f)
	s.currentFolderID = f.ID
}

func (s *Store) foldersOf(tabID string) []note.Folder {
	out := make([]note.Folder, 0, len(s.folders))
	for _, f := range s.folders {
		if f.TabID == tabID {
			out = append(out, f)
		}
	}
	return out
}

func (s *Store) findTab(tabID string) int {
	for i, t := range s.tabs {
		if t.ID == tabID {
			return i
		}
	}
	return -1
}

func (s *Store) findFolder(folderID string) int {
	for i, f := range s.folders {
		if f.ID == folderID {
			return i
		}
	}
	return -1
}

func (s *Store) findNote(noteID string) int {
	for i, n := range s.notes {
		if n.ID == noteID {
			return i
		}
	}
	return -1
}

// persist writes the whole snapshot and signals the view. Storage being
// unavailable is not fatal; the in-memory tree remains authoritative.
func (s *Store) persist() {
	if err := s.gw.Save(s.Snapshot()); err != nil {
		fmt.Fprintf(os.Stderr, "store: save: %v\n", err)
	}
	if s.notify != nil {
		s.notify()
	}
}

func orUntitled(title string) string {
	if strings.TrimSpace(title) == "" {
		return note.UntitledTitle
	}
	return strings.TrimSpace(title)
}
