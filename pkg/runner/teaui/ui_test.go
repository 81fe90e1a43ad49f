package teaui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/chouchoussy/FamilyNote/pkg/store"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	s, err := store.New(store.NewMemory())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return New(s, nil, nil)
}

func itemTitles(m Model, pane int) []string {
	l := m.noteList
	switch pane {
	case paneTabs:
		l = m.tabList
	case paneFolders:
		l = m.folderList
	}
	out := make([]string, 0, len(l.Items()))
	for _, it := range l.Items() {
		out = append(out, it.(paneItem).title)
	}
	return out
}

func TestRefreshPopulatesPanes(t *testing.T) {
	m := newTestModel(t)

	if got := itemTitles(m, paneTabs); len(got) != 1 {
		t.Fatalf("expected the default tab listed, got %v", got)
	}
	if got := itemTitles(m, paneFolders); len(got) != 1 {
		t.Fatalf("expected the default folder listed, got %v", got)
	}
	if got := itemTitles(m, paneNotes); len(got) != 0 {
		t.Fatalf("expected no notes, got %v", got)
	}
}

func TestApplyInputAddsTab(t *testing.T) {
	m := newTestModel(t)
	m.focus = paneTabs
	m.enterInsert()
	m.applyInput("Recipes")
	m.refresh()

	got := itemTitles(m, paneTabs)
	if len(got) != 2 || got[1] != "Recipes" {
		t.Fatalf("expected new tab listed, got %v", got)
	}
	if m.status != "Tab added" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestApplyInputRejectsBlankTab(t *testing.T) {
	m := newTestModel(t)
	m.focus = paneTabs
	m.enterInsert()
	m.applyInput("")
	m.refresh()

	if got := itemTitles(m, paneTabs); len(got) != 1 {
		t.Fatalf("blank input must not add a tab, got %v", got)
	}
	if m.status != "Tab name must not be empty" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestApplyInputAddsNote(t *testing.T) {
	m := newTestModel(t)
	m.focus = paneNotes
	m.enterInsert()
	m.applyInput("Shopping")
	m.refresh()

	got := itemTitles(m, paneNotes)
	if len(got) != 1 || got[0] != "Shopping" {
		t.Fatalf("expected note listed, got %v", got)
	}
}

func TestDeleteSelectedNote(t *testing.T) {
	m := newTestModel(t)
	m.st.CreateNote("Shopping", "")
	m.refresh()

	m.focus = paneNotes
	m.deleteSelected()
	m.refresh()

	if got := itemTitles(m, paneNotes); len(got) != 0 {
		t.Fatalf("expected note deleted, got %v", got)
	}
	if m.status != "Note deleted" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestSearchFiltersNotePane(t *testing.T) {
	m := newTestModel(t)
	m.st.CreateNote("Shopping list", "<p>milk</p>")
	m.st.CreateNote("Chores", "<p>vacuum</p>")

	m.search = "shopping"
	m.refresh()
	if got := itemTitles(m, paneNotes); len(got) != 1 || got[0] != "Shopping list" {
		t.Fatalf("expected filtered pane, got %v", got)
	}

	m.search = ""
	m.refresh()
	if got := itemTitles(m, paneNotes); len(got) != 2 {
		t.Fatalf("expected full pane after clearing search, got %v", got)
	}
}

func TestAttachmentMarkerInNotePane(t *testing.T) {
	m := newTestModel(t)
	m.st.CreateNote("Photos", `<img src="x">`)
	m.refresh()

	got := itemTitles(m, paneNotes)
	if len(got) != 1 || !strings.Contains(got[0], "📎") {
		t.Fatalf("expected attachment marker, got %v", got)
	}
}

func TestStoreChangedMsgRefreshes(t *testing.T) {
	m := newTestModel(t)
	m.st.CreateNote("Outside write", "")

	updated, _ := m.Update(storeChangedMsg{})
	m = updated.(Model)

	if got := itemTitles(m, paneNotes); len(got) != 1 {
		t.Fatalf("expected refreshed pane, got %v", got)
	}
}

func TestPaneFocusMovement(t *testing.T) {
	m := newTestModel(t)
	m.focus = paneNotes

	updated, _ := m.Update(tea.KeyPressMsg{Code: 'h', Text: "h"})
	m = updated.(Model)
	if m.focus != paneFolders {
		t.Fatalf("expected folder pane focus, got %d", m.focus)
	}

	updated, _ = m.Update(tea.KeyPressMsg{Code: 'l', Text: "l"})
	m = updated.(Model)
	if m.focus != paneNotes {
		t.Fatalf("expected note pane focus, got %d", m.focus)
	}
}

func TestViewShowsModeAndStatus(t *testing.T) {
	m := newTestModel(t)
	m.status = "hello"
	out := m.View()
	if !strings.Contains(out, "[NORMAL] hello") {
		t.Fatalf("expected status line in view, got %q", out)
	}
}
