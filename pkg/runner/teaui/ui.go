// Package teaui is the interactive three-pane browser: tabs, folders, and
// notes. It is a view over the store; every mutation goes through the store
// mutators and the panes re-query afterwards.
package teaui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/chouchoussy/FamilyNote/pkg/query"
	"github.com/chouchoussy/FamilyNote/pkg/store"
	"github.com/chouchoussy/FamilyNote/pkg/theme"
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeSearch
)

type action int

const (
	actionNone action = iota
	actionAddTab
	actionAddFolder
	actionAddNote
	actionRename
)

const (
	paneTabs = iota
	paneFolders
	paneNotes
)

type paneItem struct {
	id    string
	title string
	desc  string
}

func (p paneItem) Title() string       { return p.title }
func (p paneItem) Description() string { return p.desc }
func (p paneItem) FilterValue() string { return p.title }

// Model contains UI state.
type Model struct {
	st     *store.Store
	pref   *theme.Preference
	events <-chan store.Event

	mode   mode
	action action
	focus  int

	tabList    list.Model
	folderList list.Model
	noteList   list.Model

	input  textinput.Model
	search string
	status string

	termWidth  int
	termHeight int
}

// New creates a UI model backed by the store. events may be nil; when set,
// slot changes from other processes refresh the panes live.
func New(st *store.Store, pref *theme.Preference, events <-chan store.Event) Model {
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)
	dNotes := list.NewDefaultDelegate()
	dNotes.SetSpacing(0)

	l1 := list.New([]list.Item{}, d, 24, 20)
	l1.Title = "Tabs"
	l1.SetShowHelp(false)
	l1.SetShowStatusBar(false)

	l2 := list.New([]list.Item{}, d, 24, 20)
	l2.Title = "Folders"
	l2.SetShowHelp(false)
	l2.SetShowStatusBar(false)

	l3 := list.New([]list.Item{}, dNotes, 60, 20)
	l3.Title = "Notes"
	l3.SetShowHelp(false)
	l3.SetShowStatusBar(false)

	ti := textinput.New()
	ti.Placeholder = "Type here"
	ti.CharLimit = 256
	ti.Prompt = ""
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline

	m := Model{
		st:         st,
		pref:       pref,
		events:     events,
		mode:       modeNormal,
		action:     actionNone,
		focus:      paneNotes,
		tabList:    l1,
		folderList: l2,
		noteList:   l3,
		input:      ti,
		status:     "NORMAL: h/l panes, j/k move, enter select, o add, i rename, x delete, / search, q quit",
	}
	m.refresh()
	return m
}

type storeChangedMsg struct{}

func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m *Model) waitForChange() tea.Cmd {
	if m.events == nil {
		return nil
	}
	events := m.events
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

// refresh re-queries the store and rebuilds all three panes.
func (m *Model) refresh() {
	m.st.Folders()
	snap := m.st.Snapshot()

	tabs := make([]list.Item, 0, len(snap.Tabs))
	tabIndex := 0
	for i, t := range snap.Tabs {
		if t.ID == snap.CurrentTabID {
			tabIndex = i
		}
		tabs = append(tabs, paneItem{id: t.ID, title: t.Name})
	}
	m.tabList.SetItems(tabs)
	m.tabList.Select(tabIndex)

	folders := query.FoldersForTab(snap.Folders, snap.CurrentTabID)
	folderItems := make([]list.Item, 0, len(folders))
	folderIndex := 0
	for i, f := range folders {
		if f.ID == snap.CurrentFolderID {
			folderIndex = i
		}
		folderItems = append(folderItems, paneItem{id: f.ID, title: f.Name})
	}
	m.folderList.SetItems(folderItems)
	m.folderList.Select(folderIndex)

	notes := query.SearchNotes(snap.Notes, snap.CurrentTabID, snap.CurrentFolderID, m.search)
	notes = query.SortByRecency(notes)
	noteItems := make([]list.Item, 0, len(notes))
	for _, n := range notes {
		title := n.Title
		if query.HasAttachments(n.Content) {
			title += " 📎"
		}
		desc := strings.TrimSpace(query.StripMarkup(n.Content))
		noteItems = append(noteItems, paneItem{id: n.ID, title: title, desc: desc})
	}
	m.noteList.SetItems(noteItems)
	if len(noteItems) > 0 {
		m.noteList.Select(0)
	}
}

func (m *Model) focused() *list.Model {
	switch m.focus {
	case paneTabs:
		return &m.tabList
	case paneFolders:
		return &m.folderList
	default:
		return &m.noteList
	}
}

func (m *Model) selectedID() string {
	l := m.focused()
	if len(l.Items()) == 0 {
		return ""
	}
	sel := l.SelectedItem()
	if sel == nil {
		return ""
	}
	return sel.(paneItem).id
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	skipListRouting := false

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case storeChangedMsg:
		m.refresh()
		m.status = "Refreshed (storage changed)"
		cmds = append(cmds, m.waitForChange())
	case tea.KeyPressMsg:
		switch m.mode {
		case modeInsert:
			switch msg.String() {
			case "enter":
				m.applyInput(strings.TrimSpace(m.input.Value()))
				m.mode = modeNormal
				m.action = actionNone
				m.input.Reset()
				m.input.Blur()
				m.refresh()
				skipListRouting = true
			case "esc":
				m.mode = modeNormal
				m.action = actionNone
				m.input.Reset()
				m.input.Blur()
				m.status = "Cancelled"
				skipListRouting = true
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		case modeSearch:
			switch msg.String() {
			case "enter", "esc":
				if msg.String() == "esc" {
					m.search = ""
					m.input.Reset()
				}
				m.mode = modeNormal
				m.input.Blur()
				m.refresh()
				skipListRouting = true
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
				m.search = m.input.Value()
				m.refresh()
			}
		case modeNormal:
			switch msg.String() {
			case "h", "left":
				if m.focus > paneTabs {
					m.focus--
				}
			case "l", "right":
				if m.focus < paneNotes {
					m.focus++
				}
			case "enter":
				id := m.selectedID()
				switch m.focus {
				case paneTabs:
					m.st.SelectTab(id)
				case paneFolders:
					m.st.SelectFolder(id)
				}
				m.refresh()
			case "o":
				m.enterInsert()
				cmds = append(cmds, textinput.Blink)
				skipListRouting = true
			case "i":
				if id := m.selectedID(); id != "" {
					m.action = actionRename
					m.mode = modeInsert
					m.input.Placeholder = "New name"
					m.input.SetValue("")
					if cmd := m.input.Focus(); cmd != nil {
						cmds = append(cmds, cmd)
					}
					cmds = append(cmds, textinput.Blink)
					skipListRouting = true
				}
			case "x":
				m.deleteSelected()
				m.refresh()
			case "/":
				m.mode = modeSearch
				m.input.Placeholder = "Search notes"
				m.input.SetValue(m.search)
				if cmd := m.input.Focus(); cmd != nil {
					cmds = append(cmds, cmd)
				}
				cmds = append(cmds, textinput.Blink)
				skipListRouting = true
			case "d":
				if m.pref != nil {
					m.status = "Theme: " + string(m.pref.Toggle())
				}
			case "r":
				m.refresh()
			case "q", "ctrl+c":
				cmds = append(cmds, tea.Quit)
			}
		}
	}

	if m.mode == modeNormal && !skipListRouting {
		var cmd tea.Cmd
		switch m.focus {
		case paneTabs:
			m.tabList, cmd = m.tabList.Update(msg)
		case paneFolders:
			m.folderList, cmd = m.folderList.Update(msg)
		default:
			m.noteList, cmd = m.noteList.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) enterInsert() {
	switch m.focus {
	case paneTabs:
		m.action = actionAddTab
		m.input.Placeholder = "New tab name"
	case paneFolders:
		m.action = actionAddFolder
		m.input.Placeholder = "New folder name"
	default:
		m.action = actionAddNote
		m.input.Placeholder = "New note title"
	}
	m.mode = modeInsert
	m.input.SetValue("")
	m.input.Focus()
}

func (m *Model) applyInput(input string) {
	switch m.action {
	case actionAddTab:
		if _, ok := m.st.CreateTab(input); ok {
			m.status = "Tab added"
		} else {
			m.status = "Tab name must not be empty"
		}
	case actionAddFolder:
		if _, ok := m.st.CreateFolder(input); ok {
			m.status = "Folder added"
		} else {
			m.status = "Folder name must not be empty"
		}
	case actionAddNote:
		n := m.st.CreateNote(input, "")
		m.status = fmt.Sprintf("Note %q added", n.Title)
	case actionRename:
		id := m.selectedID()
		switch m.focus {
		case paneTabs:
			m.st.RenameTab(id, input)
			m.status = "Tab renamed"
		case paneFolders:
			m.st.RenameFolder(id, input)
			m.status = "Folder renamed"
		default:
			snap := m.st.Snapshot()
			for _, n := range snap.Notes {
				if n.ID == id {
					m.st.UpdateNote(id, input, n.Content)
					m.status = "Note renamed"
					break
				}
			}
		}
	}
}

func (m *Model) deleteSelected() {
	id := m.selectedID()
	if id == "" {
		return
	}
	switch m.focus {
	case paneTabs:
		m.st.DeleteTab(id)
		m.status = "Tab deleted"
	case paneFolders:
		m.st.DeleteFolder(id)
		m.status = "Folder deleted"
	default:
		m.st.DeleteNote(id)
		m.status = "Note deleted"
	}
}

// View renders the three panes plus the input line and status bar.
func (m Model) View() string {
	gap := lipgloss.NewStyle().Padding(0, 1).Render
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.tabList.View(), gap(" "), m.folderList.View(), gap(" "), m.noteList.View())

	statusColor := lipgloss.Color("241")
	if m.pref != nil && m.pref.Get() == theme.Light {
		statusColor = lipgloss.Color("245")
	}
	modeStr := map[mode]string{modeNormal: "NORMAL", modeInsert: "INSERT", modeSearch: "SEARCH"}[m.mode]
	status := lipgloss.NewStyle().Foreground(statusColor).
		Render(fmt.Sprintf("[%s] %s", modeStr, m.status))

	if m.mode == modeInsert {
		body += "\n\n" + m.input.Placeholder + ": " + m.input.View()
	}
	if m.mode == modeSearch {
		body += "\n\n/" + m.input.View()
	}

	return body + "\n\n" + status
}

// applySizes recalculates pane sizes from the terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	side := m.termWidth / 4
	if side < 20 {
		side = 20
	}
	if side > 32 {
		side = 32
	}
	right := m.termWidth - 2*side - 6
	if right < 24 {
		right = 24
	}
	height := m.termHeight - 4
	if height < 8 {
		height = 8
	}
	m.tabList.SetSize(side, height)
	m.folderList.SetSize(side, height)
	m.noteList.SetSize(right, height)
}

// Run launches the browser until the user quits.
func Run(st *store.Store, pref *theme.Preference, events <-chan store.Event) error {
	p := tea.NewProgram(New(st, pref, events), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
