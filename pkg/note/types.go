// Package note defines the FamilyNote content entities and the persisted
// snapshot format shared by the store, the gateways, and the query layer.
package note

// Default display names used whenever the store has to synthesize an entity
// on the user's behalf.
const (
	DefaultTabName    = "General notes"
	DefaultFolderName = "Default"
	UntitledTitle     = "Untitled"
)

// Tab is a top-level namespace for folders and notes.
type Tab struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Folder groups notes inside a tab. Every tab owns at least one folder at
// all times; the store synthesizes a default one when the count hits zero.
type Folder struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	TabID string `json:"tabId"`
}

// Note is a titled rich-text document. Content is an opaque markup blob; the
// core never parses or sanitizes it beyond the text projection used for
// search.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	TabID     string    `json:"tabId"`
	FolderID  string    `json:"folderId"`
	CreatedAt Timestamp `json:"createdAt"`
}

func NewTab(id, name string) Tab {
	return Tab{ID: id, Name: name}
}

func NewFolder(id, name, tabID string) Folder {
	return Folder{ID: id, Name: name, TabID: tabID}
}

func NewNote(id, title, content, tabID, folderID string, created Timestamp) Note {
	return Note{
		ID:        id,
		Title:     title,
		Content:   content,
		TabID:     tabID,
		FolderID:  folderID,
		CreatedAt: created,
	}
}
