// Package query derives read-only views from a store snapshot: folder and
// note listings, free-text search, recency ordering, and the presentation
// hints the note list renders from. Nothing here mutates the tree or
// touches persistence.
package query

import (
	"html"
	"regexp"
	"sort"
	"strings"
	"unicode/utf16"

	"github.com/chouchoussy/FamilyNote/pkg/note"
)

// FoldersForTab filters folders by tab, preserving insertion order.
func FoldersForTab(folders []note.Folder, tabID string) []note.Folder {
	out := make([]note.Folder, 0, len(folders))
	for _, f := range folders {
		if f.TabID == tabID {
			out = append(out, f)
		}
	}
	return out
}

// NotesForFolder filters notes by tab and folder, preserving insertion
// order.
func NotesForFolder(notes []note.Note, tabID, folderID string) []note.Note {
	out := make([]note.Note, 0, len(notes))
	for _, n := range notes {
		if n.TabID == tabID && n.FolderID == folderID {
			out = append(out, n)
		}
	}
	return out
}

// SearchNotes returns the folder's notes whose title or stripped content
// contains term, case-insensitively. An empty term returns the unfiltered
// folder listing.
func SearchNotes(notes []note.Note, tabID, folderID, term string) []note.Note {
	scoped := NotesForFolder(notes, tabID, folderID)
	if term == "" {
		return scoped
	}
	needle := strings.ToLower(term)
	out := make([]note.Note, 0, len(scoped))
	for _, n := range scoped {
		if strings.Contains(strings.ToLower(n.Title), needle) ||
			strings.Contains(strings.ToLower(StripMarkup(n.Content)), needle) {
			out = append(out, n)
		}
	}
	return out
}

// SortByRecency orders notes newest first. The sort is stable: notes
// sharing a timestamp keep their insertion order. The input is not
// modified.
func SortByRecency(notes []note.Note) []note.Note {
	out := append([]note.Note(nil), notes...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt.Time)
	})
	return out
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripMarkup projects a content blob to plain text: markup tags removed,
// entities decoded. Search and the CLI preview both run over this
// projection.
func StripMarkup(content string) string {
	return html.UnescapeString(tagPattern.ReplaceAllString(content, ""))
}

// AccentColor hashes a title to a hue in [0, 360). The algorithm is part of
// the persisted-data contract: h = h*31 + unit over UTF-16 code units with
// 32-bit signed overflow, absolute value, mod 360. Identical titles map to
// the same hue on every platform and run.
func AccentColor(title string) int {
	var h int32
	for _, unit := range utf16.Encode([]rune(title)) {
		h = h*31 + int32(unit)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return int(v % 360)
}

// Attachment marker substrings the editor embeds in content. These must
// match data exported by existing installs, so they are matched verbatim.
const (
	fileAttachmentMarker = "file-attachment"
	inlineImageMarker    = "<img"
)

// HasAttachments reports whether the content blob embeds an image or a file
// attachment.
func HasAttachments(content string) bool {
	return strings.Contains(content, fileAttachmentMarker) ||
		strings.Contains(content, inlineImageMarker)
}
