// Package get lists the notes of the current tab and folder.
package get

import (
	"context"
	"errors"

	"github.com/chouchoussy/FamilyNote/pkg/note"
	"github.com/chouchoussy/FamilyNote/pkg/printers"
	"github.com/chouchoussy/FamilyNote/pkg/query"
	"github.com/chouchoussy/FamilyNote/pkg/store"
)

type Get struct {
	ShowID bool
	Search string
	Store  *store.Store
}

func (g *Get) Do(ctx context.Context) error {
	if g.Store == nil {
		return errors.New("can not get, no store")
	}

	// Listing folders is the lazy enforcement point for the default-folder
	// invariant, so it runs before any folder-scoped read.
	g.Store.Folders()

	snap := g.Store.Snapshot()
	pp := printers.PrettyPrint{ShowID: g.ShowID}

	notes := query.SearchNotes(snap.Notes, snap.CurrentTabID, snap.CurrentFolderID, g.Search)
	notes = query.SortByRecency(notes)

	pp.NewLine()
	pp.TitleWithCount(currentPath(snap), len(notes))
	pp.Notes(notes...)
	return nil
}

func currentPath(snap note.Snapshot) string {
	title := ""
	for _, t := range snap.Tabs {
		if t.ID == snap.CurrentTabID {
			title = t.Name
			break
		}
	}
	for _, f := range snap.Folders {
		if f.ID == snap.CurrentFolderID {
			title += " / " + f.Name
			break
		}
	}
	return title
}
