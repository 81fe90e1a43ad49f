// Package folder holds the folder management runners. Folders are always
// scoped to the store's current tab.
package folder

import (
	"context"
	"errors"
	"fmt"

	"github.com/chouchoussy/FamilyNote/pkg/printers"
	"github.com/chouchoussy/FamilyNote/pkg/store"
)

// Create adds a folder to the current tab and makes it current.
type Create struct {
	Name  string
	Store *store.Store
}

func (c *Create) Do(ctx context.Context) error {
	if c.Store == nil {
		return errors.New("can not create folder, no store")
	}
	f, ok := c.Store.CreateFolder(c.Name)
	if !ok {
		return errors.New("folder name must not be empty")
	}
	fmt.Printf("created folder %q\n", f.Name)
	return nil
}

// Rename updates a folder's name.
type Rename struct {
	ID    string
	Name  string
	Store *store.Store
}

func (r *Rename) Do(ctx context.Context) error {
	if r.Store == nil {
		return errors.New("can not rename folder, no store")
	}
	r.Store.RenameFolder(r.ID, r.Name)
	return nil
}

// Delete removes a folder and its notes.
type Delete struct {
	ID    string
	Store *store.Store
}

func (d *Delete) Do(ctx context.Context) error {
	if d.Store == nil {
		return errors.New("can not delete folder, no store")
	}
	d.Store.DeleteFolder(d.ID)
	return nil
}

// Select makes a folder of the current tab current.
type Select struct {
	ID    string
	Store *store.Store
}

func (s *Select) Do(ctx context.Context) error {
	if s.Store == nil {
		return errors.New("can not select folder, no store")
	}
	s.Store.SelectFolder(s.ID)
	return nil
}

// List prints the current tab's folders.
type List struct {
	ShowID bool
	Store  *store.Store
}

func (l *List) Do(ctx context.Context) error {
	if l.Store == nil {
		return errors.New("can not list folders, no store")
	}
	folders := l.Store.Folders()
	_, currentFolder := l.Store.Selection()
	pp := printers.PrettyPrint{ShowID: l.ShowID}
	pp.NewLine()
	pp.Folders(folders, currentFolder)
	return nil
}
