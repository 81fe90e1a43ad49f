// Package tab holds the tab management runners.
package tab

import (
	"context"
	"errors"
	"fmt"

	"github.com/chouchoussy/FamilyNote/pkg/printers"
	"github.com/chouchoussy/FamilyNote/pkg/store"
)

// Create adds a tab and makes it current. Blank names are ignored by the
// store, so the runner reports that back instead of pretending success.
type Create struct {
	Name  string
	Store *store.Store
}

func (c *Create) Do(ctx context.Context) error {
	if c.Store == nil {
		return errors.New("can not create tab, no store")
	}
	t, ok := c.Store.CreateTab(c.Name)
	if !ok {
		return errors.New("tab name must not be empty")
	}
	fmt.Printf("created tab %q\n", t.Name)
	return nil
}

// Rename updates a tab's name.
type Rename struct {
	ID    string
	Name  string
	Store *store.Store
}

func (r *Rename) Do(ctx context.Context) error {
	if r.Store == nil {
		return errors.New("can not rename tab, no store")
	}
	r.Store.RenameTab(r.ID, r.Name)
	return nil
}

// Delete removes a tab and everything inside it.
type Delete struct {
	ID    string
	Store *store.Store
}

func (d *Delete) Do(ctx context.Context) error {
	if d.Store == nil {
		return errors.New("can not delete tab, no store")
	}
	d.Store.DeleteTab(d.ID)
	return nil
}

// Select makes a tab current.
type Select struct {
	ID    string
	Store *store.Store
}

func (s *Select) Do(ctx context.Context) error {
	if s.Store == nil {
		return errors.New("can not select tab, no store")
	}
	s.Store.SelectTab(s.ID)
	return nil
}

// List prints all tabs.
type List struct {
	ShowID bool
	Store  *store.Store
}

func (l *List) Do(ctx context.Context) error {
	if l.Store == nil {
		return errors.New("can not list tabs, no store")
	}
	currentTab, _ := l.Store.Selection()
	pp := printers.PrettyPrint{ShowID: l.ShowID}
	pp.NewLine()
	pp.Tabs(l.Store.Tabs(), currentTab)
	return nil
}
