// Package notes holds the note management runners.
package notes

import (
	"context"
	"errors"
	"fmt"

	"github.com/chouchoussy/FamilyNote/pkg/store"
)

// Add creates a note in the current tab and folder. Content is stored
// verbatim; a blank title gets the placeholder.
type Add struct {
	Title   string
	Content string
	Store   *store.Store
}

func (a *Add) Do(ctx context.Context) error {
	if a.Store == nil {
		return errors.New("can not add note, no store")
	}
	n := a.Store.CreateNote(a.Title, a.Content)
	fmt.Printf("created note %q (%s)\n", n.Title, n.ID)
	return nil
}

// Edit replaces a note's title and content wholesale.
type Edit struct {
	ID      string
	Title   string
	Content string
	Store   *store.Store
}

func (e *Edit) Do(ctx context.Context) error {
	if e.Store == nil {
		return errors.New("can not edit note, no store")
	}
	e.Store.UpdateNote(e.ID, e.Title, e.Content)
	return nil
}

// Remove deletes a note permanently.
type Remove struct {
	ID    string
	Store *store.Store
}

func (r *Remove) Do(ctx context.Context) error {
	if r.Store == nil {
		return errors.New("can not remove note, no store")
	}
	r.Store.DeleteNote(r.ID)
	return nil
}
