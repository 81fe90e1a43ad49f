// Package backup implements JSON export and import of the whole store.
package backup

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chouchoussy/FamilyNote/pkg/note"
	"github.com/chouchoussy/FamilyNote/pkg/store"
)

// Export writes a pretty-printed snapshot to Dir (default: the working
// directory), named after today's date.
type Export struct {
	Dir   string
	Store *store.Store
}

func (e *Export) Do(ctx context.Context) error {
	if e.Store == nil {
		return errors.New("can not export, no store")
	}
	data, err := note.ExportSnapshot(e.Store.Snapshot())
	if err != nil {
		return fmt.Errorf("backup: export: %w", err)
	}
	path := filepath.Join(e.Dir, note.ExportFilename(time.Now()))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("backup: write %s: %w", path, err)
	}
	fmt.Printf("exported to %s\n", path)
	return nil
}

// Import validates a backup file and replaces the entire store with it.
// The replacement is destructive and irreversible, so it refuses to run
// unless Confirmed is set or the user answers yes on In.
type Import struct {
	Path      string
	Confirmed bool
	In        io.Reader
	Store     *store.Store
}

func (i *Import) Do(ctx context.Context) error {
	if i.Store == nil {
		return errors.New("can not import, no store")
	}
	data, err := os.ReadFile(i.Path)
	if err != nil {
		return fmt.Errorf("backup: read %s: %w", i.Path, err)
	}
	snap, err := note.ImportSnapshot(data)
	if err != nil {
		// Typed and user-facing; the existing store is untouched.
		return err
	}
	if !i.Confirmed && !i.confirm() {
		return errors.New("backup: import aborted")
	}
	i.Store.Replace(snap)
	fmt.Printf("imported %d tabs, %d folders, %d notes\n",
		len(snap.Tabs), len(snap.Folders), len(snap.Notes))
	return nil
}

func (i *Import) confirm() bool {
	in := i.In
	if in == nil {
		in = os.Stdin
	}
	fmt.Print("Importing replaces ALL existing data. Continue? [y/N] ")
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
