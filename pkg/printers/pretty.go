// Package printers renders store listings for the CLI. It is view code:
// everything it shows comes out of the query layer.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"

	"github.com/chouchoussy/FamilyNote/pkg/note"
	"github.com/chouchoussy/FamilyNote/pkg/query"
)

type PrettyPrint struct {
	ShowID bool
}

const previewWidth = 60

var spacing = strings.Repeat(" ", len("l9h2k4x8p0q1m3z7  "))

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" note")
	default:
		_, _ = c.Println(" notes")
	}
}

// Tabs lists every tab, marking the current one.
func (pp *PrettyPrint) Tabs(tabs []note.Tab, currentID string) {
	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(bold(""), bold("ID"), bold("Tab"))
	} else {
		tbl.AddRow(bold(""), bold("Tab"))
	}
	for _, t := range tabs {
		marker := " "
		if t.ID == currentID {
			marker = "*"
		}
		if pp.ShowID {
			tbl.AddRow(marker, t.ID, t.Name)
		} else {
			tbl.AddRow(marker, t.Name)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Folders lists a tab's folders, marking the current one.
func (pp *PrettyPrint) Folders(folders []note.Folder, currentID string) {
	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(bold(""), bold("ID"), bold("Folder"))
	} else {
		tbl.AddRow(bold(""), bold("Folder"))
	}
	for _, f := range folders {
		marker := " "
		if f.ID == currentID {
			marker = "*"
		}
		if pp.ShowID {
			tbl.AddRow(marker, f.ID, f.Name)
		} else {
			tbl.AddRow(marker, f.Name)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Notes prints note cards: accent swatch, title, date, attachment marker,
// and a plain-text preview of the content.
func (pp *PrettyPrint) Notes(notes ...note.Note) {
	if len(notes) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New(color.Bold)
	d := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, n := range notes {
		if pp.ShowID {
			_, _ = y.Print(n.ID)
			pad := len(spacing) - len(n.ID)
			if pad < 1 {
				pad = 1
			}
			_, _ = y.Print(strings.Repeat(" ", pad))
		}
		_, _ = fmt.Fprint(color.Output, swatch(n.Title), " ")
		_, _ = t.Print(n.Title)
		if query.HasAttachments(n.Content) {
			_, _ = d.Print("  [attachments]")
		}
		if !n.CreatedAt.IsZero() {
			_, _ = d.Printf("  %s", n.CreatedAt.Local().Format("Jan 2, 2006"))
		}
		fmt.Println("")

		preview := strings.TrimSpace(query.StripMarkup(n.Content))
		if preview != "" {
			if pp.ShowID {
				_, _ = d.Print(spacing)
			}
			_, _ = d.Printf("  %s\n", truncate.StringWithTail(preview, previewWidth, "…"))
		}
	}
	_, _ = fmt.Fprintln(color.Output, "")
}

// swatch renders the accent dot for a title, same hue the web view puts on
// the note card.
func swatch(title string) string {
	hue := query.AccentColor(title)
	hex := colorful.Hsl(float64(hue), 0.7, 0.6).Hex()
	return termenv.String("●").Foreground(termenv.ColorProfile().Color(hex)).String()
}

func bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}
