// Package theme holds the process-wide dark/light preference. It persists
// in its own durable slot, independent of the content tree.
package theme

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
)

// Mode is the literal string persisted in the theme slot.
type Mode string

const (
	Dark  Mode = "dark"
	Light Mode = "light"
)

// Slot is the single durable entry the preference persists to.
type Slot interface {
	Write(data []byte) error
	Read() (data []byte, ok bool, err error)
}

// Preference reads and toggles the theme mode.
type Preference struct {
	slot    Slot
	envDark func() bool
}

// Option customises Preference construction.
type Option func(*Preference)

// WithEnvSignal overrides the environment dark-mode probe. Tests inject a
// fixed answer here; the default asks the terminal.
func WithEnvSignal(fn func() bool) Option {
	return func(p *Preference) { p.envDark = fn }
}

// New returns a Preference over the given slot.
func New(slot Slot, opts ...Option) *Preference {
	p := &Preference{
		slot:    slot,
		envDark: termenv.HasDarkBackground,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Get returns the persisted mode. With nothing persisted it falls back to
// the environment signal, and failing that to light. A persisted value
// other than "dark" reads as light.
func (p *Preference) Get() Mode {
	data, ok, err := p.slot.Read()
	if err != nil {
		fmt.Fprintf(os.Stderr, "theme: read: %v\n", err)
		ok = false
	}
	if !ok {
		if p.envDark != nil && p.envDark() {
			return Dark
		}
		return Light
	}
	if Mode(data) == Dark {
		return Dark
	}
	return Light
}

// Toggle flips the mode, persists it, and returns the new value. The
// content tree is untouched. A failed write is a warning; the returned mode
// still applies for the session.
func (p *Preference) Toggle() Mode {
	next := Dark
	if p.Get() == Dark {
		next = Light
	}
	if err := p.slot.Write([]byte(next)); err != nil {
		fmt.Fprintf(os.Stderr, "theme: save: %v\n", err)
	}
	return next
}
