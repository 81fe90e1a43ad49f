// Package theme holds the theme preference runners.
package theme

import (
	"context"
	"errors"
	"fmt"

	pref "github.com/chouchoussy/FamilyNote/pkg/theme"
)

// Show prints the effective theme mode.
type Show struct {
	Preference *pref.Preference
}

func (s *Show) Do(ctx context.Context) error {
	if s.Preference == nil {
		return errors.New("can not show theme, no preference")
	}
	fmt.Println(s.Preference.Get())
	return nil
}

// Toggle flips the theme mode and prints the new value.
type Toggle struct {
	Preference *pref.Preference
}

func (t *Toggle) Do(ctx context.Context) error {
	if t.Preference == nil {
		return errors.New("can not toggle theme, no preference")
	}
	fmt.Println(t.Preference.Toggle())
	return nil
}
