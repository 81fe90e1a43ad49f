package theme

import (
	"errors"
	"testing"
)

type fakeSlot struct {
	data     []byte
	writeErr error
	readErr  error
}

func (f *fakeSlot) Write(data []byte) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.data = append([]byte(nil), data...)
	return nil
}

func (f *fakeSlot) Read() ([]byte, bool, error) {
	if f.readErr != nil {
		return nil, false, f.readErr
	}
	if f.data == nil {
		return nil, false, nil
	}
	return f.data, true, nil
}

func TestGetFallsBackToEnvironment(t *testing.T) {
	p := New(&fakeSlot{}, WithEnvSignal(func() bool { return true }))
	if got := p.Get(); got != Dark {
		t.Fatalf("expected dark from env signal, got %q", got)
	}

	p = New(&fakeSlot{}, WithEnvSignal(func() bool { return false }))
	if got := p.Get(); got != Light {
		t.Fatalf("expected light from env signal, got %q", got)
	}
}

func TestGetReadsPersistedMode(t *testing.T) {
	slot := &fakeSlot{data: []byte("dark")}
	p := New(slot, WithEnvSignal(func() bool { return false }))
	if got := p.Get(); got != Dark {
		t.Fatalf("expected persisted dark, got %q", got)
	}

	// Anything persisted that is not "dark" reads as light, even garbage.
	slot.data = []byte("sparkly")
	if got := p.Get(); got != Light {
		t.Fatalf("expected light for unknown value, got %q", got)
	}
}

func TestToggleFlipsAndPersists(t *testing.T) {
	slot := &fakeSlot{}
	p := New(slot, WithEnvSignal(func() bool { return false }))

	if got := p.Toggle(); got != Dark {
		t.Fatalf("expected toggle to dark, got %q", got)
	}
	if string(slot.data) != "dark" {
		t.Fatalf("expected dark persisted, got %q", slot.data)
	}

	if got := p.Toggle(); got != Light {
		t.Fatalf("expected toggle back to light, got %q", got)
	}
	if string(slot.data) != "light" {
		t.Fatalf("expected light persisted, got %q", slot.data)
	}
}

func TestToggleSurvivesWriteFailure(t *testing.T) {
	slot := &fakeSlot{writeErr: errors.New("disk full")}
	p := New(slot, WithEnvSignal(func() bool { return false }))
	if got := p.Toggle(); got != Dark {
		t.Fatalf("expected dark despite write failure, got %q", got)
	}
}

func TestGetSurvivesReadFailure(t *testing.T) {
	slot := &fakeSlot{readErr: errors.New("bad sector")}
	p := New(slot, WithEnvSignal(func() bool { return true }))
	if got := p.Get(); got != Dark {
		t.Fatalf("expected env fallback on read failure, got %q", got)
	}
}
